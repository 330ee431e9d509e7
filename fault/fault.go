// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type EncodingError GenericError
type InvalidError GenericError
type LengthError GenericError
type NetworkError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBlockhashRequestFail   = NetworkError("latest blockhash request failed")
	ErrCannotDecodePrivateKey = ConfigurationError("cannot decode PRIVATE_KEY")
	ErrCannotDecodeProgramId  = ConfigurationError("cannot decode PROGRAM_ID")
	ErrConfigurationFile      = ConfigurationError("configuration file error")
	ErrConfigurationNotTable  = ConfigurationError("configuration file must return a table")
	ErrConfirmationFailed     = NetworkError("transaction confirmation failed")
	ErrConnectionFailed       = NetworkError("cluster connection failed")
	ErrDerivationFailed       = ProcessError("program address derivation failed")
	ErrEnvironmentFile        = ConfigurationError("cannot read environment file")
	ErrInvalidCluster         = ConfigurationError("CLUSTER is not a known cluster")
	ErrInvalidEndpoint        = ConfigurationError("RPC_URL and WS_URL must be given together")
	ErrInvalidLayout          = ConfigurationError("NOTE_LAYOUT must be compact or borsh")
	ErrInvalidNoteId          = ConfigurationError("note id must be in the range 0..65535")
	ErrInvalidVariant         = EncodingError("invalid note variant")
	ErrKeyLength              = LengthError("key length is invalid")
	ErrMissingPrivateKey      = ConfigurationError("PRIVATE_KEY is not set")
	ErrMissingProgramId       = ConfigurationError("PROGRAM_ID is not set")
	ErrNotNotePack            = EncodingError("not a note instruction pack")
	ErrPrivateKeyMismatch     = ConfigurationError("PRIVATE_KEY halves do not match")
	ErrRecordTooLong          = EncodingError("note record exceeds working buffer")
	ErrSigningFailed          = ProcessError("transaction signing failed")
	ErrTrailingData           = EncodingError("trailing data after note record")
	ErrTransactionBuildFailed = ProcessError("transaction build failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string { return string(e) }
func (e EncodingError) Error() string      { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NetworkError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrConfiguration(e error) bool { var t ConfigurationError; return errors.As(e, &t) }
func IsErrEncoding(e error) bool      { var t EncodingError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool       { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool        { var t LengthError; return errors.As(e, &t) }
func IsErrNetwork(e error) bool       { var t NetworkError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool       { var t ProcessError; return errors.As(e, &t) }

// Wrap - attach an underlying cause to one of the error instances
// above; errors.Is(result, e) and the IsErr* class tests still hold
func Wrap(e error, cause error) error {
	if nil == cause {
		return e
	}
	return &wrapped{class: e, cause: cause}
}

type wrapped struct {
	class error
	cause error
}

func (w *wrapped) Error() string {
	return fmt.Sprintf("%s: %s", w.class, w.cause)
}

// Unwrap - both the class instance and the cause are visible to errors.Is/As
func (w *wrapped) Unwrap() []error {
	return []error{w.class, w.cause}
}
