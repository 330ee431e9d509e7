// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Kind - the pipeline stage class of an error
type Kind int

// enumerate the stage classes
const (
	UnknownKind = Kind(iota)
	ConfigurationKind
	EncodingKind
	ProcessKind
	NetworkKind
)

// Classify - the stage class of an error, nil is UnknownKind
//
// a length error only arises while decoding keys so it is reported
// as configuration
func Classify(e error) Kind {
	switch {
	case nil == e:
		return UnknownKind
	case IsErrConfiguration(e), IsErrLength(e):
		return ConfigurationKind
	case IsErrEncoding(e):
		return EncodingKind
	case IsErrNetwork(e):
		return NetworkKind
	case IsErrProcess(e), IsErrInvalid(e):
		return ProcessKind
	default:
		return UnknownKind
	}
}

// String - name of the class for log output
func (k Kind) String() string {
	switch k {
	case ConfigurationKind:
		return "configuration"
	case EncodingKind:
		return "encoding"
	case ProcessKind:
		return "process"
	case NetworkKind:
		return "network"
	default:
		return "unknown"
	}
}
