// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solnote/fault"
)

var (
	ErrConfigurationOne = fault.ConfigurationError("configuration one")
	ErrConfigurationTwo = fault.ConfigurationError("configuration two")
	ErrEncodingOne      = fault.EncodingError("encoding one")
	ErrEncodingTwo      = fault.EncodingError("encoding two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrLengthOne        = fault.LengthError("length one")
	ErrNetworkOne       = fault.NetworkError("network one")
	ErrNetworkTwo       = fault.NetworkError("network two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrProcessOne       = fault.ProcessError("process one")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		configuration bool
		encoding      bool
		invalid       bool
		length        bool
		network       bool
		notFound      bool
		process       bool
	}{
		{ErrConfigurationOne, true, false, false, false, false, false, false},
		{ErrConfigurationTwo, true, false, false, false, false, false, false},
		{ErrEncodingOne, false, true, false, false, false, false, false},
		{ErrEncodingTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false},
		{ErrNetworkOne, false, false, false, false, true, false, false},
		{ErrNetworkTwo, false, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrConfiguration(err) != e.configuration {
			t.Errorf("%d: expected 'configuration' == %v for err = %v", i, e.configuration, err)
		}
		if fault.IsErrEncoding(err) != e.encoding {
			t.Errorf("%d: expected 'encoding' == %v for err = %v", i, e.encoding, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNetwork(err) != e.network {
			t.Errorf("%d: expected 'network' == %v for err = %v", i, e.network, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestWrapKeepsClassAndCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fault.Wrap(fault.ErrConnectionFailed, cause)

	assert.True(t, fault.IsErrNetwork(err), "wrapped class lost")
	assert.True(t, errors.Is(err, fault.ErrConnectionFailed), "instance not found")
	assert.True(t, errors.Is(err, cause), "cause not found")
	assert.Equal(t, "cluster connection failed: dial tcp: connection refused", err.Error(), "wrong message")

	// further wrapping by callers must not hide the class
	outer := fmt.Errorf("update note: %w", err)
	assert.True(t, fault.IsErrNetwork(outer), "class lost through fmt wrapping")
}

func TestWrapNilCause(t *testing.T) {
	err := fault.Wrap(fault.ErrRecordTooLong, nil)
	assert.Equal(t, fault.ErrRecordTooLong, err, "nil cause should return the instance")
}

func TestClassify(t *testing.T) {
	items := []struct {
		err  error
		kind fault.Kind
	}{
		{nil, fault.UnknownKind},
		{errors.New("plain"), fault.UnknownKind},
		{fault.ErrMissingPrivateKey, fault.ConfigurationKind},
		{fault.ErrKeyLength, fault.ConfigurationKind},
		{fault.ErrRecordTooLong, fault.EncodingKind},
		{fault.ErrDerivationFailed, fault.ProcessKind},
		{fault.Wrap(fault.ErrConfirmationFailed, errors.New("timeout")), fault.NetworkKind},
	}

	for i, item := range items {
		assert.Equal(t, item.kind, fault.Classify(item.err), "%d: wrong kind for: %v", i, item.err)
	}

	assert.Equal(t, "network", fault.NetworkKind.String(), "wrong kind name")
	assert.Equal(t, "unknown", fault.Kind(99).String(), "wrong kind name")
}
