// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solnote/fault"
	"github.com/bitmark-inc/solnote/fixtures"
	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/pipeline"
	"github.com/bitmark-inc/solnote/pipeline/mocks"
	"github.com/bitmark-inc/solnote/programaddress"
)

func exampleNote() noterecord.NoteRecord {
	return noterecord.NoteRecord{
		Variant: noterecord.UpdateNoteTag,
		Id:      0,
		Title:   "Introduction Part 2",
		Body:    "This note was edited.",
	}
}

func exampleRequest(t *testing.T) *pipeline.Request {
	r, err := pipeline.NewRequest(exampleNote(), noterecord.Compact, fixtures.PayerBase58, fixtures.ProgramId)
	if nil != err {
		t.Fatalf("new request error: %s", err)
	}
	return r
}

func expectedSignature() solana.Signature {
	var s solana.Signature
	for i := range s {
		s[i] = byte(0xa0 + i%16)
	}
	return s
}

func TestRun(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)

	var submitted *solana.Transaction
	gomock.InOrder(
		ledger.EXPECT().LatestBlockhash(gomock.Any()).Return(fixtures.Blockhash, nil).Times(1),
		ledger.EXPECT().SendAndConfirm(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
				submitted = tx
				return expectedSignature(), nil
			}).Times(1),
	)

	p := pipeline.New(logger.New(fixtures.LogCategory), ledger)
	result, err := p.Run(context.Background(), exampleRequest(t))
	assert.Nil(t, err, "run error")

	assert.Equal(t, expectedSignature(), result.Signature, "signature")
	assert.Equal(t, 47, len(result.Payload), "payload length")

	payer := fixtures.Payer.PublicKey()
	expected, err := programaddress.Derive(payer, 0, fixtures.Program)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, expected.PublicKey, result.Address.PublicKey, "note account")

	if nil == submitted {
		t.Fatal("transaction was not submitted")
	}
	assert.Equal(t, fixtures.Blockhash, submitted.Message.RecentBlockhash, "blockhash")
	assert.Equal(t, 1, len(submitted.Signatures), "signature count")
	assert.Equal(t, 1, len(submitted.Message.Instructions), "instruction count")

	ix := submitted.Message.Instructions[0]
	assert.Equal(t, []byte(result.Payload), []byte(ix.Data), "instruction data")
	assert.Equal(t, fixtures.Program, submitted.Message.AccountKeys[ix.ProgramIDIndex], "program")

	if 3 != len(ix.Accounts) {
		t.Fatalf("instruction accounts: %d  expected: 3", len(ix.Accounts))
	}
	accounts := []solana.PublicKey{payer, expected.PublicKey, solana.SystemProgramID}
	for i, index := range ix.Accounts {
		assert.Equal(t, accounts[i], submitted.Message.AccountKeys[index], "account: %d", i)
	}
}

func TestPrepareDoesNotSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	ledger.EXPECT().LatestBlockhash(gomock.Any()).Return(fixtures.Blockhash, nil).Times(1)

	p := pipeline.New(logger.New(fixtures.LogCategory), ledger)
	prepared, err := p.Prepare(context.Background(), exampleRequest(t))
	assert.Nil(t, err, "prepare error")
	assert.Equal(t, 1, len(prepared.Transaction.Signatures), "signature count")
	assert.Equal(t, fixtures.Payer.PublicKey(), prepared.Accounts[0].Address, "payer ref")
	assert.Equal(t, prepared.Address.PublicKey, prepared.Accounts[1].Address, "note ref")
}

func TestNewRequestMalformed(t *testing.T) {
	tests := []struct {
		name       string
		privateKey string
		programId  string
		expected   error
	}{
		{"missing key", "", fixtures.ProgramId, fault.ErrMissingPrivateKey},
		{"bad key", "0OIl", fixtures.ProgramId, fault.ErrCannotDecodePrivateKey},
		{"short key", fixtures.ProgramId, fixtures.ProgramId, fault.ErrCannotDecodePrivateKey},
		{"missing program", fixtures.PayerBase58, "  ", fault.ErrMissingProgramId},
		{"bad program", fixtures.PayerBase58, "not-base58!", fault.ErrCannotDecodeProgramId},
		{"long program", fixtures.PayerBase58, fixtures.PayerBase58, fault.ErrCannotDecodeProgramId},
	}

	for _, test := range tests {
		r, err := pipeline.NewRequest(exampleNote(), noterecord.Compact, test.privateKey, test.programId)
		assert.Nil(t, r, test.name)
		assert.True(t, errors.Is(err, test.expected), "%s: error: %v", test.name, err)
		assert.Equal(t, fault.ConfigurationKind, fault.Classify(err), test.name)
	}
}

func TestPrepareEncodingFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: any ledger call fails the test
	ledger := mocks.NewMockLedger(ctl)

	request := exampleRequest(t)
	request.Record.Body = strings.Repeat("x", noterecord.MaxPackedLength)

	p := pipeline.New(logger.New(fixtures.LogCategory), ledger)
	_, err := p.Run(context.Background(), request)
	assert.Equal(t, fault.ErrRecordTooLong, err, "oversize body")
	assert.Equal(t, fault.EncodingKind, fault.Classify(err), "class")
}

func TestRunBlockhashFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	ledger.EXPECT().LatestBlockhash(gomock.Any()).Return(solana.Hash{}, fault.ErrBlockhashRequestFail).Times(1)

	p := pipeline.New(logger.New(fixtures.LogCategory), ledger)
	_, err := p.Run(context.Background(), exampleRequest(t))
	assert.Equal(t, fault.NetworkKind, fault.Classify(err), "class")
}

func TestRunConfirmationFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	cause := errors.New("transaction simulation failed")

	ledger := mocks.NewMockLedger(ctl)
	ledger.EXPECT().LatestBlockhash(gomock.Any()).Return(fixtures.Blockhash, nil).Times(1)
	ledger.EXPECT().SendAndConfirm(gomock.Any(), gomock.Any()).Return(solana.Signature{}, fault.Wrap(fault.ErrConfirmationFailed, cause)).Times(1)

	p := pipeline.New(logger.New(fixtures.LogCategory), ledger)
	result, err := p.Run(context.Background(), exampleRequest(t))
	assert.Nil(t, result, "result")
	assert.True(t, errors.Is(err, cause), "cause kept")
	assert.True(t, errors.Is(err, fault.ErrConfirmationFailed), "class instance kept")
	assert.Equal(t, fault.NetworkKind, fault.Classify(err), "class")
}
