// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solnote/keypair"
	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/programaddress"
	"github.com/bitmark-inc/solnote/transaction"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/ledger.go -package=mocks

// Ledger - the remote cluster, as far as the pipeline needs it
type Ledger interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// Request - everything one run needs
type Request struct {
	Record  noterecord.NoteRecord
	Layout  noterecord.Layout
	Payer   solana.PrivateKey
	Program solana.PublicKey
}

// Prepared - a signed transaction ready to submit
type Prepared struct {
	Payload     noterecord.Packed
	Address     *programaddress.Address
	Accounts    transaction.AccountRefs
	Transaction *solana.Transaction
}

// Result - outcome of a confirmed submission
type Result struct {
	Signature solana.Signature        `json:"signature"`
	Address   *programaddress.Address `json:"account"`
	Payload   noterecord.Packed       `json:"payload"`
}

// Pipeline - runs requests against one ledger
type Pipeline struct {
	log    *logger.L
	ledger Ledger
}

// New - create a pipeline
func New(log *logger.L, ledger Ledger) *Pipeline {
	return &Pipeline{
		log:    log,
		ledger: ledger,
	}
}

// NewRequest - decode the base58 key material and build a request
//
// runs before any ledger call so that bad configuration never reaches
// the network
func NewRequest(record noterecord.NoteRecord, layout noterecord.Layout, privateKey string, programId string) (*Request, error) {
	payer, err := keypair.PrivateKeyFromBase58(privateKey)
	if nil != err {
		return nil, err
	}
	program, err := keypair.PublicKeyFromBase58(programId)
	if nil != err {
		return nil, err
	}
	return &Request{
		Record:  record,
		Layout:  layout,
		Payer:   payer,
		Program: program,
	}, nil
}

// Prepare - encode, derive, assemble and sign; the only ledger call is
// for the recent blockhash
func (p *Pipeline) Prepare(ctx context.Context, request *Request) (*Prepared, error) {

	payload, err := request.Record.Pack(request.Layout)
	if nil != err {
		p.log.Errorf("encode: %s", err)
		return nil, err
	}
	p.log.Debugf("payload: %d bytes  variant: %s  id: %d", len(payload), request.Record.Variant, request.Record.Id)

	payer := keypair.PublicKeyOf(request.Payer)

	address, err := programaddress.Derive(payer, request.Record.Id, request.Program)
	if nil != err {
		p.log.Errorf("derive: %s", err)
		return nil, err
	}
	p.log.Debugf("note account: %s  bump: %d", address.PublicKey, address.Bump)

	accounts := transaction.NewAccountRefs(payer, address.PublicKey)
	instruction := transaction.NewInstruction(request.Program, accounts, payload)

	blockhash, err := p.ledger.LatestBlockhash(ctx)
	if nil != err {
		p.log.Errorf("blockhash: %s", err)
		return nil, err
	}

	tx, err := transaction.Build(instruction, payer, blockhash)
	if nil != err {
		p.log.Errorf("build: %s", err)
		return nil, err
	}

	err = transaction.Sign(tx, request.Payer)
	if nil != err {
		p.log.Errorf("sign: %s", err)
		return nil, err
	}

	return &Prepared{
		Payload:     payload,
		Address:     address,
		Accounts:    accounts,
		Transaction: tx,
	}, nil
}

// Run - prepare then submit, blocking until the cluster confirms
func (p *Pipeline) Run(ctx context.Context, request *Request) (*Result, error) {

	prepared, err := p.Prepare(ctx, request)
	if nil != err {
		return nil, err
	}

	signature, err := p.ledger.SendAndConfirm(ctx, prepared.Transaction)
	if nil != err {
		p.log.Errorf("submit: %s", err)
		return nil, err
	}
	p.log.Infof("confirmed: %s", signature)

	return &Result{
		Signature: signature,
		Address:   prepared.Address,
		Payload:   prepared.Payload,
	}, nil
}
