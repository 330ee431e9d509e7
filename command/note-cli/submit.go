// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/solnote/chain"
	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/pipeline"
	"github.com/bitmark-inc/solnote/programaddress"
	"github.com/bitmark-inc/solnote/rpccalls"
	"github.com/bitmark-inc/solnote/transaction"
)

type submitReply struct {
	Cluster   string                  `json:"cluster"`
	Signature string                  `json:"signature"`
	Account   *programaddress.Address `json:"account"`
	Explorer  string                  `json:"explorer"`
}

type dryRunReply struct {
	Cluster     string                  `json:"cluster"`
	Account     *programaddress.Address `json:"account"`
	Payload     string                  `json:"payload"`
	Transaction string                  `json:"transaction"`
}

// run the pipeline once against the configured cluster
//
// keys are decoded before any connection is made
func submit(m *metadata, record noterecord.NoteRecord, dryRun bool) error {

	request, err := pipeline.NewRequest(record, m.config.NoteLayout(), m.config.PrivateKey, m.config.ProgramId)
	if nil != err {
		return err
	}

	rpcURL, wsURL, err := m.config.Endpoints()
	if nil != err {
		return err
	}
	m.log.Debugf("rpc: %s  ws: %s", rpcURL, wsURL)

	ctx := context.Background()

	client, err := rpccalls.NewClient(ctx, rpcURL, wsURL, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	p := pipeline.New(m.log, client)

	if dryRun {
		prepared, err := p.Prepare(ctx, request)
		if nil != err {
			return err
		}
		encoded, err := transaction.Encode(prepared.Transaction)
		if nil != err {
			return err
		}
		return printJson(m.w, dryRunReply{
			Cluster:     m.config.Cluster,
			Account:     prepared.Address,
			Payload:     prepared.Payload.String(),
			Transaction: encoded,
		})
	}

	result, err := p.Run(ctx, request)
	if nil != err {
		return err
	}

	signature := result.Signature.String()
	return printJson(m.w, submitReply{
		Cluster:   m.config.Cluster,
		Signature: signature,
		Account:   result.Address,
		Explorer:  chain.ExplorerURL(signature, m.config.Cluster),
	})
}
