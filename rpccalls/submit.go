// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	confirm "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"

	"github.com/bitmark-inc/solnote/fault"
)

// SubmitReply - JSON data to output after a submission completes
type SubmitReply struct {
	Signature solana.Signature `json:"signature"`
}

// LatestBlockhash - most recent finalised blockhash, needed to build a
// transaction the cluster will accept
func (client *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {

	reply, err := client.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if nil != err {
		return solana.Hash{}, fault.Wrap(fault.ErrBlockhashRequestFail, err)
	}
	if nil == reply || nil == reply.Value {
		return solana.Hash{}, fault.ErrBlockhashRequestFail
	}

	client.printJson("Blockhash Reply", reply.Value)

	return reply.Value.Blockhash, nil
}

// SendAndConfirm - broadcast a signed transaction and wait until the
// cluster confirms or rejects it
//
// there is no retry, the SDK's confirmation timeout applies
func (client *Client) SendAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {

	client.printJson("Transaction Request", tx)

	signature, err := confirm.SendAndConfirmTransaction(ctx, client.rpcClient, client.wsClient, tx)
	if nil != err {
		return solana.Signature{}, fault.Wrap(fault.ErrConfirmationFailed, err)
	}

	client.printJson("Transaction Reply", SubmitReply{Signature: signature})

	return signature, nil
}
