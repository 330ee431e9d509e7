// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/base64"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/solnote/fault"
)

// Build - wrap a single instruction into a transaction paid for by payer
func Build(instruction solana.Instruction, payer solana.PublicKey, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		recentBlockhash,
		solana.TransactionPayer(payer),
	)
	if nil != err {
		return nil, fault.Wrap(fault.ErrTransactionBuildFailed, err)
	}
	return tx, nil
}

// Sign - attach the payer signature; the payer is the only signer
func Sign(tx *solana.Transaction, payer solana.PrivateKey) error {
	payerKey := payer.PublicKey()
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payerKey) {
			return &payer
		}
		return nil
	})
	if nil != err {
		return fault.Wrap(fault.ErrSigningFailed, err)
	}
	return nil
}

// Encode - wire form of a transaction as base64, for dry runs
func Encode(tx *solana.Transaction) (string, error) {
	b, err := tx.MarshalBinary()
	if nil != err {
		return "", fault.Wrap(fault.ErrTransactionBuildFailed, err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
