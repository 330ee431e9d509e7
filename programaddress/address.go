// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package programaddress - derive the account that holds a note
//
// The note account is a program-derived address: the SDK searches bump
// seeds from 255 downwards until the hash of the seeds, the bump and the
// program identity is not a point on the ed25519 curve, so no private
// key can exist for it.
package programaddress

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/solnote/fault"
)

// Address - a derived note account with the bump seed that produced it
type Address struct {
	PublicKey solana.PublicKey `json:"address"`
	Bump      uint8            `json:"bump"`
}

// IdSeed - the two byte little-endian encoding of a note id
func IdSeed(id uint16) []byte {
	seed := make([]byte, 2)
	binary.LittleEndian.PutUint16(seed, id)
	return seed
}

// Seeds - the derivation seeds, owner key first then the id
func Seeds(owner solana.PublicKey, id uint16) [][]byte {
	return [][]byte{
		owner.Bytes(),
		IdSeed(id),
	}
}

// Derive - compute the note account address for owner and id under
// the note program
func Derive(owner solana.PublicKey, id uint16, program solana.PublicKey) (*Address, error) {
	publicKey, bump, err := solana.FindProgramAddress(Seeds(owner, id), program)
	if nil != err {
		return nil, fault.Wrap(fault.ErrDerivationFailed, err)
	}
	return &Address{
		PublicKey: publicKey,
		Bump:      bump,
	}, nil
}

// Verify - recompute the address from its bump seed, as the program
// does when it signs for the account
func (a *Address) Verify(owner solana.PublicKey, id uint16, program solana.PublicKey) bool {
	seeds := append(Seeds(owner, id), []byte{a.Bump})
	publicKey, err := solana.CreateProgramAddress(seeds, program)
	if nil != err {
		return false
	}
	return publicKey.Equals(a.PublicKey)
}
