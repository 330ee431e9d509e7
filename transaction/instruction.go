// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/gagliardetto/solana-go"
)

// Role - position of an account in the note instruction
type Role int

// enumerate the account roles in instruction order
const (
	PayerRole       = Role(iota) // signs and pays the fee
	NoteAccountRole = Role(iota) // program-derived note account
	SystemRole      = Role(iota) // system program, for account creation

	// this item must be last
	roleCount = Role(iota)
)

// AccountRef - one account reference of an instruction
type AccountRef struct {
	Address    solana.PublicKey `json:"address"`
	IsSigner   bool             `json:"isSigner"`
	IsWritable bool             `json:"isWritable"`
}

// AccountRefs - the fixed, ordered account list of a note instruction
type AccountRefs [roleCount]AccountRef

// NewAccountRefs - the account list for a payer and its note account
func NewAccountRefs(payer solana.PublicKey, noteAccount solana.PublicKey) AccountRefs {
	return AccountRefs{
		PayerRole: {
			Address:    payer,
			IsSigner:   true,
			IsWritable: false,
		},
		NoteAccountRole: {
			Address:    noteAccount,
			IsSigner:   false,
			IsWritable: true,
		},
		SystemRole: {
			Address:    solana.SystemProgramID,
			IsSigner:   false,
			IsWritable: false,
		},
	}
}

// String - name of a role for log output
func (role Role) String() string {
	switch role {
	case PayerRole:
		return "payer"
	case NoteAccountRole:
		return "note"
	case SystemRole:
		return "system"
	default:
		return "invalid"
	}
}

// Metas - convert to the SDK account list, preserving order
func (refs AccountRefs) Metas() solana.AccountMetaSlice {
	metas := make(solana.AccountMetaSlice, 0, len(refs))
	for _, ref := range refs {
		metas = append(metas, solana.NewAccountMeta(ref.Address, ref.IsWritable, ref.IsSigner))
	}
	return metas
}

// NewInstruction - the note instruction: target program, the three
// account references and the packed note as opaque data
func NewInstruction(program solana.PublicKey, refs AccountRefs, data []byte) *solana.GenericInstruction {
	return solana.NewInstruction(program, refs.Metas(), data)
}
