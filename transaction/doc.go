// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - assemble and sign the single instruction
// transaction that carries a note
//
// The account list is part of the note program's wire contract: the
// payer (signer, read-only), the derived note account (writable) and
// the system program, in exactly that order.
package transaction
