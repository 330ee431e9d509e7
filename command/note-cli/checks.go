// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/bitmark-inc/solnote/fault"
	"github.com/bitmark-inc/solnote/noterecord"
)

// the id is the only field the program uses to find a note
func checkId(id uint) (uint16, error) {
	if id > math.MaxUint16 {
		return 0, fault.ErrInvalidNoteId
	}
	return uint16(id), nil
}

func checkVariant(name string) (noterecord.TagType, error) {
	switch name {
	case "add", "create":
		return noterecord.AddNoteTag, nil
	case "update", "edit":
		return noterecord.UpdateNoteTag, nil
	case "delete", "remove":
		return noterecord.DeleteNoteTag, nil
	default:
		return noterecord.InvalidTag, fault.ErrInvalidVariant
	}
}
