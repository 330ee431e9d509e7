// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/solnote/fault"
)

// TagType - type code for note instructions
// this is encoded as a single byte at start of "Packed"
type TagType uint8

// enumerate the instruction variants understood by the note program
const (
	AddNoteTag    = TagType(iota) // create note account and store note
	UpdateNoteTag = TagType(iota) // edit an existing note
	DeleteNoteTag = TagType(iota) // close note account, refund rent

	// this item must be last
	InvalidTag = TagType(iota)
)

// Layout - width in bytes of the little-endian length prefix placed
// before each string field
type Layout int

// supported layouts
const (
	Compact = Layout(2) // u16 prefix
	Borsh   = Layout(4) // u32 prefix, as written by Borsh "String"
)

// byte sizes for various fields
const (
	MaxPackedLength = 1000 // working buffer capacity
	tagLength       = 1
	idLength        = 2
)

// Packed - packed records are just a byte slice
type Packed []byte

// NoteRecord - the unpacked note instruction
type NoteRecord struct {
	Variant TagType `json:"variant"` // instruction selector
	Id      uint16  `json:"id"`      // key of the note within the owner's namespace
	Title   string  `json:"title"`   // utf-8
	Body    string  `json:"body"`    // utf-8
}

// String - name of the variant
func (tag TagType) String() string {
	switch tag {
	case AddNoteTag:
		return "add"
	case UpdateNoteTag:
		return "update"
	case DeleteNoteTag:
		return "delete"
	default:
		return "invalid"
	}
}

// Valid - check that the tag is one of the known variants
func (tag TagType) Valid() bool {
	return tag < InvalidTag
}

// LayoutFromString - convert a configuration name to a layout
func LayoutFromString(s string) (Layout, error) {
	switch s {
	case "", "compact", "u16":
		return Compact, nil
	case "borsh", "u32":
		return Borsh, nil
	default:
		return 0, fault.ErrInvalidLayout
	}
}

// String - configuration name of a layout
func (layout Layout) String() string {
	switch layout {
	case Compact:
		return "compact"
	case Borsh:
		return "borsh"
	default:
		return "invalid"
	}
}

func (layout Layout) valid() bool {
	return Compact == layout || Borsh == layout
}

// PackedLength - number of bytes the record occupies when packed
//
// this is: tag + id + (prefix + title) + (prefix + body)
func PackedLength(record *NoteRecord, layout Layout) int {
	prefix := int(layout)
	return tagLength + idLength + prefix + len(record.Title) + prefix + len(record.Body)
}

// String - hex form of a packed record
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - JSON output of a packed record is hex
func (record Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(buffer, record)
	return buffer, nil
}
