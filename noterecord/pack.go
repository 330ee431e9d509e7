// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/solnote/fault"
)

// Pack - encode the note instruction
//
// Pack tag byte followed by little-endian id then the length prefixed
// title and body, in that order
//
// The fields are written into a working buffer of MaxPackedLength
// bytes and the result is the prefix of that buffer that was used.  A
// record that does not fit is rejected, it is never truncated.
func (record *NoteRecord) Pack(layout Layout) (Packed, error) {
	if !layout.valid() {
		return nil, fault.ErrInvalidLayout
	}
	if !record.Variant.Valid() {
		return nil, fault.ErrInvalidVariant
	}

	if PackedLength(record, layout) > MaxPackedLength {
		return nil, fault.ErrRecordTooLong
	}

	buffer := make([]byte, MaxPackedLength)

	buffer[0] = byte(record.Variant)
	n := tagLength

	binary.LittleEndian.PutUint16(buffer[n:], record.Id)
	n += idLength

	n = putString(buffer, n, layout, record.Title)
	n = putString(buffer, n, layout, record.Body)

	return Packed(buffer[:n]), nil
}

// write a single string field at offset n
//
// the field is prefixed by its byte length, caller has checked the
// total fits
func putString(buffer []byte, n int, layout Layout, s string) int {
	switch layout {
	case Compact:
		binary.LittleEndian.PutUint16(buffer[n:], uint16(len(s)))
	case Borsh:
		binary.LittleEndian.PutUint32(buffer[n:], uint32(len(s)))
	}
	n += int(layout)
	return n + copy(buffer[n:], s)
}
