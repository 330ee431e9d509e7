// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/solnote/fault"
)

// Unpack - turn a byte slice into a note record
//
// returns the record and the number of bytes consumed; any bytes
// after the record are left for the caller to reject
func (record Packed) Unpack(layout Layout) (r *NoteRecord, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.ErrNotNotePack
		}
	}()

	if !layout.valid() {
		return nil, 0, fault.ErrInvalidLayout
	}

	if len(record) < tagLength+idLength {
		return nil, 0, fault.ErrNotNotePack
	}

	tag := TagType(record[0])
	if !tag.Valid() {
		return nil, 0, fault.ErrInvalidVariant
	}
	n = tagLength

	id := binary.LittleEndian.Uint16(record[n:])
	n += idLength

	title, titleLength := getString(record[n:], layout)
	if 0 == titleLength {
		return nil, 0, fault.ErrNotNotePack
	}
	n += titleLength

	body, bodyLength := getString(record[n:], layout)
	if 0 == bodyLength {
		return nil, 0, fault.ErrNotNotePack
	}
	n += bodyLength

	r = &NoteRecord{
		Variant: tag,
		Id:      id,
		Title:   title,
		Body:    body,
	}
	return r, n, nil
}

// UnpackExact - unpack a record that must occupy the whole buffer
func (record Packed) UnpackExact(layout Layout) (*NoteRecord, error) {
	r, n, err := record.Unpack(layout)
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, fault.ErrTrailingData
	}
	return r, nil
}

// read a length prefixed string
//
// returns the string and the total bytes used including the prefix
// returns "", 0 if the buffer is truncated
func getString(buffer []byte, layout Layout) (string, int) {
	prefix := int(layout)
	if len(buffer) < prefix {
		return "", 0
	}

	length := 0
	switch layout {
	case Compact:
		length = int(binary.LittleEndian.Uint16(buffer))
	case Borsh:
		length = int(binary.LittleEndian.Uint32(buffer))
	}

	if length > len(buffer)-prefix {
		return "", 0
	}
	return string(buffer[prefix : prefix+length]), prefix + length
}
