// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

const bytesPerLine = 8

// FormatBytes - render data as a Go byte slice literal, for dumping
// the expected bytes used by test routines and for verbose output
func FormatBytes(name string, data []byte) string {
	var b strings.Builder

	b.WriteString(name)
	b.WriteString(" := []byte{")
	for i, v := range data {
		if 0 == i%bytesPerLine {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", v)
	}
	b.WriteString("\n}")
	return b.String()
}
