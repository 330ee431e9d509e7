// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/util"
)

type encodeReply struct {
	Layout string                `json:"layout"`
	Length int                   `json:"length"`
	Record noterecord.NoteRecord `json:"record"`
	Packed noterecord.Packed     `json:"packed"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	variant, err := checkVariant(c.String("variant"))
	if nil != err {
		return err
	}

	id, err := checkId(c.Uint("id"))
	if nil != err {
		return err
	}

	record := noterecord.NoteRecord{
		Variant: variant,
		Id:      id,
		Title:   c.String("title"),
		Body:    c.String("body"),
	}

	layout := m.config.NoteLayout()
	packed, err := record.Pack(layout)
	if nil != err {
		return err
	}

	if c.Bool("go") {
		fmt.Fprintf(m.w, "%s\n", util.FormatBytes("payload", packed))
		return nil
	}

	return printJson(m.w, encodeReply{
		Layout: layout.String(),
		Length: len(packed),
		Record: record,
		Packed: packed,
	})
}
