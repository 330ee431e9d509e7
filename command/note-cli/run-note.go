// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/solnote/noterecord"
)

func runAdd(c *cli.Context) error {
	return runNote(c, noterecord.AddNoteTag)
}

func runUpdate(c *cli.Context) error {
	return runNote(c, noterecord.UpdateNoteTag)
}

func runDelete(c *cli.Context) error {
	return runNote(c, noterecord.DeleteNoteTag)
}

// a delete carries blank title and body; the program only reads the id
func runNote(c *cli.Context, variant noterecord.TagType) error {

	m := c.App.Metadata["config"].(*metadata)

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

	if m.verbose {
		fmt.Fprintf(m.e, "variant: %s\n", record.Variant)
		fmt.Fprintf(m.e, "id: %d\n", record.Id)
		fmt.Fprintf(m.e, "title: %q\n", record.Title)
		fmt.Fprintf(m.e, "body: %q\n", record.Body)
	}

	return submit(m, record, c.Bool("dry-run"))
}
