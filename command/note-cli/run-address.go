// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/solnote/keypair"
	"github.com/bitmark-inc/solnote/programaddress"
)

type addressReply struct {
	Owner   solana.PublicKey        `json:"owner"`
	Program solana.PublicKey        `json:"program"`
	Id      uint16                  `json:"id"`
	Account *programaddress.Address `json:"account"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c.Uint("id"))
	if nil != err {
		return err
	}

	program, err := keypair.PublicKeyFromBase58(m.config.ProgramId)
	if nil != err {
		return err
	}

	var owner solana.PublicKey
	if o := c.String("owner"); "" != o {
		owner, err = keypair.PublicKeyFromBase58(o)
		if nil != err {
			return err
		}
	} else {
		privateKey, err := keypair.PrivateKeyFromBase58(m.config.PrivateKey)
		if nil != err {
			return err
		}
		owner = keypair.PublicKeyOf(privateKey)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "program: %s\n", program)
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	address, err := programaddress.Derive(owner, id, program)
	if nil != err {
		return err
	}

	return printJson(m.w, addressReply{
		Owner:   owner,
		Program: program,
		Id:      id,
		Account: address,
	})
}
