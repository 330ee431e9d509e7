// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test set up
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// the note program deployed on devnet
const ProgramId = "HFhnUdFXZmqVzKr3C3BmS9ZJY4RARnWpHweAFh4S66EZ"

var (
	Payer       solana.PrivateKey
	PayerBase58 string
	Program     solana.PublicKey
	Blockhash   solana.Hash
)

func init() {
	Payer = solana.PrivateKey(ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x42}, ed25519.SeedSize)))
	PayerBase58 = base58.Encode(Payer)
	Program = solana.MustPublicKeyFromBase58(ProgramId)
	for i := range Blockhash {
		Blockhash[i] = byte(i + 1)
	}
}

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
