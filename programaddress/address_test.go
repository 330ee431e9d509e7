// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package programaddress_test

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solnote/programaddress"
)

var (
	owner   = solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	program = solana.MustPublicKeyFromBase58("HFhnUdFXZmqVzKr3C3BmS9ZJY4RARnWpHweAFh4S66EZ")
)

func TestIdSeed(t *testing.T) {
	items := []struct {
		id       uint16
		expected []byte
	}{
		{0, []byte{0x00, 0x00}},
		{1, []byte{0x01, 0x00}},
		{0x0102, []byte{0x02, 0x01}},
		{0xffff, []byte{0xff, 0xff}},
	}
	for _, item := range items {
		seed := programaddress.IdSeed(item.id)
		if !bytes.Equal(item.expected, seed) {
			t.Errorf("id: %d  seed: %x  expected: %x", item.id, seed, item.expected)
		}
	}
}

func TestSeedOrder(t *testing.T) {
	seeds := programaddress.Seeds(owner, 7)
	if 2 != len(seeds) {
		t.Fatalf("seed count: %d  expected: 2", len(seeds))
	}
	assert.Equal(t, owner.Bytes(), seeds[0], "owner key must be first")
	assert.Equal(t, []byte{0x07, 0x00}, seeds[1], "id must be second")
}

func TestDeriveDeterministic(t *testing.T) {
	first, err := programaddress.Derive(owner, 0, program)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	second, err := programaddress.Derive(owner, 0, program)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	assert.Equal(t, first, second, "derivation is not deterministic")

	// agrees with the SDK called directly
	expected, bump, err := solana.FindProgramAddress([][]byte{owner.Bytes(), {0x00, 0x00}}, program)
	if nil != err {
		t.Fatalf("sdk derive error: %s", err)
	}
	assert.Equal(t, expected, first.PublicKey, "wrong address")
	assert.Equal(t, bump, first.Bump, "wrong bump")

	assert.True(t, first.Verify(owner, 0, program), "bump does not recreate address")
	assert.False(t, first.Verify(owner, 1, program), "verified against wrong id")
}

func TestDeriveDistinct(t *testing.T) {
	seen := make(map[solana.PublicKey]uint16)
	for id := uint16(0); id < 16; id += 1 {
		a, err := programaddress.Derive(owner, id, program)
		if nil != err {
			t.Fatalf("id: %d  derive error: %s", id, err)
		}
		if previous, ok := seen[a.PublicKey]; ok {
			t.Errorf("id: %d and id: %d derive the same address: %s", id, previous, a.PublicKey)
		}
		seen[a.PublicKey] = id
	}

	other := solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	a, _ := programaddress.Derive(owner, 0, program)
	b, _ := programaddress.Derive(other, 0, program)
	assert.NotEqual(t, a.PublicKey, b.PublicKey, "owner does not affect address")
}
