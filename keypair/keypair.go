// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/solnote/fault"
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PublicKey  solana.PublicKey
	PrivateKey solana.PrivateKey
}

// RawKeyPair - text version of the keys
type RawKeyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - generate new public/private keys from secure random data
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}

	keyPair := &KeyPair{
		PrivateKey: solana.PrivateKey(privateKey),
	}
	copy(keyPair.PublicKey[:], publicKey)

	rawKeyPair := &RawKeyPair{
		PublicKey:  base58.Encode(publicKey),
		PrivateKey: base58.Encode(privateKey),
	}
	return rawKeyPair, keyPair, nil
}

// PrivateKeyFromBase58 - decode a 64 byte signing key (seed followed
// by public key) and check that both halves agree
func PrivateKeyFromBase58(s string) (solana.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, fault.ErrMissingPrivateKey
	}

	k, err := base58.Decode(s)
	if nil != err {
		return nil, fault.Wrap(fault.ErrCannotDecodePrivateKey, err)
	}
	if ed25519.PrivateKeySize != len(k) {
		return nil, fault.Wrap(fault.ErrCannotDecodePrivateKey, fault.ErrKeyLength)
	}

	derived := ed25519.NewKeyFromSeed(k[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], k[ed25519.SeedSize:]) {
		return nil, fault.ErrPrivateKeyMismatch
	}
	return solana.PrivateKey(k), nil
}

// PublicKeyFromBase58 - decode a 32 byte program or account identity
func PublicKeyFromBase58(s string) (solana.PublicKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return solana.PublicKey{}, fault.ErrMissingProgramId
	}

	k, err := base58.Decode(s)
	if nil != err {
		return solana.PublicKey{}, fault.Wrap(fault.ErrCannotDecodeProgramId, err)
	}
	if ed25519.PublicKeySize != len(k) {
		return solana.PublicKey{}, fault.Wrap(fault.ErrCannotDecodeProgramId, fault.ErrKeyLength)
	}

	var publicKey solana.PublicKey
	copy(publicKey[:], k)
	return publicKey, nil
}

// PublicKeyOf - the public half of a signing key
func PublicKeyOf(privateKey solana.PrivateKey) solana.PublicKey {
	var publicKey solana.PublicKey
	copy(publicKey[:], privateKey[ed25519.SeedSize:])
	return publicKey
}
