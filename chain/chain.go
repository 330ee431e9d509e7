// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/bitmark-inc/solnote/fault"
)

// names of all clusters
const (
	Devnet      = "devnet"
	Testnet     = "testnet"
	MainnetBeta = "mainnet-beta"
	Localnet    = "localnet"
)

// Default - cluster used when none is configured
const Default = Devnet

const explorerBase = "https://explorer.solana.com/tx/"

// Valid - validate a cluster name
func Valid(name string) bool {
	switch name {
	case Devnet, Testnet, MainnetBeta, Localnet:
		return true
	default:
		return false
	}
}

// Canonical - convert a user supplied cluster name or alias to its
// canonical name; blank selects the default
func Canonical(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default, nil
	case Devnet, "dev", "development":
		return Devnet, nil
	case Testnet, "test", "testing":
		return Testnet, nil
	case MainnetBeta, "mainnet", "main", "live":
		return MainnetBeta, nil
	case Localnet, "local", "localhost":
		return Localnet, nil
	default:
		return "", fault.ErrInvalidCluster
	}
}

// Endpoints - the JSON-RPC and websocket URLs of a cluster
func Endpoints(name string) (string, string, error) {
	switch name {
	case Devnet:
		return rpc.DevNet_RPC, rpc.DevNet_WS, nil
	case Testnet:
		return rpc.TestNet_RPC, rpc.TestNet_WS, nil
	case MainnetBeta:
		return rpc.MainNetBeta_RPC, rpc.MainNetBeta_WS, nil
	case Localnet:
		return rpc.LocalNet_RPC, rpc.LocalNet_WS, nil
	default:
		return "", "", fault.ErrInvalidCluster
	}
}

// ExplorerURL - link to a transaction on the block explorer
//
// the explorer shows mainnet-beta when no cluster is given; a local
// cluster is reached through the custom URL parameter
func ExplorerURL(signature string, cluster string) string {
	switch cluster {
	case MainnetBeta:
		return explorerBase + signature
	case Localnet:
		return fmt.Sprintf("%s%s?cluster=custom&customUrl=%s", explorerBase, signature, rpc.LocalNet_RPC)
	default:
		return fmt.Sprintf("%s%s?cluster=%s", explorerBase, signature, cluster)
	}
}
