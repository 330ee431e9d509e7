// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"io"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"

	"github.com/bitmark-inc/solnote/fault"
)

// Client - to hold RPC connections to one cluster
type Client struct {
	rpcClient *rpc.Client
	wsClient  *ws.Client
	verbose   bool
	handle    io.Writer // if verbose is set output items here
}

// NewClient - create the JSON-RPC client and open the websocket used
// to wait for confirmations
func NewClient(ctx context.Context, rpcURL string, wsURL string, verbose bool, handle io.Writer) (*Client, error) {

	wsClient, err := ws.Connect(ctx, wsURL)
	if nil != err {
		return nil, fault.Wrap(fault.ErrConnectionFailed, err)
	}

	r := &Client{
		rpcClient: rpc.New(rpcURL),
		wsClient:  wsClient,
		verbose:   verbose,
		handle:    handle,
	}
	return r, nil
}

// Close - shutdown the cluster connections
func (client *Client) Close() {
	client.wsClient.Close()
	client.rpcClient.Close()
}
