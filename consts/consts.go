// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "time"

const (
	IDLen     = 32
	ByteLen   = 1
	BoolLen   = 1
	Uint64Len = 8
	Int64Len  = 8
	MaxUint64 = ^uint64(0)

	// MaxDatagramSize bounds every message exchanged with a node over UDP.
	MaxDatagramSize = 64 * 1024
)

const (
	// ReadTimeout bounds each read on the query socket.
	ReadTimeout = time.Second

	// AirdropSettleWait is how long the wallet waits after a faucet request
	// before looking at the balance. Faucet grants are not acknowledged, so
	// this is a heuristic and not a guarantee that the grant has landed.
	AirdropSettleWait = 100 * time.Millisecond
)

const (
	FaucetPort = 9900

	DefaultGossipPort       = 8000
	DefaultRequestsPort     = DefaultGossipPort + 2
	DefaultTransactionsPort = DefaultGossipPort + 3
)
