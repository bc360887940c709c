// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/faucet"
	"github.com/ava-labs/hypersdk-wallet/rpc"
)

//go:generate go run go.uber.org/mock/mockgen -source=dependencies.go -destination=mock_dependencies.go -package=cli

var (
	_ LedgerClient = (*rpc.ThinClient)(nil)
	_ Faucet       = (*faucet.Requester)(nil)
)

// LedgerClient is the subset of rpc.ThinClient the handler uses.
type LedgerClient interface {
	GetBalance(ctx context.Context, account ed25519.PublicKey) (int64, error)
	GetLastID(ctx context.Context) (ids.ID, error)
	Transfer(
		ctx context.Context,
		tokens int64,
		priv ed25519.PrivateKey,
		to ed25519.PublicKey,
		lastID ids.ID,
	) (ed25519.Signature, error)
	CheckSignature(ctx context.Context, sig ed25519.Signature) bool
}

type Faucet interface {
	RequestAirdrop(ctx context.Context, id ed25519.PublicKey, tokens uint64) error
}
