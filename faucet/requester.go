// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package faucet

import (
	"context"
	"fmt"
	"net"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

// Requester delivers airdrop requests to a faucet. Each request uses its own
// connection and nothing is read back: the faucet credits the account
// asynchronously and callers must poll the balance to observe it.
type Requester struct {
	log  logging.Logger
	addr string

	dialer net.Dialer
}

func NewRequester(log logging.Logger, addr string) *Requester {
	return &Requester{log: log, addr: addr}
}

// RequestAirdrop returns once the request has been fully written. No timeout
// is applied to the dial or the write; only [ctx] can abort the dial.
func (r *Requester) RequestAirdrop(ctx context.Context, id ed25519.PublicKey, tokens uint64) error {
	req := &AirdropRequest{
		RequestedAmount: tokens,
		ClientPublicKey: id,
	}
	msg, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal airdrop request: %w", err)
	}

	conn, err := r.dialer.DialContext(ctx, "tcp", r.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to faucet %s: %w", r.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(msg); err != nil {
		return fmt.Errorf("failed to send airdrop request: %w", err)
	}
	r.log.Debug("sent airdrop request",
		zap.String("faucet", r.addr),
		zap.Stringer("account", id),
		zap.Uint64("tokens", tokens),
	)
	return nil
}
