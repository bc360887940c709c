// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hypersdk-wallet/chain"
	"github.com/ava-labs/hypersdk-wallet/codec"
	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

// ThinClient talks to a single node over two UDP sockets: one for queries
// (balance, last id, signature status) and one for submitting transactions.
// It is not safe for concurrent use.
type ThinClient struct {
	log logging.Logger

	requestsAddr     *net.UDPAddr
	transactionsAddr *net.UDPAddr

	requests     *net.UDPConn
	transactions *net.UDPConn

	readTimeout time.Duration
	buf         []byte
}

// NewThinClient binds two sockets on ephemeral local ports. [requestsAddr] and
// [transactionsAddr] are the node's query and transaction addresses.
func NewThinClient(log logging.Logger, requestsAddr, transactionsAddr string) (*ThinClient, error) {
	rpu, err := net.ResolveUDPAddr("udp", requestsAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requests address %q: %w", requestsAddr, err)
	}
	tpu, err := net.ResolveUDPAddr("udp", transactionsAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transactions address %q: %w", transactionsAddr, err)
	}
	requests, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero})
	if err != nil {
		return nil, fmt.Errorf("failed to bind requests socket: %w", err)
	}
	transactions, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero})
	if err != nil {
		_ = requests.Close()
		return nil, fmt.Errorf("failed to bind transactions socket: %w", err)
	}
	log.Debug("bound client sockets",
		zap.Stringer("requests", requests.LocalAddr()),
		zap.Stringer("transactions", transactions.LocalAddr()),
		zap.Stringer("rpu", rpu),
		zap.Stringer("tpu", tpu),
	)
	return &ThinClient{
		log:              log,
		requestsAddr:     rpu,
		transactionsAddr: tpu,
		requests:         requests,
		transactions:     transactions,
		readTimeout:      consts.ReadTimeout,
		buf:              make([]byte, consts.MaxDatagramSize),
	}, nil
}

// GetBalance asks the node for the balance of [account]. If the node has no
// record of the account, ErrAccountNotFound is returned. A timeout or a
// malformed reply is returned as a different error.
func (c *ThinClient) GetBalance(ctx context.Context, account ed25519.PublicKey) (int64, error) {
	var reply BalanceReply
	err := c.request(ctx, GetBalanceKind, GetBalanceArgs{Account: account}, func(kind byte, msg []byte) (bool, error) {
		if kind != BalanceKind {
			return false, nil
		}
		if err := codec.Unmarshal(msg, &reply); err != nil {
			return false, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		return reply.Account == account, nil
	})
	if err != nil {
		return 0, err
	}
	if !reply.Found {
		return 0, ErrAccountNotFound
	}
	return reply.Amount, nil
}

// GetLastID returns the most recent ledger id. A transfer must embed a fresh
// id, so the result is never cached.
func (c *ThinClient) GetLastID(ctx context.Context) (ids.ID, error) {
	var reply LastIDReply
	err := c.request(ctx, GetLastIDKind, GetLastIDArgs{}, func(kind byte, msg []byte) (bool, error) {
		if kind != LastIDKind {
			return false, nil
		}
		if err := codec.Unmarshal(msg, &reply); err != nil {
			return false, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		return true, nil
	})
	if err != nil {
		return ids.Empty, err
	}
	return reply.ID, nil
}

// Transfer signs a transfer of [tokens] from the owner of [priv] to [to] and
// sends it to the node. The node does not acknowledge transactions, so the
// returned signature only proves the transaction was sent. Use
// CheckSignature to see whether it was accepted.
func (c *ThinClient) Transfer(
	ctx context.Context,
	tokens int64,
	priv ed25519.PrivateKey,
	to ed25519.PublicKey,
	lastID ids.ID,
) (ed25519.Signature, error) {
	tx, err := chain.NewTransaction(priv, to, tokens, lastID)
	if err != nil {
		return ed25519.EmptySignature, fmt.Errorf("failed to build transfer: %w", err)
	}
	msg, err := tx.Marshal()
	if err != nil {
		return ed25519.EmptySignature, fmt.Errorf("failed to marshal transfer: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.transactions.SetWriteDeadline(deadline); err != nil {
			return ed25519.EmptySignature, err
		}
	}
	if _, err := c.transactions.WriteToUDP(msg, c.transactionsAddr); err != nil {
		return ed25519.EmptySignature, fmt.Errorf("failed to send transfer: %w", err)
	}
	c.log.Debug("sent transfer",
		zap.Stringer("to", to),
		zap.Int64("tokens", tokens),
		zap.Stringer("lastID", lastID),
		zap.Stringer("signature", tx.Signature),
	)
	return tx.Signature, nil
}

// CheckSignature reports whether the node has accepted a transaction with
// signature [sig]. Any failure to get an answer is reported as false.
func (c *ThinClient) CheckSignature(ctx context.Context, sig ed25519.Signature) bool {
	var reply SignatureStatusReply
	err := c.request(ctx, GetSignatureKind, GetSignatureArgs{Signature: sig}, func(kind byte, msg []byte) (bool, error) {
		if kind != SignatureStatusKind {
			return false, nil
		}
		if err := codec.Unmarshal(msg, &reply); err != nil {
			return false, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		return reply.Signature == sig, nil
	})
	if err != nil {
		c.log.Warn("signature lookup failed",
			zap.Stringer("signature", sig),
			zap.Error(err),
		)
		return false
	}
	return reply.Known
}

// Close releases both sockets.
func (c *ThinClient) Close() error {
	return errors.Join(c.requests.Close(), c.transactions.Close())
}

// request sends one query and feeds every reply to [handle] until it reports
// done, returns an error, or a read times out. Replies to other queries are
// skipped.
func (c *ThinClient) request(
	ctx context.Context,
	kind byte,
	args any,
	handle func(kind byte, msg []byte) (bool, error),
) error {
	msg, err := codec.Marshal(kind, args, consts.MaxDatagramSize)
	if err != nil {
		return err
	}
	if _, err := c.requests.WriteToUDP(msg, c.requestsAddr); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	for {
		deadline := time.Now().Add(c.readTimeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		if err := c.requests.SetReadDeadline(deadline); err != nil {
			return err
		}
		n, from, err := c.requests.ReadFromUDP(c.buf)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		reply := c.buf[:n]
		replyKind, err := codec.Kind(reply)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		if replyKind > maxReplyKind {
			return fmt.Errorf("%w: %w %d", ErrUnexpectedResponse, codec.ErrUnknownKind, replyKind)
		}
		done, err := handle(replyKind, reply)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		c.log.Debug("skipping stale reply",
			zap.Stringer("from", from),
			zap.Uint8("kind", replyKind),
		)
	}
}
