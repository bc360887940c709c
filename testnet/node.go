// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package testnet runs a single in-process node that serves the wallet
// protocol on loopback sockets: the query and transaction channels over UDP
// and the faucet over TCP. It keeps balances in memory and is meant for
// tests.
package testnet

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/hypersdk-wallet/chain"
	"github.com/ava-labs/hypersdk-wallet/codec"
	"github.com/ava-labs/hypersdk-wallet/config"
	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/faucet"
	"github.com/ava-labs/hypersdk-wallet/rpc"
)

// recentIDs is how many ledger ids a transfer may reference.
const recentIDs = 32

var (
	ErrUnknownLastID      = errors.New("unknown last id")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrDuplicateSignature = errors.New("duplicate signature")
)

// Stats counts the messages a Node has received.
type Stats struct {
	BalanceQueries   atomic.Uint64
	LastIDQueries    atomic.Uint64
	SignatureQueries atomic.Uint64
	Transfers        atomic.Uint64
	Airdrops         atomic.Uint64
}

type Node struct {
	log logging.Logger

	requests     *net.UDPConn
	transactions *net.UDPConn
	faucet       net.Listener

	Stats Stats

	// dropQueries makes the node ignore the query channel.
	dropQueries atomic.Bool

	lock       sync.Mutex
	balances   map[ed25519.PublicKey]int64
	accepted   map[ed25519.Signature]*chain.Transaction
	airdrops   []faucet.AirdropRequest
	lastID     ids.ID
	validIDs   map[ids.ID]struct{}
	idOrder    []ids.ID
	onTransfer func(*chain.Transaction, error)

	eg errgroup.Group
}

// New binds the node's sockets on 127.0.0.1 and starts serving them.
func New(log logging.Logger) (*Node, error) {
	loopback := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)}
	requests, err := net.ListenUDP("udp", loopback)
	if err != nil {
		return nil, err
	}
	transactions, err := net.ListenUDP("udp", loopback)
	if err != nil {
		_ = requests.Close()
		return nil, err
	}
	faucetListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		_ = requests.Close()
		_ = transactions.Close()
		return nil, err
	}

	genesis := ids.ID(hashing.ComputeHash256Array([]byte("genesis")))
	n := &Node{
		log:          log,
		requests:     requests,
		transactions: transactions,
		faucet:       faucetListener,
		balances:     make(map[ed25519.PublicKey]int64),
		accepted:     make(map[ed25519.Signature]*chain.Transaction),
		validIDs:     make(map[ids.ID]struct{}),
	}
	n.registerID(genesis)

	n.eg.Go(n.serveRequests)
	n.eg.Go(n.serveTransactions)
	n.eg.Go(n.serveFaucet)
	return n, nil
}

// Info returns a descriptor pointing at this node.
func (n *Node) Info() config.NodeInfo {
	return config.NodeInfo{
		ContactInfo: config.ContactInfo{
			Requests:     n.requests.LocalAddr().String(),
			Transactions: n.transactions.LocalAddr().String(),
		},
	}
}

// FaucetAddr returns the address of the node's faucet. Unlike a real
// deployment it is not on the fixed faucet port, so tests can run in
// parallel.
func (n *Node) FaucetAddr() string {
	return n.faucet.Addr().String()
}

// DropQueries makes the node ignore (or stop ignoring) the query channel, so
// clients see read timeouts.
func (n *Node) DropQueries(drop bool) {
	n.dropQueries.Store(drop)
}

// OnTransfer registers [f] to be called after every transfer is processed.
func (n *Node) OnTransfer(f func(*chain.Transaction, error)) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.onTransfer = f
}

// SetBalance overwrites the balance of [account], creating it if needed.
func (n *Node) SetBalance(account ed25519.PublicKey, balance int64) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.balances[account] = balance
}

// Balance returns the balance of [account] and whether it exists.
func (n *Node) Balance(account ed25519.PublicKey) (int64, bool) {
	n.lock.Lock()
	defer n.lock.Unlock()

	balance, ok := n.balances[account]
	return balance, ok
}

// LastID returns the current ledger id.
func (n *Node) LastID() ids.ID {
	n.lock.Lock()
	defer n.lock.Unlock()

	return n.lastID
}

// Accepted returns the transaction with signature [sig], if accepted.
func (n *Node) Accepted(sig ed25519.Signature) (*chain.Transaction, bool) {
	n.lock.Lock()
	defer n.lock.Unlock()

	tx, ok := n.accepted[sig]
	return tx, ok
}

// Airdrops returns every faucet request received so far.
func (n *Node) Airdrops() []faucet.AirdropRequest {
	n.lock.Lock()
	defer n.lock.Unlock()

	return append([]faucet.AirdropRequest(nil), n.airdrops...)
}

// Close stops serving and waits for the serving goroutines to exit.
func (n *Node) Close() error {
	err := errors.Join(
		n.requests.Close(),
		n.transactions.Close(),
		n.faucet.Close(),
	)
	return errors.Join(err, n.eg.Wait())
}

func (n *Node) serveRequests() error {
	buf := make([]byte, consts.MaxDatagramSize)
	for {
		size, from, err := n.requests.ReadFromUDP(buf)
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if n.dropQueries.Load() {
			continue
		}
		reply, err := n.handleRequest(buf[:size])
		if err != nil {
			n.log.Debug("dropping request",
				zap.Stringer("from", from),
				zap.Error(err),
			)
			continue
		}
		if _, err := n.requests.WriteToUDP(reply, from); err != nil {
			n.log.Debug("failed to reply",
				zap.Stringer("to", from),
				zap.Error(err),
			)
		}
	}
}

func (n *Node) handleRequest(msg []byte) ([]byte, error) {
	kind, err := codec.Kind(msg)
	if err != nil {
		return nil, err
	}

	n.lock.Lock()
	defer n.lock.Unlock()

	switch kind {
	case rpc.GetBalanceKind:
		n.Stats.BalanceQueries.Inc()
		var args rpc.GetBalanceArgs
		if err := codec.Unmarshal(msg, &args); err != nil {
			return nil, err
		}
		balance, ok := n.balances[args.Account]
		return codec.Marshal(rpc.BalanceKind, rpc.BalanceReply{
			Account: args.Account,
			Found:   ok,
			Amount:  balance,
		}, consts.MaxDatagramSize)
	case rpc.GetLastIDKind:
		n.Stats.LastIDQueries.Inc()
		return codec.Marshal(rpc.LastIDKind, rpc.LastIDReply{ID: n.lastID}, consts.MaxDatagramSize)
	case rpc.GetSignatureKind:
		n.Stats.SignatureQueries.Inc()
		var args rpc.GetSignatureArgs
		if err := codec.Unmarshal(msg, &args); err != nil {
			return nil, err
		}
		_, ok := n.accepted[args.Signature]
		return codec.Marshal(rpc.SignatureStatusKind, rpc.SignatureStatusReply{
			Signature: args.Signature,
			Known:     ok,
		}, consts.MaxDatagramSize)
	default:
		return nil, fmt.Errorf("%w: %d", codec.ErrUnknownKind, kind)
	}
}

func (n *Node) serveTransactions() error {
	buf := make([]byte, consts.MaxDatagramSize)
	for {
		size, _, err := n.transactions.ReadFromUDP(buf)
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		n.Stats.Transfers.Inc()
		tx, err := chain.UnmarshalTransaction(buf[:size])
		if err != nil {
			n.log.Debug("dropping transaction", zap.Error(err))
			continue
		}
		n.processTransfer(tx)
	}
}

func (n *Node) processTransfer(tx *chain.Transaction) {
	n.lock.Lock()
	defer n.lock.Unlock()

	err := n.applyTransfer(tx)
	if err != nil {
		n.log.Debug("rejected transfer",
			zap.Stringer("signature", tx.Signature),
			zap.Error(err),
		)
	}
	if n.onTransfer != nil {
		n.onTransfer(tx, err)
	}
}

// Assumes [n.lock] is held
func (n *Node) applyTransfer(tx *chain.Transaction) error {
	if err := tx.Verify(); err != nil {
		return err
	}
	t := tx.Transfer
	if _, ok := n.validIDs[t.LastID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLastID, t.LastID)
	}
	if _, ok := n.accepted[tx.Signature]; ok {
		return ErrDuplicateSignature
	}
	if t.Tokens <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, t.Tokens)
	}
	if n.balances[t.From] < t.Tokens {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientFunds, n.balances[t.From], t.Tokens)
	}
	n.balances[t.From] -= t.Tokens
	n.balances[t.To] += t.Tokens
	n.accepted[tx.Signature] = tx
	n.registerID(ids.ID(hashing.ComputeHash256Array(append(n.lastID[:], tx.Signature[:]...))))
	return nil
}

// Assumes [n.lock] is held
func (n *Node) registerID(id ids.ID) {
	n.lastID = id
	n.validIDs[id] = struct{}{}
	n.idOrder = append(n.idOrder, id)
	if len(n.idOrder) > recentIDs {
		delete(n.validIDs, n.idOrder[0])
		n.idOrder = n.idOrder[1:]
	}
}

func (n *Node) serveFaucet() error {
	for {
		conn, err := n.faucet.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := n.handleAirdrop(conn); err != nil {
			n.log.Debug("dropping airdrop request", zap.Error(err))
		}
	}
}

func (n *Node) handleAirdrop(conn net.Conn) error {
	defer conn.Close()

	msg, err := io.ReadAll(io.LimitReader(conn, faucet.MaxRequestSize+1))
	if err != nil {
		return err
	}
	if len(msg) > faucet.MaxRequestSize {
		return codec.ErrTooLarge
	}
	req, err := faucet.UnmarshalAirdropRequest(msg)
	if err != nil {
		return err
	}
	n.Stats.Airdrops.Inc()

	n.lock.Lock()
	defer n.lock.Unlock()

	n.airdrops = append(n.airdrops, *req)
	if req.RequestedAmount == 0 || req.RequestedAmount > math.MaxInt64 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, req.RequestedAmount)
	}
	n.balances[req.ClientPublicKey] += int64(req.RequestedAmount)
	return nil
}
