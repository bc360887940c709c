// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/utils"
)

// ContactInfo holds the addresses a node serves.
type ContactInfo struct {
	// Requests is the UDP address of the query channel.
	Requests string `json:"rpu"`
	// Transactions is the UDP address of the transaction channel.
	Transactions string `json:"tpu"`
}

// NodeInfo describes the node the wallet talks to.
type NodeInfo struct {
	ID          ed25519.PublicKey `json:"id"`
	ContactInfo ContactInfo       `json:"contact_info"`
}

// NewLeader returns the descriptor of a node whose gossip port is [port] on
// [host]. The query and transaction channels sit on the following ports.
func NewLeader(host string, port int) NodeInfo {
	return NodeInfo{
		ContactInfo: ContactInfo{
			Requests:     net.JoinHostPort(host, strconv.Itoa(port+consts.DefaultRequestsPort-consts.DefaultGossipPort)),
			Transactions: net.JoinHostPort(host, strconv.Itoa(port+consts.DefaultTransactionsPort-consts.DefaultGossipPort)),
		},
	}
}

// DefaultLeader is used when no node descriptor is given.
func DefaultLeader() NodeInfo {
	return NewLeader(net.IPv4zero.String(), consts.DefaultGossipPort)
}

// FaucetAddress is the faucet endpoint of [n]: the host of its transaction
// channel on the fixed faucet port.
func (n NodeInfo) FaucetAddress() (string, error) {
	return utils.WithPort(n.ContactInfo.Transactions, consts.FaucetPort)
}

func (n NodeInfo) Verify() error {
	if _, _, err := net.SplitHostPort(n.ContactInfo.Requests); err != nil {
		return fmt.Errorf("%w: rpu: %w", ErrInvalidNodeInfo, err)
	}
	if _, _, err := net.SplitHostPort(n.ContactInfo.Transactions); err != nil {
		return fmt.Errorf("%w: tpu: %w", ErrInvalidNodeInfo, err)
	}
	return nil
}

// LoadNodeInfo reads a JSON node descriptor from [path].
func LoadNodeInfo(path string) (NodeInfo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return NodeInfo{}, err
	}
	var n NodeInfo
	if err := json.Unmarshal(b, &n); err != nil {
		return NodeInfo{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidNodeInfo, path, err)
	}
	if err := n.Verify(); err != nil {
		return NodeInfo{}, err
	}
	return n, nil
}
