// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

// Request kinds accepted on a node's query channel.
const (
	GetBalanceKind byte = iota
	GetLastIDKind
	GetSignatureKind
)

// Reply kinds sent back on the query channel.
const (
	BalanceKind byte = iota
	LastIDKind
	SignatureStatusKind

	maxReplyKind = SignatureStatusKind
)

type GetBalanceArgs struct {
	Account ed25519.PublicKey `json:"account"`
}

type BalanceReply struct {
	Account ed25519.PublicKey `json:"account"`
	Found   bool              `json:"found"`
	Amount  int64             `json:"amount"`
}

type GetLastIDArgs struct{}

type LastIDReply struct {
	ID ids.ID `json:"id"`
}

type GetSignatureArgs struct {
	Signature ed25519.Signature `json:"signature"`
}

type SignatureStatusReply struct {
	Signature ed25519.Signature `json:"signature"`
	Known     bool              `json:"known"`
}
