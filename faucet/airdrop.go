// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package faucet

import (
	"fmt"

	"github.com/ava-labs/hypersdk-wallet/codec"
	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

const (
	AirdropKind byte = 0

	// MaxRequestSize bounds a single faucet request.
	MaxRequestSize = consts.ByteLen + consts.Uint64Len + ed25519.PublicKeyLen
)

// AirdropRequest asks the faucet to credit [ClientPublicKey] with
// [RequestedAmount] tokens.
type AirdropRequest struct {
	RequestedAmount uint64            `json:"requestedAmount"`
	ClientPublicKey ed25519.PublicKey `json:"clientPublicKey"`
}

func (r *AirdropRequest) Marshal() ([]byte, error) {
	return codec.Marshal(AirdropKind, *r, MaxRequestSize)
}

func UnmarshalAirdropRequest(msg []byte) (*AirdropRequest, error) {
	kind, err := codec.Kind(msg)
	if err != nil {
		return nil, err
	}
	if kind != AirdropKind {
		return nil, fmt.Errorf("%w: %d", codec.ErrUnknownKind, kind)
	}
	r := new(AirdropRequest)
	if err := codec.Unmarshal(msg, r); err != nil {
		return nil, err
	}
	return r, nil
}
