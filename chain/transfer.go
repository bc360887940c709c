// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/hypersdk-wallet/codec"
	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

// TransferKind prefixes every transaction sent on the transaction channel.
const TransferKind byte = 0

// Transfer moves [Tokens] from [From] to [To]. [LastID] ties the transfer to
// a recent ledger id so the node can reject stale or replayed transfers.
type Transfer struct {
	From   ed25519.PublicKey `json:"from"`
	To     ed25519.PublicKey `json:"to"`
	Tokens int64             `json:"tokens"`
	LastID ids.ID            `json:"lastID"`
}

// Digest is the message covered by the transaction signature.
func (t *Transfer) Digest() ([]byte, error) {
	return borsh.Serialize(*t)
}

type Transaction struct {
	Transfer  Transfer          `json:"transfer"`
	Signature ed25519.Signature `json:"signature"`
}

// NewTransaction builds a transfer from the owner of [priv] and signs it.
func NewTransaction(priv ed25519.PrivateKey, to ed25519.PublicKey, tokens int64, lastID ids.ID) (*Transaction, error) {
	tx := &Transaction{
		Transfer: Transfer{
			From:   priv.PublicKey(),
			To:     to,
			Tokens: tokens,
			LastID: lastID,
		},
	}
	msg, err := tx.Transfer.Digest()
	if err != nil {
		return nil, err
	}
	tx.Signature = ed25519.Sign(msg, priv)
	return tx, nil
}

// Verify checks that the transaction was signed by its sender.
func (t *Transaction) Verify() error {
	msg, err := t.Transfer.Digest()
	if err != nil {
		return err
	}
	if !ed25519.Verify(msg, t.Transfer.From, t.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

func (t *Transaction) Marshal() ([]byte, error) {
	return codec.Marshal(TransferKind, *t, consts.MaxDatagramSize)
}

func UnmarshalTransaction(msg []byte) (*Transaction, error) {
	kind, err := codec.Kind(msg)
	if err != nil {
		return nil, err
	}
	if kind != TransferKind {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	tx := new(Transaction)
	if err := codec.Unmarshal(msg, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
