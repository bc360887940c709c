// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/ava-labs/avalanchego/utils/perms"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

const DefaultKeypairPath = "~/.config/hypersdk/id.json"

// LoadKeypair reads a keypair stored as a JSON array of the 64 private key
// bytes (seed followed by public key).
func LoadKeypair(path string) (ed25519.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	// encoding/json decodes []byte from base64, so read plain numbers.
	var raw []int
	if err := json.Unmarshal(b, &raw); err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: %s: %w", ErrInvalidKeypair, path, err)
	}
	key := make([]byte, len(raw))
	for i, v := range raw {
		if v < 0 || v > math.MaxUint8 {
			return ed25519.EmptyPrivateKey, fmt.Errorf("%w: %s: byte %d out of range", ErrInvalidKeypair, path, i)
		}
		key[i] = byte(v)
	}
	priv, err := ed25519.PrivateKeyFromBytes(key)
	if err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: %s: %w", ErrInvalidKeypair, path, err)
	}
	return priv, nil
}

// SaveKeypair writes [priv] to [path] in the format read by LoadKeypair.
func SaveKeypair(path string, priv ed25519.PrivateKey) error {
	raw := make([]int, len(priv))
	for i, v := range priv {
		raw[i] = int(v)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, perms.ReadWrite)
}
