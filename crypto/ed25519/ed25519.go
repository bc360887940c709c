// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/hdevalence/ed25519consensus"
	"github.com/mr-tron/base58"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// We use the ZIP-215 specification for ed25519 signature
// verification (https://zips.z.cash/zip-0215) because it provides
// an explicit validity criteria for signatures and is broadly
// compatible with signatures produced by almost all ed25519
// implementations (which don't require canonically-encoded points).
const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey
	// is formatted as privateKey = seed|publicKey. We use this const
	// to extract the publicKey below.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var (
	EmptyPublicKey  = [ed25519.PublicKeySize]byte{}
	EmptyPrivateKey = [ed25519.PrivateKeySize]byte{}
	EmptySignature  = [ed25519.SignatureSize]byte{}
)

// GeneratePrivateKey returns a Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PrivateKeyFromBytes copies b into a PrivateKey. The public half of b must
// match the key derived from its seed.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeyLen, len(b))
	}
	derived := ed25519.NewKeyFromSeed(b[:PrivateKeySeedLen])
	if !ed25519.PublicKey(derived[PrivateKeySeedLen:]).Equal(ed25519.PublicKey(b[PrivateKeySeedLen:])) {
		return EmptyPrivateKey, fmt.Errorf("%w: public key does not match seed", ErrInvalidPrivateKey)
	}
	return PrivateKey(b), nil
}

// PublicKey returns a PublicKey associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Sign returns a valid signature for msg using pk.
func Sign(msg []byte, pk PrivateKey) Signature {
	sig := ed25519.Sign(pk[:], msg)
	return Signature(sig)
}

// Verify returns whether s is a valid signature of msg by p.
func Verify(msg []byte, p PublicKey, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}

// String returns the base-58 encoding of p.
func (p PublicKey) String() string {
	return base58.Encode(p[:])
}

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PublicKey) UnmarshalText(text []byte) error {
	pk, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*p = pk
	return nil
}

// ParsePublicKey decodes a base-58 string that must hold exactly
// PublicKeyLen bytes.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := decodeExact(s, PublicKeyLen)
	if err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return PublicKey(b), nil
}

// String returns the base-58 encoding of s.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	sig, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// ParseSignature decodes a base-58 string that must hold exactly
// SignatureLen bytes.
func ParseSignature(s string) (Signature, error) {
	b, err := decodeExact(s, SignatureLen)
	if err != nil {
		return EmptySignature, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return Signature(b), nil
}

func decodeExact(s string, size int) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("decoded %d bytes, expected %d", len(b), size)
	}
	return b, nil
}
