// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

var (
	TestPrivateKey = PrivateKey(
		[PrivateKeyLen]byte{
			32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
			109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
			253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
			12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
			143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
			182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
		},
	)
	TestPublicKey = []byte{
		115, 50, 124, 153, 59, 53, 196, 150, 168, 143, 151, 235,
		222, 128, 136, 161, 9, 40, 139, 85, 182, 153, 68, 135,
		62, 166, 45, 235, 251, 246, 69, 7,
	}
	oed25519options = &oed25519.Options{
		Verify: oed25519.VerifyOptionsZIP_215,
	}
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	const numKeysToGenerate int = 10

	m := make(map[PrivateKey]bool)
	for i := 0; i < numKeysToGenerate; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err, "Error Generating Private Key")
		require.NotEqual(EmptyPrivateKey, priv, "PrivateKey is empty")
		require.False(m[priv], "Duplicate PrivateKey generated")
		m[priv] = true
	}
}

func TestPublicKeyValid(t *testing.T) {
	require := require.New(t)
	var expectedPubKey PublicKey
	copy(expectedPubKey[:], TestPublicKey)
	require.Equal(expectedPubKey, TestPrivateKey.PublicKey(), "PublicKey not equal to Expected PublicKey")
}

func TestPrivateKeyFromBytes(t *testing.T) {
	require := require.New(t)

	generated, err := GeneratePrivateKey()
	require.NoError(err)

	priv, err := PrivateKeyFromBytes(generated[:])
	require.NoError(err)
	require.Equal(generated, priv)

	_, err = PrivateKeyFromBytes(generated[:PrivateKeySeedLen])
	require.ErrorIs(err, ErrInvalidPrivateKey)

	tampered := generated
	tampered[PrivateKeyLen-1]++
	_, err = PrivateKeyFromBytes(tampered[:])
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestSignVerify(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	sig := Sign(msg, TestPrivateKey)
	require.Equal(Signature(ed25519.Sign(TestPrivateKey[:], msg)), sig)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("diff msg"), TestPrivateKey.PublicKey(), sig))

	sig[0]++
	require.False(Verify(msg, TestPrivateKey.PublicKey(), sig))
}

func TestVerifyMatchesZIP215(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 64; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		msg := make([]byte, 128)
		_, err = rand.Read(msg)
		require.NoError(err)

		sig := Sign(msg, priv)
		pub := priv.PublicKey()
		require.Equal(
			oed25519.VerifyWithOptions(pub[:], msg, sig[:], oed25519options),
			Verify(msg, pub, sig),
		)
	}
}

func TestPublicKeyTextRoundTrip(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 32; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		pub := priv.PublicKey()

		parsed, err := ParsePublicKey(pub.String())
		require.NoError(err)
		require.Equal(pub, parsed)
		require.Equal(pub.String(), parsed.String())

		sig := Sign([]byte{byte(i)}, priv)
		parsedSig, err := ParseSignature(sig.String())
		require.NoError(err)
		require.Equal(sig, parsedSig)
		require.Equal(sig.String(), parsedSig.String())
	}
}

func TestParseWrongWidth(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		pubErr bool
		sigErr bool
	}{
		{
			name:   "empty",
			input:  "",
			pubErr: true,
			sigErr: true,
		},
		{
			name:   "short",
			input:  base58.Encode(make([]byte, PublicKeyLen-1)),
			pubErr: true,
			sigErr: true,
		},
		{
			name:   "public key width",
			input:  base58.Encode(TestPublicKey),
			pubErr: false,
			sigErr: true,
		},
		{
			name:   "signature width",
			input:  base58.Encode(make([]byte, SignatureLen)),
			pubErr: true,
			sigErr: false,
		},
		{
			name:   "not base58",
			input:  "0OIl",
			pubErr: true,
			sigErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := ParsePublicKey(tt.input)
			if tt.pubErr {
				require.ErrorIs(err, ErrInvalidPublicKey)
			} else {
				require.NoError(err)
			}

			_, err = ParseSignature(tt.input)
			if tt.sigErr {
				require.ErrorIs(err, ErrInvalidSignature)
			} else {
				require.NoError(err)
			}
		})
	}
}

func TestPublicKeyUnmarshalText(t *testing.T) {
	require := require.New(t)

	var pk PublicKey
	require.NoError(pk.UnmarshalText([]byte(TestPrivateKey.PublicKey().String())))
	require.Equal(TestPrivateKey.PublicKey(), pk)

	require.ErrorIs(pk.UnmarshalText([]byte("abc")), ErrInvalidPublicKey)
}
