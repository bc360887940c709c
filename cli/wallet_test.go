// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/faucet"
	"github.com/ava-labs/hypersdk-wallet/rpc"
	"github.com/ava-labs/hypersdk-wallet/testnet"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

type testWallet struct {
	node    *testnet.Node
	keypair ed25519.PrivateKey
}

func newTestWallet(t *testing.T) *testWallet {
	t.Helper()
	n, err := testnet.New(logging.NoLog{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, n.Close())
	})
	return &testWallet{node: n, keypair: newTestKey(t)}
}

// run parses and processes one command against the test node, the way the
// binary does, and returns what it printed.
func (w *testWallet) run(t *testing.T, name string, args Args) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, err := ParseCommand(&out, name, args, w.keypair.PublicKey())
	if err != nil {
		return out.String(), err
	}

	info := w.node.Info()
	client, err := rpc.NewThinClient(logging.NoLog{}, info.ContactInfo.Requests, info.ContactInfo.Transactions)
	require.NoError(t, err)
	defer client.Close()

	h := NewHandler(logging.NoLog{}, client, faucet.NewRequester(logging.NoLog{}, w.node.FaucetAddr()), &out, formatter.ColorModeNone)
	err = h.Process(context.Background(), &Config{
		Leader:     info,
		FaucetAddr: w.node.FaucetAddr(),
		Keypair:    w.keypair,
		Command:    cmd,
	})
	return out.String(), err
}

func TestWalletAddress(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)

	out, err := w.run(t, AddressCmd, Args{})
	require.NoError(err)
	require.Equal(w.keypair.PublicKey().String()+"\n", out)
	require.Zero(w.node.Stats.BalanceQueries.Load())
}

func TestWalletBalance(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)

	out, err := w.run(t, BalanceCmd, Args{})
	require.NoError(err)
	require.Equal("Balance requested...\nNo account found! Request an airdrop to get started.\n", out)

	w.node.SetBalance(w.keypair.PublicKey(), 42)
	out, err = w.run(t, BalanceCmd, Args{})
	require.NoError(err)
	require.Equal("Balance requested...\nYour balance is: 42\n", out)
}

func TestWalletBalanceTimeout(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)
	w.node.DropQueries(true)

	out, err := w.run(t, BalanceCmd, Args{})
	require.NoError(err)
	require.True(strings.HasPrefix(out, "Balance requested...\nAn error occurred: "))
	require.Contains(out, "i/o timeout")
	require.NotContains(out, "No account found")
}

func TestWalletAirDrop(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)

	out, err := w.run(t, AirDropCmd, Args{Tokens: "50"})
	require.NoError(err)
	require.Equal("Airdrop requested...\nAirdropping 50 tokens\nYour balance is: 50\n", out)
	require.Equal([]faucet.AirdropRequest{{RequestedAmount: 50, ClientPublicKey: w.keypair.PublicKey()}}, w.node.Airdrops())
	require.Equal(uint64(1), w.node.Stats.BalanceQueries.Load())
}

func TestWalletPayAndConfirm(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)
	w.node.SetBalance(w.keypair.PublicKey(), 100)
	other := newTestKey(t).PublicKey()

	out, err := w.run(t, PayCmd, Args{Tokens: "10", To: other.String(), ToSet: true})
	require.NoError(err)
	require.Equal(uint64(1), w.node.Stats.LastIDQueries.Load())

	sig, err := ed25519.ParseSignature(strings.TrimSuffix(out, "\n"))
	require.NoError(err)

	require.Eventually(func() bool {
		_, ok := w.node.Accepted(sig)
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(uint64(1), w.node.Stats.Transfers.Load())
	balance, _ := w.node.Balance(other)
	require.Equal(int64(10), balance)

	out, err = w.run(t, ConfirmCmd, Args{Signature: sig.String()})
	require.NoError(err)
	require.Equal("Confirmed\n", out)

	unknown := ed25519.Sign([]byte("never sent"), w.keypair)
	out, err = w.run(t, ConfirmCmd, Args{Signature: unknown.String()})
	require.NoError(err)
	require.Equal("Not found\n", out)
}

func TestWalletPayToSelf(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)
	w.node.SetBalance(w.keypair.PublicKey(), 100)

	out, err := w.run(t, PayCmd, Args{Tokens: "10"})
	require.NoError(err)
	sig, err := ed25519.ParseSignature(strings.TrimSuffix(out, "\n"))
	require.NoError(err)

	require.Eventually(func() bool {
		tx, ok := w.node.Accepted(sig)
		return ok && tx.Transfer.To == w.keypair.PublicKey()
	}, 5*time.Second, 10*time.Millisecond)
	balance, _ := w.node.Balance(w.keypair.PublicKey())
	require.Equal(int64(100), balance)
}

func TestWalletBadParameterSendsNothing(t *testing.T) {
	require := require.New(t)
	w := newTestWallet(t)

	out, err := w.run(t, PayCmd, Args{Tokens: "10", To: "not-a-key", ToSet: true})
	require.ErrorIs(err, ErrBadParameter)
	require.Contains(out, "Commands:")
	require.Zero(w.node.Stats.LastIDQueries.Load())
	require.Zero(w.node.Stats.Transfers.Load())
}
