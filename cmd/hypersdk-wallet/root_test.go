// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk-wallet/cli"
	"github.com/ava-labs/hypersdk-wallet/config"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/testnet"
)

type testEnv struct {
	home        string
	node        *testnet.Node
	keypair     ed25519.PrivateKey
	keypairPath string
	leaderPath  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	require := require.New(t)

	home := t.TempDir()
	t.Setenv("HOME", home)

	n, err := testnet.New(logging.NoLog{})
	require.NoError(err)
	t.Cleanup(func() {
		require.NoError(n.Close())
	})

	keypair, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	keypairPath := filepath.Join(home, "id.json")
	require.NoError(config.SaveKeypair(keypairPath, keypair))

	leader, err := json.Marshal(n.Info())
	require.NoError(err)
	leaderPath := filepath.Join(home, "leader.json")
	require.NoError(os.WriteFile(leaderPath, leader, perms.ReadWrite))

	return &testEnv{
		home:        home,
		node:        n,
		keypair:     keypair,
		keypairPath: keypairPath,
		leaderPath:  leaderPath,
	}
}

// execute runs the wallet with the test node's leader, keypair and faucet
// followed by [args].
func (e *testEnv) execute(args ...string) (string, error) {
	return e.executeRaw(append([]string{
		"--no-color",
		"--keypair", e.keypairPath,
		"--leader", e.leaderPath,
		"--faucet", e.node.FaucetAddr(),
	}, args...)...)
}

func (*testEnv) executeRaw(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddress(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	out, err := e.execute(cli.AddressCmd)
	require.NoError(err)
	require.Equal(e.keypair.PublicKey().String()+"\n", out)

	_, err = os.Stat(filepath.Join(e.home, walletFolder, "config.yaml"))
	require.NoError(err)
	_, err = os.Stat(filepath.Join(e.home, walletFolder, "logs", "wallet.log"))
	require.NoError(err)
}

func TestCommandNotRecognized(t *testing.T) {
	for _, args := range [][]string{{}, {"transfer"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			require := require.New(t)
			e := newTestEnv(t)

			out, err := e.execute(args...)
			require.ErrorIs(err, cli.ErrCommandNotRecognized)
			require.Contains(out, "Commands:")
		})
	}
}

func TestMissingKeypair(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	out, err := e.executeRaw("--keypair", filepath.Join(e.home, "missing.json"), cli.AddressCmd)
	require.ErrorIs(err, os.ErrNotExist)
	require.Empty(out)
}

func TestInvalidKeypair(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)
	path := filepath.Join(e.home, "short.json")
	require.NoError(os.WriteFile(path, []byte("[1, 2, 3]"), perms.ReadWrite))

	_, err := e.executeRaw("--keypair", path, cli.BalanceCmd)
	require.ErrorIs(err, config.ErrInvalidKeypair)
	require.Zero(e.node.Stats.BalanceQueries.Load())
}

func TestBalance(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	out, err := e.execute(cli.BalanceCmd)
	require.NoError(err)
	require.Equal("Balance requested...\nNo account found! Request an airdrop to get started.\n", out)
}

func TestAirDrop(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	out, err := e.execute(cli.AirDropCmd, "--tokens", "50")
	require.NoError(err)
	require.Equal("Airdrop requested...\nAirdropping 50 tokens\nYour balance is: 50\n", out)
	require.Equal(uint64(1), e.node.Stats.Airdrops.Load())
	require.Equal(uint64(1), e.node.Stats.BalanceQueries.Load())
}

func TestAirDropRequiresTokens(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	_, err := e.execute(cli.AirDropCmd)
	require.ErrorContains(err, "tokens")
	require.Zero(e.node.Stats.Airdrops.Load())
}

func TestPayBadRecipient(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	out, err := e.execute(cli.PayCmd, "--tokens", "10", "--to", "not-a-key")
	require.ErrorIs(err, cli.ErrBadParameter)
	require.Contains(out, "Commands:")
	require.Zero(e.node.Stats.LastIDQueries.Load())
}

func TestPayBadTokens(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	_, err := e.execute(cli.PayCmd, "--tokens", "ten")
	require.ErrorContains(err, "failed to parse tokens")
	require.NotErrorIs(err, cli.ErrBadParameter)
	require.Zero(e.node.Stats.LastIDQueries.Load())
}

func TestPay(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)
	e.node.SetBalance(e.keypair.PublicKey(), 100)

	out, err := e.execute(cli.PayCmd, "--tokens", "10")
	require.NoError(err)
	_, err = ed25519.ParseSignature(strings.TrimSuffix(out, "\n"))
	require.NoError(err)
	require.Equal(uint64(1), e.node.Stats.LastIDQueries.Load())
}

func TestConfirm(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)
	sig := ed25519.Sign([]byte("never sent"), e.keypair)

	out, err := e.execute(cli.ConfirmCmd, sig.String())
	require.NoError(err)
	require.Equal("Not found\n", out)

	_, err = e.execute(cli.ConfirmCmd)
	require.Error(err)
}

func TestConfigFile(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	configPath := filepath.Join(e.home, "wallet.yaml")
	contents := strings.Join([]string{
		"leader: " + e.leaderPath,
		"keypair: " + e.keypairPath,
		"faucet: " + e.node.FaucetAddr(),
		"log-level: debug",
	}, "\n")
	require.NoError(os.WriteFile(configPath, []byte(contents), perms.ReadWrite))

	out, err := e.executeRaw("--config", configPath, "--no-color", cli.BalanceCmd)
	require.NoError(err)
	require.Contains(out, "No account found!")
	require.Equal(uint64(1), e.node.Stats.BalanceQueries.Load())
}

func TestInvalidLogLevel(t *testing.T) {
	require := require.New(t)
	e := newTestEnv(t)

	_, err := e.execute("--log-level", "loud", cli.AddressCmd)
	require.Error(err)
}
