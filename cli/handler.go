// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hypersdk-wallet/config"
	"github.com/ava-labs/hypersdk-wallet/consts"
	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
	"github.com/ava-labs/hypersdk-wallet/rpc"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// Config is everything a single invocation needs. It is built once and not
// modified afterwards.
type Config struct {
	Leader     config.NodeInfo
	FaucetAddr string
	Keypair    ed25519.PrivateKey
	Command    Command
}

type Handler struct {
	log    logging.Logger
	client LedgerClient
	faucet Faucet

	out   io.Writer
	f     formatter.Formatter
	sleep func(time.Duration)
}

func NewHandler(
	log logging.Logger,
	client LedgerClient,
	faucet Faucet,
	out io.Writer,
	colorMode formatter.ColorMode,
) *Handler {
	return &Handler{
		log:    log,
		client: client,
		faucet: faucet,
		out:    out,
		f:      formatter.New(colorMode),
		sleep:  time.Sleep,
	}
}

func (h *Handler) outf(format string, args ...interface{}) {
	fmt.Fprint(h.out, h.f.F(format, args...))
}

// Process runs the command in [cfg] once. Only the balance command turns
// lookup failures into output; every other failure is returned.
func (h *Handler) Process(ctx context.Context, cfg *Config) error {
	id := cfg.Keypair.PublicKey()
	h.log.Debug("processing command",
		zap.String("command", cfg.Command.Name()),
		zap.Stringer("account", id),
	)

	switch cmd := cfg.Command.(type) {
	case Address:
		h.outf("%s\n", id)
	case Balance:
		h.outf("{{yellow}}Balance requested...{{/}}\n")
		balance, err := h.client.GetBalance(ctx, id)
		switch {
		case err == nil:
			h.outf("Your balance is: %d\n", balance)
		case errors.Is(err, rpc.ErrAccountNotFound):
			h.outf("{{yellow}}No account found! Request an airdrop to get started.{{/}}\n")
		default:
			h.log.Debug("balance lookup failed", zap.Error(err))
			h.outf("{{red}}An error occurred:{{/}} %v\n", err)
		}
	case AirDrop:
		h.outf("{{yellow}}Airdrop requested...{{/}}\n")
		h.outf("Airdropping %d tokens\n", cmd.Tokens)
		// Negative amounts wrap, matching how the faucet reads the field.
		if err := h.faucet.RequestAirdrop(ctx, id, uint64(cmd.Tokens)); err != nil {
			return err
		}
		h.sleep(consts.AirdropSettleWait)
		balance, err := h.client.GetBalance(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get balance after airdrop: %w", err)
		}
		h.outf("Your balance is: %d\n", balance)
	case Pay:
		lastID, err := h.client.GetLastID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get last id: %w", err)
		}
		sig, err := h.client.Transfer(ctx, cmd.Tokens, cfg.Keypair, cmd.To, lastID)
		if err != nil {
			return err
		}
		h.outf("%s\n", sig)
	case Confirm:
		if h.client.CheckSignature(ctx, cmd.Signature) {
			h.outf("{{green}}Confirmed{{/}}\n")
		} else {
			h.outf("{{red}}Not found{{/}}\n")
		}
	default:
		return fmt.Errorf("%w: %T", ErrCommandNotRecognized, cfg.Command)
	}
	return nil
}
