// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/hypersdk-wallet/cli"
	"github.com/ava-labs/hypersdk-wallet/config"
	"github.com/ava-labs/hypersdk-wallet/faucet"
	"github.com/ava-labs/hypersdk-wallet/rpc"
	"github.com/ava-labs/hypersdk-wallet/utils"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

const (
	tokensFlag = "tokens"
	toFlag     = "to"
)

type wallet struct {
	logFactory *logFactory
	log        logging.Logger

	cfg       cli.Config
	out       io.Writer
	colorMode formatter.ColorMode
}

// newRootCmd builds the wallet command. Command output is written to [out].
func newRootCmd(out io.Writer) *cobra.Command {
	w := &wallet{log: logging.NoLog{}, out: out}
	cmd := &cobra.Command{
		Use:   "hypersdk-wallet [command]",
		Short: "Wallet for checking balances, requesting airdrops and sending payments",
		// Unknown subcommands reach RunE so they are reported like a missing
		// one.
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: w.init,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return w.run(cmd.Context(), name, cli.Args{})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(leaderKey, "l", "", "path to a JSON file describing the leader node")
	flags.StringP(keypairKey, "k", "", fmt.Sprintf("path to the keypair file (default %s)", config.DefaultKeypairPath))
	flags.String(faucetKey, "", "faucet address (default: leader host on the faucet port)")
	flags.String(logLevelKey, "", "log level (default INFO)")
	flags.String(logDirKey, "", "log directory (default ~/.hypersdk-wallet/logs)")
	flags.String(configKey, "", "config file (default ~/.hypersdk-wallet/config.yaml)")
	flags.Bool(noColorKey, false, "disable coloured output")
	flags.BoolP(verboseKey, "v", false, "also write logs to stderr")

	cmd.AddCommand(
		w.newAddressCmd(),
		w.newBalanceCmd(),
		w.newAirDropCmd(),
		w.newPayCmd(),
		w.newConfirmCmd(),
	)

	cobra.OnFinalize(w.close)
	return cmd
}

// init resolves everything a command needs. The keypair is loaded here so a
// missing or malformed keypair fails before any command runs.
func (w *wallet) init(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString(configKey)
	if err != nil {
		return err
	}
	if err := loadConfigFile(configPath); err != nil {
		return err
	}

	if err := w.initLogger(cmd); err != nil {
		return err
	}

	keypairPath, err := utils.ExpandHome(getConfigValue(cmd, keypairKey, config.DefaultKeypairPath))
	if err != nil {
		return err
	}
	keypair, err := config.LoadKeypair(keypairPath)
	if err != nil {
		return fmt.Errorf("failed to load keypair: %w", err)
	}

	leader := config.DefaultLeader()
	if leaderPath := getConfigValue(cmd, leaderKey, ""); leaderPath != "" {
		leaderPath, err = utils.ExpandHome(leaderPath)
		if err != nil {
			return err
		}
		leader, err = config.LoadNodeInfo(leaderPath)
		if err != nil {
			return fmt.Errorf("failed to load leader: %w", err)
		}
	}

	faucetAddr := getConfigValue(cmd, faucetKey, "")
	if faucetAddr == "" {
		faucetAddr, err = leader.FaucetAddress()
		if err != nil {
			return err
		}
	}

	noColor, err := cmd.Flags().GetBool(noColorKey)
	if err != nil {
		return err
	}
	w.colorMode = formatter.ColorModeTerminal
	if noColor {
		w.colorMode = formatter.ColorModeNone
	}

	w.cfg = cli.Config{
		Leader:     leader,
		FaucetAddr: faucetAddr,
		Keypair:    keypair,
	}
	w.log.Info("loaded configuration",
		zap.String("keypair", keypairPath),
		zap.Stringer("account", keypair.PublicKey()),
		zap.String("rpu", leader.ContactInfo.Requests),
		zap.String("tpu", leader.ContactInfo.Transactions),
		zap.String("faucet", faucetAddr),
	)
	return nil
}

func (w *wallet) initLogger(cmd *cobra.Command) error {
	level, err := logging.ToLevel(getConfigValue(cmd, logLevelKey, logging.Info.String()))
	if err != nil {
		return err
	}
	logDir := getConfigValue(cmd, logDirKey, "")
	if logDir == "" {
		dir, err := walletDir()
		if err != nil {
			return err
		}
		logDir, err = utils.InitSubDirectory(dir, "logs")
		if err != nil {
			return err
		}
	} else {
		logDir, err = utils.ExpandHome(logDir)
		if err != nil {
			return err
		}
	}
	verbose, err := cmd.Flags().GetBool(verboseKey)
	if err != nil {
		return err
	}

	w.logFactory = newLogFactory(logDir, level, verbose)
	w.log, err = w.logFactory.Make("wallet")
	return err
}

// run parses and executes a single command against the configured leader.
func (w *wallet) run(ctx context.Context, name string, args cli.Args) error {
	command, err := cli.ParseCommand(w.out, name, args, w.cfg.Keypair.PublicKey())
	if err != nil {
		return err
	}

	client, err := rpc.NewThinClient(
		w.log,
		w.cfg.Leader.ContactInfo.Requests,
		w.cfg.Leader.ContactInfo.Transactions,
	)
	if err != nil {
		return err
	}
	defer client.Close()

	cfg := w.cfg
	cfg.Command = command
	h := cli.NewHandler(
		w.log,
		client,
		faucet.NewRequester(w.log, cfg.FaucetAddr),
		w.out,
		w.colorMode,
	)
	return h.Process(ctx, &cfg)
}

func (w *wallet) close() {
	if w.logFactory != nil {
		w.logFactory.Close()
	}
}

func (w *wallet) newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   cli.AddressCmd,
		Short: "Get your public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return w.run(cmd.Context(), cli.AddressCmd, cli.Args{})
		},
	}
}

func (w *wallet) newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   cli.BalanceCmd,
		Short: "Get your account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return w.run(cmd.Context(), cli.BalanceCmd, cli.Args{})
		},
	}
}

func (w *wallet) newAirDropCmd() *cobra.Command {
	var tokens string
	cmd := &cobra.Command{
		Use:   cli.AirDropCmd,
		Short: "Request a batch of tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return w.run(cmd.Context(), cli.AirDropCmd, cli.Args{Tokens: tokens})
		},
	}
	cmd.Flags().StringVarP(&tokens, tokensFlag, "t", "", "the number of tokens to request")
	_ = cmd.MarkFlagRequired(tokensFlag)
	return cmd
}

func (w *wallet) newPayCmd() *cobra.Command {
	var tokens, to string
	cmd := &cobra.Command{
		Use:   cli.PayCmd,
		Short: "Send tokens to a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return w.run(cmd.Context(), cli.PayCmd, cli.Args{
				Tokens: tokens,
				To:     to,
				ToSet:  cmd.Flags().Changed(toFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&tokens, tokensFlag, "t", "", "the number of tokens to send")
	cmd.Flags().StringVar(&to, toFlag, "", "the public key of the recipient (default: yourself)")
	_ = cmd.MarkFlagRequired(tokensFlag)
	return cmd
}

func (w *wallet) newConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   cli.ConfirmCmd + " <signature>",
		Short: "Confirm your last payment by signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return w.run(cmd.Context(), cli.ConfirmCmd, cli.Args{Signature: args[0]})
		},
	}
}
