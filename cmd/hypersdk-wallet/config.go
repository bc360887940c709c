// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/hypersdk-wallet/utils"
)

const (
	walletFolder   = ".hypersdk-wallet"
	configFileName = "config"
	configFileType = "yaml"
)

// Keys shared by the command line and the config file.
const (
	leaderKey   = "leader"
	keypairKey  = "keypair"
	faucetKey   = "faucet"
	logLevelKey = "log-level"
	logDirKey   = "log-dir"
	configKey   = "config"
	noColorKey  = "no-color"
	verboseKey  = "verbose"
)

// walletDir returns ~/.hypersdk-wallet, creating it if needed.
func walletDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return utils.InitSubDirectory(homeDir, walletFolder)
}

// loadConfigFile reads [path] into viper. An empty path means
// ~/.hypersdk-wallet/config.yaml, which is created empty if missing.
func loadConfigFile(path string) error {
	if path == "" {
		dir, err := walletDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, configFileName+"."+configFileType)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(path, nil, perms.ReadWrite); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
		}
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(configFileType)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// getConfigValue checks the flag named [key] first, then the config file,
// then falls back to [def].
func getConfigValue(cmd *cobra.Command, key string, def string) string {
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value
	}

	if value := viper.GetString(key); value != "" {
		return value
	}

	return def
}
