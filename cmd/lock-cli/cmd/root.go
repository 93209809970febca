// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "lock-cli" implements lockvm client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "lock-cli",
		Short:      "LockVM CLI",
		SuggestFor: []string{"lock-cli", "lockcli", "lockctl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		addressCmd,
		balanceCmd,
		deployVaultCmd,
		withdrawCmd,
		vaultInfoCmd,
		deployRegisterCmd,
		setValueCmd,
		incrementCmd,
		transferOwnershipCmd,
		getValueCmd,
		eventsCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".lock-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9650",
		"RPC endpoint for VM",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
