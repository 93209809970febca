// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "lockvm" serves time-locked vaults and owned registers over JSON-RPC.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/cmd/lockvm/version"
)

var rootCmd = &cobra.Command{
	Use:        "lockvm",
	Short:      "LockVM node",
	SuggestFor: []string{"lockvm"},
	RunE:       runFunc,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON-RPC API (default)",
	RunE:  runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		serveCmd,
		version.NewCommand(),
	)
	addFlags(rootCmd.Flags())
	addFlags(serveCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lockvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
