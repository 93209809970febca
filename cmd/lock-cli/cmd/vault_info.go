// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (

	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/client"
)

var vaultInfoCmd = &cobra.Command{
	Use:   "vault-info [options] <vault>",
	Short: "Reads the state of a vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := getInstanceOp(args)
		if err != nil {
			return err
		}
		cli := client.New(uri, requestTimeout)
		reply, err := cli.Vault(id)
		if err != nil {
			return err
		}
		client.PPVault(id, reply.Vault, reply.Matured)
		return nil
	},
}
