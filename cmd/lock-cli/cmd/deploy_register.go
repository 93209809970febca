// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/client"
)

var deployRegisterCmd = &cobra.Command{
	Use:   "deploy-register",
	Short: "Deploys a new register owned by the local key",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := issue(&chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}})
		if err != nil {
			return err
		}
		color.Green("register deployed to %s", id)

		cli := client.New(uri, requestTimeout)
		r, err := cli.Register(id)
		if err != nil {
			return err
		}
		client.PPRegister(id, r)
		return nil
	},
}
