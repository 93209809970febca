// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [options] <vault>",
	Short: "Withdraws the full balance of a matured vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := getInstanceOp(args)
		if err != nil {
			return err
		}
		_, err = issue(&chain.WithdrawTx{BaseTx: &chain.BaseTx{}, Vault: id})
		return err
	},
}
