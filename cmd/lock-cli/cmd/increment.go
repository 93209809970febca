// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
)

var incrementCmd = &cobra.Command{
	Use:   "increment [options] <register>",
	Short: "Increments the value of a register by one",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := getInstanceOp(args)
		if err != nil {
			return err
		}
		_, err = issue(&chain.IncrementValueTx{BaseTx: &chain.BaseTx{}, Register: id})
		return err
	},
}
