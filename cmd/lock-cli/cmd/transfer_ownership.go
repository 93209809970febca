// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
)

var transferOwnershipCmd = &cobra.Command{
	Use:   "transfer-ownership [options] <register> <to>",
	Short: "Hands ownership of a register to another address",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		_, err = issue(&chain.TransferOwnershipTx{BaseTx: &chain.BaseTx{}, Register: id, To: to})
		return err
	},
}
