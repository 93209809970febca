// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
)

var setValueCmd = &cobra.Command{
	Use:   "set-value [options] <register> <value>",
	Short: "Overwrites the value of a register",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		_, err = issue(&chain.SetValueTx{BaseTx: &chain.BaseTx{}, Register: id, Value: v})
		return err
	},
}
