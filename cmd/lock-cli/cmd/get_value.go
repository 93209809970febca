// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/client"
)

var getValueCmd = &cobra.Command{
	Use:   "get-value [options] <register>",
	Short: "Reads the value of a register",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := getInstanceOp(args)
		if err != nil {
			return err
		}
		cli := client.New(uri, requestTimeout)
		v, err := cli.GetValue(id)
		if err != nil {
			return err
		}
		color.Blue("%d", v)
		return nil
	},
}
