// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/client"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [address]",
	Short: "Prints the balance of an address (defaults to the local key)",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	var addr common.Address
	switch len(args) {
	case 0:
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return err
		}
		addr = crypto.PubkeyToAddress(priv.PublicKey)
	case 1:
		a, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		addr = a
	default:
		return cobra.MaximumNArgs(1)(cmd, args)
	}

	cli := client.New(uri, requestTimeout)
	b, err := cli.Balance(addr)
	if err != nil {
		return err
	}
	color.Blue("address=%s balance=%d", addr.Hex(), b)
	return nil
}
