// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/client"
)

var (
	lockAmount   uint64
	lockDuration time.Duration
	unlockAt     int64
)

func init() {
	deployVaultCmd.Flags().Uint64Var(&lockAmount, "amount", 1, "amount to escrow in the vault")
	deployVaultCmd.Flags().DurationVar(&lockDuration, "unlock-in", 365*24*time.Hour, "time until the vault matures")
	deployVaultCmd.Flags().Int64Var(&unlockAt, "unlock-at", 0, "unix time the vault matures at (overrides --unlock-in)")
}

var deployVaultCmd = &cobra.Command{
	Use:   "deploy-vault [options]",
	Short: "Locks funds in a new vault until the unlock time",
	Long: `
Escrows --amount from the local key until the unlock time. Only the
local key can withdraw once the vault has matured.

$ lock-cli deploy-vault --amount 10 --unlock-in 8760h

`,
	RunE: deployVaultFunc,
}

func deployVaultFunc(cmd *cobra.Command, args []string) error {
	unlock := uint64(unlockAt)
	if unlockAt <= 0 {
		cli := client.New(uri, requestTimeout)
		now, err := cli.BlockTime()
		if err != nil {
			return err
		}
		unlock = now + uint64(lockDuration/time.Second)
	}
	color.Yellow("locking %d until %s", lockAmount, time.Unix(int64(unlock), 0))

	id, err := issue(&chain.CreateVaultTx{
		BaseTx:     &chain.BaseTx{},
		UnlockTime: unlock,
		Amount:     lockAmount,
	})
	if err != nil {
		return err
	}
	color.Green("vault deployed to %s", id)
	return nil
}
