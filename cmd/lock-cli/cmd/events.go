// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/lockvm/client"
)

var (
	eventsStart uint64
	eventsLimit int
)

func init() {
	eventsCmd.Flags().Uint64Var(&eventsStart, "start", 0, "first event sequence to return")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 0, "maximum number of events (0 uses the server limit)")
}

var eventsCmd = &cobra.Command{
	Use:   "events [options] <vault|register>",
	Short: "Lists notifications emitted by a vault or register",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := getInstanceOp(args)
		if err != nil {
			return err
		}
		cli := client.New(uri, requestTimeout)
		events, err := cli.Events(id, eventsStart, eventsLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			color.Yellow("no events for %s", id)
		}
		for _, e := range events {
			client.PPEvent(e)
		}
		if len(events) > 0 {
			color.Cyan("next page: --start %d", events[len(events)-1].Seq+1)
		}
		return nil
	},
}
