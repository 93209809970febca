// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/lockvm/vm"
)

func setupLogging(c *Config) error {
	lvl, err := log.LvlFromString(c.LogLevel)
	if err != nil {
		return err
	}
	var format log.Format
	switch c.LogFormat {
	case "terminal":
		format = log.TerminalFormat()
	case "json":
		format = log.JsonFormat()
	default:
		format = log.LogfmtFormat()
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, format)))
	return nil
}

func openDatabase(c *Config) (database.Database, error) {
	switch c.DBBackend {
	case backendMemDB:
		return memdb.New(), nil
	case backendLevelDB:
		cfg, err := c.levelDBConfig()
		if err != nil {
			return nil, err
		}
		return leveldb.New(c.DBPath, cfg, logging.NoLog{})
	default:
		return nil, fmt.Errorf("unknown db backend %q", c.DBBackend)
	}
}

func runFunc(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(c); err != nil {
		return err
	}
	g, err := loadGenesis(c.GenesisFile)
	if err != nil {
		return err
	}
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := vm.New(db, g, vm.WithConfig(c.VM))
	if err != nil {
		return err
	}
	handler, err := v.Handler()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:         c.HTTPAddress,
		Handler:      handler,
		ReadTimeout:  c.VM.ReadTimeout,
		WriteTimeout: c.VM.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("serving", "address", c.HTTPAddress, "endpoint", vm.PublicEndpoint, "db", c.DBBackend)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), c.VM.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return eg.Wait()
}
