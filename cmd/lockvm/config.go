// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/vm"
)

const (
	envPrefix  = "LOCKVM"
	dotEnvFile = ".env"

	keyConfigFile      = "config-file"
	keyHTTPAddress     = "http-address"
	keyDBBackend       = "db-backend"
	keyDBPath          = "db-path"
	keyDBCacheSize     = "db-cache-size"
	keyDBWriteBuffer   = "db-write-buffer"
	keyDBHandleCap     = "db-handle-cap"
	keyGenesisFile     = "genesis-file"
	keyLogLevel        = "log-level"
	keyLogFormat       = "log-format"
	keyMaxEvents       = "max-events"
	keyReadTimeout     = "read-timeout"
	keyWriteTimeout    = "write-timeout"
	keyShutdownTimeout = "shutdown-timeout"

	backendMemDB   = "memdb"
	backendLevelDB = "leveldb"
)

type Config struct {
	HTTPAddress string

	DBBackend     string
	DBPath        string
	DBCacheSize   int
	DBWriteBuffer int
	DBHandleCap   int

	GenesisFile string

	LogLevel  string
	LogFormat string

	VM vm.Config
}

func addFlags(fs *pflag.FlagSet) {
	var defaults vm.Config
	defaults.SetDefaults()

	fs.String(keyConfigFile, "", "optional config file (json, yaml or toml)")
	fs.String(keyHTTPAddress, "127.0.0.1:9650", "address to serve the JSON-RPC API on")
	fs.String(keyDBBackend, backendLevelDB, "database backend (memdb or leveldb)")
	fs.String(keyDBPath, "lockvm-db", "leveldb directory")
	fs.Int(keyDBCacheSize, 12*1024*1024, "leveldb block cache size in bytes")
	fs.Int(keyDBWriteBuffer, 12*1024*1024, "leveldb write buffer size in bytes")
	fs.Int(keyDBHandleCap, 1024, "leveldb open file handle cap")
	fs.String(keyGenesisFile, "", "genesis file (defaults to an empty genesis)")
	fs.String(keyLogLevel, "info", "log level (debug, info, warn, error, crit)")
	fs.String(keyLogFormat, "logfmt", "log format (logfmt, terminal or json)")
	fs.Int(keyMaxEvents, defaults.MaxEvents, "maximum events returned per query")
	fs.Duration(keyReadTimeout, defaults.ReadTimeout, "HTTP read timeout")
	fs.Duration(keyWriteTimeout, defaults.WriteTimeout, "HTTP write timeout")
	fs.Duration(keyShutdownTimeout, defaults.ShutdownTimeout, "graceful shutdown timeout")
}

// loadConfig merges flags, LOCKVM_* environment variables, an optional .env
// file and an optional config file, in decreasing order of precedence.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if f := v.GetString(keyConfigFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", f, err)
		}
	}

	c := &Config{
		HTTPAddress:   v.GetString(keyHTTPAddress),
		DBBackend:     v.GetString(keyDBBackend),
		DBPath:        v.GetString(keyDBPath),
		DBCacheSize:   v.GetInt(keyDBCacheSize),
		DBWriteBuffer: v.GetInt(keyDBWriteBuffer),
		DBHandleCap:   v.GetInt(keyDBHandleCap),
		GenesisFile:   v.GetString(keyGenesisFile),
		LogLevel:      v.GetString(keyLogLevel),
		LogFormat:     v.GetString(keyLogFormat),
		VM: vm.Config{
			MaxEvents:       v.GetInt(keyMaxEvents),
			ReadTimeout:     v.GetDuration(keyReadTimeout),
			WriteTimeout:    v.GetDuration(keyWriteTimeout),
			ShutdownTimeout: v.GetDuration(keyShutdownTimeout),
		},
	}
	return c, c.Verify()
}

func (c *Config) Verify() error {
	switch c.DBBackend {
	case backendMemDB, backendLevelDB:
	default:
		return fmt.Errorf("unknown db backend %q", c.DBBackend)
	}
	if c.VM.MaxEvents <= 0 {
		return fmt.Errorf("max events must be positive, got %d", c.VM.MaxEvents)
	}
	if c.VM.ShutdownTimeout < time.Millisecond {
		return fmt.Errorf("shutdown timeout too short: %v", c.VM.ShutdownTimeout)
	}
	return nil
}

// levelDBConfig encodes the tuning flags in the JSON form avalanchego's
// leveldb package reads. The handle cap bounds the open file cache.
func (c *Config) levelDBConfig() ([]byte, error) {
	return json.Marshal(struct {
		BlockCacheCapacity     int `json:"blockCacheCapacity"`
		WriteBuffer            int `json:"writeBuffer"`
		OpenFilesCacheCapacity int `json:"openFilesCacheCapacity"`
	}{
		BlockCacheCapacity:     c.DBCacheSize,
		WriteBuffer:            c.DBWriteBuffer,
		OpenFilesCacheCapacity: c.DBHandleCap,
	})
}

// loadDotEnv reads [files] into the environment. A missing file is fine; a
// malformed one is not.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func loadGenesis(path string) (*chain.Genesis, error) {
	if path == "" {
		return chain.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g := new(chain.Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, g.Verify()
}
