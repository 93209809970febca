// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"
)

type Config struct {
	// MaxEvents caps the number of events returned by a single query.
	MaxEvents int `serialize:"true" json:"maxEvents"`

	ReadTimeout     time.Duration `serialize:"true" json:"readTimeout"`
	WriteTimeout    time.Duration `serialize:"true" json:"writeTimeout"`
	ShutdownTimeout time.Duration `serialize:"true" json:"shutdownTimeout"`
}

func (c *Config) SetDefaults() {
	c.MaxEvents = 256

	c.ReadTimeout = 10 * time.Second
	c.WriteTimeout = 10 * time.Second
	c.ShutdownTimeout = 5 * time.Second
}
