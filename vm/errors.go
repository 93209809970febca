// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrInvalidEmptyTx  = errors.New("invalid empty transaction")
	ErrCorruption      = errors.New("corruption detected")
	ErrNilGenesis      = errors.New("genesis is nil")
	ErrGenesisMismatch = errors.New("database was seeded by a different genesis")
)
