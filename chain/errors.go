// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

var (
	// Execution Correctness
	ErrInvalidSchedule = errors.New("unlock time should be in the future")
	ErrNotYetMatured   = errors.New("vault has not matured yet")
	ErrUnauthorized    = errors.New("sender is not authorized")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrZeroAddress       = fmt.Errorf("%w: zero address", ErrInvalidArgument)
	ErrNothingToWithdraw = fmt.Errorf("%w: nothing left to withdraw", ErrInvalidArgument)
	ErrValueOverflow     = fmt.Errorf("%w: value overflow", ErrInvalidArgument)

	// Host State
	ErrInvalidBalance  = errors.New("invalid balance")
	ErrBalanceOverflow = errors.New("balance overflow")
	ErrVaultMissing    = errors.New("vault missing")
	ErrRegisterMissing = errors.New("register missing")

	// Tx Correctness
	ErrInvalidMagic     = errors.New("invalid magic")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidSender    = errors.New("invalid sender")
	ErrDuplicateTx      = errors.New("duplicate transaction")
	ErrInvalidType      = errors.New("invalid tx type")
	ErrNotInitialized   = errors.New("transaction not initialized")

	// Genesis Correctness
	ErrInvalidGenesis = errors.New("invalid genesis")
)
