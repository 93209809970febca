// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"errors"
	"strings"

	"github.com/gorilla/rpc/v2/json2"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/vm"
)

// knownErrors are restored from their wire message so callers can match
// them with errors.Is.
var knownErrors = []error{
	chain.ErrInvalidSchedule,
	chain.ErrNotYetMatured,
	chain.ErrUnauthorized,
	chain.ErrInvalidArgument,
	chain.ErrZeroAddress,
	chain.ErrNothingToWithdraw,
	chain.ErrValueOverflow,
	chain.ErrInvalidBalance,
	chain.ErrBalanceOverflow,
	chain.ErrVaultMissing,
	chain.ErrRegisterMissing,
	chain.ErrInvalidMagic,
	chain.ErrInvalidSignature,
	chain.ErrInvalidSender,
	chain.ErrDuplicateTx,
	chain.ErrInvalidType,
	vm.ErrInvalidEmptyTx,
}

// mapError matches the JSON-RPC error message, which the requester may have
// prefixed with its own context, against the known errors. The longest
// match wins so refinements beat the kinds they wrap.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	var rpcErr *json2.Error
	if errors.As(err, &rpcErr) {
		msg = rpcErr.Message
	}
	var match error
	for _, known := range knownErrors {
		if !strings.HasSuffix(msg, known.Error()) {
			continue
		}
		if match == nil || len(known.Error()) > len(match.Error()) {
			match = known
		}
	}
	if match == nil {
		return err
	}
	return match
}
