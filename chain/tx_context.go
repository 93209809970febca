// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionContext carries the host-supplied inputs of a single call:
// who is calling and at what block time.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	BlockTime uint64
	TxID      ids.ID
	Sender    common.Address

	instance ids.ID
	events   []*Event
}

// emit records [e] against [instance]; events are only persisted when the
// whole transaction succeeds.
func (t *TransactionContext) emit(instance ids.ID, e *Event) {
	e.Instance = instance
	t.events = append(t.events, e)
}

func (t *TransactionContext) setInstance(id ids.ID) {
	t.instance = id
}

func (t *TransactionContext) Instance() ids.ID {
	return t.instance
}

func (t *TransactionContext) Events() []*Event {
	return t.events
}
