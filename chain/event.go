// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

const (
	Withdrawal           = "withdrawal"
	ValueUpdated         = "valueUpdated"
	ValueIncremented     = "valueIncremented"
	OwnershipTransferred = "ownershipTransferred"
)

// Event is a notification emitted by a successful state change. It never
// feeds back into component state.
type Event struct {
	Typ      string `serialize:"true" json:"type"`
	Instance ids.ID `serialize:"true" json:"instance"`

	// Seq orders events across all instances; it is assigned when the
	// event is persisted.
	Seq uint64 `serialize:"true" json:"seq"`

	// Withdrawal
	Amount     uint64 `serialize:"true" json:"amount,omitempty"`
	UnlockTime uint64 `serialize:"true" json:"unlockTime,omitempty"`

	// ValueUpdated, ValueIncremented
	Value int64 `serialize:"true" json:"value"`

	// OwnershipTransferred
	PreviousOwner common.Address `serialize:"true" json:"previousOwner"`
	NewOwner      common.Address `serialize:"true" json:"newOwner"`
}

func NewWithdrawalEvent(amount uint64, unlockTime uint64) *Event {
	return &Event{Typ: Withdrawal, Amount: amount, UnlockTime: unlockTime}
}

func NewValueUpdatedEvent(v int64) *Event {
	return &Event{Typ: ValueUpdated, Value: v}
}

func NewValueIncrementedEvent(v int64) *Event {
	return &Event{Typ: ValueIncremented, Value: v}
}

func NewOwnershipTransferredEvent(prev common.Address, next common.Address) *Event {
	return &Event{Typ: OwnershipTransferred, PreviousOwner: prev, NewOwner: next}
}
