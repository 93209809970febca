// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
)

// Register is a single integer that only its owner can write.
type Register struct {
	Owned `serialize:"true"`

	Value   int64  `serialize:"true" json:"value"`
	Created uint64 `serialize:"true" json:"created"`
	Updated uint64 `serialize:"true" json:"updated"`
}

func NewRegister(creator common.Address, now uint64) (*Register, error) {
	if IsZeroAddress(creator) {
		return nil, ErrZeroAddress
	}
	return &Register{
		Owned:   Owned{Owner: creator},
		Created: now,
		Updated: now,
	}, nil
}

func (r *Register) GetValue() int64 {
	return r.Value
}

func (r *Register) SetValue(caller common.Address, v int64, now uint64) (*Event, error) {
	if err := r.Authorize(caller); err != nil {
		return nil, err
	}
	r.Value = v
	r.Updated = now
	return NewValueUpdatedEvent(v), nil
}

func (r *Register) IncrementValue(caller common.Address, now uint64) (*Event, error) {
	if err := r.Authorize(caller); err != nil {
		return nil, err
	}
	if r.Value == math.MaxInt64 {
		return nil, ErrValueOverflow
	}
	r.Value++
	r.Updated = now
	return NewValueIncrementedEvent(r.Value), nil
}

// TransferOwnership hands write privilege to [newOwner]. The previous owner
// is rejected from the very next call.
func (r *Register) TransferOwnership(caller common.Address, newOwner common.Address, now uint64) (*Event, error) {
	if err := r.Authorize(caller); err != nil {
		return nil, err
	}
	if IsZeroAddress(newOwner) {
		return nil, ErrZeroAddress
	}
	prev := r.Owner
	r.Owner = newOwner
	r.Updated = now
	return NewOwnershipTransferredEvent(prev, newOwner), nil
}
