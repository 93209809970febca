// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Vault holds a single deposit that is released to its owner once
// UnlockTime has passed.
//
// Locked --[now >= UnlockTime && caller == Owner]--> Withdrawn
type Vault struct {
	Owned `serialize:"true"`

	UnlockTime uint64 `serialize:"true" json:"unlockTime"`
	Balance    uint64 `serialize:"true" json:"balance"`
	Created    uint64 `serialize:"true" json:"created"`

	// Withdrawn is the block time of the withdrawal, 0 while locked.
	Withdrawn uint64 `serialize:"true" json:"withdrawn"`
}

// NewVault escrows [deposit] for [creator] until [unlockTime]. Moving the
// deposit out of the creator's balance is the caller's job.
func NewVault(creator common.Address, unlockTime uint64, deposit uint64, now uint64) (*Vault, error) {
	if IsZeroAddress(creator) {
		return nil, ErrZeroAddress
	}
	if unlockTime <= now {
		return nil, ErrInvalidSchedule
	}
	return &Vault{
		Owned:      Owned{Owner: creator},
		UnlockTime: unlockTime,
		Balance:    deposit,
		Created:    now,
	}, nil
}

func (v *Vault) Matured(now uint64) bool {
	return now >= v.UnlockTime
}

func (v *Vault) Locked() bool {
	return v.Withdrawn == 0
}

// Withdraw empties the vault and returns the Withdrawal notification. The
// returned amount must be credited to v.Owner by the caller. State is only
// modified when the returned error is nil.
func (v *Vault) Withdraw(caller common.Address, now uint64) (*Event, error) {
	if !v.Matured(now) {
		return nil, ErrNotYetMatured
	}
	if err := v.Authorize(caller); err != nil {
		return nil, err
	}
	if !v.Locked() {
		return nil, ErrNothingToWithdraw
	}
	amount := v.Balance
	v.Balance = 0
	v.Withdrawn = now
	return NewWithdrawalEvent(amount, v.UnlockTime), nil
}
