// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &TransferOwnershipTx{}

type TransferOwnershipTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Register ids.ID `serialize:"true" json:"register"`

	// To is the new owner of the register.
	To common.Address `serialize:"true" json:"to"`
}

func (t *TransferOwnershipTx) Execute(c *TransactionContext) error {
	r, err := loadRegister(c, t.Register)
	if err != nil {
		return err
	}
	e, err := r.TransferOwnership(c.Sender, t.To, c.BlockTime)
	if err != nil {
		return err
	}
	return updateRegister(c, t.Register, r, e)
}

func (t *TransferOwnershipTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, t.To[:])
	return &TransferOwnershipTx{
		BaseTx:   t.BaseTx.Copy(),
		Register: t.Register,
		To:       common.BytesToAddress(to),
	}
}

func (t *TransferOwnershipTx) Activity() *Activity {
	return &Activity{
		Typ:      TransferOwnership,
		Instance: t.Register,
		To:       t.To,
	}
}
