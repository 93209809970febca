// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

var _ UnsignedTransaction = &IncrementValueTx{}

type IncrementValueTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Register ids.ID `serialize:"true" json:"register"`
}

func (t *IncrementValueTx) Execute(c *TransactionContext) error {
	r, err := loadRegister(c, t.Register)
	if err != nil {
		return err
	}
	e, err := r.IncrementValue(c.Sender, c.BlockTime)
	if err != nil {
		return err
	}
	return updateRegister(c, t.Register, r, e)
}

func (t *IncrementValueTx) Copy() UnsignedTransaction {
	return &IncrementValueTx{
		BaseTx:   t.BaseTx.Copy(),
		Register: t.Register,
	}
}

func (t *IncrementValueTx) Activity() *Activity {
	return &Activity{
		Typ:      IncrementValue,
		Instance: t.Register,
	}
}
