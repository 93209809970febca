// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

var _ UnsignedTransaction = &SetValueTx{}

type SetValueTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Register ids.ID `serialize:"true" json:"register"`
	Value    int64  `serialize:"true" json:"value"`
}

func (t *SetValueTx) Execute(c *TransactionContext) error {
	r, err := loadRegister(c, t.Register)
	if err != nil {
		return err
	}
	e, err := r.SetValue(c.Sender, t.Value, c.BlockTime)
	if err != nil {
		return err
	}
	return updateRegister(c, t.Register, r, e)
}

func (t *SetValueTx) Copy() UnsignedTransaction {
	return &SetValueTx{
		BaseTx:   t.BaseTx.Copy(),
		Register: t.Register,
		Value:    t.Value,
	}
}

func (t *SetValueTx) Activity() *Activity {
	return &Activity{
		Typ:      SetValue,
		Instance: t.Register,
		Value:    t.Value,
	}
}
