// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CreateRegisterTx{}

type CreateRegisterTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (t *CreateRegisterTx) Execute(c *TransactionContext) error {
	r, err := NewRegister(c.Sender, c.BlockTime)
	if err != nil {
		return err
	}
	if err := PutRegister(c.Database, c.TxID, r); err != nil {
		return err
	}
	c.setInstance(c.TxID)
	return nil
}

func (t *CreateRegisterTx) Copy() UnsignedTransaction {
	return &CreateRegisterTx{BaseTx: t.BaseTx.Copy()}
}

func (t *CreateRegisterTx) Activity() *Activity {
	return &Activity{Typ: CreateRegister}
}
