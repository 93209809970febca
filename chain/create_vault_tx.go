// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CreateVaultTx{}

type CreateVaultTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// UnlockTime is the unix time after which the owner may withdraw.
	UnlockTime uint64 `serialize:"true" json:"unlockTime"`

	// Amount is escrowed from the sender's balance.
	Amount uint64 `serialize:"true" json:"amount"`
}

func (t *CreateVaultTx) Execute(c *TransactionContext) error {
	v, err := NewVault(c.Sender, t.UnlockTime, t.Amount, c.BlockTime)
	if err != nil {
		return err
	}
	if _, err := ModifyBalance(c.Database, c.Sender, false, t.Amount); err != nil {
		return err
	}
	if err := PutVault(c.Database, c.TxID, v); err != nil {
		return err
	}
	c.setInstance(c.TxID)
	return nil
}

func (t *CreateVaultTx) Copy() UnsignedTransaction {
	return &CreateVaultTx{
		BaseTx:     t.BaseTx.Copy(),
		UnlockTime: t.UnlockTime,
		Amount:     t.Amount,
	}
}

func (t *CreateVaultTx) Activity() *Activity {
	return &Activity{
		Typ:        CreateVault,
		Amount:     t.Amount,
		UnlockTime: t.UnlockTime,
	}
}
