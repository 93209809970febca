// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

var _ UnsignedTransaction = &WithdrawTx{}

type WithdrawTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Vault is the ID of the transaction that created the vault.
	Vault ids.ID `serialize:"true" json:"vault"`
}

func (t *WithdrawTx) Execute(c *TransactionContext) error {
	v, err := loadVault(c, t.Vault)
	if err != nil {
		return err
	}
	e, err := v.Withdraw(c.Sender, c.BlockTime)
	if err != nil {
		return err
	}
	// Funds only ever move to the owner, never to the sender.
	if _, err := ModifyBalance(c.Database, v.Owner, true, e.Amount); err != nil {
		return err
	}
	if err := PutVault(c.Database, t.Vault, v); err != nil {
		return err
	}
	c.setInstance(t.Vault)
	c.emit(t.Vault, e)
	return nil
}

func (t *WithdrawTx) Copy() UnsignedTransaction {
	return &WithdrawTx{
		BaseTx: t.BaseTx.Copy(),
		Vault:  t.Vault,
	}
}

func (t *WithdrawTx) Activity() *Activity {
	return &Activity{
		Typ:      Withdraw,
		Instance: t.Vault,
	}
}
