// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

func loadVault(c *TransactionContext, id ids.ID) (*Vault, error) {
	v, has, err := GetVault(c.Database, id)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrVaultMissing
	}
	return v, nil
}

func loadRegister(c *TransactionContext, id ids.ID) (*Register, error) {
	r, has, err := GetRegister(c.Database, id)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrRegisterMissing
	}
	return r, nil
}

// updateRegister persists [r] and records [e] once every check has passed.
func updateRegister(c *TransactionContext, id ids.ID, r *Register, e *Event) error {
	if err := PutRegister(c.Database, id, r); err != nil {
		return err
	}
	c.setInstance(id)
	c.emit(id, e)
	return nil
}
