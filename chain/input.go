// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// Input is the JSON friendly description of an unsigned transaction.
type Input struct {
	Typ        string         `json:"type"`
	Instance   ids.ID         `json:"instance"`
	UnlockTime uint64         `json:"unlockTime"`
	Amount     uint64         `json:"amount"`
	Value      int64          `json:"value"`
	To         common.Address `json:"to"`
}

func (i *Input) Decode() (UnsignedTransaction, error) {
	switch i.Typ {
	case CreateVault:
		return &CreateVaultTx{
			BaseTx:     &BaseTx{},
			UnlockTime: i.UnlockTime,
			Amount:     i.Amount,
		}, nil
	case Withdraw:
		return &WithdrawTx{
			BaseTx: &BaseTx{},
			Vault:  i.Instance,
		}, nil
	case CreateRegister:
		return &CreateRegisterTx{
			BaseTx: &BaseTx{},
		}, nil
	case SetValue:
		return &SetValueTx{
			BaseTx:   &BaseTx{},
			Register: i.Instance,
			Value:    i.Value,
		}, nil
	case IncrementValue:
		return &IncrementValueTx{
			BaseTx:   &BaseTx{},
			Register: i.Instance,
		}, nil
	case TransferOwnership:
		return &TransferOwnershipTx{
			BaseTx:   &BaseTx{},
			Register: i.Instance,
			To:       i.To,
		}, nil
	default:
		return nil, ErrInvalidType
	}
}
