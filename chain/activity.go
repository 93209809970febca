// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

const (
	CreateVault       = "createVault"
	Withdraw          = "withdraw"
	CreateRegister    = "createRegister"
	SetValue          = "setValue"
	IncrementValue    = "incrementValue"
	TransferOwnership = "transferOwnership"
)

// Activity is a human readable summary of a transaction.
type Activity struct {
	Typ        string         `serialize:"true" json:"type"`
	Instance   ids.ID         `serialize:"true" json:"instance"`
	Amount     uint64         `serialize:"true" json:"amount,omitempty"`
	UnlockTime uint64         `serialize:"true" json:"unlockTime,omitempty"`
	Value      int64          `serialize:"true" json:"value,omitempty"`
	To         common.Address `serialize:"true" json:"to"`
}

// Receipt is persisted for every executed transaction.
type Receipt struct {
	TxID      ids.ID         `serialize:"true" json:"txId"`
	Sender    common.Address `serialize:"true" json:"sender"`
	BlockTime uint64         `serialize:"true" json:"blockTime"`
	Activity  *Activity      `serialize:"true" json:"activity"`
	Events    []*Event       `serialize:"true" json:"events"`
}
