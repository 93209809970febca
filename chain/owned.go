// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var zeroAddress = common.Address{}

// Owned is the capability record shared by every component that restricts
// writes to a single identity.
type Owned struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

// Authorize reads the current owner on every call; callers must not cache
// the result across operations.
func (o *Owned) Authorize(caller common.Address) error {
	if o.Owner != caller {
		return ErrUnauthorized
	}
	return nil
}

func IsZeroAddress(a common.Address) bool {
	return a == zeroAddress
}
