// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetMagic() uint64
	GetNonce() uint64
	SetMagic(magic uint64)
	SetNonce(nonce uint64)

	ExecuteBase(*Genesis) error
	Execute(*TransactionContext) error
	Activity() *Activity
}
