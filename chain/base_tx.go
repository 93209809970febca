// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Magic must match the genesis magic of the network the tx is sent to.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce distinguishes otherwise identical transactions from one sender.
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) GetNonce() uint64 {
	return b.Nonce
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) SetNonce(nonce uint64) {
	b.Nonce = nonce
}

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Magic: b.Magic,
		Nonce: b.Nonce,
	}
}
