// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	vOffset      = 64
	legacySigAdj = 27
)

// DigestHash is the keccak256 hash signed by the sender of [utx]. The
// encoding carries the codec type ID so txs with identical fields but
// different types never share a digest.
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	b, err := Marshal(&Transaction{UnsignedTransaction: utx})
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(b), nil
}

func Sign(dh []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	sig[vOffset] += legacySigAdj
	return sig, nil
}

// DeriveSender only accepts the canonical encoding produced by Sign: v is
// 27 or 28 and s is in the lower half of the curve order.
func DeriveSender(dh []byte, sig []byte) (*ecdsa.PublicKey, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, ErrInvalidSignature
	}
	v := sig[vOffset]
	if v != legacySigAdj && v != legacySigAdj+1 {
		return nil, ErrInvalidSignature
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:vOffset])
	if !crypto.ValidateSignatureValues(v-legacySigAdj, r, s, true) {
		return nil, ErrInvalidSignature
	}

	sigcpy := make([]byte, crypto.SignatureLength)
	copy(sigcpy, sig)
	sigcpy[vOffset] -= legacySigAdj
	pk, err := crypto.SigToPub(dh, sigcpy)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	return pk, nil
}

// SignTx signs [utx] with [priv] and initializes the resulting transaction.
func SignTx(g *Genesis, utx UnsignedTransaction, priv *ecdsa.PrivateKey) (*Transaction, error) {
	dh, err := DigestHash(utx)
	if err != nil {
		return nil, err
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	tx := NewTx(utx, sig)
	if err := tx.Init(g); err != nil {
		return nil, err
	}
	return tx, nil
}
