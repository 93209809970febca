// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/lockvm/chain"
)

// SignIssueTx fills in the network magic and a random nonce, signs [utx]
// with [priv] and issues it.
func SignIssueTx(
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
) (ids.ID, *chain.Receipt, error) {
	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, nil, err
	}
	nonce, err := randomNonce()
	if err != nil {
		return ids.Empty, nil, err
	}
	utx.SetMagic(g.Magic)
	utx.SetNonce(nonce)

	tx, err := chain.SignTx(g, utx, priv)
	if err != nil {
		return ids.Empty, nil, err
	}
	color.Yellow("issuing tx %s (sender=%s, size=%d)", tx.ID(), tx.Sender().Hex(), tx.Size())
	return cli.IssueRawTx(tx.Bytes())
}

func randomNonce() (uint64, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func PPReceipt(r *chain.Receipt) {
	color.Green("tx %s executed at %s by %s", r.TxID, time.Unix(int64(r.BlockTime), 0), r.Sender.Hex())
	if r.Activity != nil {
		color.Blue("activity=%s instance=%s", r.Activity.Typ, r.Activity.Instance)
	}
	for _, e := range r.Events {
		PPEvent(e)
	}
}

func PPEvent(e *chain.Event) {
	switch e.Typ {
	case chain.Withdrawal:
		color.Cyan("%s(amount=%d, unlockTime=%d)", e.Typ, e.Amount, e.UnlockTime)
	case chain.ValueUpdated, chain.ValueIncremented:
		color.Cyan("%s(value=%d)", e.Typ, e.Value)
	case chain.OwnershipTransferred:
		color.Cyan("%s(previousOwner=%s, newOwner=%s)", e.Typ, e.PreviousOwner.Hex(), e.NewOwner.Hex())
	default:
		color.Cyan("%s", e.Typ)
	}
}

func PPVault(id ids.ID, v *chain.Vault, matured bool) {
	unlock := time.Unix(int64(v.UnlockTime), 0)
	color.Blue("vault %s", id)
	color.Blue("owner=%s balance=%d", v.Owner.Hex(), v.Balance)
	switch {
	case !v.Locked():
		color.Green("withdrawn at %s", time.Unix(int64(v.Withdrawn), 0))
	case matured:
		color.Green("matured at %s, ready to withdraw", unlock)
	default:
		color.Yellow("locked until %s (%v remaining)", unlock, time.Until(unlock).Round(time.Second))
	}
}

func PPRegister(id ids.ID, r *chain.Register) {
	color.Blue("register %s", id)
	color.Blue("owner=%s value=%d updated=%s", r.Owner.Hex(), r.Value, time.Unix(int64(r.Updated), 0))
}
