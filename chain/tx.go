// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

// Init computes the cached fields of a decoded or freshly signed
// transaction. It must be called before Execute.
func (t *Transaction) Init(g *Genesis) error {
	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	pk, err := DeriveSender(dh, t.Signature)
	if err != nil {
		return err
	}
	sender := crypto.PubkeyToAddress(*pk)

	// The ID covers what was signed and who signed it, never the signature
	// bytes, so re-encoding a signature cannot make a replay look new.
	h := sha3.Sum256(append(append([]byte{}, dh...), sender[:]...))
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}

	t.digestHash = dh
	t.bytes = stx
	t.size = uint64(len(stx))
	t.sender = sender
	t.id = id
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() common.Address { return t.sender }

// Execute applies the transaction at [blockTime]. A failed execution may
// leave partial writes in [db]; callers run it against a versiondb and
// abort on error.
func (t *Transaction) Execute(g *Genesis, db database.Database, blockTime uint64) (*Receipt, error) {
	if t.bytes == nil {
		return nil, ErrNotInitialized
	}
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return nil, err
	}
	dup, err := HasReceipt(db, t.ID())
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateTx
	}

	context := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.sender,
	}
	if err := t.UnsignedTransaction.Execute(context); err != nil {
		return nil, err
	}
	for _, e := range context.Events() {
		if err := AppendEvent(db, e); err != nil {
			return nil, err
		}
	}

	activity := t.Activity()
	activity.Instance = context.Instance()
	r := &Receipt{
		TxID:      t.id,
		Sender:    t.sender,
		BlockTime: blockTime,
		Activity:  activity,
		Events:    context.Events(),
	}
	if r.Events == nil {
		r.Events = []*Event{}
	}
	if err := PutReceipt(db, r); err != nil {
		return nil, err
	}
	return r, nil
}
