// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// 0x0/ (balance)
//   -> [owner] => balance
// 0x1/ (vaults)
//   -> [vaultID] => vault
// 0x2/ (registers)
//   -> [registerID] => register
// 0x3/ (events)
//   -> [instanceID]
//     -> [seq] => event
// 0x4/ (receipts)
//   -> [txID] => receipt
// 0x5/ (meta)
//   -> [key] => value

const (
	balancePrefix  = 0x0
	vaultPrefix    = 0x1
	registerPrefix = 0x2
	eventPrefix    = 0x3
	receiptPrefix  = 0x4
	metaPrefix     = 0x5

	PrefixDelimiter = '/'
)

var (
	eventSeqKey    = []byte("event_seq")
	genesisLoadKey = []byte("genesis")
	lastTimeKey    = []byte("last_block_time")
)

func prefixed(pfx byte, k []byte) []byte {
	b := make([]byte, 2+len(k))
	b[0] = pfx
	b[1] = PrefixDelimiter
	copy(b[2:], k)
	return b
}

func PrefixBalanceKey(addr common.Address) []byte { return prefixed(balancePrefix, addr[:]) }

func PrefixVaultKey(id ids.ID) []byte { return prefixed(vaultPrefix, id[:]) }

func PrefixRegisterKey(id ids.ID) []byte { return prefixed(registerPrefix, id[:]) }

func PrefixReceiptKey(txID ids.ID) []byte { return prefixed(receiptPrefix, txID[:]) }

func PrefixEventsKey(instance ids.ID) []byte {
	b := prefixed(eventPrefix, instance[:])
	return append(b, PrefixDelimiter)
}

func PrefixEventKey(instance ids.ID, seq uint64) []byte {
	pfx := PrefixEventsKey(instance)
	b := make([]byte, len(pfx)+8)
	copy(b, pfx)
	binary.BigEndian.PutUint64(b[len(pfx):], seq)
	return b
}

func prefixMetaKey(k []byte) []byte { return prefixed(metaPrefix, k) }

func getUint64(db database.KeyValueReader, k []byte) (uint64, bool, error) {
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return binary.BigEndian.Uint64(v), true, nil
}

func putUint64(db database.KeyValueWriter, k []byte, v uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return db.Put(k, b)
}

func getCodec(db database.KeyValueReader, k []byte, dst interface{}) (bool, error) {
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := Unmarshal(v, dst); err != nil {
		return false, err
	}
	return true, nil
}

func putCodec(db database.KeyValueWriter, k []byte, src interface{}) error {
	b, err := Marshal(src)
	if err != nil {
		return err
	}
	return db.Put(k, b)
}

// [balance]
func GetBalance(db database.KeyValueReader, addr common.Address) (uint64, error) {
	b, _, err := getUint64(db, PrefixBalanceKey(addr))
	return b, err
}

func SetBalance(db database.KeyValueWriter, addr common.Address, bal uint64) error {
	return putUint64(db, PrefixBalanceKey(addr), bal)
}

func ModifyBalance(db database.Database, addr common.Address, add bool, change uint64) (uint64, error) {
	b, err := GetBalance(db, addr)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n = b + change
		if n < b {
			return 0, ErrBalanceOverflow
		}
	} else {
		if change > b {
			return 0, ErrInvalidBalance
		}
		n = b - change
	}
	return n, SetBalance(db, addr, n)
}

// [vault]
func GetVault(db database.KeyValueReader, id ids.ID) (*Vault, bool, error) {
	v := new(Vault)
	has, err := getCodec(db, PrefixVaultKey(id), v)
	if !has || err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func PutVault(db database.KeyValueWriter, id ids.ID, v *Vault) error {
	return putCodec(db, PrefixVaultKey(id), v)
}

// [register]
func GetRegister(db database.KeyValueReader, id ids.ID) (*Register, bool, error) {
	r := new(Register)
	has, err := getCodec(db, PrefixRegisterKey(id), r)
	if !has || err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func PutRegister(db database.KeyValueWriter, id ids.ID, r *Register) error {
	return putCodec(db, PrefixRegisterKey(id), r)
}

// [events]
func AppendEvent(db database.Database, e *Event) error {
	seq, _, err := getUint64(db, prefixMetaKey(eventSeqKey))
	if err != nil {
		return err
	}
	e.Seq = seq
	if err := putCodec(db, PrefixEventKey(e.Instance, seq), e); err != nil {
		return err
	}
	return putUint64(db, prefixMetaKey(eventSeqKey), seq+1)
}

// GetEvents returns up to [limit] events of [instance] with Seq >= [start]
// in emission order. A zero [limit] returns all of them.
func GetEvents(db database.Iteratee, instance ids.ID, start uint64, limit int) ([]*Event, error) {
	cursor := db.NewIteratorWithStartAndPrefix(PrefixEventKey(instance, start), PrefixEventsKey(instance))
	defer cursor.Release()

	events := []*Event{}
	for cursor.Next() {
		e := new(Event)
		if _, err := Unmarshal(cursor.Value(), e); err != nil {
			return nil, err
		}
		events = append(events, e)
		if limit > 0 && len(events) == limit {
			break
		}
	}
	return events, cursor.Error()
}

// [receipts]
func GetReceipt(db database.KeyValueReader, txID ids.ID) (*Receipt, bool, error) {
	r := new(Receipt)
	has, err := getCodec(db, PrefixReceiptKey(txID), r)
	if !has || err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func HasReceipt(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixReceiptKey(txID))
}

func PutReceipt(db database.KeyValueWriter, r *Receipt) error {
	return putCodec(db, PrefixReceiptKey(r.TxID), r)
}

// [meta]
func GetLastBlockTime(db database.KeyValueReader) (uint64, error) {
	t, _, err := getUint64(db, prefixMetaKey(lastTimeKey))
	return t, err
}

func SetLastBlockTime(db database.KeyValueWriter, t uint64) error {
	return putUint64(db, prefixMetaKey(lastTimeKey), t)
}
