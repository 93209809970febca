// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/lockvm/chain"
)

const oneYear = 365 * 24 * time.Hour

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Set(t time.Time) { c.now = t }

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)
	return priv, crypto.PubkeyToAddress(priv.PublicKey)
}

func newTestVM(t *testing.T, allocations ...*chain.Allocation) (*VM, *testClock) {
	t.Helper()
	g := chain.DefaultGenesis()
	g.Allocations = allocations
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	vm, err := New(memdb.New(), g, WithClock(clock.Now))
	require.NoError(t, err)
	return vm, clock
}

var nonce uint64

func signTx(t *testing.T, vm *VM, priv *ecdsa.PrivateKey, utx chain.UnsignedTransaction) *chain.Transaction {
	t.Helper()
	nonce++
	utx.SetMagic(vm.Genesis().Magic)
	utx.SetNonce(nonce)
	tx, err := chain.SignTx(vm.Genesis(), utx, priv)
	require.NoError(t, err)
	return tx
}

func TestNewLoadsGenesisOnce(t *testing.T) {
	_, owner := newKey(t)
	db := memdb.New()
	g := &chain.Genesis{Magic: 3, Allocations: []*chain.Allocation{{Address: owner, Balance: 5}}}

	vm, err := New(db, g)
	require.NoError(t, err)
	bal, err := vm.Balance(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(5), bal)

	// Reopening the same database must not credit the allocation again.
	vm, err = New(db, g)
	require.NoError(t, err)
	bal, err = vm.Balance(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(5), bal)

	// A different network must not run against this state.
	_, err = New(db, &chain.Genesis{Magic: 4})
	require.ErrorIs(t, err, ErrGenesisMismatch)

	_, err = New(db, nil)
	require.ErrorIs(t, err, ErrNilGenesis)
	_, err = New(db, &chain.Genesis{})
	require.ErrorIs(t, err, chain.ErrInvalidGenesis)
}

func TestVaultScenario(t *testing.T) {
	priv, owner := newKey(t)
	priv2, other := newKey(t)
	vm, clock := newTestVM(t,
		&chain.Allocation{Address: owner, Balance: 1},
		&chain.Allocation{Address: other, Balance: 0},
	)

	unlock := uint64(clock.Now().Add(oneYear).Unix())
	r, err := vm.Submit(signTx(t, vm, priv, &chain.CreateVaultTx{BaseTx: &chain.BaseTx{}, UnlockTime: unlock, Amount: 1}))
	require.NoError(t, err)
	vaultID := r.Activity.Instance
	require.Equal(t, r.TxID, vaultID)

	bal, err := vm.Balance(owner)
	require.NoError(t, err)
	require.Zero(t, bal)

	_, err = vm.Submit(signTx(t, vm, priv, &chain.WithdrawTx{BaseTx: &chain.BaseTx{}, Vault: vaultID}))
	require.ErrorIs(t, err, chain.ErrNotYetMatured)

	clock.Set(time.Unix(int64(unlock), 0))
	_, err = vm.Submit(signTx(t, vm, priv2, &chain.WithdrawTx{BaseTx: &chain.BaseTx{}, Vault: vaultID}))
	require.ErrorIs(t, err, chain.ErrUnauthorized)

	v, err := vm.Vault(vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v.Balance)

	r, err = vm.Submit(signTx(t, vm, priv, &chain.WithdrawTx{BaseTx: &chain.BaseTx{}, Vault: vaultID}))
	require.NoError(t, err)
	require.Len(t, r.Events, 1)
	require.Equal(t, chain.Withdrawal, r.Events[0].Typ)
	require.Equal(t, uint64(1), r.Events[0].Amount)
	require.Equal(t, unlock, r.Events[0].UnlockTime)

	bal, err = vm.Balance(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(1), bal)
	v, err = vm.Vault(vaultID)
	require.NoError(t, err)
	require.Zero(t, v.Balance)

	_, err = vm.Submit(signTx(t, vm, priv, &chain.WithdrawTx{BaseTx: &chain.BaseTx{}, Vault: vaultID}))
	require.ErrorIs(t, err, chain.ErrNothingToWithdraw)
	bal, err = vm.Balance(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(1), bal)
}

func TestRegisterScenario(t *testing.T) {
	priv, _ := newKey(t)
	priv2, other := newKey(t)
	vm, _ := newTestVM(t)

	r, err := vm.Submit(signTx(t, vm, priv, &chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}}))
	require.NoError(t, err)
	id := r.Activity.Instance

	reg, err := vm.Register(id)
	require.NoError(t, err)
	require.Zero(t, reg.GetValue())

	r, err = vm.Submit(signTx(t, vm, priv, &chain.SetValueTx{BaseTx: &chain.BaseTx{}, Register: id, Value: 42}))
	require.NoError(t, err)
	require.Equal(t, []*chain.Event{{Typ: chain.ValueUpdated, Instance: id, Value: 42}}, r.Events)

	_, err = vm.Submit(signTx(t, vm, priv2, &chain.SetValueTx{BaseTx: &chain.BaseTx{}, Register: id, Value: 100}))
	require.ErrorIs(t, err, chain.ErrUnauthorized)
	reg, err = vm.Register(id)
	require.NoError(t, err)
	require.Equal(t, int64(42), reg.GetValue())

	_, err = vm.Submit(signTx(t, vm, priv, &chain.TransferOwnershipTx{BaseTx: &chain.BaseTx{}, Register: id, To: other}))
	require.NoError(t, err)
	_, err = vm.Submit(signTx(t, vm, priv, &chain.IncrementValueTx{BaseTx: &chain.BaseTx{}, Register: id}))
	require.ErrorIs(t, err, chain.ErrUnauthorized)
	r, err = vm.Submit(signTx(t, vm, priv2, &chain.IncrementValueTx{BaseTx: &chain.BaseTx{}, Register: id}))
	require.NoError(t, err)
	require.Equal(t, int64(43), r.Events[0].Value)

	events, err := vm.Events(id, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)

	events, err = vm.Events(id, 0, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, chain.ValueUpdated, events[0].Typ)

	events, err = vm.Events(id, events[0].Seq+1, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, chain.OwnershipTransferred, events[0].Typ)

	events, err = vm.Events(id, events[0].Seq+1, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, chain.ValueIncremented, events[0].Typ)
}

func TestSubmitIsAtomic(t *testing.T) {
	priv, owner := newKey(t)
	vm, clock := newTestVM(t, &chain.Allocation{Address: owner, Balance: 10})

	// Failing txs leave no receipt and no balance change.
	tx := signTx(t, vm, priv, &chain.CreateVaultTx{
		BaseTx:     &chain.BaseTx{},
		UnlockTime: uint64(clock.Now().Unix()),
		Amount:     5,
	})
	_, err := vm.Submit(tx)
	require.ErrorIs(t, err, chain.ErrInvalidSchedule)
	_, found, err := vm.Receipt(tx.ID())
	require.NoError(t, err)
	require.False(t, found)
	bal, err := vm.Balance(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(10), bal)

	tx = signTx(t, vm, priv, &chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}})
	_, err = vm.Submit(tx)
	require.NoError(t, err)
	_, err = vm.Submit(tx)
	require.ErrorIs(t, err, chain.ErrDuplicateTx)

	_, err = vm.Submit(nil)
	require.ErrorIs(t, err, ErrInvalidEmptyTx)

	_, err = vm.Vault(ids.GenerateTestID())
	require.ErrorIs(t, err, chain.ErrVaultMissing)
	_, err = vm.Register(ids.GenerateTestID())
	require.ErrorIs(t, err, chain.ErrRegisterMissing)
}

func TestBlockTimeIsMonotonic(t *testing.T) {
	priv, _ := newKey(t)
	vm, clock := newTestVM(t)

	start := vm.BlockTime()
	_, err := vm.Submit(signTx(t, vm, priv, &chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}}))
	require.NoError(t, err)

	clock.Set(clock.Now().Add(-time.Hour))
	require.Equal(t, start, vm.BlockTime())
	r, err := vm.Submit(signTx(t, vm, priv, &chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}}))
	require.NoError(t, err)
	require.Equal(t, start, r.BlockTime)
}

func TestEventsPagePastLimit(t *testing.T) {
	priv, _ := newKey(t)
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	c := Config{}
	c.SetDefaults()
	c.MaxEvents = 2
	vm, err := New(memdb.New(), chain.DefaultGenesis(), WithClock(clock.Now), WithConfig(c))
	require.NoError(t, err)

	r, err := vm.Submit(signTx(t, vm, priv, &chain.CreateRegisterTx{BaseTx: &chain.BaseTx{}}))
	require.NoError(t, err)
	id := r.Activity.Instance
	for i := 0; i < 5; i++ {
		_, err = vm.Submit(signTx(t, vm, priv, &chain.IncrementValueTx{BaseTx: &chain.BaseTx{}, Register: id}))
		require.NoError(t, err)
	}

	// Requests above the limit are clamped, but later pages stay reachable.
	values := []int64{}
	var start uint64
	for {
		events, err := vm.Events(id, start, 10)
		require.NoError(t, err)
		require.LessOrEqual(t, len(events), 2)
		if len(events) == 0 {
			break
		}
		for _, e := range events {
			values = append(values, e.Value)
		}
		start = events[len(events)-1].Seq + 1
	}
	require.Equal(t, []int64{1, 2, 3, 4, 5}, values)
}
