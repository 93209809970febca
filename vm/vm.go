// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/lockvm/chain"
)

const (
	Name = "lockvm"

	PublicEndpoint = "/rpc"
	HealthEndpoint = "/health"
)

// VM hosts vaults and registers on top of a single database. Every
// submission is serialized and applied atomically.
type VM struct {
	mu sync.Mutex

	db      database.Database
	genesis *chain.Genesis
	config  Config
	clock   func() time.Time

	lastBlockTime uint64
}

type Option func(*VM)

// WithClock overrides the source of block time.
func WithClock(clock func() time.Time) Option {
	return func(vm *VM) { vm.clock = clock }
}

func WithConfig(c Config) Option {
	return func(vm *VM) { vm.config = c }
}

func New(db database.Database, genesis *chain.Genesis, opts ...Option) (*VM, error) {
	if genesis == nil {
		return nil, ErrNilGenesis
	}
	vm := &VM{
		db:      db,
		genesis: genesis,
		clock:   time.Now,
	}
	vm.config.SetDefaults()
	for _, opt := range opts {
		opt(vm)
	}

	if err := genesis.Verify(); err != nil {
		return nil, err
	}
	magic, loaded, err := chain.LoadedMagic(db)
	if err != nil {
		return nil, err
	}
	if loaded && magic != genesis.Magic {
		return nil, fmt.Errorf("%w: database magic %d, genesis magic %d", ErrGenesisMismatch, magic, genesis.Magic)
	}
	if !loaded {
		vdb := versiondb.New(db)
		if err := genesis.Load(vdb); err != nil {
			vdb.Abort()
			return nil, err
		}
		if err := vdb.Commit(); err != nil {
			return nil, err
		}
		log.Info("loaded genesis", "magic", genesis.Magic, "allocations", len(genesis.Allocations))
	}
	vm.lastBlockTime, err = chain.GetLastBlockTime(db)
	if err != nil {
		return nil, err
	}
	return vm, nil
}

func (vm *VM) Genesis() *chain.Genesis { return vm.genesis }

func (vm *VM) Config() Config { return vm.config }

// nextBlockTime never moves backwards, even if the host clock does.
func (vm *VM) nextBlockTime() uint64 {
	now := vm.clock().Unix()
	if now < 0 {
		now = 0
	}
	t := uint64(now)
	if t < vm.lastBlockTime {
		return vm.lastBlockTime
	}
	return t
}

// Submit executes [tx] at the current block time. On any error the
// database is left untouched.
func (vm *VM) Submit(tx *chain.Transaction) (*chain.Receipt, error) {
	if tx == nil || tx.UnsignedTransaction == nil {
		return nil, ErrInvalidEmptyTx
	}
	if err := tx.Init(vm.genesis); err != nil {
		return nil, err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	blockTime := vm.nextBlockTime()
	vdb := versiondb.New(vm.db)
	r, err := tx.Execute(vm.genesis, vdb, blockTime)
	if err != nil {
		vdb.Abort()
		log.Debug("rejected tx", "txId", tx.ID(), "sender", tx.Sender(), "error", err)
		return nil, err
	}
	if err := chain.SetLastBlockTime(vdb, blockTime); err != nil {
		vdb.Abort()
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruption, err)
	}
	vm.lastBlockTime = blockTime
	log.Debug("accepted tx",
		"txId", tx.ID(),
		"type", r.Activity.Typ,
		"instance", r.Activity.Instance,
		"events", len(r.Events),
		"blockTime", blockTime,
	)
	return r, nil
}

func (vm *VM) Balance(addr common.Address) (uint64, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return chain.GetBalance(vm.db, addr)
}

func (vm *VM) Vault(id ids.ID) (*chain.Vault, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	v, has, err := chain.GetVault(vm.db, id)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, chain.ErrVaultMissing
	}
	return v, nil
}

func (vm *VM) Register(id ids.ID) (*chain.Register, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	r, has, err := chain.GetRegister(vm.db, id)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, chain.ErrRegisterMissing
	}
	return r, nil
}

// Events returns at most Config.MaxEvents events of [instance], starting at
// sequence [start]. Callers page by passing the last Seq seen plus one.
func (vm *VM) Events(instance ids.ID, start uint64, limit int) ([]*chain.Event, error) {
	if limit <= 0 || limit > vm.config.MaxEvents {
		limit = vm.config.MaxEvents
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return chain.GetEvents(vm.db, instance, start, limit)
}

func (vm *VM) Receipt(txID ids.ID) (*chain.Receipt, bool, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return chain.GetReceipt(vm.db, txID)
}

// BlockTime is the time the next submission would execute at.
func (vm *VM) BlockTime() uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.nextBlockTime()
}
