// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

const DefaultMagic = 1

type Allocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic is mixed into every transaction to prevent replay across networks.
	Magic uint64 `serialize:"true" json:"magic"`

	Allocations []*Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{Magic: DefaultMagic}
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return fmt.Errorf("%w: magic must be non-zero", ErrInvalidGenesis)
	}
	seen := make(map[common.Address]struct{}, len(g.Allocations))
	for _, a := range g.Allocations {
		if IsZeroAddress(a.Address) {
			return fmt.Errorf("%w: allocation to zero address", ErrInvalidGenesis)
		}
		if _, ok := seen[a.Address]; ok {
			return fmt.Errorf("%w: duplicate allocation for %s", ErrInvalidGenesis, a.Address.Hex())
		}
		seen[a.Address] = struct{}{}
	}
	return nil
}

// Load seeds the allocations into an empty database.
func (g *Genesis) Load(db database.Database) error {
	if err := g.Verify(); err != nil {
		return err
	}
	for _, a := range g.Allocations {
		if _, err := ModifyBalance(db, a.Address, true, a.Balance); err != nil {
			return err
		}
		log.Debug("loaded genesis allocation", "address", a.Address, "balance", a.Balance)
	}
	return putUint64(db, prefixMetaKey(genesisLoadKey), g.Magic)
}

// LoadedMagic returns the magic of the genesis that seeded [db].
func LoadedMagic(db database.KeyValueReader) (uint64, bool, error) {
	return getUint64(db, prefixMetaKey(genesisLoadKey))
}
