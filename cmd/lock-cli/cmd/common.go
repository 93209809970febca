// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/client"
)

func parseID(s string) (ids.ID, error) {
	id, err := ids.FromString(s)
	if err != nil {
		return ids.Empty, fmt.Errorf("%w: failed to parse ID %q", err, s)
	}
	return id, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q is not an address", chain.ErrInvalidArgument, s)
	}
	return common.HexToAddress(s), nil
}

func getInstanceOp(args []string) (ids.ID, error) {
	if len(args) != 1 {
		return ids.Empty, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return parseID(args[0])
}

// issue signs [utx] with the local key, issues it and prints the receipt.
func issue(utx chain.UnsignedTransaction) (ids.ID, error) {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return ids.Empty, err
	}
	cli := client.New(uri, requestTimeout)
	txID, r, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return ids.Empty, err
	}
	client.PPReceipt(r)
	return txID, nil
}
