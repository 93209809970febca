// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "lockvm" client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/lockvm/chain"
	"github.com/ava-labs/lockvm/vm"
)

// Client defines lockvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)
	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)
	// Returns the block time the next transaction would execute at.
	BlockTime() (uint64, error)
	// Balance returns the balance of an account.
	Balance(addr common.Address) (uint64, error)

	// Issues a signed transaction and returns its ID and receipt.
	IssueRawTx(d []byte) (ids.ID, *chain.Receipt, error)

	// Vault returns the vault created by [id] and whether it has matured.
	Vault(id ids.ID) (*vm.VaultReply, error)
	// Register returns the register created by [id].
	Register(id ids.ID) (*chain.Register, error)
	// GetValue reads the current value of a register.
	GetValue(id ids.ID) (int64, error)
	// Events returns notifications emitted by an instance with a sequence
	// of at least [start], oldest first.
	Events(id ids.ID, start uint64, limit int) ([]*chain.Event, error)
	// Receipt returns the receipt of an executed transaction.
	Receipt(txID ids.ID) (*chain.Receipt, bool, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

// sendRequest restores known sentinel errors from the server response.
func (cli *client) sendRequest(method string, params interface{}, reply interface{}) error {
	return mapError(cli.req.SendRequest(method, params, reply))
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.sendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.sendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) BlockTime() (uint64, error) {
	resp := new(vm.BlockTimeReply)
	if err := cli.sendRequest(
		"blockTime",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.BlockTime, nil
}

func (cli *client) Balance(addr common.Address) (uint64, error) {
	resp := new(vm.BalanceReply)
	if err := cli.sendRequest(
		"balance",
		&vm.BalanceArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) IssueRawTx(d []byte) (ids.ID, *chain.Receipt, error) {
	resp := new(vm.IssueRawTxReply)
	if err := cli.sendRequest(
		"issueRawTx",
		&vm.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, nil, err
	}
	return resp.TxID, resp.Receipt, nil
}

func (cli *client) Vault(id ids.ID) (*vm.VaultReply, error) {
	resp := new(vm.VaultReply)
	if err := cli.sendRequest(
		"vault",
		&vm.InstanceArgs{ID: id},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Register(id ids.ID) (*chain.Register, error) {
	resp := new(vm.RegisterReply)
	if err := cli.sendRequest(
		"register",
		&vm.InstanceArgs{ID: id},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Register, nil
}

func (cli *client) GetValue(id ids.ID) (int64, error) {
	resp := new(vm.GetValueReply)
	if err := cli.sendRequest(
		"getValue",
		&vm.InstanceArgs{ID: id},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (cli *client) Events(id ids.ID, start uint64, limit int) ([]*chain.Event, error) {
	resp := new(vm.EventsReply)
	if err := cli.sendRequest(
		"events",
		&vm.EventsArgs{ID: id, Start: start, Limit: limit},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (cli *client) Receipt(txID ids.ID) (*chain.Receipt, bool, error) {
	resp := new(vm.ReceiptReply)
	if err := cli.sendRequest(
		"receipt",
		&vm.ReceiptArgs{TxID: txID},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Receipt, resp.Found, nil
}
