// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/lockvm/chain"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type BlockTimeReply struct {
	BlockTime uint64 `serialize:"true" json:"blockTime"`
}

func (svc *PublicService) BlockTime(_ *http.Request, _ *struct{}, reply *BlockTimeReply) (err error) {
	reply.BlockTime = svc.vm.BlockTime()
	return nil
}

type IssueRawTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID    ids.ID         `serialize:"true" json:"txId"`
	Receipt *chain.Receipt `serialize:"true" json:"receipt"`
}

func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}
	r, err := svc.vm.Submit(tx)
	if err != nil {
		return err
	}
	reply.TxID = tx.ID()
	reply.Receipt = r
	return nil
}

type BalanceArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) (err error) {
	reply.Balance, err = svc.vm.Balance(args.Address)
	return err
}

type InstanceArgs struct {
	ID ids.ID `serialize:"true" json:"id"`
}

type VaultReply struct {
	Vault     *chain.Vault `serialize:"true" json:"vault"`
	Matured   bool         `serialize:"true" json:"matured"`
	BlockTime uint64       `serialize:"true" json:"blockTime"`
}

func (svc *PublicService) Vault(_ *http.Request, args *InstanceArgs, reply *VaultReply) error {
	v, err := svc.vm.Vault(args.ID)
	if err != nil {
		return err
	}
	reply.Vault = v
	reply.BlockTime = svc.vm.BlockTime()
	reply.Matured = v.Matured(reply.BlockTime)
	return nil
}

type RegisterReply struct {
	Register *chain.Register `serialize:"true" json:"register"`
}

func (svc *PublicService) Register(_ *http.Request, args *InstanceArgs, reply *RegisterReply) error {
	r, err := svc.vm.Register(args.ID)
	if err != nil {
		return err
	}
	reply.Register = r
	return nil
}

type GetValueReply struct {
	Value int64 `serialize:"true" json:"value"`
}

// GetValue is a pure read and requires no authorization.
func (svc *PublicService) GetValue(_ *http.Request, args *InstanceArgs, reply *GetValueReply) error {
	r, err := svc.vm.Register(args.ID)
	if err != nil {
		return err
	}
	reply.Value = r.GetValue()
	return nil
}

type EventsArgs struct {
	ID    ids.ID `serialize:"true" json:"id"`
	Start uint64 `serialize:"true" json:"start"`
	Limit int    `serialize:"true" json:"limit"`
}

type EventsReply struct {
	Events []*chain.Event `serialize:"true" json:"events"`
}

func (svc *PublicService) Events(_ *http.Request, args *EventsArgs, reply *EventsReply) (err error) {
	reply.Events, err = svc.vm.Events(args.ID, args.Start, args.Limit)
	return err
}

type ReceiptArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type ReceiptReply struct {
	Found   bool           `serialize:"true" json:"found"`
	Receipt *chain.Receipt `serialize:"true" json:"receipt"`
}

func (svc *PublicService) Receipt(_ *http.Request, args *ReceiptArgs, reply *ReceiptReply) (err error) {
	reply.Receipt, reply.Found, err = svc.vm.Receipt(args.TxID)
	return err
}
