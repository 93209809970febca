// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNewRegister(t *testing.T) {
	t.Parallel()

	r, err := NewRegister(testOwner, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Owner != testOwner {
		t.Fatalf("owner expected %s, got %s", testOwner, r.Owner)
	}
	if r.GetValue() != 0 {
		t.Fatalf("value expected 0, got %d", r.GetValue())
	}
	if _, err := NewRegister(common.Address{}, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected %v, got %v", ErrInvalidArgument, err)
	}
}

func TestRegisterSetValue(t *testing.T) {
	t.Parallel()

	r, err := NewRegister(testOwner, 1)
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		caller common.Address
		value  int64
		err    error
		expect int64
	}{
		{caller: testOwner, value: 42, expect: 42},
		{caller: testOther, value: 100, err: ErrUnauthorized, expect: 42},
		{caller: testOwner, value: 42, expect: 42},
		{caller: testOwner, value: -7, expect: -7},
		{caller: testOwner, value: 0, expect: 0},
	}
	for i, tv := range tt {
		e, err := r.SetValue(tv.caller, tv.value, 2)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: SetValue err expected %v, got %v", i, tv.err, err)
		}
		if r.GetValue() != tv.expect {
			t.Fatalf("#%d: value expected %d, got %d", i, tv.expect, r.GetValue())
		}
		if tv.err != nil {
			continue
		}
		if e.Typ != ValueUpdated || e.Value != tv.value {
			t.Fatalf("#%d: unexpected event %+v", i, e)
		}
	}
}

func TestRegisterIncrementValue(t *testing.T) {
	t.Parallel()

	r, err := NewRegister(testOwner, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.SetValue(testOwner, 10, 1); err != nil {
		t.Fatal(err)
	}
	for n := int64(1); n <= 25; n++ {
		e, err := r.IncrementValue(testOwner, 1)
		if err != nil {
			t.Fatal(err)
		}
		if e.Typ != ValueIncremented || e.Value != 10+n {
			t.Fatalf("increment %d: unexpected event %+v", n, e)
		}
	}
	if r.GetValue() != 35 {
		t.Fatalf("value expected 35, got %d", r.GetValue())
	}

	if _, err := r.IncrementValue(testOther, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected %v, got %v", ErrUnauthorized, err)
	}
	if r.GetValue() != 35 {
		t.Fatalf("unauthorized increment changed value to %d", r.GetValue())
	}

	if _, err := r.SetValue(testOwner, math.MaxInt64, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := r.IncrementValue(testOwner, 1); !errors.Is(err, ErrValueOverflow) {
		t.Fatalf("expected %v, got %v", ErrValueOverflow, err)
	}
	if r.GetValue() != math.MaxInt64 {
		t.Fatal("overflowing increment changed value")
	}
}

func TestRegisterTransferOwnership(t *testing.T) {
	t.Parallel()

	r, err := NewRegister(testOwner, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.TransferOwnership(testOther, testOther, 2); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected %v, got %v", ErrUnauthorized, err)
	}
	if _, err := r.TransferOwnership(testOwner, common.Address{}, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected %v, got %v", ErrInvalidArgument, err)
	}
	if r.Owner != testOwner {
		t.Fatal("failed transfer changed owner")
	}

	e, err := r.TransferOwnership(testOwner, testOther, 3)
	if err != nil {
		t.Fatal(err)
	}
	if e.Typ != OwnershipTransferred || e.PreviousOwner != testOwner || e.NewOwner != testOther {
		t.Fatalf("unexpected event %+v", e)
	}

	if _, err := r.SetValue(testOwner, 100, 4); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("previous owner: expected %v, got %v", ErrUnauthorized, err)
	}
	if _, err := r.IncrementValue(testOwner, 4); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("previous owner: expected %v, got %v", ErrUnauthorized, err)
	}
	if _, err := r.SetValue(testOther, 100, 4); err != nil {
		t.Fatalf("new owner: %v", err)
	}
	if r.GetValue() != 100 {
		t.Fatalf("value expected 100, got %d", r.GetValue())
	}
}
