// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contract binds a fixed contract address and ABI to a backend
// and performs typed calls and transactions against it.
package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethersphere/country-sdk/pkg/wallet"
)

// Caller performs read only contract calls.
type Caller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type Contract struct {
	address common.Address
	abi     abi.ABI
	caller  Caller
}

func New(address common.Address, contractABI abi.ABI, caller Caller) *Contract {
	return &Contract{
		address: address,
		abi:     contractABI,
		caller:  caller,
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// Pack encodes a call of method with args.
func (c *Contract) Pack(method string, args ...interface{}) ([]byte, error) {
	callData, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack abi for %s, %w", method, err)
	}

	return callData, nil
}

func (c *Contract) call(ctx context.Context, method string, args ...interface{}) ([]byte, error) {
	callData, err := c.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s, %w", method, err)
	}

	return out, nil
}

// Call executes a read only call against the latest block and returns the
// decoded outputs in declaration order.
func (c *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	values, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result, %w", method, err)
	}

	return values, nil
}

// CallNamed executes a read only call and returns the outputs keyed by
// their ABI names.
func (c *Contract) CallNamed(ctx context.Context, method string, args ...interface{}) (map[string]interface{}, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{})
	if err := c.abi.UnpackIntoMap(values, method, out); err != nil {
		return nil, fmt.Errorf("failed to unpack %s result, %w", method, err)
	}

	return values, nil
}

// CallUint executes a call of a method returning a single uint256.
func (c *Contract) CallUint(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	values, err := c.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s result length %d", method, len(values))
	}

	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s result type %T", method, values[0])
	}

	return v, nil
}

// Transact packs the call and submits it through the sender.
func (c *Contract) Transact(
	ctx context.Context,
	sender wallet.TransactionSender,
	from common.Address,
	value *big.Int,
	method string,
	args ...interface{},
) (*types.Receipt, error) {
	callData, err := c.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	return sender.Send(ctx, wallet.Request{
		From:  from,
		To:    c.address,
		Value: value,
		Data:  callData,
	})
}

// MustParseABI parses a JSON ABI and panics if it is malformed or misses
// any of the required methods.
func MustParseABI(json string, methods ...string) abi.ABI {
	cabi, err := abi.JSON(strings.NewReader(json))
	if err != nil {
		panic(fmt.Sprintf("error creating ABI for contract: %v", err))
	}

	for _, m := range methods {
		if _, ok := cabi.Methods[m]; !ok {
			panic(fmt.Sprintf("error creating ABI for contract: method %s missing", m))
		}
	}

	return cabi
}
