// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package onecountry is a client for the .country domain contract: it
// quotes prices, reads name records, rents names and updates their URLs.
package onecountry

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethersphere/country-sdk/pkg/contract"
	"github.com/ethersphere/country-sdk/pkg/logging"
	"github.com/ethersphere/country-sdk/pkg/units"
	"github.com/ethersphere/country-sdk/pkg/wallet"
)

var ErrConfiguration = contract.ErrConfiguration

type Config struct {
	ContractAddress string               `validate:"required,eth_addr"`
	Backend         wallet.BackendClient `validate:"-"`
	// PrivateKey is meant for server side use.
	PrivateKey string `validate:"omitempty,hexadecimal"`
}

type Option func(*Client)

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

type Client struct {
	contract *contract.Contract
	sender   *wallet.Sender
	log      logging.Logger

	mu      sync.RWMutex
	account string
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("%w: backend must be set", ErrConfiguration)
	}

	if err := contract.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	c := &Client{
		log: logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}

	c.contract = contract.New(common.HexToAddress(cfg.ContractAddress), d1dcABI, cfg.Backend)
	c.sender = wallet.NewSender(cfg.Backend, c.log)

	if cfg.PrivateKey != "" {
		if _, err := c.AddKey(wallet.Key(cfg.PrivateKey)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfiguration, err)
		}
	}

	return c, nil
}

// AddKey registers a signing key and makes its address the sender.
func (c *Client) AddKey(key wallet.Key) (common.Address, error) {
	addr, err := c.sender.AddKey(key)
	if err != nil {
		return common.Address{}, err
	}

	c.SetAccountAddress(addr.Hex())

	return addr, nil
}

// SetAccountAddress overwrites the transaction sender without validation.
func (c *Client) SetAccountAddress(address string) {
	c.mu.Lock()
	c.account = address
	c.mu.Unlock()
}

func (c *Client) AccountAddress() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.account
}

func (c *Client) ContractAddress() common.Address {
	return c.contract.Address()
}

// GetPriceByName returns the rent price of name in wei as a base-10 string.
func (c *Client) GetPriceByName(ctx context.Context, name string) (string, error) {
	price, err := c.contract.CallUint(ctx, methodGetPrice, contract.Keccak256(name))
	if err != nil {
		return "", fmt.Errorf("failed to get price for %q, %w", name, err)
	}

	return price.String(), nil
}

func (c *Client) GetRecordByName(ctx context.Context, name string) (DomainRecord, error) {
	values, err := c.contract.CallNamed(ctx, methodNameRecords, contract.Keccak256(name))
	if err != nil {
		return DomainRecord{}, fmt.Errorf("failed to get record for %q, %w", name, err)
	}

	record, err := decodeRecord(values)
	if err != nil {
		return DomainRecord{}, fmt.Errorf("failed to decode record for %q, %w", name, err)
	}

	return record, nil
}

// Rent rents name, paying price wei. The price has to be quoted with
// GetPriceByName first.
func (c *Client) Rent(ctx context.Context, name, url, price string) (*types.Receipt, error) {
	value, err := units.ParseAmount(price)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, value, methodRent, name, url)
	if err != nil {
		return receipt, fmt.Errorf("failed to rent %q, %w", name, err)
	}

	c.log.WithField("tx", receipt.TxHash.Hex()).Infof("onecountry: rented %q for %s", name, units.FormatWei(value))

	return receipt, nil
}

func (c *Client) UpdateURL(ctx context.Context, name, url string) (*types.Receipt, error) {
	receipt, err := c.transact(ctx, nil, methodUpdateURL, name, url)
	if err != nil {
		return receipt, fmt.Errorf("failed to update url of %q, %w", name, err)
	}

	c.log.WithField("tx", receipt.TxHash.Hex()).Infof("onecountry: updated url of %q", name)

	return receipt, nil
}

func (c *Client) transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	from := common.HexToAddress(c.AccountAddress())

	return c.contract.Transact(ctx, c.sender, from, value, method, args...)
}
