// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gateway is a client for the gateway contract which maps rented
// names to destination addresses.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ethersphere/country-sdk/pkg/contract"
	"github.com/ethersphere/country-sdk/pkg/logging"
	"github.com/ethersphere/country-sdk/pkg/wallet"
)

var (
	ErrConfiguration  = contract.ErrConfiguration
	ErrInvalidAddress = errors.New("invalid address")
)

type Config struct {
	ContractAddress string `validate:"required,eth_addr"`
	// Backend is used when set, otherwise Endpoint is dialed.
	Backend  wallet.BackendClient `validate:"-"`
	Endpoint string
	// PrivateKey is optional; without it only read calls are possible
	// until a key is registered.
	PrivateKey string `validate:"omitempty,hexadecimal"`
}

type Option func(*Client)

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

type Client struct {
	backend  wallet.BackendClient
	closer   func()
	contract *contract.Contract
	sender   *wallet.Sender
	log      logging.Logger

	mu      sync.RWMutex
	account string
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Backend == nil && cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint or backend must be set", ErrConfiguration)
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

	c.backend = cfg.Backend
	if c.backend == nil {
		ethClient, err := dial(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to dial %s, %s", ErrConfiguration, cfg.Endpoint, err)
		}

		c.backend = ethClient
		c.closer = ethClient.Close
	}

	c.contract = contract.New(common.HexToAddress(cfg.ContractAddress), gatewayABI, c.backend)
	c.sender = wallet.NewSender(c.backend, c.log)

	if cfg.PrivateKey != "" {
		if _, err := c.AddKey(wallet.Key(cfg.PrivateKey)); err != nil {
			c.Close()
			return nil, fmt.Errorf("%w: %s", ErrConfiguration, err)
		}
	}

	return c, nil
}

func dial(endpoint string) (*ethclient.Client, error) {
	rpcClient, err := rpc.DialContext(context.Background(), endpoint)
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(rpcClient), nil
}

// Close releases the connection if the client dialed it itself.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// AddKey registers a signing key and makes its address the sender.
func (c *Client) AddKey(key wallet.Key) (common.Address, error) {
	addr, err := c.sender.AddKey(key)
	if err != nil {
		return common.Address{}, err
	}

	c.SetAccountAddress(addr.Hex())
	c.log.Debugf("gateway: using account %s", addr)

	return addr, nil
}

// SetAccountAddress overwrites the transaction sender. The address is not
// validated.
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

// GetPrice returns the price the contract asks for renting name for the
// destination, in wei, as a base-10 string.
func (c *Client) GetPrice(ctx context.Context, name, to string) (string, error) {
	toAddr, err := parseAddress(to)
	if err != nil {
		return "", err
	}

	price, err := c.contract.CallUint(ctx, methodGetPrice, name, toAddr)
	if err != nil {
		return "", fmt.Errorf("failed to get price for %q, %w", name, err)
	}

	return price.String(), nil
}

// Rent rents name for the destination. The secret is committed as its
// keccak256 hash, the plaintext never leaves the client.
func (c *Client) Rent(ctx context.Context, name, url, secret, to string) (*types.Receipt, error) {
	toAddr, err := parseAddress(to)
	if err != nil {
		return nil, err
	}

	from := common.HexToAddress(c.AccountAddress())

	receipt, err := c.contract.Transact(ctx, c.sender, from, nil, methodRent, name, url, SecretHash(secret), toAddr)
	if err != nil {
		return receipt, fmt.Errorf("failed to rent %q, %w", name, err)
	}

	c.log.WithField("tx", receipt.TxHash.Hex()).Infof("gateway: rented %q for %s", name, toAddr)

	return receipt, nil
}

// SecretHash returns the on-chain commitment of secret.
func SecretHash(secret string) common.Hash {
	return contract.Keccak256(secret)
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	return common.HexToAddress(s), nil
}
