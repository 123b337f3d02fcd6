// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethersphere/country-sdk/pkg/wallet"
)

const (
	DefaultChainID  = 1666600000
	DefaultGas      = 21_000
	DefaultGasPrice = 30_000_000_000
)

// CallFunc answers eth_call requests.
type CallFunc func(msg ethereum.CallMsg) ([]byte, error)

// SendFunc is invoked for every transaction accepted by the backend.
type SendFunc func(tx *types.Transaction) error

type Option func(*Backend)

func WithCallContract(f CallFunc) Option {
	return func(b *Backend) { b.call = f }
}

func WithSendTransaction(f SendFunc) Option {
	return func(b *Backend) { b.send = f }
}

func WithEstimateGasError(err error) Option {
	return func(b *Backend) { b.estimateErr = err }
}

func WithGasPriceError(err error) Option {
	return func(b *Backend) { b.gasPriceErr = err }
}

// WithReceiptStatus sets the status of the receipts for sent transactions.
func WithReceiptStatus(status uint64) Option {
	return func(b *Backend) { b.receiptStatus = status }
}

// WithoutReceipts makes receipt lookups fail with ethereum.NotFound, as for
// transactions that are never mined.
func WithoutReceipts() Option {
	return func(b *Backend) { b.noReceipts = true }
}

// Backend is an in-memory wallet.BackendClient. Sent transactions are
// mined immediately.
type Backend struct {
	call          CallFunc
	send          SendFunc
	estimateErr   error
	gasPriceErr   error
	receiptStatus uint64
	noReceipts    bool

	mu        sync.Mutex
	nonces    map[common.Address]uint64
	sent      []*types.Transaction
	estimates []ethereum.CallMsg
	receipts  map[common.Hash]*types.Receipt
}

var _ wallet.BackendClient = (*Backend)(nil)

func NewBackendClient(opts ...Option) *Backend {
	b := &Backend{
		receiptStatus: types.ReceiptStatusSuccessful,
		nonces:        make(map[common.Address]uint64),
		receipts:      make(map[common.Hash]*types.Receipt),
	}
	for _, o := range opts {
		o(b)
	}

	return b
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(DefaultChainID), nil
}

func (b *Backend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if b.call == nil {
		return nil, errors.New("disabled chain backend")
	}

	return b.call(msg)
}

func (b *Backend) PendingNonceAt(_ context.Context, addr common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.nonces[addr], nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	if b.gasPriceErr != nil {
		return nil, b.gasPriceErr
	}

	return big.NewInt(DefaultGasPrice), nil
}

func (b *Backend) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	b.mu.Lock()
	b.estimates = append(b.estimates, msg)
	b.mu.Unlock()

	if b.estimateErr != nil {
		return 0, b.estimateErr
	}

	return DefaultGas, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return err
	}

	if b.send != nil {
		if err := b.send(tx); err != nil {
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nonces[from]++
	b.sent = append(b.sent, tx)
	b.receipts[tx.Hash()] = &types.Receipt{
		Type:        tx.Type(),
		Status:      b.receiptStatus,
		TxHash:      tx.Hash(),
		GasUsed:     tx.Gas(),
		BlockNumber: big.NewInt(int64(len(b.sent))),
	}

	return nil
}

func (b *Backend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.receipts[hash]
	if !ok || b.noReceipts {
		return nil, ethereum.NotFound
	}

	return r, nil
}

func (b *Backend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

// SentTransactions returns the transactions accepted so far.
func (b *Backend) SentTransactions() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]*types.Transaction(nil), b.sent...)
}

// Estimates returns the messages gas was estimated for.
func (b *Backend) Estimates() []ethereum.CallMsg {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]ethereum.CallMsg(nil), b.estimates...)
}
