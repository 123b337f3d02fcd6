// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethersphere/country-sdk/pkg/wallet"
	"github.com/ethersphere/country-sdk/pkg/wallet/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractAddr = common.HexToAddress("0x3C84F4690De96a0428Bc6777f5aA5f5a92150Ef2")

func newSender(t *testing.T, bc wallet.BackendClient) (*wallet.Sender, common.Address) {
	t.Helper()

	s := wallet.NewSender(bc, nil)
	from, err := s.AddKey(wallet.Key(testKey))
	require.NoError(t, err)

	return s, from
}

func Test_SenderSend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("signed and mined", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient()
		s, from := newSender(t, bc)

		receipt, err := s.Send(ctx, wallet.Request{
			From:  from,
			To:    contractAddr,
			Value: big.NewInt(42),
			Data:  []byte{0xde, 0xad},
		})
		require.NoError(t, err)

		sent := bc.SentTransactions()
		require.Len(t, sent, 1)

		tx := sent[0]
		assert.Equal(t, tx.Hash(), receipt.TxHash)
		assert.Equal(t, int64(mock.DefaultChainID), tx.ChainId().Int64())
		assert.Equal(t, uint64(mock.DefaultGas), tx.Gas())
		assert.Equal(t, int64(mock.DefaultGasPrice), tx.GasPrice().Int64())
		assert.Equal(t, int64(42), tx.Value().Int64())
		assert.Equal(t, contractAddr, *tx.To())
		assert.Equal(t, []byte{0xde, 0xad}, tx.Data())

		signer, err := types.Sender(types.NewEIP155Signer(tx.ChainId()), tx)
		require.NoError(t, err)
		assert.Equal(t, from, signer)

		estimates := bc.Estimates()
		require.Len(t, estimates, 1)
		assert.Equal(t, from, estimates[0].From)
		assert.Equal(t, int64(42), estimates[0].Value.Int64())
	})

	t.Run("consecutive nonces", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient()
		s, from := newSender(t, bc)

		for i := 0; i < 2; i++ {
			_, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
			require.NoError(t, err)
		}

		sent := bc.SentTransactions()
		require.Len(t, sent, 2)
		assert.Equal(t, uint64(0), sent[0].Nonce())
		assert.Equal(t, uint64(1), sent[1].Nonce())
		assert.Equal(t, int64(0), sent[0].Value().Int64())
	})

	t.Run("no signer", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient()
		s, _ := newSender(t, bc)

		_, err := s.Send(ctx, wallet.Request{From: common.HexToAddress("0x01"), To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrNoSigner)
		assert.Empty(t, bc.Estimates())
	})

	t.Run("estimation fails", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithEstimateGasError(errors.New("execution reverted")))
		s, from := newSender(t, bc)

		_, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrEstimation)
		assert.Contains(t, err.Error(), "execution reverted")
		assert.Empty(t, bc.SentTransactions())
	})

	t.Run("gas price fails", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithGasPriceError(errors.New("connection refused")))
		s, from := newSender(t, bc)

		_, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrSubmission)
		assert.Empty(t, bc.SentTransactions())
	})

	t.Run("backend error kept", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithGasPriceError(context.Canceled))
		s, from := newSender(t, bc)

		_, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrSubmission)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, wallet.ErrEstimation)

		_, ok := wallet.TxHash(err)
		assert.False(t, ok)
	})

	t.Run("not mined", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithoutReceipts())
		s, from := newSender(t, bc)

		ctx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()

		receipt, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, wallet.ErrNotMined)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, wallet.ErrSubmission)

		sent := bc.SentTransactions()
		require.Len(t, sent, 1)

		hash, ok := wallet.TxHash(err)
		require.True(t, ok)
		assert.Equal(t, sent[0].Hash(), hash)
		assert.Contains(t, err.Error(), sent[0].Hash().Hex())
	})

	t.Run("submission rejected", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithSendTransaction(func(*types.Transaction) error {
			return errors.New("insufficient funds for gas * price + value")
		}))
		s, from := newSender(t, bc)

		_, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrSubmission)
		assert.Contains(t, err.Error(), "insufficient funds")
	})

	t.Run("reverted", func(t *testing.T) {
		t.Parallel()

		bc := mock.NewBackendClient(mock.WithReceiptStatus(types.ReceiptStatusFailed))
		s, from := newSender(t, bc)

		receipt, err := s.Send(ctx, wallet.Request{From: from, To: contractAddr})
		assert.ErrorIs(t, err, wallet.ErrReverted)
		require.NotNil(t, receipt)
		assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)

		hash, ok := wallet.TxHash(err)
		require.True(t, ok)
		assert.Equal(t, receipt.TxHash, hash)
	})
}
