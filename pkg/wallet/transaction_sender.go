// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethersphere/country-sdk/pkg/logging"
)

// Request describes a state changing contract call.
type Request struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Data  []byte
}

var _ TransactionSender = (*Sender)(nil)

type TransactionSender interface {
	// Send estimates gas, fetches the gas price, signs and submits the
	// transaction and waits until it is mined.
	Send(ctx context.Context, req Request) (*types.Receipt, error)
}

// Sender signs transactions with locally registered keys and submits them
// through the backend.
type Sender struct {
	client BackendClient
	log    logging.Logger

	keysMu sync.RWMutex
	keys   map[common.Address]Key
}

func NewSender(client BackendClient, log logging.Logger) *Sender {
	if log == nil {
		log = logging.Discard()
	}

	return &Sender{
		client: client,
		log:    log,
		keys:   make(map[common.Address]Key),
	}
}

// AddKey registers a key for signing transactions sent from its address
// and returns that address.
func (s *Sender) AddKey(key Key) (common.Address, error) {
	addr, err := key.Address()
	if err != nil {
		return common.Address{}, err
	}

	s.keysMu.Lock()
	s.keys[addr] = key
	s.keysMu.Unlock()

	return addr, nil
}

func (s *Sender) key(addr common.Address) (Key, bool) {
	s.keysMu.RLock()
	defer s.keysMu.RUnlock()

	k, ok := s.keys[addr]

	return k, ok
}

func (s *Sender) Send(ctx context.Context, req Request) (*types.Receipt, error) {
	key, ok := s.key(req.From)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSigner, req.From)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  req.From,
		To:    &req.To,
		Value: req.Value,
		Data:  req.Data,
	})
	if err != nil {
		return nil, &TxError{Err: ErrEstimation, Cause: err}
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &TxError{Err: ErrSubmission, Cause: fmt.Errorf("failed to get suggested gas price, %w", err)}
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, &TxError{Err: ErrSubmission, Cause: fmt.Errorf("failed to get chain id, %w", err)}
	}

	nonce, err := s.client.PendingNonceAt(ctx, req.From)
	if err != nil {
		return nil, &TxError{Err: ErrSubmission, Cause: fmt.Errorf("failed to get nonce, %w", err)}
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &req.To,
		Value:    value,
		Data:     req.Data,
	})

	signedTx, err := signTx(key, tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction, %w", err)
	}

	s.log.WithField("tx", signedTx.Hash().Hex()).Debugf("sending transaction from %s to %s (gas %d, gas price %s)", req.From, req.To, gas, gasPrice)

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, &TxError{Err: ErrSubmission, Cause: err}
	}

	// The transaction is on the network, errors carry its hash.
	receipt, err := bind.WaitMined(ctx, s.client, signedTx)
	if err != nil {
		return nil, &TxError{Err: ErrNotMined, Hash: signedTx.Hash(), Cause: err}
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, &TxError{Err: ErrReverted, Hash: receipt.TxHash}
	}

	s.log.WithField("tx", receipt.TxHash.Hex()).Debugf("transaction mined in block %s", receipt.BlockNumber)

	return receipt, nil
}

// signTx signs a legacy transaction with the EIP-155 replay protection of
// the given chain.
func signTx(key Key, transaction *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	txSigner := types.NewEIP155Signer(chainID)
	hash := txSigner.Hash(transaction).Bytes()

	signature, err := sign(key, hash)
	if err != nil {
		return nil, err
	}

	// v value needs to be adjusted by 27 as transaction.WithSignature expects it to be 0 or 1
	signature[64] -= 27

	return transaction.WithSignature(txSigner, signature)
}

// sign the provided hash and convert it to the ethereum (r,s,v) format.
func sign(key Key, sighash []byte) ([]byte, error) {
	privateECDSA, err := key.PrivateECDSA()
	if err != nil {
		return nil, err
	}

	// isCompressedKey is false here so we get the expected v value (27 or 28)
	signature, err := btcec.SignCompact(btcec.S256(), (*btcec.PrivateKey)(privateECDSA), sighash, false)
	if err != nil {
		return nil, err
	}

	// Convert to Ethereum signature format with 'recovery id' v at the end.
	v := signature[0]
	copy(signature, signature[1:])
	signature[64] = v

	return signature, nil
}
