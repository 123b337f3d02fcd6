// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrEstimation is returned when gas estimation fails, usually because
	// the call would revert. Nothing has been sent when it is returned.
	ErrEstimation = errors.New("failed to estimate gas")
	// ErrSubmission is returned when the network rejects the transaction or
	// the endpoint cannot be reached while submitting it.
	ErrSubmission = errors.New("failed to submit transaction")
	// ErrNotMined is returned when the transaction was accepted by the
	// network but its receipt could not be obtained. It may still be mined.
	ErrNotMined = errors.New("transaction not mined")
	// ErrReverted is returned when a mined transaction has a failed status.
	ErrReverted = errors.New("transaction reverted")
	// ErrNoSigner is returned when no local key is registered for the sender.
	ErrNoSigner = errors.New("no signing key for sender")
)

// TxError is returned by Sender.Send when a step of the estimate and submit
// protocol fails. Err is one of the sentinels above and Cause the backend
// error behind it. Hash is set once the network accepted the transaction.
type TxError struct {
	Err   error
	Hash  common.Hash
	Cause error
}

func (e *TxError) Error() string {
	msg := e.Err.Error()
	if e.Hash != (common.Hash{}) {
		msg += " " + e.Hash.Hex()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *TxError) Is(target error) bool {
	return target == e.Err
}

func (e *TxError) Unwrap() error {
	return e.Cause
}

// TxHash returns the hash of the submitted transaction carried by err.
func TxHash(err error) (common.Hash, bool) {
	var txErr *TxError
	if !errors.As(err, &txErr) || txErr.Hash == (common.Hash{}) {
		return common.Hash{}, false
	}

	return txErr.Hash, true
}
