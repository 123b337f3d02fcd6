// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Key is a hex encoded secp256k1 private key. The 0x prefix is optional.
type Key string

func (k Key) PrivateECDSA() (*ecdsa.PrivateKey, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(string(k), "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key, %w", err)
	}

	return privateKey, nil
}

func (k Key) PublicECDSA() (*ecdsa.PublicKey, error) {
	privateKey, err := k.PrivateECDSA()
	if err != nil {
		return nil, err
	}

	publicKeyECDSA, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("failed to get public key from private key")
	}

	return publicKeyECDSA, nil
}

// Address returns the account address derived from the key.
func (k Key) Address() (common.Address, error) {
	publicKey, err := k.PublicECDSA()
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*publicKey), nil
}

func GenerateKey() (Key, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return "", err
	}

	privateKeyBytes := crypto.FromECDSA(privateKey)
	keyStr := hex.EncodeToString(privateKeyBytes)

	return Key(keyStr), nil
}
