// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contract

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Keccak256 hashes s the way web3 clients do: a 0x prefixed hex string is
// hashed as the bytes it encodes, anything else as its UTF-8 bytes.
func Keccak256(s string) common.Hash {
	if b, ok := hexBytes(s); ok {
		return crypto.Keccak256Hash(b)
	}

	return crypto.Keccak256Hash([]byte(s))
}

// hexBytes decodes a 0x prefixed hex string. An odd trailing digit becomes
// a byte of its own, so "0xabc" decodes to 0xab 0x0c as in web3.
func hexBytes(s string) ([]byte, bool) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return nil, false
	}

	digits := s[2:]
	if len(digits)%2 == 0 {
		b, err := hexutil.Decode(s)
		return b, err == nil
	}

	b, err := hexutil.Decode(s[:len(s)-1])
	if err != nil {
		return nil, false
	}

	last, err := strconv.ParseUint(digits[len(digits)-1:], 16, 8)
	if err != nil {
		return nil, false
	}

	return append(b, byte(last)), true
}
