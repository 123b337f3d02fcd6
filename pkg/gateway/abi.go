// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gateway

import "github.com/ethersphere/country-sdk/pkg/contract"

const (
	methodGetPrice = "getPrice"
	methodRent     = "rent"
)

// ABIJSON is the part of the gateway contract ABI used by the client.
const ABIJSON = `[
	{
		"inputs": [
			{"internalType": "string", "name": "name", "type": "string"},
			{"internalType": "address", "name": "to", "type": "address"}
		],
		"name": "getPrice",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "string", "name": "name", "type": "string"},
			{"internalType": "string", "name": "url", "type": "string"},
			{"internalType": "bytes32", "name": "secretHash", "type": "bytes32"},
			{"internalType": "address", "name": "to", "type": "address"}
		],
		"name": "rent",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var gatewayABI = contract.MustParseABI(ABIJSON, methodGetPrice, methodRent)
