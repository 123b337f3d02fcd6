// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onecountry

import "github.com/ethersphere/country-sdk/pkg/contract"

const (
	methodGetPrice    = "getPrice"
	methodNameRecords = "nameRecords"
	methodRent        = "rent"
	methodUpdateURL   = "updateURL"
)

// ABIJSON is the part of the .country (D1DC) contract ABI used by the client.
const ABIJSON = `[
	{
		"inputs": [{"internalType": "bytes32", "name": "encodedName", "type": "bytes32"}],
		"name": "getPrice",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "bytes32", "name": "", "type": "bytes32"}],
		"name": "nameRecords",
		"outputs": [
			{"internalType": "address", "name": "renter", "type": "address"},
			{"internalType": "uint32", "name": "timeUpdated", "type": "uint32"},
			{"internalType": "uint256", "name": "lastPrice", "type": "uint256"},
			{"internalType": "string", "name": "url", "type": "string"},
			{"internalType": "bytes32", "name": "prev", "type": "bytes32"},
			{"internalType": "bytes32", "name": "next", "type": "bytes32"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "string", "name": "name", "type": "string"},
			{"internalType": "string", "name": "url", "type": "string"}
		],
		"name": "rent",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "string", "name": "name", "type": "string"},
			{"internalType": "string", "name": "url", "type": "string"}
		],
		"name": "updateURL",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var d1dcABI = contract.MustParseABI(ABIJSON, methodGetPrice, methodNameRecords, methodRent, methodUpdateURL)
