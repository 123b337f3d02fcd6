// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onecountry

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethersphere/country-sdk/pkg/units"
)

// Amount is an on-chain amount in wei together with its decimal rendering
// in whole coins.
type Amount struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

func newAmount(v *big.Int) Amount {
	return Amount{
		Amount:    v.String(),
		Formatted: units.FormatWei(v),
	}
}

// DomainRecord is the state of a name as stored by the contract.
type DomainRecord struct {
	// Renter is nil when the name was never rented.
	Renter    *common.Address `json:"renter"`
	LastPrice Amount          `json:"lastPrice"`
	// TimeUpdated is in milliseconds since the unix epoch.
	TimeUpdated int64       `json:"timeUpdated"`
	URL         string      `json:"url"`
	Prev        common.Hash `json:"prev"`
	Next        common.Hash `json:"next"`
}

// recordFields maps nameRecords outputs to DomainRecord fields.
var recordFields = map[string]func(r *DomainRecord, v interface{}) error{
	"renter": func(r *DomainRecord, v interface{}) error {
		addr, ok := v.(common.Address)
		if !ok {
			return typeError("renter", v)
		}
		if addr != (common.Address{}) {
			r.Renter = &addr
		}
		return nil
	},
	"timeUpdated": func(r *DomainRecord, v interface{}) error {
		seconds, err := toInt64(v)
		if err != nil {
			return fmt.Errorf("timeUpdated: %w", err)
		}
		r.TimeUpdated = seconds * 1000
		return nil
	},
	"lastPrice": func(r *DomainRecord, v interface{}) error {
		price, ok := v.(*big.Int)
		if !ok {
			return typeError("lastPrice", v)
		}
		r.LastPrice = newAmount(price)
		return nil
	},
	"url": func(r *DomainRecord, v interface{}) error {
		url, ok := v.(string)
		if !ok {
			return typeError("url", v)
		}
		r.URL = url
		return nil
	},
	"prev": func(r *DomainRecord, v interface{}) error {
		b, ok := v.([32]byte)
		if !ok {
			return typeError("prev", v)
		}
		r.Prev = b
		return nil
	},
	"next": func(r *DomainRecord, v interface{}) error {
		b, ok := v.([32]byte)
		if !ok {
			return typeError("next", v)
		}
		r.Next = b
		return nil
	},
}

func decodeRecord(values map[string]interface{}) (DomainRecord, error) {
	var r DomainRecord

	for name, set := range recordFields {
		v, ok := values[name]
		if !ok {
			return DomainRecord{}, fmt.Errorf("record field %s missing", name)
		}

		if err := set(&r, v); err != nil {
			return DomainRecord{}, err
		}
	}

	return r, nil
}

func typeError(field string, v interface{}) error {
	return fmt.Errorf("record field %s has unexpected type %T", field, v)
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case *big.Int:
		if !n.IsInt64() {
			return 0, fmt.Errorf("value %s overflows int64", n)
		}
		return n.Int64(), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
