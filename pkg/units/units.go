// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units converts between on-chain integer amounts and their
// decimal representation. Conversions are exact; nothing is rounded.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// EtherDecimals is the number of decimals of the native coin (wei per one).
const EtherDecimals = 18

var ErrInvalidAmount = errors.New("invalid amount")

// FormatAmount renders amount shifted by decimals places. All significant
// fractional digits are kept and trailing zeros are trimmed.
func FormatAmount(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}

	if decimals <= 0 {
		return amount.String()
	}

	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}

	digits := new(big.Int).Abs(amount).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	intPart := digits[:len(digits)-decimals]
	fracPart := strings.TrimRight(digits[len(digits)-decimals:], "0")

	if fracPart == "" {
		return sign + intPart
	}

	return sign + intPart + "." + fracPart
}

// FormatWei renders a wei amount in whole coins.
func FormatWei(amount *big.Int) string {
	return FormatAmount(amount, EtherDecimals)
}

// ParseAmount parses a base-10 integer amount in the smallest unit.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, s)
	}

	return v, nil
}
