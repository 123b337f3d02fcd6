// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units_test

import (
	"math/big"
	"testing"

	"github.com/ethersphere/country-sdk/pkg/units"
	"github.com/stretchr/testify/assert"
)

func Test_FormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", units.FormatAmount(nil, 0))
	assert.Equal(t, "0", units.FormatAmount(nil, 10))
	assert.Equal(t, "1000", units.FormatAmount(big.NewInt(1000), 0))
	assert.Equal(t, "10", units.FormatAmount(big.NewInt(1000), 2))
	assert.Equal(t, "10.1", units.FormatAmount(big.NewInt(1010), 2))
	assert.Equal(t, "10.01", units.FormatAmount(big.NewInt(1001), 2))
	assert.Equal(t, "0.05", units.FormatAmount(big.NewInt(5), 2))
	assert.Equal(t, "-0.05", units.FormatAmount(big.NewInt(-5), 2))
	assert.Equal(t, "0", units.FormatAmount(big.NewInt(0), 18))
}

func Test_FormatWei(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100", units.FormatWei(toBigInt("100000000000000000000")))
	assert.Equal(t, "0.000000000000000001", units.FormatWei(big.NewInt(1)))
	assert.Equal(t, "1.234567890123456789", units.FormatWei(toBigInt("1234567890123456789")))
}

func Test_ParseAmount(t *testing.T) {
	t.Parallel()

	v, err := units.ParseAmount("100000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, "100000000000000000000", v.String())

	_, err = units.ParseAmount("1.5")
	assert.ErrorIs(t, err, units.ErrInvalidAmount)

	_, err = units.ParseAmount("-1")
	assert.ErrorIs(t, err, units.ErrInvalidAmount)

	_, err = units.ParseAmount("")
	assert.ErrorIs(t, err, units.ErrInvalidAmount)
}

func toBigInt(val string) *big.Int {
	bi := new(big.Int)
	bi.SetString(val, 10)

	return bi
}
