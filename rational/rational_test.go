// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, num, den int32) Rational {
	t.Helper()
	r, err := New(num, den)
	require.NoError(t, err)
	return r
}

func TestNewReduces(t *testing.T) {
	r := mustNew(t, 6, 8)
	require.Equal(t, int32(3), r.Num())
	require.Equal(t, uint32(4), r.Den())
}

func TestNewNormalizesDenominatorSign(t *testing.T) {
	r := mustNew(t, 3, -4)
	require.Equal(t, int32(-3), r.Num())
	require.Equal(t, uint32(4), r.Den())
}

func TestNewZeroDenominatorPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = New(1, 0)
	})
}

func TestFromIntegerMinOverflows(t *testing.T) {
	_, err := FromInteger(math.MinInt32)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRecipZeroOverflows(t *testing.T) {
	zero := mustNew(t, 0, 1)
	_, err := zero.Recip()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRecipRoundTrip(t *testing.T) {
	r := mustNew(t, -3, 5)
	inv, err := r.Recip()
	require.NoError(t, err)
	require.Equal(t, int32(-5), inv.Num())
	require.Equal(t, uint32(3), inv.Den())
}

func TestAddSub(t *testing.T) {
	a := mustNew(t, 1, 3)
	b := mustNew(t, 1, 6)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustNew(t, 1, 2)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustNew(t, 1, 6)))
}

func TestMulDiv(t *testing.T) {
	a := mustNew(t, 2, 3)
	b := mustNew(t, 3, 4)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, prod.Equal(mustNew(t, 1, 2)))

	quot, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, quot.Equal(mustNew(t, 8, 9)))
}

func TestDivByZeroOverflows(t *testing.T) {
	a := mustNew(t, 1, 2)
	zero := mustNew(t, 0, 1)
	_, err := a.Div(zero)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestMulOverflow(t *testing.T) {
	big := mustNew(t, math.MaxInt32, 1)
	_, err := big.Mul(big)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestPowPositiveAndNegative(t *testing.T) {
	base := mustNew(t, 2, 3)
	cube, err := base.Pow(3)
	require.NoError(t, err)
	require.True(t, cube.Equal(mustNew(t, 8, 27)))

	inv, err := base.Pow(-1)
	require.NoError(t, err)
	require.True(t, inv.Equal(mustNew(t, 3, 2)))
}

func TestPowZeroExponent(t *testing.T) {
	base := mustNew(t, 5, 7)
	one, err := base.Pow(0)
	require.NoError(t, err)
	require.True(t, one.Equal(mustNew(t, 1, 1)))
}

func TestPowMinInt32Exponent(t *testing.T) {
	negOne := mustNew(t, -1, 1)
	res, err := negOne.Pow(math.MinInt32)
	require.NoError(t, err)
	require.True(t, res.Equal(mustNew(t, 1, 1)))

	two := mustNew(t, 2, 1)
	_, err = two.Pow(math.MinInt32)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestPowOverflow(t *testing.T) {
	base := mustNew(t, 2, 1)
	_, err := base.Pow(100)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCmp(t *testing.T) {
	require.Equal(t, -1, mustNew(t, -1, 2).Cmp(mustNew(t, 1, 3)))
	require.Equal(t, 1, mustNew(t, 2, 3).Cmp(mustNew(t, 1, 2)))
	require.Equal(t, 0, mustNew(t, 2, 4).Cmp(mustNew(t, 1, 2)))
}

func TestNegInvariant(t *testing.T) {
	r := mustNew(t, 7, 9)
	require.True(t, r.Neg().Neg().Equal(r))
}

func TestString(t *testing.T) {
	require.Equal(t, "3", mustNew(t, 3, 1).String())
	require.Equal(t, "-3/4", mustNew(t, -3, 4).String())
}
