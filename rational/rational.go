// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rational implements checked arithmetic on reduced fractions of
// bounded 32-bit integers. Every operation that would overflow the
// representable range, or that would otherwise break one of Rational's
// invariants, returns ErrOverflow instead of wrapping around.
package rational // import "github.com/firefly431/ucalc/rational"

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned by any operation that cannot be represented
// within a Rational's invariants: a division by zero (the reciprocal of
// zero), or a numerator/denominator outside the bounds below. (A zero
// denominator passed to New is not reported this way; New panics.)
var ErrOverflow = errors.New("rational: overflow")

const (
	maxPos int64 = math.MaxInt32 // largest representable numerator or denominator
	minNeg int64 = math.MinInt32 // forbidden: num must be strictly greater than this
)

// Rational is a reduced fraction num/den. The zero value is 0/1.
//
// Invariants, maintained by every constructor and operation:
//   - den is between 1 and MaxInt32, inclusive.
//   - num is strictly greater than MinInt32 (so that -num is always
//     representable, which keeps Neg total).
//   - gcd(|num|, den) == 1.
//
// Any operation that would violate one of these invariants returns
// ErrOverflow rather than producing an invalid Rational.
type Rational struct {
	num int32
	den uint32
}

// one is the multiplicative identity, already reduced.
var one = Rational{num: 1, den: 1}

// FromInteger returns the Rational equal to i, or ErrOverflow if i cannot
// be represented (only math.MinInt32 fails this, since negating it would
// be unrepresentable).
func FromInteger(i int32) (Rational, error) {
	return New(i, 1)
}

// New returns the reduced form of num/den. A zero denominator is a
// programmer error: it panics rather than returning ErrOverflow, matching
// the contract of the original specification ("Construction from (n,d)
// with d=0 is a programmer error (fatal)").
func New(num, den int32) (Rational, error) {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return fromExact(int64(num), int64(den))
}

// fromExact reduces and range-checks an exact (num, den) pair computed at
// int64 width. All arithmetic below funnels through here: since num and
// den always originate as products/sums of int32-range values, int64 can
// always hold them exactly (no intermediate overflow is possible at this
// width), so the only way this can fail is the final range check against
// the 32-bit invariants.
func fromExact(num, den int64) (Rational, error) {
	g := gcd(num, den)
	n, err := checkNum(num / g)
	if err != nil {
		return Rational{}, err
	}
	d, err := checkDen(den / g)
	if err != nil {
		return Rational{}, err
	}
	return Rational{num: n, den: d}, nil
}

func checkNum(n int64) (int32, error) {
	if n <= minNeg || n > maxPos {
		return 0, ErrOverflow
	}
	return int32(n), nil
}

func checkDen(d int64) (uint32, error) {
	if d < 1 || d > maxPos {
		return 0, ErrOverflow
	}
	return uint32(d), nil
}

// gcd returns the greatest common divisor of m and n using Stein's (binary
// GCD) algorithm. The result carries the same sign as n, or the sign of m
// when n is zero, so that num/gcd and den/gcd always leave a positive
// denominator. Operating at int64 width (rather than natively on int32, as
// the algorithm is classically stated) sidesteps the usual special case
// for the most negative representable integer: its absolute value always
// fits comfortably in an int64.
func gcd(m, n int64) int64 {
	if m == 0 || n == 0 {
		return m | n
	}
	shift := bits.TrailingZeros64(uint64(m | n))
	nSign := int64(1)
	if n < 0 {
		nSign = -1
	}
	if m < 0 {
		m = -m
	}
	if n < 0 {
		n = -n
	}
	n >>= bits.TrailingZeros64(uint64(n))
	for m != 0 {
		m >>= bits.TrailingZeros64(uint64(m))
		if n > m {
			n, m = m, n
		}
		m -= n
	}
	return (n << uint(shift)) * nSign
}

// Num returns the numerator.
func (r Rational) Num() int32 { return r.num }

// Den returns the denominator.
func (r Rational) Den() uint32 { return r.den }

// IsInteger reports whether r has a denominator of 1.
func (r Rational) IsInteger() bool { return r.den == 1 }

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsNegative reports whether r is strictly negative.
func (r Rational) IsNegative() bool { return r.num < 0 }

// AsFloat converts r to the nearest float64.
func (r Rational) AsFloat() float64 {
	return float64(r.num) / float64(r.den)
}

// Neg returns -r. Negation can never overflow: the invariant num > MinInt32
// guarantees -num is always representable.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Recip returns 1/r. Reciprocal of zero returns ErrOverflow; the value
// layer uses this to signal division by zero.
func (r Rational) Recip() (Rational, error) {
	switch {
	case r.num > 0:
		return Rational{num: int32(r.den), den: uint32(r.num)}, nil
	case r.num < 0:
		return Rational{num: -int32(r.den), den: uint32(-r.num)}, nil
	default:
		return Rational{}, ErrOverflow
	}
}

// checkedMul64 multiplies two int64 values, reporting ok=false if the
// mathematical product cannot be represented as an int64.
func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// checkedPow raises base to the exp'th power (exp >= 0), detecting
// overflow at every squaring and multiplication step via repeated
// squaring. Needed because, unlike a single multiplication of two
// int32-range operands, repeated squaring can overflow int64 long before
// the final result would fit in an int32 anyway (e.g. 2^100).
func checkedPow(base int64, exp uint32) (int64, error) {
	acc := int64(1)
	for exp > 1 {
		if exp&1 == 1 {
			var ok bool
			acc, ok = checkedMul64(acc, base)
			if !ok {
				return 0, ErrOverflow
			}
		}
		exp /= 2
		var ok bool
		base, ok = checkedMul64(base, base)
		if !ok {
			return 0, ErrOverflow
		}
	}
	if exp == 1 {
		var ok bool
		acc, ok = checkedMul64(acc, base)
		if !ok {
			return 0, ErrOverflow
		}
	}
	return acc, nil
}

// Pow raises r to the exp'th power. Negative exponents invert the base
// first; the corner case exp == math.MinInt32 cannot be negated, so it
// succeeds only for bases of ±1 (whose reciprocal is itself).
func (r Rational) Pow(exp int32) (Rational, error) {
	if exp == 0 {
		return one, nil
	}
	if exp > 0 {
		num, err := checkedPow(int64(r.num), uint32(exp))
		if err != nil {
			return Rational{}, err
		}
		den, err := checkedPow(int64(r.den), uint32(exp))
		if err != nil {
			return Rational{}, err
		}
		return fromExact(num, den)
	}
	if exp == math.MinInt32 {
		if (r.num == 1 || r.num == -1) && r.den == 1 {
			return one, nil
		}
		return Rational{}, ErrOverflow
	}
	base, err := r.Pow(-exp)
	if err != nil {
		return Rational{}, err
	}
	return base.Recip()
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) (Rational, error) {
	num, numOK := checkedMul64(int64(r.num), int64(o.num))
	den, denOK := checkedMul64(int64(r.den), int64(o.den))
	if numOK && denOK {
		return fromExact(num, den)
	}
	return Rational{}, ErrOverflow
}

// Div returns r / o. Dividing by zero returns ErrOverflow, via o.Recip().
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Recip()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv)
}

// addSub implements Add (negate=false) and Sub (negate=true): a/b ± c/d.
// The denominators' gcd is factored out before multiplying, as is usual
// when adding fractions by hand, so the common case of adding two
// fractions that already share (or nearly share) a denominator keeps the
// intermediate denominator small.
func (r Rational) addSub(o Rational, negate bool) (Rational, error) {
	dgcd := gcd(int64(r.den), int64(o.den))
	a := int64(r.den) / dgcd
	b := int64(o.den) / dgcd
	oNum := int64(o.num)
	if negate {
		oNum = -oNum
	}
	num := int64(r.num)*b + oNum*a
	den := int64(r.den) * b
	return fromExact(num, den)
}

// Add returns r + o.
func (r Rational) Add(o Rational) (Rational, error) { return r.addSub(o, false) }

// Sub returns r - o.
func (r Rational) Sub(o Rational) (Rational, error) { return r.addSub(o, true) }

// Cmp compares r and o, returning -1, 0, or 1. It compares by
// cross-multiplication at int64 width; since int32-range operands can
// never overflow an int64 product, this is always exact (no float
// fallback is needed, unlike the reference implementation this was
// distilled from).
func (r Rational) Cmp(o Rational) int {
	if r.IsNegative() != o.IsNegative() {
		if r.IsNegative() {
			return -1
		}
		return 1
	}
	a := int64(r.num) * int64(o.den)
	b := int64(o.num) * int64(r.den)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and o denote the same rational number.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// String renders r as "num" when it is an integer, or "num/den" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
