// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the dual exact/inexact numeric representation:
// a Value is either an exact rational.Rational or an inexact float64, with
// a one-way promotion policy (an exact operation that overflows falls
// back to float; the result is never re-exacted).
package value // import "github.com/firefly431/ucalc/value"

import (
	"errors"
	"math"

	"github.com/firefly431/ucalc/rational"
)

// ErrorKind classifies an ArithmeticError.
type ErrorKind int

const (
	// DivideByZero is a division whose divisor is (or projects to) zero.
	DivideByZero ErrorKind = iota
	// Domain is a NaN produced or supplied at a Value construction site.
	Domain
	// Overflow is an exact-arithmetic result outside Rational's range.
	Overflow
	// Unit is a dimensional mismatch or unit-arithmetic overflow, used by
	// the uval package.
	Unit
)

func (k ErrorKind) String() string {
	switch k {
	case DivideByZero:
		return "divide by zero"
	case Domain:
		return "domain error"
	case Overflow:
		return "overflow"
	case Unit:
		return "unit error"
	default:
		return "arithmetic error"
	}
}

// ArithmeticError is the structured error type shared by value and uval.
// It carries no message beyond its Kind; Calculate maps it one-to-one
// onto a CalculatorError.
type ArithmeticError struct {
	Kind ErrorKind
}

func (e *ArithmeticError) Error() string {
	return "value: " + e.Kind.String()
}

// NewArithmeticError is a convenience constructor for the uval package,
// which needs to produce ArithmeticError values of its own (Unit-kind
// errors) without otherwise depending on this package's internals.
func NewArithmeticError(kind ErrorKind) *ArithmeticError {
	return &ArithmeticError{Kind: kind}
}

// toArithmeticError maps a rational package error into our taxonomy. The
// rational package only ever reports overflow; any other error indicates
// a bug in this package's use of it.
func toArithmeticError(err error) *ArithmeticError {
	if err == nil {
		return nil
	}
	if errors.Is(err, rational.ErrOverflow) {
		return &ArithmeticError{Kind: Overflow}
	}
	return &ArithmeticError{Kind: Overflow}
}

// Value is either an exact rational.Rational or an inexact float64. The
// zero value is the exact integer 0.
type Value struct {
	exact bool
	rat   rational.Rational
	flt   float64
}

// Exact wraps a Rational as an exact Value.
func Exact(r rational.Rational) Value {
	return Value{exact: true, rat: r}
}

// Inexact wraps a float64 as an inexact Value. Callers that might pass a
// NaN should use FromFloat instead, which rejects it.
func Inexact(f float64) Value {
	return Value{exact: false, flt: f}
}

// FromInput converts a literal as typed by a user: if f * 8 is an integer
// within int32 range, the literal snaps to the nearest eighth and is
// stored exactly; otherwise it is stored as an inexact float. NaN is
// rejected with a Domain error, which cannot otherwise occur since f
// originates from parsing a literal.
func FromInput(f float64) (Value, *ArithmeticError) {
	if math.IsNaN(f) {
		return Value{}, &ArithmeticError{Kind: Domain}
	}
	scaled := f * 8
	if scaled != math.Trunc(scaled) || math.Abs(scaled) > math.MaxInt32 {
		return Inexact(f), nil
	}
	r, err := rational.New(int32(scaled), 8)
	if err != nil {
		return Value{}, toArithmeticError(err)
	}
	return Exact(r), nil
}

// FromFloat always stores f as an inexact Value (used for the results of
// transcendental functions and other computed floats that should never be
// silently re-exacted), rejecting NaN with a Domain error.
func FromFloat(f float64) (Value, *ArithmeticError) {
	if math.IsNaN(f) {
		return Value{}, &ArithmeticError{Kind: Domain}
	}
	return Inexact(f), nil
}

// AsExact reports whether v is exact and, if so, returns its Rational.
func (v Value) AsExact() (rational.Rational, bool) {
	return v.rat, v.exact
}

// IsExact reports whether v holds an exact Rational.
func (v Value) IsExact() bool { return v.exact }

// AsFloat returns the float64 approximation of v.
func (v Value) AsFloat() float64 {
	if v.exact {
		return v.rat.AsFloat()
	}
	return v.flt
}

// AsInteger returns v as an int32 if it represents an integer exactly (an
// exact Rational with denominator 1, or an inexact float with no
// fractional part that fits in int32), and false otherwise.
func (v Value) AsInteger() (int32, bool) {
	if v.exact {
		if v.rat.IsInteger() {
			return v.rat.Num(), true
		}
		return 0, false
	}
	if v.flt == math.Trunc(v.flt) && math.Abs(v.flt) <= math.MaxInt32 {
		return int32(v.flt), true
	}
	return 0, false
}

// binaryPromote implements the shared add/sub/mul promotion policy: try
// the exact operation when both operands are exact, falling back to the
// float operation (stored as an inexact Value) whenever either operand is
// inexact or the exact operation overflows.
func binaryPromote(
	a, b Value,
	exactOp func(rational.Rational, rational.Rational) (rational.Rational, error),
	floatOp func(float64, float64) float64,
) (Value, *ArithmeticError) {
	if ar, aok := a.AsExact(); aok {
		if br, bok := b.AsExact(); bok {
			if res, err := exactOp(ar, br); err == nil {
				return Exact(res), nil
			}
		}
	}
	return FromFloat(floatOp(a.AsFloat(), b.AsFloat()))
}

// Add returns a + b.
func (a Value) Add(b Value) (Value, *ArithmeticError) {
	return binaryPromote(a, b, rational.Rational.Add, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func (a Value) Sub(b Value) (Value, *ArithmeticError) {
	return binaryPromote(a, b, rational.Rational.Sub, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b.
func (a Value) Mul(b Value) (Value, *ArithmeticError) {
	return binaryPromote(a, b, rational.Rational.Mul, func(x, y float64) float64 { return x * y })
}

// Div returns a / b. A zero divisor is reported as DivideByZero rather
// than being allowed to fall through to a silent ±Inf float result.
func (a Value) Div(b Value) (Value, *ArithmeticError) {
	if b.AsFloat() == 0 {
		return Value{}, &ArithmeticError{Kind: DivideByZero}
	}
	return binaryPromote(a, b, rational.Rational.Div, func(x, y float64) float64 { return x / y })
}

// Pow returns a raised to the b'th power. When a is exact and b is an
// integer, rational.Pow is attempted first, falling back to float power
// on overflow; otherwise (a inexact, or b not an integer) the result is
// computed directly in floats.
func (a Value) Pow(b Value) (Value, *ArithmeticError) {
	if ar, aok := a.AsExact(); aok {
		if e, eok := b.AsInteger(); eok {
			if res, err := ar.Pow(e); err == nil {
				return Exact(res), nil
			}
			return FromFloat(math.Pow(ar.AsFloat(), float64(e)))
		}
		return FromFloat(math.Pow(ar.AsFloat(), b.AsFloat()))
	}
	return FromFloat(math.Pow(a.AsFloat(), b.AsFloat()))
}

// Neg returns -a. Negation never fails: an exact Rational's invariant
// guarantees its numerator can always be negated, and negating a
// non-NaN float cannot produce NaN.
func (a Value) Neg() Value {
	if ar, aok := a.AsExact(); aok {
		return Exact(ar.Neg())
	}
	return Inexact(-a.flt)
}

// Cmp compares a and b, returning -1, 0 or 1. When both are exact it
// compares the underlying Rationals exactly; otherwise it compares their
// float approximations.
func (a Value) Cmp(b Value) int {
	if ar, aok := a.AsExact(); aok {
		if br, bok := b.AsExact(); bok {
			return ar.Cmp(br)
		}
	}
	af, bf := a.AsFloat(), b.AsFloat()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b denote the same number.
func (a Value) Equal(b Value) bool { return a.Cmp(b) == 0 }

// IsZero reports whether v is zero.
func (v Value) IsZero() bool { return v.AsFloat() == 0 }

// String renders v: exact values print as the underlying Rational,
// inexact values with Go's default float formatting.
func (v Value) String() string {
	if v.exact {
		return v.rat.String()
	}
	return formatFloat(v.flt)
}
