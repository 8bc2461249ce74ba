// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uval pairs a value.Value with a unit.Unit to give physical
// quantities checked dimensional arithmetic: addition and subtraction
// require matching units, multiplication and division combine them, and
// exponentiation requires either a dimensionless base or an integer
// exponent.
package uval // import "github.com/firefly431/ucalc/uval"

import (
	"errors"

	"github.com/firefly431/ucalc/unit"
	"github.com/firefly431/ucalc/value"
)

// UnitValue is a numeric Value annotated with a physical Unit.
type UnitValue struct {
	Value value.Value
	Unit  unit.Unit
}

// FromInput builds a dimensionless UnitValue from a literal as typed by
// the user (see value.FromInput for the exact-snapping behavior).
func FromInput(f float64) (UnitValue, *value.ArithmeticError) {
	v, err := value.FromInput(f)
	if err != nil {
		return UnitValue{}, err
	}
	return UnitValue{Value: v}, nil
}

// FromFloat builds a dimensionless UnitValue from a computed float (see
// value.FromFloat).
func FromFloat(f float64) (UnitValue, *value.ArithmeticError) {
	v, err := value.FromFloat(f)
	if err != nil {
		return UnitValue{}, err
	}
	return UnitValue{Value: v}, nil
}

// toUnitError adapts a unit package error (always exponent overflow) into
// our shared ArithmeticError taxonomy.
func toUnitError(err error) *value.ArithmeticError {
	if err == nil {
		return nil
	}
	if errors.Is(err, unit.ErrOverflow) {
		return value.NewArithmeticError(value.Unit)
	}
	return value.NewArithmeticError(value.Unit)
}

// Add requires a and o to share the same unit.
func (a UnitValue) Add(o UnitValue) (UnitValue, *value.ArithmeticError) {
	if !a.Unit.Equal(o.Unit) {
		return UnitValue{}, value.NewArithmeticError(value.Unit)
	}
	v, err := a.Value.Add(o.Value)
	if err != nil {
		return UnitValue{}, err
	}
	return UnitValue{Value: v, Unit: a.Unit}, nil
}

// Sub requires a and o to share the same unit.
func (a UnitValue) Sub(o UnitValue) (UnitValue, *value.ArithmeticError) {
	if !a.Unit.Equal(o.Unit) {
		return UnitValue{}, value.NewArithmeticError(value.Unit)
	}
	v, err := a.Value.Sub(o.Value)
	if err != nil {
		return UnitValue{}, err
	}
	return UnitValue{Value: v, Unit: a.Unit}, nil
}

// Mul multiplies the values and adds the units.
func (a UnitValue) Mul(o UnitValue) (UnitValue, *value.ArithmeticError) {
	u, err := a.Unit.Add(o.Unit)
	if err != nil {
		return UnitValue{}, toUnitError(err)
	}
	v, verr := a.Value.Mul(o.Value)
	if verr != nil {
		return UnitValue{}, verr
	}
	return UnitValue{Value: v, Unit: u}, nil
}

// Div divides the values and subtracts the units.
func (a UnitValue) Div(o UnitValue) (UnitValue, *value.ArithmeticError) {
	u, err := a.Unit.Sub(o.Unit)
	if err != nil {
		return UnitValue{}, toUnitError(err)
	}
	v, verr := a.Value.Div(o.Value)
	if verr != nil {
		return UnitValue{}, verr
	}
	return UnitValue{Value: v, Unit: u}, nil
}

// Pow raises a to the power of o. The exponent o must be dimensionless.
// If a is also dimensionless, this is plain value exponentiation; if a
// carries a unit, the exponent must additionally be an exact integer (so
// the resulting unit's exponents, themselves integers, can be scaled),
// and the exponent's exact integer value is used to scale a's unit.
func (a UnitValue) Pow(o UnitValue) (UnitValue, *value.ArithmeticError) {
	if !o.Unit.IsDimensionless() {
		return UnitValue{}, value.NewArithmeticError(value.Unit)
	}
	if a.Unit.IsDimensionless() {
		v, err := a.Value.Pow(o.Value)
		if err != nil {
			return UnitValue{}, err
		}
		return UnitValue{Value: v}, nil
	}
	exact, ok := o.Value.AsExact()
	if !ok || !exact.IsInteger() {
		return UnitValue{}, value.NewArithmeticError(value.Unit)
	}
	u, err := a.Unit.Scale(exact.Num())
	if err != nil {
		return UnitValue{}, toUnitError(err)
	}
	v, verr := a.Value.Pow(o.Value)
	if verr != nil {
		return UnitValue{}, verr
	}
	return UnitValue{Value: v, Unit: u}, nil
}

// Neg negates the value, keeping the unit.
func (a UnitValue) Neg() UnitValue {
	return UnitValue{Value: a.Value.Neg(), Unit: a.Unit}
}

// Cmp compares a and o, which must share the same unit.
func (a UnitValue) Cmp(o UnitValue) (int, *value.ArithmeticError) {
	if !a.Unit.Equal(o.Unit) {
		return 0, value.NewArithmeticError(value.Unit)
	}
	return a.Value.Cmp(o.Value), nil
}

// String renders the value followed by its unit, omitting the unit
// entirely when the quantity is dimensionless.
func (a UnitValue) String() string {
	if a.Unit.IsDimensionless() {
		return a.Value.String()
	}
	return a.Value.String() + " " + a.Unit.String()
}
