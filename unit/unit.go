// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit implements Unit, a fixed-length vector of integer exponents
// over the seven SI base dimensions. A UnitValue (see the uval package)
// pairs a Unit with a value.Value to give physical quantities checked
// dimensional arithmetic.
package unit // import "github.com/firefly431/ucalc/unit"

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrOverflow is returned when a unit-arithmetic operation would push an
// exponent outside the representable int32 range.
var ErrOverflow = errors.New("unit: exponent overflow")

// Dimension identifies one of the seven SI base dimensions.
type Dimension int

const (
	Length      Dimension = iota // metre
	Mass                         // kilogram
	Time                         // second
	Current                      // ampere
	Temperature                  // kelvin
	Amount                       // mole
	Luminosity                   // candela
	numDimensions
)

var dimensionSymbols = [numDimensions]string{
	Length:      "m",
	Mass:        "kg",
	Time:        "s",
	Current:     "A",
	Temperature: "K",
	Amount:      "mol",
	Luminosity:  "cd",
}

// Unit is a vector of integer exponents, one per base dimension. The zero
// value, Dimensionless, is the unit of plain numbers.
type Unit [numDimensions]int32

// Dimensionless is the unit with every exponent zero.
var Dimensionless = Unit{}

// Base returns the unit vector for a single base dimension raised to the
// first power (e.g. Base(Mass) is kilograms).
func Base(d Dimension) Unit {
	var u Unit
	u[d] = 1
	return u
}

// IsDimensionless reports whether every exponent of u is zero.
func (u Unit) IsDimensionless() bool {
	return u == Dimensionless
}

// Equal reports whether u and o have identical exponents.
func (u Unit) Equal(o Unit) bool {
	return u == o
}

func addExponent(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(sum), nil
}

func mulExponent(a, n int32) (int32, error) {
	prod := int64(a) * int64(n)
	if prod < math.MinInt32 || prod > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(prod), nil
}

// Add returns the unit of a product: the component-wise sum of u and o's
// exponents. ErrOverflow is returned if any resulting exponent would not
// fit in an int32.
func (u Unit) Add(o Unit) (Unit, error) {
	var result Unit
	for i := range u {
		e, err := addExponent(u[i], o[i])
		if err != nil {
			return Unit{}, err
		}
		result[i] = e
	}
	return result, nil
}

// Sub returns the unit of a quotient: the component-wise difference of
// u's and o's exponents.
func (u Unit) Sub(o Unit) (Unit, error) {
	negated, err := o.Scale(-1)
	if err != nil {
		return Unit{}, err
	}
	return u.Add(negated)
}

// Scale returns u with every exponent multiplied by n: the unit produced
// by raising a quantity of unit u to the n'th power.
func (u Unit) Scale(n int32) (Unit, error) {
	var result Unit
	for i := range u {
		e, err := mulExponent(u[i], n)
		if err != nil {
			return Unit{}, err
		}
		result[i] = e
	}
	return result, nil
}

// String renders u as a product of base symbols raised to their exponents,
// in dimension order, e.g. "m*kg*s^-2", or "1" when dimensionless.
func (u Unit) String() string {
	if u.IsDimensionless() {
		return "1"
	}
	var parts []string
	for d := Dimension(0); d < numDimensions; d++ {
		e := u[d]
		switch {
		case e == 0:
			continue
		case e == 1:
			parts = append(parts, dimensionSymbols[d])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", dimensionSymbols[d], e))
		}
	}
	return strings.Join(parts, "*")
}
