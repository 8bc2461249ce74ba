// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builtin is the default registry.Registry implementation: the
// numerical constants, SI units, and transcendental functions a runnable
// calculator ships with out of the box. None of this is part of the
// core's contract (see the registry package); it exists so cmd/ucalc has
// something to wire in.
package builtin // import "github.com/firefly431/ucalc/builtin"

import (
	"math"

	"github.com/firefly431/ucalc/rational"
	"github.com/firefly431/ucalc/registry"
	"github.com/firefly431/ucalc/unit"
	"github.com/firefly431/ucalc/uval"
	"github.com/firefly431/ucalc/value"
)

// Default is the registry wired into cmd/ucalc by default.
var Default registry.Registry = defaultRegistry{}

type defaultRegistry struct{}

func (defaultRegistry) Constant(name string) (float64, bool) {
	c, ok := constants[name]
	return c, ok
}

func (defaultRegistry) Unit(name string) (uval.UnitValue, bool) {
	u, ok := units[name]
	return u, ok
}

func (defaultRegistry) Function(name string) (registry.Function, bool) {
	f, ok := functions[name]
	return f, ok
}

// constants mirrors Calculator::get_numerical_constant in the reference
// implementation: "e" and "pi" are the only two names recognized.
var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

// unary wraps a single-argument math function as a registry.Function,
// rejecting any call that isn't given exactly one argument.
func unary(f func(float64) float64) registry.Function {
	return func(args []float64) float64 {
		if len(args) != 1 {
			return math.NaN()
		}
		return f(args[0])
	}
}

// binary wraps a two-argument math function as a registry.Function.
func binary(f func(float64, float64) float64) registry.Function {
	return func(args []float64) float64 {
		if len(args) != 2 {
			return math.NaN()
		}
		return f(args[0], args[1])
	}
}

// functions mirrors get_unary_function/get_function in the reference
// implementation: sin, cos, tan are the unary trigonometric functions,
// and atan2 is the one binary function.
var functions = map[string]registry.Function{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"atan2": binary(math.Atan2),
}

// one is the exact Value 1, used as the magnitude of every named unit.
var one = value.Exact(mustOne())

func mustOne() rational.Rational {
	r, err := rational.FromInteger(1)
	if err != nil {
		panic(err)
	}
	return r
}

func unitValue(u unit.Unit) uval.UnitValue {
	return uval.UnitValue{Value: one, Unit: u}
}

// units is built directly from the SI base dimensions the Unit model is
// defined over, since no units.rs source file exists to mirror: a base
// set (m, kg, s, A, K, mol, cd) plus three derived units (N, Hz, W) so
// that unit multiplication, division, and integer exponentiation are all
// exercised end to end.
var units = buildUnits()

func buildUnits() map[string]uval.UnitValue {
	m := map[string]uval.UnitValue{
		"m":   unitValue(unit.Base(unit.Length)),
		"kg":  unitValue(unit.Base(unit.Mass)),
		"s":   unitValue(unit.Base(unit.Time)),
		"A":   unitValue(unit.Base(unit.Current)),
		"K":   unitValue(unit.Base(unit.Temperature)),
		"mol": unitValue(unit.Base(unit.Amount)),
		"cd":  unitValue(unit.Base(unit.Luminosity)),
	}

	// Hz = s^-1
	hz, err := unit.Base(unit.Time).Scale(-1)
	if err != nil {
		panic(err)
	}
	m["Hz"] = unitValue(hz)

	// N = kg*m/s^2
	secSquared, err := unit.Base(unit.Time).Scale(2)
	if err != nil {
		panic(err)
	}
	kgM, err := unit.Base(unit.Mass).Add(unit.Base(unit.Length))
	if err != nil {
		panic(err)
	}
	newton, err := kgM.Sub(secSquared)
	if err != nil {
		panic(err)
	}
	m["N"] = unitValue(newton)

	// W = N*m/s = kg*m^2/s^3
	secCubed, err := unit.Base(unit.Time).Scale(3)
	if err != nil {
		panic(err)
	}
	mSquared, err := unit.Base(unit.Length).Scale(2)
	if err != nil {
		panic(err)
	}
	kgMSquared, err := unit.Base(unit.Mass).Add(mSquared)
	if err != nil {
		panic(err)
	}
	watt, err := kgMSquared.Sub(secCubed)
	if err != nil {
		panic(err)
	}
	m["W"] = unitValue(watt)

	return m
}
