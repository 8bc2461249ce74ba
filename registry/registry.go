// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry defines the three external collaborators the grammar
// consults by name while parsing: numerical constants, units, and
// callable functions. ucalc's core has no opinion on what these resolve
// to beyond these interfaces; see the builtin package for the default,
// runnable implementation.
package registry // import "github.com/firefly431/ucalc/registry"

import "github.com/firefly431/ucalc/uval"

// Function is a named callable evaluated eagerly once every one of its
// arguments is known. It receives the arguments as plain floats (a
// function call's arguments are never themselves dimensioned quantities)
// and returns NaN to signal a domain error (e.g. the wrong number of
// arguments, or an input outside the function's domain), which the
// caller turns into a value.ArithmeticError with Kind Domain.
type Function func(args []float64) float64

// Registry resolves the three kinds of identifiers the grammar can
// reference by name.
type Registry interface {
	// Constant looks up a bare numerical constant, such as "pi".
	Constant(name string) (float64, bool)
	// Unit looks up a unit identifier, such as "m" or "N".
	Unit(name string) (uval.UnitValue, bool)
	// Function looks up a callable function, such as "sin".
	Function(name string) (Function, bool)
}
