// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucalc implements the core of an interactive unit-aware
// calculator: a recursive descent parser over an operator-precedence
// grammar, evaluated eagerly by folding the expression tree bottom-up as
// the parser builds it.
//
// The numeric tower underneath is built from four layers, each its own
// package: rational (checked-overflow fractions of bounded integers),
// value (a dual exact/inexact number that falls back from rational to
// float on overflow), unit (a dimension-exponent vector), and uval (a
// value paired with a unit, with dimensional arithmetic rules).
//
// Calculate is the single entry point: it parses and evaluates an input
// expression against a registry.Registry of named constants, units and
// functions, and is the only exported symbol that can fail or panic
// internally — the parser raises syntax errors by panicking with a
// *CalculatorError, which Calculate recovers at its own boundary, so the
// evaluator as a whole behaves as a pure, single-threaded function from
// input string to result-or-error.
package ucalc // import "github.com/firefly431/ucalc"
