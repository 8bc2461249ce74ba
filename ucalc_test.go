// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucalc

import (
	"math"
	"testing"

	"github.com/firefly431/ucalc/builtin"
)

// evalFloat evaluates input against the default registry and returns the
// resulting float, failing the test on any error.
func evalFloat(t *testing.T, input string) float64 {
	t.Helper()
	result, _, err := Calculate(nil, builtin.Default, input)
	if err != nil {
		t.Fatalf("Calculate(%q) = error %v, want success", input, err)
	}
	return result.Value.AsFloat()
}

func evalError(t *testing.T, input string) *CalculatorError {
	t.Helper()
	_, _, err := Calculate(nil, builtin.Default, input)
	if err == nil {
		t.Fatalf("Calculate(%q) succeeded, want error", input)
	}
	return err
}

func TestGrammarExactExamples(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"2^1^5", 2},
		{"3/2*4", 6},
		{"2 2 2 ", 8},
		{"1/2(4)", 0.125},
		{"1/2 (4)", 2},
		{"1(2)3(4)5(6)7(8)9(10)", 3628800},
		{"2^3*4-5", 27},
		{" (2^39)* 122/2 + 80 -1023 ", 33535104646225},
		{"-2^2", -4},
		{"2^-2", 0.25},
		{"-2(5)", -10},
		{"1+1/-(3-2)", 0},
		{"2.3e2", 230},
		{"8_230_999", 8230999},
		{".2", 0.2},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got := evalFloat(t, c.input)
			if got != c.want {
				t.Fatalf("Calculate(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestGrammarWithinTolerance(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"sin(pi/6)", 0.5},
		{"atan2(1, 1)", math.Pi / 4},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got := evalFloat(t, c.input)
			if math.Abs(got-c.want) > 1e-6 {
				t.Fatalf("Calculate(%q) = %v, want within 1e-6 of %v", c.input, got, c.want)
			}
		})
	}
}

func TestPiIsInexact(t *testing.T) {
	result, _, err := Calculate(nil, builtin.Default, "pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Value.IsExact() {
		t.Fatalf("pi should be Inexact")
	}
}

func TestDivideByZero(t *testing.T) {
	err := evalError(t, "1/0")
	if err.Kind != DivideByZero {
		t.Fatalf("Kind = %v, want DivideByZero", err.Kind)
	}
}

func TestBareUnderscoreIsSyntaxError(t *testing.T) {
	err := evalError(t, "_")
	if err.Kind != Syntax {
		t.Fatalf("Kind = %v, want Syntax", err.Kind)
	}
}

func TestUnitArithmetic(t *testing.T) {
	result, _, err := Calculate(nil, builtin.Default, "2m*3m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Value.AsFloat() != 6 || result.Unit.IsDimensionless() {
		t.Fatalf("unexpected result: %v", result)
	}
}

func TestUnitMismatchIsUnitError(t *testing.T) {
	err := evalError(t, "1m+1kg")
	if err.Kind != Unit {
		t.Fatalf("Kind = %v, want Unit", err.Kind)
	}
}

func TestUnitCancelsToDimensionless(t *testing.T) {
	result, _, err := Calculate(nil, builtin.Default, "4m/2m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Value.AsFloat() != 2 || !result.Unit.IsDimensionless() {
		t.Fatalf("unexpected result: %v", result)
	}
}

func TestOverflowFallsBackToFloat(t *testing.T) {
	// 3^20 exceeds int32 range, so the exact Rational.Pow overflows and
	// Value.Pow promotes to a float result instead of failing outright.
	result, _, err := Calculate(nil, builtin.Default, "3^20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Value.IsExact() {
		t.Fatalf("expected inexact promotion on overflow")
	}
	if result.Value.AsFloat() != 3486784401 {
		t.Fatalf("unexpected result: %v", result.Value.AsFloat())
	}
}

func TestUnknownIdentifierIsSyntaxError(t *testing.T) {
	err := evalError(t, "bogus")
	if err.Kind != Syntax {
		t.Fatalf("Kind = %v, want Syntax", err.Kind)
	}
}

func TestTrailingGarbageIsSyntaxError(t *testing.T) {
	err := evalError(t, "1)")
	if err.Kind != Syntax {
		t.Fatalf("Kind = %v, want Syntax", err.Kind)
	}
}
