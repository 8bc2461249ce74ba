// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uval

import (
	"testing"

	"github.com/firefly431/ucalc/unit"
	"github.com/firefly431/ucalc/value"
)

func metres(f float64) UnitValue {
	uv, _ := FromInput(f)
	uv.Unit = unit.Base(unit.Length)
	return uv
}

func TestAddRequiresMatchingUnits(t *testing.T) {
	m := metres(3)
	s := metres(2)
	s.Unit = unit.Base(unit.Time)
	if _, err := m.Add(s); err == nil || err.Kind != value.Unit {
		t.Fatalf("expected Unit error, got %v", err)
	}
}

func TestAddSameUnit(t *testing.T) {
	a := metres(3)
	b := metres(2)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Value.AsFloat() != 5 || !sum.Unit.Equal(unit.Base(unit.Length)) {
		t.Fatalf("unexpected result: %v", sum)
	}
}

func TestMulCombinesUnits(t *testing.T) {
	length, _ := FromInput(3)
	length.Unit = unit.Base(unit.Length)
	width, _ := FromInput(4)
	width.Unit = unit.Base(unit.Length)

	area, err := length.Mul(width)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	area2, aerr := unit.Base(unit.Length).Scale(2)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if area.Value.AsFloat() != 12 || !area.Unit.Equal(area2) {
		t.Fatalf("unexpected result: %v", area)
	}
}

func TestDivCancelsUnits(t *testing.T) {
	a := metres(10)
	b := metres(2)
	ratio, err := a.Div(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio.Value.AsFloat() != 5 || !ratio.Unit.IsDimensionless() {
		t.Fatalf("unexpected result: %v", ratio)
	}
}

func TestPowDimensionlessBase(t *testing.T) {
	base, _ := FromInput(2)
	exp, _ := FromInput(10)
	res, err := base.Pow(exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value.AsFloat() != 1024 {
		t.Fatalf("unexpected result: %v", res)
	}
}

func TestPowUnitBaseRequiresIntegerExponent(t *testing.T) {
	base := metres(2)
	exp, _ := FromInput(0.5)
	if _, err := base.Pow(exp); err == nil || err.Kind != value.Unit {
		t.Fatalf("expected Unit error, got %v", err)
	}
}

func TestPowUnitBaseScalesUnit(t *testing.T) {
	base := metres(2)
	exp, _ := FromInput(3)
	res, err := base.Pow(exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cube, serr := unit.Base(unit.Length).Scale(3)
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if res.Value.AsFloat() != 8 || !res.Unit.Equal(cube) {
		t.Fatalf("unexpected result: %v", res)
	}
}

func TestPowExponentMustBeDimensionless(t *testing.T) {
	base, _ := FromInput(2)
	exp := metres(2)
	if _, err := base.Pow(exp); err == nil || err.Kind != value.Unit {
		t.Fatalf("expected Unit error, got %v", err)
	}
}

func TestNegKeepsUnit(t *testing.T) {
	m := metres(3)
	neg := m.Neg()
	if neg.Value.AsFloat() != -3 || !neg.Unit.Equal(unit.Base(unit.Length)) {
		t.Fatalf("unexpected result: %v", neg)
	}
}

func TestCmpRequiresMatchingUnits(t *testing.T) {
	m := metres(3)
	kg := metres(3)
	kg.Unit = unit.Base(unit.Mass)
	if _, err := m.Cmp(kg); err == nil {
		t.Fatalf("expected Unit error")
	}
}
