// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucalc

import (
	"github.com/pkg/errors"

	"github.com/firefly431/ucalc/config"
	"github.com/firefly431/ucalc/registry"
	"github.com/firefly431/ucalc/uval"
	"github.com/firefly431/ucalc/value"
)

// ErrorKind classifies a CalculatorError. It extends value.ErrorKind
// (DivideByZero, Domain, Overflow, Unit) with Syntax, the one failure
// mode that can only occur at the parser boundary.
type ErrorKind int

const (
	DivideByZero ErrorKind = iota
	Domain
	Overflow
	Unit
	Syntax
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
	case Syntax:
		return "syntax error"
	default:
		return "error"
	}
}

// CalculatorError is the error type returned by Calculate.
type CalculatorError struct {
	Kind    ErrorKind
	Message string // set only for Kind == Syntax
}

func (e *CalculatorError) Error() string {
	if e.Kind == Syntax && e.Message != "" {
		return "ucalc: " + e.Message
	}
	return "ucalc: " + e.Kind.String()
}

// fromArithmeticError maps the shared value.ArithmeticError taxonomy onto
// CalculatorError's, which is the same except for the addition of Syntax.
func fromArithmeticError(err *value.ArithmeticError) *CalculatorError {
	switch err.Kind {
	case value.DivideByZero:
		return &CalculatorError{Kind: DivideByZero}
	case value.Domain:
		return &CalculatorError{Kind: Domain}
	case value.Overflow:
		return &CalculatorError{Kind: Overflow}
	case value.Unit:
		return &CalculatorError{Kind: Unit}
	default:
		return &CalculatorError{Kind: Overflow}
	}
}

// Calculate parses and evaluates input against reg, returning the
// resulting quantity. The second return value is reserved for warnings:
// diagnostics that do not themselves indicate failure. No warning
// producer exists yet, so it is always empty; the slot exists so a later
// pass has somewhere to put one without changing this signature.
func Calculate(conf *config.Config, reg registry.Registry, input string) (result uval.UnitValue, warnings []string, calcErr *CalculatorError) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CalculatorError); ok {
				calcErr = ce
				return
			}
			calcErr = &CalculatorError{Kind: Syntax, Message: errors.Errorf("internal error: %v", r).Error()}
		}
	}()

	e := parse(conf, reg, input)
	switch n := e.(type) {
	case valueExpr:
		return n.v, nil, nil
	case errorExpr:
		return uval.UnitValue{}, nil, fromArithmeticError(n.err)
	default:
		// A fully parsed expression always folds to a value or an error
		// (see fold.go); reaching any other shape here means a production
		// built a node and returned it without simplifying, which is a
		// parser bug rather than a user-facing condition.
		panic("ucalc: parser returned an unevaluated expression")
	}
}
