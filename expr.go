// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucalc

import (
	"github.com/firefly431/ucalc/registry"
	"github.com/firefly431/ucalc/uval"
	"github.com/firefly431/ucalc/value"
)

// Expression is a node of the expression tree the parser builds. After
// every reduction the parser folds the node it just built (see fold.go),
// so in practice only valueExpr and errorExpr ever persist in a parsed
// tree; the other variants are transient shapes passed through simplify
// immediately after construction.
type Expression interface {
	isExpression()
}

// valueExpr holds a fully evaluated quantity.
type valueExpr struct {
	v uval.UnitValue
}

// errorExpr holds an arithmetic error produced while folding. Once
// introduced, an error propagates through every enclosing operation
// untouched (see simplifyBinary).
type errorExpr struct {
	err *value.ArithmeticError
}

// expExpr, mulExpr, divExpr, addExpr and subExpr are the five binary
// operators the grammar produces. Each is immediately simplified after
// construction, so lhs and rhs are always already a valueExpr or
// errorExpr by the time one of these is built.
type (
	expExpr struct{ lhs, rhs Expression }
	mulExpr struct{ lhs, rhs Expression }
	divExpr struct{ lhs, rhs Expression }
	addExpr struct{ lhs, rhs Expression }
	subExpr struct{ lhs, rhs Expression }
)

// negExpr is unary negation.
type negExpr struct {
	arg Expression
}

// callExpr is a call to a registered function. Its arguments are each
// already-simplified sub-expressions (every argument is itself parsed as
// a full expr production), so by the time a callExpr is built every
// element of args is a valueExpr or errorExpr.
type callExpr struct {
	fn   registry.Function
	args []Expression
}

func (valueExpr) isExpression() {}
func (errorExpr) isExpression() {}
func (expExpr) isExpression()   {}
func (mulExpr) isExpression()   {}
func (divExpr) isExpression()   {}
func (addExpr) isExpression()   {}
func (subExpr) isExpression()   {}
func (negExpr) isExpression()   {}
func (callExpr) isExpression()  {}
