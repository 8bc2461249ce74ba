// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucalc

import (
	"github.com/firefly431/ucalc/uval"
	"github.com/firefly431/ucalc/value"
)

// simplify reduces an Expression one level: a binary or unary node whose
// operands are already known (valueExpr or errorExpr, as every node the
// parser hands in always is) collapses into a single valueExpr or
// errorExpr. The parser calls this immediately after constructing every
// node, so compound nodes never persist in the tree it returns.
func simplify(e Expression) Expression {
	switch n := e.(type) {
	case expExpr:
		return simplifyBinary(n.lhs, n.rhs, uval.UnitValue.Pow)
	case mulExpr:
		return simplifyBinary(n.lhs, n.rhs, uval.UnitValue.Mul)
	case divExpr:
		return simplifyBinary(n.lhs, n.rhs, uval.UnitValue.Div)
	case addExpr:
		return simplifyBinary(n.lhs, n.rhs, uval.UnitValue.Add)
	case subExpr:
		return simplifyBinary(n.lhs, n.rhs, uval.UnitValue.Sub)
	case negExpr:
		return simplifyNeg(n.arg)
	case callExpr:
		return simplifyCall(n)
	default:
		// Already terminal: valueExpr or errorExpr.
		return e
	}
}

// simplifyBinary applies op to two already-folded operands. If either
// side is an error, it propagates: per the propagation rule, an error on
// the right wins first, so a left error only surfaces when the right
// side is a value.
func simplifyBinary(lhs, rhs Expression, op func(uval.UnitValue, uval.UnitValue) (uval.UnitValue, *value.ArithmeticError)) Expression {
	lv, lok := lhs.(valueExpr)
	rv, rok := rhs.(valueExpr)
	if lok && rok {
		res, err := op(lv.v, rv.v)
		if err != nil {
			return errorExpr{err: err}
		}
		return valueExpr{v: res}
	}
	if re, ok := rhs.(errorExpr); ok {
		return re
	}
	if le, ok := lhs.(errorExpr); ok {
		return le
	}
	panic("ucalc: simplify called on an unfolded operand")
}

// simplifyNeg applies unary negation, eliminating double negation
// (Neg(Neg(x)) == x) rather than leaving it as a no-op wrapper.
func simplifyNeg(arg Expression) Expression {
	switch a := arg.(type) {
	case valueExpr:
		return valueExpr{v: a.v.Neg()}
	case negExpr:
		return a.arg
	case errorExpr:
		return a
	default:
		panic("ucalc: simplify called on an unfolded operand")
	}
}

// simplifyCall evaluates a function call once every argument is known:
// each argument must already be a valueExpr or an errorExpr. Function
// arguments are plain numbers, so an argument that carries a unit is
// reported as a Unit error and the function is not called. As with binary
// operators, the first error found among the arguments propagates; a call can never
// remain unevaluated once all of its arguments are known, since every
// registered function is total over its numeric domain (or reports its
// own domain failure via NaN).
func simplifyCall(n callExpr) Expression {
	args := make([]float64, 0, len(n.args))
	for _, a := range n.args {
		switch v := a.(type) {
		case valueExpr:
			if !v.v.Unit.IsDimensionless() {
				return errorExpr{err: value.NewArithmeticError(value.Unit)}
			}
			args = append(args, v.v.Value.AsFloat())
		case errorExpr:
			return v
		default:
			panic("ucalc: simplify called on an unfolded operand")
		}
	}
	uv, err := uval.FromFloat(n.fn(args))
	if err != nil {
		return errorExpr{err: err}
	}
	return valueExpr{v: uv}
}
