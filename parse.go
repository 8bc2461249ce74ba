// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucalc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firefly431/ucalc/config"
	"github.com/firefly431/ucalc/registry"
	"github.com/firefly431/ucalc/scan"
	"github.com/firefly431/ucalc/uval"
)

// parser implements a whitespace-sensitive operator-precedence grammar by
// precedence climbing, from lowest to highest: expr (+ -), fac (* / and
// whitespace-implied multiplication), unary (leading + -), exp (^,
// right-associative), imul (whitespace-free adjacency, the highest
// precedence). Every production folds the node it just built via
// simplify before returning it, so by the time any production above it
// sees that result, it is already a valueExpr or errorExpr.
type parser struct {
	sc  *scan.Scanner
	reg registry.Registry
	buf []scan.Token
}

// parse scans and parses input against reg, reporting syntax errors by
// panicking with a *CalculatorError (a panic/recover boundary at the
// parser edge); Calculate recovers it. The '?' terminator is an internal
// sentinel this function appends itself: it is never part of what a
// caller types.
func parse(conf *config.Config, reg registry.Registry, input string) Expression {
	p := &parser{sc: scan.New(conf, input+"?"), reg: reg}
	return p.input()
}

func (p *parser) peekN(n int) scan.Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.sc.Next())
	}
	return p.buf[n]
}

func (p *parser) peek() scan.Token { return p.peekN(0) }

func (p *parser) next() scan.Token {
	t := p.peekN(0)
	p.buf = p.buf[1:]
	return t
}

func (p *parser) errorf(format string, args ...interface{}) {
	panic(&CalculatorError{Kind: Syntax, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) expect(tt scan.Type, what string) scan.Token {
	t := p.next()
	if t.Type != tt {
		p.errorf("expected %s, found %q", what, t.Text)
	}
	return t
}

// input is the top-level production: ws? expr ws? '?' , with nothing but
// EOF following the terminator.
func (p *parser) input() Expression {
	if p.peek().Type == scan.Error {
		p.errorf("%s", p.peek().Text)
	}
	e := p.expr()
	p.expect(scan.Terminator, "end of input")
	if t := p.peek(); t.Type != scan.EOF {
		p.errorf("unexpected trailing input %q", t.Text)
	}
	return e
}

// expr: fac (('+' | '-') fac)*, left-associative.
func (p *parser) expr() Expression {
	e := p.fac()
	for {
		t := p.peek()
		if t.Type != scan.Operator || (t.Text != "+" && t.Text != "-") {
			break
		}
		p.next()
		rhs := p.fac()
		if t.Text == "+" {
			e = simplify(addExpr{lhs: e, rhs: rhs})
		} else {
			e = simplify(subExpr{lhs: e, rhs: rhs})
		}
	}
	return e
}

// fac: unary (('*' | '/') unary | whitespace-implied unary)*,
// left-associative. A run of whitespace followed by a token that can
// start a factor (but is not a leading '+'/'-', which belong to expr)
// multiplies implicitly.
func (p *parser) fac() Expression {
	e := p.unary()
	for {
		t := p.peek()
		switch {
		case t.Type == scan.Operator && t.Text == "*":
			p.next()
			e = simplify(mulExpr{lhs: e, rhs: p.unary()})
		case t.Type == scan.Operator && t.Text == "/":
			p.next()
			e = simplify(divExpr{lhs: e, rhs: p.unary()})
		case t.SpaceBefore && startsFactor(t):
			e = simplify(mulExpr{lhs: e, rhs: p.unary()})
		default:
			return e
		}
	}
}

// startsFactor reports whether t can begin a unary/exp/imul/atom chain
// when reached via whitespace-implied multiplication. Notably this
// excludes '+' and '-': a space followed by a sign belongs to expr, not
// to an implied multiplication.
func startsFactor(t scan.Token) bool {
	switch t.Type {
	case scan.Number, scan.Identifier, scan.LeftParen:
		return true
	default:
		return false
	}
}

// unary: ('+' | '-') unary | exp, right-associative. Whitespace is
// allowed between the sign and its operand.
func (p *parser) unary() Expression {
	t := p.peek()
	if t.Type == scan.Operator && (t.Text == "+" || t.Text == "-") {
		p.next()
		arg := p.unary()
		if t.Text == "-" {
			return simplify(negExpr{arg: arg})
		}
		return arg
	}
	return p.exp()
}

// exp: imul ('^' unary)?, right-associative (the exponent recurses into
// unary, not exp, so a chain of '^' nests to the right).
func (p *parser) exp() Expression {
	e := p.imul()
	t := p.peek()
	if t.Type == scan.Operator && t.Text == "^" {
		p.next()
		return simplify(expExpr{lhs: e, rhs: p.unary()})
	}
	return e
}

// imul: atom (atom)*, where each continuation atom must NOT be preceded
// by whitespace. This is the highest-precedence production: adjacent
// factors with no space between them multiply, e.g. "2pi" or "3(4)".
func (p *parser) imul() Expression {
	e := p.atom()
	for {
		t := p.peek()
		if t.SpaceBefore || !startsFactor(t) {
			return e
		}
		e = simplify(mulExpr{lhs: e, rhs: p.atom()})
	}
}

// atom: a number literal, a named constant or unit, a function call, or
// a parenthesized expr.
func (p *parser) atom() Expression {
	t := p.peek()
	switch t.Type {
	case scan.Number:
		return p.number()
	case scan.Identifier:
		if p.peekN(1).Type == scan.LeftParen {
			if fn, ok := p.reg.Function(t.Text); ok {
				return p.call(fn)
			}
		}
		return p.identifier()
	case scan.LeftParen:
		p.next()
		e := p.expr()
		p.expect(scan.RightParen, "')'")
		return e
	case scan.Error:
		p.errorf("%s", t.Text)
	default:
		p.errorf("unexpected token %q", t.Text)
	}
	panic("unreachable")
}

// number parses a Number token's text (decimal digits with optional
// underscores, fractional part, and exponent) into a literal value.
func (p *parser) number() Expression {
	t := p.next()
	clean := strings.ReplaceAll(t.Text, "_", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		p.errorf("invalid number %q", t.Text)
	}
	uv, verr := uval.FromInput(f)
	if verr != nil {
		return errorExpr{err: verr}
	}
	return valueExpr{v: uv}
}

// identifier resolves a bare name as a numerical constant or a unit.
func (p *parser) identifier() Expression {
	t := p.next()
	if c, ok := p.reg.Constant(t.Text); ok {
		uv, verr := uval.FromFloat(c)
		if verr != nil {
			return errorExpr{err: verr}
		}
		return valueExpr{v: uv}
	}
	if u, ok := p.reg.Unit(t.Text); ok {
		return valueExpr{v: u}
	}
	p.errorf("unknown identifier %q", t.Text)
	panic("unreachable")
}

// call parses a function call's argument list: fn has already been
// resolved from the identifier token still at the front of the buffer.
func (p *parser) call(fn registry.Function) Expression {
	p.next() // identifier
	p.next() // '('
	var args []Expression
	if p.peek().Type != scan.RightParen {
		args = append(args, p.expr())
		for p.peek().Type == scan.Comma {
			p.next()
			args = append(args, p.expr())
		}
	}
	p.expect(scan.RightParen, "')'")
	return simplify(callExpr{fn: fn, args: args})
}
