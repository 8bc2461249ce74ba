// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns an input expression into a stream of tokens for the
// parser. Unlike a typical expression scanner, whitespace is significant:
// every token records whether it was preceded by a run of whitespace, since
// the grammar uses that fact to decide whether adjacent factors are
// multiplied together (see the parse package).
package scan // import "github.com/firefly431/ucalc/scan"

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/firefly431/ucalc/config"
)

// Type identifies the type of a scanned token.
type Type int

const (
	EOF        Type = iota // end of input
	Error                  // a lexical error; Text holds the message
	Number                 // a numeric literal, e.g. "2.3e2" or "8_230_999"
	Identifier             // an alphanumeric name: a constant or unit
	LeftParen              // '('
	RightParen             // ')'
	Comma                  // ','
	Operator               // one of + - * / ^
	Terminator             // the internal '?' end marker
)

// Token is a single lexical token.
type Token struct {
	Type        Type
	Text        string
	Pos         int  // byte offset of the token's first rune in the input
	SpaceBefore bool // whether a run of whitespace preceded this token
}

const eof = -1

// Scanner holds the state of the scanner.
//
// Unlike robpike.io/ivy's Scanner, which feeds tokens to the parser over a
// channel from a background goroutine, Scanner.Next runs synchronously: the
// calculator is a pure, single-threaded evaluator (see the package doc at
// the module root), so there is nothing to gain from concurrent scanning.
type Scanner struct {
	conf  *config.Config
	input string
	pos   int // current byte offset into input
	start int // start byte offset of the token being scanned
	width int // width in bytes of the last rune read by next
}

// New creates a new scanner over input.
func New(conf *config.Config, input string) *Scanner {
	return &Scanner{conf: conf, input: input}
}

// next returns the next rune in the input and advances past it.
func (s *Scanner) next() rune {
	if s.pos >= len(s.input) {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.width = w
	s.pos += w
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (s *Scanner) backup() {
	s.pos -= s.width
}

// peek returns but does not consume the next rune in the input.
func (s *Scanner) peek() rune {
	r := s.next()
	s.backup()
	return r
}

// accept consumes the next rune if it's from the valid set.
func (s *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, s.next()) {
		return true
	}
	s.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (s *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, s.next()) {
	}
	s.backup()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// skipSpace consumes a run of whitespace and reports whether it consumed
// anything.
func (s *Scanner) skipSpace() bool {
	consumed := false
	for isSpace(s.peek()) {
		s.next()
		consumed = true
	}
	return consumed
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isAlpha reports whether r can start an identifier. Per the lexical
// surface, identifiers start with a letter; unlike a typical C-family
// scanner, a leading underscore does not count; it is reserved for use as a
// digit-group separator inside numbers, so a bare "_" is a syntax error
// rather than a one-character identifier.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

// isAlphaNumeric reports whether r can continue an identifier once started.
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

const digits = "0123456789_"

// Next scans and returns the next token. It always returns EOF once the
// input is exhausted, so it is safe to call repeatedly past the end.
func (s *Scanner) Next() Token {
	spaceBefore := s.skipSpace()
	s.start = s.pos
	r := s.next()
	switch {
	case r == eof:
		return s.tok(EOF, spaceBefore)
	case r == '?':
		return s.tok(Terminator, spaceBefore)
	case r == '(':
		return s.tok(LeftParen, spaceBefore)
	case r == ')':
		return s.tok(RightParen, spaceBefore)
	case r == ',':
		return s.tok(Comma, spaceBefore)
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
		return s.tok(Operator, spaceBefore)
	case r == '.' || isDigit(r):
		s.backup()
		return s.lexNumber(spaceBefore)
	case isAlpha(r):
		s.backup()
		return s.lexIdentifier(spaceBefore)
	default:
		return s.errorTok(spaceBefore, "unrecognized character %q", r)
	}
}

// lexNumber scans a numeric literal. Accepted forms, per the lexical
// surface: leading-digit decimals with an optional fractional part and
// optional exponent ("123", "123.", "123.456", "1e10"), and decimals that
// begin with a '.' (".5", ".2e-3"). Underscores may appear anywhere in a run
// of digits as visual separators and carry no value.
func (s *Scanner) lexNumber(spaceBefore bool) Token {
	sawDigit := false
	if s.accept(digits) {
		sawDigit = true
		s.acceptRun(digits)
	}
	if s.accept(".") {
		if s.accept(digits) {
			sawDigit = true
			s.acceptRun(digits)
		}
	}
	if !sawDigit {
		// Neither "digits ['.' digits]" nor "'.' digits" matched: since
		// Next only calls lexNumber on a '.' or a decimal digit, and an
		// underscore counts as a digit here, the only way to get here is a
		// bare '.' followed by neither a digit nor an underscore.
		return s.errorTok(spaceBefore, "invalid number %q", s.input[s.start:s.pos])
	}
	if s.accept("eE") {
		s.accept("+-")
		if !s.accept(digits) {
			return s.errorTok(spaceBefore, "invalid number %q: malformed exponent", s.input[s.start:s.pos])
		}
		s.acceptRun(digits)
	}
	return s.tok(Number, spaceBefore)
}

// lexIdentifier scans an identifier: a unit or numerical constant name.
func (s *Scanner) lexIdentifier(spaceBefore bool) Token {
	for isAlphaNumeric(s.peek()) {
		s.next()
	}
	return s.tok(Identifier, spaceBefore)
}

func (s *Scanner) tok(t Type, spaceBefore bool) Token {
	return Token{Type: t, Text: s.input[s.start:s.pos], Pos: s.start, SpaceBefore: spaceBefore}
}

func (s *Scanner) errorTok(spaceBefore bool, format string, args ...interface{}) Token {
	return Token{Type: Error, Text: fmt.Sprintf(format, args...), Pos: s.start, SpaceBefore: spaceBefore}
}
