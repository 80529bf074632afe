// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"errors"
	"fmt"
)

// Error categories reported by the parser. A *SyntaxError wraps exactly one
// of these, or an error from reading the input; use errors.Is to test for
// them.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrMalformedLiteral    = errors.New("malformed literal")
	ErrExpectedColon       = errors.New("expected colon")
	ErrExpectedComma       = errors.New("expected comma")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnterminatedString  = errors.New("unterminated string")
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Location Location // location of the offending input
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location.LineCol, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
