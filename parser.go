// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"go4.org/mem"
)

// Parse parses and returns the first value from r. Any input following the
// first complete value is not read.
func Parse(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// ParseString parses and returns the first value from s.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// ParseSeq parses and returns the first value from the runes of seq.
func ParseSeq(seq iter.Seq[rune]) (Value, error) {
	rr, stop := pullRunes(seq)
	defer stop()
	return newParser(rr).Parse()
}

// MustParse parses and returns the first value from s. It panics if s does
// not begin with a valid value.
func MustParse(s string) Value {
	v, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("jnode: MustParse(%q): %v", s, err))
	}
	return v
}

// A Parser parses values from a stream of characters.
//
// A Parser is not safe for concurrent use by multiple goroutines.
type Parser struct {
	c   *lookahead
	buf bytes.Buffer // text of the current number or string
	stk []*frame     // open objects and arrays, innermost last
}

// NewParser constructs a new Parser that consumes input from r. If r does not
// implement io.RuneReader, its input is buffered and decoded as UTF-8.
func NewParser(r io.Reader) *Parser {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return newParser(rr)
}

func newParser(rr io.RuneReader) *Parser { return &Parser{c: newLookahead(rr)} }

// Parse parses a single value starting at the current position of the input,
// and returns it. Input following the value is left unconsumed, so that a
// subsequent call to Parse resumes after the previous value.
//
// In case of error, no value is returned and the error has concrete type
// *SyntaxError.
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)
	p.stk = p.stk[:0]
	return p.parseValue(), nil
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		serr, ok := perr.(*SyntaxError)
		if !ok {
			panic(perr)
		}
		*errp = serr
	}
}

// A frame is an object or array whose contents are being parsed.
type frame struct {
	obj map[string]Value // non-nil for an object
	arr []Value
	key string // the key of the pending object member
}

func (f *frame) isObject() bool { return f.obj != nil }

func (f *frame) add(v Value) {
	if f.isObject() {
		f.obj[f.key] = v
	} else {
		f.arr = append(f.arr, v)
	}
}

func (f *frame) value() Value {
	if f.isObject() {
		return Object{m: f.obj}
	}
	return Array{vs: f.arr}
}

// parseValue consumes a single value of any type.
//
// Objects and arrays are tracked on an explicit stack of frames rather than
// by recursion, so the depth of nesting is limited only by available memory.
func (p *Parser) parseValue() Value {
	for {
		v, f := p.parseElement()
		if f != nil {
			if p.beginItem(f) {
				p.stk = append(p.stk, f)
				continue
			}
			v = f.value() // empty
		}

		// Deliver v to its container. If the container is complete, it becomes
		// the value delivered to the next enclosing container, and so on.
		for {
			n := len(p.stk)
			if n == 0 {
				return v
			}
			top := p.stk[n-1]
			p.skipSpace()
			if top.isObject() {
				p.require(',', ErrExpectedComma, "after object member %q", top.key)
			} else {
				p.require(',', ErrExpectedComma, "after array element")
			}
			top.add(v)
			if p.beginItem(top) {
				break
			}
			v = top.value()
			p.stk[n-1] = nil
			p.stk = p.stk[:n-1]
		}
	}
}

// parseElement consumes a complete scalar value, or the opening delimiter of
// an object or array. In the latter case, it returns a new frame for the
// container.
func (p *Parser) parseElement() (Value, *frame) {
	p.skipSpace()
	loc := p.c.location()
	ch, ok := p.peek()
	if !ok {
		panic(syntaxError(loc, ErrUnexpectedEOF, "unexpected end of input, want value"))
	} else if isDigit(ch) {
		return p.parseNumber(), nil
	}
	switch ch {
	case '"':
		return Text(p.parseString()), nil
	case '{':
		p.next()
		return nil, &frame{obj: make(map[string]Value)}
	case '[':
		p.next()
		return nil, new(frame)
	case 'n':
		p.parseLiteral(litNull)
		return Null{}, nil
	case 't':
		p.parseLiteral(litTrue)
		return Bool(true), nil
	case 'f':
		p.parseLiteral(litFalse)
		return Bool(false), nil
	default:
		panic(syntaxError(loc, ErrUnexpectedCharacter, "unexpected %q, want value", ch))
	}
}

// beginItem consumes whitespace and, for an object, the key and colon of the
// next member. It reports whether a value for f follows. If not, the closing
// delimiter of f has been consumed.
func (p *Parser) beginItem(f *frame) bool {
	p.skipSpace()
	ch, ok := p.peek()
	if !f.isObject() {
		if ok && ch == ']' {
			p.next()
			return false
		}
		return true
	}
	if !ok || ch != '"' {
		p.require('}', ErrUnexpectedToken, "in object")
		return false
	}
	f.key = p.parseString()
	p.skipSpace()
	p.require(':', ErrExpectedColon, "after object key %q", f.key)
	return true
}

// parseNumber consumes a maximal run of digits and periods, and converts it
// to an Integer if possible, or otherwise to a Float.
func (p *Parser) parseNumber() Value {
	loc := p.c.location()
	p.buf.Reset()
	for {
		ch, ok := p.peek()
		if !ok || !isNumRune(ch) {
			break
		}
		p.next()
		p.buf.WriteByte(byte(ch))
	}

	text := mem.B(p.buf.Bytes())
	if z, err := mem.ParseInt(text, 10, 32); err == nil {
		return Integer(z)
	}
	if f, err := mem.ParseFloat(text, 32); err == nil {
		return Float(f)
	}
	panic(syntaxError(loc, ErrMalformedNumber, "invalid number %q", text.StringCopy()))
}

// parseString consumes a quoted string and returns its contents. Characters
// between the quotes are copied verbatim; there are no escape sequences.
// Precondition: the next rune is '"'.
func (p *Parser) parseString() string {
	loc := p.c.location()
	p.next()
	p.buf.Reset()
	for {
		ch, ok := p.next()
		if !ok {
			panic(syntaxError(loc, ErrUnterminatedString, "unterminated string"))
		} else if ch == '"' {
			return p.buf.String()
		}
		p.buf.WriteRune(ch)
	}
}

var (
	litNull  = mem.S("null")
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
)

// parseLiteral consumes the exact text of want.
func (p *Parser) parseLiteral(want mem.RO) {
	for i := 0; i < want.Len(); i++ {
		loc := p.c.location()
		ch, ok := p.next()
		if !ok {
			panic(syntaxError(loc, ErrUnexpectedEOF, "unexpected end of input in %s", want.StringCopy()))
		} else if ch != rune(want.At(i)) {
			panic(syntaxError(loc, ErrMalformedLiteral, "got %q, want %s", ch, want.StringCopy()))
		}
	}
}

// require consumes a single rune from the input, which must be want. If it is
// not, the error reports the category cat, with the given context.
func (p *Parser) require(want rune, cat error, context string, args ...any) {
	loc := p.c.location()
	where := fmt.Sprintf(context, args...)
	ch, ok := p.next()
	if !ok {
		panic(syntaxError(loc, ErrUnexpectedEOF, "unexpected end of input, want %q %s", want, where))
	} else if ch != want {
		panic(syntaxError(loc, cat, "got %q, want %q %s", ch, want, where))
	}
}

// skipSpace discards whitespace from the input.
func (p *Parser) skipSpace() {
	for {
		ch, ok := p.peek()
		if !ok || !isSpace(ch) {
			return
		}
		p.next()
	}
}

func (p *Parser) peek() (rune, bool) {
	ch, ok, err := p.c.peek()
	if err != nil {
		panic(syntaxError(p.c.location(), err, "read failed: %v", err))
	}
	return ch, ok
}

func (p *Parser) next() (rune, bool) {
	ch, ok, err := p.c.next()
	if err != nil {
		panic(syntaxError(p.c.location(), err, "read failed: %v", err))
	}
	return ch, ok
}

func syntaxError(loc Location, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Location: loc,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool   { return '0' <= ch && ch <= '9' }
func isNumRune(ch rune) bool { return ch == '.' || isDigit(ch) }
