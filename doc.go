// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jnode implements a parser that converts JSON-like text into a tree
// of typed values.
//
// # Parsing
//
// Construct a Parser from an io.Reader and call its Parse method to obtain the
// first value from the input:
//
//	p := jnode.NewParser(input)
//	v, err := p.Parse()
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Input following the first value is not consumed, and a subsequent call to
// Parse resumes from that point. The Parse, ParseString, and ParseSeq
// functions are shortcuts for parsing a single value from a reader, a string,
// or a sequence of runes.
//
// # Syntax
//
// The accepted syntax resembles JSON, with these differences:
//
//   - Every member of an object and every element of an array must be
//     followed by a comma, including the last: [1, 2, 3,] is valid, but
//     [1, 2, 3] is not. Empty objects and arrays are written {} and [].
//   - Numbers are unsigned runs of digits with an optional fractional part.
//     There are no signs and no exponents.
//   - Strings are copied verbatim between double quotes. A backslash has no
//     special meaning, and a string cannot contain a double quote.
//   - If an object has more than one member with the same key, the last one
//     wins.
//
// Whitespace (space, tab, carriage return, and newline) may appear before
// any value and around any delimiter.
//
// # Values
//
// The result of parsing is a Value, whose concrete type is one of:
//
//	Go type   | Syntax        | Contents
//	--------- | ------------- | -----------------------------------------
//	Integer   | 123           | a signed 32-bit integer
//	Float     | 1.5           | a 32-bit floating-point number
//	Text      | "abc"         | a string
//	Null      | null          | --
//	Bool      | true, false   | a Boolean
//	Object    | {"k": v,}     | a map from string keys to values
//	Array     | [v, w,]       | an ordered sequence of values
//
// A number is an Integer if its text is an integer representable in 32 bits,
// and a Float otherwise.
//
// # Errors
//
// In case of error, parsing stops and an error of concrete type *SyntaxError
// is returned, giving the location of the problem. Use errors.Is to check its
// category, for example:
//
//	if errors.Is(err, jnode.ErrExpectedComma) {
//	   log.Print("Missing trailing comma")
//	}
package jnode
