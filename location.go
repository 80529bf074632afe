// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the position of a single character of source text.
type Location struct {
	Offset int // character offset from the start of the input, 0-based
	LineCol
}
