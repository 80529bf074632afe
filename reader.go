// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"io"
	"iter"
)

// A lookahead is a cursor over a stream of runes that can inspect the next
// rune without consuming it. Each rune of the input is read exactly once.
type lookahead struct {
	r io.RuneReader

	ch   rune // the next unconsumed rune, if have is true
	have bool
	eof  bool

	// Location of the next unconsumed rune.
	pos, line, col int
}

func newLookahead(r io.RuneReader) *lookahead { return &lookahead{r: r, line: 1} }

// peek reports the next rune of the input without consuming it. It reports
// false at the end of the input. A read error other than io.EOF is returned.
func (c *lookahead) peek() (rune, bool, error) {
	if c.have {
		return c.ch, true, nil
	} else if c.eof {
		return 0, false, nil
	}
	ch, _, err := c.r.ReadRune()
	if err == io.EOF {
		c.eof = true
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	c.ch, c.have = ch, true
	return ch, true, nil
}

// next consumes and returns the next rune of the input. It reports false at
// the end of the input.
func (c *lookahead) next() (rune, bool, error) {
	ch, ok, err := c.peek()
	if ok {
		c.have = false
		c.pos++
		if ch == '\n' {
			c.line++
			c.col = 0
		} else {
			c.col++
		}
	}
	return ch, ok, err
}

// location reports the location of the next unconsumed rune.
func (c *lookahead) location() Location {
	return Location{
		Offset:  c.pos,
		LineCol: LineCol{Line: c.line, Column: c.col},
	}
}

// seqReader adapts a sequence of runes to the io.RuneReader interface.
type seqReader struct {
	next func() (rune, bool)
}

func (s seqReader) ReadRune() (rune, int, error) {
	ch, ok := s.next()
	if !ok {
		return 0, 0, io.EOF
	}
	return ch, 1, nil
}

// pullRunes returns an io.RuneReader that yields the runes of seq, and a
// function that must be called to release its resources.
func pullRunes(seq iter.Seq[rune]) (io.RuneReader, func()) {
	next, stop := iter.Pull(seq)
	return seqReader{next: next}, stop
}
