// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/creachadair/jnode"
)

// A Generator constructs pseudo-random value trees. Trees generated from the
// same seed and settings are identical.
type Generator struct {
	f *gofakeit.Faker

	MaxDepth int // maximum nesting depth of objects and arrays
	MaxWidth int // maximum number of members or elements per container
}

// NewGenerator constructs a Generator with the given seed and default limits.
func NewGenerator(seed int64) *Generator {
	return &Generator{f: gofakeit.New(seed), MaxDepth: 4, MaxWidth: 6}
}

// Value returns a new random value tree.
func (g *Generator) Value() jnode.Value { return g.value(0) }

func (g *Generator) value(depth int) jnode.Value {
	n := 5
	if depth < g.MaxDepth {
		n = 7
	}
	switch g.f.IntRange(0, n-1) {
	case 0:
		return jnode.Integer(g.f.IntRange(0, math.MaxInt32))
	case 1:
		return jnode.Float(g.f.Float32Range(0, 1e6))
	case 2:
		return jnode.Text(g.text())
	case 3:
		return jnode.Null{}
	case 4:
		return jnode.Bool(g.f.Bool())
	case 5:
		ms := make([]jnode.Member, g.f.IntRange(0, g.MaxWidth))
		for i := range ms {
			ms[i] = jnode.Field(g.f.Word(), g.value(depth+1))
		}
		return jnode.NewObject(ms...)
	default:
		vs := make([]jnode.Value, g.f.IntRange(0, g.MaxWidth))
		for i := range vs {
			vs[i] = g.value(depth + 1)
		}
		return jnode.NewArray(vs...)
	}
}

// text returns a random string that can be written without escapes.
func (g *Generator) text() string {
	s := g.f.Sentence(g.f.IntRange(1, 5))
	return strings.NewReplacer(`"`, `'`, `\`, `/`).Replace(s)
}

// Format renders v as text that parses back to an equal value. Every object
// member and array element is followed by a comma. If indent is non-empty,
// members and elements are placed on separate lines indented by that string.
func Format(v jnode.Value, indent string) string {
	var sb strings.Builder
	format(&sb, v, indent, 0)
	return sb.String()
}

func format(sb *strings.Builder, v jnode.Value, indent string, depth int) {
	newline := func(d int) {
		if indent != "" {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(indent, d))
		}
	}
	switch t := v.(type) {
	case jnode.Integer:
		sb.WriteString(strconv.FormatInt(int64(t), 10))
	case jnode.Float:
		s := strconv.FormatFloat(float64(t), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0" // otherwise it would parse as an integer
		}
		sb.WriteString(s)
	case jnode.Text:
		sb.WriteString(`"` + string(t) + `"`)
	case jnode.Bool:
		sb.WriteString(strconv.FormatBool(bool(t)))
	case jnode.Object:
		sb.WriteByte('{')
		for key, elt := range t.All() {
			newline(depth + 1)
			sb.WriteString(`"` + key + `": `)
			format(sb, elt, indent, depth+1)
			sb.WriteByte(',')
		}
		if t.Len() != 0 {
			newline(depth)
		}
		sb.WriteByte('}')
	case jnode.Array:
		sb.WriteByte('[')
		for _, elt := range t.All() {
			newline(depth + 1)
			format(sb, elt, indent, depth+1)
			sb.WriteByte(',')
		}
		if t.Len() != 0 {
			newline(depth)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("null")
	}
}
