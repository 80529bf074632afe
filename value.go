// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"iter"
	"maps"
	"slices"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota // not a valid value
	KindInteger             // Integer
	KindFloat               // Float
	KindText                // Text
	KindNull                // Null
	KindBool                // Bool
	KindObject              // Object
	KindArray               // Array
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindInteger: "integer",
	KindFloat:   "float",
	KindText:    "text",
	KindNull:    "null",
	KindBool:    "bool",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[k]
}

// A Value is a node of a parsed value tree. The concrete type of a Value is
// one of Integer, Float, Text, Null, Bool, Object, or Array.
//
// Values are immutable once constructed. The contents of an Object or Array
// are not exposed for modification.
type Value interface {
	// Kind reports the concrete kind of the value.
	Kind() Kind

	// Equal reports whether the value is structurally equal to v.
	Equal(v Value) bool

	isValue()
}

// An Integer is a signed 32-bit integer value.
type Integer int32

// A Float is a 32-bit floating-point value.
type Float float32

// Text is a string value.
type Text string

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Text) Kind() Kind    { return KindText }
func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }

func (z Integer) Equal(v Value) bool { w, ok := v.(Integer); return ok && z == w }
func (f Float) Equal(v Value) bool   { w, ok := v.(Float); return ok && f == w }
func (s Text) Equal(v Value) bool    { w, ok := v.(Text); return ok && s == w }
func (Null) Equal(v Value) bool      { _, ok := v.(Null); return ok }
func (b Bool) Equal(v Value) bool    { w, ok := v.(Bool); return ok && b == w }

func (Integer) isValue() {}
func (Float) isValue()   {}
func (Text) isValue()    {}
func (Null) isValue()    {}
func (Bool) isValue()    {}

// A Member is a single key-value pair, used to construct an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) Member { return Member{Key: key, Value: value} }

// An Object is a collection of values indexed by unique string keys.
// The zero value is an empty object.
type Object struct {
	m map[string]Value
}

// NewObject constructs an object from the given members. If more than one
// member has the same key, the last one wins.
func NewObject(members ...Member) Object {
	m := make(map[string]Value, len(members))
	for _, mem := range members {
		m[mem.Key] = mem.Value
	}
	return Object{m: m}
}

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o.m) }

// Find reports the value of the member of o with the given key, and whether
// such a member was found.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o.m)) }

// All returns an iterator over the members of o, in sorted key order.
func (o Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o.m[key]) {
				return
			}
		}
	}
}

// Equal reports whether v is an object with the same keys as o, whose
// corresponding values are equal.
func (o Object) Equal(v Value) bool {
	w, ok := v.(Object)
	if !ok || len(o.m) != len(w.m) {
		return false
	}
	for key, ov := range o.m {
		wv, ok := w.m[key]
		if !ok || !Equal(ov, wv) {
			return false
		}
	}
	return true
}

// An Array is an ordered sequence of values.
// The zero value is an empty array.
type Array struct {
	vs []Value
}

// NewArray constructs an array containing a copy of vs.
func NewArray(vs ...Value) Array { return Array{vs: slices.Clone(vs)} }

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a.vs) }

// At returns the element of a at offset i. It panics if i is out of range.
func (a Array) At(i int) Value { return a.vs[i] }

// Values returns a copy of the elements of a.
func (a Array) Values() []Value { return slices.Clone(a.vs) }

// All returns an iterator over the offsets and elements of a, in order.
func (a Array) All() iter.Seq2[int, Value] { return slices.All(a.vs) }

// Equal reports whether v is an array of the same length as a, whose
// corresponding elements are equal.
func (a Array) Equal(v Value) bool {
	w, ok := v.(Array)
	return ok && slices.EqualFunc(a.vs, w.vs, Equal)
}

// Equal reports whether a and b are structurally equal. Two nil values are
// equal; a nil value is not equal to any non-nil value.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Native converts v into plain Go values: Integer becomes int32, Float
// becomes float32, Text becomes string, Null becomes nil, Bool becomes bool,
// Object becomes map[string]any, and Array becomes []any.
func Native(v Value) any {
	switch t := v.(type) {
	case Integer:
		return int32(t)
	case Float:
		return float32(t)
	case Text:
		return string(t)
	case Bool:
		return bool(t)
	case Object:
		m := make(map[string]any, len(t.m))
		for key, elt := range t.m {
			m[key] = Native(elt)
		}
		return m
	case Array:
		vs := make([]any, len(t.vs))
		for i, elt := range t.vs {
			vs[i] = Native(elt)
		}
		return vs
	default:
		return nil
	}
}
