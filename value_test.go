// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnode_test

import (
	"testing"

	"github.com/creachadair/jnode"
	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input jnode.Value
		want  jnode.Kind
		name  string
	}{
		{jnode.Integer(1), jnode.KindInteger, "integer"},
		{jnode.Float(1.5), jnode.KindFloat, "float"},
		{jnode.Text("x"), jnode.KindText, "text"},
		{jnode.Null{}, jnode.KindNull, "null"},
		{jnode.Bool(false), jnode.KindBool, "bool"},
		{jnode.NewObject(), jnode.KindObject, "object"},
		{jnode.Array{}, jnode.KindArray, "array"},
	}
	for _, test := range tests {
		if got := test.input.Kind(); got != test.want {
			t.Errorf("Kind(%v): got %v, want %v", test.input, got, test.want)
		}
		if got := test.want.String(); got != test.name {
			t.Errorf("String(%d): got %q, want %q", test.want, got, test.name)
		}
	}
	if got := jnode.Kind(200).String(); got != "invalid" {
		t.Errorf("String(200): got %q, want invalid", got)
	}
}

func TestObject(t *testing.T) {
	o := jnode.MustParse(`{"c": 3, "a": 1, "b": [2,], "a": 4,}`).(jnode.Object)

	if got := o.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, o.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if v, ok := o.Find("a"); !ok || !jnode.Equal(v, jnode.Integer(4)) {
		t.Errorf("Find(a): got %v, %v; want 4, true", v, ok)
	}
	if v, ok := o.Find("nonesuch"); ok {
		t.Errorf("Find(nonesuch): got %v, want not found", v)
	}

	var keys []string
	for key := range o.All() {
		keys = append(keys, key)
		if key == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}

	var zero jnode.Object
	if zero.Len() != 0 || !zero.Equal(jnode.NewObject()) {
		t.Error("Zero object is not empty")
	}
}

func TestArray(t *testing.T) {
	elts := []jnode.Value{jnode.Integer(1), jnode.Text("two")}
	a := jnode.NewArray(elts...)
	elts[0] = jnode.Null{} // must not affect a

	if got := a.Len(); got != 2 {
		t.Errorf("Len: got %d, want 2", got)
	}
	if got := a.At(0); !jnode.Equal(got, jnode.Integer(1)) {
		t.Errorf("At(0): got %v, want 1", got)
	}

	vs := a.Values()
	vs[1] = jnode.Bool(true) // must not affect a
	if got := a.At(1); !jnode.Equal(got, jnode.Text("two")) {
		t.Errorf("At(1): got %v, want two", got)
	}

	var got []int
	for i := range a.All() {
		got = append(got, i)
	}
	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b jnode.Value
		want bool
	}{
		{nil, nil, true},
		{jnode.Null{}, nil, false},
		{nil, jnode.Null{}, false},
		{jnode.Null{}, jnode.Null{}, true},
		{jnode.Integer(1), jnode.Integer(1), true},
		{jnode.Integer(1), jnode.Float(1), false},
		{jnode.Float(0.5), jnode.Float(0.5), true},
		{jnode.Text("a"), jnode.Text("b"), false},
		{jnode.Bool(true), jnode.Bool(true), true},
		{jnode.Bool(true), jnode.Text("true"), false},

		{jnode.NewArray(), jnode.Array{}, true},
		{jnode.NewArray(jnode.Integer(1), jnode.Integer(2)),
			jnode.NewArray(jnode.Integer(2), jnode.Integer(1)), false},
		{jnode.NewArray(jnode.Integer(1)),
			jnode.NewArray(jnode.Integer(1), jnode.Integer(1)), false},

		{jnode.NewObject(jnode.Field("a", jnode.Null{}), jnode.Field("b", jnode.Bool(false))),
			jnode.NewObject(jnode.Field("b", jnode.Bool(false)), jnode.Field("a", jnode.Null{})), true},
		{jnode.NewObject(jnode.Field("a", jnode.Null{})),
			jnode.NewObject(jnode.Field("b", jnode.Null{})), false},
		{jnode.NewObject(jnode.Field("a", jnode.Integer(1))),
			jnode.NewObject(jnode.Field("a", jnode.Integer(2))), false},
		{jnode.NewObject(), jnode.NewArray(), false},
	}
	for _, test := range tests {
		if got := jnode.Equal(test.a, test.b); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestNative(t *testing.T) {
	v := jnode.MustParse(`{
  "id": 25,
  "ratio": 0.25,
  "name": "thing",
  "tags": ["a", null, true,],
  "meta": {},
}`)
	want := map[string]any{
		"id":    int32(25),
		"ratio": float32(0.25),
		"name":  "thing",
		"tags":  []any{"a", nil, true},
		"meta":  map[string]any{},
	}
	if diff := cmp.Diff(want, jnode.Native(v)); diff != "" {
		t.Errorf("Native (-want, +got):\n%s", diff)
	}
}
