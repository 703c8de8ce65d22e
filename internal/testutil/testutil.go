// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"

	"github.com/creachadair/jdoc/ast"
)

// NestedObjects returns a document consisting of n objects, each but the
// innermost holding the next in a member named "a".
func NestedObjects(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(`{"a":`, n-1) + "{}" + strings.Repeat("}", n-1)
}

// Depth reports the maximum nesting depth of objects and arrays in v.
// A scalar has depth 0.
func Depth(v ast.Value) int {
	var d int
	switch t := v.(type) {
	case ast.Object:
		for _, m := range t {
			d = max(d, Depth(m.Value))
		}
	case ast.Array:
		for _, e := range t {
			d = max(d, Depth(e))
		}
	default:
		return 0
	}
	return d + 1
}

// ToAny converts v into the plain Go representation produced by unmarshaling
// JSON into a value of type any: objects become map[string]any, arrays
// become []any, numbers become float64, and null becomes nil. If an object
// has duplicate keys, the last one wins.
func ToAny(v ast.Value) any {
	switch t := v.(type) {
	case ast.Object:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			m[mem.Key] = ToAny(mem.Value)
		}
		return m
	case ast.Array:
		a := make([]any, len(t))
		for i, e := range t {
			a[i] = ToAny(e)
		}
		return a
	case ast.String:
		return string(t)
	case ast.Number:
		return float64(t)
	case ast.Bool:
		return bool(t)
	case ast.Null:
		return nil
	}
	panic("unknown value type")
}
