// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the tree of a parsed JSON value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jdoc/ast"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// ParsePath splits a dotted path string like "items.0.name" into path
// elements suitable for Down. Every element is returned as a string; Down
// interprets a string as an index when it is applied to an array. An empty
// string yields an empty path.
func ParsePath(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down moves c along path from its current value and returns c. Each path
// element is one of:
//
//   - string: on an object, the value of the first member with that key; on
//     an array, a decimal index.
//   - int: an index into an array or object, negative counting from the end.
//   - func(ast.Value) (ast.Value, error): the value it returns.
//
// Traversal stops at the first element that cannot be applied, and the
// reason is available from Err.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		var next ast.Value
		var err error
		switch t := elt.(type) {
		case string:
			next, err = lookup(cur, t)
		case int:
			next, err = index(cur, t)
		case func(ast.Value) (ast.Value, error):
			next, err = t(cur)
		default:
			err = fmt.Errorf("invalid path element %T", elt)
		}
		if err != nil {
			c.err = err
			return c
		}
		cur = c.push(next)
	}
	return c
}

func lookup(v ast.Value, key string) (ast.Value, error) {
	switch e := v.(type) {
	case ast.Object:
		if m := e.Find(key); m != nil {
			return m.Value, nil
		}
		return nil, fmt.Errorf("key %q not found", key)
	case ast.Array:
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid array index %q", key)
		}
		return index(v, n)
	}
	return nil, fmt.Errorf("cannot traverse %T with %q", v, key)
}

func index(v ast.Value, n int) (ast.Value, error) {
	switch e := v.(type) {
	case ast.Array:
		if i, ok := fixBound(len(e), n); ok {
			return e[i], nil
		}
		return nil, fmt.Errorf("array index %d out of bounds (n=%d)", n, len(e))
	case ast.Object:
		if i, ok := fixBound(len(e), n); ok {
			return e[i].Value, nil
		}
		return nil, fmt.Errorf("object index %d out of bounds (n=%d)", n, len(e))
	}
	return nil, fmt.Errorf("cannot traverse %T with %d", v, n)
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
