package jpath

import (
	"strconv"

	"github.com/creachadair/jdoc/ast"
)

// Select returns the values selected by e from root, in document order.
// It returns nil if nothing matches.
func (e Expr) Select(root ast.Value) []ast.Value {
	cur := []ast.Value{root}
	for _, s := range e {
		var next []ast.Value
		for _, v := range cur {
			next = s.apply(next, v)
		}
		if len(next) == 0 {
			return nil
		}
		cur = next
	}
	return cur
}

// First returns the first value selected by e from root, and reports whether
// any value was selected.
func (e Expr) First(root ast.Value) (ast.Value, bool) {
	if vs := e.Select(root); len(vs) != 0 {
		return vs[0], true
	}
	return nil, false
}

// apply appends to out the values selected by s from v.
func (s Step) apply(out []ast.Value, v ast.Value) []ast.Value {
	switch s.Op {
	case Child:
		return s.child(out, v)
	case Descend:
		walk(v, func(u ast.Value) { out = s.child(out, u) })
	case Index:
		a, ok := v.(ast.Array)
		if !ok {
			return out
		}
		for _, i := range s.Indexes {
			if j, ok := fixBound(len(a), i); ok {
				out = append(out, a[j])
			}
		}
	case Slice:
		a, ok := v.(ast.Array)
		if !ok {
			return out
		}
		lo, hi := 0, len(a)
		if s.Lo != nil {
			lo = clamp(*s.Lo, len(a))
		}
		if s.Hi != nil {
			hi = clamp(*s.Hi, len(a))
		}
		if lo < hi {
			out = append(out, a[lo:hi]...)
		}
	}
	return out
}

// child appends to out the children of v selected by name.
func (s Step) child(out []ast.Value, v ast.Value) []ast.Value {
	switch t := v.(type) {
	case ast.Object:
		for _, m := range t {
			if s.IsWildcard() || m.Key == s.Name {
				out = append(out, m.Value)
			}
		}
	case ast.Array:
		if s.IsWildcard() {
			return append(out, t...)
		}
		if i, err := strconv.Atoi(s.Name); err == nil {
			if j, ok := fixBound(len(t), i); ok {
				out = append(out, t[j])
			}
		}
	}
	return out
}

// walk calls f for v and each of its descendants in document order.
func walk(v ast.Value, f func(ast.Value)) {
	var visit func(ast.Value)
	visit = func(v ast.Value) {
		f(v)
		switch t := v.(type) {
		case ast.Object:
			for _, m := range t {
				visit(m.Value)
			}
		case ast.Array:
			for _, e := range t {
				visit(e)
			}
		}
	}
	visit(v)
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
