// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"testing"

	"github.com/creachadair/jdoc/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"`), `"say \"hi\""`},

		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},
		{ast.Number(1e21), `1000000000000000000000`},

		{ast.Array{}, `[]`},
		{ast.ArrayOf(false), `[false]`},
		{ast.ArrayOf[any](true, 199), `[true,199]`},
		{ast.ArrayOf("free", "your", "mind"), `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", nil),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", "Dennis"),
			ast.Field("age", 37),
			ast.Field("isOld", false),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.ArrayOf[any](5, 10, true)),
			ast.Field("page", ast.Object{
				ast.Field("token", "xyz-pdq-zvm"),
				ast.Field("count", 100),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestObject(t *testing.T) {
	obj := ast.ObjectOf(
		ast.Field("a", 1),
		ast.Field("b", "two"),
		ast.Field("a", 3),
	)
	if got := obj.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if diff := cmp.Diff(obj.Keys(), []string{"a", "b", "a"}); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}
	if m := obj.Find("a"); m == nil || m.Value != ast.Number(1) {
		t.Errorf(`Find("a"): got %v, want first member`, m)
	}
	if got := obj.Index("b"); got != 1 {
		t.Errorf(`Index("b"): got %d, want 1`, got)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find("nonesuch"): got %v, want nil`, m)
	}
	if got := obj.Index("nonesuch"); got != -1 {
		t.Errorf(`Index("nonesuch"): got %d, want -1`, got)
	}
	if got := ast.ObjectOf(); got == nil || got.Len() != 0 {
		t.Errorf("ObjectOf(): got %#v, want empty non-nil", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input ast.Number
		isInt bool
		i64   int64
	}{
		{0, true, 0},
		{30, true, 30},
		{-0.5, false, 0},
		{2.75, false, 2},
		{-1e15, true, -1e15},
		{ast.Number(math.Inf(1)), false, math.MinInt64},
	}
	for _, tc := range tests {
		if got := tc.input.IsInt(); got != tc.isInt {
			t.Errorf("IsInt(%v): got %v, want %v", tc.input, got, tc.isInt)
		}
		if !tc.isInt {
			continue
		}
		if got := tc.input.Int64(); got != tc.i64 {
			t.Errorf("Int64(%v): got %d, want %d", tc.input, got, tc.i64)
		}
	}
}

func TestToValue(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			input any
			want  ast.Value
		}{
			{nil, ast.Null{}},
			{"fuzzy", ast.String("fuzzy")},
			{true, ast.Bool(true)},
			{int8(-3), ast.Number(-3)},
			{uint64(7), ast.Number(7)},
			{float32(0.5), ast.Number(0.5)},
			{ast.Bool(false), ast.Bool(false)},
		}
		for _, tc := range tests {
			if got := ast.ToValue(tc.input); got != tc.want {
				t.Errorf("ToValue(%#v): got %#v, want %#v", tc.input, got, tc.want)
			}
		}
	})
	t.Run("Composite", func(t *testing.T) {
		arr := ast.ArrayOf(1, 2, 3)
		if got := ast.ToValue(arr).JSON(); got != `[1,2,3]` {
			t.Errorf("ToValue(array): got %s, want [1,2,3]", got)
		}
		obj := ast.Object{ast.Field("foo", 1), ast.Field("bar", true)}
		if got := ast.ToValue(obj).JSON(); got != `{"foo":1,"bar":true}` {
			t.Errorf("ToValue(object): got %s", got)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
		mtest.MustPanic(t, func() { ast.ToValue(math.Inf(1)) })
		mtest.MustPanic(t, func() { ast.ToValue(math.Inf(-1)) })
		mtest.MustPanic(t, func() { ast.ToValue(math.NaN()) })
		mtest.MustPanic(t, func() { ast.ArrayOf(1.5, math.NaN()) })
	})
}

func TestStringer(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.String("plain text"), "plain text"},
		{ast.Number(2.5), "2.5"},
		{ast.Bool(true), "true"},
		{ast.Null{}, "null"},
		{ast.ArrayOf(1, 2), "Array(len=2)"},
		{ast.Object{ast.Field("k", 1)}, "Object(len=1)"},
	}
	for _, tc := range tests {
		if got := tc.input.String(); got != tc.want {
			t.Errorf("String(%#v): got %q, want %q", tc.input, got, tc.want)
		}
	}
	if got := ast.Field("k", 1).String(); got != `Member(key="k")` {
		t.Errorf("Member String: got %q", got)
	}
}
