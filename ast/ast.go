// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the typed value tree produced by parsing a JSON
// document.
//
// A Value is exactly one of String, Number, Object, Array, Bool, or Null.
// The set of variants is closed: no other package can implement Value, so a
// type switch over the six concrete types is exhaustive.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jdoc/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	// String returns a human-readable representation of the value.
	String() string

	value() // restricts implementations to this package
}

// An Object is an ordered collection of key-value members.
type Object []*Member

func (Object) value() {}

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.Index(key); i >= 0 {
		return o[i]
	}
	return nil
}

// Index returns the index of the first member of o with the given key, or -1.
func (o Object) Index(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) JSON() string {
	buf := escape.Quote(mem.S(m.Key))
	buf = append(buf, ':')
	return string(buf) + m.Value.JSON()
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values.
type Array []Value

func (Array) value() {}

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a decoded string value.
type String string

func (String) value() {}

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }

// String returns the text of s, without quotation.
func (s String) String() string { return string(s) }

// A Number is a numeric value. All JSON numbers are represented as
// double-precision floating point.
type Number float64

func (Number) value() {}

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// IsInt reports whether n is a finite integer value.
func (n Number) IsInt() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Int64 returns n truncated toward zero to an int64.
func (n Number) Int64() int64 { return int64(n) }

// JSON renders n in decimal notation without an exponent. The parser and
// ToValue never produce infinite or NaN numbers; a Number converted directly
// from one renders as Go formats it, which is not valid JSON.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (n Number) String() string { return n.JSON() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) value() {}

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) String() string { return b.JSON() }

// Null represents the null constant.
type Null struct{}

func (Null) value() {}

func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }
