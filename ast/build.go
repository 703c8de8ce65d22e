// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"
)

// ToValue converts a string, int, float, bool, nil, or Value into a Value.
// It panics if v does not have one of those types, or if v is an infinite or
// NaN float, which JSON cannot represent.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return finite(float64(t))
	case float64:
		return finite(t)
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}

func finite(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("invalid number %v", f))
	}
	return Number(f)
}

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ObjectOf constructs an Object from the given members.
func ObjectOf(ms ...*Member) Object {
	return append(make(Object, 0, len(ms)), ms...)
}

// ArrayOf constructs an Array of values from the given arguments, each of
// which must be acceptable to ToValue.
func ArrayOf[T any](vs ...T) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}
