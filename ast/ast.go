// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a consumer that
// constructs syntax trees from a stream of structural tokens.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members, in input order.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

func (o Object) JSON() string {
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

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

func (m Member) JSON() string { return String(m.Key).JSON() + ":" + m.Value.JSON() }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
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

// A String is a string value. The text is stored verbatim, without quotation
// marks; no escape processing is applied.
type String string

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

func (s String) JSON() string { return `"` + string(s) + `"` }

// An Integer is an integer value. It retains the literal text it was parsed
// from, so that encoding reproduces the input.
type Integer struct {
	text  string
	value int64
}

// Int constructs an Integer with value z.
func Int(z int64) Integer { return Integer{text: strconv.FormatInt(z, 10), value: z} }

// Int64 returns the value of z.
func (z Integer) Int64() int64 { return z.value }

func (z Integer) JSON() string { return z.text }

func (z Integer) String() string { return z.text }

// A Number is a floating-point value.
type Number float64

// Float64 returns the value of n.
func (n Number) Float64() float64 { return float64(n) }

// JSON encodes n in the shortest decimal form that round-trips, without an
// exponent. A fractional part is always included so that the encoding is
// read back as a Number.
func (n Number) JSON() string {
	s := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (n Number) String() string { return n.JSON() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

// ToValue converts a string, int, float, bool, nil, or ast.Value into an
// ast.Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Number(t)
	case bool:
		return Bool(t)
	case nil:
		return Null{}
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
