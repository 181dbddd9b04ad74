// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/creachadair/jstream"
)

// ErrExtraInput is a sentinel error reported by ParseSingle when the input
// contains more than one value.
var ErrExtraInput = errors.New("extra input after value")

// ErrNoValue is reported when a token stream contains no complete value.
var ErrNoValue = errors.New("no value")

// Parse parses and returns the JSON values from src. In case of error, any
// complete values already parsed are returned along with the error.
func Parse(src []byte) ([]Value, error) {
	return Read(jstream.NewTokenizerBytes(src))
}

// ParseSingle parses and returns a single JSON value from src. If src
// contains more than one value, ParseSingle returns the first value along
// with ErrExtraInput.
func ParseSingle(src []byte) (Value, error) {
	vs, err := Parse(src)
	if err != nil {
		return nil, err
	} else if len(vs) == 0 {
		return nil, ErrNoValue
	} else if len(vs) > 1 {
		return vs[0], ErrExtraInput
	}
	return vs[0], nil
}

// Read consumes tokens from p until a terminal token, and returns the values
// constructed. In case of error, any complete values already constructed are
// returned along with the error.
func Read(p jstream.Producer) ([]Value, error) {
	var b Builder
	err := jstream.Pipe(p, &b)
	return b.Values(), err
}

// Build constructs a single value from a sequence of tokens, such as the
// tokens captured for an object member by a query. The tokens may describe a
// bare scalar value.
func Build(tokens []jstream.Token) (Value, error) {
	var b Builder
	if err := jstream.Feed(&b, tokens); err != nil {
		return nil, err
	} else if !b.Complete() {
		return nil, errors.New("incomplete value")
	}
	switch vs := b.Values(); len(vs) {
	case 0:
		return nil, ErrNoValue
	case 1:
		return vs[0], nil
	default:
		return vs[0], ErrExtraInput
	}
}

// A Builder implements the jstream.Consumer interface to construct syntax
// trees from structural tokens. The zero value is ready for use.
type Builder struct {
	stk  []Value // *Object, *Array, or *Member
	vals []Value
}

// Values returns the complete values constructed by b so far.
func (b *Builder) Values() []Value { return b.vals }

// Complete reports whether b has no partially-constructed value.
func (b *Builder) Complete() bool { return len(b.stk) == 0 }

// Reset discards all the values constructed by b.
func (b *Builder) Reset() { b.stk = b.stk[:0]; b.vals = nil }

// Consume satisfies the jstream.Consumer interface.
func (b *Builder) Consume(tok jstream.Token) error {
	switch tok.Kind {
	case jstream.NoToken:
		return nil
	case jstream.ErrorToken:
		if tok.Err != nil {
			return tok.Err
		}
		return errors.New(tok.Text)

	case jstream.StartObject:
		b.push(new(Object))
	case jstream.EndObject:
		obj, ok := b.top().(*Object)
		if !ok {
			return b.unexpected(tok)
		}
		b.pop()
		return b.reduce(*obj)
	case jstream.StartProperty:
		if _, ok := b.top().(*Object); !ok {
			return b.unexpected(tok)
		}
	case jstream.AddKey:
		obj, ok := b.top().(*Object)
		if !ok {
			return b.unexpected(tok)
		}
		// Add the member to its object eagerly, so that when the value is
		// known only the member needs to be updated.
		mem := &Member{Key: tok.Text}
		*obj = append(*obj, mem)
		b.push(mem)
	case jstream.EndProperty:
		mem, ok := b.top().(*Member)
		if !ok || mem.Value == nil {
			return b.unexpected(tok)
		}
		b.pop()

	case jstream.StartArray:
		b.push(new(Array))
	case jstream.EndArray:
		arr, ok := b.top().(*Array)
		if !ok {
			return b.unexpected(tok)
		}
		b.pop()
		return b.reduce(*arr)
	case jstream.StartItem, jstream.EndItem:
		if _, ok := b.top().(*Array); !ok {
			return b.unexpected(tok)
		}

	case jstream.AddString:
		return b.reduce(String(tok.Text))
	case jstream.AddInt:
		return b.reduce(Integer{text: tok.Text, value: tok.Int})
	case jstream.AddFloat:
		return b.reduce(Number(tok.Float))
	case jstream.AddTrue:
		return b.reduce(Bool(true))
	case jstream.AddFalse:
		return b.reduce(Bool(false))
	case jstream.AddNull:
		return b.reduce(Null{})
	default:
		return fmt.Errorf("unknown token %v", tok.Kind)
	}
	return nil
}

// reduce attaches a completed value v to the innermost open structure, or
// records it as a complete value if none is open.
func (b *Builder) reduce(v Value) error {
	switch t := b.top().(type) {
	case nil:
		b.vals = append(b.vals, v)
	case *Member:
		if t.Value != nil {
			return fmt.Errorf("duplicate value for key %q", t.Key)
		}
		t.Value = v
	case *Array:
		*t = append(*t, v)
	default:
		return fmt.Errorf("unexpected value %s in object", v.JSON())
	}
	return nil
}

func (b *Builder) top() Value {
	if len(b.stk) == 0 {
		return nil
	}
	return b.stk[len(b.stk)-1]
}

func (b *Builder) pop() { b.stk = b.stk[:len(b.stk)-1] }

func (b *Builder) push(v Value) { b.stk = append(b.stk, v) }

func (b *Builder) unexpected(tok jstream.Token) error {
	return fmt.Errorf("unexpected %v", tok.Kind)
}
