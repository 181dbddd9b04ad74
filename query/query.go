// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package query implements selective extraction of object members from a
// stream of structural tokens.
//
// An ObjectQuery consumes the tokens of a single JSON object and captures the
// tokens of the values for a chosen set of top-level keys. The values of all
// other members are skipped as they are produced, without being retained, so
// memory use is bounded by the size of the requested values rather than the
// size of the input.
//
// For example, given the input
//
//	{"foo": 10, "baz": [true, {"gorch": 35}], "bar": 3.14}
//
// the query
//
//	q := query.New("foo", "bar")
//	err := q.Execute(jstream.NewTokenizer(input))
//
// captures the single token AddInt[10] for "foo" and AddFloat[3.14] for "bar",
// and discards the tokens of "baz".
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/jstream"
	"github.com/creachadair/mds/mapset"
)

var (
	// ErrExpectedStartObject is reported when the first token of the input is
	// not a StartObject.
	ErrExpectedStartObject = errors.New("expected StartObject")

	// ErrUnexpectedToken is reported when a token other than a member or the
	// end of the object is found, for example a premature ErrorToken.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is the concrete type of errors reported by ObjectQuery.Execute.
// Use errors.Is to check for ErrExpectedStartObject or ErrUnexpectedToken.
type Error struct {
	Err   error         // one of the sentinel errors above
	Token jstream.Token // the offending token
}

// Error satisfies the error interface.
func (e *Error) Error() string { return fmt.Sprintf("%v, got %v", e.Err, e.Token) }

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.Err }

// An ObjectQuery captures the values of selected top-level members of an
// object. The zero value captures nothing; use New or CaptureValueOf to
// register keys of interest.
//
// An ObjectQuery is not safe for concurrent use by multiple goroutines.
type ObjectQuery struct {
	keys    mapset.Set[string]
	results map[string][]jstream.Token
	order   []string // captured keys in input order
}

// New constructs an ObjectQuery that captures the values of the given keys.
func New(keys ...string) *ObjectQuery { return &ObjectQuery{keys: mapset.New(keys...)} }

// CaptureValueOf registers interest in the value of key, and returns q to
// permit chaining.
func (q *ObjectQuery) CaptureValueOf(key string) *ObjectQuery {
	if q.keys == nil {
		q.keys = mapset.New[string]()
	}
	q.keys.Add(key)
	return q
}

// Execute consumes the tokens of one object from p, capturing the values of
// the registered keys. It discards the results of any previous execution.
//
// The first token from p must be a StartObject, or Execute reports
// ErrExpectedStartObject. Execute consumes exactly the tokens of the object,
// through its EndObject, and leaves p positioned after it. If any other
// token interrupts the object, Execute reports ErrUnexpectedToken; the values
// captured before the error remain available.
func (q *ObjectQuery) Execute(p jstream.Producer) error {
	q.results = make(map[string][]jstream.Token)
	q.order = q.order[:0]

	if tok := p.Next(); tok.Kind != jstream.StartObject {
		return &Error{Err: ErrExpectedStartObject, Token: tok}
	}
	for {
		start := p.Next()
		if start.Kind != jstream.StartProperty {
			if start.Kind == jstream.EndObject {
				return nil
			}
			return &Error{Err: ErrUnexpectedToken, Token: start}
		}
		key := p.Next()
		if key.Kind != jstream.AddKey {
			return &Error{Err: ErrUnexpectedToken, Token: key}
		}
		if err := q.consumeValue(p, key.Text, start.Depth()); err != nil {
			return err
		}
	}
}

// consumeValue consumes the tokens of a member value through the EndProperty
// at the given depth, which is consumed but not retained. All the tokens of
// the value, including nested property ends, are deeper than depth. The
// tokens are retained only if the key is of interest.
func (q *ObjectQuery) consumeValue(p jstream.Producer, key string, depth int) error {
	want := q.keys.Has(key)
	var buf []jstream.Token
	for {
		tok := p.Next()
		if tok.Kind == jstream.EndProperty && tok.Depth() <= depth {
			break
		} else if tok.IsTerminal() {
			return &Error{Err: ErrUnexpectedToken, Token: tok}
		}
		if want {
			buf = append(buf, tok)
		}
	}
	if want {
		if _, ok := q.results[key]; !ok {
			q.order = append(q.order, key)
		}
		q.results[key] = buf // the last occurrence of a repeated key wins
	}
	return nil
}

// ResultsFor returns the tokens captured for the value of key by the most
// recent call to Execute. It returns nil if key was not requested or did not
// occur in the object.
func (q *ObjectQuery) ResultsFor(key string) []jstream.Token { return q.results[key] }

// Keys returns the keys whose values were captured by the most recent call to
// Execute, in the order they first occurred in the input.
func (q *ObjectQuery) Keys() []string { return q.order }

// Requested reports whether key has been registered with q.
func (q *ObjectQuery) Requested(key string) bool { return q.keys.Has(key) }
