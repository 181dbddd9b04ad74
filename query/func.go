// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"fmt"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/ast"
)

// Select executes a query for the given keys against p, and returns a map
// from each key found in the object to the value constructed from its
// captured tokens. Keys that do not occur in the object are omitted.
func Select(p jstream.Producer, keys ...string) (map[string]ast.Value, error) {
	q := New(keys...)
	if err := q.Execute(p); err != nil {
		return nil, err
	}
	return q.Values()
}

// Values constructs the value of each key captured by the most recent call
// to Execute.
func (q *ObjectQuery) Values() (map[string]ast.Value, error) {
	out := make(map[string]ast.Value, len(q.order))
	for _, key := range q.order {
		v, err := ast.Build(q.results[key])
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}
