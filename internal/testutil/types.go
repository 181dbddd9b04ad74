// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/creachadair/jstream"
)

// Kinds returns the kinds of the given tokens, in order.
func Kinds(tokens []jstream.Token) []jstream.Kind {
	out := make([]jstream.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

// Strings returns the string representations of the given tokens, in order.
// Error tokens are reported as ErrorToken without their message.
func Strings(tokens []jstream.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.Kind == jstream.ErrorToken {
			out[i] = tok.Kind.String()
		} else {
			out[i] = tok.String()
		}
	}
	return out
}

// CheckBalance verifies that every Start token in tokens is matched by an End
// token of the corresponding kind at the same depth, and that no token
// between them is shallower. It returns nil if so, or an error describing the
// first violation.
func CheckBalance(tokens []jstream.Token) error {
	type open struct {
		pos  int
		tok  jstream.Token
		want jstream.Kind
	}
	var stk []open
	for i, tok := range tokens {
		if n := len(stk); n > 0 {
			top := stk[n-1]
			if tok.Kind == top.want {
				if tok.Depth() != top.tok.Depth() {
					return fmt.Errorf("token %d (%v) depth %d, want %d (from token %d)",
						i, tok, tok.Depth(), top.tok.Depth(), top.pos)
				}
				stk = stk[:n-1]
				continue
			} else if tok.Depth() < top.tok.Depth() && !tok.IsTerminal() {
				return fmt.Errorf("token %d (%v) depth %d not inside token %d (%v) depth %d",
					i, tok, tok.Depth(), top.pos, top.tok, top.tok.Depth())
			}
		}
		if end, ok := endOf[tok.Kind]; ok {
			stk = append(stk, open{pos: i, tok: tok, want: end})
		}
	}
	return nil
}

var endOf = map[jstream.Kind]jstream.Kind{
	jstream.StartObject:   jstream.EndObject,
	jstream.StartProperty: jstream.EndProperty,
	jstream.StartArray:    jstream.EndArray,
	jstream.StartItem:     jstream.EndItem,
}

// Document returns a deterministic JSON document containing n records, each
// an object with scalar, array, and nested object members. The document uses
// only the grammar accepted by the tokenizer.
func Document(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"count": `)
	fmt.Fprint(&sb, n)
	sb.WriteString(`, "records": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n  ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record %d", "score": %d.%02d, `+
			`"active": %v, "parent": null, "tags": ["a", "b", [%d]], `+
			`"meta": {"depth": {"x": -%d}}}`,
			i, i, i%100, i%97, i%2 == 0, i, i)
	}
	sb.WriteString(`], "summary": "done"}`)
	return sb.String()
}
