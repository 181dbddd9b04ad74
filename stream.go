// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import "iter"

// A Producer yields structural tokens on demand. Each call to Next returns
// exactly one token; once Done reports true, Next returns terminal tokens
// only.
type Producer interface {
	// Next returns the next token of the stream.
	Next() Token

	// Done reports whether the producer has reached a terminal state.
	Done() bool
}

// A Consumer accepts structural tokens one at a time. If Consume reports an
// error, the caller should stop delivering tokens.
type Consumer interface {
	Consume(Token) error
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(Token) error

// Consume satisfies the Consumer interface.
func (f ConsumerFunc) Consume(tok Token) error { return f(tok) }

// Replay returns a Producer that yields the given tokens in order, and then
// NoToken forever. A terminal token in the slice is yielded like any other;
// the slice is not copied.
func Replay(tokens []Token) Producer { return &replay{tokens: tokens} }

type replay struct {
	tokens []Token
	pos    int
}

func (r *replay) Next() Token {
	if r.pos < len(r.tokens) {
		r.pos++
		return r.tokens[r.pos-1]
	}
	return Token{Kind: NoToken}
}

func (r *replay) Done() bool { return r.pos >= len(r.tokens) }

// All returns an iterator over the tokens of p. The sequence ends after the
// first terminal token, which is included.
func All(p Producer) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := p.Next()
			if !yield(tok) || tok.IsTerminal() {
				return
			}
		}
	}
}

// Collect reads tokens from p until a terminal token is produced, and returns
// all of them including the terminal token.
func Collect(p Producer) []Token {
	var out []Token
	for tok := range All(p) {
		out = append(out, tok)
	}
	return out
}

// Feed delivers tokens to c in order, stopping at the first error.
func Feed(c Consumer, tokens []Token) error {
	for _, tok := range tokens {
		if err := c.Consume(tok); err != nil {
			return err
		}
	}
	return nil
}

// Pipe delivers tokens from p to c until p produces a terminal token or c
// reports an error. The terminal token is delivered to c. Pipe returns the
// error from c, if any.
func Pipe(p Producer, c Consumer) error {
	for tok := range All(p) {
		if err := c.Consume(tok); err != nil {
			return err
		}
	}
	return nil
}
