// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jstream implements a single-pass, pull-based JSON tokenizer.
//
// # Lexing
//
// The Lexer type splits an in-memory input into raw lexemes: operators,
// keywords, and string and numeric constants. Call its Next method to advance,
// or Peek to look ahead without consuming input:
//
//	lx := jstream.NewLexer(input)
//	for s := lx.Next(); s.Kind != jstream.End; s = lx.Next() {
//	   log.Printf("Next lexeme: %v", s)
//	}
//
// The lexer accepts a restricted JSON grammar: string constants are taken
// verbatim up to the next quotation mark (there are no escape sequences), and
// numbers with an exponent ("1e5") are rejected.
//
// # Tokenizing
//
// The Tokenizer type is a push-down automaton that turns lexemes into
// structural tokens. Each call to Next returns exactly one token, so the
// caller may stop, skip, or capture parts of the input without the tokenizer
// running ahead:
//
//	t := jstream.NewTokenizer(input)
//	for !t.Done() {
//	   log.Printf("Next token: %v", t.Next())
//	}
//
// The tokens describe the structure of the input:
//
//	JSON type  | Tokens                          | Description
//	---------- | ------------------------------- | -----------------------------
//	object     | StartObject, EndObject          | { ... }
//	member     | StartProperty, AddKey, ...,     | "key": value
//	           | EndProperty                     |
//	array      | StartArray, EndArray            | [ ... ]
//	element    | StartItem, ..., EndItem         | each value of an array
//	value      | AddString, AddInt, AddFloat,    | "x", 1, 2.5, true, false, null
//	           | AddTrue, AddFalse, AddNull      |
//	--         | NoToken                         | end of input
//	--         | ErrorToken                      | malformed input
//
// Every token carries a snapshot of the nesting context at the point it was
// produced. The snapshot of a Start token includes the context it opens, and
// the matching End token has the same depth, so a consumer can skip a value of
// any shape by comparing depths.
//
// Errors are reported as ErrorToken values rather than Go errors. Once the
// tokenizer has reported NoToken or ErrorToken it is done, and continues to
// report the same kind of token on every call.
//
// # Producers and consumers
//
// A Producer yields tokens (a Tokenizer, or a Replay of captured tokens) and a
// Consumer accepts them. Captured token sequences can be replayed into a
// consumer without rescanning the input. See the query package for selective
// capture of object members, and the ast package for a consumer that builds
// syntax trees.
package jstream
