// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import "fmt"

// Kind is the kind of a structural token.
type Kind byte

// Constants defining the valid Kind values.
const (
	NoToken    Kind = iota // terminal: the input is exhausted
	ErrorToken             // terminal: the input is malformed

	StartObject   // begin an object: {
	EndObject     // end an object: }
	StartProperty // begin an object member
	EndProperty   // end an object member
	AddKey        // the key of an object member

	StartArray // begin an array: [
	EndArray   // end an array: ]
	StartItem  // begin an array element
	EndItem    // end an array element

	AddString // a string value
	AddInt    // an integer value
	AddFloat  // a floating-point value
	AddTrue   // the constant true
	AddFalse  // the constant false
	AddNull   // the constant null
)

var kindStr = [...]string{
	NoToken:       "NoToken",
	ErrorToken:    "ErrorToken",
	StartObject:   "StartObject",
	EndObject:     "EndObject",
	StartProperty: "StartProperty",
	EndProperty:   "EndProperty",
	AddKey:        "AddKey",
	StartArray:    "StartArray",
	EndArray:      "EndArray",
	StartItem:     "StartItem",
	EndItem:       "EndItem",
	AddString:     "AddString",
	AddInt:        "AddInt",
	AddFloat:      "AddFloat",
	AddTrue:       "AddTrue",
	AddFalse:      "AddFalse",
	AddNull:       "AddNull",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", v)
	}
	return kindStr[v]
}

// IsTerminal reports whether k is NoToken or ErrorToken.
func (k Kind) IsTerminal() bool { return k == NoToken || k == ErrorToken }

// Context is the kind of structure open at the point a token is produced.
type Context byte

// Constants defining the valid Context values.
const (
	InRoot Context = iota
	InError
	InObject
	InProperty
	InArray
	InItem
)

var contextStr = [...]string{
	InRoot:     "InRoot",
	InError:    "InError",
	InObject:   "InObject",
	InProperty: "InProperty",
	InArray:    "InArray",
	InItem:     "InItem",
}

func (c Context) String() string {
	v := int(c)
	if v >= len(contextStr) {
		return fmt.Sprintf("Context(%d)", v)
	}
	return contextStr[v]
}

// A Token is a structural event produced by a Tokenizer.
//
// Tokens hold no reference to the tokenizer that produced them, and may be
// freely copied and retained.
type Token struct {
	Kind Kind

	// Context is a snapshot of the nesting of the input at the point the token
	// was produced, ordered from the root outward. A Start token includes the
	// context it opens; the matching End token has the same snapshot.
	// The snapshot may be shared among tokens and must not be modified.
	Context []Context

	// Text is the payload of the token: the unquoted text of an AddKey or
	// AddString, the literal text of an AddInt or AddFloat, or the diagnostic
	// message of an ErrorToken.
	Text string

	Int   int64   // the value of an AddInt
	Float float64 // the value of an AddFloat

	// Err is the error described by an ErrorToken, or nil.
	Err *SyntaxError
}

// Depth reports the context depth of t, the length of its context snapshot.
func (t Token) Depth() int { return len(t.Context) }

// Current reports the innermost context of t. A token with an empty snapshot
// is reported as InRoot.
func (t Token) Current() Context {
	if len(t.Context) == 0 {
		return InRoot
	}
	return t.Context[len(t.Context)-1]
}

// IsTerminal reports whether t is a NoToken or an ErrorToken.
func (t Token) IsTerminal() bool { return t.Kind.IsTerminal() }

// String returns a compact representation of t, giving the kind and any
// payload, for example AddKey[foo] or AddInt[10].
func (t Token) String() string {
	switch t.Kind {
	case AddKey, AddString, AddInt, AddFloat, ErrorToken:
		return t.Kind.String() + "[" + t.Text + "]"
	default:
		return t.Kind.String()
	}
}
