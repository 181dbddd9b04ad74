// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"
	"iter"
	"slices"

	"go4.org/mem"
)

// state is a position in the grammar at which the tokenizer will resume.
type state byte

const (
	stRoot        state = iota // expect a root value or end of input
	stEnd                      // terminal: input exhausted
	stError                    // terminal: input malformed
	stObject                   // after "{": expect a key or "}"
	stMember                   // after a member: expect "," or "}"
	stProperty                 // after ",": expect a key
	stKey                      // after StartProperty: read the key
	stColon                    // after AddKey: expect ":" and a value
	stEndProperty              // after a member value
	stArray                    // after "[": expect an element or "]"
	stElement                  // after an element: expect "," or "]"
	stItem                     // after ",": expect an element
	stItemValue                // after StartItem: read the value
	stEndItem                  // after an element value
)

// A frame records an open structure and the state at which the tokenizer
// resumes once a value nested inside that structure is complete.
type frame struct {
	ctx    Context
	resume state
}

// A Tokenizer is a push-down automaton that consumes lexemes from a Lexer and
// produces structural tokens, one per call to Next. The tokenizer keeps its
// continuation explicitly on a frame stack, so the caller may stop, skip, or
// resume the token stream at any point.
//
// A Tokenizer is not safe for concurrent use by multiple goroutines.
type Tokenizer struct {
	lex   *Lexer
	stk   []frame
	state state
	snap  []Context // cached context snapshot, nil when stale
	open  int       // number of open objects and arrays
	errt  Token     // the error token, once in the error state

	tcomma   bool // allow trailing commas in objects and arrays
	maxDepth int  // if > 0, the maximum nesting of objects and arrays
}

// NewTokenizer constructs a tokenizer that consumes the contents of src.
func NewTokenizer(src string) *Tokenizer { return NewTokenizerWithLexer(NewLexer(src)) }

// NewTokenizerBytes constructs a tokenizer that consumes the contents of src.
// The caller must not modify src while the tokenizer is in use.
func NewTokenizerBytes(src []byte) *Tokenizer { return NewTokenizerWithLexer(NewLexerBytes(src)) }

// NewTokenizerWithLexer constructs a tokenizer that consumes lexemes from lx.
func NewTokenizerWithLexer(lx *Lexer) *Tokenizer {
	return &Tokenizer{
		lex:   lx,
		stk:   []frame{{ctx: InRoot, resume: stRoot}},
		state: stRoot,
	}
}

// AllowTrailingCommas configures the tokenizer to allow (true) or reject
// (false) trailing commas in objects and arrays.
func (t *Tokenizer) AllowTrailingCommas(ok bool) { t.tcomma = ok }

// SetMaxDepth sets the maximum nesting depth of objects and arrays. If n <= 0
// there is no limit. Input nested more deeply is reported as an error.
func (t *Tokenizer) SetMaxDepth(n int) { t.maxDepth = n }

// Done reports whether t has reached a terminal state, either because the
// input was exhausted or because an error occurred. Once t is done, every
// subsequent call to Next returns a token of the same terminal kind.
func (t *Tokenizer) Done() bool { return t.state == stEnd || t.state == stError }

// Err reports the error that put t into its error state, or nil.
func (t *Tokenizer) Err() error {
	if t.state == stError {
		return t.errt.Err
	}
	return nil
}

// Next produces the next structural token of the input. At the end of the
// input Next returns a NoToken; if the input is malformed, Next returns an
// ErrorToken describing the problem. Both states are permanent.
func (t *Tokenizer) Next() Token {
	switch t.state {
	case stRoot:
		return t.root()
	case stEnd:
		return t.emit(NoToken)
	case stError:
		return t.errt
	case stObject:
		return t.object()
	case stMember:
		return t.member()
	case stProperty:
		return t.property()
	case stKey:
		return t.key()
	case stColon:
		return t.colon()
	case stEndProperty:
		return t.endProperty()
	case stArray:
		return t.array()
	case stElement:
		return t.element()
	case stItem:
		return t.item()
	case stItemValue:
		return t.value()
	case stEndItem:
		return t.endItem()
	default:
		panic(fmt.Sprintf("invalid tokenizer state %d", t.state))
	}
}

// All returns an iterator over the remaining tokens of t. The sequence ends
// after the first terminal token, which is included.
func (t *Tokenizer) All() iter.Seq[Token] { return All(t) }

func (t *Tokenizer) root() Token {
	s := t.lex.Peek()
	switch {
	case s.Kind == End:
		t.state = stEnd
		return t.emit(NoToken)
	case s.Kind == Error:
		return t.fail(s)
	case s.IsOp('{'):
		return t.beginObject(s)
	case s.IsOp('['):
		return t.beginArray(s)
	default:
		return t.failf(s, "root must be an Object or Array")
	}
}

// value dispatches on the next lexeme to begin a value of any type.
// Scalars are complete in one token, after which the tokenizer resumes at the
// continuation of the enclosing frame.
func (t *Tokenizer) value() Token {
	s := t.lex.Peek()
	switch s.Kind {
	case End:
		return t.failEOF(s, "value")
	case Error:
		return t.fail(s)
	case Operator:
		if s.IsOp('{') {
			return t.beginObject(s)
		} else if s.IsOp('[') {
			return t.beginArray(s)
		}
		return t.failf(s, "expected value, found %v", s)
	case StringConst:
		t.lex.Discard()
		tok := t.emit(AddString)
		tok.Text = unquote(s.Text)
		return t.scalar(tok)
	case IntConst:
		v, err := mem.ParseInt(t.lex.text(s), 10, 64)
		if err != nil {
			return t.failf(s, "integer %s out of range", s.Text)
		}
		t.lex.Discard()
		tok := t.emit(AddInt)
		tok.Text, tok.Int = s.Text, v
		return t.scalar(tok)
	case FloatConst:
		v, err := mem.ParseFloat(t.lex.text(s), 64)
		if err != nil {
			return t.failf(s, "number %s out of range", s.Text)
		}
		t.lex.Discard()
		tok := t.emit(AddFloat)
		tok.Text, tok.Float = s.Text, v
		return t.scalar(tok)
	case Keyword:
		t.lex.Discard()
		switch s.Text {
		case "true":
			return t.scalar(t.emit(AddTrue))
		case "false":
			return t.scalar(t.emit(AddFalse))
		default:
			return t.scalar(t.emit(AddNull))
		}
	default:
		return t.failf(s, "expected value, found %v", s)
	}
}

// scalar completes a scalar value token and returns it.
func (t *Tokenizer) scalar(tok Token) Token {
	t.state = t.top().resume
	return tok
}

func (t *Tokenizer) beginObject(s Scan) Token {
	if t.maxDepth > 0 && t.open >= t.maxDepth {
		return t.failf(s, "nesting depth exceeds %d", t.maxDepth)
	}
	t.lex.Discard()
	t.open++
	t.push(InObject, stMember)
	t.state = stObject
	return t.emit(StartObject)
}

func (t *Tokenizer) object() Token {
	s := t.lex.Peek()
	switch {
	case s.Kind == StringConst:
		return t.startProperty()
	case s.IsOp('}'):
		return t.endObject()
	case s.Kind == End:
		return t.failEOF(s, `string or "}"`)
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.failf(s, `expected string or "}", found %v`, s)
	}
}

func (t *Tokenizer) member() Token {
	s := t.lex.Peek()
	switch {
	case s.IsOp(','):
		t.lex.Discard()
		t.state = stProperty
		return t.property()
	case s.IsOp('}'):
		return t.endObject()
	case s.Kind == End:
		return t.failEOF(s, `"," or "}"`)
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.failf(s, `expected "," or "}", found %v`, s)
	}
}

func (t *Tokenizer) property() Token {
	s := t.lex.Peek()
	switch {
	case s.Kind == StringConst:
		return t.startProperty()
	case s.IsOp('}') && t.tcomma:
		return t.endObject()
	case s.Kind == End:
		return t.failEOF(s, "string")
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.failf(s, "expected string, found %v", s)
	}
}

func (t *Tokenizer) startProperty() Token {
	t.push(InProperty, stEndProperty)
	t.state = stKey
	return t.emit(StartProperty)
}

func (t *Tokenizer) key() Token {
	s := t.lex.Peek()
	if s.Kind != StringConst {
		// Not reachable from startProperty, but keep the automaton honest.
		return t.failf(s, "expected string, found %v", s)
	}
	t.lex.Discard()
	t.state = stColon
	tok := t.emit(AddKey)
	tok.Text = unquote(s.Text)
	return tok
}

func (t *Tokenizer) colon() Token {
	s := t.lex.Peek()
	switch {
	case s.IsOp(':'):
		t.lex.Discard()
		return t.value()
	case s.Kind == End:
		return t.failEOF(s, `":"`)
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.failf(s, `expected ":", found %v`, s)
	}
}

func (t *Tokenizer) endProperty() Token {
	tok := t.emit(EndProperty)
	t.pop()
	t.state = t.top().resume
	return tok
}

func (t *Tokenizer) endObject() Token {
	t.lex.Discard()
	tok := t.emit(EndObject)
	t.pop()
	t.open--
	t.state = t.top().resume
	return tok
}

func (t *Tokenizer) beginArray(s Scan) Token {
	if t.maxDepth > 0 && t.open >= t.maxDepth {
		return t.failf(s, "nesting depth exceeds %d", t.maxDepth)
	}
	t.lex.Discard()
	t.open++
	t.push(InArray, stElement)
	t.state = stArray
	return t.emit(StartArray)
}

func (t *Tokenizer) array() Token {
	s := t.lex.Peek()
	switch {
	case s.IsOp(']'):
		return t.endArray()
	case s.Kind == End:
		return t.failEOF(s, `value or "]"`)
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.startItem()
	}
}

func (t *Tokenizer) element() Token {
	s := t.lex.Peek()
	switch {
	case s.IsOp(','):
		t.lex.Discard()
		t.state = stItem
		return t.item()
	case s.IsOp(']'):
		return t.endArray()
	case s.Kind == End:
		return t.failEOF(s, `"," or "]"`)
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.failf(s, `expected "," or "]", found %v`, s)
	}
}

func (t *Tokenizer) item() Token {
	s := t.lex.Peek()
	switch {
	case s.IsOp(']') && t.tcomma:
		return t.endArray()
	case s.IsOp(']'):
		return t.failf(s, `expected value, found %v`, s)
	case s.Kind == End:
		return t.failEOF(s, "value")
	case s.Kind == Error:
		return t.fail(s)
	default:
		return t.startItem()
	}
}

func (t *Tokenizer) startItem() Token {
	t.push(InItem, stEndItem)
	t.state = stItemValue
	return t.emit(StartItem)
}

func (t *Tokenizer) endItem() Token {
	tok := t.emit(EndItem)
	t.pop()
	t.state = t.top().resume
	return tok
}

func (t *Tokenizer) endArray() Token {
	t.lex.Discard()
	tok := t.emit(EndArray)
	t.pop()
	t.open--
	t.state = t.top().resume
	return tok
}

func (t *Tokenizer) top() frame { return t.stk[len(t.stk)-1] }

func (t *Tokenizer) push(ctx Context, resume state) {
	t.stk = append(t.stk, frame{ctx: ctx, resume: resume})
	t.snap = nil
}

func (t *Tokenizer) pop() {
	t.stk = t.stk[:len(t.stk)-1]
	t.snap = nil
}

// snapshot returns the current context stack, ordered from the root. The
// result is shared by all tokens emitted between changes to the stack.
func (t *Tokenizer) snapshot() []Context {
	if t.snap == nil {
		t.snap = make([]Context, len(t.stk))
		for i, f := range t.stk {
			t.snap[i] = f.ctx
		}
	}
	return t.snap
}

func (t *Tokenizer) emit(kind Kind) Token {
	return Token{Kind: kind, Context: t.snapshot()}
}

// fail puts t into its error state for the Error lexeme s.
func (t *Tokenizer) fail(s Scan) Token { return t.setError(s.Span.Pos, s.Text) }

// failf puts t into its error state with a message about lexeme s.
func (t *Tokenizer) failf(s Scan, msg string, args ...any) Token {
	return t.setError(s.Span.Pos, fmt.Sprintf(msg, args...))
}

// failEOF puts t into its error state for a premature end of input.
func (t *Tokenizer) failEOF(s Scan, want string) Token {
	return t.failf(s, "unexpected end of input, expected %s", want)
}

func (t *Tokenizer) setError(pos int, msg string) Token {
	err := &SyntaxError{Offset: pos, Location: t.lex.LineCol(pos), Message: msg}
	t.push(InError, stError)
	t.state = stError
	t.errt = Token{
		Kind:    ErrorToken,
		Context: slices.Clip(t.snapshot()),
		Text:    err.Error(),
		Err:     err,
	}
	return t.errt
}

// unquote removes the enclosing quotation marks from a string lexeme.
func unquote(s string) string { return s[1 : len(s)-1] }
