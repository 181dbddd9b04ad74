// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"

	"go4.org/mem"
)

// ScanKind is the kind of a lexeme in the JSON grammar.
type ScanKind byte

// Constants defining the valid ScanKind values.
const (
	End         ScanKind = iota // end of input
	Error                       // malformed input
	Operator                    // one of { } [ ] , :
	Keyword                     // true, false, or null
	StringConst                 // quoted string
	IntConst                    // number: integer with no fraction
	FloatConst                  // number with a fraction
)

var scanKindStr = [...]string{
	End:         "end of input",
	Error:       "invalid input",
	Operator:    "operator",
	Keyword:     "keyword",
	StringConst: "string",
	IntConst:    "integer",
	FloatConst:  "number",
}

func (k ScanKind) String() string {
	v := int(k)
	if v >= len(scanKindStr) {
		return scanKindStr[Error]
	}
	return scanKindStr[v]
}

// A Scan is a single raw lexeme reported by a Lexer.
type Scan struct {
	Kind ScanKind
	Span Span

	// Text is the undecoded text of the lexeme. String constants include
	// their quotation marks. For an Error, Text is a diagnostic message.
	Text string
}

// IsOp reports whether s is the operator op.
func (s Scan) IsOp(op byte) bool {
	return s.Kind == Operator && len(s.Text) == 1 && s.Text[0] == op
}

// IsKeyword reports whether s is the keyword word.
func (s Scan) IsKeyword(word string) bool { return s.Kind == Keyword && s.Text == word }

// String returns a human-readable label for s, suitable for diagnostics.
func (s Scan) String() string {
	switch s.Kind {
	case Operator:
		return fmt.Sprintf("%q", s.Text)
	case Keyword:
		return s.Text
	default:
		return s.Kind.String()
	}
}

// A Lexer reads raw lexemes from an in-memory input. Each call to Next
// advances the lexer past one lexeme; at the end of the input Next returns a
// Scan of kind End. Malformed input yields a Scan of kind Error, and does not
// advance the lexer.
//
// A Lexer is not safe for concurrent use by multiple goroutines.
type Lexer struct {
	src mem.RO
	pos int
}

// NewLexer constructs a lexer that consumes the contents of src.
func NewLexer(src string) *Lexer { return &Lexer{src: mem.S(src)} }

// NewLexerBytes constructs a lexer that consumes the contents of src.
// The caller must not modify src while the lexer is in use.
func NewLexerBytes(src []byte) *Lexer { return &Lexer{src: mem.B(src)} }

// Next reads and returns the next lexeme.
func (lx *Lexer) Next() Scan {
	s, end := lx.scan(lx.pos)
	lx.pos = end
	return s
}

// Peek returns the next lexeme without consuming it.
func (lx *Lexer) Peek() Scan {
	s, _ := lx.scan(lx.pos)
	return s
}

// Discard consumes and drops the next lexeme.
func (lx *Lexer) Discard() { lx.Next() }

// Offset reports the current byte offset of the lexer in its input.
func (lx *Lexer) Offset() int { return lx.pos }

// LineCol reports the line and column of the given byte offset of the input.
func (lx *Lexer) LineCol(pos int) LineCol { return lineColAt(lx.src, pos) }

// text returns a view of the input spanned by s.
func (lx *Lexer) text(s Scan) mem.RO { return lx.src.Slice(s.Span.Pos, s.Span.End) }

// scan reads a single lexeme beginning at or after pos, and returns the
// lexeme along with the offset just past its end. It does not modify lx.
func (lx *Lexer) scan(pos int) (Scan, int) {
	pos = lx.skipSpace(pos)
	if pos >= lx.src.Len() {
		return Scan{Kind: End, Span: Span{Pos: pos, End: pos}}, pos
	}

	switch ch := lx.src.At(pos); {
	case isOperator(ch):
		return lx.lexeme(Operator, pos, pos+1)
	case ch == '"':
		return lx.scanString(pos)
	case isNumStart(ch):
		return lx.scanNumber(pos)
	case ch == 't':
		return lx.scanKeyword(pos, "true")
	case ch == 'f':
		return lx.scanKeyword(pos, "false")
	case ch == 'n':
		return lx.scanKeyword(pos, "null")
	default:
		r, _ := mem.DecodeRune(lx.src.SliceFrom(pos))
		return lx.errorf(pos, "unexpected %q", r)
	}
}

func (lx *Lexer) skipSpace(pos int) int {
	for pos < lx.src.Len() && isSpace(lx.src.At(pos)) {
		pos++
	}
	return pos
}

func (lx *Lexer) lexeme(kind ScanKind, pos, end int) (Scan, int) {
	return Scan{
		Kind: kind,
		Span: Span{Pos: pos, End: end},
		Text: lx.src.Slice(pos, end).StringCopy(),
	}, end
}

// errorf returns an Error lexeme at pos. The end offset is pos, so that
// committing an error does not advance the input.
func (lx *Lexer) errorf(pos int, msg string, args ...any) (Scan, int) {
	return Scan{
		Kind: Error,
		Span: Span{Pos: pos, End: pos},
		Text: fmt.Sprintf(msg, args...),
	}, pos
}

// scanString scans a string constant whose open quote is at pos. The text of
// the string is taken verbatim up to the next quotation mark; backslashes
// have no special meaning.
func (lx *Lexer) scanString(pos int) (Scan, int) {
	i := mem.IndexByte(lx.src.SliceFrom(pos+1), '"')
	if i < 0 {
		return lx.errorf(pos, "unterminated string")
	}
	return lx.lexeme(StringConst, pos, pos+i+2)
}

// scanNumber scans a numeric constant beginning at pos, of the form
// -? digit* (. digit*)? with at least one digit.
func (lx *Lexer) scanNumber(pos int) (Scan, int) {
	n := lx.src.Len()
	i, nd := pos, 0
	if lx.src.At(i) == '-' {
		i++
	}
	for i < n && isDigit(lx.src.At(i)) {
		i++
		nd++
	}
	kind := IntConst
	if i < n && lx.src.At(i) == '.' {
		kind = FloatConst
		i++
		for i < n && isDigit(lx.src.At(i)) {
			i++
			nd++
		}
	}
	if nd == 0 {
		return lx.errorf(pos, "invalid number %q", lx.src.Slice(pos, i).StringCopy())
	}
	if i < n && (lx.src.At(i) == 'e' || lx.src.At(i) == 'E') {
		return lx.errorf(pos, "scientific notation is not supported")
	}
	return lx.lexeme(kind, pos, i)
}

// scanKeyword matches the keyword word character by character beginning at
// pos. Any mismatch reports an error for the whole lexeme.
func (lx *Lexer) scanKeyword(pos int, word string) (Scan, int) {
	want := mem.S(word)
	rest := lx.src.SliceFrom(pos)
	if mem.HasPrefix(rest, want) {
		return lx.lexeme(Keyword, pos, pos+want.Len())
	}
	i := 0
	for i < want.Len() && i < rest.Len() && rest.At(i) == want.At(i) {
		i++
	}
	if i == rest.Len() {
		return lx.errorf(pos, "unexpected end of input in %q", word)
	}
	return lx.errorf(pos, "unknown constant %q, want %q", rest.SliceTo(i+1).StringCopy(), word)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isOperator(ch byte) bool {
	switch ch {
	case '{', '}', '[', ']', ',', ':':
		return true
	}
	return false
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
