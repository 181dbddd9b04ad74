// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt computes the line and column of the given offset in src.
// Offsets past the end of src are clamped.
func lineColAt(src mem.RO, pos int) LineCol {
	pos = min(pos, src.Len())
	lc := LineCol{Line: 1}
	last := -1
	for i := 0; i < pos; i++ {
		if src.At(i) == '\n' {
			lc.Line++
			last = i
		}
	}
	lc.Column = pos - last - 1
	return lc
}

// SyntaxError describes a lexical or structural error in the input.
type SyntaxError struct {
	Offset   int     // byte offset of the offending lexeme
	Location LineCol // apparent location of the offending lexeme
	Message  string  // description of the error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}
