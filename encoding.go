// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"

	"github.com/tailscale/hujson"
)

// Options are optional settings for a Tokenizer. A zero Options is ready for
// use and accepts standard JSON only.
type Options struct {
	// AllowTrailingCommas permits a comma after the last member of an object
	// or the last element of an array.
	AllowTrailingCommas bool

	// AllowComments permits JSON With Commas and Comments (JWCC). The input is
	// rewritten to standard JSON before tokenizing; comments and trailing
	// commas are replaced by whitespace, so offsets are unchanged.
	AllowComments bool

	// MaxDepth, if positive, limits the nesting depth of objects and arrays.
	MaxDepth int
}

// NewTokenizer constructs a tokenizer for src configured with o.
// If o.AllowComments is set and src is not valid JWCC, the tokenizer reports
// an ErrorToken on its first call to Next.
func (o Options) NewTokenizer(src []byte) *Tokenizer {
	var serr error
	if o.AllowComments {
		src, serr = Standardize(src)
	}
	t := NewTokenizerBytes(src)
	t.AllowTrailingCommas(o.AllowTrailingCommas)
	t.SetMaxDepth(o.MaxDepth)
	if serr != nil {
		t.setError(0, serr.Error())
	}
	return t
}

// Standardize converts a JWCC input to standard JSON, replacing comments and
// trailing commas with whitespace. The input is not modified.
func Standardize(src []byte) ([]byte, error) {
	out, err := hujson.Standardize(append([]byte(nil), src...))
	if err != nil {
		return src, fmt.Errorf("invalid JWCC input: %w", err)
	}
	return out, nil
}
