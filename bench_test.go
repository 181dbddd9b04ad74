// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/internal/testutil"
	"github.com/creachadair/jstream/query"
)

func BenchmarkTokenizer(b *testing.B) {
	input := []byte(testutil.Document(1000))
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Tokenizer", func(b *testing.B) {
		for b.Loop() {
			tz := jstream.NewTokenizerBytes(input)
			for {
				tok := tz.Next()
				if tok.Kind == jstream.NoToken {
					break
				} else if tok.Kind == jstream.ErrorToken {
					b.Fatalf("Unexpected error: %v", tok.Err)
				}
			}
		}
	})

	b.Run("Query", func(b *testing.B) {
		q := query.New("count", "summary")
		for b.Loop() {
			if err := q.Execute(jstream.NewTokenizerBytes(input)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
