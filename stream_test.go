// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestReplay(t *testing.T) {
	const input = `{"a":[1,2.5],"b":null}`
	tokens := jstream.Collect(jstream.NewTokenizer(input))

	p := jstream.Replay(tokens)
	got := jstream.Collect(p)
	if diff := cmp.Diff(tokens, got); diff != "" {
		t.Errorf("Replay (-want, +got):\n%s", diff)
	}
	if !p.Done() {
		t.Error("Done: got false after the last token")
	}
	for range 3 {
		if tok := p.Next(); tok.Kind != jstream.NoToken {
			t.Errorf("Next: got %v, want NoToken", tok)
		}
	}

	t.Run("Empty", func(t *testing.T) {
		p := jstream.Replay(nil)
		if !p.Done() {
			t.Error("Done: got false, want true")
		}
		if tok := p.Next(); tok.Kind != jstream.NoToken {
			t.Errorf("Next: got %v, want NoToken", tok)
		}
	})

	t.Run("Fragment", func(t *testing.T) {
		// A replay need not begin at a root, nor end with a terminal token.
		frag := tokens[2:4]
		got := testutil.Strings(jstream.Collect(jstream.Replay(frag)))
		want := []string{"AddKey[a]", "StartArray", "NoToken"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Fragment (-want, +got):\n%s", diff)
		}
	})
}

func TestAll(t *testing.T) {
	tz := jstream.NewTokenizer(`[true, false, null]`)

	// Stopping early leaves the remaining tokens in the producer.
	var head []jstream.Kind
	for tok := range tz.All() {
		head = append(head, tok.Kind)
		if tok.Kind == jstream.AddTrue {
			break
		}
	}
	if diff := cmp.Diff([]jstream.Kind{
		jstream.StartArray, jstream.StartItem, jstream.AddTrue,
	}, head); diff != "" {
		t.Errorf("Head (-want, +got):\n%s", diff)
	}

	rest := testutil.Kinds(jstream.Collect(tz))
	if diff := cmp.Diff([]jstream.Kind{
		jstream.EndItem,
		jstream.StartItem, jstream.AddFalse, jstream.EndItem,
		jstream.StartItem, jstream.AddNull, jstream.EndItem,
		jstream.EndArray, jstream.NoToken,
	}, rest); diff != "" {
		t.Errorf("Rest (-want, +got):\n%s", diff)
	}
}

func TestPipe(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		var got []string
		err := jstream.Pipe(jstream.NewTokenizer(`{"k":"v"}`), jstream.ConsumerFunc(func(tok jstream.Token) error {
			got = append(got, tok.String())
			return nil
		}))
		if err != nil {
			t.Fatalf("Pipe: unexpected error: %v", err)
		}
		want := []string{
			"StartObject", "StartProperty", "AddKey[k]", "AddString[v]", "EndProperty", "EndObject", "NoToken",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Pipe (-want, +got):\n%s", diff)
		}
	})

	t.Run("ConsumerError", func(t *testing.T) {
		errStop := errors.New("stop")
		var n int
		tz := jstream.NewTokenizer(`[1, 2, 3]`)
		err := jstream.Pipe(tz, jstream.ConsumerFunc(func(tok jstream.Token) error {
			n++
			if tok.Kind == jstream.AddInt && tok.Int == 2 {
				return errStop
			}
			return nil
		}))
		if !errors.Is(err, errStop) {
			t.Errorf("Pipe: got error %v, want %v", err, errStop)
		}
		if n != 6 {
			t.Errorf("Pipe: consumed %d tokens, want 6", n)
		}
		if tz.Done() {
			t.Error("Done: got true after the consumer stopped")
		}
	})

	t.Run("ErrorToken", func(t *testing.T) {
		var last jstream.Token
		err := jstream.Pipe(jstream.NewTokenizer(`[1,`), jstream.ConsumerFunc(func(tok jstream.Token) error {
			last = tok
			return nil
		}))
		if err != nil {
			t.Fatalf("Pipe: unexpected error: %v", err)
		}
		if last.Kind != jstream.ErrorToken {
			t.Errorf("Last token: got %v, want ErrorToken", last)
		}
	})
}

func TestFeed(t *testing.T) {
	tokens := jstream.Collect(jstream.NewTokenizer(`[[], {}]`))

	var got []jstream.Kind
	collect := jstream.ConsumerFunc(func(tok jstream.Token) error {
		got = append(got, tok.Kind)
		return nil
	})
	if err := jstream.Feed(collect, tokens); err != nil {
		t.Fatalf("Feed: unexpected error: %v", err)
	}
	if diff := cmp.Diff(testutil.Kinds(tokens), got); diff != "" {
		t.Errorf("Feed (-want, +got):\n%s", diff)
	}

	errObject := errors.New("no objects")
	var seen int
	err := jstream.Feed(jstream.ConsumerFunc(func(tok jstream.Token) error {
		seen++
		if tok.Kind == jstream.StartObject {
			return errObject
		}
		return nil
	}), tokens)
	if !errors.Is(err, errObject) {
		t.Errorf("Feed: got error %v, want %v", err, errObject)
	}
	if want := 7; seen != want {
		t.Errorf("Feed: delivered %d tokens, want %d", seen, want)
	}
}
