// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jstream/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

var valueOpts = cmp.AllowUnexported(ast.Integer{})

func TestPath(t *testing.T) {
	v, err := ast.ParseSingle([]byte(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{true}, v, true},

		{"ArrayPos", []any{"list", 1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25}, v, true},
		{"ArrayNegRange", []any{"o", -3}, v, true},
		{"ObjPath", []any{"xyz", "d"},
			v.(ast.Object).Find("xyz").Value.(ast.Object).Find("d").Value,
			false,
		},
		{"DeepPath", []any{"list", 0, "x"}, ast.Int(1), false},

		{"FuncArray", []any{"o", testPathFunc}, ast.ToValue(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.ToValue(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatalf("Path: got %s, want error", got.JSON())
			}
			if diff := cmp.Diff(got, tc.want, valueOpts); diff != "" {
				t.Errorf("Wrong result (-got, +want):\n%s", diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	if ln, ok := v.(interface{ Len() int }); ok {
		return ast.ToValue(ln.Len()), nil
	}
	return nil, errors.New("not a thing with length")
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.String(""), `""`},
		{ast.String(`a\nb`), `"a\nb"`},
		{ast.Int(0), "0"},
		{ast.Int(-25), "-25"},
		{ast.Number(0), "0.0"},
		{ast.Number(2), "2.0"},
		{ast.Number(-0.5), "-0.5"},
		{ast.Number(3.14), "3.14"},
		{ast.Array{}, "[]"},
		{ast.Object{}, "{}"},
		{ast.Array{ast.Int(1), ast.String("two"), ast.Null{}}, `[1,"two",null]`},
		{ast.Object{
			ast.Field("a", 1),
			ast.Field("b", ast.Array{ast.Bool(true)}),
			ast.Field("c", nil),
			ast.Field("d", 0.25),
			ast.Field("e", "x"),
		}, `{"a":1,"b":[true],"c":null,"d":0.25,"e":"x"}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("JSON %T: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestObject(t *testing.T) {
	obj := ast.Object{
		ast.Field("k", "first"),
		ast.Field("m", false),
		ast.Field("k", "second"),
	}
	if diff := cmp.Diff([]string{"k", "m", "k"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
	if m := obj.Find("k"); m == nil || m.Value != ast.String("first") {
		t.Errorf("Find(k): got %v, want first member", m)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %v, want nil", m)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{"ok", ast.String("ok")},
		{17, ast.Int(17)},
		{int64(-4), ast.Int(-4)},
		{1.5, ast.Number(1.5)},
		{true, ast.Bool(true)},
		{ast.Array{}, ast.Array{}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got, valueOpts); diff != "" {
			t.Errorf("ToValue(%v) (-want, +got):\n%s", test.input, diff)
		}
	}

	mtest.MustPanic(t, func() { ast.ToValue(struct{}{}) })
	mtest.MustPanic(t, func() { ast.Field("bad", []int{1}) })
}
