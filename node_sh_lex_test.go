// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package climb

import "testing"

func buildShLexOverFooBarOrToto() (Node, error) {
	inner, err := NewSeq(NoID, NewStr(NoID, "foo"), noErrOr(NewOr(NoID, NewStr(NoID, "bar"), NewStr(NoID, "toto"))))
	if err != nil {
		return nil, err
	}

	return NewShLex(NoID, inner)
}

func noErrOr(o *Or, err error) Node {
	if err != nil {
		panic(err)
	}

	return o
}

// TestShLex_ReLexesQuotedWordsForChild checks that ShLex re-lexes its
// single raw token into shell-quoted words for its child, and rejects an
// unterminated quote.
func TestShLex_ReLexesQuotedWordsForChild(t *testing.T) {
	t.Parallel()

	g, err := buildShLexOverFooBarOrToto()
	if err != nil {
		t.Fatalf("buildShLexOverFooBarOrToto: %v", err)
	}

	cases := []struct {
		tokens TokenVector
		want   int
	}{
		{TokenVector{"foo bar"}, 1},
		{TokenVector{`  'foo' "bar"`}, 1},
		{TokenVector{"foo toto bar'"}, NoMatch},
	}

	for _, tc := range cases {
		_, n, err := Parse(g, tc.tokens)
		if err != nil {
			t.Fatalf("Parse(%v): %v", tc.tokens, err)
		}

		if n != tc.want {
			t.Errorf("Parse(%v) = %d, want %d", tc.tokens, n, tc.want)
		}
	}

	set, err := Complete(g, TokenVector{"foo "})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got := fullStrs(set.Items())
	if !containsStr(got, "bar") || !containsStr(got, "toto") {
		t.Fatalf("Complete([\"foo \"]) = %v, want bar and toto", got)
	}

	set, err = Complete(g, TokenVector{"foo 'b"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got = fullStrs(set.Items())
	if !containsStr(got, "'bar'") {
		t.Fatalf("Complete([\"foo 'b\"]) = %v, want \"'bar'\" re-quoted", got)
	}
}

func TestShLex_ConsumesExactlyOneOuterToken(t *testing.T) {
	t.Parallel()

	g, err := NewShLex(NoID, NewStr(NoID, "foo"))
	if err != nil {
		t.Fatalf("NewShLex: %v", err)
	}

	_, n, err := Parse(g, TokenVector{"foo", "bar"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != 1 {
		t.Errorf("Parse = %d, want 1 (ShLex never consumes more than one outer token)", n)
	}
}

func TestShLex_ChildMustConsumeEveryWord(t *testing.T) {
	t.Parallel()

	g, err := NewShLex(NoID, NewStr(NoID, "foo"))
	if err != nil {
		t.Fatalf("NewShLex: %v", err)
	}

	_, n, err := Parse(g, TokenVector{"foo bar"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != NoMatch {
		t.Errorf("Parse = %d, want NoMatch (child only consumed \"foo\", leaving \"bar\" unconsumed)", n)
	}
}
