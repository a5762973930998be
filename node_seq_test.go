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

func buildFooOptTotoBar() Node {
	opt, err := NewOption(NoID, NewStr(NoID, "toto"))
	if err != nil {
		panic(err)
	}

	seq, err := NewSeq(NoID, NewStr(NoID, "foo"), opt, NewStr(NoID, "bar"))
	if err != nil {
		panic(err)
	}

	return seq
}

// TestSeq_OptionalMiddleElement exercises parse and completion of a seq
// with an optional element in the middle: "foo [toto] bar".
func TestSeq_OptionalMiddleElement(t *testing.T) {
	t.Parallel()

	g := buildFooOptTotoBar()

	cases := []struct {
		tokens TokenVector
		want   int
	}{
		{TokenVector{"foo", "bar"}, 2},
		{TokenVector{"foo", "toto", "bar"}, 3},
		{TokenVector{"foo"}, NoMatch},
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

	set, err := Complete(g, TokenVector{"foo", ""})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got := fullStrs(set.Items())
	if !containsStr(got, "bar") || !containsStr(got, "toto") {
		t.Fatalf("Complete([foo, \"\"]) = %v, want both \"bar\" and \"toto\"", got)
	}

	set, err = Complete(g, TokenVector{"foo", "t"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got = fullStrs(set.Items())
	if len(got) != 1 || got[0] != "toto" {
		t.Fatalf("Complete([foo, t]) = %v, want only \"toto\"", got)
	}
}

func TestSeq_ZeroChildrenMatchesEmpty(t *testing.T) {
	t.Parallel()

	g, err := NewSeq(NoID)
	if err != nil {
		t.Fatalf("NewSeq: %v", err)
	}

	_, n, err := Parse(g, TokenVector{"anything"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != 0 {
		t.Errorf("Parse = %d, want 0 for an empty Seq", n)
	}
}

func TestSeq_BacktracksDetachedChildrenOnFailure(t *testing.T) {
	t.Parallel()

	g, err := NewSeq(NoID, NewStr(NoID, "foo"), NewStr(NoID, "bar"))
	if err != nil {
		t.Fatalf("NewSeq: %v", err)
	}

	// "foo" matches the first child, but there's no second token for "bar":
	// the whole Seq must report NoMatch with no partial children retained.
	pn, n, err := Parse(g, TokenVector{"foo"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != NoMatch || pn != nil {
		t.Fatalf("Parse = (%v, %d), want (nil, NoMatch)", pn, n)
	}
}
