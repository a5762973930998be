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

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	g := NewStr(NoID, "foo")

	pn, n, err := Parse(g, TokenVector{"foo", "bar"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != 1 {
		t.Errorf("Parse length = %d, want 1", n)
	}

	if pn.Node != Node(g) {
		t.Error("ParseNode.Node does not point at the grammar node that matched")
	}

	if pn.Parent != nil {
		t.Error("root ParseNode should have a nil Parent")
	}
}

func TestParse_NoMatch(t *testing.T) {
	t.Parallel()

	g := NewStr(NoID, "foo")

	pn, n, err := Parse(g, TokenVector{"bar"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != NoMatch || pn != nil {
		t.Errorf("Parse(bar) = (%v, %d), want (nil, NoMatch)", pn, n)
	}
}

func TestParse_NeverExceedsInputLength(t *testing.T) {
	t.Parallel()

	g, err := NewMany(NoID, NewStr(NoID, "x"), 0, 0)
	if err != nil {
		t.Fatalf("NewMany: %v", err)
	}

	_, n, err := Parse(g, TokenVector{"x", "x", "x"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n < 0 || n > 3 {
		t.Errorf("Parse length = %d, want in [0, 3]", n)
	}
}

func TestGetRoot(t *testing.T) {
	t.Parallel()

	inner := NewStr(NoID, "bar")
	outer, err := NewSeq(NoID, NewStr(NoID, "foo"), inner)
	if err != nil {
		t.Fatalf("NewSeq: %v", err)
	}

	root, n, err := Parse(outer, TokenVector{"foo", "bar"})
	if err != nil || n != 2 {
		t.Fatalf("Parse: n=%d err=%v", n, err)
	}

	innerPN := root.Children[1]
	if GetRoot(innerPN) != root {
		t.Error("GetRoot did not climb back to the top ParseNode")
	}
}

func TestCountOccurrences(t *testing.T) {
	t.Parallel()

	flag := NewStr(NoID, "foo")

	g, err := NewMany(NoID, flag, 0, 0)
	if err != nil {
		t.Fatalf("NewMany: %v", err)
	}

	root, n, err := Parse(g, TokenVector{"foo", "foo", "foo"})
	if err != nil || n != 3 {
		t.Fatalf("Parse: n=%d err=%v", n, err)
	}

	if got := CountOccurrences(root, flag); got != 3 {
		t.Errorf("CountOccurrences = %d, want 3", got)
	}

	other := NewStr(NoID, "bar")
	if got := CountOccurrences(root, other); got != 0 {
		t.Errorf("CountOccurrences(other) = %d, want 0", got)
	}

	if got := CountOccurrences(nil, flag); got != 0 {
		t.Errorf("CountOccurrences(nil, ...) = %d, want 0", got)
	}
}

func TestParseChild_RecursionDepthGuard(t *testing.T) {
	// Not run in parallel: it temporarily lowers the package-wide recursion
	// bound.
	orig := maxRecursionDepth
	SetMaxRecursionDepth(64)

	defer SetMaxRecursionDepth(orig)

	// A Seq whose sole child is a Bypass routed straight back to the Seq
	// itself never terminates on its own: it's exactly the unbroken-cycle
	// case the recursion bound exists to catch.
	bypass := NewBypass(NoID)

	seq, err := NewSeq(NoID, bypass)
	if err != nil {
		t.Fatalf("NewSeq: %v", err)
	}

	bypass.Set(seq)

	_, _, err = Parse(seq, TokenVector{"x"})
	if err == nil {
		t.Fatal("expected an error from the unbroken grammar cycle")
	}
}
