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

func TestOption_MatchesChildWhenPresent(t *testing.T) {
	t.Parallel()

	g, err := NewOption(NoID, NewStr(NoID, "toto"))
	if err != nil {
		t.Fatalf("NewOption: %v", err)
	}

	root, n, err := Parse(g, TokenVector{"toto"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != 1 {
		t.Errorf("Parse = %d, want 1", n)
	}

	if len(root.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(root.Children))
	}
}

func TestOption_SucceedsWithZeroWhenChildDeclines(t *testing.T) {
	t.Parallel()

	g, err := NewOption(NoID, NewStr(NoID, "toto"))
	if err != nil {
		t.Fatalf("NewOption: %v", err)
	}

	root, n, err := Parse(g, TokenVector{"other"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != 0 {
		t.Errorf("Parse = %d, want 0", n)
	}

	if len(root.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0 (declined child not attached)", len(root.Children))
	}
}

func TestOption_CompletionForwardsToChild(t *testing.T) {
	t.Parallel()

	g, err := NewOption(NoID, NewStr(NoID, "toto"))
	if err != nil {
		t.Fatalf("NewOption: %v", err)
	}

	set, err := Complete(g, TokenVector{"to"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got := fullStrs(set.Items())
	if len(got) != 1 || got[0] != "toto" {
		t.Fatalf("Complete([to]) = %v, want only \"toto\"", got)
	}
}
