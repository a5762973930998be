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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenVector_Basics(t *testing.T) {
	t.Parallel()

	tv := TokenVector{"foo", "bar", "baz"}

	if got, want := tv.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	if got, want := tv.At(1), "bar"; got != want {
		t.Errorf("At(1) = %q, want %q", got, want)
	}

	if diff := cmp.Diff(TokenVector{"bar", "baz"}, tv.Slice(1)); diff != "" {
		t.Errorf("Slice(1) (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(TokenVector{"foo", "bar"}, tv.Take(2)); diff != "" {
		t.Errorf("Take(2) (-want +got):\n%s", diff)
	}
}

func TestTokenVector_SharesStorage(t *testing.T) {
	t.Parallel()

	tv := TokenVector{"a", "b", "c"}
	sliced := tv.Slice(1)
	taken := tv.Take(2)

	// Slice and Take reslice rather than copy, so both views still observe
	// the same backing array as tv.
	if &sliced[0] != &tv[1] {
		t.Error("Slice(1) copied instead of resliced")
	}

	if &taken[0] != &tv[0] {
		t.Error("Take(2) copied instead of resliced")
	}
}
