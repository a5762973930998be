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

// Package climb composes interactive command-line grammars. A program
// builds a tree of [Node] values describing the command lines it accepts,
// then asks that tree two questions about any [TokenVector]: does Parse
// accept it, and what can Complete offer next.
package climb

// TokenVector is an ordered, immutable sequence of tokens — the unit every
// Parse and Complete call consumes. It is a thin wrapper over a string
// slice rather than a fully opaque type: every compound node narrows it by
// reslicing, never by mutating the backing array, so two TokenVectors may
// safely share storage.
type TokenVector []string

// Len returns the number of tokens.
func (tv TokenVector) Len() int {
	return len(tv)
}

// At returns the token at position i.
func (tv TokenVector) At(i int) string {
	return tv[i]
}

// Slice returns the tokens from position i to the end.
func (tv TokenVector) Slice(i int) TokenVector {
	return tv[i:]
}

// Take returns the first n tokens.
func (tv TokenVector) Take(n int) TokenVector {
	return tv[:n]
}
