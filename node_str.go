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

import "strings"

var strNodeType = RegisterNodeType(&NodeType{
	Name: "str",
	Schema: []SchemaEntry{
		{Key: "literal", Description: "the exact token to match", Type: ValueString, Required: true},
	},
})

// Str matches a single token against an exact literal.
type Str struct {
	nodeBase
	leaf0

	literal string
}

// NewStr builds a Str node matching literal exactly.
func NewStr(id, literal string) *Str {
	s := &Str{literal: literal}
	s.typ = strNodeType
	s.SetID(id)

	return s
}

// Literal returns the exact string this node matches.
func (s *Str) Literal() string {
	return s.literal
}

func (s *Str) parseSelf(_ *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	if tokens.At(0) == s.literal {
		return 1, nil
	}

	return NoMatch, nil
}

// completeSelf treats an empty slice as completing to the literal in
// full; a single token completes only if it is a prefix of the literal.
// A slice of two or more tokens yields no candidate: the token being
// completed is the last one, and Str, which consumes exactly one token,
// is not positioned on it. A compound caller (Seq) hands it the whole
// remaining slice and completes the later tokens through later children.
func (s *Str) completeSelf(cs *CompleteState, _ *ParseNode, tokens TokenVector) error {
	if tokens.Len() == 0 {
		cs.emit(NewFullItem(s, "", s.literal))

		return nil
	}

	if tokens.Len() > 1 {
		return nil
	}

	start := tokens.At(0)
	if strings.HasPrefix(s.literal, start) {
		cs.emit(NewFullItem(s, start, s.literal))
	}

	return nil
}
