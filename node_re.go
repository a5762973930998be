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
	"fmt"
	"regexp"
)

var reNodeType = RegisterNodeType(&NodeType{
	Name: "re",
	Schema: []SchemaEntry{
		{Key: "pattern", Type: ValueString, Required: true},
	},
})

// Re matches a single token against a regular expression. No third-party
// regex engine appears anywhere in the retrieval pack, and stdlib
// regexp/RE2 is the idiomatic choice across the Go ecosystem for this —
// recorded in DESIGN.md as the one deliberately stdlib-only piece of the
// leaf set.
type Re struct {
	nodeBase
	leaf0

	pattern string
	re      *regexp.Regexp
}

// NewRe compiles pattern and builds a Re node. It returns a *ResourceError
// if pattern fails to compile.
func NewRe(id, pattern string) (*Re, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Debug("re pattern failed to compile", "id", id, "pattern", pattern, "error", err)

		return nil, &ResourceError{Op: "compiling re pattern", Err: err}
	}

	n := &Re{pattern: pattern, re: re}
	n.typ = reNodeType
	n.SetID(id)

	return n, nil
}

func (n *Re) parseSelf(_ *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	tok := tokens.At(0)

	loc := n.re.FindStringIndex(tok)
	if loc == nil || loc[0] != 0 || loc[1] != len(tok) {
		return NoMatch, nil
	}

	return 1, nil
}

// completeSelf can't enumerate the strings its pattern accepts, so like
// Int it always offers one Unknown candidate.
func (n *Re) completeSelf(cs *CompleteState, _ *ParseNode, tokens TokenVector) error {
	start := ""
	if tokens.Len() > 0 {
		start = tokens.At(0)
	}

	cs.emit(NewUnknownItem(n, start))

	return nil
}

func (n *Re) String() string {
	return fmt.Sprintf("re(%s)", n.pattern)
}
