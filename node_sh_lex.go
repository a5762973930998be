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
	"strings"

	"github.com/climb-sh/climb/internal/dslex"
)

var shLexNodeType = RegisterNodeType(&NodeType{
	Name: "sh_lex",
	Schema: []SchemaEntry{
		{Key: "child", Type: ValueNode, Required: true},
	},
})

// ShLex treats its single input token as raw shell-quoted text, tokenizes
// it, and requires its child to consume every resulting word. It always
// consumes exactly one token of the outer vector, never more, never fewer
// — the text inside it is a second, nested token vector the child fully
// owns.
type ShLex struct {
	nodeBase
	leaf1
}

// NewShLex builds a ShLex wrapping child.
func NewShLex(id string, child Node) (*ShLex, error) {
	s := &ShLex{}
	s.typ = shLexNodeType
	s.SetID(id)
	s.child = child

	if err := checkSelfCycle(s, child); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ShLex) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	words, err := dslex.ShellTokenize(tokens.At(0))
	if err != nil {
		return NoMatch, nil
	}

	n, err := ParseChild(s.child, pn, TokenVector(words))
	if err != nil {
		return NoMatch, err
	}

	if n != len(words) {
		if n != NoMatch {
			pn.Children = pn.Children[:len(pn.Children)-1]
		}

		return NoMatch, nil
	}

	return 1, nil
}

// completeSelf re-lexes tolerating a trailing unterminated quote, runs the
// child's completion over the re-lexed words, then re-wraps any newly
// produced FULL candidate in the quote character that was left open so the
// user sees a properly closed, quoted suggestion instead of a bare word.
func (s *ShLex) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	text := ""
	if tokens.Len() > 0 {
		text = tokens.At(0)
	}

	words, openQuote := dslex.ShellTokenizeTolerant(text)

	switch {
	case len(words) == 0:
		// Nothing typed at all yet: one empty word standing in for the
		// first one.
		words = []string{""}
	case openQuote == 0 && endsInBlank(text):
		// Input ends on unquoted blank space, e.g. "foo ": the user is
		// positioned at the start of a new word they haven't typed
		// anything of yet. Without this, the child never sees a slot to
		// complete and "foo " would offer nothing past "foo" itself.
		words = append(words, "")
	}

	before := cs.Set.Len()

	if err := CompleteChild(s.child, cs, trial, TokenVector(words)); err != nil {
		return err
	}

	if openQuote == 0 {
		return nil
	}

	typed := words[len(words)-1]
	rawTyped := string(openQuote) + typed

	for _, item := range cs.Set.Items()[before:] {
		if item.Type != Full {
			continue
		}

		full := string(openQuote) + item.Full + string(openQuote)
		completion := full

		if strings.HasPrefix(full, rawTyped) {
			completion = full[len(rawTyped):]
		}

		item.Full = full
		item.hasFull = true
		item.Completion = completion
		item.hasCompletion = true
		item.Display = full
	}

	return nil
}

func endsInBlank(s string) bool {
	if s == "" {
		return false
	}

	switch s[len(s)-1] {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
