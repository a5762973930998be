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

import "regexp"

// ReLexPattern is one entry of a ReLex's ordered pattern list: keep false
// marks a pattern (e.g. whitespace) whose matched text is discarded rather
// than becoming a token.
type ReLexPattern struct {
	Pattern string
	Keep    bool

	re *regexp.Regexp
}

var reLexNodeType = RegisterNodeType(&NodeType{
	Name: "re_lex",
	Schema: []SchemaEntry{
		{Key: "patterns", Type: ValueList, Sub: []SchemaEntry{{Type: ValueString}}},
		{Key: "child", Type: ValueNode, Required: true},
	},
})

// ReLex tokenizes its single input token by repeatedly trying each
// configured pattern, in order, anchored at the current position; the
// first match wins. A position where no pattern matches is a hard parse
// error, not a NOMATCH — an re_lex is a lexer specification bug, not a
// grammar that simply declined.
type ReLex struct {
	nodeBase
	leaf1

	patterns []ReLexPattern
}

// NewReLex compiles patterns (tried in order at each position) and builds
// a ReLex wrapping child.
func NewReLex(id string, child Node, patterns []ReLexPattern) (*ReLex, error) {
	compiled := make([]ReLexPattern, len(patterns))

	for i, p := range patterns {
		re, err := regexp.Compile(`\A(?:` + p.Pattern + `)`)
		if err != nil {
			log.Debug("re_lex pattern failed to compile", "id", id, "pattern", p.Pattern, "error", err)

			return nil, &ResourceError{Op: "compiling re_lex pattern", Err: err}
		}

		compiled[i] = ReLexPattern{Pattern: p.Pattern, Keep: p.Keep, re: re}
	}

	r := &ReLex{patterns: compiled}
	r.typ = reLexNodeType
	r.SetID(id)
	r.child = child

	if err := checkSelfCycle(r, child); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *ReLex) tokenize(text string) ([]string, error) {
	var words []string

	for len(text) > 0 {
		matched := false

		for _, p := range r.patterns {
			loc := p.re.FindStringIndex(text)
			if loc == nil {
				continue
			}

			if p.Keep {
				words = append(words, text[:loc[1]])
			}

			text = text[loc[1]:]
			matched = true

			break
		}

		if !matched {
			return nil, &ResourceError{Op: "re_lex tokenizing", Err: errNoPatternMatch}
		}
	}

	return words, nil
}

func (r *ReLex) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	words, err := r.tokenize(tokens.At(0))
	if err != nil {
		return NoMatch, err
	}

	n, err := ParseChild(r.child, pn, TokenVector(words))
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

// completeSelf never tries to invert re_lex's patterns into candidate
// strings, so it always offers a single Unknown item.
func (r *ReLex) completeSelf(cs *CompleteState, _ *ParseNode, tokens TokenVector) error {
	start := ""
	if tokens.Len() > 0 {
		start = tokens.At(0)
	}

	cs.emit(NewUnknownItem(r, start))

	return nil
}
