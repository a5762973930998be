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

var manyNodeType = RegisterNodeType(&NodeType{
	Name: "many",
	Schema: []SchemaEntry{
		{Key: "child", Type: ValueNode, Required: true},
		{Key: "min", Type: ValueInt64},
		{Key: "max", Type: ValueInt64},
	},
})

// Many repeats its child between min and max times (max == 0 means
// unbounded), consuming the sum of each repetition's length. A repetition
// that itself consumes zero tokens still counts toward min, but Many
// stops repeating immediately afterward — otherwise a
// child willing to match empty would loop forever.
type Many struct {
	nodeBase
	leaf1

	min, max int
}

// NewMany builds a Many repeating child at least min and at most max times
// (max == 0 for unbounded).
func NewMany(id string, child Node, min, max int) (*Many, error) {
	m := &Many{min: min, max: max}
	m.typ = manyNodeType
	m.SetID(id)
	m.child = child

	if err := checkSelfCycle(m, child); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Many) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	total := 0
	remaining := tokens
	count := 0

	for m.max == 0 || count < m.max {
		n, err := ParseChild(m.child, pn, remaining)
		if err != nil {
			return NoMatch, err
		}

		if n == NoMatch {
			break
		}

		count++
		total += n
		remaining = remaining.Slice(n)

		if n == 0 {
			break
		}
	}

	if count < m.min {
		pn.Children = nil

		return NoMatch, nil
	}

	return total, nil
}

// completeSelf's loop over prefix lengths, unlike Seq's, starts at 1:
// recursing at i == 0 would re-enter
// completeRec against the same remaining tokens and the same child forever,
// since nothing here shrinks the input the way Seq's moving on to the next
// child does.
func (m *Many) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	scratch := &ParseNode{Node: m, Parent: trial}
	if trial != nil {
		scratch.depth = trial.depth + 1
	}

	return m.completeRec(cs, scratch, tokens, 0)
}

func (m *Many) completeRec(cs *CompleteState, scratch *ParseNode, tokens TokenVector, count int) error {
	if m.max != 0 && count >= m.max {
		return nil
	}

	if err := CompleteChild(m.child, cs, scratch, tokens); err != nil {
		return err
	}

	for i := 1; i <= tokens.Len(); i++ {
		before := len(scratch.Children)

		length, err := ParseChild(m.child, scratch, tokens.Take(i))
		if err != nil {
			return err
		}

		if length == i {
			err = m.completeRec(cs, scratch, tokens.Slice(i), count+1)
		}

		scratch.Children = scratch.Children[:before]

		if err != nil {
			return err
		}
	}

	return nil
}
