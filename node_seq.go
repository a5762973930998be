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

var seqNodeType = RegisterNodeType(&NodeType{
	Name: "seq",
	Schema: []SchemaEntry{
		{Key: "children", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
	},
})

// Seq matches its children in order against successive suffixes of the
// input, consuming their total length. Any child returning NOMATCH fails
// the whole Seq; zero children match zero tokens.
type Seq struct {
	nodeBase
	leafN
}

// NewSeq builds a Seq over the given children, in order.
func NewSeq(id string, children ...Node) (*Seq, error) {
	s := &Seq{}
	s.typ = seqNodeType
	s.SetID(id)

	for _, c := range children {
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add appends a child to the end of the sequence.
func (s *Seq) Add(c Node) error {
	if err := checkSelfCycle(s, c); err != nil {
		return err
	}

	s.children = append(s.children, c)

	return nil
}

func (s *Seq) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	total := 0
	remaining := tokens

	for _, c := range s.children {
		n, err := ParseChild(c, pn, remaining)
		if err != nil {
			return NoMatch, err
		}

		if n == NoMatch {
			pn.Children = nil

			return NoMatch, nil
		}

		total += n
		remaining = remaining.Slice(n)
	}

	return total, nil
}

// completeSelf's lookahead loop over prefix lengths starts at 0, not 1: a
// child that fully matches zero tokens (an Option that declines, a
// Many(0, …), Empty) must still let completion continue into the rest of
// the sequence — otherwise "foo [toto] bar" would never offer "bar" after
// an unmatched optional "toto", since nothing would advance the sequence
// past it. (Many's own internal lookahead, in contrast, must start at 1 to
// guarantee termination — see node_many.go.)
func (s *Seq) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	scratch := &ParseNode{Node: s, Parent: trial}
	if trial != nil {
		scratch.depth = trial.depth + 1
	}

	return completeSeqChildren(s.children, cs, scratch, tokens)
}

func completeSeqChildren(children []Node, cs *CompleteState, scratch *ParseNode, tokens TokenVector) error {
	if len(children) == 0 {
		return nil
	}

	first, rest := children[0], children[1:]

	if err := CompleteChild(first, cs, scratch, tokens); err != nil {
		return err
	}

	for i := 0; i <= tokens.Len(); i++ {
		before := len(scratch.Children)

		length, err := ParseChild(first, scratch, tokens.Take(i))
		if err != nil {
			return err
		}

		if length == i {
			err = completeSeqChildren(rest, cs, scratch, tokens.Slice(i))
		}

		scratch.Children = scratch.Children[:before]

		if err != nil {
			return err
		}
	}

	return nil
}
