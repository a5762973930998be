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

var subsetNodeType = RegisterNodeType(&NodeType{
	Name: "subset",
	Schema: []SchemaEntry{
		{Key: "children", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
	},
})

// Subset matches its children in any order, each at most once, searching
// for the permutation that maximizes the number of children matched —
// breaking ties by total tokens consumed, then by declaration order (e.g.
// a set of command flags that may appear in any order). It never itself
// fails; an input matching none of the children simply yields a subset of
// length 0.
type Subset struct {
	nodeBase
	leafN
}

// NewSubset builds a Subset over the given children.
func NewSubset(id string, children ...Node) (*Subset, error) {
	s := &Subset{}
	s.typ = subsetNodeType
	s.SetID(id)

	for _, c := range children {
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add appends a child to the subset.
func (s *Subset) Add(c Node) error {
	if err := checkSelfCycle(s, c); err != nil {
		return err
	}

	s.children = append(s.children, c)

	return nil
}

func (s *Subset) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	used := make([]bool, len(s.children))

	_, length, order, err := s.bestPermutation(pn, used, tokens)
	if err != nil {
		return NoMatch, err
	}

	remaining := tokens

	for _, idx := range order {
		n, err := ParseChild(s.children[idx], pn, remaining)
		if err != nil {
			return NoMatch, err
		}

		remaining = remaining.Slice(n)
	}

	return length, nil
}

// bestPermutation tries every still-unused child against the current
// slice, recurses on the rest, and keeps whichever choice maximizes
// (matched count, tokens consumed), first-found winning ties. It uses pn
// purely as scratch space for trial parses, detaching each one
// immediately after reading its length — the caller replays the winning
// order for real once the search is done.
func (s *Subset) bestPermutation(pn *ParseNode, used []bool, tokens TokenVector) (count, length int, order []int, err error) {
	bestCount, bestLength := -1, 0

	var bestOrder []int

	for i, c := range s.children {
		if used[i] {
			continue
		}

		n, err := ParseChild(c, pn, tokens)
		if err != nil {
			return 0, 0, nil, err
		}

		if n == NoMatch {
			continue
		}

		pn.Children = pn.Children[:len(pn.Children)-1]

		used[i] = true
		subCount, subLength, subOrder, err := s.bestPermutation(pn, used, tokens.Slice(n))
		used[i] = false

		if err != nil {
			return 0, 0, nil, err
		}

		if 1+subCount > bestCount || (1+subCount == bestCount && n+subLength > bestLength) {
			bestCount = 1 + subCount
			bestLength = n + subLength
			bestOrder = append([]int{i}, subOrder...)
		}
	}

	if bestCount < 0 {
		return 0, 0, nil, nil
	}

	return bestCount, bestLength, bestOrder, nil
}

// completeSelf gathers completions from every unused child against the
// current tokens, plus, for any unused child that fully
// matches a prefix, completions from the remaining unused children (in any
// order, hence trying each as the one consumed next) against the
// remainder. As with Seq (node_seq.go), the prefix-length search includes
// zero-length full matches so an optional-shaped child doesn't block the
// rest of the subset from completing.
func (s *Subset) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	scratch := &ParseNode{Node: s, Parent: trial}
	if trial != nil {
		scratch.depth = trial.depth + 1
	}

	used := make([]bool, len(s.children))

	return s.completeRec(cs, scratch, tokens, used)
}

func (s *Subset) completeRec(cs *CompleteState, scratch *ParseNode, tokens TokenVector, used []bool) error {
	for i, c := range s.children {
		if used[i] {
			continue
		}

		if err := CompleteChild(c, cs, scratch, tokens); err != nil {
			return err
		}
	}

	for i, c := range s.children {
		if used[i] {
			continue
		}

		for j := 0; j <= tokens.Len(); j++ {
			before := len(scratch.Children)

			length, err := ParseChild(c, scratch, tokens.Take(j))
			if err != nil {
				return err
			}

			if length == j {
				used[i] = true
				err = s.completeRec(cs, scratch, tokens.Slice(j), used)
				used[i] = false
			}

			scratch.Children = scratch.Children[:before]

			if err != nil {
				return err
			}
		}
	}

	return nil
}
