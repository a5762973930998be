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

var orNodeType = RegisterNodeType(&NodeType{
	Name: "or",
	Schema: []SchemaEntry{
		{Key: "children", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
	},
})

// Or tries its children in order and takes the first one that matches. It
// never backtracks into a later child once an earlier one succeeds, even
// if that would let a sibling in an enclosing Seq match.
type Or struct {
	nodeBase
	leafN
}

// NewOr builds an Or over the given children, tried left to right.
func NewOr(id string, children ...Node) (*Or, error) {
	o := &Or{}
	o.typ = orNodeType
	o.SetID(id)

	for _, c := range children {
		if err := o.Add(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Add appends an alternative, tried after all existing ones.
func (o *Or) Add(c Node) error {
	if err := checkSelfCycle(o, c); err != nil {
		return err
	}

	o.children = append(o.children, c)

	return nil
}

func (o *Or) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	for _, c := range o.children {
		n, err := ParseChild(c, pn, tokens)
		if err != nil {
			return NoMatch, err
		}

		if n != NoMatch {
			return n, nil
		}
	}

	return NoMatch, nil
}

// completeSelf is the union of every child's completions against the same
// tokens — unlike parse, completion does not stop at the first
// alternative.
func (o *Or) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	for _, c := range o.children {
		if err := CompleteChild(c, cs, trial, tokens); err != nil {
			return err
		}
	}

	return nil
}
