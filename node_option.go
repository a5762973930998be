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

var optionNodeType = RegisterNodeType(&NodeType{
	Name: "option",
	Schema: []SchemaEntry{
		{Key: "child", Type: ValueNode, Required: true},
	},
})

// Option matches its child if possible, and otherwise succeeds with length
// 0 and no child attached to the parse tree. It is equivalent to
// Many(child, 0, 1) but kept as its own node since that is by far the most
// common shape and reads more clearly in a grammar.
type Option struct {
	nodeBase
	leaf1
}

// NewOption builds an Option wrapping child.
func NewOption(id string, child Node) (*Option, error) {
	o := &Option{}
	o.typ = optionNodeType
	o.SetID(id)
	o.child = child

	if err := checkSelfCycle(o, child); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Option) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	n, err := ParseChild(o.child, pn, tokens)
	if err != nil {
		return NoMatch, err
	}

	if n == NoMatch {
		return 0, nil
	}

	return n, nil
}

// completeSelf simply forwards to the child: an Option offers exactly the
// completions its child would, nothing more. This falls out of Seq's
// lookahead loop treating a declined Option as a zero-length full match —
// see node_seq.go.
func (o *Option) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	return CompleteChild(o.child, cs, trial, tokens)
}
