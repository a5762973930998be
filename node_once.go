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

var onceNodeType = RegisterNodeType(&NodeType{
	Name: "once",
	Schema: []SchemaEntry{
		{Key: "child", Type: ValueNode, Required: true},
	},
})

// Once allows its child to match at most one time across an entire parse
// tree, by identity. It exists for grammars where the same node instance
// is reachable through more than one path of an enclosing
// Many or Or — e.g. Many(Or(Once(verbose), Once(quiet), other-flag)) — and
// repeating a flag should be rejected rather than silently accepted twice.
type Once struct {
	nodeBase
	leaf1
}

// NewOnce builds a Once wrapping child.
func NewOnce(id string, child Node) (*Once, error) {
	o := &Once{}
	o.typ = onceNodeType
	o.SetID(id)
	o.child = child

	if err := checkSelfCycle(o, child); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Once) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	if CountOccurrences(GetRoot(pn), o.child) > 0 {
		return NoMatch, nil
	}

	return ParseChild(o.child, pn, tokens)
}

// completeSelf suppresses completions once the wrapped child has already
// matched elsewhere in the trial tree, so a repeated flag doesn't show up
// as a completion candidate the second time around.
func (o *Once) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	if trial != nil && CountOccurrences(GetRoot(trial), o.child) > 0 {
		return nil
	}

	return CompleteChild(o.child, cs, trial, tokens)
}
