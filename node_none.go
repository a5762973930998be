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

var noneNodeType = RegisterNodeType(&NodeType{Name: "none"})

// None never matches. It is the dual of Empty: a placeholder for "nothing
// is acceptable here," useful as a default in DSL-built grammars (e.g. an
// identifier the DSL couldn't resolve to a supplied child and that isn't
// meant to fall back to a literal). Grounded on original_source's "none"
// node, named but never detailed there either.
type None struct {
	nodeBase
	leaf0
}

// NewNone builds a None node.
func NewNone(id string) *None {
	n := &None{}
	n.typ = noneNodeType
	n.SetID(id)

	return n
}

func (n *None) parseSelf(_ *ParseNode, _ TokenVector) (int, error) {
	return NoMatch, nil
}

func (n *None) completeSelf(_ *CompleteState, _ *ParseNode, _ TokenVector) error {
	return nil
}
