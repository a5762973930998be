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

var emptyNodeType = RegisterNodeType(&NodeType{Name: "empty"})

// Empty always matches, consuming zero tokens. Useful as a DSL placeholder
// and as the base case of hand-built recursive grammars. Behavior follows
// original_source (an ecoli "empty" node that always succeeds with length
// 0).
type Empty struct {
	nodeBase
	leaf0
}

// NewEmpty builds an Empty node.
func NewEmpty(id string) *Empty {
	e := &Empty{}
	e.typ = emptyNodeType
	e.SetID(id)

	return e
}

func (e *Empty) parseSelf(_ *ParseNode, _ TokenVector) (int, error) {
	return 0, nil
}

func (e *Empty) completeSelf(_ *CompleteState, _ *ParseNode, _ TokenVector) error {
	return nil
}
