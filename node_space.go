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

var spaceNodeType = RegisterNodeType(&NodeType{Name: "space"})

// Space matches a single token consisting entirely of blank characters
// (space or tab), and nothing else — grounded on
// original_source/src/node_space.c. It never offers completions.
type Space struct {
	nodeBase
	leaf0
}

// NewSpace builds a Space node.
func NewSpace(id string) *Space {
	s := &Space{}
	s.typ = spaceNodeType
	s.SetID(id)

	return s
}

func (s *Space) parseSelf(_ *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	tok := tokens.At(0)
	if tok == "" {
		return NoMatch, nil
	}

	for _, r := range tok {
		if r != ' ' && r != '\t' {
			return NoMatch, nil
		}
	}

	return 1, nil
}

func (s *Space) completeSelf(_ *CompleteState, _ *ParseNode, _ TokenVector) error {
	return nil
}
