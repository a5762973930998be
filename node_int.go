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

import "strconv"

var intNodeType = RegisterNodeType(&NodeType{
	Name: "int",
	Schema: []SchemaEntry{
		{Key: "min", Type: ValueInt64},
		{Key: "max", Type: ValueInt64},
		{Key: "base", Type: ValueInt64},
	},
})

// Int matches a single token that parses as a base-N integer within
// [min, max] inclusive. Recovered from original_source/include/ecoli/node_int.h.
// A value parsing successfully but outside [min, max] is a NOMATCH, not a
// configuration error: the node simply declines to match, same as any
// other failed leaf.
type Int struct {
	nodeBase
	leaf0

	min, max int64
	base     int
}

// NewInt builds an Int node. base follows strconv.ParseInt conventions (0
// means infer from a 0x/0o/0b prefix, defaulting to decimal).
func NewInt(id string, minV, maxV int64, base int) *Int {
	n := &Int{min: minV, max: maxV, base: base}
	n.typ = intNodeType
	n.SetID(id)

	return n
}

func (n *Int) parseSelf(_ *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	v, err := strconv.ParseInt(tokens.At(0), n.base, 64)
	if err != nil {
		return NoMatch, nil
	}

	if v < n.min || v > n.max {
		return NoMatch, nil
	}

	return 1, nil
}

// completeSelf can't enumerate int's acceptable values, so it always
// offers a single Unknown candidate.
func (n *Int) completeSelf(cs *CompleteState, _ *ParseNode, tokens TokenVector) error {
	start := ""
	if tokens.Len() > 0 {
		start = tokens.At(0)
	}

	cs.emit(NewUnknownItem(n, start))

	return nil
}
