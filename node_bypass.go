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

var bypassNodeType = RegisterNodeType(&NodeType{
	Name: "bypass",
	Schema: []SchemaEntry{
		{Key: "target", Type: ValueNode},
	},
})

// Bypass is the one sanctioned way to build a cyclic grammar: it holds its
// target indirectly, set after construction with
// [Bypass.Set], so a recursive grammar like "a sequence containing itself"
// can be wired up without [checkSelfCycle] ever seeing a direct
// self-reference. Safety against infinite recursion comes entirely from
// maxRecursionDepth in ParseChild/CompleteChild (see parsetree.go); in the
// original C implementation this also bounded a manual reference count,
// which Go's garbage collector makes unnecessary here.
type Bypass struct {
	nodeBase
	leaf1
}

// NewBypass builds a Bypass with no target. Call Set before using it.
func NewBypass(id string) *Bypass {
	b := &Bypass{}
	b.typ = bypassNodeType
	b.SetID(id)

	return b
}

// Set assigns the node this Bypass defers to. It may be called after the
// target itself (directly or indirectly) already contains this Bypass,
// which is exactly how a cycle gets built.
func (b *Bypass) Set(target Node) {
	b.child = target
}

// Target returns the node this Bypass currently defers to, or nil.
func (b *Bypass) Target() Node {
	return b.child
}

func (b *Bypass) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	if b.child == nil {
		return NoMatch, &ArgError{Msg: "bypass node has no target set"}
	}

	return ParseChild(b.child, pn, tokens)
}

func (b *Bypass) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	if b.child == nil {
		return nil
	}

	return CompleteChild(b.child, cs, trial, tokens)
}
