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

var dynamicNodeType = RegisterNodeType(&NodeType{
	Name: "dynamic",
})

// DynamicBuilder builds the node a Dynamic should delegate to for one
// parse or complete attempt. pn is the position in the tree the result will
// be attached under (nil when the Dynamic is the top node of a Complete
// call; Parse always passes a node); the
// builder may inspect it (via GetRoot/CountOccurrences, as Once does) to
// choose a different child depending on what has already matched.
//
// The returned node is used for exactly this one attempt and then
// discarded; unlike the C original, there is no separate release step,
// since anything the builder allocated is reclaimed by the garbage
// collector once Dynamic stops referencing it.
type DynamicBuilder func(pn *ParseNode) (Node, error)

// Dynamic defers choosing its effective child until parse or complete time,
// calling build fresh on every attempt rather than caching a single child
// the way every other compound node does.
type Dynamic struct {
	nodeBase
	leaf0

	build DynamicBuilder
}

// NewDynamic builds a Dynamic that calls build once per parse and once per
// complete to obtain its effective child.
func NewDynamic(id string, build DynamicBuilder) (*Dynamic, error) {
	if build == nil {
		return nil, &ArgError{Msg: "dynamic requires a builder function"}
	}

	d := &Dynamic{build: build}
	d.typ = dynamicNodeType
	d.SetID(id)

	return d, nil
}

func (d *Dynamic) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	child, err := d.build(pn)
	if err != nil {
		return NoMatch, err
	}

	if child == nil {
		return NoMatch, &ArgError{Msg: "dynamic: builder returned a nil node"}
	}

	return ParseChild(child, pn, tokens)
}

func (d *Dynamic) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	child, err := d.build(trial)
	if err != nil {
		return err
	}

	if child == nil {
		return &ArgError{Msg: "dynamic: builder returned a nil node"}
	}

	return CompleteChild(child, cs, trial, tokens)
}
