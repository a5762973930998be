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

import "fmt"

// NoMatch is the sentinel parse/complete length meaning "this node declines
// to match here." It is a plain value, never an error: a NOMATCH result is
// the normal negative outcome of a parse, not a resource or contract
// failure.
const NoMatch = -1

// ParseNode is one node of a parse tree: the grammar node that matched, the
// slice of the input it consumed, and its matched children in match order.
type ParseNode struct {
	Node     Node
	Tokens   TokenVector
	Children []*ParseNode
	Parent   *ParseNode

	depth int
}

// GetRoot climbs Parent links to the root of pn's parse tree.
func GetRoot(pn *ParseNode) *ParseNode {
	for pn.Parent != nil {
		pn = pn.Parent
	}

	return pn
}

// CountOccurrences returns the number of parse-tree nodes under root (root
// inclusive) whose Node is identical (by reference) to target.
func CountOccurrences(root *ParseNode, target Node) int {
	if root == nil {
		return 0
	}

	n := 0
	if sameNode(root.Node, target) {
		n++
	}

	for _, c := range root.Children {
		n += CountOccurrences(c, target)
	}

	return n
}

// maxRecursionDepth bounds parse/complete recursion so a grammar with a
// cycle that isn't broken by a Bypass fails loudly instead of exhausting
// the goroutine stack, standing in for original_source's manual reference
// counting now that Go's garbage collector owns cyclic memory. It is
// generous enough that no legitimate (acyclic, or Bypass-broken) grammar
// should ever hit it.
var maxRecursionDepth = 10000

// SetMaxRecursionDepth overrides the recursion bound used by Parse and
// Complete. It exists for tests exercising pathological grammars; most
// programs never need to call it.
func SetMaxRecursionDepth(n int) {
	maxRecursionDepth = n
}

// depthExceededError is returned by ParseChild and CompleteChild when
// maxRecursionDepth is exceeded.
type depthExceededError struct{ depth int }

func (e *depthExceededError) Error() string {
	return fmt.Sprintf("climb: recursion depth exceeded %d; likely a grammar cycle not broken by a Bypass", e.depth)
}

// ParseChild is the parse entry point: it allocates a parse node for n,
// invokes n's parse function, and on success
// links the new parse node into parent's Children; on NOMATCH or error it
// leaves parent untouched. Compound node types call this recursively on
// their own children to implement composition and backtracking.
func ParseChild(n Node, parent *ParseNode, tokens TokenVector) (int, error) {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
		if depth > maxRecursionDepth {
			return NoMatch, &depthExceededError{depth: depth}
		}
	}

	pn := &ParseNode{Node: n, Parent: parent, depth: depth}

	length, err := n.parseSelf(pn, tokens)
	if err != nil {
		return NoMatch, err
	}

	if length == NoMatch {
		return NoMatch, nil
	}

	pn.Tokens = tokens.Take(length)

	if parent != nil {
		parent.Children = append(parent.Children, pn)
	}

	return length, nil
}

// Parse attempts to match n against the whole of tokens using n as a fresh
// top-level grammar. It returns the resulting parse tree root and the
// number of tokens consumed, or a nil tree and NoMatch if n does not match
// any prefix, or an error on resource/contract failure.
//
// pn is built with a nil Parent from the start, rather than as a child of a
// throwaway sentinel later unlinked: GetRoot/CountOccurrences (used by Once)
// walk up to the nearest nil-Parent node and read its Children, and those
// Children are only populated once a node's own parseSelf call returns. A
// sentinel linked in after the fact would leave that traversal looking at an
// empty tree for the entire duration of the top-level parse.
func Parse(n Node, tokens TokenVector) (*ParseNode, int, error) {
	pn := &ParseNode{Node: n}

	length, err := n.parseSelf(pn, tokens)
	if err != nil {
		return nil, NoMatch, err
	}

	if length == NoMatch {
		return nil, NoMatch, nil
	}

	pn.Tokens = tokens.Take(length)

	return pn, length, nil
}
