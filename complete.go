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

import "strings"

// ItemType classifies a [CompletionItem].
type ItemType int

const (
	// Unknown marks "I can consume a token here but cannot enumerate what
	// it could be" (the default completion behavior for int/re/re_lex).
	Unknown ItemType = iota
	// Full marks a complete, ready-to-use candidate token.
	Full
	// Partial marks a candidate that is itself valid so far but could be
	// extended further (available to custom leaf node types; none of the
	// built-in node types emit it).
	Partial
)

// CompletionItem is one candidate next-token proposal.
type CompletionItem struct {
	Type ItemType
	Node Node

	// Start is the partial token as seen in the input.
	Start string

	// Full is the full candidate token. Only meaningful for Full/Partial.
	Full    string
	hasFull bool

	// Completion is the tail of Full after Start, when Full begins with
	// Start. Only meaningful for Full/Partial.
	Completion    string
	hasCompletion bool

	// Display is the string to show the user; defaults to Full.
	Display string

	Attrs map[string]string
}

// HasFull reports whether Full is meaningful for this item.
func (c *CompletionItem) HasFull() bool { return c.hasFull }

// HasCompletion reports whether Completion is meaningful for this item:
// false means "no addable suffix" (Full does not extend Start).
func (c *CompletionItem) HasCompletion() bool { return c.hasCompletion }

// NewFullItem builds a Full completion item for node: the user typed start,
// and full is a complete candidate value.
func NewFullItem(node Node, start, full string) *CompletionItem {
	item := &CompletionItem{Type: Full, Node: node, Start: start, Full: full, hasFull: true, Display: full}
	if strings.HasPrefix(full, start) {
		item.Completion = full[len(start):]
		item.hasCompletion = true
	}

	return item
}

// NewPartialItem is like NewFullItem but marks the item Partial: a valid
// prefix that the user may keep extending.
func NewPartialItem(node Node, start, full string) *CompletionItem {
	item := NewFullItem(node, start, full)
	item.Type = Partial

	return item
}

// NewUnknownItem builds an Unknown completion item: node can consume a
// token here, but the set of acceptable values isn't enumerable.
func NewUnknownItem(node Node, start string) *CompletionItem {
	return &CompletionItem{Type: Unknown, Node: node, Start: start}
}

// CompletionGroup is a set of items sharing a producing grammar node. The
// group records that node only; the parse state it was produced in is not
// stored. Groups and the items within them preserve insertion order.
type CompletionGroup struct {
	Node  Node
	Items []*CompletionItem

	attached bool
}

// CompletionSet is the container Complete fills in: an ordered list of
// groups plus O(1) per-type counts.
type CompletionSet struct {
	Groups []*CompletionGroup
	counts map[ItemType]int
}

// NewCompletionSet returns an empty completion container.
func NewCompletionSet() *CompletionSet {
	return &CompletionSet{counts: map[ItemType]int{}}
}

// Count returns the number of items of the given type across all groups,
// in O(1).
func (s *CompletionSet) Count(t ItemType) int {
	return s.counts[t]
}

// Len returns the total number of items across all groups.
func (s *CompletionSet) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Items)
	}

	return n
}

// Items returns every item across every group, in group/insertion order.
func (s *CompletionSet) Items() []*CompletionItem {
	var out []*CompletionItem
	for _, g := range s.Groups {
		out = append(out, g.Items...)
	}

	return out
}

// CompleteState threads the container and the current group across a
// Complete recursion (the trial parse position travels separately, as
// CompleteChild's trial argument), mirroring how
// [ParserContext] threads parser state across dslex's recursion.
type CompleteState struct {
	Set   *CompletionSet
	group *CompletionGroup
}

// emit appends item to the state's current group, lazily attaching that
// group to the set on its first item so nodes that produce nothing don't
// leave an empty group behind.
func (cs *CompleteState) emit(item *CompletionItem) {
	g := cs.group
	if !g.attached {
		cs.Set.Groups = append(cs.Set.Groups, g)
		g.attached = true
	}

	g.Items = append(g.Items, item)
	cs.Set.counts[item.Type]++
}

// CompleteChild is the complete entry point, analogous to ParseChild: it
// starts a new group attributed to n, descends into n.completeSelf, and
// restores the caller's group afterward. trial is the parse-tree position
// this completion attempt is tentatively extending (used by Once to see
// what has already matched, and by sequencing nodes to run lookahead
// parses); it may be nil at the top of a Complete call.
func CompleteChild(n Node, cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	depth := 0
	if trial != nil {
		depth = trial.depth + 1
		if depth > maxRecursionDepth {
			return &depthExceededError{depth: depth}
		}
	}

	prev := cs.group
	cs.group = &CompletionGroup{Node: n}

	err := n.completeSelf(cs, trial, tokens)

	cs.group = prev

	return err
}

// Complete returns the set of candidate next tokens for n given tokens,
// where the final element of tokens is the (possibly empty) token being
// completed and every earlier element must already be fully accepted.
func Complete(n Node, tokens TokenVector) (*CompletionSet, error) {
	set := NewCompletionSet()
	cs := &CompleteState{Set: set}

	if err := CompleteChild(n, cs, nil, tokens); err != nil {
		return nil, err
	}

	return set, nil
}
