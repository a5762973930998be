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

import (
	"context"

	"github.com/climb-sh/climb/internal/dslex"
)

var cmdNodeType = RegisterNodeType(&NodeType{
	Name: "cmd",
	Schema: []SchemaEntry{
		{Key: "dsl", Type: ValueString, Required: true},
		{Key: "children", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
	},
})

// Cmd compiles a small grammar-DSL string into a real node tree at
// construction time and forwards Parse/Complete to it, the same way
// Expr compiles its configuration once rather than interpreting it on every
// call.
//
// DSL grammar: identifiers name a supplied child by id, falling back to a
// literal Str; "," is subset, "|" is or, juxtaposition is seq; "+"/"*" are
// postfix many(1,∞)/many(0,∞); "[a]" wraps a in option; "(a)" groups only.
type Cmd struct {
	nodeBase
	leaf1

	dsl string
}

// NewCmd parses dsl and builds a Cmd. children are matched to DSL
// identifiers by their ID; an identifier with no matching child becomes a
// literal Str matching that identifier's text verbatim.
func NewCmd(ctx context.Context, id, dsl string, children ...Node) (*Cmd, error) {
	ast, err := dslex.ParseGrammar(ctx, dsl)
	if err != nil {
		return nil, &ConfigError{NodeType: "cmd", Key: "dsl", Err: err}
	}

	byID := make(map[string]Node, len(children))
	for _, c := range children {
		if c.ID() != NoID {
			byID[c.ID()] = c
		}
	}

	top, err := evalGrammarNode(ast, byID)
	if err != nil {
		return nil, err
	}

	c := &Cmd{dsl: dsl}
	c.typ = cmdNodeType
	c.SetID(id)
	c.child = top

	return c, nil
}

// evalGrammarNode recursively evaluates one DSL AST node into a climb.Node.
// KindSeq/KindOr/KindSubset children are already associatively flattened by
// [dslex.ParseGrammar], so each one builds exactly one compound node from
// its full, already-flat Children list.
func evalGrammarNode(n *dslex.AST, byID map[string]Node) (Node, error) {
	switch n.Value.Kind {
	case dslex.KindIdent:
		if c, ok := byID[n.Value.Text]; ok {
			return c, nil
		}

		return NewStr(NoID, n.Value.Text), nil

	case dslex.KindSeq:
		kids, err := evalGrammarChildren(n, byID)
		if err != nil {
			return nil, err
		}

		return NewSeq(NoID, kids...)

	case dslex.KindOr:
		kids, err := evalGrammarChildren(n, byID)
		if err != nil {
			return nil, err
		}

		return NewOr(NoID, kids...)

	case dslex.KindSubset:
		kids, err := evalGrammarChildren(n, byID)
		if err != nil {
			return nil, err
		}

		return NewSubset(NoID, kids...)

	case dslex.KindOneOrMore:
		child, err := evalGrammarChild(n, byID)
		if err != nil {
			return nil, err
		}

		return NewMany(NoID, child, 1, 0)

	case dslex.KindZeroOrMore:
		child, err := evalGrammarChild(n, byID)
		if err != nil {
			return nil, err
		}

		return NewMany(NoID, child, 0, 0)

	case dslex.KindOption:
		child, err := evalGrammarChild(n, byID)
		if err != nil {
			return nil, err
		}

		return NewOption(NoID, child)

	default:
		return nil, &ArgError{Msg: "cmd: unrecognized grammar DSL node kind"}
	}
}

func evalGrammarChildren(n *dslex.AST, byID map[string]Node) ([]Node, error) {
	kids := make([]Node, len(n.Children))

	for i, c := range n.Children {
		node, err := evalGrammarNode(c, byID)
		if err != nil {
			return nil, err
		}

		kids[i] = node
	}

	return kids, nil
}

// evalGrammarChild evaluates the sole child of a postfix/option AST node.
func evalGrammarChild(n *dslex.AST, byID map[string]Node) (Node, error) {
	if len(n.Children) != 1 {
		return nil, &ArgError{Msg: "cmd: postfix/option grammar node must have exactly one operand"}
	}

	return evalGrammarNode(n.Children[0], byID)
}

func (c *Cmd) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	return ParseChild(c.child, pn, tokens)
}

func (c *Cmd) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	return CompleteChild(c.child, cs, trial, tokens)
}
