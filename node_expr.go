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

var exprNodeType = RegisterNodeType(&NodeType{
	Name: "expr",
	Schema: []SchemaEntry{
		{Key: "value", Type: ValueNode, Required: true},
		{Key: "prefix", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
		{Key: "postfix", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
		{Key: "binop", Type: ValueList, Sub: []SchemaEntry{{Type: ValueNode}}},
		{Key: "paren_open", Type: ValueNode},
		{Key: "paren_close", Type: ValueNode},
	},
})

// Expr implements operator-precedence expressions by compiling its
// configuration straight down to Seq/Or/Many/Bypass — completion falls out
// for free this way, produced naturally from the underlying
// recursive-descent composition of seq/or/many, since Expr.parseSelf/
// completeSelf just forward to that compiled structure exactly as Bypass
// forwards to its target.
//
// Grammar (all one precedence level; nest Expr nodes for more):
//
//	atom := prefix* (paren_open expr paren_close | value) postfix*
//	expr := atom (binop atom)*
type Expr struct {
	nodeBase
	leaf1 // child = the compiled top-level Seq/Or node

	value                 Node
	prefix, postfix       []Node
	binop                 []Node
	parenOpen, parenClose Node
	parenSeq              Node // Seq(parenOpen, bypass-to-top, parenClose), or nil
}

// NewExpr builds an Expr. value is required; prefix, postfix, and binop
// may be empty. parenOpen/parenClose must both be nil or both set.
func NewExpr(id string, value Node, prefix, postfix, binop []Node, parenOpen, parenClose Node) (*Expr, error) {
	if value == nil {
		return nil, &ArgError{Msg: "expr requires a value node"}
	}

	if (parenOpen == nil) != (parenClose == nil) {
		return nil, &ArgError{Msg: "expr requires both paren_open and paren_close, or neither"}
	}

	e := &Expr{value: value, prefix: prefix, postfix: postfix, binop: binop, parenOpen: parenOpen, parenClose: parenClose}
	e.typ = exprNodeType
	e.SetID(id)

	prefixMany, err := repeatAny(prefix)
	if err != nil {
		return nil, err
	}

	postfixMany, err := repeatAny(postfix)
	if err != nil {
		return nil, err
	}

	var bypass *Bypass

	core := value

	if parenOpen != nil {
		bypass = NewBypass(NoID)

		parenSeq, err := NewSeq(NoID, parenOpen, bypass, parenClose)
		if err != nil {
			return nil, err
		}

		core, err = NewOr(NoID, parenSeq, value)
		if err != nil {
			return nil, err
		}

		e.parenSeq = parenSeq
	}

	var atomChildren []Node
	if prefixMany != nil {
		atomChildren = append(atomChildren, prefixMany)
	}

	atomChildren = append(atomChildren, core)

	if postfixMany != nil {
		atomChildren = append(atomChildren, postfixMany)
	}

	atom, err := NewSeq(NoID, atomChildren...)
	if err != nil {
		return nil, err
	}

	top := Node(atom)

	if len(binop) > 0 {
		var binOp Node

		if len(binop) == 1 {
			binOp = binop[0]
		} else {
			var err error

			binOp, err = NewOr(NoID, binop...)
			if err != nil {
				return nil, err
			}
		}

		binAtom, err := NewSeq(NoID, binOp, atom)
		if err != nil {
			return nil, err
		}

		tail, err := NewMany(NoID, binAtom, 0, 0)
		if err != nil {
			return nil, err
		}

		top, err = NewSeq(NoID, atom, tail)
		if err != nil {
			return nil, err
		}
	}

	if bypass != nil {
		bypass.Set(top)
	}

	e.child = top

	return e, nil
}

// repeatAny returns Many(Or(nodes...), 0, 0), or just Many(nodes[0], 0, 0)
// for a single node, or nil if nodes is empty (meaning "this slot doesn't
// exist at all" rather than "exists but never repeats").
func repeatAny(nodes []Node) (Node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}

	single := nodes[0]

	if len(nodes) > 1 {
		var err error

		single, err = NewOr(NoID, nodes...)
		if err != nil {
			return nil, err
		}
	}

	return NewMany(NoID, single, 0, 0)
}

func (e *Expr) parseSelf(pn *ParseNode, tokens TokenVector) (int, error) {
	return ParseChild(e.child, pn, tokens)
}

func (e *Expr) completeSelf(cs *CompleteState, trial *ParseNode, tokens TokenVector) error {
	return CompleteChild(e.child, cs, trial, tokens)
}

// ExprCallbacks are the user-supplied evaluation hooks for walking an
// expression's parse tree. On success, a callback takes ownership of the V
// values passed to it (the evaluator will not call Free on them again); on
// failure, the evaluator calls Free on every value it still owns while
// unwinding.
type ExprCallbacks[V any] struct {
	Var     func(leaf *ParseNode) (V, error)
	PreOp   func(op *ParseNode, operand V) (V, error)
	PostOp  func(op *ParseNode, operand V) (V, error)
	BinOp   func(op *ParseNode, left, right V) (V, error)
	Paren   func(inner V) (V, error)
	Free    func(v V)
}

// EvalExpr performs a postorder walk over root, the [ParseNode] produced by
// parsing e, building one V per sub-expression.
func EvalExpr[V any](e *Expr, root *ParseNode, cb ExprCallbacks[V]) (V, error) {
	var zero V

	if root == nil || len(root.Children) == 0 {
		return zero, &ArgError{Msg: "expr: empty parse tree"}
	}

	return evalTop(e, root.Children[0], cb)
}

func evalTop[V any](e *Expr, topPN *ParseNode, cb ExprCallbacks[V]) (V, error) {
	var zero V

	if len(e.binop) == 0 {
		return evalAtom(e, topPN, cb)
	}

	atomPN := topPN.Children[0]
	tailPN := topPN.Children[1]

	left, err := evalAtom(e, atomPN, cb)
	if err != nil {
		return zero, err
	}

	for _, repPN := range tailPN.Children {
		opPN := unwrapOr(repPN.Children[0])
		atomPN2 := repPN.Children[1]

		right, err := evalAtom(e, atomPN2, cb)
		if err != nil {
			cb.Free(left)

			return zero, err
		}

		v, err := cb.BinOp(opPN, left, right)
		if err != nil {
			cb.Free(left)
			cb.Free(right)

			return zero, err
		}

		left = v
	}

	return left, nil
}

func evalAtom[V any](e *Expr, atomPN *ParseNode, cb ExprCallbacks[V]) (V, error) {
	var zero V

	children := atomPN.Children
	idx := 0

	var prefixOps []*ParseNode

	if len(e.prefix) > 0 {
		for _, rep := range children[idx].Children {
			prefixOps = append(prefixOps, unwrapOr(rep))
		}

		idx++
	}

	corePN := children[idx]
	idx++

	var postfixOps []*ParseNode

	if len(e.postfix) > 0 {
		for _, rep := range children[idx].Children {
			postfixOps = append(postfixOps, unwrapOr(rep))
		}
	}

	val, err := evalCore(e, corePN, cb)
	if err != nil {
		return zero, err
	}

	for _, opPN := range postfixOps {
		v, err := cb.PostOp(opPN, val)
		if err != nil {
			cb.Free(val)

			return zero, err
		}

		val = v
	}

	for i := len(prefixOps) - 1; i >= 0; i-- {
		v, err := cb.PreOp(prefixOps[i], val)
		if err != nil {
			cb.Free(val)

			return zero, err
		}

		val = v
	}

	return val, nil
}

func evalCore[V any](e *Expr, corePN *ParseNode, cb ExprCallbacks[V]) (V, error) {
	var zero V

	if e.parenOpen != nil {
		chosen := unwrapOr(corePN)

		if sameNode(chosen.Node, e.parenSeq) {
			bypassPN := chosen.Children[1]
			innerTopPN := bypassPN.Children[0]

			inner, err := evalTop(e, innerTopPN, cb)
			if err != nil {
				return zero, err
			}

			v, err := cb.Paren(inner)
			if err != nil {
				cb.Free(inner)

				return zero, err
			}

			return v, nil
		}

		return cb.Var(chosen)
	}

	return cb.Var(corePN)
}

// unwrapOr returns the single matched alternative under an Or's parse
// node, or pn unchanged if pn wasn't produced by an Or (the common case
// when a slot has exactly one candidate node and repeatAny skipped
// wrapping it).
func unwrapOr(pn *ParseNode) *ParseNode {
	if _, ok := pn.Node.(*Or); ok && len(pn.Children) == 1 {
		return pn.Children[0]
	}

	return pn
}
