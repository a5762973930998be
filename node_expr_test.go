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
	"math"
	"strconv"
	"testing"
)

func newIntValue() Node {
	return NewInt(NoID, math.MinInt64, math.MaxInt64, 10)
}

func intCallbacks() ExprCallbacks[int] {
	return ExprCallbacks[int]{
		Var: func(leaf *ParseNode) (int, error) {
			return strconv.Atoi(leaf.Tokens.At(0))
		},
		BinOp: func(_ *ParseNode, left, right int) (int, error) {
			return left + right, nil
		},
		PreOp: func(_ *ParseNode, operand int) (int, error) {
			return -operand, nil
		},
		PostOp: func(_ *ParseNode, operand int) (int, error) {
			return operand * 2, nil
		},
		Paren: func(inner int) (int, error) {
			return inner, nil
		},
		Free: func(int) {},
	}
}

func TestExpr_BinOpChain(t *testing.T) {
	t.Parallel()

	g, err := NewExpr(NoID, newIntValue(), nil, nil, []Node{NewStr(NoID, "+")}, nil, nil)
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}

	tokens := TokenVector{"1", "+", "2", "+", "3"}

	root, n, err := Parse(g, tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != tokens.Len() {
		t.Fatalf("Parse = %d, want %d (consume every token)", n, tokens.Len())
	}

	got, err := EvalExpr(g, root, intCallbacks())
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}

	if got != 6 {
		t.Errorf("EvalExpr = %d, want 6", got)
	}
}

func TestExpr_PrefixAndPostfix(t *testing.T) {
	t.Parallel()

	g, err := NewExpr(NoID, newIntValue(), []Node{NewStr(NoID, "-")}, []Node{NewStr(NoID, "!")}, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}

	tokens := TokenVector{"-", "5", "!"}

	root, n, err := Parse(g, tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != tokens.Len() {
		t.Fatalf("Parse = %d, want %d", n, tokens.Len())
	}

	// postfix binds tighter than prefix: "5!" doubles to 10 before the
	// leading "-" negates it.
	got, err := EvalExpr(g, root, intCallbacks())
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}

	if got != -10 {
		t.Errorf("EvalExpr = %d, want -10", got)
	}
}

func TestExpr_PostfixAppliesBeforePrefix(t *testing.T) {
	t.Parallel()

	g, err := NewExpr(NoID, newIntValue(), []Node{NewStr(NoID, "-")}, []Node{NewStr(NoID, "!")}, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}

	root, _, err := Parse(g, TokenVector{"-", "3", "!"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// PostOp adds 1, PreOp multiplies by 10: applying postfix first gives
	// (3+1)*10 = 40; applying prefix first would give 3*10+1 = 31.
	cb := ExprCallbacks[int]{
		Var: func(leaf *ParseNode) (int, error) {
			return strconv.Atoi(leaf.Tokens.At(0))
		},
		PreOp: func(_ *ParseNode, operand int) (int, error) {
			return operand * 10, nil
		},
		PostOp: func(_ *ParseNode, operand int) (int, error) {
			return operand + 1, nil
		},
		Free: func(int) {},
	}

	got, err := EvalExpr(g, root, cb)
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}

	if got != 40 {
		t.Errorf("EvalExpr = %d, want 40 (postfix before prefix)", got)
	}
}

func TestExpr_Parens(t *testing.T) {
	t.Parallel()

	g, err := NewExpr(NoID, newIntValue(), nil, nil, []Node{NewStr(NoID, "+")}, NewStr(NoID, "("), NewStr(NoID, ")"))
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}

	tokens := TokenVector{"(", "1", "+", "2", ")"}

	root, n, err := Parse(g, tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if n != tokens.Len() {
		t.Fatalf("Parse = %d, want %d", n, tokens.Len())
	}

	got, err := EvalExpr(g, root, intCallbacks())
	if err != nil {
		t.Fatalf("EvalExpr: %v", err)
	}

	if got != 3 {
		t.Errorf("EvalExpr = %d, want 3", got)
	}
}

func TestExpr_RequiresBothParensOrNeither(t *testing.T) {
	t.Parallel()

	_, err := NewExpr(NoID, newIntValue(), nil, nil, nil, NewStr(NoID, "("), nil)
	if err == nil {
		t.Fatal("expected an error when only one of paren_open/paren_close is set")
	}
}

func TestExpr_RequiresValue(t *testing.T) {
	t.Parallel()

	_, err := NewExpr(NoID, nil, nil, nil, nil, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a nil value node")
	}
}

func TestExpr_CompletionIsUnknownForValue(t *testing.T) {
	t.Parallel()

	g, err := NewExpr(NoID, newIntValue(), nil, nil, []Node{NewStr(NoID, "+")}, nil, nil)
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}

	set, err := Complete(g, TokenVector{""})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if set.Count(Unknown) == 0 {
		t.Errorf("Complete = %+v, want at least one Unknown item from the int value", set.Items())
	}
}
