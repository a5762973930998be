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

package dslex

// ExprKind classifies a node of the grammar-DSL AST produced by
// [ParseGrammar].
type ExprKind int

const (
	// KindIdent is a leaf: an identifier naming a supplied child node, or,
	// failing that, a literal string to match.
	KindIdent ExprKind = iota
	// KindSeq is juxtaposition: "a b" — match a then b.
	KindSeq
	// KindOr is "a|b" — match a or b.
	KindOr
	// KindSubset is "a,b" — match a and b in any order.
	KindSubset
	// KindOneOrMore is postfix "a+".
	KindOneOrMore
	// KindZeroOrMore is postfix "a*".
	KindZeroOrMore
	// KindOption is "[a]".
	KindOption
)

// ExprValue is the value carried by each [AST] node.
type ExprValue struct {
	Kind ExprKind
	// Text is the identifier text; only meaningful when Kind == KindIdent.
	Text string
}

// AST is the parse tree produced by [ParseGrammar]. KindSeq, KindOr, and
// KindSubset nodes are associatively flattened by the parser: a run of
// "a b c" parses to one KindSeq node with three children, not two nested
// ones.
type AST = Node[ExprValue]
