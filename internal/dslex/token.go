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

import (
	"context"
	"fmt"
)

// TokenType identifies the lexical class of a [Token]. The zero value is
// reserved by callers that don't care about typed tokens; [TokenTypeEOF] is
// reserved by this package to mark end of input.
type TokenType int

// TokenTypeEOF is emitted by every [Lexer] once the input is exhausted.
const TokenTypeEOF TokenType = -1

// Position marks a location in the grammar string being lexed.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by a [Lexer].
type Token struct {
	Type  TokenType
	Value string
	Start Position
	End   Position
}

// Lexer produces a stream of tokens, ending with a token of type
// [TokenTypeEOF]. Err returns the first error encountered during lexing, if
// any, and is only meaningful after NextToken has returned an EOF token.
type Lexer interface {
	NextToken(ctx context.Context) *Token
	Err() error
}
