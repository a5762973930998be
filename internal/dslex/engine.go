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
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/ianlewis/runeio"
)

// channelBufSize is the size of the buffer for the token channel used
// between the grammar lexer and parser goroutines.
const channelBufSize = 64

// EOF is the rune a [LexState] sees once the grammar string is exhausted.
const EOF rune = -1

// LexState is one state of the grammar lexer's state machine: it consumes
// some input and returns the state to run next. Returning io.EOF from Run
// ends lexing.
type LexState interface {
	Run(ctx *CustomLexerContext) (LexState, error)
}

type lexFnState struct {
	f func(*CustomLexerContext) (LexState, error)
}

//nolint:ireturn // Returning interface required to satisfy [LexState.Run]
func (s *lexFnState) Run(ctx *CustomLexerContext) (LexState, error) {
	return s.f(ctx)
}

// LexStateFn adapts a plain function to a [LexState].
//
//nolint:ireturn // Returning interface required to satisfy [LexState.Run]
func LexStateFn(f func(*CustomLexerContext) (LexState, error)) LexState {
	return &lexFnState{f}
}

// CustomLexerContext is handed to a [LexState]'s Run method, giving it a
// one-rune-at-a-time view of the grammar string: peek without consuming,
// advance and keep the rune as part of the pending token, or discard it
// (whitespace between tokens).
type CustomLexerContext struct {
	//nolint:containedctx // Embedding context required for interface compliance.
	context.Context

	l *CustomLexer
}

// Peek returns the next rune without consuming it, or [EOF] at end of input.
func (ctx *CustomLexerContext) Peek() rune {
	return ctx.l.peek()
}

// Advance consumes the next rune, appending it to the pending token text.
// It reports whether a rune was available.
func (ctx *CustomLexerContext) Advance() bool {
	return ctx.l.advance(false)
}

// Discard consumes the next rune without appending it to the pending token
// text, used to skip whitespace between grammar tokens.
func (ctx *CustomLexerContext) Discard() bool {
	return ctx.l.advance(true)
}

// Emit closes out the pending token as typ and queues it for the parser.
func (ctx *CustomLexerContext) Emit(typ TokenType) *Token {
	return ctx.l.emit(typ)
}

// Pos returns the reader's current position, used to annotate syntax
// errors raised while lexing.
func (ctx *CustomLexerContext) Pos() Position {
	return ctx.l.pos
}

// CustomLexer drives a [LexState] state machine over a grammar string,
// tracking the rune position of the token currently being assembled.
type CustomLexer struct {
	buf   []*Token
	state LexState
	r     *runeio.RuneReader
	b     strings.Builder

	pos    Position
	cursor Position

	err error
}

// NewCustomLexer creates a lexer over reader that starts in startingState.
func NewCustomLexer(reader io.Reader, startingState LexState) *CustomLexer {
	start := Position{Line: 1, Column: 1}

	return &CustomLexer{
		state:  startingState,
		pos:    start,
		cursor: start,
		r:      runeio.NewReader(bufio.NewReader(reader)),
	}
}

// NextToken implements [Lexer.NextToken], running states until one emits a
// token or the input is exhausted.
func (l *CustomLexer) NextToken(ctx context.Context) *Token {
	if l.err != nil {
		return l.newToken(TokenTypeEOF)
	}

	lexerCtx := &CustomLexerContext{Context: ctx, l: l}

	for len(l.buf) == 0 && l.state != nil {
		select {
		case <-ctx.Done():
			l.setErr(ctx.Err())
			return l.newToken(TokenTypeEOF)
		default:
		}

		var err error

		l.state, err = l.state.Run(lexerCtx)
		l.setErr(err)

		if l.err != nil {
			return l.newToken(TokenTypeEOF)
		}
	}

	if len(l.buf) > 0 {
		token := l.buf[0]
		l.buf = l.buf[1:]

		return token
	}

	return l.newToken(TokenTypeEOF)
}

// Err returns the first error the lexer encountered, if any.
func (l *CustomLexer) Err() error {
	return l.err
}

func (l *CustomLexer) peek() rune {
	if l.err != nil {
		return EOF
	}

	p, err := l.r.Peek(1)
	if err != nil && !errors.Is(err, io.EOF) {
		l.setErr(err)
	}

	if len(p) < 1 {
		return EOF
	}

	return p[0]
}

// advance consumes exactly one rune, updating the reader position (and
// line/column on a newline). discard drops it from the pending token text
// instead of appending it.
func (l *CustomLexer) advance(discard bool) bool {
	if l.err != nil {
		return false
	}

	rn, _, err := l.r.ReadRune()
	if err != nil {
		l.setErr(err)
		return false
	}

	l.pos.Offset++
	l.pos.Column++

	if rn == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	}

	if discard {
		l.ignore()
	} else {
		l.b.WriteRune(rn)
	}

	return true
}

func (l *CustomLexer) emit(typ TokenType) *Token {
	if l.err != nil {
		return nil
	}

	token := l.newToken(typ)

	l.buf = append(l.buf, token)
	l.ignore()

	return token
}

func (l *CustomLexer) ignore() {
	l.cursor = l.pos
	l.b.Reset()
}

func (l *CustomLexer) newToken(typ TokenType) *Token {
	return &Token{
		Type:  typ,
		Value: l.b.String(),
		Start: l.cursor,
		End:   l.pos,
	}
}

func (l *CustomLexer) setErr(err error) {
	if l.err == nil && !errors.Is(err, io.EOF) {
		l.err = err
	}
}

// Node is one node of a parse tree built by a [Parser]: a value plus the
// position in the grammar string where it was found. The grammar parser's
// AST (see ast.go) is a Node[ExprValue].
type Node[V comparable] struct {
	Parent   *Node[V]
	Children []*Node[V]
	Value    V

	Start Position
}

// ParseState is one state of the parser's state machine, given a
// [ParserContext] to read tokens and record the parse tree's root through.
type ParseState[V comparable] interface {
	Run(ctx *ParserContext[V]) error
}

type parseFnState[V comparable] struct {
	f func(*ParserContext[V]) error
}

func (s *parseFnState[V]) Run(ctx *ParserContext[V]) error {
	if s.f == nil {
		return nil
	}

	return s.f(ctx)
}

// ParseStateFn adapts a plain function to a [ParseState].
func ParseStateFn[V comparable](f func(*ParserContext[V]) error) ParseState[V] {
	return &parseFnState[V]{f}
}

// TokenSource supplies the parser with tokens, ending with one of type
// [TokenTypeEOF].
type TokenSource interface {
	NextToken(ctx context.Context) *Token
}

// ParserContext is handed to a [ParseState]'s Run method: look at the next
// token without consuming it, consume it, or set the parse tree's root.
type ParserContext[V comparable] struct {
	//nolint:containedctx // Embedding context required for interface compliance.
	context.Context

	p *Parser[V]
}

// Peek returns the next token without consuming it.
func (ctx *ParserContext[V]) Peek() *Token {
	return ctx.p.peek(ctx)
}

// Next consumes and returns the next token.
func (ctx *ParserContext[V]) Next() *Token {
	return ctx.p.nextToken(ctx)
}

// SetRoot records root as the parse tree this run produced.
func (ctx *ParserContext[V]) SetRoot(root *Node[V]) {
	ctx.p.root = root
}

// NewParser creates a parser over tokens that starts in startingState.
func NewParser[V comparable](tokens TokenSource, startingState ParseState[V]) *Parser[V] {
	return &Parser[V]{
		state:  startingState,
		tokens: tokens,
	}
}

// Parser runs a single [ParseState] to completion against a [TokenSource],
// producing the root [Node] of a parse tree. Unlike the grammar lexer,
// which chains many small states, the grammar parser's grammar.go drives
// its recursion directly rather than pushing further states, so Parser
// only ever runs one state through to io.EOF.
type Parser[V comparable] struct {
	tokens TokenSource
	state  ParseState[V]

	root *Node[V]
	next *Token
}

// Parse runs the parser's starting state to completion, returning the
// resulting tree's root. Canceling ctx stops the parse early.
func (p *Parser[V]) Parse(ctx context.Context) (*Node[V], error) {
	parserCtx := &ParserContext[V]{Context: ctx, p: p}

	if err := p.state.Run(parserCtx); err != nil && !errors.Is(err, io.EOF) {
		//nolint:wrapcheck // no additional error context for error.
		return p.root, err
	}

	return p.root, nil
}

func (p *Parser[V]) peek(ctx context.Context) *Token {
	if p.next == nil {
		p.next = p.tokens.NextToken(ctx)
	}

	return p.next
}

func (p *Parser[V]) nextToken(ctx context.Context) *Token {
	t := p.peek(ctx)
	p.next = nil

	return t
}

// tokenChan implements [TokenSource] by reading tokens off a channel fed
// concurrently by a [Lexer].
type tokenChan struct {
	c chan *Token
}

func (tc *tokenChan) NextToken(_ context.Context) *Token {
	// The same context drives both goroutines in LexParse, and the lexer
	// is expected to emit an EOF token once it observes cancellation, so
	// there is no separate ctx.Done() check here.
	return <-tc.c
}

// LexParse runs lex and a parser starting at startingState concurrently,
// the lexer feeding the parser over a channel, and returns the parser's
// resulting tree.
func LexParse[V comparable](ctx context.Context, lex Lexer, startingState ParseState[V]) (*Node[V], error) {
	var (
		root     *Node[V]
		lexErr   error
		parseErr error
		wg       sync.WaitGroup
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokens := &tokenChan{c: make(chan *Token, channelBufSize)}
	p := NewParser[V](tokens, startingState)

	wg.Add(2)

	go func() {
		defer wg.Done()

		t := &Token{}
		for t.Type != TokenTypeEOF {
			t = lex.NextToken(ctx)
			tokens.c <- t
		}

		lexErr = lex.Err()
	}()

	go func() {
		defer wg.Done()

		root, parseErr = p.Parse(ctx)

		cancel()
	}()

	wg.Wait()

	err := lexErr
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		err = parseErr
	}

	return root, err
}
