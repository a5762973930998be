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

import "errors"

// ErrUnterminatedQuote is returned by ShellTokenize when src ends inside an
// open quote.
var ErrUnterminatedQuote = errors.New("dslex: unterminated quote")

// ShellTokenize splits src into words using climb's shell-quoting rules: a
// '#' outside quotes begins a comment running to end of input; double
// quotes strip their delimiters and recognize \" and \\ as escapes; single
// quotes strip their delimiters with no escape processing inside (their
// "not currently special" in the original C implementation meant no
// support at all — this port adds bare stripping, since the grammar's own
// worked examples require 'foo' to tokenize as foo, not as the five
// literal characters).
func ShellTokenize(src string) ([]string, error) {
	var tokens []string

	i, n := 0, len(src)

	for {
		for i < n && isBlank(src[i]) {
			i++
		}

		if i >= n || src[i] == '#' {
			break
		}

		word, consumed, quote := scanWord(src[i:])
		if quote != 0 {
			return nil, ErrUnterminatedQuote
		}

		tokens = append(tokens, word)
		i += consumed
	}

	return tokens, nil
}

// ShellTokenizeTolerant is ShellTokenize's completion-side counterpart: an
// open quote at the end of input is not an error. It returns the tokens
// scanned so far (the last one is the partial word still open, if any)
// and the quote character left open, or 0 if input ended unquoted.
func ShellTokenizeTolerant(src string) (tokens []string, openQuote byte) {
	i, n := 0, len(src)

	for {
		for i < n && isBlank(src[i]) {
			i++
		}

		if i >= n || src[i] == '#' {
			break
		}

		word, consumed, quote := scanWord(src[i:])
		tokens = append(tokens, word)
		i += consumed

		if quote != 0 {
			return tokens, quote
		}
	}

	return tokens, 0
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// scanWord scans one word starting at s[0], returning its unquoted value,
// the number of source bytes consumed, and a nonzero quote byte if s ran
// out while still inside that quote character.
func scanWord(s string) (word string, consumed int, openQuote byte) {
	var b []byte

	i := 0
	quote := byte(0)

	for i < len(s) {
		c := s[i]

		if quote == 0 {
			if isBlank(c) || c == '#' {
				break
			}

			if c == '"' || c == '\'' {
				quote = c
				i++

				continue
			}

			b = append(b, c)
			i++

			continue
		}

		if c == quote {
			quote = 0
			i++

			continue
		}

		if quote == '"' && c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			b = append(b, s[i+1])
			i += 2

			continue
		}

		b = append(b, c)
		i++
	}

	return string(b), i, quote
}
