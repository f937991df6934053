// Copyright 2026 The jstool Authors
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

// Package testutil provides a minimal, deliberately unsophisticated
// tokenizer used only by this module's own tests, so that every other
// package can be exercised against real [token.Stream] values without
// pulling in a full JS/TS grammar — tokenization/parsing details are an
// explicit Non-goal of spec.md §1, but the tests still need *a* source of
// tokens.
package testutil

import (
	"strings"
	"unicode"

	"github.com/jstool/jstool/source"
	"github.com/jstool/jstool/token"
)

// Lex tokenizes text into a [token.Stream], attaching leading/trailing
// trivia to each semantic token per spec.md §3's definitions: leading
// trivia runs up to and including the last newline before a token;
// trailing trivia runs from just after a token's text up to (but not
// including) the next newline.
func Lex(path, text string) *token.Stream {
	f := source.NewFile(path, source.TrimTrailingCR(text))
	s := token.NewStream(f)

	l := &lexer{file: f, text: f.Text()}
	var pending []token.Trivia

	for l.pos < len(l.text) {
		start := l.pos
		if piece, ok := l.triviaPiece(); ok {
			pending = append(pending, token.Trivia{Kind: piece, Span: f.Span(start, l.pos)})
			continue
		}

		tokStart := l.pos
		kind := l.token()
		if l.pos == tokStart {
			// Couldn't make progress; treat the single byte as Punct so we
			// never infinite-loop on unrecognized input.
			l.pos++
			kind = token.Punct
		}
		tokEnd := l.pos

		leading := pending
		pending = nil
		trailing := l.trailingTrivia()

		s.Push(kind, f.Span(tokStart, tokEnd), leading, trailing)
	}

	if len(pending) > 0 {
		// Trailing trivia after the last real token: attach it as the
		// leading trivia of a synthetic EOF-kind marker token with an empty
		// trimmed span, so callers can still observe it (e.g. to check that
		// output ends with exactly the input's trailing newlines).
		last := f.Span(len(l.text), len(l.text))
		s.Push(token.EOF, last, pending, nil)
	}

	s.Freeze()
	return s
}

type lexer struct {
	file *source.File
	text string
	pos  int
}

// triviaPiece consumes one whitespace/newline/comment piece at the current
// position, if there is one. Line and block comments are consumed here as
// trivia: this simplified lexer never treats a comment as a token, which is
// accurate to how they behave in the language this tool formats.
func (l *lexer) triviaPiece() (token.TriviaKind, bool) {
	if l.pos >= len(l.text) {
		return 0, false
	}
	c := l.text[l.pos]

	switch {
	case c == '\n':
		l.pos++
		return token.Newline, true

	case c == ' ' || c == '\t':
		for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t') {
			l.pos++
		}
		return token.Whitespace, true

	case strings.HasPrefix(l.text[l.pos:], "//"):
		for l.pos < len(l.text) && l.text[l.pos] != '\n' {
			l.pos++
		}
		return token.LineComment, true

	case strings.HasPrefix(l.text[l.pos:], "/*"):
		l.pos += 2
		for l.pos < len(l.text) && !strings.HasPrefix(l.text[l.pos:], "*/") {
			l.pos++
		}
		l.pos = min(l.pos+2, len(l.text))
		return token.BlockComment, true

	default:
		return 0, false
	}
}

// trailingTrivia consumes same-line whitespace/comment trivia following a
// token, stopping before (not consuming) the next newline.
func (l *lexer) trailingTrivia() []token.Trivia {
	var out []token.Trivia
	for l.pos < len(l.text) && l.text[l.pos] != '\n' {
		start := l.pos
		switch {
		case l.text[l.pos] == ' ' || l.text[l.pos] == '\t':
			for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t') {
				l.pos++
			}
			out = append(out, token.Trivia{Kind: token.Whitespace, Span: l.file.Span(start, l.pos)})

		case strings.HasPrefix(l.text[l.pos:], "//"):
			for l.pos < len(l.text) && l.text[l.pos] != '\n' {
				l.pos++
			}
			out = append(out, token.Trivia{Kind: token.LineComment, Span: l.file.Span(start, l.pos)})

		case strings.HasPrefix(l.text[l.pos:], "/*"):
			l.pos += 2
			for l.pos < len(l.text) && !strings.HasPrefix(l.text[l.pos:], "*/") {
				l.pos++
			}
			l.pos = min(l.pos+2, len(l.text))
			out = append(out, token.Trivia{Kind: token.BlockComment, Span: l.file.Span(start, l.pos)})

		default:
			return out
		}
	}
	return out
}

// token consumes one semantic token's trimmed text, returning its kind.
func (l *lexer) token() token.Kind {
	c := l.text[l.pos]

	switch {
	case c == '"' || c == '\'':
		quote := c
		l.pos++
		for l.pos < len(l.text) && l.text[l.pos] != quote {
			if l.text[l.pos] == '\\' {
				l.pos++
			}
			l.pos++
		}
		l.pos = min(l.pos+1, len(l.text))
		return token.String

	case unicode.IsDigit(rune(c)):
		for l.pos < len(l.text) && (unicode.IsDigit(rune(l.text[l.pos])) || l.text[l.pos] == '.') {
			l.pos++
		}
		return token.Number

	case unicode.IsLetter(rune(c)) || c == '_' || c == '$':
		for l.pos < len(l.text) && isIdentRune(rune(l.text[l.pos])) {
			l.pos++
		}
		return token.Ident

	default:
		// Try the common multi-char operators first.
		for _, op := range []string{"=>", "===", "!==", "==", "!=", "<=", ">="} {
			if strings.HasPrefix(l.text[l.pos:], op) {
				l.pos += len(op)
				return token.Punct
			}
		}
		l.pos++
		return token.Punct
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}
