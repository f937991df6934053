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

package token

import (
	"strings"

	"github.com/jstool/jstool/arena"
	"github.com/jstool/jstool/source"
)

// Trivia is a single piece of trivia (spec.md §3): whitespace, a newline, a
// comment, or a span of text the parser could not make sense of.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
}

// Text returns the literal source text of this trivia piece.
func (t Trivia) Text() string { return t.Span.Text() }

// raw is the arena-resident representation of a token. Tokens are handed
// out to callers as the [Token] handle, never as *raw.
type raw struct {
	kind     Kind
	start    int // trimmed span start
	end      int // trimmed span end
	leading  []Trivia
	trailing []Trivia
}

// Token is an immutable handle to a token stored in a [Stream]. The zero
// Token is nil; see [Token.IsZero].
//
// A Token's "trimmed" span covers only its own text; its leading and
// trailing [Trivia] cover the whitespace/comments attached to it, per
// spec.md §3's definition of a token's text range vs. trimmed range.
type Token struct {
	stream *Stream
	ptr    arena.Pointer[raw]
}

// IsZero reports whether t is the nil Token.
func (t Token) IsZero() bool { return t.stream == nil }

// Context returns the Stream this token belongs to.
func (t Token) Context() *Stream { return t.stream }

// Kind returns this token's kind.
func (t Token) Kind() Kind {
	if t.IsZero() {
		return Invalid
	}
	return t.raw().kind
}

// Span returns the trimmed span (text only, no trivia) of this token.
func (t Token) Span() source.Span {
	if t.IsZero() {
		return source.Span{}
	}
	r := t.raw()
	return t.stream.file.Span(r.start, r.end)
}

// Text returns the trimmed text of this token.
func (t Token) Text() string { return t.Span().Text() }

// FullSpan returns the span covering this token's leading trivia, its own
// text, and its trailing trivia — spec.md §3's "text range."
func (t Token) FullSpan() source.Span {
	if t.IsZero() {
		return source.Span{}
	}
	r := t.raw()
	start := r.start
	if len(r.leading) > 0 {
		start = r.leading[0].Span.Start
	}
	end := r.end
	if len(r.trailing) > 0 {
		end = r.trailing[len(r.trailing)-1].Span.End
	}
	return t.stream.file.Span(start, end)
}

// LeadingTrivia returns the trivia pieces preceding this token's text, up
// to and including the last newline before it (spec.md §3).
func (t Token) LeadingTrivia() []Trivia {
	if t.IsZero() {
		return nil
	}
	return t.raw().leading
}

// TrailingTrivia returns the trivia pieces on the same line following this
// token's text, up to but not including the next newline (spec.md §3).
func (t Token) TrailingTrivia() []Trivia {
	if t.IsZero() {
		return nil
	}
	return t.raw().trailing
}

// HasComments reports whether this token has any comment in either its
// leading or trailing trivia.
func (t Token) HasComments() bool {
	for _, tr := range t.LeadingTrivia() {
		if tr.Kind.IsComment() {
			return true
		}
	}
	for _, tr := range t.TrailingTrivia() {
		if tr.Kind.IsComment() {
			return true
		}
	}
	return false
}

func (t Token) raw() *raw { return t.ptr.In(&t.stream.tokens) }

// index returns this token's 0-based position within the stream.
func (t Token) index() int { return int(t.ptr) - 1 }

// CommentKind classifies the shape of a comment's text, as spec.md §3
// defines: Block (multi-line), InlineBlock (block comment without
// newlines), or Line.
type CommentKind uint8

const (
	NotAComment CommentKind = iota
	Block
	InlineBlock
	Line
)

// Classify returns the [CommentKind] of this trivia piece, which must have
// Kind LineComment or BlockComment.
func (t Trivia) Classify() CommentKind {
	switch t.Kind {
	case LineComment:
		return Line
	case BlockComment:
		if strings.Contains(t.Text(), "\n") {
			return Block
		}
		return InlineBlock
	default:
		return NotAComment
	}
}
