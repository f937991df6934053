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
	"iter"

	"github.com/jstool/jstool/arena"
	"github.com/jstool/jstool/source"
)

// Stream is an append-only, arena-backed token stream over a single
// [source.File]. It stands in for the output of the source-text parser
// that spec.md §1 treats as an external collaborator.
//
// A Stream may be frozen once lexing is complete, so that downstream
// packages can hold a *Stream without worrying about it changing under
// them — mirrored on the teacher's own freeze discipline for its token
// streams.
type Stream struct {
	file   *source.File
	tokens arena.Arena[raw]
	frozen bool
}

// NewStream creates an empty Stream over file.
func NewStream(file *source.File) *Stream {
	return &Stream{file: file}
}

// File returns the file this stream is over.
func (s *Stream) File() *source.File { return s.file }

// Freeze marks the stream read-only. Push panics after Freeze is called.
func (s *Stream) Freeze() { s.frozen = true }

// Push appends a new token to the stream and returns a handle to it.
//
// leading and trailing are copied into the token's own storage; the
// caller's slices may be reused after Push returns.
func (s *Stream) Push(kind Kind, textSpan source.Span, leading, trailing []Trivia) Token {
	if s.frozen {
		panic("token: Push called on a frozen Stream")
	}

	r := raw{
		kind:     kind,
		start:    textSpan.Start,
		end:      textSpan.End,
		leading:  append([]Trivia(nil), leading...),
		trailing: append([]Trivia(nil), trailing...),
	}
	ptr := s.tokens.New(r)
	return Token{stream: s, ptr: ptr}
}

// Len returns the number of tokens pushed so far.
func (s *Stream) Len() int { return s.tokens.Len() }

// At returns the 0-indexed i'th token in the stream.
func (s *Stream) At(i int) Token {
	return Token{stream: s, ptr: arena.Pointer[raw](i + 1)}
}

// All returns an iterator over every token in the stream, in push order.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range s.tokens.Len() {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Cursor returns a cursor positioned before the first token.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s, pos: 0}
}

// Cursor is a mutable position within a [Stream], advanced by [Cursor.Next].
// It lets a caller consume tokens (and their attached trivia) in order
// without the stream itself needing to track any read position.
type Cursor struct {
	stream *Stream
	pos    int // index of the next token Next() will return
}

// Stream returns the stream this cursor walks.
func (c *Cursor) Stream() *Stream { return c.stream }

// Peek returns the next token without advancing the cursor. Returns the
// zero Token if the cursor is at the end of the stream.
func (c *Cursor) Peek() Token {
	if c.pos >= c.stream.Len() {
		return Token{}
	}
	return c.stream.At(c.pos)
}

// Next returns the next token and advances the cursor. Returns the zero
// Token if the cursor is at the end of the stream.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if !tok.IsZero() {
		c.pos++
	}
	return tok
}

// Done reports whether the cursor has consumed every token in the stream.
func (c *Cursor) Done() bool { return c.pos >= c.stream.Len() }

// Rest returns an iterator over the remaining tokens, without consuming
// them (equivalent to repeatedly peeking further ahead).
func (c *Cursor) Rest() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := c.pos; i < c.stream.Len(); i++ {
			if !yield(c.stream.At(i)) {
				return
			}
		}
	}
}
