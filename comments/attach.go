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

// Package comments classifies the trivia comments a [token.Stream]
// carries as leading, trailing, or dangling with respect to the tokens
// they sit next to, and tracks how many blank source lines precede each
// one — the bookkeeping spec.md §4.1's comment-attachment engine needs
// before the printer can decide where a comment belongs and whether to
// preserve a blank line around it.
package comments

import "github.com/jstool/jstool/token"

// Placement is where a comment sits relative to real tokens.
type Placement uint8

const (
	// Leading comments precede the token they're attached to, with at
	// least a newline separating them from the previous real token.
	Leading Placement = iota
	// Trailing comments follow a token on the same source line.
	Trailing
	// Dangling comments have no following real token to attach to (e.g.
	// a comment at end of file).
	Dangling
)

func (p Placement) String() string {
	switch p {
	case Trailing:
		return "Trailing"
	case Dangling:
		return "Dangling"
	default:
		return "Leading"
	}
}

// Attached is one comment trivia piece together with its classification.
type Attached struct {
	Trivia token.Trivia
	Owner  token.Token // the token this comment is attached to
	Placement Placement

	// BlankLinesBefore is the number of blank source lines between the
	// previous token/comment and this comment (0 means "no blank line,"
	// i.e. the comment starts on the very next line).
	BlankLinesBefore int
}

// Attach walks every token in stream and returns its trivia comments in
// document order, classified per spec.md §4.1.
func Attach(stream *token.Stream) []Attached {
	var out []Attached
	for tok := range stream.All() {
		out = append(out, attachTrailing(tok)...)
		out = append(out, attachLeading(tok)...)
	}
	return out
}

func attachTrailing(tok token.Token) []Attached {
	var out []Attached
	for _, tv := range tok.TrailingTrivia() {
		if !tv.Kind.IsComment() {
			continue
		}
		out = append(out, Attached{Trivia: tv, Owner: tok, Placement: Trailing})
	}
	return out
}

func attachLeading(tok token.Token) []Attached {
	placement := Leading
	if tok.Kind() == token.EOF {
		placement = Dangling
	}

	var out []Attached
	newlines := 0
	for _, tv := range tok.LeadingTrivia() {
		if tv.Kind == token.Newline {
			newlines++
			continue
		}
		if !tv.Kind.IsComment() {
			continue
		}
		blank := newlines - 1
		if blank < 0 {
			blank = 0
		}
		out = append(out, Attached{
			Trivia:           tv,
			Owner:            tok,
			Placement:        placement,
			BlankLinesBefore: blank,
		})
		newlines = 0
	}
	return out
}

// HasComments reports whether stream carries any leading, trailing, or
// dangling comment at all.
func HasComments(stream *token.Stream) bool {
	for tok := range stream.All() {
		if tok.HasComments() {
			return true
		}
	}
	return false
}
