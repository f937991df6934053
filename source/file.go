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

// Package source provides the file and span types shared by every other
// package in this module. A [File] is an immutable piece of source text;
// a [Span] is a half-open byte range within one.
package source

import (
	"fmt"
	"sort"
	"strings"
)

// File is a single source file: a path (used only for diagnostics and
// deduplication, not necessarily a real filesystem path) and its complete
// text.
//
// Text must not contain '\r'; callers are expected to have normalized line
// endings before constructing a File. This matches spec.md's invariant that
// "token text never contains \r."
type File struct {
	path string
	text string

	// lineStarts[i] is the byte offset of the start of line i (0-indexed).
	lineStarts []int
}

// NewFile constructs a File, precomputing the line-start table used by
// Position.
func NewFile(path, text string) *File {
	f := &File{path: path, text: text, lineStarts: []int{0}}
	for i, r := range text {
		if r == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Path returns this file's path.
func (f *File) Path() string { return f.path }

// Text returns this file's complete text.
func (f *File) Text() string { return f.text }

// Span returns the span covering the half-open byte range [start, end).
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: start, End: end}
}

// Position converts a byte offset into a 1-indexed line and 0-indexed
// column (in bytes, not grapheme clusters; the report package places its
// carets at this byte column as well).
func (f *File) Position(offset int) (line, col int) {
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	line = i // 1-indexed, since Search returns the count of starts <= offset
	col = offset - f.lineStarts[i-1]
	return line, col
}

// Spanner is any type with a Span.
type Spanner interface {
	Span() Span
}

// Span is a half-open byte range [Start, End) within a File.
//
// The zero Span is not associated with any file and is considered nil; see
// [Span.Nil].
type Span struct {
	*File
	Start, End int
}

// Nil reports whether this span refers to no file.
func (s Span) Nil() bool { return s.File == nil }

// Text returns the source text covered by this span.
func (s Span) Text() string {
	if s.Nil() {
		return ""
	}
	return s.File.Text()[s.Start:s.End]
}

// Span implements [Spanner], so that a Span can be used anywhere a Spanner
// is expected.
func (s Span) Span() Span { return s }

// Len returns the length, in bytes, of this span.
func (s Span) Len() int { return s.End - s.Start }

// String implements [fmt.Stringer] for debugging.
func (s Span) String() string {
	if s.Nil() {
		return "<nil span>"
	}
	startLine, startCol := s.Position(s.Start)
	return fmt.Sprintf("%s:%d:%d", s.Path(), startLine, startCol+1)
}

// Join returns the smallest span containing both spans. Both must belong to
// the same file; Join panics otherwise.
func Join(a, b Span) Span {
	if a.Nil() {
		return b
	}
	if b.Nil() {
		return a
	}
	if a.File != b.File {
		panic("source: cannot join spans from different files")
	}
	return Span{File: a.File, Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}

// JoinAll joins a sequence of spanners into their bounding span, skipping
// any nil spans. Returns the nil Span if every input is nil.
func JoinAll[S Spanner](spanners []S) Span {
	var out Span
	for _, s := range spanners {
		sp := s.Span()
		if sp.Nil() {
			continue
		}
		out = Join(out, sp)
	}
	return out
}

// TrimTrailingCR strips a trailing '\r' from each line of text, normalizing
// CRLF input to LF before it is handed to [NewFile]. See spec.md §3: token
// text never contains '\r'.
func TrimTrailingCR(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}
