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

// Package token defines the lossless token stream that sits between a
// source-text parser (out of scope for this module; see spec.md §1) and
// every other package here. A [Stream] holds tokens produced by that
// external parser; each [Token] carries the leading/trailing [Trivia]
// pieces spec.md §3 requires, so that the formatter, the comment engine,
// and the analyzer can all recover exactly the bytes the parser consumed.
package token

// Kind is the semantic kind of a token's trimmed text.
type Kind uint8

const (
	// Invalid is the zero Kind; no real token has this kind.
	Invalid Kind = iota
	Ident
	Keyword
	Punct
	Number
	String
	Template
	Regex
	EOF
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Punct:
		return "Punct"
	case Number:
		return "Number"
	case String:
		return "String"
	case Template:
		return "Template"
	case Regex:
		return "Regex"
	case EOF:
		return "EOF"
	default:
		return "Invalid"
	}
}

// TriviaKind classifies a single piece of trivia. See spec.md §3.
type TriviaKind uint8

const (
	// TriviaInvalid is the zero TriviaKind; no real trivia piece has it.
	TriviaInvalid TriviaKind = iota
	Whitespace
	Newline
	LineComment
	BlockComment
	Skipped
)

func (k TriviaKind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case Skipped:
		return "Skipped"
	default:
		return "TriviaInvalid"
	}
}

// IsComment reports whether this trivia piece is a comment of either kind.
func (k TriviaKind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsSkippable reports whether this trivia piece is whitespace or a
// newline — i.e., not a comment and not skipped (erroneous) text.
func (k TriviaKind) IsSkippable() bool {
	return k == Whitespace || k == Newline
}
