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

// Package ir defines the formatting intermediate representation described
// in spec.md §3–§4.1: an algebraic tree of primitive elements (tokens,
// spaces, lines, groups, indents, conditional content, fill layout,
// line-suffixes, best-fitting variants) plus the append-only [Doc] buffer
// that accumulates them.
//
// Following spec.md §9's design note, [Element] is an ordinary tagged
// union (a struct with a [Kind] discriminator), not an interface with one
// implementation per variant — every consumer, starting with the printer
// in the sibling package, dispatches on Kind rather than via dynamic
// dispatch.
package ir

import "github.com/jstool/jstool/source"

// Kind discriminates the variant of an [Element]. See spec.md §3 and §6
// for the full stable tag list.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindToken
	KindSpace
	KindLine
	KindIndent
	KindGroup
	KindConditionalGroupContent
	KindExpandParent
	KindFill
	KindLineSuffix
	KindLineSuffixBoundary
	KindComment
	KindLabel
	KindInterned
	KindBestFitting
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "Token"
	case KindSpace:
		return "Space"
	case KindLine:
		return "Line"
	case KindIndent:
		return "Indent"
	case KindGroup:
		return "Group"
	case KindConditionalGroupContent:
		return "ConditionalGroupContent"
	case KindExpandParent:
		return "ExpandParent"
	case KindFill:
		return "Fill"
	case KindLineSuffix:
		return "LineSuffix"
	case KindLineSuffixBoundary:
		return "LineSuffixBoundary"
	case KindComment:
		return "Comment"
	case KindLabel:
		return "Label"
	case KindInterned:
		return "Interned"
	case KindBestFitting:
		return "BestFitting"
	case KindList:
		return "List"
	default:
		return "Invalid"
	}
}

// TokenVariant distinguishes the three kinds of literal-text token spec.md
// §3 calls for.
type TokenVariant uint8

const (
	TokenStatic TokenVariant = iota
	TokenDynamic
	TokenSyntaxSlice
)

// LineVariant is the flavor of a Line element; spec.md §3:
// "Line{Hard|Soft|Empty|SoftOrSpace}".
type LineVariant uint8

const (
	LineHard LineVariant = iota
	LineSoft
	LineEmpty
	LineSoftOrSpace
)

// GroupMode is the two printing modes a [Group] resolves to.
type GroupMode uint8

const (
	Flat GroupMode = iota
	Expanded
)

func (m GroupMode) String() string {
	if m == Expanded {
		return "Expanded"
	}
	return "Flat"
}

// GroupID names a [Group] so that a [ConditionalGroupContent] elsewhere in
// the same document can refer back to it. The zero GroupID means "no id."
// A GroupID is only meaningful within the single [Doc] that minted it
// (spec.md §3's "GroupId is unique within a single document").
type GroupID uint32

// Element is a single node of the format IR tree. Exactly one group of
// fields is meaningful, selected by Kind; see the accessor comment on each
// field for which Kind(s) populate it.
//
// Element is a plain value (not a pointer), and a tree of them is a true
// tree (no parent pointers, no back-references) except where an Interned
// handle is shared by pointer — see [Doc.Intern].
type Element struct {
	Kind Kind

	// Token fields (Kind == KindToken).
	TokenVariant TokenVariant
	Text         string
	SourceSpan   source.Span // populated only for TokenSyntaxSlice

	// Line fields (Kind == KindLine).
	Line LineVariant

	// Group fields (Kind == KindGroup). ID is optional (zero means none).
	// Children holds the group's content.
	ID       GroupID
	Children []Element

	// ConditionalGroupContent fields (Kind == KindConditionalGroupContent).
	// Mode selects whether Children is emitted when the referenced group
	// (Ref; zero means "the nearest enclosing group") is printing in Mode.
	Ref Ref

	// Fill fields (Kind == KindFill). Items and Separators interleave as
	// item0 sep0 item1 sep1 ... ; len(Separators) == len(Items)-1.
	Items      []Element
	Separators []Element

	// BestFitting fields (Kind == KindBestFitting). At least two variants,
	// ordered from most-flat to most-expanded.
	Variants [][]Element

	// Label fields (Kind == KindLabel).
	LabelID string

	// Interned fields (Kind == KindInterned).
	Handle *Interned
}

// Ref names which group a [ConditionalGroupContent] element is conditioned
// on, and in which [GroupMode].
type Ref struct {
	Group GroupID // zero: the nearest enclosing group
	Mode  GroupMode
}

// Interned is a shared, immutable IR fragment referenced by handle from
// possibly many places in a document (spec.md §3: "Interned IR segments
// are shared by handle within one document and are never mutated after
// interning"). Interned turns the IR from a strict tree into a DAG at
// exactly these points (spec.md §5).
type Interned struct {
	Content []Element
}
