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

package ir

import "github.com/jstool/jstool/source"

// Token returns a literal static token, e.g. punctuation or a keyword
// produced by the printer itself rather than copied from source.
func Token(text string) Element {
	return Element{Kind: KindToken, TokenVariant: TokenStatic, Text: text}
}

// DynamicToken returns a token whose text was computed at format time
// (e.g. a normalized numeric literal), as opposed to a fixed literal.
func DynamicToken(text string) Element {
	return Element{Kind: KindToken, TokenVariant: TokenDynamic, Text: text}
}

// SyntaxToken returns a token copied verbatim from the source file at
// span, remembering that position for the printer's source map
// (spec.md §3: "Syntax-sliced tokens remember source position").
func SyntaxToken(text string, span source.Span) Element {
	return Element{Kind: KindToken, TokenVariant: TokenSyntaxSlice, Text: text, SourceSpan: span}
}

// SpaceElem returns a single space. Unlike a Line, the printer emits it
// as a space in every group mode.
func SpaceElem() Element {
	return Element{Kind: KindSpace}
}

// HardLine always prints as a newline, and forces the nearest enclosing
// group to [Expanded] mode.
func HardLine() Element {
	return Element{Kind: KindLine, Line: LineHard}
}

// SoftLine prints as nothing when its enclosing group is Flat, and as a
// newline when Expanded.
func SoftLine() Element {
	return Element{Kind: KindLine, Line: LineSoft}
}

// EmptyLineElem prints as two newlines (a blank line), preserved even
// across break normalization.
func EmptyLineElem() Element {
	return Element{Kind: KindLine, Line: LineEmpty}
}

// SoftLineOrSpace prints as a space when Flat, a newline when Expanded.
func SoftLineOrSpace() Element {
	return Element{Kind: KindLine, Line: LineSoftOrSpace}
}

// IndentOf increases the indent level by one for children, printed on
// their own lines; it inserts no line breaks of its own.
func IndentOf(children ...Element) Element {
	return Element{Kind: KindIndent, Children: children}
}

// BlockIndent is hard-break, indented children, hard-break.
func BlockIndent(children ...Element) []Element {
	return []Element{HardLine(), IndentOf(children...), HardLine()}
}

// SoftBlockIndent is soft-break, indented children, soft-break — it
// collapses to just children when the enclosing group is Flat.
func SoftBlockIndent(children ...Element) []Element {
	return []Element{SoftLine(), IndentOf(children...), SoftLine()}
}

// SoftLineIndentOrSpace is a space when Flat, else a newline followed by
// indented children (no trailing break).
func SoftLineIndentOrSpace(children ...Element) []Element {
	return []Element{SoftLineOrSpace(), IndentOf(children...)}
}

// GroupOf returns a Group element with no id. Use [Doc.Group] instead of
// this directly when the group's content might start with a leading
// comment — GroupOf does not perform the comment-hoisting transformation.
func GroupOf(children ...Element) Element {
	return Element{Kind: KindGroup, Children: children}
}

// GroupWithID is like [GroupOf], but records id so that a
// [ConditionalGroupContent] elsewhere in the document can refer to this
// group's resolved mode.
func GroupWithID(id GroupID, children ...Element) Element {
	return Element{Kind: KindGroup, ID: id, Children: children}
}

// HoistedGroupOf is [GroupWithID] with [Doc.Group]'s comment-hoisting
// transformation applied first, returned as a single composable Element
// rather than written straight to a Doc — for building a group as one
// node of a larger tree (e.g. a recursive lowering pass), where calling
// [Doc.Group] directly isn't possible because the group isn't yet being
// written at the Doc's top level. A leading comment in children would
// otherwise force the whole group to break (spec.md §4.1).
func HoistedGroupOf(id GroupID, children ...Element) Element {
	hoisted, rest := HoistLeadingComments(children)
	group := Element{Kind: KindGroup, ID: id, Children: rest}
	if len(hoisted) == 0 {
		return group
	}
	return Element{Kind: KindList, Children: append(append([]Element(nil), hoisted...), group)}
}

// IfGroupBreaks emits children only when the referenced group (or, if
// group is zero, the nearest enclosing group) prints in Expanded mode.
func IfGroupBreaks(group GroupID, children ...Element) Element {
	return Element{Kind: KindConditionalGroupContent, Ref: Ref{Group: group, Mode: Expanded}, Children: children}
}

// IfGroupFits emits children only when the referenced group (or, if group
// is zero, the nearest enclosing group) prints in Flat mode.
func IfGroupFits(group GroupID, children ...Element) Element {
	return Element{Kind: KindConditionalGroupContent, Ref: Ref{Group: group, Mode: Flat}, Children: children}
}

// ExpandParentElem forces the nearest enclosing group to Expanded mode.
func ExpandParentElem() Element {
	return Element{Kind: KindExpandParent}
}

// LineSuffixOf defers printing of children until just before the next
// hard line break or [LineSuffixBoundaryElem].
func LineSuffixOf(children ...Element) Element {
	return Element{Kind: KindLineSuffix, Children: children}
}

// LineSuffixBoundaryElem flushes any pending line-suffix content
// immediately, even if no hard line follows.
func LineSuffixBoundaryElem() Element {
	return Element{Kind: KindLineSuffixBoundary}
}

// CommentOf wraps children as a comment marker, used by the comment
// engine so the group-hoisting transformation (spec.md §4.1) and other
// inspection passes can recognize comment content without parsing text.
func CommentOf(children ...Element) Element {
	return Element{Kind: KindComment, Children: children}
}

// LabelOf attaches an identity label to children with no printing effect
// of its own; used so other passes can find a particular sub-tree again.
func LabelOf(id string, children ...Element) Element {
	return Element{Kind: KindLabel, LabelID: id, Children: children}
}

// ListOf groups children with no printing effect of its own, beyond
// participating in the comment-hoisting traversal (spec.md §4.1).
func ListOf(children ...Element) Element {
	return Element{Kind: KindList, Children: children}
}

// FillOf packs items onto lines separated by sep, breaking to a new line
// whenever an item would overflow the configured width (spec.md §4.3,
// "Fill layout"). With one item, it is emitted with no separator.
func FillOf(sep Element, items ...Element) Element {
	var seps []Element
	for i := 1; i < len(items); i++ {
		seps = append(seps, sep)
	}
	return Element{Kind: KindFill, Items: items, Separators: seps}
}

// BestFittingOf returns an element whose variants are tried by the
// printer from most-flat (variants[0]) to most-expanded
// (variants[len-1]); the first variant that fits is used, with the last
// variant as the unconditional fallback. Panics if fewer than two
// variants are given (spec.md §3's BestFitting invariant).
func BestFittingOf(variants ...[]Element) Element {
	if len(variants) < 2 {
		panic("ir: BestFittingOf requires at least two variants")
	}
	return Element{Kind: KindBestFitting, Variants: variants}
}
