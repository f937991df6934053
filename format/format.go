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

// Package format is the thin glue that drives one formatting run end to
// end, the way the teacher's experimental/printer.PrintFile combines its
// ast, dom, and token packages into a single entry point: lower a
// [cst.Node] (with its attached comments) into the [ir] representation,
// then hand it to [printer.Print].
//
// Language-specific layout decisions (how to print a binary expression,
// where to break an argument list, and so on) are out of scope here —
// those live in a real grammar's own lowering rules, which this module
// does not implement (tokenization and parsing are explicit Non-goals).
// What this package demonstrates and tests is the mechanical part every
// such lowering shares: spec.md §4.3's comment emission rules (a line
// comment always terminates its line; a block comment forces a break
// after itself; an inline-block comment stays on the same line), blank
// source lines are preserved as [ir.EmptyLineElem], dangling comments at
// end of file are never dropped, and the result round-trips the same way
// regardless of how deep the CST is.
package format

import (
	"github.com/jstool/jstool/comments"
	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/ir"
	"github.com/jstool/jstool/printer"
	"github.com/jstool/jstool/token"
)

// Result is the output of one [Print] call.
type Result struct {
	Code     string
	Mappings []printer.Mapping
}

// Print lowers root into the IR with a generic, language-agnostic
// layout — tokens in document order, separated by a soft line-or-space
// (a single space while the enclosing group fits flat, a newline once it
// breaks), with
// comments attached per spec.md §4.3's emission rules and blank-line
// runs preserved — and prints it with opts.
func Print(root cst.Node, stream *token.Stream, opts printer.Options) Result {
	attached := comments.Attach(stream)
	byOwner := indexByOwner(attached)

	d := ir.NewDoc()
	d.Write(lower(root, byOwner, true))
	if trailer := danglingTrailer(attached); len(trailer) > 0 {
		d.Write(trailer...)
	}

	printed := printer.Print(ir.ListOf(d.Elements()...), opts)
	return Result{Code: printed.Code, Mappings: printed.Mappings}
}

func indexByOwner(attached []comments.Attached) map[string][]comments.Attached {
	out := make(map[string][]comments.Attached)
	for _, a := range attached {
		key := a.Owner.Span().String()
		out[key] = append(out[key], a)
	}
	return out
}

// danglingTrailer renders comments with no following real token to
// attach to (spec.md §4.3's "Dangling"), e.g. a comment at end of file.
// [lower] never visits the EOF token these are attached to, so without
// this they'd be silently dropped — violating spec.md §8's
// comment-conservation property.
func danglingTrailer(attached []comments.Attached) []ir.Element {
	var els []ir.Element
	for _, a := range attached {
		if a.Placement != comments.Dangling {
			continue
		}
		els = append(els, ir.HardLine(), ir.CommentOf(ir.Token(a.Trivia.Text())))
	}
	return els
}

// lower converts one CST node into IR. first marks whether this is the
// very first token printed, so we don't emit a leading separator.
func lower(n cst.Node, byOwner map[string][]comments.Attached, first bool) ir.Element {
	if n.IsLeaf() {
		return lowerToken(n.Token, byOwner, first)
	}

	children := make([]ir.Element, 0, len(n.Children)*2)
	isFirst := first
	for _, c := range n.Children {
		children = append(children, lower(c, byOwner, isFirst))
		isFirst = false
	}
	// HoistedGroupOf, not the plain GroupOf: a leading comment on this
	// node's first token must not force the whole group to break
	// (spec.md §4.1's GroupElements transformation).
	return ir.HoistedGroupOf(0, children...)
}

func lowerToken(tok token.Token, byOwner map[string][]comments.Attached, first bool) ir.Element {
	var els []ir.Element

	owned := byOwner[tok.Span().String()]
	sawComment := false
	lastWasInline := false
	for _, a := range owned {
		if a.Placement != comments.Leading {
			continue
		}

		switch {
		case !sawComment && first:
			// The very first thing in the whole document: no separator.
		case a.BlankLinesBefore > 0:
			els = append(els, ir.EmptyLineElem())
		case lastWasInline:
			els = append(els, ir.SpaceElem())
		default:
			els = append(els, ir.HardLine())
		}

		comment := ir.CommentOf(ir.Token(a.Trivia.Text()))
		switch a.Trivia.Classify() {
		case token.Line:
			els = append(els, comment, ir.ExpandParentElem())
			lastWasInline = false
		case token.Block:
			els = append(els, comment)
			lastWasInline = false
		default: // InlineBlock
			els = append(els, comment)
			lastWasInline = true
		}
		sawComment = true
	}

	switch {
	case blankLinesBeforeToken(tok) > 0:
		els = append(els, ir.EmptyLineElem())
	case sawComment && lastWasInline:
		els = append(els, ir.SpaceElem())
	case sawComment:
		els = append(els, ir.HardLine())
	case !first:
		els = append(els, ir.SoftLineOrSpace())
	}

	els = append(els, ir.SyntaxToken(tok.Text(), tok.Span()))

	for _, a := range owned {
		if a.Placement != comments.Trailing {
			continue
		}
		comment := ir.CommentOf(ir.Token(a.Trivia.Text()))
		switch a.Trivia.Classify() {
		case token.Line:
			// A line comment always terminates the line: deferred until
			// the next hard line break and forces the enclosing group to
			// break, so nothing else is ever printed on this output line
			// (spec.md §4.3).
			els = append(els, ir.LineSuffixOf(ir.SpaceElem(), comment), ir.ExpandParentElem())
		case token.Block:
			// Block comments always force at least one line break after
			// themselves (spec.md §4.3).
			els = append(els, ir.SpaceElem(), comment, ir.HardLine())
		default: // InlineBlock
			els = append(els, ir.SpaceElem(), comment, ir.SpaceElem())
		}
	}

	return ir.ListOf(els...)
}

// blankLinesBeforeToken counts blank source lines between tok's leading
// comments (if any) and tok itself, so a blank line between two plain
// tokens with no comment between them is preserved the same way a blank
// line next to a comment is.
func blankLinesBeforeToken(tok token.Token) int {
	trivia := tok.LeadingTrivia()
	newlines := 0
	for i := len(trivia) - 1; i >= 0; i-- {
		if trivia[i].Kind.IsComment() {
			break
		}
		if trivia[i].Kind == token.Newline {
			newlines++
		}
	}
	if newlines == 0 {
		return 0
	}
	return newlines - 1
}
