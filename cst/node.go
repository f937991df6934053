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

// Package cst is a minimal, generic stand-in for the externally-produced
// concrete syntax tree this toolchain formats and analyzes. The real
// parser/grammar is out of scope (tokenization and parsing are explicit
// Non-goals); this package only needs to carry a tree shaped like one, so
// the comment engine, analyzer, and printer lowering have something
// concrete to walk in tests and in the pipeline glue.
package cst

import (
	"github.com/jstool/jstool/source"
	"github.com/jstool/jstool/token"
)

// Node is either a leaf wrapping a single [token.Token] (Children is nil)
// or an interior node grouping child nodes under a grammar production
// name. Kind names a production (e.g. "BinaryExpression", "Identifier")
// the way the external grammar would; this package does not interpret it.
type Node struct {
	Kind     string
	Token    token.Token // valid only when IsLeaf
	Children []Node
}

// Leaf wraps a single token as a CST node.
func Leaf(kind string, tok token.Token) Node {
	return Node{Kind: kind, Token: tok}
}

// Interior groups children under kind.
func Interior(kind string, children ...Node) Node {
	return Node{Kind: kind, Children: children}
}

// IsLeaf reports whether n wraps a token directly rather than children.
func (n Node) IsLeaf() bool {
	return n.Children == nil
}

// FirstToken returns the first token spanned by n.
func (n Node) FirstToken() token.Token {
	if n.IsLeaf() {
		return n.Token
	}
	for _, c := range n.Children {
		if t := c.FirstToken(); !t.IsZero() {
			return t
		}
	}
	return token.Token{}
}

// LastToken returns the last token spanned by n.
func (n Node) LastToken() token.Token {
	if n.IsLeaf() {
		return n.Token
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if t := n.Children[i].LastToken(); !t.IsZero() {
			return t
		}
	}
	return token.Token{}
}

// Span returns the source span covering every token under n.
func (n Node) Span() source.Span {
	return source.Join(n.FirstToken().Span(), n.LastToken().Span())
}

// Event marks whether a [WalkFunc] call is entering or leaving a node.
type Event uint8

const (
	Enter Event = iota
	Leave
)

// WalkFunc is called once on Enter and, for interior nodes, once more on
// Leave. Returning false on Enter skips the node's children (and
// suppresses the matching Leave call).
type WalkFunc func(n Node, ev Event) bool

// Walk performs a depth-first traversal of n, in document order.
func Walk(n Node, fn WalkFunc) {
	if !fn(n, Enter) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
	if !n.IsLeaf() {
		fn(n, Leave)
	}
}

// Tokens returns every token spanned by n, in document order, via a
// depth-first walk of its leaves.
func Tokens(n Node) []token.Token {
	var out []token.Token
	Walk(n, func(n Node, ev Event) bool {
		if ev == Enter && n.IsLeaf() && !n.Token.IsZero() {
			out = append(out, n.Token)
		}
		return true
	})
	return out
}
