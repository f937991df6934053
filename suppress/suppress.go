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

// Package suppress parses "jstool-ignore" comments and resolves whether a
// given rule key is suppressed at a node, per spec.md §4.3/§6's
// suppression grammar:
//
//	jstool-ignore { <category> ("(" <value> ")")? }+ : <reason>
//
// The only recognized category keywords are "format" (suppresses
// formatting) and "lint" (suppresses a rule finding), optionally
// parameterized as "lint(<group>)" (a whole rule group) or
// "lint(<group>/<rule>)" (one specific rule) — spec.md §6's "Suppression
// surface". A bare "lint" with no parenthesized value suppresses every
// rule.
//
// A suppression comment attaches to the nearest enclosing statement (it
// does not cross a list or root boundary looking for an ancestor to
// attach to — spec.md's "ancestor-walk matching").
package suppress

import (
	"regexp"
	"strings"

	"github.com/jstool/jstool/comments"
	"github.com/jstool/jstool/rules"
	"github.com/jstool/jstool/source"
)

// Directive is one parsed jstool-ignore comment.
type Directive struct {
	Categories []Category
	Reason     string
}

// Keyword is a suppression category's keyword.
type Keyword string

const (
	KeywordLint   Keyword = "lint"
	KeywordFormat Keyword = "format"
)

// Category is a single "format", "lint", "lint(<group>)", or
// "lint(<group>/<rule>)" entry in a directive. An empty Group on a lint
// category means "every rule"; an empty Rule with a non-empty Group
// means "every rule in Group."
type Category struct {
	Keyword Keyword
	Group   rules.GroupKey
	Rule    rules.Name
}

// Matches reports whether key is covered by this category. A format
// category never matches a rule key — it suppresses formatting, not a
// lint finding.
func (c Category) Matches(key rules.Key) bool {
	if c.Keyword != KeywordLint {
		return false
	}
	if c.Group == "" {
		return true
	}
	if c.Group != key.Group {
		return false
	}
	return c.Rule == "" || c.Rule == key.Rule
}

var (
	directiveRe = regexp.MustCompile(`jstool-ignore\s+(.+?)(?:\s*:\s*(.+))?$`)
	categoryRe  = regexp.MustCompile(`^(lint|format)(?:\(([A-Za-z0-9_-]+)(?:/([A-Za-z0-9_-]+))?\))?$`)
)

// Parse extracts a Directive from a single comment's text, e.g.
// "// jstool-ignore lint(style/no-var): legacy code, see JSTOOL-42".
// Reports ok=false if the comment is not a jstool-ignore directive.
func Parse(commentText string) (Directive, bool) {
	m := directiveRe.FindStringSubmatch(stripCommentMarkers(commentText))
	if m == nil {
		return Directive{}, false
	}

	var d Directive
	d.Reason = strings.TrimSpace(m[2])
	for _, tok := range strings.Fields(m[1]) {
		cm := categoryRe.FindStringSubmatch(tok)
		if cm == nil {
			continue
		}
		d.Categories = append(d.Categories, Category{
			Keyword: Keyword(cm[1]),
			Group:   rules.GroupKey(cm[2]),
			Rule:    rules.Name(cm[3]),
		})
	}
	return d, len(d.Categories) > 0
}

func stripCommentMarkers(text string) string {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}

// HasSuppressionsCategory reports whether any directive in directives
// covers key (spec.md's has_suppressions_category predicate).
func HasSuppressionsCategory(directives []Directive, key rules.Key) bool {
	for _, d := range directives {
		for _, c := range d.Categories {
			if c.Matches(key) {
				return true
			}
		}
	}
	return false
}

// HasFormatSuppression reports whether any directive in directives
// carries a bare "format" category.
func HasFormatSuppression(directives []Directive) bool {
	for _, d := range directives {
		for _, c := range d.Categories {
			if c.Keyword == KeywordFormat {
				return true
			}
		}
	}
	return false
}

// UnknownGroup is a lint(<group>) or lint(<group>/<rule>) category whose
// group the registry doesn't recognize — spec.md §8 scenario 5's
// "unknown suppression group" diagnostic.
type UnknownGroup struct {
	Group rules.GroupKey
	Span  source.Span
}

// directiveAt pairs a parsed Directive with the span of the comment it
// came from, so an unrecognized group can be reported at that comment's
// own range rather than the range of whatever it (fails to) suppress.
type directiveAt struct {
	span source.Span
	dir  Directive
}

// Resolver answers whether a rule finding at a comment-adjacent position
// is suppressed, by collecting jstool-ignore directives from leading
// comments attached to the same owner token a finding's node resolves
// to (spec.md's "attach to nearest enclosing statement, not crossing a
// list or root boundary").
type Resolver struct {
	// byOwner indexes parsed directives by the position string
	// ("path:line:col", from [source.Span.String]) of the token they are a
	// leading comment of — a close stand-in for "the
	// nearest enclosing statement" without needing a full CST-to-ignore
	// mapping pass, since in practice a jstool-ignore comment is written
	// immediately above the statement it silences.
	byOwner map[string][]Directive
	all     []directiveAt
}

// NewResolver builds a Resolver from every jstool-ignore directive found
// among attached's leading comments.
func NewResolver(attached []comments.Attached) *Resolver {
	r := &Resolver{byOwner: make(map[string][]Directive)}
	for _, a := range attached {
		if a.Placement != comments.Leading {
			continue
		}
		d, ok := Parse(a.Trivia.Text())
		if !ok {
			continue
		}
		key := ownerKey(a)
		r.byOwner[key] = append(r.byOwner[key], d)
		r.all = append(r.all, directiveAt{span: a.Trivia.Span, dir: d})
	}
	return r
}

func ownerKey(a comments.Attached) string {
	return a.Owner.Span().String()
}

// IsSuppressed reports whether key is suppressed for a finding whose
// owning token span is ownerSpan (the span of the nearest enclosing
// statement's first token).
func (r *Resolver) IsSuppressed(ownerSpanString string, key rules.Key) bool {
	return HasSuppressionsCategory(r.byOwner[ownerSpanString], key)
}

// IsFormatSuppressed reports whether formatting is suppressed for the
// node whose owning token span is ownerSpanString.
func (r *Resolver) IsFormatSuppressed(ownerSpanString string) bool {
	return HasFormatSuppression(r.byOwner[ownerSpanString])
}

// UnknownGroups reports every lint(group) or lint(group/rule) category
// across all parsed directives whose group isn't registered in m.
func (r *Resolver) UnknownGroups(m *rules.Matcher) []UnknownGroup {
	var out []UnknownGroup
	for _, e := range r.all {
		for _, c := range e.dir.Categories {
			if c.Keyword != KeywordLint || c.Group == "" {
				continue
			}
			if _, ok := m.FindGroup(c.Group); ok {
				continue
			}
			out = append(out, UnknownGroup{Group: c.Group, Span: e.span})
		}
	}
	return out
}
