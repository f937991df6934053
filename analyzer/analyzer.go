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

// Package analyzer drives a [rules.Registry] over a [cst.Node] tree: for
// each phase, in registration order, one walk of the whole tree calls
// every rule of that phase on each node as it is entered, alongside the
// phase's global visitors.
// Findings are pushed into a [signalqueue.Queue] so the final diagnostic
// order is always by source position regardless of which rule or phase
// produced which finding.
//
// Before a finding is pushed, [Run] consults a [suppress.Resolver] built
// from the file's own comments (spec.md §4.6): a jstool-ignore directive
// covering the finding's rule key silences it, and a directive naming an
// unregistered lint group instead produces its own "unknown suppression
// group" diagnostic (spec.md §8 scenario 5).
package analyzer

import (
	"fmt"

	"github.com/jstool/jstool/comments"
	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/rules"
	"github.com/jstool/jstool/signalqueue"
	"github.com/jstool/jstool/source"
	"github.com/jstool/jstool/suppress"
	"github.com/jstool/jstool/token"
)

// GlobalVisitor runs once per phase over the whole tree, rather than
// being re-run per node-and-rule pair; used for checks that accumulate
// state across the traversal (e.g. "is this identifier referenced
// anywhere else"). It is registered directly with an [Analyzer], outside
// the per-node [rules.Rule] mechanism.
type GlobalVisitor interface {
	Enter(n cst.Node)
	Leave(n cst.Node)
	// Findings is collected once after the traversal completes.
	Findings() []rules.Finding
}

// Diagnostic is one analyzed finding, already filtered through any
// applicable suppression and severity override, in source order.
type Diagnostic struct {
	Key      rules.Key
	Severity rules.Severity
	Range    source.Span
	Message  string
}

// Analyzer runs a [rules.Registry]'s rules, plus any registered
// [GlobalVisitor]s, over one CST in phase order.
type Analyzer struct {
	registry   *rules.Registry
	matcher    *rules.Matcher
	globals    map[string][]GlobalVisitor // phase -> visitors, registration order
	phases     []string
	severities map[rules.Key]rules.Severity
}

// Option configures an [Analyzer] at construction time.
type Option func(*Analyzer)

// WithSeverities overrides each rule's [rules.Rule.DefaultSeverity] per
// the project's jstool.yaml (spec.md §6), keyed by [rules.Key]. A rule
// whose override is [rules.Off] is not run at all.
func WithSeverities(sev map[rules.Key]rules.Severity) Option {
	return func(a *Analyzer) { a.severities = sev }
}

// New returns an Analyzer driving reg.
func New(reg *rules.Registry, opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: reg,
		matcher:  rules.NewMatcher(reg),
		globals:  make(map[string][]GlobalVisitor),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterGlobal adds a whole-tree visitor to run during phase.
func (a *Analyzer) RegisterGlobal(phase string, v GlobalVisitor) {
	if _, ok := a.globals[phase]; !ok {
		a.phases = append(a.phases, phase)
	}
	a.globals[phase] = append(a.globals[phase], v)
}

// Run walks root once per phase (registry phases, in registration order,
// followed by any phases that only have global visitors registered and
// no rules), running every phase's rules and global visitors, filtering
// each rule finding through stream's suppression comments, and returns
// every surviving finding as a [Diagnostic] ordered by source position.
func (a *Analyzer) Run(root cst.Node, stream *token.Stream) []Diagnostic {
	q := signalqueue.NewQueue()

	resolver := suppress.NewResolver(comments.Attach(stream))
	for _, ug := range resolver.UnknownGroups(a.matcher) {
		q.Push(ug.Span, Diagnostic{
			Severity: rules.Error,
			Range:    ug.Span,
			Message:  fmt.Sprintf("unknown suppression group %q", string(ug.Group)),
		})
	}

	for _, phase := range a.orderedPhases() {
		rs := a.registry.InPhase(phase)
		gs := a.globals[phase]

		cst.Walk(root, func(n cst.Node, ev cst.Event) bool {
			for _, g := range gs {
				if ev == cst.Enter {
					g.Enter(n)
				} else {
					g.Leave(n)
				}
			}
			if ev != cst.Enter {
				return true
			}
			for _, rule := range rs {
				severity := rule.DefaultSeverity
				if override, ok := a.severities[rule.Key]; ok {
					severity = override
				}
				if severity == rules.Off {
					continue
				}
				if resolver.IsSuppressed(n.FirstToken().Span().String(), rule.Key) {
					continue
				}
				for _, f := range rule.Check(n) {
					q.Push(f.Range, Diagnostic{
						Key:      rule.Key,
						Severity: severity,
						Range:    f.Range,
						Message:  f.Message,
					})
				}
			}
			return true
		})

		for _, g := range gs {
			for _, f := range g.Findings() {
				q.Push(f.Range, Diagnostic{Range: f.Range, Message: f.Message})
			}
		}
	}

	signals := q.Drain()
	out := make([]Diagnostic, len(signals))
	for i, s := range signals {
		out[i] = s.Payload.(Diagnostic)
	}
	return out
}

// orderedPhases merges the registry's phase order with any phases that
// only have global visitors, preserving first-seen order across both.
func (a *Analyzer) orderedPhases() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range a.registry.Phases() {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range a.phases {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
