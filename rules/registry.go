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

// Package rules holds the analyzer's rule registry: rules are grouped
// (spec.md §4.3's "(group, rule)" key), registered once at startup, and
// looked up by key both by the analyzer (to run them) and by the
// suppression resolver (to check whether a given key is silenced at a
// node).
package rules

import (
	"fmt"

	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/source"
)

// GroupKey names a rule group (e.g. "correctness", "style").
type GroupKey string

// Name names a single rule within a group (e.g. "no-unused-vars").
type Name string

// Key identifies a rule uniquely within a [Registry].
type Key struct {
	Group GroupKey
	Rule  Name
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Group, k.Rule)
}

// Severity is how a finding should be reported.
type Severity uint8

const (
	Off Severity = iota
	Info
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is one occurrence a rule's check function reports at a node.
type Finding struct {
	Range   source.Span
	Message string
}

// Rule is a single lint check: a stable key, the phase it runs in, a
// default severity, and a check function invoked once per CST node on
// entry (spec.md §4.3's "short-lived node visitor").
type Rule struct {
	Key             Key
	Phase           string
	DefaultSeverity Severity
	Check           func(n cst.Node) []Finding
}

// Registry holds every registered [Rule], indexed by [Key] and grouped by
// phase in registration order (so iteration order is deterministic,
// matching spec.md §5's determinism requirement).
type Registry struct {
	byKey   map[Key]Rule
	byPhase map[string][]Key
	phases  []string
	groups  map[GroupKey]bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[Key]Rule),
		byPhase: make(map[string][]Key),
		groups:  make(map[GroupKey]bool),
	}
}

// Register adds rule to the registry. Panics if its Key is already
// registered — a programming error, not a runtime condition.
func (r *Registry) Register(rule Rule) {
	if _, exists := r.byKey[rule.Key]; exists {
		panic(fmt.Sprintf("rules: duplicate registration for %s", rule.Key))
	}
	r.byKey[rule.Key] = rule
	r.groups[rule.Key.Group] = true
	if _, ok := r.byPhase[rule.Phase]; !ok {
		r.phases = append(r.phases, rule.Phase)
	}
	r.byPhase[rule.Phase] = append(r.byPhase[rule.Phase], rule.Key)
}

// Get looks up a rule by key.
func (r *Registry) Get(key Key) (Rule, bool) {
	rule, ok := r.byKey[key]
	return rule, ok
}

// HasGroup reports whether any rule is registered under group.
func (r *Registry) HasGroup(group GroupKey) bool {
	return r.groups[group]
}

// Phases returns phase names in the order rules were first registered
// under them.
func (r *Registry) Phases() []string {
	return append([]string(nil), r.phases...)
}

// InPhase returns the rules registered under phase, in registration
// order.
func (r *Registry) InPhase(phase string) []Rule {
	keys := r.byPhase[phase]
	out := make([]Rule, len(keys))
	for i, k := range keys {
		out[i] = r.byKey[k]
	}
	return out
}

// Matcher resolves group/rule names against a [Registry] and runs
// queries against CST nodes (spec.md §4.5: "the matcher exposes
// find_group(name), find_rule(group, name), and match_query(params)").
type Matcher struct {
	reg *Registry
}

// NewMatcher returns a Matcher backed by reg.
func NewMatcher(reg *Registry) *Matcher {
	return &Matcher{reg: reg}
}

// FindGroup reports whether name is a registered rule group, returning
// it unchanged as an affirmative result (spec.md's Option<GroupKey>).
func (m *Matcher) FindGroup(name GroupKey) (GroupKey, bool) {
	if !m.reg.HasGroup(name) {
		return "", false
	}
	return name, true
}

// FindRule reports whether (group, name) names a registered rule,
// returning its [Key] (spec.md's Option<RuleKey>).
func (m *Matcher) FindRule(group GroupKey, name Name) (Key, bool) {
	key := Key{Group: group, Rule: name}
	if _, ok := m.reg.Get(key); !ok {
		return Key{}, false
	}
	return key, true
}

// MatchQuery runs every rule registered under phase against n, passing
// each finding to push along with the rule that produced it — the
// "runs all rules whose Query accepts the match" half of spec.md §4.5.
// A real grammar's Query would filter by node type before invoking the
// rule; here every rule's Check function does that filtering itself,
// since this package carries no node-type taxonomy of its own.
func (m *Matcher) MatchQuery(phase string, n cst.Node, push func(Rule, Finding)) {
	for _, rule := range m.reg.InPhase(phase) {
		for _, f := range rule.Check(n) {
			push(rule, f)
		}
	}
}
