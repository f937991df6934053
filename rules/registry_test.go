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

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/rules"
)

func noop(cst.Node) []rules.Finding { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := rules.NewRegistry()
	key := rules.Key{Group: "style", Rule: "no-var"}
	reg.Register(rules.Rule{Key: key, Phase: "lint", DefaultSeverity: rules.Warn, Check: noop})

	got, ok := reg.Get(key)
	require.True(t, ok)
	assert.Equal(t, rules.Warn, got.DefaultSeverity)
}

func TestRegistry_DuplicateKeyPanics(t *testing.T) {
	reg := rules.NewRegistry()
	key := rules.Key{Group: "style", Rule: "no-var"}
	reg.Register(rules.Rule{Key: key, Phase: "lint", Check: noop})

	assert.Panics(t, func() {
		reg.Register(rules.Rule{Key: key, Phase: "lint", Check: noop})
	})
}

func TestRegistry_PhasesPreserveRegistrationOrder(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register(rules.Rule{Key: rules.Key{Group: "g", Rule: "b"}, Phase: "second", Check: noop})
	reg.Register(rules.Rule{Key: rules.Key{Group: "g", Rule: "a"}, Phase: "first", Check: noop})

	assert.Equal(t, []string{"second", "first"}, reg.Phases())
}

func TestRegistry_InPhaseReturnsOnlyThatPhasesRules(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register(rules.Rule{Key: rules.Key{Group: "g", Rule: "a"}, Phase: "lint", Check: noop})
	reg.Register(rules.Rule{Key: rules.Key{Group: "g", Rule: "b"}, Phase: "other", Check: noop})

	got := reg.InPhase("lint")
	require.Len(t, got, 1)
	assert.Equal(t, rules.Name("a"), got[0].Key.Rule)
}

func TestMatcher_FindGroupReportsRegisteredGroups(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register(rules.Rule{Key: rules.Key{Group: "style", Rule: "no-var"}, Phase: "lint", Check: noop})
	m := rules.NewMatcher(reg)

	group, ok := m.FindGroup("style")
	require.True(t, ok)
	assert.Equal(t, rules.GroupKey("style"), group)

	_, ok = m.FindGroup("unknown_group")
	assert.False(t, ok)
}

func TestMatcher_FindRuleReportsRegisteredRules(t *testing.T) {
	reg := rules.NewRegistry()
	key := rules.Key{Group: "style", Rule: "no-var"}
	reg.Register(rules.Rule{Key: key, Phase: "lint", Check: noop})
	m := rules.NewMatcher(reg)

	got, ok := m.FindRule("style", "no-var")
	require.True(t, ok)
	assert.Equal(t, key, got)

	_, ok = m.FindRule("style", "no-let")
	assert.False(t, ok)
}

func TestMatcher_MatchQueryRunsEveryRuleInPhase(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register(rules.Rule{
		Key:   rules.Key{Group: "style", Rule: "no-var"},
		Phase: "lint",
		Check: func(n cst.Node) []rules.Finding {
			return []rules.Finding{{Message: "hit"}}
		},
	})
	m := rules.NewMatcher(reg)

	var got []rules.Finding
	m.MatchQuery("lint", cst.Node{}, func(_ rules.Rule, f rules.Finding) {
		got = append(got, f)
	})
	require.Len(t, got, 1)
	assert.Equal(t, "hit", got[0].Message)
}
