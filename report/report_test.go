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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/report"
	"github.com/jstool/jstool/rules"
	"github.com/jstool/jstool/source"
)

func TestRender_IncludesMessageAndSourceLine(t *testing.T) {
	f := source.NewFile("t.ts", "let x = 1;\nlet y = 2;")
	span := f.Span(15, 16) // "y"

	d := report.Diagnostic{
		Level:   report.Warning,
		Rule:    rules.Key{Group: "style", Rule: "no-y"},
		Message: "avoid y",
		Annotations: []report.Annotation{
			{Span: span, Message: "here", Primary: true},
		},
	}

	out := report.Render(d)
	assert.True(t, strings.Contains(out, "avoid y"))
	assert.True(t, strings.Contains(out, "let y = 2;"))
	assert.True(t, strings.Contains(out, "here"))
}

func TestDiagnostic_PrimaryPrefersMarkedAnnotation(t *testing.T) {
	f := source.NewFile("t.ts", "abc")
	d := report.Diagnostic{
		Annotations: []report.Annotation{
			{Span: f.Span(0, 1)},
			{Span: f.Span(1, 2), Primary: true},
		},
	}
	assert.Equal(t, f.Span(1, 2), d.Primary())
}

func TestFromSeverity(t *testing.T) {
	assert.Equal(t, report.Error, report.FromSeverity(rules.Error))
	assert.Equal(t, report.Warning, report.FromSeverity(rules.Warn))
}

func TestDiff_NoChangeReturnsEmpty(t *testing.T) {
	out, err := report.Diff("t.ts", "same", "same")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiff_RendersUnifiedDiff(t *testing.T) {
	out, err := report.Diff("t.ts", "let x=1\n", "let x = 1;\n")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "-let x=1"))
	assert.True(t, strings.Contains(out, "+let x = 1;"))
}
