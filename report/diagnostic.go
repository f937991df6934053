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

// Package report renders analyzer findings and formatter diffs for human
// consumption: a [Diagnostic] is one analyzer finding plus its annotated
// source spans, and [Render] lays it out as source-context text the way
// a compiler diagnostic prints, adapted from the teacher's
// experimental/report package.
package report

import (
	"fmt"
	"strings"

	"github.com/jstool/jstool/rules"
	"github.com/jstool/jstool/source"
)

// Level is the severity a [Diagnostic] renders at.
type Level int8

const (
	Error Level = 1 + iota
	Warning
	Remark
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return "unknown"
	}
}

// FromSeverity maps a rule's configured severity to a report [Level].
func FromSeverity(s rules.Severity) Level {
	switch s {
	case rules.Error:
		return Error
	case rules.Warn:
		return Warning
	default:
		return Remark
	}
}

// Annotation is one annotated source span within a [Diagnostic].
type Annotation struct {
	Span    source.Span
	Message string
	Primary bool
}

// Diagnostic is a single rendered analyzer finding.
type Diagnostic struct {
	Level       Level
	Rule        rules.Key
	Message     string
	Annotations []Annotation
}

// Primary returns the diagnostic's primary annotation span, or the zero
// span if it has none.
func (d Diagnostic) Primary() source.Span {
	for _, a := range d.Annotations {
		if a.Primary {
			return a.Span
		}
	}
	if len(d.Annotations) > 0 {
		return d.Annotations[0].Span
	}
	return source.Span{}
}

// Render formats d as plain text: a header line, then each annotation's
// source line with a caret underline beneath the span.
func Render(d Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s [%s]\n", d.Level, d.Message, d.Rule)
	for _, a := range d.Annotations {
		renderAnnotation(&b, a)
	}
	return b.String()
}

func renderAnnotation(b *strings.Builder, a Annotation) {
	if a.Span.Nil() {
		return
	}
	line, col := a.Span.File.Position(a.Span.Start)
	fmt.Fprintf(b, "  --> %s:%d:%d\n", a.Span.File.Path(), line, col+1)

	text := lineText(a.Span)
	fmt.Fprintf(b, "  %s\n", text)

	underlineLen := a.Span.Len()
	if underlineLen < 1 {
		underlineLen = 1
	}
	fmt.Fprintf(b, "  %s%s\n", strings.Repeat(" ", col), strings.Repeat("^", underlineLen))
	if a.Message != "" {
		fmt.Fprintf(b, "  %s%s\n", strings.Repeat(" ", col), a.Message)
	}
}

// lineText returns the full source line span.Start sits on.
func lineText(span source.Span) string {
	text := span.File.Text()
	line, _ := span.File.Position(span.Start)

	start := span.Start
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end := span.Start
	for end < len(text) && text[end] != '\n' {
		end++
	}
	_ = line
	return text[start:end]
}
