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

// Package printer resolves a [ir.Element] tree into output text, per
// spec.md §4.2: it walks the IR left-to-right, decides for each group
// whether it fits on the current line, and emits a byte-for-byte
// deterministic result for a given IR and [Options].
package printer

import "strings"

// LineEnding selects the line terminator used in the printer's output.
type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
)

// IndentStyle is either a tab or a fixed number of spaces, mirroring
// spec.md §6's "indent_style ∈ {Tab, Space(n)}".
type IndentStyle struct {
	Tab   bool
	Width int // meaningful only when Tab is false
}

// Options configures the printer; see spec.md §6.
type Options struct {
	// PrintWidth is the target column budget a group tries to fit within.
	// Zero means "unset"; see [Options.WithDefaults].
	PrintWidth int

	IndentStyle IndentStyle
	LineEnding  LineEnding
}

// WithDefaults fills in the spec-mandated defaults for any zero field:
// print_width 80, two-space indent, LF line endings.
func (o Options) WithDefaults() Options {
	if o.PrintWidth == 0 {
		o.PrintWidth = 80
	}
	if !o.IndentStyle.Tab && o.IndentStyle.Width == 0 {
		o.IndentStyle.Width = 2
	}
	return o
}

// indentUnit returns the literal text inserted for one indent level.
func (o Options) indentUnit() string {
	if o.IndentStyle.Tab {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentStyle.Width)
}

// newline returns the configured line terminator.
func (o Options) newline() string {
	if o.LineEnding == CRLF {
		return "\r\n"
	}
	return "\n"
}
