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

package printer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/jstool/jstool/ir"
	"github.com/jstool/jstool/source"
)

// Mapping relates a byte range of printed output back to the source span
// the bytes were copied from, for the source map spec.md §6 requires.
type Mapping struct {
	OutStart, OutEnd int
	Source           source.Span
}

// Printed is the result of a single [Print] call.
type Printed struct {
	Code     string
	Mappings []Mapping
}

// Print lays out root according to opts, deciding each [ir.Group]'s mode
// (spec.md §4.2 steps 1-4) and returning the rendered text plus a source
// map. Print never mutates root; calling it twice with the same arguments
// produces byte-identical output (spec.md §8's determinism property).
func Print(root ir.Element, opts Options) Printed {
	opts = opts.WithDefaults()
	p := &printer{
		opts:     opts,
		resolved: make(map[ir.GroupID]ir.GroupMode),
	}
	p.printElement(root, ir.Expanded)
	p.flushLineSuffixes()

	code := p.out.String()
	if opts.LineEnding == CRLF {
		lf := code
		code = strings.ReplaceAll(lf, "\n", "\r\n")
		for i := range p.mappings {
			// Every '\n' preceding this mapping in the LF buffer gained one
			// byte ('\r') in the CRLF buffer.
			p.mappings[i].OutStart += strings.Count(lf[:p.mappings[i].OutStart], "\n")
			p.mappings[i].OutEnd += strings.Count(lf[:p.mappings[i].OutEnd], "\n")
		}
	}
	return Printed{Code: code, Mappings: p.mappings}
}

// printer holds the mutable state of one [Print] call. It is not
// reentrant and not safe for concurrent use, matching the single-owner
// contract the rest of the format pipeline follows (spec.md §5).
type printer struct {
	opts Options
	out  strings.Builder

	column        int
	pendingIndent bool
	indentLevel   int

	lineSuffixes []ir.Element
	resolved     map[ir.GroupID]ir.GroupMode

	mappings []Mapping
}

// printElement renders e. mode is the ambient group mode inherited from
// the nearest enclosing [ir.KindGroup] — it governs how a Line or
// zero-referenced ConditionalGroupContent directly inside e behaves.
func (p *printer) printElement(e ir.Element, mode ir.GroupMode) {
	switch e.Kind {
	case ir.KindToken:
		p.writeToken(e)

	case ir.KindSpace:
		p.writeText(" ")

	case ir.KindLine:
		p.printLine(e, mode)

	case ir.KindIndent:
		p.indentLevel++
		for _, c := range e.Children {
			p.printElement(c, mode)
		}
		p.indentLevel--

	case ir.KindGroup:
		p.printGroup(e)

	case ir.KindConditionalGroupContent:
		if p.groupMode(e.Ref.Group, mode) == e.Ref.Mode {
			for _, c := range e.Children {
				p.printElement(c, mode)
			}
		}

	case ir.KindExpandParent:
		// No visible output; handled as a forcing signal by printGroup.

	case ir.KindFill:
		p.printFill(e)

	case ir.KindLineSuffix:
		p.lineSuffixes = append(p.lineSuffixes, e.Children...)

	case ir.KindLineSuffixBoundary:
		p.flushLineSuffixes()

	case ir.KindComment, ir.KindLabel, ir.KindList:
		for _, c := range e.Children {
			p.printElement(c, mode)
		}

	case ir.KindInterned:
		for _, c := range e.Handle.Content {
			p.printElement(c, mode)
		}

	case ir.KindBestFitting:
		p.printBestFitting(e)
	}
}

func (p *printer) groupMode(id ir.GroupID, ambient ir.GroupMode) ir.GroupMode {
	if id == 0 {
		return ambient
	}
	if m, ok := p.resolved[id]; ok {
		return m
	}
	return ambient
}

func (p *printer) printLine(e ir.Element, mode ir.GroupMode) {
	switch e.Line {
	case ir.LineHard:
		p.emitNewlines(1)
	case ir.LineEmpty:
		p.emitNewlines(2)
	case ir.LineSoft:
		if mode == ir.Expanded {
			p.emitNewlines(1)
		}
	case ir.LineSoftOrSpace:
		if mode == ir.Expanded {
			p.emitNewlines(1)
		} else {
			p.writeText(" ")
		}
	}
}

// printGroup decides the group's mode (spec.md §4.2 steps 1-4) and prints
// its children under that mode. An ExpandParent anywhere inside (not
// crossing into a nested group, which answers to its own ExpandParent)
// forces Expanded unconditionally; otherwise the group is Flat iff its
// entire content fits on the remainder of the current line.
func (p *printer) printGroup(e ir.Element) {
	var mode ir.GroupMode
	if containsForcedExpand(e.Children) {
		mode = ir.Expanded
	} else if _, ok := p.fits(e.Children, p.opts.PrintWidth-p.column); ok {
		mode = ir.Flat
	} else {
		mode = ir.Expanded
	}

	if e.ID != 0 {
		p.resolved[e.ID] = mode
	}
	for _, c := range e.Children {
		p.printElement(c, mode)
	}
}

// printFill packs items greedily, per spec.md §4.3: each item after the
// first is tried flat together with the separator that precedes it; if
// that would overflow the line, the
// separator and item are both printed in Expanded mode instead, starting a
// new pack on the line that follows.
func (p *printer) printFill(e ir.Element) {
	items := e.Items
	if len(items) == 0 {
		return
	}
	p.printElement(items[0], ir.Flat)
	for i := 1; i < len(items); i++ {
		sep := e.Separators[i-1]
		if _, ok := p.fits([]ir.Element{sep, items[i]}, p.opts.PrintWidth-p.column); ok {
			p.printElement(sep, ir.Flat)
			p.printElement(items[i], ir.Flat)
		} else {
			p.printElement(sep, ir.Expanded)
			p.printElement(items[i], ir.Expanded)
		}
	}
}

// printBestFitting tries each variant but the last in order, picking the
// first whose content up to its first forced break fits on the remainder
// of the current line; the last variant is the unconditional fallback
// (spec.md §3's BestFitting invariant).
func (p *printer) printBestFitting(e ir.Element) {
	avail := p.opts.PrintWidth - p.column
	for i, variant := range e.Variants {
		last := i == len(e.Variants)-1
		if last {
			for _, c := range variant {
				p.printElement(c, ir.Expanded)
			}
			return
		}
		if _, ok := p.fitsFirstLine(variant, avail); ok {
			for _, c := range variant {
				p.printElement(c, ir.Expanded)
			}
			return
		}
	}
}

func (p *printer) writeToken(e ir.Element) {
	start := p.writeText(e.Text)
	if e.TokenVariant == ir.TokenSyntaxSlice {
		p.mappings = append(p.mappings, Mapping{OutStart: start, OutEnd: start + len(e.Text), Source: e.SourceSpan})
	}
}

// writeText emits literal text, first materializing any pending indent,
// and returns the output byte offset the text started at.
func (p *printer) writeText(s string) int {
	if s == "" {
		return p.out.Len()
	}
	if p.pendingIndent {
		p.out.WriteString(strings.Repeat(p.opts.indentUnit(), p.indentLevel))
		p.pendingIndent = false
	}
	start := p.out.Len()
	p.out.WriteString(s)
	p.column += displayWidth(s)
	return start
}

func (p *printer) emitNewlines(n int) {
	p.flushLineSuffixes()
	for i := 0; i < n; i++ {
		p.out.WriteByte('\n')
	}
	p.column = 0
	p.pendingIndent = true
}

func (p *printer) flushLineSuffixes() {
	if len(p.lineSuffixes) == 0 {
		return
	}
	pending := p.lineSuffixes
	p.lineSuffixes = nil
	for _, e := range pending {
		p.printElement(e, ir.Expanded)
	}
}

// fits reports whether children can be printed entirely in Flat mode
// within avail columns, per spec.md §4.2 step 2: it stops as soon as the
// width budget is exceeded or a hard break makes flat printing impossible.
func (p *printer) fits(children []ir.Element, avail int) (width int, ok bool) {
	return p.fitsMode(children, avail, ir.Flat)
}

// fitsFirstLine is like fits but only measures up to (and excluding) the
// first forced line break, used for [ir.KindBestFitting] variant
// selection where later lines of an already-broken variant don't count
// against the current line's budget.
func (p *printer) fitsFirstLine(children []ir.Element, avail int) (width int, ok bool) {
	w := 0
	for _, c := range children {
		cw, forced, stop := p.measure(c, avail-w)
		w += cw
		if w > avail {
			return w, false
		}
		if stop {
			return w, true
		}
		_ = forced
	}
	return w, true
}

func (p *printer) fitsMode(children []ir.Element, avail int, mode ir.GroupMode) (int, bool) {
	w := 0
	for _, c := range children {
		cw, forced, _ := p.measure(c, avail-w)
		w += cw
		if w > avail {
			return w, false
		}
		if forced {
			return w, false
		}
	}
	return w, true
}

// measure returns the flat-mode width contribution of e, whether e forces
// a break that makes flat printing impossible (a hard line, empty line, or
// ExpandParent), and whether e itself constitutes a line break boundary
// (used by fitsFirstLine to stop early without treating the break as a
// failure).
func (p *printer) measure(e ir.Element, avail int) (width int, forced bool, isBreak bool) {
	switch e.Kind {
	case ir.KindToken:
		return displayWidth(e.Text), false, false

	case ir.KindSpace:
		return 1, false, false

	case ir.KindLine:
		switch e.Line {
		case ir.LineHard, ir.LineEmpty:
			return 0, true, true
		case ir.LineSoftOrSpace:
			return 1, false, false
		default: // LineSoft
			return 0, false, false
		}

	case ir.KindExpandParent:
		return 0, true, false

	case ir.KindIndent:
		return p.measureAll(e.Children, avail)

	case ir.KindGroup:
		return p.measureAll(e.Children, avail)

	case ir.KindConditionalGroupContent:
		if e.Ref.Mode != ir.Flat {
			return 0, false, false
		}
		return p.measureAll(e.Children, avail)

	case ir.KindFill:
		total := 0
		for i, item := range e.Items {
			w, f, _ := p.measureAll([]ir.Element{item}, avail-total)
			total += w
			if f {
				return total, true, false
			}
			if i < len(e.Separators) {
				sw, sf, _ := p.measureAll([]ir.Element{e.Separators[i]}, avail-total)
				total += sw
				if sf {
					return total, true, false
				}
			}
		}
		return total, false, false

	case ir.KindLineSuffix, ir.KindLineSuffixBoundary:
		return 0, false, false

	case ir.KindComment, ir.KindLabel, ir.KindList:
		return p.measureAll(e.Children, avail)

	case ir.KindInterned:
		return p.measureAll(e.Handle.Content, avail)

	case ir.KindBestFitting:
		// Optimistically measure the most-flat variant.
		return p.measureAll(e.Variants[0], avail)

	default:
		return 0, false, false
	}
}

func (p *printer) measureAll(children []ir.Element, avail int) (width int, forced bool, isBreak bool) {
	total := 0
	for _, c := range children {
		w, f, _ := p.measure(c, avail-total)
		total += w
		if f || total > avail {
			return total, true, false
		}
	}
	return total, false, false
}

// containsForcedExpand reports whether children contains an ExpandParent
// or a hard/empty line that belongs to this group — i.e. it does not
// recurse into a nested [ir.KindGroup], whose own ExpandParent targets
// that group instead (spec.md §3: ExpandParent "forces the nearest
// enclosing group").
func containsForcedExpand(children []ir.Element) bool {
	for _, c := range children {
		switch c.Kind {
		case ir.KindExpandParent:
			return true
		case ir.KindLine:
			if c.Line == ir.LineHard || c.Line == ir.LineEmpty {
				return true
			}
		case ir.KindGroup:
			// Belongs to the nested group; skip.
		case ir.KindIndent, ir.KindComment, ir.KindLabel, ir.KindList, ir.KindConditionalGroupContent:
			if containsForcedExpand(c.Children) {
				return true
			}
		case ir.KindFill:
			if containsForcedExpand(c.Items) || containsForcedExpand(c.Separators) {
				return true
			}
		case ir.KindInterned:
			if containsForcedExpand(c.Handle.Content) {
				return true
			}
		}
	}
	return false
}

// displayWidth measures the terminal column width of s the way the printer
// accounts for it: grapheme-cluster aware via uniseg, with a tab counted
// as a single column (tab rendering width is terminal-defined and out of
// scope for the fit decision).
func displayWidth(s string) int {
	if !strings.ContainsAny(s, "\t\n") {
		return uniseg.StringWidth(s)
	}
	width := 0
	for _, r := range s {
		switch r {
		case '\t':
			width++
		case '\n':
			// A literal newline inside token text shouldn't occur for
			// well-formed tokens; treat it as a hard reset defensively.
		default:
			width += uniseg.StringWidth(string(r))
		}
	}
	return width
}
