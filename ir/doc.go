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

package ir

import (
	"fmt"

	"github.com/petermattis/goid"
)

// Doc is an append-only sink for [Element]s, with [Doc.Snapshot] /
// [Doc.Restore] for backtracking (spec.md §4.1). It is the concrete type
// behind spec.md's "format builder / buffer" contract: write_element,
// snapshot, restore.
//
// A Doc is single-owner for the lifetime of one format run (spec.md §5);
// in every build, [Doc.Write] cross-checks the calling
// goroutine against the one that first wrote to it and panics on
// mismatch, catching the class of bug where a Doc escapes into a second
// goroutine by mistake.
type Doc struct {
	elems   []Element
	nextID  GroupID
	owner   int64
	hasOwner bool
}

// NewDoc creates an empty Doc.
func NewDoc() *Doc {
	return &Doc{}
}

// Snapshot is an opaque cursor into a [Doc]'s write history. Restoring a
// Snapshot undoes every [Doc.Write] made since it was taken.
type Snapshot int

// Snapshot records the current write position.
func (d *Doc) Snapshot() Snapshot {
	return Snapshot(len(d.elems))
}

// Restore truncates the Doc back to the given Snapshot, discarding every
// element written since. Required for speculative work such as
// [BestFitting] variant selection (spec.md §4.1).
func (d *Doc) Restore(s Snapshot) {
	d.elems = d.elems[:s]
}

// Write appends elements to the Doc.
func (d *Doc) Write(es ...Element) {
	d.checkOwner()
	d.elems = append(d.elems, es...)
}

// Group writes a Group element containing children, first hoisting any
// leading comment markers out of children into the Doc directly, per
// spec.md §4.1's GroupElements transformation: a line comment attached as
// leading to the group's first token would otherwise force the whole
// group to break.
func (d *Doc) Group(id GroupID, children ...Element) {
	hoisted, rest := HoistLeadingComments(children)
	d.Write(hoisted...)
	d.Write(Element{Kind: KindGroup, ID: id, Children: rest})
}

// NextGroupID mints a GroupID unique within this Doc.
func (d *Doc) NextGroupID() GroupID {
	d.nextID++
	return d.nextID
}

// Intern wraps content as a shared [Interned] handle. The returned
// Element can be written to this Doc (or copied into several places in
// it) without content being duplicated or re-walked; spec.md §3 requires
// that interned segments "are never mutated after interning." Intern
// copies content into the new handle, and nothing in this module writes
// through a handle afterwards; the handle itself is the exported
// [Element.Handle] field, so the type system does not prevent mutation.
func (d *Doc) Intern(content ...Element) Element {
	return Element{Kind: KindInterned, Handle: &Interned{Content: append([]Element(nil), content...)}}
}

// Elements returns the elements written to this Doc so far. The returned
// slice aliases the Doc's internal storage and must not be mutated.
func (d *Doc) Elements() []Element {
	return d.elems
}

func (d *Doc) checkOwner() {
	g := goid.Get()
	if !d.hasOwner {
		d.owner = g
		d.hasOwner = true
		return
	}
	if d.owner != g {
		panic(fmt.Sprintf("ir: Doc written from goroutine %d after being created on goroutine %d; a Doc is single-owner for the lifetime of one format run", g, d.owner))
	}
}

// HoistLeadingComments splits children into (hoisted, rest), where hoisted
// is every leading Comment element (recursing into List/Interned
// wrappers, per spec.md §4.1) and rest is whatever follows the last
// hoistable comment.
func HoistLeadingComments(children []Element) (hoisted, rest []Element) {
	rest = children
	for len(rest) > 0 {
		first := rest[0]
		switch first.Kind {
		case KindComment:
			hoisted = append(hoisted, first)
			rest = rest[1:]

		case KindList, KindInterned:
			inner := first.Children
			if first.Kind == KindInterned {
				inner = first.Handle.Content
			}

			innerHoisted, innerRest := HoistLeadingComments(inner)
			hoisted = append(hoisted, innerHoisted...)

			switch {
			case len(innerRest) == 0:
				rest = rest[1:]
			case len(innerRest) == len(inner):
				// Nothing was hoisted from within; stop here.
				return hoisted, rest
			default:
				// Partially hoisted: keep the remainder as a plain List so we
				// never mutate a shared Interned in place.
				remainder := Element{Kind: KindList, Children: innerRest}
				rest = append([]Element{remainder}, rest[1:]...)
				return hoisted, rest
			}

		default:
			return hoisted, rest
		}
	}
	return hoisted, rest
}
