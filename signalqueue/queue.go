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

// Package signalqueue orders analyzer signals (diagnostics-to-be) by
// source position, regardless of which rule or phase produced them or in
// what order, so that the final diagnostic list always reads top to
// bottom through the file (spec.md §4.3's "signals are delivered to
// reporting in source order").
package signalqueue

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/jstool/jstool/source"
)

// Signal is one queued item: a source range plus an opaque payload and an
// insertion sequence number used only to keep otherwise-equal-range
// signals in a deterministic, stable relative order.
type Signal struct {
	Range   source.Span
	Seq     uint64
	Payload any
}

func less(a, b Signal) bool {
	if a.Range.Start != b.Range.Start {
		return a.Range.Start < b.Range.Start
	}
	if a.Range.End != b.Range.End {
		return a.Range.End < b.Range.End
	}
	return a.Seq < b.Seq
}

// Queue is a min-heap of [Signal] ordered by source position, backed by
// an ordered B-tree so it also supports in-order iteration without
// draining.
type Queue struct {
	tree    *btree.BTreeG[Signal]
	nextSeq uint64
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{tree: btree.NewBTreeG(less)}
}

// Push enqueues payload at rng, returning the Signal that was stored
// (useful for tests that want to assert on Seq ordering).
func (q *Queue) Push(rng source.Span, payload any) Signal {
	q.nextSeq++
	s := Signal{Range: rng, Seq: q.nextSeq, Payload: payload}
	q.tree.Set(s)
	return s
}

// Len returns the number of queued signals.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// PopMin removes and returns the lowest-ordered signal.
func (q *Queue) PopMin() (Signal, bool) {
	return q.tree.PopMin()
}

// All iterates every queued signal in order without removing any.
func (q *Queue) All() iter.Seq[Signal] {
	return func(yield func(Signal) bool) {
		q.tree.Scan(func(s Signal) bool {
			return yield(s)
		})
	}
}

// Drain pops every signal in order, returning them as a slice and leaving
// the queue empty.
func (q *Queue) Drain() []Signal {
	out := make([]Signal, 0, q.Len())
	for {
		s, ok := q.PopMin()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}
