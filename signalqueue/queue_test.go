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

package signalqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/signalqueue"
	"github.com/jstool/jstool/source"
)

func TestQueue_DrainOrdersBySourcePosition(t *testing.T) {
	f := source.NewFile("t.ts", "0123456789")
	q := signalqueue.NewQueue()
	q.Push(f.Span(5, 6), "c")
	q.Push(f.Span(0, 1), "a")
	q.Push(f.Span(2, 3), "b")

	got := q.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, []any{"a", "b", "c"}, []any{got[0].Payload, got[1].Payload, got[2].Payload})
	assert.Equal(t, 0, q.Len())
}

func TestQueue_TiesBrokenByInsertionOrder(t *testing.T) {
	f := source.NewFile("t.ts", "0123456789")
	q := signalqueue.NewQueue()
	q.Push(f.Span(0, 1), "first")
	q.Push(f.Span(0, 1), "second")

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Payload)
	assert.Equal(t, "second", got[1].Payload)
}

func TestQueue_AllDoesNotDrain(t *testing.T) {
	f := source.NewFile("t.ts", "0123456789")
	q := signalqueue.NewQueue()
	q.Push(f.Span(0, 1), "a")

	count := 0
	for range q.All() {
		count++
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, q.Len())
}
