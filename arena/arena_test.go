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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/arena"
)

func TestArena_PreservesIdentityAcrossGrowth(t *testing.T) {
	var a arena.Arena[int]

	const n = 1000
	ptrs := make([]arena.Pointer[int], n)
	for i := range n {
		ptrs[i] = a.New(i * i)
	}

	require.Equal(t, n, a.Len())
	for i, p := range ptrs {
		assert.Equal(t, i*i, *p.In(&a))
	}
}

func TestArena_MutationsAreVisibleThroughPointer(t *testing.T) {
	var a arena.Arena[string]
	p := a.New("before")
	*p.In(&a) = "after"
	assert.Equal(t, "after", *p.In(&a))
}

func TestPointer_ZeroIsNil(t *testing.T) {
	var p arena.Pointer[int]
	assert.True(t, p.Nil())
}

func TestArena_OutOfRangePanics(t *testing.T) {
	var a arena.Arena[int]
	a.New(1)
	assert.Panics(t, func() {
		_ = a.At(arena.Pointer[int](5))
	})
}
