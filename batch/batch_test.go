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

package batch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/batch"
)

func TestRun_PreservesInputOrder(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	out, err := batch.Run(context.Background(), 0, in, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 10, 40, 20, 30}, out)
}

func TestRun_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	in := []int{1, 2, 3}
	_, err := batch.Run(context.Background(), 0, in, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRun_RespectsConcurrencyLimit(t *testing.T) {
	in := make([]int, 20)
	var active atomic.Int32
	var maxActive atomic.Int32
	out, err := batch.Run(context.Background(), 2, in, func(_ context.Context, n int) (int, error) {
		n1 := active.Add(1)
		for {
			m := maxActive.Load()
			if n1 <= m || maxActive.CompareAndSwap(m, n1) {
				break
			}
		}
		active.Add(-1)
		return n, nil
	})
	require.NoError(t, err)
	assert.Len(t, out, 20)
	assert.LessOrEqual(t, int(maxActive.Load()), 2)
}
