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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstool/jstool/source"
)

func TestFile_Position(t *testing.T) {
	f := source.NewFile("a.js", "ab\ncd\nef")

	line, col := f.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)

	line, col = f.Position(3) // start of "cd"
	assert.Equal(t, 2, line)
	assert.Equal(t, 0, col)

	line, col = f.Position(7) // the 'f' in "ef"
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
}

func TestSpan_TextAndNil(t *testing.T) {
	f := source.NewFile("a.js", "hello world")
	sp := f.Span(6, 11)
	assert.Equal(t, "world", sp.Text())
	assert.False(t, sp.Nil())

	var zero source.Span
	assert.True(t, zero.Nil())
	assert.Equal(t, "", zero.Text())
}

func TestJoin(t *testing.T) {
	f := source.NewFile("a.js", "0123456789")
	a := f.Span(2, 4)
	b := f.Span(6, 8)

	j := source.Join(a, b)
	assert.Equal(t, 2, j.Start)
	assert.Equal(t, 8, j.End)

	var nilSpan source.Span
	assert.Equal(t, a, source.Join(nilSpan, a))
	assert.Equal(t, a, source.Join(a, nilSpan))
}

func TestTrimTrailingCR(t *testing.T) {
	assert.Equal(t, "a\nb\n", source.TrimTrailingCR("a\r\nb\r\n"))
	assert.Equal(t, "a\nb\n", source.TrimTrailingCR("a\nb\n"))
}
