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

package comments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/comments"
	"github.com/jstool/jstool/internal/testutil"
)

func TestAttach_TrailingComment(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1; // trailing\nlet y = 2;")
	got := comments.Attach(stream)

	require.Len(t, got, 1)
	assert.Equal(t, comments.Trailing, got[0].Placement)
	assert.Equal(t, "// trailing", got[0].Trivia.Text())
}

func TestAttach_LeadingCommentNoBlankLine(t *testing.T) {
	stream := testutil.Lex("t.ts", "// leading\nlet x = 1;")
	got := comments.Attach(stream)

	require.Len(t, got, 1)
	assert.Equal(t, comments.Leading, got[0].Placement)
	assert.Equal(t, 0, got[0].BlankLinesBefore)
}

func TestAttach_LeadingCommentWithBlankLineBefore(t *testing.T) {
	stream := testutil.Lex("t.ts", "let a = 1;\n\n// leading\nlet x = 1;")
	got := comments.Attach(stream)

	require.Len(t, got, 1)
	assert.Equal(t, comments.Leading, got[0].Placement)
	assert.Equal(t, 1, got[0].BlankLinesBefore)
}

func TestAttach_DanglingCommentAtEndOfFile(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1;\n// trailing comment at eof")
	got := comments.Attach(stream)

	require.Len(t, got, 1)
	assert.Equal(t, comments.Dangling, got[0].Placement)
}

func TestHasComments_FalseWhenNoneAttached(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1;")
	assert.False(t, comments.HasComments(stream))
}

func TestHasComments_TrueWhenAnyAttached(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1; // ok")
	assert.True(t, comments.HasComments(stream))
}
