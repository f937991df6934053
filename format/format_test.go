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

package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/cst"
	"github.com/jstool/jstool/format"
	"github.com/jstool/jstool/internal/testutil"
	"github.com/jstool/jstool/printer"
	"github.com/jstool/jstool/token"
)

// flatTree builds a CST with one leaf per real token in stream, in
// document order — a stand-in for a real grammar's parse tree, since
// parsing is out of scope for this module.
func flatTree(stream *token.Stream) cst.Node {
	var children []cst.Node
	for tok := range stream.All() {
		if tok.Kind() == token.EOF {
			continue
		}
		children = append(children, cst.Leaf("Token", tok))
	}
	return cst.Interior("Root", children...)
}

func TestPrint_PreservesTokenTextInOrder(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1;")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})

	for _, want := range []string{"let", "x", "=", "1", ";"} {
		assert.True(t, strings.Contains(out.Code, want), "missing %q in %q", want, out.Code)
	}
}

func TestPrint_AttachesTrailingLineComment(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1; // note")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})
	assert.True(t, strings.Contains(out.Code, "// note"))
}

func TestPrint_TrailingLineCommentTerminatesTheLine(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1; // note\nlet y = 2;")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})

	idx := strings.Index(out.Code, "// note")
	require.GreaterOrEqual(t, idx, 0)
	rest := out.Code[idx+len("// note"):]
	nl := strings.Index(rest, "\n")
	require.GreaterOrEqual(t, nl, 0, "expected a newline right after the line comment, got %q", out.Code)
	assert.False(t, strings.Contains(rest[:nl], "let"), "token printed on the same line as a line comment: %q", out.Code)
}

func TestPrint_PreservesDanglingCommentAtEndOfFile(t *testing.T) {
	stream := testutil.Lex("t.ts", "let x = 1;\n// trailing note")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})
	assert.True(t, strings.Contains(out.Code, "// trailing note"))
}

func TestPrint_PreservesBlankLineBetweenStatements(t *testing.T) {
	stream := testutil.Lex("t.ts", "let a = 1;\n\nlet b = 2;")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})
	assert.True(t, strings.Contains(out.Code, "\n\n"))
}

func TestPrint_IsIdempotent(t *testing.T) {
	opts := printer.Options{PrintWidth: 80}

	stream1 := testutil.Lex("t.ts", "let x = 1; let y = 2;")
	once := format.Print(flatTree(stream1), stream1, opts)

	stream2 := testutil.Lex("t.ts", once.Code)
	twice := format.Print(flatTree(stream2), stream2, opts)

	require.Equal(t, once.Code, twice.Code)
}

func TestPrint_SourceMapCoversEveryRealToken(t *testing.T) {
	stream := testutil.Lex("t.ts", "a b c")
	root := flatTree(stream)

	out := format.Print(root, stream, printer.Options{PrintWidth: 80})
	assert.Len(t, out.Mappings, 3)
}
