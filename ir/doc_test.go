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

package ir_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstool/jstool/ir"
)

func TestDoc_SnapshotRestore(t *testing.T) {
	d := ir.NewDoc()
	d.Write(ir.Token("a"))
	snap := d.Snapshot()
	d.Write(ir.Token("b"), ir.Token("c"))
	require.Len(t, d.Elements(), 3)

	d.Restore(snap)
	require.Len(t, d.Elements(), 1)
	assert.Equal(t, "a", d.Elements()[0].Text)
}

func TestDoc_NextGroupIDIsUnique(t *testing.T) {
	d := ir.NewDoc()
	seen := map[ir.GroupID]bool{}
	for range 10 {
		id := d.NextGroupID()
		assert.False(t, seen[id])
		seen[id] = true
		assert.NotZero(t, id)
	}
}

func TestDoc_WriteFromSecondGoroutinePanics(t *testing.T) {
	d := ir.NewDoc()
	d.Write(ir.Token("owner-write"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.Panics(t, func() {
			d.Write(ir.Token("intruder"))
		})
	}()
	wg.Wait()
}

func TestHoistLeadingComments(t *testing.T) {
	comment := ir.CommentOf(ir.Token("// leading"))
	body := ir.Token("body")

	hoisted, rest := ir.HoistLeadingComments([]ir.Element{comment, body})
	require.Len(t, hoisted, 1)
	require.Len(t, rest, 1)
	assert.Equal(t, ir.KindComment, hoisted[0].Kind)
	assert.Equal(t, "body", rest[0].Text)
}

func TestHoistLeadingComments_RecursesIntoList(t *testing.T) {
	comment := ir.CommentOf(ir.Token("// c1"))
	wrapped := ir.ListOf(comment, ir.Token("body"))

	hoisted, rest := ir.HoistLeadingComments([]ir.Element{wrapped})
	require.Len(t, hoisted, 1)
	require.Len(t, rest, 1)
	assert.Equal(t, ir.KindList, rest[0].Kind)
	assert.Equal(t, "body", rest[0].Children[0].Text)
}

func TestHoistLeadingComments_StopsAtFirstNonComment(t *testing.T) {
	els := []ir.Element{ir.Token("not a comment"), ir.CommentOf(ir.Token("// c"))}
	hoisted, rest := ir.HoistLeadingComments(els)
	assert.Empty(t, hoisted)
	assert.Len(t, rest, 2)
}

func TestDoc_Group_HoistsLeadingCommentsBeforeGroupElement(t *testing.T) {
	d := ir.NewDoc()
	comment := ir.CommentOf(ir.Token("// leading"))
	d.Group(d.NextGroupID(), comment, ir.Token("x"))

	els := d.Elements()
	require.Len(t, els, 2)
	assert.Equal(t, ir.KindComment, els[0].Kind)
	assert.Equal(t, ir.KindGroup, els[1].Kind)
	require.Len(t, els[1].Children, 1)
	assert.Equal(t, "x", els[1].Children[0].Text)
}

func TestHoistedGroupOf_HoistsLeadingCommentOutOfTheGroup(t *testing.T) {
	comment := ir.CommentOf(ir.Token("// leading"))
	el := ir.HoistedGroupOf(1, comment, ir.Token("x"))

	require.Equal(t, ir.KindList, el.Kind)
	require.Len(t, el.Children, 2)
	assert.Equal(t, ir.KindComment, el.Children[0].Kind)
	require.Equal(t, ir.KindGroup, el.Children[1].Kind)
	assert.Equal(t, ir.GroupID(1), el.Children[1].ID)
	require.Len(t, el.Children[1].Children, 1)
	assert.Equal(t, "x", el.Children[1].Children[0].Text)
}

func TestHoistedGroupOf_NoCommentReturnsPlainGroup(t *testing.T) {
	el := ir.HoistedGroupOf(2, ir.Token("x"))
	assert.Equal(t, ir.KindGroup, el.Kind)
	assert.Equal(t, ir.GroupID(2), el.ID)
}

func TestBestFittingOf_PanicsWithFewerThanTwoVariants(t *testing.T) {
	assert.Panics(t, func() {
		ir.BestFittingOf([]ir.Element{ir.Token("only")})
	})
}

func TestFillOf_SingleItemHasNoSeparator(t *testing.T) {
	el := ir.FillOf(ir.SpaceElem(), ir.Token("solo"))
	assert.Len(t, el.Items, 1)
	assert.Empty(t, el.Separators)
}

func TestDoc_Intern_SharesContentAcrossWrites(t *testing.T) {
	d := ir.NewDoc()
	shared := d.Intern(ir.Token("shared"))
	d.Write(shared, shared)

	els := d.Elements()
	require.Len(t, els, 2)
	assert.Same(t, els[0].Handle, els[1].Handle)
}
