// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-ui/arbor/ids"
)

func treeNode(t *Tree, parent ids.ID) *WidgetState {
	st := newWidgetState(ids.Next(), "leaf")
	t.Insert(parent, &leaf{}, st)
	return st
}

func TestTreeInsertRemove(t *testing.T) {
	tr := NewTree()
	root := treeNode(tr, 0)
	a := treeNode(tr, root.ID)
	b := treeNode(tr, root.ID)
	aa := treeNode(tr, a.ID)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []ids.ID{a.ID, b.ID}, tr.Children(root.ID))
	assert.True(t, tr.IsDescendant(root.ID, aa.ID))
	assert.False(t, tr.IsDescendant(a.ID, b.ID))

	removed := tr.Remove(a.ID)
	assert.ElementsMatch(t, []ids.ID{a.ID, aa.ID}, removed)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []ids.ID{b.ID}, tr.Children(root.ID))
	assert.False(t, tr.Contains(aa.ID))
}

func TestTreeMustState(t *testing.T) {
	tr := NewTree()
	st := treeNode(tr, 0)
	assert.Equal(t, st, tr.MustState(st.ID))
	assert.Panics(t, func() { tr.MustState(ids.Next()) })
}

func TestTreeScopedViews(t *testing.T) {
	tr := NewTree()
	root := treeNode(tr, 0)
	a := treeNode(tr, root.ID)
	b := treeNode(tr, root.ID)
	aa := treeNode(tr, a.ID)

	ref := tr.Ref(a.ID)
	_, ok := ref.State(aa.ID)
	assert.True(t, ok)
	_, ok = ref.State(b.ID)
	assert.False(t, ok, "subtree view must not reach a sibling")

	mut := tr.Mut(a.ID)
	assert.Nil(t, mut.Remove(b.ID))
	require.True(t, tr.Contains(b.ID))
	assert.ElementsMatch(t, []ids.ID{aa.ID}, mut.Remove(aa.ID))
}

func TestTreeWalkUp(t *testing.T) {
	tr := NewTree()
	root := treeNode(tr, 0)
	a := treeNode(tr, root.ID)
	aa := treeNode(tr, a.ID)

	var path []ids.ID
	tr.walkUp(aa.ID, func(st *WidgetState) bool {
		path = append(path, st.ID)
		return true
	})
	assert.Equal(t, []ids.ID{aa.ID, a.ID, root.ID}, path)
}
