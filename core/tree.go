// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/arbor-ui/arbor/ids"
)

// Tree is the arena owning every node's widget value and [WidgetState]
// record, keyed by [ids.ID], with parent/child links for navigation.
// Ownership discipline makes cycles structurally impossible: each node is
// reachable from exactly one parent [Pod], and all back-references are by
// id through this arena, never by pointer.
type Tree struct {
	widgets  map[ids.ID]Widget
	states   map[ids.ID]*WidgetState
	parents  map[ids.ID]ids.ID
	children map[ids.ID][]ids.ID
}

// NewTree returns an empty tree arena.
func NewTree() *Tree {
	return &Tree{
		widgets:  map[ids.ID]Widget{},
		states:   map[ids.ID]*WidgetState{},
		parents:  map[ids.ID]ids.ID{},
		children: map[ids.ID][]ids.ID{},
	}
}

// Insert registers a node under the given parent. The parent id may be
// invalid for the root node.
func (t *Tree) Insert(parent ids.ID, w Widget, st *WidgetState) {
	id := st.ID
	t.widgets[id] = w
	t.states[id] = st
	if parent.IsValid() {
		t.parents[id] = parent
		t.children[parent] = append(t.children[parent], id)
	}
}

// Remove detaches the subtree rooted at the given id and deletes every
// node in it from the arena, returning the removed ids.
func (t *Tree) Remove(id ids.ID) []ids.ID {
	if parent, ok := t.parents[id]; ok {
		kids := t.children[parent]
		for i, k := range kids {
			if k == id {
				t.children[parent] = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}
	var removed []ids.ID
	var rm func(id ids.ID)
	rm = func(id ids.ID) {
		for _, k := range t.children[id] {
			rm(k)
		}
		delete(t.widgets, id)
		delete(t.states, id)
		delete(t.parents, id)
		delete(t.children, id)
		removed = append(removed, id)
	}
	rm(id)
	return removed
}

// State returns the state record for the given id, reporting whether it
// exists. Use [Tree.MustState] when absence is a programming error.
func (t *Tree) State(id ids.ID) (*WidgetState, bool) {
	st, ok := t.states[id]
	return st, ok
}

// MustState returns the state record for the given id, panicking with a
// descriptive message if it does not exist: callers use it only where a
// missing node indicates a bug.
func (t *Tree) MustState(id ids.ID) *WidgetState {
	st, ok := t.states[id]
	if !ok {
		panic(fmt.Sprintf("core.Tree: no widget with %v in tree; this is a programming error", id))
	}
	return st
}

// Widget returns the widget value for the given id.
func (t *Tree) Widget(id ids.ID) (Widget, bool) {
	w, ok := t.widgets[id]
	return w, ok
}

// Parent returns the parent id of the given node, invalid for the root.
func (t *Tree) Parent(id ids.ID) ids.ID {
	return t.parents[id]
}

// Children returns the child ids of the given node.
func (t *Tree) Children(id ids.ID) []ids.ID {
	return t.children[id]
}

// Contains returns whether the given id is in the arena.
func (t *Tree) Contains(id ids.ID) bool {
	_, ok := t.states[id]
	return ok
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.states)
}

// IsDescendant returns whether id is anc or a descendant of anc.
func (t *Tree) IsDescendant(anc, id ids.ID) bool {
	for id.IsValid() {
		if id == anc {
			return true
		}
		id = t.parents[id]
	}
	return false
}

// walkUp calls fun on the given node and each of its ancestors in turn,
// stopping when fun returns false or the root is passed.
func (t *Tree) walkUp(id ids.ID, fun func(st *WidgetState) bool) {
	for id.IsValid() {
		st, ok := t.states[id]
		if !ok {
			return
		}
		if !fun(st) {
			return
		}
		id = t.parents[id]
	}
}

// Ref returns a read view scoped to the subtree rooted at the given id:
// lookups outside that subtree report absence, so a caller handed a
// subtree cannot reach out of it.
func (t *Tree) Ref(root ids.ID) TreeRef {
	return TreeRef{t: t, root: root}
}

// Mut returns a write view scoped to the subtree rooted at the given id.
func (t *Tree) Mut(root ids.ID) TreeMut {
	return TreeMut{TreeRef{t: t, root: root}}
}

// TreeRef is a read view of a [Tree] scoped to one subtree.
type TreeRef struct {
	t    *Tree
	root ids.ID
}

// State returns the state record for the given id if it is inside the
// view's subtree.
func (r TreeRef) State(id ids.ID) (*WidgetState, bool) {
	if !r.t.IsDescendant(r.root, id) {
		return nil, false
	}
	return r.t.State(id)
}

// Widget returns the widget for the given id if it is inside the view's
// subtree.
func (r TreeRef) Widget(id ids.ID) (Widget, bool) {
	if !r.t.IsDescendant(r.root, id) {
		return nil, false
	}
	return r.t.Widget(id)
}

// Children returns the child ids of the given node if it is inside the
// view's subtree.
func (r TreeRef) Children(id ids.ID) []ids.ID {
	if !r.t.IsDescendant(r.root, id) {
		return nil
	}
	return r.t.Children(id)
}

// TreeMut is a write view of a [Tree] scoped to one subtree.
type TreeMut struct {
	TreeRef
}

// Insert registers a node under the given parent, which must be inside
// the view's subtree.
func (m TreeMut) Insert(parent ids.ID, w Widget, st *WidgetState) bool {
	if !m.t.IsDescendant(m.root, parent) {
		return false
	}
	m.t.Insert(parent, w, st)
	return true
}

// Remove detaches and deletes the subtree at the given id, which must be
// inside the view's subtree.
func (m TreeMut) Remove(id ids.ID) []ids.ID {
	if !m.t.IsDescendant(m.root, id) {
		return nil
	}
	return m.t.Remove(id)
}
