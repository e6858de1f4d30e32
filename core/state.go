// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image"

	"github.com/arbor-ui/arbor/ids"
)

// FocusRequests is the pending focus request of a node: none, resign the
// current focus, focus a specific widget, or move to the next or previous
// entry in the focus chain.
type FocusRequests int32

const (
	FocusNone FocusRequests = iota
	FocusResign
	FocusWidget
	FocusNext
	FocusPrevious
)

var focusNames = map[FocusRequests]string{
	FocusNone:     "FocusNone",
	FocusResign:   "FocusResign",
	FocusWidget:   "FocusWidget",
	FocusNext:     "FocusNext",
	FocusPrevious: "FocusPrevious",
}

func (r FocusRequests) String() string {
	if s, ok := focusNames[r]; ok {
		return s
	}
	return "FocusRequests(?)"
}

// Insets are extra paint extents beyond a node's layout box, in pixels,
// for decorations like drop shadows that draw past the box.
type Insets struct {
	Top, Right, Bottom, Left int
}

// WidgetState is the mutable per-node bookkeeping record attached to every
// node in the tree. It is owned by the [Tree] arena and shared with the
// node's [Pod]; all other references go through the node's [ids.ID].
//
// Invariant: after a merge step, a parent's aggregated flags are the OR of
// its own locally-set flags and all of its children's (see
// [WidgetState.MergeUp]).
type WidgetState struct {
	// ID is the node's process-unique id.
	ID ids.ID

	// WidgetName is the short type name of the widget, for debugging.
	WidgetName string

	// Flags holds the dirty-request and derived interactive state.
	Flags StateFlags

	// Size is the node's layout size, set when its layout dispatch returns.
	Size image.Point

	// Origin is the node's position relative to its parent, set by the
	// parent's place-child call during layout.
	Origin image.Point

	// WindowOrigin is the node's window-space position, maintained by the
	// compose pass.
	WindowOrigin image.Point

	// PaintRect is the node's paint bounds in local coordinates: the layout
	// box expanded by any paint insets. Min may be negative.
	PaintRect image.Rectangle

	// ScrollOffset is the additional offset this node applies to its
	// children's window-space positions (used by scrolling containers).
	ScrollOffset image.Point

	// BaselineOffset is the text baseline offset from the top of the node.
	BaselineOffset int

	// RequestFocus is the node's pending focus request, bubbled to the
	// root by merging.
	RequestFocus FocusRequests

	// FocusTarget is the specific widget id for a [FocusWidget] request.
	FocusTarget ids.ID

	// ScrollTarget is the window-space rectangle to scroll into view for
	// a [RequestScroll] request.
	ScrollTarget image.Rectangle

	// Descendants may contain the id of every current (and some former)
	// descendants; used to prune targeted routing.
	Descendants Bloom

	// FocusChain is the ordered focus chain fragment of this subtree:
	// the ids of its focusable descendants (self included) in dispatch
	// order, rebuilt by the build-focus-chain pass.
	FocusChain []ids.ID
}

// newWidgetState returns the state record for a freshly wrapped widget.
// New nodes need the full pass sequence: the added-to-tree notification,
// a layout, a paint, and an accessibility contribution.
func newWidgetState(id ids.ID, name string) *WidgetState {
	return &WidgetState{
		ID:         id,
		WidgetName: name,
		Flags: IsNew | NeedsLayout | NeedsPaint | NeedsAccessibility |
			NeedsWindowOrigin | UpdateFocusChain,
	}
}

// MergeUp merges the child's state into this (the parent's) state:
// aggregated flags are ORed, the descendant filter is unioned, and a
// pending focus request is moved up (taken from the child, so it cannot
// re-fire on a later merge). Repeated merges are no-ops, so callers merge
// defensively after every dispatch into the child.
func (s *WidgetState) MergeUp(child *WidgetState) {
	s.Flags |= child.Flags & mergeMask
	s.Descendants.Union(child.Descendants)
	s.Descendants.Add(child.ID)
	if child.RequestFocus != FocusNone {
		s.RequestFocus = child.RequestFocus
		s.FocusTarget = child.FocusTarget
		child.RequestFocus = FocusNone
		child.FocusTarget = 0
	}
	if child.Flags.Has(RequestScroll) {
		s.ScrollTarget = child.ScrollTarget
	}
}

// IsDisabled returns the node's effective disabled state: its own flag
// ORed with the ancestor-supplied portion.
func (s *WidgetState) IsDisabled() bool {
	return s.Flags.HasAny(ExplicitlyDisabled | AncestorDisabled)
}

// IsStashed returns the node's effective stashed state.
func (s *WidgetState) IsStashed() bool {
	return s.Flags.HasAny(ExplicitlyStashed | AncestorStashed)
}

// WindowRect returns the node's layout box in window space.
func (s *WidgetState) WindowRect() image.Rectangle {
	return image.Rectangle{Min: s.WindowOrigin, Max: s.WindowOrigin.Add(s.Size)}
}

// WindowPaintRect returns the node's paint bounds in window space.
func (s *WidgetState) WindowPaintRect() image.Rectangle {
	return s.PaintRect.Add(s.WindowOrigin)
}

// Contains returns whether the given window-space point is inside the
// node's layout box.
func (s *WidgetState) Contains(pt image.Point) bool {
	return pt.In(s.WindowRect())
}

func (s *WidgetState) String() string {
	return fmt.Sprintf("%s[%v]{%v}", s.WidgetName, s.ID, s.Flags)
}
