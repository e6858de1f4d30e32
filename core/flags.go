// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "strings"

// StateFlags are bit flags for the dirty-request and derived interactive
// state of one tree node, held in [WidgetState.Flags].
type StateFlags int64

const (
	// NeedsLayout indicates the node (or a descendant) needs a layout pass.
	NeedsLayout StateFlags = 1 << iota

	// NeedsPaint indicates the node (or a descendant) needs repainting.
	NeedsPaint

	// NeedsAccessibility indicates the accessibility tree contribution of
	// the node (or a descendant) is out of date.
	NeedsAccessibility

	// NeedsWindowOrigin indicates the node's window-space origin must be
	// recomputed in the next compose pass.
	NeedsWindowOrigin

	// ChildrenChanged indicates the node's child set changed and the tree
	// structure pass must visit it.
	ChildrenChanged

	// UpdateFocusChain indicates the focus chain fragment of the node
	// (or a descendant) must be rebuilt.
	UpdateFocusChain

	// NeedsDisabledUpdate indicates the disabled-propagation pass must
	// visit the node's subtree.
	NeedsDisabledUpdate

	// NeedsStashUpdate indicates the stashed-propagation pass must visit
	// the node's subtree.
	NeedsStashUpdate

	// RequestScroll indicates the node requested to be scrolled into view.
	RequestScroll

	// RequestAnim indicates the node wants an animation frame.
	RequestAnim

	// IsNew indicates the node has not yet received its added-to-tree
	// notification.
	IsNew

	// ExpectingPlaceChild is a debug-only guard: set when the node's layout
	// returns, cleared by the parent's place-child call, and checked when
	// the parent's layout dispatch ends.
	ExpectingPlaceChild

	// Hot indicates the pointer is currently over the node.
	Hot

	// Active indicates the node itself holds pointer capture.
	Active

	// HasActive indicates the node or a descendant holds pointer capture.
	HasActive

	// ExplicitlyDisabled is the node's own disabled flag.
	ExplicitlyDisabled

	// ExplicitlyDisabledNew is the pending value of [ExplicitlyDisabled],
	// applied by the next disabled-propagation pass.
	ExplicitlyDisabledNew

	// AncestorDisabled indicates some ancestor is effectively disabled.
	AncestorDisabled

	// ExplicitlyStashed is the node's own stashed flag.
	ExplicitlyStashed

	// ExplicitlyStashedNew is the pending value of [ExplicitlyStashed],
	// applied by the next stashed-propagation pass.
	ExplicitlyStashedNew

	// AncestorStashed indicates some ancestor is effectively stashed.
	AncestorStashed

	// Focused indicates the node or a descendant has keyboard focus.
	Focused

	// UnboundedPaint is the escape hatch for intentionally-unbounded
	// containers: it disables the child paint-bounds containment check.
	UnboundedPaint
)

// mergeMask selects the flags that a child ORs into its parent in
// [WidgetState.MergeUp]: the aggregated dirty and derived flags for which
// the parent value is the union of its own and all children's. IsNew stays
// local: a parent adding children announces it via ChildrenChanged.
const mergeMask = NeedsLayout | NeedsPaint | NeedsAccessibility |
	NeedsWindowOrigin | ChildrenChanged | UpdateFocusChain |
	NeedsDisabledUpdate | NeedsStashUpdate | RequestScroll | RequestAnim |
	HasActive | Focused

// rewriteDirtyMask selects the flags that keep the rewrite-pass loop
// iterating. NeedsPaint, NeedsAccessibility, and RequestAnim are excluded:
// they are resolved by the host (redraw / animation frame), not by
// another rewrite iteration.
const rewriteDirtyMask = NeedsLayout | NeedsWindowOrigin | ChildrenChanged |
	UpdateFocusChain | NeedsDisabledUpdate | NeedsStashUpdate |
	RequestScroll

// Has returns whether all given flags are set.
func (f StateFlags) Has(flags StateFlags) bool {
	return f&flags == flags
}

// HasAny returns whether any of the given flags is set.
func (f StateFlags) HasAny(flags StateFlags) bool {
	return f&flags != 0
}

// Set sets or clears the given flags.
func (f *StateFlags) Set(on bool, flags StateFlags) {
	if on {
		*f |= flags
	} else {
		*f &^= flags
	}
}

var flagNames = []struct {
	flag StateFlags
	name string
}{
	{NeedsLayout, "NeedsLayout"},
	{NeedsPaint, "NeedsPaint"},
	{NeedsAccessibility, "NeedsAccessibility"},
	{NeedsWindowOrigin, "NeedsWindowOrigin"},
	{ChildrenChanged, "ChildrenChanged"},
	{UpdateFocusChain, "UpdateFocusChain"},
	{NeedsDisabledUpdate, "NeedsDisabledUpdate"},
	{NeedsStashUpdate, "NeedsStashUpdate"},
	{RequestScroll, "RequestScroll"},
	{RequestAnim, "RequestAnim"},
	{IsNew, "IsNew"},
	{ExpectingPlaceChild, "ExpectingPlaceChild"},
	{Hot, "Hot"},
	{Active, "Active"},
	{HasActive, "HasActive"},
	{ExplicitlyDisabled, "ExplicitlyDisabled"},
	{ExplicitlyDisabledNew, "ExplicitlyDisabledNew"},
	{AncestorDisabled, "AncestorDisabled"},
	{ExplicitlyStashed, "ExplicitlyStashed"},
	{ExplicitlyStashedNew, "ExplicitlyStashedNew"},
	{AncestorStashed, "AncestorStashed"},
	{Focused, "Focused"},
	{UnboundedPaint, "UnboundedPaint"},
}

func (f StateFlags) String() string {
	var b strings.Builder
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(fn.name)
		}
	}
	if b.Len() == 0 {
		return "None"
	}
	return b.String()
}
