// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbor-ui/arbor/ids"
)

func TestMergeUpAggregatesDirtyFlags(t *testing.T) {
	parent := newWidgetState(ids.Next(), "parent")
	parent.Flags = 0
	child := newWidgetState(ids.Next(), "child")
	child.Flags = NeedsLayout | NeedsPaint | Hot | Active | ExplicitlyDisabled | IsNew

	parent.MergeUp(child)
	assert.True(t, parent.Flags.Has(NeedsLayout|NeedsPaint))
	// Per-node interactive state never leaks upward.
	assert.False(t, parent.Flags.HasAny(Hot|Active|ExplicitlyDisabled|IsNew))
	assert.True(t, parent.Descendants.MayContain(child.ID))
}

func TestMergeUpIdempotent(t *testing.T) {
	parent := newWidgetState(ids.Next(), "parent")
	parent.Flags = 0
	child := newWidgetState(ids.Next(), "child")
	child.Flags = NeedsLayout | UpdateFocusChain | HasActive

	parent.MergeUp(child)
	flags, bloom := parent.Flags, parent.Descendants
	parent.MergeUp(child)
	assert.Equal(t, flags, parent.Flags)
	assert.Equal(t, bloom, parent.Descendants)
}

func TestMergeUpTakesFocusRequest(t *testing.T) {
	parent := newWidgetState(ids.Next(), "parent")
	child := newWidgetState(ids.Next(), "child")
	child.RequestFocus = FocusWidget
	child.FocusTarget = child.ID

	parent.MergeUp(child)
	assert.Equal(t, FocusWidget, parent.RequestFocus)
	assert.Equal(t, child.ID, parent.FocusTarget)
	assert.Equal(t, FocusNone, child.RequestFocus)

	// A request must not re-fire from a later defensive merge.
	parent.RequestFocus = FocusNone
	parent.MergeUp(child)
	assert.Equal(t, FocusNone, parent.RequestFocus)
}

func TestEffectiveDisabledAndStashed(t *testing.T) {
	st := newWidgetState(ids.Next(), "w")
	assert.False(t, st.IsDisabled())
	st.Flags.Set(true, AncestorDisabled)
	assert.True(t, st.IsDisabled())
	st.Flags.Set(false, AncestorDisabled)
	st.Flags.Set(true, ExplicitlyDisabled)
	assert.True(t, st.IsDisabled())

	assert.False(t, st.IsStashed())
	st.Flags.Set(true, ExplicitlyStashed)
	assert.True(t, st.IsStashed())
}

func TestNewWidgetStateStartsFullyDirty(t *testing.T) {
	st := newWidgetState(ids.Next(), "w")
	assert.True(t, st.Flags.Has(
		IsNew|NeedsLayout|NeedsPaint|NeedsAccessibility|NeedsWindowOrigin|UpdateFocusChain))
}
