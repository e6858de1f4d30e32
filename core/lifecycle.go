// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"time"

	"github.com/arbor-ui/arbor/ids"
)

// LifecycleTypes are the kinds of structural notifications routed through
// [Pod.Lifecycle]. The Route* variants are internal traversal events: the
// pod decides per child whether to descend, translate, or skip; widgets
// only forward them to their child pods.
type LifecycleTypes int32

const (
	// NoLifecycle is the zero value.
	NoLifecycle LifecycleTypes = iota

	// LifeWidgetAdded is delivered to a widget exactly once, when its pod
	// is registered in the tree.
	LifeWidgetAdded

	// LifeRouteWidgetAdded traverses the tree to find not-yet-added nodes;
	// pods translate it to LifeWidgetAdded for new children.
	LifeRouteWidgetAdded

	// LifeRouteDisabledChanged propagates ancestor disabled state down the
	// tree. Disabled carries the ancestor-effective value for the receiving
	// subtree.
	LifeRouteDisabledChanged

	// LifeRouteStashedChanged propagates ancestor stashed state down the
	// tree. Stashed carries the ancestor-effective value.
	LifeRouteStashedChanged

	// LifeRouteFocusChanged routes a focus transfer, carrying both the old
	// and new focused ids; only subtrees whose descendant filter may
	// contain either are traversed.
	LifeRouteFocusChanged

	// LifeParentOriginChanged recomputes window-space origins during the
	// compose pass. Origin carries the parent's window origin plus scroll
	// offset.
	LifeParentOriginChanged

	// LifeAnimFrame delivers an animation tick to subtrees that requested
	// one. Elapsed is the time since the previous tick, zero on the first
	// tick after idle.
	LifeAnimFrame

	// LifeBuildFocusChain rebuilds the ordered focus chain fragments;
	// focusable widgets call [LifecycleCtx.RegisterForFocus] when they
	// receive it.
	LifeBuildFocusChain
)

var lifecycleNames = map[LifecycleTypes]string{
	NoLifecycle:              "NoLifecycle",
	LifeWidgetAdded:          "LifeWidgetAdded",
	LifeRouteWidgetAdded:     "LifeRouteWidgetAdded",
	LifeRouteDisabledChanged: "LifeRouteDisabledChanged",
	LifeRouteStashedChanged:  "LifeRouteStashedChanged",
	LifeRouteFocusChanged:    "LifeRouteFocusChanged",
	LifeParentOriginChanged:  "LifeParentOriginChanged",
	LifeAnimFrame:            "LifeAnimFrame",
	LifeBuildFocusChain:      "LifeBuildFocusChain",
}

func (t LifecycleTypes) String() string {
	if s, ok := lifecycleNames[t]; ok {
		return s
	}
	return "LifecycleTypes(?)"
}

// LifecycleEvent is a structural notification. Which fields are meaningful
// depends on Type.
type LifecycleEvent struct {
	Type LifecycleTypes

	// Disabled is the ancestor-effective disabled value for
	// LifeRouteDisabledChanged.
	Disabled bool

	// Stashed is the ancestor-effective stashed value for
	// LifeRouteStashedChanged.
	Stashed bool

	// Old and New are the focus transfer endpoints for
	// LifeRouteFocusChanged. Either may be invalid (no widget).
	Old, New ids.ID

	// Origin is the parent's effective window origin for
	// LifeParentOriginChanged.
	Origin image.Point

	// Elapsed is the time since the previous animation tick for
	// LifeAnimFrame.
	Elapsed time.Duration
}

func (ev *LifecycleEvent) String() string {
	return ev.Type.String()
}
