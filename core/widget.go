// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the retained-mode widget tree runtime: the
// [Tree] arena of per-node state, the [Pod] wrapper mediating all
// parent/child interaction, and the [RenderRoot] pass engine that decides,
// after every event or mutation, which tree-wide passes must re-run and in
// what order, iterating to a fixed point under a hard cap.
package core

import (
	"image"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// Widget is the capability contract every node in the tree implements.
// Concrete widgets embed [BaseWidget] and override what they need.
//
// Two contracts are enforced by the engine (fatal in validating mode,
// logged otherwise): a widget whose child set changes must call
// [EventCtx.ChildrenChanged] (or the lifecycle/layout equivalent) in the
// same dispatch, and a widget's Layout must place every child it lays out
// via [LayoutCtx.PlaceChild] before returning.
type Widget interface {
	// OnPointerEvent handles a pointer event. Container widgets forward
	// the event to their child pods; leaves act on it and may call
	// [EventCtx.SetHandled].
	OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent)

	// OnTextEvent handles a keyboard, IME, modifier, or window-focus event.
	// Text events are routed only into the subtree holding focus.
	OnTextEvent(ctx *EventCtx, ev *events.TextEvent)

	// OnAccessEvent handles a platform accessibility action request.
	// Containers forward; the pod has already pruned subtrees that cannot
	// contain the target.
	OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent)

	// OnStatusChange is notified of derived-state transitions: hover,
	// focus, disabled, active, stashed. A HotChanged notification arrives
	// strictly before the pointer event that caused it.
	OnStatusChange(ctx *EventCtx, change *events.StatusChange)

	// Lifecycle handles structural notifications. Container widgets must
	// forward the event to all child pods; the pods decide per child
	// whether anything needs doing.
	Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent)

	// Layout computes the widget's size under the given constraints. It
	// must lay out and place (via [LayoutCtx.PlaceChild]) every child it
	// declares in ChildIDs.
	Layout(ctx *LayoutCtx, bc Constraints) image.Point

	// Paint writes the widget's drawing ops into the given fragment and
	// composites its children by calling their pods' Paint.
	Paint(ctx *PaintCtx, f *scene.Fragment)

	// Accessibility fills the widget's accessibility node and forwards to
	// child pods with the node as parent.
	Accessibility(ctx *AccessCtx, node *AccessNode)

	// ChildIDs enumerates the ids of the widget's current children.
	ChildIDs() []ids.ID
}

// Constraints are layout box constraints: the returned size must satisfy
// Min <= size <= Max componentwise.
type Constraints struct {
	Min, Max image.Point
}

// Tight returns constraints that admit exactly the given size.
func Tight(size image.Point) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to the given size.
func Loose(size image.Point) Constraints {
	return Constraints{Max: size}
}

// Clamp returns the given size clamped into the constraints.
func (bc Constraints) Clamp(size image.Point) image.Point {
	return image.Point{
		X: min(max(size.X, bc.Min.X), bc.Max.X),
		Y: min(max(size.Y, bc.Min.Y), bc.Max.Y),
	}
}

// IsTight returns whether the constraints admit exactly one size.
func (bc Constraints) IsTight() bool {
	return bc.Min == bc.Max
}

// BaseWidget provides no-op implementations of every [Widget] method
// except Layout, which returns the minimum constrained size. Embed it in
// concrete widget types and override what the widget needs.
type BaseWidget struct{}

func (b *BaseWidget) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent)   {}
func (b *BaseWidget) OnTextEvent(ctx *EventCtx, ev *events.TextEvent)         {}
func (b *BaseWidget) OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent)     {}
func (b *BaseWidget) OnStatusChange(ctx *EventCtx, ch *events.StatusChange)   {}
func (b *BaseWidget) Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent)         {}
func (b *BaseWidget) Paint(ctx *PaintCtx, f *scene.Fragment)                  {}
func (b *BaseWidget) Accessibility(ctx *AccessCtx, node *AccessNode)          {}
func (b *BaseWidget) ChildIDs() []ids.ID                                      { return nil }
func (b *BaseWidget) Layout(ctx *LayoutCtx, bc Constraints) image.Point       { return bc.Min }

// AccessNode is one node of the accessibility tree contribution. The
// serialization format consumed by platform accessibility APIs is the
// host's concern; this is only the tree shape contract.
type AccessNode struct {
	Widget   ids.ID
	Role     string
	Label    string
	Bounds   image.Rectangle
	Children []*AccessNode
}

// WidgetMut is the scoped mutation handle granted by
// [RenderRoot.EditRootWidget]: the root widget plus an event context for
// requesting the follow-up passes the mutation needs.
type WidgetMut struct {
	Widget Widget
	Ctx    *EventCtx
}

// MutAs recovers the concrete widget type from a mutation handle, for
// calling widget-specific setters. It is the one sanctioned downcast; the
// dispatch hot path stays interface-based.
func MutAs[T Widget](m *WidgetMut) (T, bool) {
	t, ok := m.Widget.(T)
	return t, ok
}
