// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// leaf is a recording leaf widget: it logs the notifications and events it
// receives so tests can assert on ordering and gating.
type leaf struct {
	BaseWidget

	log       []string
	focusable bool
	consume   bool
	size      image.Point

	// scrollTo, when non-zero, makes the next pointer dispatch request
	// that rectangle be scrolled into view; disableOnPointer makes the
	// leaf disable itself from its own handler.
	scrollTo         image.Rectangle
	disableOnPointer bool
}

func newLeaf() *leaf {
	return &leaf{size: image.Pt(50, 20)}
}

func (l *leaf) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent) {
	l.log = append(l.log, ev.Type.String())
	if l.scrollTo != (image.Rectangle{}) {
		ctx.RequestScrollTo(l.scrollTo)
		l.scrollTo = image.Rectangle{}
	}
	if l.disableOnPointer {
		ctx.SetDisabled(true)
	}
	if l.consume {
		ctx.SetHandled()
	}
}

func (l *leaf) OnTextEvent(ctx *EventCtx, ev *events.TextEvent) {
	l.log = append(l.log, ev.Type.String())
}

func (l *leaf) OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent) {
	l.log = append(l.log, "access:"+ev.Action.String())
}

func (l *leaf) OnStatusChange(ctx *EventCtx, ch *events.StatusChange) {
	l.log = append(l.log, ch.String())
}

func (l *leaf) Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent) {
	switch ev.Type {
	case LifeWidgetAdded:
		l.log = append(l.log, "added")
	case LifeBuildFocusChain:
		if l.focusable {
			ctx.RegisterForFocus()
		}
	case LifeAnimFrame:
		l.log = append(l.log, "anim")
	}
}

func (l *leaf) Layout(ctx *LayoutCtx, bc Constraints) image.Point {
	return bc.Clamp(l.size)
}

// vbox stacks children vertically at their natural heights, forwarding
// everything. It is the minimal honest container.
type vbox struct {
	BaseWidget

	kids []*Pod
}

func newVBox(ws ...Widget) *vbox {
	b := &vbox{}
	for _, w := range ws {
		b.kids = append(b.kids, NewPod(w))
	}
	return b
}

func (b *vbox) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent) {
	for _, k := range b.kids {
		k.OnPointerEvent(ctx, ev)
	}
}

func (b *vbox) OnTextEvent(ctx *EventCtx, ev *events.TextEvent) {
	for _, k := range b.kids {
		k.OnTextEvent(ctx, ev)
	}
}

func (b *vbox) OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent) {
	for _, k := range b.kids {
		k.OnAccessEvent(ctx, ev)
	}
}

func (b *vbox) Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent) {
	for _, k := range b.kids {
		k.Lifecycle(ctx, ev)
	}
}

func (b *vbox) Layout(ctx *LayoutCtx, bc Constraints) image.Point {
	y, w := 0, 0
	for _, k := range b.kids {
		if k.State().IsStashed() {
			continue
		}
		sz := k.Layout(ctx, Loose(image.Pt(bc.Max.X, max(0, bc.Max.Y-y))))
		ctx.PlaceChild(k, image.Pt(0, y))
		y += sz.Y
		w = max(w, sz.X)
	}
	return bc.Clamp(image.Pt(w, y))
}

func (b *vbox) Paint(ctx *PaintCtx, f *scene.Fragment) {
	for _, k := range b.kids {
		if k.State().IsStashed() {
			continue
		}
		k.Paint(ctx, f)
	}
}

func (b *vbox) Accessibility(ctx *AccessCtx, node *AccessNode) {
	node.Role = "group"
	for _, k := range b.kids {
		k.Accessibility(ctx, node)
	}
}

func (b *vbox) ChildIDs() []ids.ID {
	out := make([]ids.ID, len(b.kids))
	for i, k := range b.kids {
		out[i] = k.ID()
	}
	return out
}

// scrollArea is a fixed-height viewport over one child: content keeps its
// natural size, and scroll-into-view requests shift the vertical offset.
type scrollArea struct {
	BaseWidget

	child *Pod
	size  image.Point
}

func newScrollArea(size image.Point, w Widget) *scrollArea {
	return &scrollArea{child: NewPod(w), size: size}
}

func (s *scrollArea) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent) {
	s.child.OnPointerEvent(ctx, ev)
}

func (s *scrollArea) OnTextEvent(ctx *EventCtx, ev *events.TextEvent) {
	s.child.OnTextEvent(ctx, ev)
}

func (s *scrollArea) OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent) {
	s.child.OnAccessEvent(ctx, ev)
}

func (s *scrollArea) Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent) {
	s.child.Lifecycle(ctx, ev)
}

func (s *scrollArea) Layout(ctx *LayoutCtx, bc Constraints) image.Point {
	ctx.SetUnboundedPaint()
	s.child.Layout(ctx, Loose(image.Pt(s.size.X, 1<<20)))
	ctx.PlaceChild(s.child, image.Point{})
	return bc.Clamp(s.size)
}

func (s *scrollArea) Paint(ctx *PaintCtx, f *scene.Fragment) {
	s.child.Paint(ctx, f)
}

func (s *scrollArea) Accessibility(ctx *AccessCtx, node *AccessNode) {
	node.Role = "group"
	s.child.Accessibility(ctx, node)
}

func (s *scrollArea) ChildIDs() []ids.ID {
	return []ids.ID{s.child.ID()}
}

func (s *scrollArea) ScrollIntoView(st *WidgetState, target image.Rectangle) bool {
	view := st.WindowRect()
	off := st.ScrollOffset
	if d := target.Max.Y - view.Max.Y; d > 0 {
		off.Y -= d
	}
	if d := view.Min.Y - target.Min.Y; d > 0 {
		off.Y += d
	}
	if off == st.ScrollOffset {
		return false
	}
	st.ScrollOffset = off
	return true
}

// hoverInvalidator requests a fresh layout from every pointer dispatch, so
// the rewrite loop can never settle while the pointer is over it.
type hoverInvalidator struct {
	BaseWidget
}

func (g *hoverInvalidator) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent) {
	ctx.RequestLayout()
}
