// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image"
	"image/color"

	"github.com/arbor-ui/arbor/core"
	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// SizedBox forces a fixed size, either around a single child or as fixed
// empty space. With a nonzero Fill it paints its background.
type SizedBox struct {
	core.BaseWidget

	// Size is the forced layout size, clamped to incoming constraints.
	Size image.Point

	// Fill is the background color; a zero alpha paints nothing.
	Fill color.RGBA

	child *core.Pod
}

// NewSizedBox returns an empty box of the given size.
func NewSizedBox(size image.Point) *SizedBox {
	return &SizedBox{Size: size}
}

// NewSizedBoxWith returns a box of the given size wrapping the given child.
func NewSizedBoxWith(size image.Point, child core.Widget) *SizedBox {
	return &SizedBox{Size: size, child: core.NewPod(child)}
}

// Child returns the child pod, nil when empty.
func (sb *SizedBox) Child() *core.Pod { return sb.child }

// SetChild replaces the child, releasing any current one.
func (sb *SizedBox) SetChild(ctx *core.EventCtx, w core.Widget) {
	if sb.child != nil {
		ctx.ReleaseChild(sb.child)
		sb.child = nil
	}
	if w != nil {
		sb.child = core.NewPod(w)
	}
	ctx.ChildrenChanged()
}

func (sb *SizedBox) OnPointerEvent(ctx *core.EventCtx, ev *events.PointerEvent) {
	if sb.child != nil {
		sb.child.OnPointerEvent(ctx, ev)
	}
}

func (sb *SizedBox) OnTextEvent(ctx *core.EventCtx, ev *events.TextEvent) {
	if sb.child != nil {
		sb.child.OnTextEvent(ctx, ev)
	}
}

func (sb *SizedBox) OnAccessEvent(ctx *core.EventCtx, ev *events.AccessEvent) {
	if sb.child != nil {
		sb.child.OnAccessEvent(ctx, ev)
	}
}

func (sb *SizedBox) Lifecycle(ctx *core.LifecycleCtx, ev *core.LifecycleEvent) {
	if sb.child != nil {
		sb.child.Lifecycle(ctx, ev)
	}
}

func (sb *SizedBox) Layout(ctx *core.LayoutCtx, bc core.Constraints) image.Point {
	size := bc.Clamp(sb.Size)
	if sb.child != nil && !sb.child.State().IsStashed() {
		sb.child.Layout(ctx, core.Tight(size))
		ctx.PlaceChild(sb.child, image.Point{})
	}
	return size
}

func (sb *SizedBox) Paint(ctx *core.PaintCtx, f *scene.Fragment) {
	if sb.Fill.A > 0 {
		f.FillRect(image.Rectangle{Max: ctx.Size()}, sb.Fill)
	}
	if sb.child != nil && !sb.child.State().IsStashed() {
		sb.child.Paint(ctx, f)
	}
}

func (sb *SizedBox) Accessibility(ctx *core.AccessCtx, node *core.AccessNode) {
	node.Role = "group"
	if sb.child != nil {
		sb.child.Accessibility(ctx, node)
	}
}

func (sb *SizedBox) ChildIDs() []ids.ID {
	if sb.child == nil {
		return nil
	}
	return []ids.ID{sb.child.ID()}
}
