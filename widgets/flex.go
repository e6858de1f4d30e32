// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image"

	"github.com/arbor-ui/arbor/core"
	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// Flex lays out children in a row or column. Non-flex children take their
// natural size along the main axis; the leftover space is divided among
// flex children in proportion to their factors. Stashed children are
// skipped entirely.
type Flex struct {
	core.BaseWidget

	// Vertical selects a column; otherwise the flex is a row.
	Vertical bool

	children []flexChild
}

type flexChild struct {
	pod    *core.Pod
	factor int
}

// NewColumn returns an empty vertical flex.
func NewColumn() *Flex {
	return &Flex{Vertical: true}
}

// NewRow returns an empty horizontal flex.
func NewRow() *Flex {
	return &Flex{}
}

// AddChild appends a natural-size child; it returns the flex for chaining
// at construction time. Use [Flex.InsertChild] inside a dispatch.
func (fl *Flex) AddChild(w core.Widget) *Flex {
	fl.children = append(fl.children, flexChild{pod: core.NewPod(w)})
	return fl
}

// AddFlexChild appends a child taking the given share of leftover main
// axis space.
func (fl *Flex) AddFlexChild(w core.Widget, factor int) *Flex {
	fl.children = append(fl.children, flexChild{pod: core.NewPod(w), factor: factor})
	return fl
}

// AddSpacer appends flexible empty space with the given share.
func (fl *Flex) AddSpacer(factor int) *Flex {
	return fl.AddFlexChild(NewSpacer(), factor)
}

// InsertChild appends a natural-size child during a dispatch.
func (fl *Flex) InsertChild(ctx *core.EventCtx, w core.Widget) {
	fl.children = append(fl.children, flexChild{pod: core.NewPod(w)})
	ctx.ChildrenChanged()
}

// RemoveChild releases the child at the given index.
func (fl *Flex) RemoveChild(ctx *core.EventCtx, i int) {
	ch := fl.children[i]
	fl.children = append(fl.children[:i], fl.children[i+1:]...)
	ctx.ReleaseChild(ch.pod)
}

// NumChildren returns the number of children, stashed included.
func (fl *Flex) NumChildren() int { return len(fl.children) }

// ChildAt returns the pod of the child at the given index.
func (fl *Flex) ChildAt(i int) *core.Pod { return fl.children[i].pod }

func (fl *Flex) OnPointerEvent(ctx *core.EventCtx, ev *events.PointerEvent) {
	for _, ch := range fl.children {
		ch.pod.OnPointerEvent(ctx, ev)
	}
}

func (fl *Flex) OnTextEvent(ctx *core.EventCtx, ev *events.TextEvent) {
	for _, ch := range fl.children {
		ch.pod.OnTextEvent(ctx, ev)
	}
}

func (fl *Flex) OnAccessEvent(ctx *core.EventCtx, ev *events.AccessEvent) {
	for _, ch := range fl.children {
		ch.pod.OnAccessEvent(ctx, ev)
	}
}

func (fl *Flex) Lifecycle(ctx *core.LifecycleCtx, ev *core.LifecycleEvent) {
	for _, ch := range fl.children {
		ch.pod.Lifecycle(ctx, ev)
	}
}

// main and cross split a point into the flex axes.
func (fl *Flex) main(p image.Point) int {
	if fl.Vertical {
		return p.Y
	}
	return p.X
}

func (fl *Flex) cross(p image.Point) int {
	if fl.Vertical {
		return p.X
	}
	return p.Y
}

func (fl *Flex) pt(main, cross int) image.Point {
	if fl.Vertical {
		return image.Pt(cross, main)
	}
	return image.Pt(main, cross)
}

func (fl *Flex) Layout(ctx *core.LayoutCtx, bc core.Constraints) image.Point {
	used, maxCross, totalFactor := 0, 0, 0
	sizes := make([]image.Point, len(fl.children))

	// Natural-size children first.
	for i, ch := range fl.children {
		if ch.pod.State().IsStashed() {
			continue
		}
		if ch.factor > 0 {
			totalFactor += ch.factor
			continue
		}
		sz := ch.pod.Layout(ctx, core.Loose(fl.pt(max(0, fl.main(bc.Max)-used), fl.cross(bc.Max))))
		sizes[i] = sz
		used += fl.main(sz)
		maxCross = max(maxCross, fl.cross(sz))
	}

	// Flex children divide the leftover in factor proportion; rounding
	// remainders roll forward so the total is exact.
	remaining := max(0, fl.main(bc.Max)-used)
	factorLeft := totalFactor
	for i, ch := range fl.children {
		if ch.factor == 0 || ch.pod.State().IsStashed() {
			continue
		}
		slice := remaining * ch.factor / factorLeft
		factorLeft -= ch.factor
		remaining -= slice
		sz := ch.pod.Layout(ctx, core.Constraints{
			Min: fl.pt(slice, 0),
			Max: fl.pt(slice, fl.cross(bc.Max)),
		})
		sizes[i] = sz
		used += fl.main(sz)
		maxCross = max(maxCross, fl.cross(sz))
	}

	// Place in order along the main axis.
	pos := 0
	for i, ch := range fl.children {
		if ch.pod.State().IsStashed() {
			continue
		}
		ctx.PlaceChild(ch.pod, fl.pt(pos, 0))
		pos += fl.main(sizes[i])
	}
	return bc.Clamp(fl.pt(used, maxCross))
}

func (fl *Flex) Paint(ctx *core.PaintCtx, f *scene.Fragment) {
	for _, ch := range fl.children {
		if ch.pod.State().IsStashed() {
			continue
		}
		ch.pod.Paint(ctx, f)
	}
}

func (fl *Flex) Accessibility(ctx *core.AccessCtx, node *core.AccessNode) {
	node.Role = "group"
	for _, ch := range fl.children {
		ch.pod.Accessibility(ctx, node)
	}
}

func (fl *Flex) ChildIDs() []ids.ID {
	out := make([]ids.ID, len(fl.children))
	for i, ch := range fl.children {
		out[i] = ch.pod.ID()
	}
	return out
}

// Spacer is empty flexible space for use inside a [Flex].
type Spacer struct {
	core.BaseWidget
}

// NewSpacer returns a spacer; give it a flex factor via
// [Flex.AddFlexChild] or [Flex.AddSpacer].
func NewSpacer() *Spacer {
	return &Spacer{}
}
