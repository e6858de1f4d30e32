// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image"

	"github.com/arbor-ui/arbor/core"
	"github.com/arbor-ui/arbor/scene"
)

// Label is a static single line of text. It is not focusable and never
// consumes events.
type Label struct {
	core.BaseWidget

	// Text is the displayed text.
	Text string
}

// NewLabel returns a label showing the given text.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// SetText changes the displayed text, requesting the layout and paint the
// change needs.
func (lb *Label) SetText(ctx *core.EventCtx, text string) {
	if lb.Text == text {
		return
	}
	lb.Text = text
	ctx.RequestLayout()
	ctx.RequestPaint()
	ctx.RequestAccessibilityUpdate()
}

func (lb *Label) Layout(ctx *core.LayoutCtx, bc core.Constraints) image.Point {
	ctx.SetBaseline(textBaseline)
	return bc.Clamp(textSize(lb.Text))
}

func (lb *Label) Paint(ctx *core.PaintCtx, f *scene.Fragment) {
	c := colorText
	if ctx.IsDisabled() {
		c = colorTextDisabled
	}
	f.Text(lb.Text, image.Pt(0, textBaseline), c)
}

func (lb *Label) Accessibility(ctx *core.AccessCtx, node *core.AccessNode) {
	node.Role = "label"
	node.Label = lb.Text
}
