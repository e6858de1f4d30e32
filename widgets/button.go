// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image"

	"github.com/arbor-ui/arbor/core"
	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/scene"
)

// Button padding around the text, in pixels.
const (
	buttonPadX = 12
	buttonPadY = 6
)

// Pressed is the action a [Button] submits when it is activated, by
// pointer, keyboard, or accessibility default action.
type Pressed struct{}

// Button is a focusable push button. Activation submits a [Pressed]
// action tagged with the button's id. A disabled button paints dimmed and
// ignores all input without consuming it.
type Button struct {
	core.BaseWidget

	// Text is the button caption.
	Text string
}

// NewButton returns a button with the given caption.
func NewButton(text string) *Button {
	return &Button{Text: text}
}

// SetText changes the caption.
func (bt *Button) SetText(ctx *core.EventCtx, text string) {
	if bt.Text == text {
		return
	}
	bt.Text = text
	ctx.RequestLayout()
	ctx.RequestPaint()
	ctx.RequestAccessibilityUpdate()
}

func (bt *Button) OnPointerEvent(ctx *core.EventCtx, ev *events.PointerEvent) {
	if ctx.IsDisabled() {
		return
	}
	switch ev.Type {
	case events.PointerDown:
		if ev.Button == events.Left {
			ctx.SetActive(true)
			ctx.RequestFocus()
			ctx.RequestPaint()
			ctx.SetHandled()
		}
	case events.PointerUp:
		if ev.Button == events.Left && ctx.IsActive() {
			ctx.SetActive(false)
			ctx.RequestPaint()
			// A release outside the button cancels the press.
			if ctx.IsHot() {
				ctx.SubmitAction(Pressed{})
			}
			ctx.SetHandled()
		}
	}
}

func (bt *Button) OnTextEvent(ctx *core.EventCtx, ev *events.TextEvent) {
	if ctx.IsDisabled() || !ctx.HasFocus() {
		return
	}
	if ev.Type == events.TextKey && ev.Key.Down {
		switch ev.Key.Key {
		case "Enter", " ":
			ctx.SubmitAction(Pressed{})
			ctx.SetHandled()
		}
	}
}

func (bt *Button) OnAccessEvent(ctx *core.EventCtx, ev *events.AccessEvent) {
	if ctx.IsDisabled() || ev.Target != ctx.ID() {
		return
	}
	if ev.Action == events.AccessDefault {
		ctx.SubmitAction(Pressed{})
		ctx.SetHandled()
	}
}

func (bt *Button) Lifecycle(ctx *core.LifecycleCtx, ev *core.LifecycleEvent) {
	if ev.Type == core.LifeBuildFocusChain {
		ctx.RegisterForFocus()
	}
}

func (bt *Button) Layout(ctx *core.LayoutCtx, bc core.Constraints) image.Point {
	ctx.SetBaseline(buttonPadY + textBaseline)
	ts := textSize(bt.Text)
	return bc.Clamp(ts.Add(image.Pt(2*buttonPadX, 2*buttonPadY)))
}

func (bt *Button) Paint(ctx *core.PaintCtx, f *scene.Fragment) {
	r := image.Rectangle{Max: ctx.Size()}
	bg := colorButton
	switch {
	case ctx.IsDisabled():
		bg = colorButton
	case ctx.IsActive() && ctx.IsHot():
		bg = colorButtonActive
	case ctx.IsHot():
		bg = colorButtonHot
	}
	f.FillRect(r, bg)
	f.StrokeRect(r, colorBorder)
	if ctx.HasFocus() {
		f.StrokeRect(r.Inset(1), colorFocusRing)
	}
	c := colorText
	if ctx.IsDisabled() {
		c = colorTextDisabled
	}
	f.Text(bt.Text, image.Pt(buttonPadX, buttonPadY+textBaseline), c)
}

func (bt *Button) Accessibility(ctx *core.AccessCtx, node *core.AccessNode) {
	node.Role = "button"
	node.Label = bt.Text
}
