// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"time"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
)

// rootState is the one global-state record of a render root. It is passed
// by reference into every pass invocation through the contexts; there are
// no package-level singletons, so independent roots never interfere.
type rootState struct {
	tree     *Tree
	signals  *SignalQueue
	settings *Settings

	// focused is the id of the widget holding keyboard focus, if any.
	focused ids.ID

	// focusChain is the root's ordered focus chain, refreshed by the
	// build-focus-chain pass.
	focusChain []ids.ID

	windowSize image.Point
	scale      float32

	// last known pointer position, tracked so hover can be re-evaluated
	// against new geometry without a pointer move.
	pointerPos image.Point
	hasPointer bool

	// pointerUpdateNeeded is set when layout or compose may have moved
	// geometry under the pointer.
	pointerUpdateNeeded bool

	// mutations queued via MutateLater, applied at the top of the next
	// rewrite iteration.
	mutations []func()

	// lastAnim is the previous animation tick time; zero after idle so the
	// first new tick reports zero elapsed.
	lastAnim time.Time

	// animSignaled / redrawSignaled deduplicate the corresponding outbound
	// signals between host acknowledgements.
	animSignaled   bool
	redrawSignaled bool

	// deferredCycles counts consecutive capped rewrite loops, for the
	// convergence escalation policy.
	deferredCycles int

	// actionHandler, when set, receives submitted actions directly instead
	// of the signal queue.
	actionHandler func(action any, id ids.ID)
}

func (rs *rootState) requestRedraw() {
	if rs.redrawSignaled {
		return
	}
	rs.redrawSignaled = true
	rs.signals.Push(Signal{Kind: SignalRequestRedraw})
}

func (rs *rootState) requestAnimFrame() {
	if rs.animSignaled {
		return
	}
	rs.animSignaled = true
	rs.signals.Push(Signal{Kind: SignalRequestAnimFrame})
}

// baseCtx is the shared core of the per-dispatch context types: the global
// state plus the state record of the widget currently being dispatched to.
type baseCtx struct {
	rs    *rootState
	state *WidgetState
}

// ID returns the id of the widget this context is scoped to.
func (c *baseCtx) ID() ids.ID { return c.state.ID }

// IsHot returns whether the pointer is currently over the widget.
func (c *baseCtx) IsHot() bool { return c.state.Flags.Has(Hot) }

// IsActive returns whether the widget holds pointer capture.
func (c *baseCtx) IsActive() bool { return c.state.Flags.Has(Active) }

// IsDisabled returns the widget's effective disabled state.
func (c *baseCtx) IsDisabled() bool { return c.state.IsDisabled() }

// IsStashed returns the widget's effective stashed state.
func (c *baseCtx) IsStashed() bool { return c.state.IsStashed() }

// HasFocus returns whether this widget is the focused widget.
func (c *baseCtx) HasFocus() bool { return c.rs.focused == c.state.ID }

// WindowSize returns the physical window size.
func (c *baseCtx) WindowSize() image.Point { return c.rs.windowSize }

// ScaleFactor returns the window scale factor.
func (c *baseCtx) ScaleFactor() float32 { return c.rs.scale }

// Size returns the widget's layout size.
func (c *baseCtx) Size() image.Point { return c.state.Size }

// RequestLayout marks the widget as needing a layout pass.
func (c *baseCtx) RequestLayout() { c.state.Flags.Set(true, NeedsLayout) }

// RequestPaint marks the widget as needing repainting.
func (c *baseCtx) RequestPaint() { c.state.Flags.Set(true, NeedsPaint) }

// RequestAccessibilityUpdate marks the widget's accessibility contribution
// as out of date.
func (c *baseCtx) RequestAccessibilityUpdate() { c.state.Flags.Set(true, NeedsAccessibility) }

// RequestAnimFrame asks for an animation tick to be delivered to this
// widget's subtree.
func (c *baseCtx) RequestAnimFrame() { c.state.Flags.Set(true, RequestAnim) }

// ChildrenChanged must be called in the same dispatch whenever the
// widget's child set changes. It schedules the tree-structure pass, a
// layout, and a focus chain rebuild.
func (c *baseCtx) ChildrenChanged() {
	c.state.Flags.Set(true, ChildrenChanged|NeedsLayout|UpdateFocusChain)
}

// MutateLater queues a mutation to run at the start of the next rewrite
// iteration, outside any in-flight dispatch.
func (c *baseCtx) MutateLater(fun func()) {
	c.rs.mutations = append(c.rs.mutations, fun)
}

// RequestFocus requests keyboard focus for this widget.
func (c *baseCtx) RequestFocus() {
	c.state.RequestFocus = FocusWidget
	c.state.FocusTarget = c.state.ID
}

// ResignFocus requests that the current focus be dropped.
func (c *baseCtx) ResignFocus() { c.state.RequestFocus = FocusResign }

// FocusNext requests focus move to the next widget in the focus chain.
func (c *baseCtx) FocusNext() { c.state.RequestFocus = FocusNext }

// FocusPrevious requests focus move to the previous widget in the focus
// chain.
func (c *baseCtx) FocusPrevious() { c.state.RequestFocus = FocusPrevious }

// SetDisabled sets the widget's own disabled flag, taking effect in the
// next disabled-propagation pass.
func (c *baseCtx) SetDisabled(disabled bool) {
	if disabled == c.state.Flags.Has(ExplicitlyDisabledNew) {
		return
	}
	c.state.Flags.Set(disabled, ExplicitlyDisabledNew)
	c.state.Flags.Set(true, NeedsDisabledUpdate)
}

// RequestScrollTo requests that the given window-space rectangle be
// scrolled into view.
func (c *baseCtx) RequestScrollTo(r image.Rectangle) {
	c.state.Flags.Set(true, RequestScroll)
	c.state.ScrollTarget = r
}

// SubmitAction delivers an application-level outcome tagged with this
// widget's id: to the action handler if one is installed, otherwise onto
// the signal queue.
func (c *baseCtx) SubmitAction(action any) {
	if c.rs.actionHandler != nil {
		c.rs.actionHandler(action, c.state.ID)
		return
	}
	c.rs.signals.Push(Signal{Kind: SignalAction, Widget: c.state.ID, Action: action})
}

// PushSignal queues an arbitrary signal for the host.
func (c *baseCtx) PushSignal(s Signal) { c.rs.signals.Push(s) }

// SetCursor asks the host to change the cursor icon.
func (c *baseCtx) SetCursor(cur Cursors) {
	c.rs.signals.Push(Signal{Kind: SignalSetCursor, Widget: c.state.ID, Cursor: cur})
}

// StartIme asks the host to begin an input-method composition for this
// widget.
func (c *baseCtx) StartIme() {
	c.rs.signals.Push(Signal{Kind: SignalStartIme, Widget: c.state.ID})
}

// EndIme asks the host to end the input-method composition.
func (c *baseCtx) EndIme() {
	c.rs.signals.Push(Signal{Kind: SignalEndIme, Widget: c.state.ID})
}

// ImeMoved reports the new position and size of the IME candidate area.
func (c *baseCtx) ImeMoved(pos, size image.Point) {
	c.rs.signals.Push(Signal{Kind: SignalImeMoved, Widget: c.state.ID, Pos: pos, Size: size})
}

// Tree returns a read view of the arena scoped to this widget's subtree.
func (c *baseCtx) Tree() TreeRef { return c.rs.tree.Ref(c.state.ID) }

// EventCtx is the context for pointer, text, access, and status dispatch.
type EventCtx struct {
	baseCtx
	handled events.Handled
}

// SetHandled marks the in-flight event as consumed; remaining dispatch
// short-circuits.
func (c *EventCtx) SetHandled() { c.handled = events.HandledYes }

// IsHandled returns whether the in-flight event has been consumed.
func (c *EventCtx) IsHandled() bool { return c.handled == events.HandledYes }

// SetActive acquires or releases pointer capture for this widget. While
// active, the widget receives pointer events regardless of position.
func (c *EventCtx) SetActive(active bool) {
	c.state.Flags.Set(active, Active)
	if active {
		c.state.Flags.Set(true, HasActive)
	}
}

// SetStashed stashes or restores the given child: a stashed child stays
// allocated but is removed from layout, paint, and event flow. Takes
// effect in the next stashed-propagation pass.
func (c *EventCtx) SetStashed(child *Pod, stashed bool) {
	if stashed == child.state.Flags.Has(ExplicitlyStashedNew) {
		return
	}
	child.state.Flags.Set(stashed, ExplicitlyStashedNew)
	child.state.Flags.Set(true, NeedsStashUpdate)
	c.state.Flags.Set(true, NeedsLayout)
	c.state.MergeUp(child.state)
}

// ReleaseChild destroys the given child pod: its subtree is removed from
// the arena, and if it held focus a resign request is synthesized.
func (c *EventCtx) ReleaseChild(child *Pod) {
	releasePod(c.rs, c.state, child)
	c.ChildrenChanged()
}

// LifecycleCtx is the context for lifecycle routing dispatch.
type LifecycleCtx struct {
	baseCtx
}

// RegisterForFocus adds this widget to the focus chain being built.
// Disabled and stashed widgets are not focusable and are skipped.
func (c *LifecycleCtx) RegisterForFocus() {
	if c.state.IsDisabled() || c.state.IsStashed() {
		return
	}
	c.state.FocusChain = append(c.state.FocusChain, c.state.ID)
}

// LayoutCtx is the context for layout dispatch.
type LayoutCtx struct {
	baseCtx
	insets Insets
}

// PlaceChild registers the position of a child relative to this widget.
// Every child passed through layout must be placed exactly once before
// the layout dispatch returns.
func (c *LayoutCtx) PlaceChild(child *Pod, origin image.Point) {
	moved := child.state.Origin != origin
	child.state.Origin = origin
	child.state.Flags.Set(false, ExpectingPlaceChild)
	if moved {
		child.state.Flags.Set(true, NeedsWindowOrigin)
		c.state.Flags.Set(true, NeedsWindowOrigin)
	}
}

// SetPaintInsets declares extra paint extents beyond this widget's layout
// box, e.g. for a drop shadow.
func (c *LayoutCtx) SetPaintInsets(i Insets) { c.insets = i }

// SetBaseline sets the widget's text baseline offset from its top edge.
func (c *LayoutCtx) SetBaseline(y int) { c.state.BaselineOffset = y }

// SetUnboundedPaint disables the child paint-bounds containment check for
// this widget; scrolling containers that intentionally let children paint
// outside their box call this.
func (c *LayoutCtx) SetUnboundedPaint() { c.state.Flags.Set(true, UnboundedPaint) }

// PaintCtx is the context for paint dispatch.
type PaintCtx struct {
	baseCtx
}

// AccessCtx is the context for accessibility tree construction.
type AccessCtx struct {
	baseCtx
}
