// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"log/slog"
	"time"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// windowID is the reserved id of the synthetic window node: the merge
// target sitting above the root widget. It never appears in the arena.
var windowID = ids.Reserved(0)

// RenderRoot owns one widget tree and drives it: the host feeds events in
// through the Handle* methods, drains the resulting [Signal] values, and
// calls [RenderRoot.Redraw] when it is ready to paint. All methods must be
// called from the same goroutine.
type RenderRoot struct {
	rootState

	// root is the pod wrapping the application's root widget.
	root *Pod

	// winState is the synthetic window-level state record that all merges
	// terminate at; its flags are what the pass loop inspects.
	winState *WidgetState
}

// NewRenderRoot wraps the given root widget and runs the initial passes so
// the tree is registered and the focus chain built. Layout waits for the
// first resize event. A nil settings uses [DefaultSettings].
func NewRenderRoot(root Widget, settings *Settings) *RenderRoot {
	if settings == nil {
		settings = DefaultSettings()
	}
	rr := &RenderRoot{root: NewPod(root)}
	rr.rootState = rootState{
		tree:     NewTree(),
		signals:  &SignalQueue{},
		settings: settings,
		scale:    1,
	}
	rr.winState = newWidgetState(windowID, "window")
	rr.winState.Flags.Set(false, IsNew)
	rr.winState.Flags.Set(true, ChildrenChanged)
	rr.runRewritePasses()
	return rr
}

func (rr *RenderRoot) winLifeCtx() *LifecycleCtx {
	return &LifecycleCtx{baseCtx{rs: &rr.rootState, state: rr.winState}}
}

func (rr *RenderRoot) winEventCtx() *EventCtx {
	return &EventCtx{baseCtx: baseCtx{rs: &rr.rootState, state: rr.winState}}
}

// RootWidget returns the application's root widget.
func (rr *RenderRoot) RootWidget() Widget { return rr.root.Widget() }

// Focused returns the id of the widget holding keyboard focus, invalid if
// none does.
func (rr *RenderRoot) Focused() ids.ID { return rr.rootState.focused }

// Tree returns a read view of the widget tree.
func (rr *RenderRoot) Tree() TreeRef { return rr.tree.Ref(rr.root.ID()) }

// HandleWindowEvent processes a window-level event from the host.
func (rr *RenderRoot) HandleWindowEvent(ev *events.WindowEvent) {
	rs := &rr.rootState
	if DebugSettings.EventTrace {
		slog.Debug("window event", "event", ev)
	}
	switch ev.Type {
	case events.WinResize:
		if ev.Size != rs.windowSize {
			rs.windowSize = ev.Size
			rr.winState.Flags.Set(true, NeedsLayout)
		}
	case events.WinRescale:
		if ev.Scale > 0 && ev.Scale != rs.scale {
			rs.scale = ev.Scale
			rr.winState.Flags.Set(true, NeedsLayout|NeedsPaint)
		}
	case events.WinAnimFrame:
		rs.animSignaled = false
		now := time.Now()
		var elapsed time.Duration
		if !rs.lastAnim.IsZero() {
			elapsed = now.Sub(rs.lastAnim)
		}
		rs.lastAnim = now
		if rr.winState.Flags.Has(RequestAnim) {
			rr.winState.Flags.Set(false, RequestAnim)
			rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeAnimFrame, Elapsed: elapsed})
		}
	case events.WinRebuildAccessTree:
		rr.winState.Flags.Set(true, NeedsAccessibility)
		for _, st := range rs.tree.states {
			st.Flags.Set(true, NeedsAccessibility)
		}
	}
	rr.runRewritePasses()
	if ev.Type == events.WinAnimFrame && !rr.winState.Flags.Has(RequestAnim) {
		// No widget re-requested: next tick starts a fresh animation.
		rs.lastAnim = time.Time{}
	}
}

// HandlePointerEvent processes a pointer event from the host, reporting
// whether a widget consumed it.
func (rr *RenderRoot) HandlePointerEvent(ev *events.PointerEvent) events.Handled {
	rs := &rr.rootState
	if DebugSettings.EventTrace {
		slog.Debug("pointer event", "event", ev)
	}
	if ev.Type == events.PointerUpdate {
		// Synthesized internally only; a host sending one is a bug.
		invariantViolation("host sent internal %v event", ev.Type)
		return events.HandledNo
	}
	e := *ev
	if e.Type == events.PointerScroll {
		e.ScrollDelta = e.ScrollDelta.MulScalar(rs.settings.ScrollWheelSpeed)
	}
	if e.HasPos() {
		rs.pointerPos = e.State.Pos
		rs.hasPointer = true
		e.State.SetLogicalFromScale(rs.scale)
	} else {
		rs.hasPointer = false
	}
	ctx := rr.winEventCtx()
	rr.root.OnPointerEvent(ctx, &e)
	rr.runRewritePasses()
	return ctx.handled
}

// HandleTextEvent processes a keyboard, IME, modifier, or window-focus
// event. Unhandled Tab and Shift+Tab key presses move focus through the
// focus chain.
func (rr *RenderRoot) HandleTextEvent(ev *events.TextEvent) events.Handled {
	if DebugSettings.EventTrace {
		slog.Debug("text event", "event", ev)
	}
	ctx := rr.winEventCtx()
	rr.root.OnTextEvent(ctx, ev)
	if !ctx.IsHandled() && ev.Type == events.TextKey && ev.Key.Down && ev.Key.Key == "Tab" {
		if ev.Mods.Has(events.Shift) {
			rr.winState.RequestFocus = FocusPrevious
		} else {
			rr.winState.RequestFocus = FocusNext
		}
		ctx.SetHandled()
	}
	rr.runRewritePasses()
	return ctx.handled
}

// HandleAccessEvent processes a platform accessibility action. Focus and
// blur actions not consumed by a widget get default handling.
func (rr *RenderRoot) HandleAccessEvent(ev *events.AccessEvent) events.Handled {
	rs := &rr.rootState
	if DebugSettings.EventTrace {
		slog.Debug("access event", "event", ev)
	}
	ctx := rr.winEventCtx()
	rr.root.OnAccessEvent(ctx, ev)
	if !ctx.IsHandled() {
		switch ev.Action {
		case events.AccessFocus:
			rr.winState.RequestFocus = FocusWidget
			rr.winState.FocusTarget = ev.Target
			ctx.SetHandled()
		case events.AccessBlur:
			if rs.focused == ev.Target {
				rr.winState.RequestFocus = FocusResign
				ctx.SetHandled()
			}
		case events.AccessScrollIntoView:
			if st, ok := rs.tree.State(ev.Target); ok {
				st.Flags.Set(true, RequestScroll)
				st.ScrollTarget = st.WindowRect()
				rr.winState.Flags.Set(true, RequestScroll)
				ctx.SetHandled()
			}
		}
	}
	rr.runRewritePasses()
	return ctx.handled
}

// EditRootWidget grants scoped mutable access to the root widget outside
// any event dispatch, then runs the passes the mutation requested.
func (rr *RenderRoot) EditRootWidget(fun func(mut *WidgetMut)) {
	ctx := &EventCtx{baseCtx: baseCtx{rs: &rr.rootState, state: rr.root.State()}}
	fun(&WidgetMut{Widget: rr.root.Widget(), Ctx: ctx})
	rr.winState.MergeUp(rr.root.State())
	rr.runRewritePasses()
}

// Redraw acknowledges a redraw request and rebuilds the scene. Calling it
// again without intervening changes produces a structurally equal scene
// from the cached fragments.
func (rr *RenderRoot) Redraw() *scene.Scene {
	rs := &rr.rootState
	rs.redrawSignaled = false
	rr.runRewritePasses()
	sc := &scene.Scene{Size: rs.windowSize}
	rr.winState.Flags.Set(false, NeedsPaint)
	ctx := &PaintCtx{baseCtx{rs: rs, state: rr.winState}}
	rr.root.Paint(ctx, &sc.Root)
	return sc
}

// AccessTree rebuilds and returns the accessibility tree, rooted at a
// synthetic window node.
func (rr *RenderRoot) AccessTree() *AccessNode {
	rs := &rr.rootState
	rr.runRewritePasses()
	rr.winState.Flags.Set(false, NeedsAccessibility)
	node := &AccessNode{
		Widget: windowID,
		Role:   "window",
		Bounds: image.Rectangle{Max: rs.windowSize},
	}
	ctx := &AccessCtx{baseCtx{rs: rs, state: rr.winState}}
	rr.root.Accessibility(ctx, node)
	return node
}

// PopSignal removes and returns the oldest pending signal.
func (rr *RenderRoot) PopSignal() (Signal, bool) { return rr.signals.Pop() }

// PopSignalMatching removes and returns the oldest pending signal matching
// the predicate.
func (rr *RenderRoot) PopSignalMatching(match func(Signal) bool) (Signal, bool) {
	return rr.signals.PopMatching(match)
}

// PopAction removes and returns the oldest pending action signal: the
// action value and the id of the widget that submitted it.
func (rr *RenderRoot) PopAction() (any, ids.ID, bool) {
	s, ok := rr.signals.PopMatching(func(s Signal) bool { return s.Kind == SignalAction })
	if !ok {
		return nil, 0, false
	}
	return s.Action, s.Widget, true
}

// SetActionHandler routes submitted actions to the given callback instead
// of the signal queue. A nil handler restores queue delivery.
func (rr *RenderRoot) SetActionHandler(h func(action any, id ids.ID)) {
	rr.actionHandler = h
}
