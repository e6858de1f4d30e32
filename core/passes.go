// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"log/slog"
	"slices"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
)

// Scroller is implemented by container widgets that can translate their
// contents. The scroll pass asks each scrolling ancestor of a requesting
// node to bring the target window-space rectangle into view by adjusting
// its own state's ScrollOffset; returning true reports an adjustment.
type Scroller interface {
	ScrollIntoView(st *WidgetState, target image.Rectangle) bool
}

// runRewritePasses drives the tree to a fixed point after an event. Each
// iteration applies queued mutations and then runs, in a fixed order, only
// the passes whose window-level flag is set; dispatch merging may raise
// new flags for the next iteration. The iteration cap bounds the cost of a
// widget that keeps invalidating: a capped cycle is deferred to the next
// frame through a redraw request instead of blocking the event loop.
func (rr *RenderRoot) runRewritePasses() {
	rs := &rr.rootState
	win := rr.winState
	for i := 0; ; i++ {
		rr.applyMutations()
		if !win.Flags.HasAny(rewriteDirtyMask) && win.RequestFocus == FocusNone &&
			!rs.pointerUpdateNeeded && !rr.focusedRemoved() {
			rs.deferredCycles = 0
			break
		}
		if i >= rs.settings.RewritePassMax {
			rs.deferredCycles++
			if rs.deferredCycles >= rs.settings.DeferredConvergenceMax {
				slog.Error("rewrite passes still not converging across frames",
					"cycles", rs.deferredCycles, "flags", win.Flags)
			} else {
				slog.Warn("rewrite passes did not converge; deferring to next frame",
					"iterations", i, "flags", win.Flags)
			}
			rs.requestRedraw()
			return
		}
		if DebugSettings.UpdateTrace {
			slog.Debug("rewrite iteration", "n", i, "flags", win.Flags)
		}
		if win.Flags.Has(ChildrenChanged) {
			rr.updateTreePass()
		}
		if win.Flags.Has(NeedsDisabledUpdate) {
			rr.updateDisabledPass()
		}
		if win.Flags.Has(NeedsStashUpdate) {
			rr.updateStashedPass()
		}
		if win.Flags.Has(UpdateFocusChain) {
			rr.updateFocusChainPass()
		}
		if win.RequestFocus != FocusNone || rr.focusedRemoved() {
			rr.updateFocusPass()
		}
		if win.Flags.Has(NeedsLayout) {
			rr.layoutPass()
		}
		if win.Flags.Has(RequestScroll) {
			rr.scrollPass()
		}
		if win.Flags.Has(NeedsWindowOrigin) {
			rr.composePass()
		}
		if rs.pointerUpdateNeeded {
			rr.updatePointerPass()
		}
	}
	if win.Flags.HasAny(NeedsPaint | NeedsAccessibility) {
		rs.requestRedraw()
	}
	if win.Flags.Has(RequestAnim) {
		rs.requestAnimFrame()
	}
}

// applyMutations drains the deferred-mutation queue, including mutations
// queued by mutations.
func (rr *RenderRoot) applyMutations() {
	for len(rr.mutations) > 0 {
		muts := rr.mutations
		rr.mutations = nil
		for _, m := range muts {
			m()
		}
	}
}

// focusedRemoved reports whether the focused widget has been removed from
// the tree without a resign request reaching the root.
func (rr *RenderRoot) focusedRemoved() bool {
	rs := &rr.rootState
	return rs.focused.IsValid() && !rs.tree.Contains(rs.focused)
}

// updateTreePass registers new nodes in the arena and delivers their
// added-to-tree notifications, descending only into subtrees whose child
// set changed.
func (rr *RenderRoot) updateTreePass() {
	rr.winState.Flags.Set(false, ChildrenChanged)
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeRouteWidgetAdded})
}

// updateDisabledPass applies pending explicit-disabled values and
// propagates effective disabled state down the tree.
func (rr *RenderRoot) updateDisabledPass() {
	rr.winState.Flags.Set(false, NeedsDisabledUpdate)
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeRouteDisabledChanged})
}

// updateStashedPass applies pending explicit-stashed values and propagates
// effective stashed state down the tree.
func (rr *RenderRoot) updateStashedPass() {
	rr.winState.Flags.Set(false, NeedsStashUpdate)
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeRouteStashedChanged})
}

// updateFocusChainPass rebuilds the ordered focus chain. Subtrees whose
// chain fragment is unchanged are re-appended without traversal.
func (rr *RenderRoot) updateFocusChainPass() {
	rs := &rr.rootState
	rr.winState.Flags.Set(false, UpdateFocusChain)
	rr.winState.FocusChain = rr.winState.FocusChain[:0]
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeBuildFocusChain})
	rs.focusChain = rr.winState.FocusChain
}

// updateFocusPass resolves the merged focus request into an actual focus
// transfer and routes the change to both endpoints.
func (rr *RenderRoot) updateFocusPass() {
	rs := &rr.rootState
	req := rr.winState.RequestFocus
	target := rr.winState.FocusTarget
	rr.winState.RequestFocus = FocusNone
	rr.winState.FocusTarget = 0

	old := rs.focused
	if old.IsValid() && !rs.tree.Contains(old) {
		// The focused widget was removed; there is no endpoint to notify.
		old = 0
		rs.focused = 0
	}
	next := old
	switch req {
	case FocusNone:
		next = old
	case FocusResign:
		next = 0
	case FocusWidget:
		if st, ok := rs.tree.State(target); ok && !st.IsDisabled() && !st.IsStashed() {
			next = target
		}
	case FocusNext:
		next = rr.focusAdvance(old, 1)
	case FocusPrevious:
		next = rr.focusAdvance(old, -1)
	}
	if next == old {
		return
	}
	rs.focused = next
	// Clear the subtree-contains-focus flag along the old path; the
	// routing dispatch re-establishes it along the new path by merging.
	if old.IsValid() {
		rs.tree.walkUp(old, func(st *WidgetState) bool {
			st.Flags.Set(false, Focused)
			return true
		})
	}
	rr.winState.Flags.Set(false, Focused)
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{
		Type: LifeRouteFocusChanged, Old: old, New: next,
	})
}

// focusAdvance returns the focus chain entry dir steps from cur, wrapping
// at either end. With no current focus it starts from the matching end.
func (rr *RenderRoot) focusAdvance(cur ids.ID, dir int) ids.ID {
	chain := rr.rootState.focusChain
	if len(chain) == 0 {
		return 0
	}
	idx := slices.Index(chain, cur)
	if idx < 0 {
		if dir > 0 {
			return chain[0]
		}
		return chain[len(chain)-1]
	}
	return chain[(idx+dir+len(chain))%len(chain)]
}

// layoutPass lays out the tree against the window size and schedules a
// hover re-evaluation, since geometry under the pointer may have moved.
func (rr *RenderRoot) layoutPass() {
	rs := &rr.rootState
	rr.winState.Flags.Set(false, NeedsLayout)
	ctx := &LayoutCtx{baseCtx: baseCtx{rs: rs, state: rr.winState}}
	rr.root.Layout(ctx, Tight(rs.windowSize))
	ctx.PlaceChild(rr.root, image.Point{})
	rs.pointerUpdateNeeded = true
}

// scrollPass resolves scroll-into-view requests by asking each scrolling
// ancestor of a requesting node to adjust its offset.
//
// TODO: add a Portal container widget to the widgets package so tests can
// exercise the Scroller path end to end.
func (rr *RenderRoot) scrollPass() {
	rs := &rr.rootState
	rr.winState.Flags.Set(false, RequestScroll)
	rr.winState.ScrollTarget = image.Rectangle{}
	for id, st := range rs.tree.states {
		if !st.Flags.Has(RequestScroll) {
			continue
		}
		st.Flags.Set(false, RequestScroll)
		target := st.ScrollTarget
		rs.tree.walkUp(rs.tree.Parent(id), func(ast *WidgetState) bool {
			w, ok := rs.tree.Widget(ast.ID)
			if !ok {
				return false
			}
			if sc, ok := w.(Scroller); ok && sc.ScrollIntoView(ast, target) {
				ast.Flags.Set(true, NeedsPaint)
				rs.tree.walkUp(ast.ID, func(s *WidgetState) bool {
					s.Flags.Set(true, NeedsWindowOrigin)
					return true
				})
				rr.winState.Flags.Set(true, NeedsWindowOrigin|NeedsPaint)
			}
			return true
		})
	}
}

// composePass recomputes window-space origins top-down, descending only
// where an origin changed or was flagged.
func (rr *RenderRoot) composePass() {
	rs := &rr.rootState
	rr.winState.Flags.Set(false, NeedsWindowOrigin)
	rr.root.Lifecycle(rr.winLifeCtx(), &LifecycleEvent{Type: LifeParentOriginChanged})
	rs.pointerUpdateNeeded = true
}

// updatePointerPass re-evaluates hover against current geometry by
// synthesizing a pointer event at the last known position.
func (rr *RenderRoot) updatePointerPass() {
	rs := &rr.rootState
	rs.pointerUpdateNeeded = false
	if !rs.hasPointer {
		return
	}
	ev := &events.PointerEvent{
		Type:  events.PointerUpdate,
		State: events.PointerState{Pos: rs.pointerPos},
	}
	ev.State.SetLogicalFromScale(rs.scale)
	ctx := &EventCtx{baseCtx: baseCtx{rs: rs, state: rr.winState}}
	rr.root.OnPointerEvent(ctx, ev)
}
