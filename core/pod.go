// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"log/slog"
	"reflect"
	"slices"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
	"github.com/arbor-ui/arbor/scene"
)

// Pod wraps one widget together with its [WidgetState] and mediates every
// interaction between the widget and its parent: parents never call child
// widget methods directly, only pod methods. The pod recomputes derived
// state around each dispatch (hover, capture, routing eligibility) and
// unconditionally merges the child state up afterward, which is what keeps
// the parent-aggregation invariant true at every level.
type Pod struct {
	widget Widget
	state  *WidgetState

	// fragment is the cached paint output, rebuilt only when NeedsPaint.
	fragment scene.Fragment
}

// NewPod wraps the given widget with a freshly allocated id.
func NewPod(w Widget) *Pod {
	return NewPodWithID(w, ids.Next())
}

// NewPodWithID wraps the given widget under a caller-chosen id, which must
// be process-unique (typically from [ids.Reserved]).
func NewPodWithID(w Widget, id ids.ID) *Pod {
	return &Pod{widget: w, state: newWidgetState(id, widgetName(w))}
}

// widgetName returns the widget's short type name, for state debugging.
func widgetName(w Widget) string {
	t := reflect.TypeOf(w)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "Widget"
	}
	return t.Name()
}

// ID returns the wrapped widget's id.
func (p *Pod) ID() ids.ID { return p.state.ID }

// Widget returns the wrapped widget.
func (p *Pod) Widget() Widget { return p.widget }

// State returns the wrapped widget's state record.
func (p *Pod) State() *WidgetState { return p.state }

// childSnapshot captures the widget's declared children before a dispatch,
// in validating mode only.
func (p *Pod) childSnapshot() []ids.ID {
	if !DebugSettings.ValidateTree {
		return nil
	}
	return slices.Clone(p.widget.ChildIDs())
}

// checkChildSnapshot verifies that any change to the declared children was
// announced via ChildrenChanged during the dispatch.
func (p *Pod) checkChildSnapshot(before []ids.ID) {
	if !DebugSettings.ValidateTree {
		return
	}
	if !slices.Equal(before, p.widget.ChildIDs()) && !p.state.Flags.Has(ChildrenChanged) {
		invariantViolation("%v changed children without announcing ChildrenChanged", p.state)
	}
}

// OnPointerEvent dispatches a pointer event into this subtree. The pod
// recomputes the node's hover state first and, when it flipped, delivers
// the hot-changed notification strictly before the event itself; the event
// is then forwarded only if the subtree holds pointer capture, is hovered,
// or just stopped being hovered. Stashed subtrees never see pointer events.
func (p *Pod) OnPointerEvent(ctx *EventCtx, ev *events.PointerEvent) {
	st := p.state
	if ctx.IsHandled() {
		ctx.state.MergeUp(st)
		return
	}
	stashed := st.IsStashed()
	wasHot := st.Flags.Has(Hot)
	nowHot := false
	if !stashed && ev.HasPos() {
		nowHot = st.Contains(ev.State.Pos)
	}
	hotChanged := nowHot != wasHot
	if hotChanged {
		st.Flags.Set(nowHot, Hot)
		st.Flags.Set(true, NeedsPaint)
		hctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
		p.widget.OnStatusChange(hctx, &events.StatusChange{Type: events.HotChanged, On: nowHot})
	}
	// Capture state is recomputed per event: cleared here, re-established
	// by descendant merges during the dispatch and by the widget's own
	// Active flag afterward.
	hadActive := st.Flags.Has(HasActive)
	wasActive := st.Flags.Has(Active)
	st.Flags.Set(false, HasActive)
	if !stashed && (hadActive || nowHot || hotChanged) {
		cctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}, handled: ctx.handled}
		before := p.childSnapshot()
		p.widget.OnPointerEvent(cctx, ev)
		p.checkChildSnapshot(before)
		ctx.handled = cctx.handled
	}
	isActive := st.Flags.Has(Active)
	if isActive {
		st.Flags.Set(true, HasActive)
	}
	if isActive != wasActive {
		actx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
		p.widget.OnStatusChange(actx, &events.StatusChange{Type: events.ActiveChanged, On: isActive})
	}
	ctx.state.MergeUp(st)
}

// OnTextEvent dispatches a text event into this subtree. Text events only
// reach the subtree containing the focused widget.
func (p *Pod) OnTextEvent(ctx *EventCtx, ev *events.TextEvent) {
	st := p.state
	if ctx.IsHandled() || st.IsStashed() || !st.Flags.Has(Focused) {
		ctx.state.MergeUp(st)
		return
	}
	cctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}, handled: ctx.handled}
	before := p.childSnapshot()
	p.widget.OnTextEvent(cctx, ev)
	p.checkChildSnapshot(before)
	ctx.handled = cctx.handled
	ctx.state.MergeUp(st)
}

// OnAccessEvent dispatches an accessibility action into this subtree,
// pruned by the descendant filter: a subtree that cannot contain the
// target is skipped without touching its widgets.
func (p *Pod) OnAccessEvent(ctx *EventCtx, ev *events.AccessEvent) {
	st := p.state
	if ctx.IsHandled() || st.IsStashed() {
		ctx.state.MergeUp(st)
		return
	}
	if ev.Target != st.ID && !st.Descendants.MayContain(ev.Target) {
		ctx.state.MergeUp(st)
		return
	}
	cctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}, handled: ctx.handled}
	before := p.childSnapshot()
	p.widget.OnAccessEvent(cctx, ev)
	p.checkChildSnapshot(before)
	ctx.handled = cctx.handled
	ctx.state.MergeUp(st)
}

// Lifecycle dispatches a structural notification into this subtree. The
// pod owns all per-node routing decisions: whether a Route* traversal
// descends, what the widget actually receives, and which bookkeeping flags
// are consumed. Widgets forward whatever they receive to their child pods.
func (p *Pod) Lifecycle(ctx *LifecycleCtx, ev *LifecycleEvent) {
	st := p.state
	fwd := *ev
	call := false

	switch ev.Type {
	case LifeWidgetAdded, LifeRouteWidgetAdded:
		if st.Flags.Has(IsNew) {
			ctx.rs.tree.Insert(ctx.state.ID, p.widget, st)
			st.Flags.Set(false, IsNew)
			fwd.Type = LifeWidgetAdded
			call = true
		} else {
			fwd.Type = LifeRouteWidgetAdded
			call = st.Flags.Has(ChildrenChanged)
		}
		st.Flags.Set(false, ChildrenChanged)

	case LifeRouteDisabledChanged:
		wasDisabled := st.IsDisabled()
		st.Flags.Set(st.Flags.Has(ExplicitlyDisabledNew), ExplicitlyDisabled)
		st.Flags.Set(ev.Disabled, AncestorDisabled)
		isDisabled := st.IsDisabled()
		changed := isDisabled != wasDisabled
		if changed {
			if isDisabled && ctx.rs.focused == st.ID {
				st.RequestFocus = FocusResign
			}
			st.Flags.Set(true, UpdateFocusChain|NeedsPaint)
			sctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
			p.widget.OnStatusChange(sctx, &events.StatusChange{Type: events.DisabledChanged, On: isDisabled})
		}
		call = changed || st.Flags.Has(NeedsDisabledUpdate)
		st.Flags.Set(false, NeedsDisabledUpdate)
		fwd.Disabled = isDisabled

	case LifeRouteStashedChanged:
		wasStashed := st.IsStashed()
		st.Flags.Set(st.Flags.Has(ExplicitlyStashedNew), ExplicitlyStashed)
		st.Flags.Set(ev.Stashed, AncestorStashed)
		isStashed := st.IsStashed()
		changed := isStashed != wasStashed
		if changed {
			if isStashed && ctx.rs.focused == st.ID {
				st.RequestFocus = FocusResign
			}
			if isStashed {
				st.Flags.Set(false, Hot|Active|HasActive)
			} else {
				st.Flags.Set(true, NeedsLayout|NeedsPaint)
			}
			st.Flags.Set(true, UpdateFocusChain|NeedsAccessibility)
			sctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
			p.widget.OnStatusChange(sctx, &events.StatusChange{Type: events.StashChanged, On: isStashed})
		}
		call = changed || st.Flags.Has(NeedsStashUpdate)
		st.Flags.Set(false, NeedsStashUpdate)
		fwd.Stashed = isStashed

	case LifeRouteFocusChanged:
		if st.ID == ev.Old {
			st.Flags.Set(false, Focused)
			st.Flags.Set(true, NeedsPaint)
			sctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
			p.widget.OnStatusChange(sctx, &events.StatusChange{Type: events.FocusChanged, On: false})
		}
		if st.ID == ev.New {
			st.Flags.Set(true, Focused|NeedsPaint)
			sctx := &EventCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
			p.widget.OnStatusChange(sctx, &events.StatusChange{Type: events.FocusChanged, On: true})
		}
		call = st.Descendants.MayContain(ev.Old) || st.Descendants.MayContain(ev.New)

	case LifeParentOriginChanged:
		origin := ev.Origin.Add(st.Origin)
		moved := origin != st.WindowOrigin
		st.WindowOrigin = origin
		call = moved || st.Flags.Has(NeedsWindowOrigin)
		st.Flags.Set(false, NeedsWindowOrigin)
		if moved {
			st.Flags.Set(true, NeedsAccessibility)
		}
		fwd.Origin = origin.Add(st.ScrollOffset)

	case LifeAnimFrame:
		call = st.Flags.Has(RequestAnim)
		st.Flags.Set(false, RequestAnim)

	case LifeBuildFocusChain:
		call = st.Flags.Has(UpdateFocusChain)
		if call {
			st.FocusChain = st.FocusChain[:0]
		}
		st.Flags.Set(false, UpdateFocusChain)

	default:
		call = true
	}

	if call {
		if DebugSettings.UpdateTrace {
			slog.Debug("lifecycle", "event", &fwd, "widget", st.WidgetName, "id", st.ID)
		}
		cctx := &LifecycleCtx{baseCtx{rs: ctx.rs, state: st}}
		before := p.childSnapshot()
		p.widget.Lifecycle(cctx, &fwd)
		p.checkChildSnapshot(before)
	}
	if ev.Type == LifeBuildFocusChain {
		ctx.state.FocusChain = append(ctx.state.FocusChain, st.FocusChain...)
	}
	ctx.state.MergeUp(st)
}

// Layout computes this subtree's size under the given constraints. It must
// not be called on a stashed subtree; parents skip stashed children.
func (p *Pod) Layout(ctx *LayoutCtx, bc Constraints) image.Point {
	st := p.state
	if st.IsStashed() {
		invariantViolation("layout dispatched to stashed %v", st)
		return image.Point{}
	}
	if DebugSettings.LayoutTrace {
		slog.Debug("layout", "widget", st.WidgetName, "id", st.ID, "min", bc.Min, "max", bc.Max)
	}
	cctx := &LayoutCtx{baseCtx: baseCtx{rs: ctx.rs, state: st}}
	before := p.childSnapshot()
	size := bc.Clamp(p.widget.Layout(cctx, bc))
	p.checkChildSnapshot(before)
	st.Size = size
	ins := cctx.insets
	st.PaintRect = image.Rect(-ins.Left, -ins.Top, size.X+ins.Right, size.Y+ins.Bottom)
	if DebugSettings.ValidateTree {
		p.checkPlacement(ctx.rs)
	}
	st.Flags.Set(false, NeedsLayout)
	st.Flags.Set(true, ExpectingPlaceChild|NeedsPaint|NeedsAccessibility|NeedsWindowOrigin)
	ctx.state.MergeUp(st)
	return size
}

// checkPlacement verifies that every non-stashed child was placed during
// the layout dispatch that just returned, and that child paint bounds stay
// inside this node's unless it opted out via unbounded paint.
func (p *Pod) checkPlacement(rs *rootState) {
	st := p.state
	for _, cid := range p.widget.ChildIDs() {
		cst, ok := rs.tree.State(cid)
		if !ok {
			continue
		}
		if cst.IsStashed() {
			continue
		}
		if cst.Flags.Has(ExpectingPlaceChild) {
			invariantViolation("%v laid out child %v without placing it", st, cst)
		}
		if !st.Flags.Has(UnboundedPaint) && !cst.PaintRect.Add(cst.Origin).In(st.PaintRect) {
			invariantViolation("%v paint bounds %v escape parent %v bounds %v",
				cst, cst.PaintRect.Add(cst.Origin), st, st.PaintRect)
		}
	}
}

// Paint composites this subtree into the parent fragment, repainting the
// cached fragment only when something below requested it.
func (p *Pod) Paint(ctx *PaintCtx, parent *scene.Fragment) {
	st := p.state
	if st.IsStashed() {
		invariantViolation("paint dispatched to stashed %v", st)
		return
	}
	if st.Flags.Has(NeedsPaint) {
		p.fragment.Reset()
		cctx := &PaintCtx{baseCtx{rs: ctx.rs, state: st}}
		p.widget.Paint(cctx, &p.fragment)
		st.Flags.Set(false, NeedsPaint)
	}
	parent.AppendChild(&p.fragment, st.Origin)
}

// Accessibility appends this subtree's accessibility contribution to the
// parent node. Stashed subtrees contribute nothing.
func (p *Pod) Accessibility(ctx *AccessCtx, parent *AccessNode) {
	st := p.state
	if st.IsStashed() {
		return
	}
	node := &AccessNode{Widget: st.ID, Bounds: st.WindowPaintRect()}
	cctx := &AccessCtx{baseCtx{rs: ctx.rs, state: st}}
	p.widget.Accessibility(cctx, node)
	st.Flags.Set(false, NeedsAccessibility)
	parent.Children = append(parent.Children, node)
}

// releasePod removes the pod's subtree from the arena. If any removed node
// held focus, a resign request is recorded on the parent so the next focus
// pass clears it; the bloom filter retains stale ids, which is harmless
// (routing just over-approximates until rebuilt).
func releasePod(rs *rootState, parent *WidgetState, p *Pod) {
	removed := rs.tree.Remove(p.state.ID)
	for _, id := range removed {
		if rs.focused == id {
			parent.RequestFocus = FocusResign
			parent.FocusTarget = 0
		}
	}
}
