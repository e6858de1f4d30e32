// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-ui/arbor/events"
	"github.com/arbor-ui/arbor/ids"
)

// newTestRoot wraps the widget in a validating render root and delivers
// the initial resize.
func newTestRoot(t *testing.T, w Widget) *RenderRoot {
	t.Helper()
	old := DebugSettings
	DebugSettings.ValidateTree = true
	t.Cleanup(func() { DebugSettings = old })
	rr := NewRenderRoot(w, nil)
	rr.HandleWindowEvent(events.NewResize(image.Pt(200, 200)))
	return rr
}

func drainSignals(rr *RenderRoot) []Signal {
	var out []Signal
	for {
		s, ok := rr.PopSignal()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func countKind(sigs []Signal, k SignalKinds) int {
	n := 0
	for _, s := range sigs {
		if s.Kind == k {
			n++
		}
	}
	return n
}

func TestRenderRootSetup(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, lf)
	assert.Contains(t, lf.log, "added")
	assert.True(t, rr.tree.Contains(rr.root.ID()))
	// The initial frame is requested exactly once.
	assert.Equal(t, 1, countKind(drainSignals(rr), SignalRequestRedraw))

	sc := rr.Redraw()
	assert.Equal(t, image.Pt(200, 200), sc.Size)
}

func TestHotChangedDeliveredBeforeEvent(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, lf)
	lf.log = nil

	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))
	assert.Equal(t, []string{"HotChanged(true)", "PointerMove"}, lf.log)
}

func TestPointerGating(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, newVBox(lf))
	lf.log = nil

	// The leaf is 50x20 at the origin.
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))
	assert.Equal(t, []string{"HotChanged(true)", "PointerMove"}, lf.log)

	// Leaving the leaf delivers the transition plus the leaving move.
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(100, 100)))
	assert.Equal(t, []string{
		"HotChanged(true)", "PointerMove",
		"HotChanged(false)", "PointerMove",
	}, lf.log)

	// Further moves outside are not delivered at all.
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(120, 120)))
	assert.Len(t, lf.log, 4)
}

func TestPointerLeaveClearsHover(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, newVBox(lf))
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))
	lf.log = nil

	rr.HandlePointerEvent(&events.PointerEvent{Type: events.PointerLeave})
	assert.Equal(t, []string{"HotChanged(false)", "PointerLeave"}, lf.log)
	assert.False(t, rr.root.State().Flags.Has(Hot))
}

func TestHandledReported(t *testing.T) {
	lf := newLeaf()
	lf.consume = true
	rr := newTestRoot(t, newVBox(lf))

	h := rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))
	assert.Equal(t, events.HandledYes, h)
	h = rr.HandlePointerEvent(events.NewPointerMove(image.Pt(100, 100)))
	assert.Equal(t, events.HandledYes, h, "the leaving move still reaches the leaf")
	h = rr.HandlePointerEvent(events.NewPointerMove(image.Pt(120, 120)))
	assert.Equal(t, events.HandledNo, h)
}

func TestConvergenceCapDefersWithOneRedraw(t *testing.T) {
	rr := newTestRoot(t, &hoverInvalidator{})
	rr.Redraw()
	drainSignals(rr)

	// Every pointer dispatch re-invalidates layout, so the loop caps out.
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))
	assert.Equal(t, 1, countKind(drainSignals(rr), SignalRequestRedraw))
	assert.Equal(t, 1, rr.deferredCycles)

	// While the deferral is unacknowledged, no duplicate signal is queued.
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(11, 11)))
	assert.Equal(t, 0, countKind(drainSignals(rr), SignalRequestRedraw))
	assert.Equal(t, 2, rr.deferredCycles)

	// Once the pointer leaves, the loop settles and the counter resets.
	rr.HandlePointerEvent(&events.PointerEvent{Type: events.PointerLeave})
	assert.Equal(t, 0, rr.deferredCycles)
}

func TestMutateLaterRunsOutsideDispatch(t *testing.T) {
	rr := newTestRoot(t, newLeaf())
	ran := false
	rr.EditRootWidget(func(mut *WidgetMut) {
		mut.Ctx.MutateLater(func() { ran = true })
		assert.False(t, ran, "mutation must not run inside the dispatch")
	})
	assert.True(t, ran)
}

func TestActionQueueAndHandler(t *testing.T) {
	rr := newTestRoot(t, newLeaf())

	rr.EditRootWidget(func(mut *WidgetMut) { mut.Ctx.SubmitAction("queued") })
	a, id, ok := rr.PopAction()
	require.True(t, ok)
	assert.Equal(t, "queued", a)
	assert.Equal(t, rr.root.ID(), id)
	_, _, ok = rr.PopAction()
	assert.False(t, ok)

	var got []any
	rr.SetActionHandler(func(a any, id ids.ID) { got = append(got, a) })
	rr.EditRootWidget(func(mut *WidgetMut) { mut.Ctx.SubmitAction("direct") })
	assert.Equal(t, []any{"direct"}, got)
	_, _, ok = rr.PopAction()
	assert.False(t, ok, "handler delivery must bypass the queue")
}

func TestAnimFrameDelivery(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, lf)

	rr.EditRootWidget(func(mut *WidgetMut) { mut.Ctx.RequestAnimFrame() })
	_, ok := rr.PopSignalMatching(func(s Signal) bool { return s.Kind == SignalRequestAnimFrame })
	require.True(t, ok)

	lf.log = nil
	rr.HandleWindowEvent(&events.WindowEvent{Type: events.WinAnimFrame})
	assert.Equal(t, []string{"anim"}, lf.log)

	// Without a re-request, the next tick delivers nothing.
	rr.HandleWindowEvent(&events.WindowEvent{Type: events.WinAnimFrame})
	assert.Equal(t, []string{"anim"}, lf.log)
}

func TestAccessEventRouting(t *testing.T) {
	a, b := newLeaf(), newLeaf()
	vb := newVBox(a, b)
	rr := newTestRoot(t, vb)
	bID := vb.kids[1].ID()
	a.log, b.log = nil, nil

	rr.HandleAccessEvent(&events.AccessEvent{Target: bID, Action: events.AccessDefault})
	assert.Empty(t, a.log, "untargeted sibling subtree must be pruned")
	assert.Equal(t, []string{"access:AccessDefault"}, b.log)
}

func TestAccessFocusDefaultHandling(t *testing.T) {
	a := newLeaf()
	a.focusable = true
	vb := newVBox(a)
	rr := newTestRoot(t, vb)
	aID := vb.kids[0].ID()

	rr.HandleAccessEvent(&events.AccessEvent{Target: aID, Action: events.AccessFocus})
	assert.Equal(t, aID, rr.Focused())

	rr.HandleAccessEvent(&events.AccessEvent{Target: aID, Action: events.AccessBlur})
	assert.False(t, rr.Focused().IsValid())
}

func TestReleaseChildRemovesSubtreeAndResignsFocus(t *testing.T) {
	a, b := newLeaf(), newLeaf()
	a.focusable = true
	vb := newVBox(a, b)
	rr := newTestRoot(t, vb)
	aID := vb.kids[0].ID()

	rr.HandleAccessEvent(&events.AccessEvent{Target: aID, Action: events.AccessFocus})
	require.Equal(t, aID, rr.Focused())

	rr.EditRootWidget(func(mut *WidgetMut) {
		box := mut.Widget.(*vbox)
		pod := box.kids[0]
		box.kids = box.kids[1:]
		mut.Ctx.ReleaseChild(pod)
	})
	assert.False(t, rr.tree.Contains(aID))
	assert.False(t, rr.Focused().IsValid())
}

func TestAccessTreeStructure(t *testing.T) {
	a, b := newLeaf(), newLeaf()
	vb := newVBox(a, b)
	rr := newTestRoot(t, vb)

	root := rr.AccessTree()
	assert.Equal(t, "window", root.Role)
	require.Len(t, root.Children, 1)
	group := root.Children[0]
	assert.Equal(t, "group", group.Role)
	require.Len(t, group.Children, 2)
	assert.Equal(t, vb.kids[1].ID(), group.Children[1].Widget)
	assert.Equal(t, image.Rect(0, 20, 50, 40), group.Children[1].Bounds)
}

func TestRequestScrollToAdjustsAncestorOffset(t *testing.T) {
	a, b := newLeaf(), newLeaf()
	inner := newVBox(a, b)
	sa := newScrollArea(image.Pt(50, 20), inner)
	vb := newVBox(sa)
	rr := newTestRoot(t, vb)
	saState := vb.kids[0].State()
	bst := rr.tree.MustState(inner.kids[1].ID())
	require.Equal(t, image.Pt(0, 20), bst.WindowOrigin, "second leaf starts below the viewport")

	// The visible leaf asks for the hidden one's area from its own
	// pointer handler.
	a.scrollTo = image.Rect(0, 20, 50, 40)
	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(10, 10)))

	assert.Equal(t, image.Pt(0, -20), saState.ScrollOffset)
	assert.Equal(t, image.Pt(0, 0), bst.WindowOrigin, "compose moved the target into view")
	assert.Equal(t, image.Pt(0, -20), rr.tree.MustState(inner.kids[0].ID()).WindowOrigin)
}

func TestAccessScrollIntoViewDefaultHandling(t *testing.T) {
	a, b := newLeaf(), newLeaf()
	inner := newVBox(a, b)
	sa := newScrollArea(image.Pt(50, 20), inner)
	vb := newVBox(sa)
	rr := newTestRoot(t, vb)
	saState := vb.kids[0].State()
	bID := inner.kids[1].ID()

	h := rr.HandleAccessEvent(&events.AccessEvent{Target: bID, Action: events.AccessScrollIntoView})
	assert.Equal(t, events.HandledYes, h)
	assert.Contains(t, b.log, "access:AccessScrollIntoView")
	assert.Equal(t, image.Pt(0, -20), saState.ScrollOffset)
	assert.Equal(t, image.Pt(0, 0), rr.tree.MustState(bID).WindowOrigin)
}

func TestRescaleSetsLogicalPosition(t *testing.T) {
	lf := newLeaf()
	rr := newTestRoot(t, lf)
	rr.HandleWindowEvent(events.NewRescale(2))
	assert.Equal(t, float32(2), rr.scale)

	rr.HandlePointerEvent(events.NewPointerMove(image.Pt(100, 50)))
	assert.Equal(t, image.Pt(100, 50), rr.pointerPos)
}
