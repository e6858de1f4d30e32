// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// PointerTypes are the kinds of pointer events.
type PointerTypes int32

const (
	// NoPointer is the zero value.
	NoPointer PointerTypes = iota

	// PointerDown happens when a pointer button is pressed.
	PointerDown

	// PointerUp happens when a pointer button is released.
	PointerUp

	// PointerMove is sent whenever the pointer moves.
	PointerMove

	// PointerEnter is sent when the pointer enters the window.
	PointerEnter

	// PointerLeave is sent when the pointer leaves the window.
	PointerLeave

	// PointerScroll is a scroll wheel or scroll gesture event.
	PointerScroll

	// PointerUpdate is synthesized internally by the engine to re-evaluate
	// hover state against new geometry after a layout or compose pass.
	// It carries the last known pointer position and is never sent by hosts.
	PointerUpdate
)

var pointerNames = map[PointerTypes]string{
	NoPointer:     "NoPointer",
	PointerDown:   "PointerDown",
	PointerUp:     "PointerUp",
	PointerMove:   "PointerMove",
	PointerEnter:  "PointerEnter",
	PointerLeave:  "PointerLeave",
	PointerScroll: "PointerScroll",
	PointerUpdate: "PointerUpdate",
}

func (t PointerTypes) String() string {
	if s, ok := pointerNames[t]; ok {
		return s
	}
	return "PointerTypes(?)"
}

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = map[Buttons]string{
	NoButton: "NoButton",
	Left:     "Left",
	Middle:   "Middle",
	Right:    "Right",
}

func (b Buttons) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return "Buttons(?)"
}

// ButtonSet is the set of currently pressed pointer buttons.
type ButtonSet int32

// Has returns whether the given button is in the set.
func (s ButtonSet) Has(b Buttons) bool {
	return s&(1<<b) != 0
}

// Set adds or removes the given button.
func (s *ButtonSet) Set(on bool, b Buttons) {
	if on {
		*s |= 1 << b
	} else {
		*s &^= 1 << b
	}
}

// Vec2 is a 2D float32 vector used for logical (scale-independent)
// coordinates and scroll deltas.
type Vec2 struct {
	X, Y float32
}

// ToPoint returns the vector rounded to integer pixel coordinates.
func (v Vec2) ToPoint() image.Point {
	return image.Pt(int(math32.Round(v.X)), int(math32.Round(v.Y)))
}

// MulScalar returns the vector scaled by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// PointerState bundles the pointer position and input state carried by
// every pointer event. Pos is in physical window pixels; LogicalPos is
// Pos divided by the window scale factor.
type PointerState struct {
	Pos        image.Point
	LogicalPos Vec2
	Pressed    ButtonSet
	Mods       Modifiers
}

// SetLogicalFromScale fills LogicalPos from Pos and the given window
// scale factor.
func (ps *PointerState) SetLogicalFromScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	ps.LogicalPos = Vec2{float32(ps.Pos.X) / scale, float32(ps.Pos.Y) / scale}
}

// PointerEvent is a pointer (mouse, touch, pen) event.
type PointerEvent struct {
	// Type is the kind of pointer event.
	Type PointerTypes

	// Button is the button that changed, for PointerDown / PointerUp.
	Button Buttons

	// ScrollDelta is the scroll amount for PointerScroll, in logical units.
	ScrollDelta Vec2

	// State is the pointer position and input state at event time.
	State PointerState
}

// NewPointerMove returns a PointerMove event at the given physical position.
func NewPointerMove(pos image.Point) *PointerEvent {
	return &PointerEvent{Type: PointerMove, State: PointerState{Pos: pos}}
}

// NewPointerButton returns a PointerDown or PointerUp event.
func NewPointerButton(typ PointerTypes, but Buttons, pos image.Point) *PointerEvent {
	ev := &PointerEvent{Type: typ, Button: but, State: PointerState{Pos: pos}}
	ev.State.Pressed.Set(typ == PointerDown, but)
	return ev
}

// NewScroll returns a PointerScroll event.
func NewScroll(pos image.Point, delta Vec2) *PointerEvent {
	return &PointerEvent{Type: PointerScroll, ScrollDelta: delta, State: PointerState{Pos: pos}}
}

// HasPos returns whether this event carries a meaningful position.
// PointerLeave does not: the pointer is no longer over the window.
func (ev *PointerEvent) HasPos() bool {
	return ev.Type != PointerLeave
}

func (ev *PointerEvent) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Type, ev.Button, ev.State.Pos)
}
