// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/arbor-ui/arbor/ids"
)

// SignalKinds are the kinds of side-effect requests the tree sends to the
// embedding host.
type SignalKinds int32

const (
	// NoSignal is the zero value.
	NoSignal SignalKinds = iota

	// SignalAction carries an application-level outcome (Signal.Action)
	// tagged with the id of the widget that produced it.
	SignalAction

	// SignalStartIme asks the host to begin an input-method composition.
	SignalStartIme

	// SignalEndIme asks the host to end the input-method composition.
	SignalEndIme

	// SignalImeMoved reports the new position and size of the IME
	// candidate area (Signal.Pos, Signal.Size).
	SignalImeMoved

	// SignalRequestRedraw asks the host to schedule a redraw.
	SignalRequestRedraw

	// SignalRequestAnimFrame asks the host to deliver an animation tick.
	SignalRequestAnimFrame

	// SignalTakeFocus asks the host to give the window input focus.
	SignalTakeFocus

	// SignalSetCursor asks the host to change the cursor icon (Signal.Cursor).
	SignalSetCursor

	// SignalSetSize asks the host to resize the window (Signal.Size).
	SignalSetSize

	// SignalSetTitle asks the host to retitle the window (Signal.Title).
	SignalSetTitle

	// SignalDragWindow asks the host to begin a window move drag.
	SignalDragWindow

	// SignalDragResizeWindow asks the host to begin a window resize drag
	// (Signal.Direction).
	SignalDragResizeWindow

	// SignalToggleMaximized asks the host to toggle window maximization.
	SignalToggleMaximized

	// SignalMinimize asks the host to minimize the window.
	SignalMinimize

	// SignalExit asks the host to exit the application.
	SignalExit

	// SignalShowWindowMenu asks the host to show the window menu at
	// Signal.Pos.
	SignalShowWindowMenu
)

var signalNames = map[SignalKinds]string{
	NoSignal:               "NoSignal",
	SignalAction:           "Action",
	SignalStartIme:         "StartIme",
	SignalEndIme:           "EndIme",
	SignalImeMoved:         "ImeMoved",
	SignalRequestRedraw:    "RequestRedraw",
	SignalRequestAnimFrame: "RequestAnimFrame",
	SignalTakeFocus:        "TakeFocus",
	SignalSetCursor:        "SetCursor",
	SignalSetSize:          "SetSize",
	SignalSetTitle:         "SetTitle",
	SignalDragWindow:       "DragWindow",
	SignalDragResizeWindow: "DragResizeWindow",
	SignalToggleMaximized:  "ToggleMaximized",
	SignalMinimize:         "Minimize",
	SignalExit:             "Exit",
	SignalShowWindowMenu:   "ShowWindowMenu",
}

func (k SignalKinds) String() string {
	if s, ok := signalNames[k]; ok {
		return s
	}
	return "SignalKinds(?)"
}

// Cursors are the standard cursor icons a widget can request.
type Cursors int32

const (
	CursorDefault Cursors = iota
	CursorPointer
	CursorText
	CursorGrab
	CursorCrosshair
	CursorNotAllowed
	CursorResizeEW
	CursorResizeNS
)

// ResizeDirections are the window edges and corners for a resize drag.
type ResizeDirections int32

const (
	ResizeNorth ResizeDirections = iota
	ResizeNorthEast
	ResizeEast
	ResizeSouthEast
	ResizeSouth
	ResizeSouthWest
	ResizeWest
	ResizeNorthWest
)

// Signal is one side-effect request from the tree to the host. Which
// payload fields are meaningful depends on Kind.
type Signal struct {
	Kind      SignalKinds
	Widget    ids.ID
	Action    any
	Pos       image.Point
	Size      image.Point
	Title     string
	Cursor    Cursors
	Direction ResizeDirections
}

func (s Signal) String() string {
	return "Signal{" + s.Kind.String() + "}"
}

// SignalQueue is the FIFO queue of outbound [Signal] values, drained by
// the host after each event.
type SignalQueue struct {
	sigs []Signal
}

// Push appends a signal.
func (q *SignalQueue) Push(s Signal) {
	q.sigs = append(q.sigs, s)
}

// Pop removes and returns the oldest signal, reporting whether there was
// one.
func (q *SignalQueue) Pop() (Signal, bool) {
	if len(q.sigs) == 0 {
		return Signal{}, false
	}
	s := q.sigs[0]
	q.sigs = q.sigs[1:]
	return s, true
}

// PopMatching removes and returns the oldest signal satisfying the given
// predicate, leaving the relative order of the remaining signals
// undisturbed.
func (q *SignalQueue) PopMatching(match func(Signal) bool) (Signal, bool) {
	for i, s := range q.sigs {
		if match(s) {
			q.sigs = append(q.sigs[:i], q.sigs[i+1:]...)
			return s, true
		}
	}
	return Signal{}, false
}

// Len returns the number of queued signals.
func (q *SignalQueue) Len() int {
	return len(q.sigs)
}
