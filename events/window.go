// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "image"

// WindowTypes are the kinds of window events delivered by the host.
type WindowTypes int32

const (
	// NoWindow is the zero value.
	NoWindow WindowTypes = iota

	// WinRescale reports a change in the window scale factor (DPI).
	WinRescale

	// WinResize reports a change in the physical window size.
	WinResize

	// WinAnimFrame is an animation tick, delivered by the host in response
	// to a RequestAnimFrame signal.
	WinAnimFrame

	// WinRebuildAccessTree requests a full accessibility tree rebuild.
	WinRebuildAccessTree
)

var windowNames = map[WindowTypes]string{
	NoWindow:             "NoWindow",
	WinRescale:           "WinRescale",
	WinResize:            "WinResize",
	WinAnimFrame:         "WinAnimFrame",
	WinRebuildAccessTree: "WinRebuildAccessTree",
}

func (t WindowTypes) String() string {
	if s, ok := windowNames[t]; ok {
		return s
	}
	return "WindowTypes(?)"
}

// WindowEvent is a window-level event from the host.
type WindowEvent struct {
	Type WindowTypes

	// Scale is the new scale factor for WinRescale.
	Scale float32

	// Size is the new physical size for WinResize.
	Size image.Point
}

// NewResize returns a WinResize event.
func NewResize(size image.Point) *WindowEvent {
	return &WindowEvent{Type: WinResize, Size: size}
}

// NewRescale returns a WinRescale event.
func NewRescale(scale float32) *WindowEvent {
	return &WindowEvent{Type: WinRescale, Scale: scale}
}

func (ev *WindowEvent) String() string {
	return ev.Type.String()
}
