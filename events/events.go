// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered to widgets by the
// render root: pointer events, text and keyboard events, window events,
// and accessibility action events, along with the status-change
// notifications the engine synthesizes around them (hover, focus,
// disabled, active).
//
// Whether an event was consumed is signaled with an explicit [Handled]
// return value, never with a panic or an error.
package events

// Handled reports whether an event has been consumed by a widget.
// It is a named type rather than a bare bool so that call sites read
// as what they are: h := pod.OnPointerEvent(...) == events.HandledYes.
type Handled bool

const (
	// HandledNo indicates the event was not consumed and should keep
	// propagating.
	HandledNo Handled = false

	// HandledYes indicates the event was consumed; remaining dispatch
	// short-circuits.
	HandledYes Handled = true
)

// Or returns the combination of two handled states.
func (h Handled) Or(o Handled) Handled {
	return h || o
}

func (h Handled) String() string {
	if h {
		return "HandledYes"
	}
	return "HandledNo"
}

// StatusTypes are the kinds of derived-state transitions reported to a
// widget via [StatusChange]. The engine guarantees that a HotChanged
// notification is delivered strictly before the pointer event that caused
// the transition.
type StatusTypes int32

const (
	// NoStatus is the zero value.
	NoStatus StatusTypes = iota

	// HotChanged reports that the pointer moved onto or off of the widget.
	HotChanged

	// FocusChanged reports that the widget gained or lost keyboard focus.
	FocusChanged

	// DisabledChanged reports that the widget's effective disabled state
	// flipped, whether from its own flag or an ancestor's.
	DisabledChanged

	// ActiveChanged reports that the widget acquired or released pointer
	// capture.
	ActiveChanged

	// StashChanged reports that the widget was stashed out of, or restored
	// into, the layout / paint / event flow.
	StashChanged
)

var statusNames = map[StatusTypes]string{
	NoStatus:        "NoStatus",
	HotChanged:      "HotChanged",
	FocusChanged:    "FocusChanged",
	DisabledChanged: "DisabledChanged",
	ActiveChanged:   "ActiveChanged",
	StashChanged:    "StashChanged",
}

func (t StatusTypes) String() string {
	if s, ok := statusNames[t]; ok {
		return s
	}
	return "StatusTypes(?)"
}

// StatusChange is a derived-state transition notification.
type StatusChange struct {
	// Type is the kind of transition.
	Type StatusTypes

	// On is the new value of the state in question.
	On bool
}

func (s *StatusChange) String() string {
	if s.On {
		return s.Type.String() + "(true)"
	}
	return s.Type.String() + "(false)"
}
