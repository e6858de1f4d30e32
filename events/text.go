// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// TextTypes are the kinds of text events.
type TextTypes int32

const (
	// NoText is the zero value.
	NoText TextTypes = iota

	// TextKey is a keyboard key event, carrying [TextEvent.Key].
	TextKey

	// TextIme is an input-method composition event, carrying [TextEvent.Ime].
	TextIme

	// TextModifiers is a change in the held modifier keys.
	TextModifiers

	// TextWindowFocus reports the window gaining or losing input focus,
	// carrying [TextEvent.Focused].
	TextWindowFocus
)

var textNames = map[TextTypes]string{
	NoText:          "NoText",
	TextKey:         "TextKey",
	TextIme:         "TextIme",
	TextModifiers:   "TextModifiers",
	TextWindowFocus: "TextWindowFocus",
}

func (t TextTypes) String() string {
	if s, ok := textNames[t]; ok {
		return s
	}
	return "TextTypes(?)"
}

// ImePhases are the phases of an input-method composition.
type ImePhases int32

const (
	ImeStart ImePhases = iota
	ImeUpdate
	ImeCommit
	ImeEnd
)

// ImeEvent is one step of an input-method composition.
type ImeEvent struct {
	Phase ImePhases
	Text  string
}

// TextEvent is a keyboard, IME, modifier, or window-focus event. Text
// events are routed only into the subtree containing the focused widget.
type TextEvent struct {
	Type    TextTypes
	Key     KeyEvent
	Ime     ImeEvent
	Mods    Modifiers
	Focused bool
}

// NewKey returns a TextKey event for the given key press or release.
func NewKey(key string, down bool, mods Modifiers) *TextEvent {
	return &TextEvent{Type: TextKey, Key: KeyEvent{Key: key, Down: down, Mods: mods}, Mods: mods}
}

func (ev *TextEvent) String() string {
	if ev.Type == TextKey {
		return "TextKey{" + ev.Key.String() + "}"
	}
	return ev.Type.String()
}
