// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Modifiers are the keyboard modifier keys, encoded as bit flags.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// Has returns whether the given modifier is held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// HasAny returns whether any of the given modifiers is held.
func (m Modifiers) HasAny(mods ...Modifiers) bool {
	for _, mod := range mods {
		if m&mod != 0 {
			return true
		}
	}
	return false
}

func (m Modifiers) String() string {
	var b strings.Builder
	add := func(on Modifiers, s string) {
		if m&on != 0 {
			if b.Len() > 0 {
				b.WriteByte('+')
			}
			b.WriteString(s)
		}
	}
	add(Shift, "Shift")
	add(Control, "Control")
	add(Alt, "Alt")
	add(Meta, "Meta")
	if b.Len() == 0 {
		return "None"
	}
	return b.String()
}

// KeyEvent is one physical key press or release. Key is a platform-neutral
// key name (for example "Tab", "Enter", "a"); Rune is the typed character
// if any.
type KeyEvent struct {
	Key  string
	Rune rune
	Down bool
	Mods Modifiers
}

func (e *KeyEvent) String() string {
	s := "KeyUp"
	if e.Down {
		s = "KeyDown"
	}
	return s + "(" + e.Key + ")"
}
