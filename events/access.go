// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "github.com/arbor-ui/arbor/ids"

// AccessActions are the kinds of platform accessibility actions that can
// be requested on a widget.
type AccessActions int32

const (
	// NoAccessAction is the zero value.
	NoAccessAction AccessActions = iota

	// AccessDefault triggers the widget's default action (e.g. press a button).
	AccessDefault

	// AccessFocus requests keyboard focus on the widget.
	AccessFocus

	// AccessBlur requests that the widget resign keyboard focus.
	AccessBlur

	// AccessSetValue sets the widget's value from [AccessEvent.Data].
	AccessSetValue

	// AccessScrollIntoView requests that the widget be scrolled into view.
	AccessScrollIntoView
)

var accessNames = map[AccessActions]string{
	NoAccessAction:       "NoAccessAction",
	AccessDefault:        "AccessDefault",
	AccessFocus:          "AccessFocus",
	AccessBlur:           "AccessBlur",
	AccessSetValue:       "AccessSetValue",
	AccessScrollIntoView: "AccessScrollIntoView",
}

func (a AccessActions) String() string {
	if s, ok := accessNames[a]; ok {
		return s
	}
	return "AccessActions(?)"
}

// AccessEvent is a platform accessibility action request targeted at a
// specific widget. It is routed down the tree using the per-node
// descendant filters, so only subtrees that may contain the target are
// traversed.
type AccessEvent struct {
	Target ids.ID
	Action AccessActions
	Data   any
}

func (ev *AccessEvent) String() string {
	return "AccessEvent{" + ev.Action.String() + " -> " + ev.Target.String() + "}"
}
