// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids provides process-unique identifiers for widgets in the tree.
// An [ID] is the sole stable cross-reference between a widget wrapper, its
// state record, and its entry in the tree arena.
package ids

import (
	"strconv"
	"sync/atomic"
)

// ID is an opaque, process-unique handle for one widget in the tree.
// It is immutable once assigned and never reused for the lifetime of
// the process. The zero value is not a valid ID.
type ID uint64

// reservedBit marks ids produced by [Reserved], keeping them disjoint
// from the ids handed out by [Next].
const reservedBit uint64 = 1 << 63

// counter is the process-wide id source. It must be atomic because widget
// construction, and therefore id allocation, may happen off the main event
// sequence before a widget is inserted into a tree.
var counter atomic.Uint64

// Next returns a new process-unique ID. It is safe to call from any
// goroutine. The first ID returned is 1; 0 is reserved as invalid.
func Next() ID {
	return ID(counter.Add(1))
}

// Reserved deterministically maps a small integer to a distinct high-range
// ID, for callers that need to know an id before the widget is constructed
// (for example, stable ids referenced from tests or application state).
// All Reserved ids are disjoint from [Next] ids; uniqueness among Reserved
// ids is the caller's responsibility.
func Reserved(raw uint16) ID {
	return ID(reservedBit | uint64(raw))
}

// IsValid returns whether the id is non-zero.
func (id ID) IsValid() bool {
	return id != 0
}

func (id ID) String() string {
	if !id.IsValid() {
		return "id(invalid)"
	}
	if uint64(id)&reservedBit != 0 {
		return "id(#" + strconv.FormatUint(uint64(id)&^reservedBit, 10) + ")"
	}
	return "id(" + strconv.FormatUint(uint64(id), 10) + ")"
}
