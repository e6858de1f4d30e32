// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/arbor-ui/arbor/ids"

// Bloom is a 64-bit Bloom filter over widget ids, used as the per-node
// "may contain descendant X" set for cheaply pruning subtrees when routing
// focus changes and targeted events. False positives are allowed; false
// negatives are not. It is maintained monotonically: removals leave stale
// bits behind, which only costs extra traversal, never correctness.
type Bloom uint64

// two independent bit positions per id, derived from a splitmix64-style
// finalizer over the raw id.
func bloomBits(id ids.ID) (uint, uint) {
	x := uint64(id)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint(x & 63), uint((x >> 6) & 63)
}

// Add adds the given id to the filter.
func (b *Bloom) Add(id ids.ID) {
	h1, h2 := bloomBits(id)
	*b |= 1<<h1 | 1<<h2
}

// MayContain returns whether the filter may contain the given id.
// A false result is definitive; a true result may be a false positive.
func (b Bloom) MayContain(id ids.ID) bool {
	h1, h2 := bloomBits(id)
	return b&(1<<h1|1<<h2) == 1<<h1|1<<h2
}

// Union adds all entries of the other filter.
func (b *Bloom) Union(o Bloom) {
	*b |= o
}
