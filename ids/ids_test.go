// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ids

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextUnique(t *testing.T) {
	n := 1000
	seen := make(map[ID]bool, n)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < n/8; j++ {
				id := Next()
				assert.True(t, id.IsValid())
				mu.Lock()
				assert.False(t, seen[id])
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestReserved(t *testing.T) {
	a := Reserved(1)
	b := Reserved(2)
	assert.True(t, a.IsValid())
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Reserved(1))
	assert.NotEqual(t, a, Next())
}

func TestString(t *testing.T) {
	assert.Equal(t, "id(invalid)", ID(0).String())
	assert.Equal(t, "id(#7)", Reserved(7).String())
}
