// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSettingsMissingFile(t *testing.T) {
	s := DefaultSettings()
	err := OpenSettings(s, filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestOpenSettingsOverlay(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
rewrite-pass-max = 7
scroll-wheel-speed = 2.5
`), 0o644))

	s := DefaultSettings()
	require.NoError(t, OpenSettings(s, fn))
	assert.Equal(t, 7, s.RewritePassMax)
	assert.Equal(t, float32(2.5), s.ScrollWheelSpeed)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultSettings().DeferredConvergenceMax, s.DeferredConvergenceMax)
}

func TestOpenSettingsClampsPassMax(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("rewrite-pass-max = 0\n"), 0o644))

	s := DefaultSettings()
	require.NoError(t, OpenSettings(s, fn))
	assert.Equal(t, 1, s.RewritePassMax)
}

func TestOpenDebugSettingsOverlay(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "debug.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
validate-tree = true
event-trace = true
`), 0o644))

	var d DebugSettingsData
	require.NoError(t, OpenDebugSettings(&d, fn))
	assert.True(t, d.ValidateTree)
	assert.True(t, d.EventTrace)
	assert.False(t, d.UpdateTrace)

	// A missing file leaves the toggles alone.
	require.NoError(t, OpenDebugSettings(&d, filepath.Join(t.TempDir(), "nope.toml")))
	assert.True(t, d.ValidateTree)
}

func TestOpenSettingsBadTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("rewrite-pass-max = [nope"), 0o644))
	assert.Error(t, OpenSettings(DefaultSettings(), fn))
}
