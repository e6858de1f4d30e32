// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the tunable engine parameters. Hosts typically use
// [DefaultSettings], optionally overlaid from a TOML file via
// [OpenSettings].
type Settings struct {
	// RewritePassMax is the maximum number of rewrite-pass iterations run
	// per event before the engine defers to the next frame.
	RewritePassMax int `toml:"rewrite-pass-max"`

	// DeferredConvergenceMax is the number of consecutive deferred
	// (capped) event cycles tolerated before the convergence warning is
	// escalated to an error log.
	DeferredConvergenceMax int `toml:"deferred-convergence-max"`

	// ScrollWheelSpeed scales scroll wheel deltas, in pixels per step.
	ScrollWheelSpeed float32 `toml:"scroll-wheel-speed"`
}

// DefaultSettings returns the standard engine settings.
func DefaultSettings() *Settings {
	return &Settings{
		RewritePassMax:         4,
		DeferredConvergenceMax: 8,
		ScrollWheelSpeed:       1,
	}
}

// OpenSettings overlays the given settings from a TOML file. A missing
// file is not an error: the settings are simply left as they are.
func OpenSettings(s *Settings, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("core.OpenSettings: %q: %w", filename, err)
	}
	if s.RewritePassMax < 1 {
		s.RewritePassMax = 1
	}
	return nil
}

// DebugSettingsData are developer toggles for the engine, gating the
// debug-time structural validation layer and the trace logging paths.
type DebugSettingsData struct {
	// ValidateTree enables the structural invariant checks wrapping each
	// dispatch (children-changed announcement, place-child pairing, paint
	// bounds containment). Violations panic when it is on and are logged
	// via slog when it is off.
	ValidateTree bool `toml:"validate-tree"`

	// UpdateTrace logs each rewrite pass as it runs.
	UpdateTrace bool `toml:"update-trace"`

	// LayoutTrace logs layout dispatches.
	LayoutTrace bool `toml:"layout-trace"`

	// EventTrace logs inbound events as they enter the render root.
	EventTrace bool `toml:"event-trace"`
}

// DebugSettings are the process-wide developer toggles. Tests turn
// ValidateTree on; production hosts normally leave everything off so that
// a misbehaving widget degrades to an error log instead of a crash.
var DebugSettings = DebugSettingsData{}

// OpenDebugSettings overlays the given debug toggles from a TOML file.
// As with [OpenSettings], a missing file leaves them untouched.
func OpenDebugSettings(d *DebugSettingsData, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(b, d); err != nil {
		return fmt.Errorf("core.OpenDebugSettings: %q: %w", filename, err)
	}
	return nil
}

// invariantViolation reports a programming-contract violation in a widget
// implementation: fatal when validating (the bug would silently corrupt
// the tree), logged otherwise so the application can limp on.
func invariantViolation(format string, args ...any) {
	if DebugSettings.ValidateTree {
		panic("core: " + fmt.Sprintf(format, args...))
	}
	slog.Error("core: invariant violation", "detail", fmt.Sprintf(format, args...))
}
