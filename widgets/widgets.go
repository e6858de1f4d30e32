// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the built-in widget set for the core tree
// runtime: [Label], [Button], [SizedBox], and the [Flex] row / column
// container with [Spacer]. These are deliberately plain widgets; their
// value is exercising every engine contract (layout placement, hover and
// capture, focus registration, disable and stash propagation, action
// submission) so applications have working models to copy.
package widgets

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// The widget palette. Real applications bring their own styling; these
// defaults keep painted output deterministic.
var (
	colorText         = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	colorTextDisabled = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorButton       = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	colorButtonHot    = color.RGBA{R: 205, G: 215, B: 235, A: 255}
	colorButtonActive = color.RGBA{R: 175, G: 195, B: 225, A: 255}
	colorBorder       = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colorFocusRing    = color.RGBA{R: 70, G: 120, B: 220, A: 255}
)

// Text metrics for the fixed-advance placeholder font. Glyph shaping is a
// backend concern; the tree only needs stable extents for layout.
const (
	glyphWidth   = 8
	lineHeight   = 16
	textBaseline = 12
)

// textSize returns the layout extent of a single line of text.
func textSize(s string) image.Point {
	return image.Pt(utf8.RuneCountInString(s)*glyphWidth, lineHeight)
}
