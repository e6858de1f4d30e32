// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func TestFragmentReset(t *testing.T) {
	var f Fragment
	assert.True(t, f.IsEmpty())
	f.FillRect(image.Rect(0, 0, 1, 1), red)
	f.Text("x", image.Pt(0, 0), red)
	assert.Len(t, f.Ops, 2)
	f.Reset()
	assert.True(t, f.IsEmpty())
}

func TestRasterizeFillAndChildOffset(t *testing.T) {
	var child Fragment
	child.FillRect(image.Rect(0, 0, 2, 2), blue)

	sc := &Scene{Size: image.Pt(8, 8)}
	sc.Root.FillRect(image.Rect(0, 0, 4, 4), red)
	sc.Root.AppendChild(&child, image.Pt(4, 4))

	img := sc.NewImage()
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, blue, img.RGBAAt(5, 5), "child ops are offset by the composite point")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(7, 7))
}

func TestAppendChildIsByReference(t *testing.T) {
	var child Fragment
	child.FillRect(image.Rect(0, 0, 2, 2), blue)

	sc := &Scene{Size: image.Pt(4, 4)}
	sc.Root.AppendChild(&child, image.Point{})
	assert.Equal(t, blue, sc.NewImage().RGBAAt(1, 1))

	// Repainting the child is visible through the already-built scene.
	child.Reset()
	child.FillRect(image.Rect(0, 0, 2, 2), green)
	assert.Equal(t, green, sc.NewImage().RGBAAt(1, 1))
}

func TestRasterizeStroke(t *testing.T) {
	sc := &Scene{Size: image.Pt(4, 4)}
	sc.Root.StrokeRect(image.Rect(0, 0, 4, 4), red)

	img := sc.NewImage()
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(3, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2), "stroke leaves the interior untouched")
}

func TestRasterizeSkipsText(t *testing.T) {
	sc := &Scene{Size: image.Pt(4, 4)}
	sc.Root.Text("hi", image.Pt(0, 0), red)
	assert.Equal(t, color.RGBA{}, sc.NewImage().RGBAAt(0, 0))
}
