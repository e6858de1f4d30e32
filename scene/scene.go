// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the paint scene contract between the widget tree
// and a rendering backend. Widgets paint into a [Fragment], an ordered
// list of drawing ops; the engine caches one fragment per node and
// composites fragments into a [Scene] by reference, so an unchanged
// subtree is never re-painted, merely re-offset.
//
// A real backend consumes the fragment tree directly. [Scene.Rasterize]
// is a small software compositor intended for tests and debugging.
package scene

import (
	"image"
	"image/color"
)

// OpKinds are the kinds of drawing ops a fragment can hold.
type OpKinds int32

const (
	// NoOp is the zero value.
	NoOp OpKinds = iota

	// OpFill fills Rect with Color.
	OpFill

	// OpStroke strokes a one-pixel border of Rect with Color.
	OpStroke

	// OpImage draws Image with its top-left corner at Pos.
	OpImage

	// OpText records the text Text anchored at Pos. Shaping and glyph
	// rendering belong to the backend; the op carries only the contract.
	OpText

	// OpChild composites Child at Offset.
	OpChild
)

var opNames = map[OpKinds]string{
	NoOp:     "NoOp",
	OpFill:   "OpFill",
	OpStroke: "OpStroke",
	OpImage:  "OpImage",
	OpText:   "OpText",
	OpChild:  "OpChild",
}

func (k OpKinds) String() string {
	if s, ok := opNames[k]; ok {
		return s
	}
	return "OpKinds(?)"
}

// Op is one drawing operation. Which fields are meaningful depends on Kind.
type Op struct {
	Kind   OpKinds
	Rect   image.Rectangle
	Color  color.RGBA
	Image  image.Image
	Text   string
	Pos    image.Point
	Child  *Fragment
	Offset image.Point
}

// Fragment is an ordered list of drawing ops produced by one widget.
// Coordinates inside a fragment are local to the widget; the parent
// composites the fragment at the child's origin via [Fragment.AppendChild].
type Fragment struct {
	Ops []Op
}

// Reset clears the fragment for re-painting, retaining capacity.
func (f *Fragment) Reset() {
	f.Ops = f.Ops[:0]
}

// IsEmpty returns whether the fragment holds no ops.
func (f *Fragment) IsEmpty() bool {
	return len(f.Ops) == 0
}

// FillRect fills the given local rectangle with the given color.
func (f *Fragment) FillRect(r image.Rectangle, c color.RGBA) {
	f.Ops = append(f.Ops, Op{Kind: OpFill, Rect: r, Color: c})
}

// StrokeRect strokes a one-pixel border of the given local rectangle.
func (f *Fragment) StrokeRect(r image.Rectangle, c color.RGBA) {
	f.Ops = append(f.Ops, Op{Kind: OpStroke, Rect: r, Color: c})
}

// Image draws the given image with its top-left corner at the given
// local position.
func (f *Fragment) Image(img image.Image, at image.Point) {
	f.Ops = append(f.Ops, Op{Kind: OpImage, Image: img, Pos: at})
}

// Text records the given text anchored at the given local position.
func (f *Fragment) Text(s string, at image.Point, c color.RGBA) {
	f.Ops = append(f.Ops, Op{Kind: OpText, Text: s, Pos: at, Color: c})
}

// AppendChild composites the given child fragment at the given offset.
// The child is referenced, not copied: a later repaint of the child is
// visible through the parent once the parent scene is rebuilt.
func (f *Fragment) AppendChild(child *Fragment, offset image.Point) {
	f.Ops = append(f.Ops, Op{Kind: OpChild, Child: child, Offset: offset})
}

// Scene is a complete paint result for one frame: the root fragment plus
// the physical size it was produced for.
type Scene struct {
	Size image.Point
	Root Fragment
}
