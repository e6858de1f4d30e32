// Copyright (c) 2026, The Arbor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"golang.org/x/image/draw"
)

// Rasterize composites the scene into dst with a simple software
// compositor. OpText ops are skipped: text shaping belongs to the
// backend. Intended for tests and debugging, not production rendering.
func (sc *Scene) Rasterize(dst *image.RGBA) {
	rasterize(&sc.Root, dst, image.Point{})
}

// NewImage returns a new RGBA image of the scene's size with the scene
// rasterized into it.
func (sc *Scene) NewImage() *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: sc.Size})
	sc.Rasterize(dst)
	return dst
}

func rasterize(f *Fragment, dst *image.RGBA, off image.Point) {
	for i := range f.Ops {
		op := &f.Ops[i]
		switch op.Kind {
		case OpFill:
			r := op.Rect.Add(off).Intersect(dst.Bounds())
			draw.Draw(dst, r, image.NewUniform(op.Color), image.Point{}, draw.Over)
		case OpStroke:
			r := op.Rect.Add(off)
			src := image.NewUniform(op.Color)
			edges := []image.Rectangle{
				image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
				image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
				image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
				image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
			}
			for _, e := range edges {
				draw.Draw(dst, e.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
			}
		case OpImage:
			sb := op.Image.Bounds()
			r := image.Rectangle{Min: op.Pos.Add(off), Max: op.Pos.Add(off).Add(sb.Size())}
			draw.Draw(dst, r.Intersect(dst.Bounds()), op.Image, sb.Min, draw.Over)
		case OpChild:
			rasterize(op.Child, dst, off.Add(op.Offset))
		}
	}
}
