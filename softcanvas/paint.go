// seehuhn.de/go/plotcanvas - a canvas drawing backend for plotting
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package softcanvas

import (
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/plotcanvas/internal/raster"
)

// spans returns a function which composites col into the canvas, using
// the coverage values as an alpha mask and source-over compositing.
func (c *Context) spans(col color.NRGBA) raster.SpanFunc {
	dst := c.canvas.img
	src := image.NewUniform(col)
	return func(y, x int, coverage []float32) {
		n := len(coverage)
		c.mask = slices.Grow(c.mask[:0], n)[:n]
		for i, v := range coverage {
			c.mask[i] = uint8(v*255 + 0.5)
		}
		m := &image.Alpha{
			Pix:    c.mask,
			Stride: n,
			Rect:   image.Rect(x, y, x+n, y+1),
		}
		draw.DrawMask(dst, m.Rect, src, image.Point{}, m, m.Rect.Min, draw.Over)
	}
}
