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
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// ErrNoFace is returned when no font face is available for drawing text.
var ErrNoFace = errors.New("softcanvas: no usable font face")

// MeasureText returns the advance width of text in the current font,
// in user space units.
func (c *Context) MeasureText(text string) (float64, error) {
	face := c.face()
	if face == nil {
		return 0, ErrNoFace
	}
	return fixedToFloat(font.MeasureString(face, text)), nil
}

// FillText draws text with the fill colour.  The point (x, y) is
// positioned according to the current text alignment and baseline.
func (c *Context) FillText(text string, x, y float64) error {
	if !isFinite(x) || !isFinite(y) {
		return nil
	}
	face := c.face()
	if face == nil {
		return ErrNoFace
	}
	if text == "" || c.fill.A == 0 || !c.invertible() {
		return nil
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	advance := font.MeasureString(face, text)
	width := fixedToFloat(advance)

	switch c.align {
	case "center":
		x -= width / 2
	case "end", "right":
		x -= width
	}
	switch c.baseline {
	case "top", "hanging":
		y += ascent
	case "middle":
		y += (ascent - descent) / 2
	case "bottom", "ideographic":
		y -= descent
	}

	// The glyphs are rendered into a coverage mask with a one pixel
	// margin.  Mask pixel (0, 0) has its top-left corner at the user space
	// point (x-1, y-ascent-1).  Only the part of the mask which can reach
	// the canvas is allocated.
	full := image.Rect(0, 0, int(math.Ceil(width))+2, int(math.Ceil(ascent+descent))+2)
	toDevice := matrix.Translate(x-1, y-ascent-1).Mul(c.ctm)
	visible := c.visibleMask(toDevice, full)
	if visible.Empty() {
		return nil
	}

	mask := image.NewAlpha(visible)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(1), Y: floatToFixed(ascent + 1)},
	}
	d.DrawString(text)

	c.drawMask(mask, toDevice)
	return nil
}

// visibleMask returns the part of the mask rectangle full whose pixels
// can cover canvas pixels, when the mask is mapped to the device by
// toDevice.
func (c *Context) visibleMask(toDevice matrix.Matrix, full image.Rectangle) image.Rectangle {
	dev := boundingBox(toDevice, full).Intersect(c.canvas.img.Bounds())
	if dev.Empty() {
		return image.Rectangle{}
	}
	return boundingBox(toDevice.Inv(), dev).Intersect(full)
}

// drawMask composites the fill colour through mask, which is mapped to
// the device by toDevice.  Device pixels are sampled at their centres.
func (c *Context) drawMask(mask *image.Alpha, toDevice matrix.Matrix) {
	r := boundingBox(toDevice, mask.Rect).Intersect(c.canvas.img.Bounds())
	if r.Empty() {
		return
	}

	inv := toDevice.Inv()
	dev := image.NewAlpha(r)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			mx, my := inv.Apply(float64(px)+0.5, float64(py)+0.5)
			p := image.Pt(int(math.Floor(mx)), int(math.Floor(my)))
			if !p.In(mask.Rect) {
				continue
			}
			dev.Pix[dev.PixOffset(px, py)] = mask.Pix[mask.PixOffset(p.X, p.Y)]
		}
	}
	draw.DrawMask(c.canvas.img, r, image.NewUniform(c.fill), image.Point{}, dev, r.Min, draw.Over)
}

// boundingBox returns the smallest pixel rectangle which contains the
// image of r under m.
func boundingBox(m matrix.Matrix, r image.Rectangle) image.Rectangle {
	corners := [4]image.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
	var bbox rect.Rect
	for i, p := range corners {
		x, y := m.Apply(float64(p.X), float64(p.Y))
		if i == 0 {
			bbox = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
		} else {
			bbox.Add(x, y)
		}
	}
	bbox = bbox.Rounded()
	return image.Rect(int(bbox.LLx), int(bbox.LLy), int(bbox.URx), int(bbox.URy))
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
