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

// Package testcases contains drawing scenarios for plotcanvas backends,
// together with coarse expectations about the rendered result.
package testcases

import (
	"image"

	"seehuhn.de/go/plotcanvas"
)

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Draw issues the drawing commands.
	Draw func(b plotcanvas.DrawingBackend) error

	// Expect describes the expected result.
	Expect []Expectation
}

// Expectation describes a region of the rendered image.
type Expectation struct {
	Region image.Rectangle

	// If Painted is true, at least one pixel in Region must be clearly
	// painted (alpha at least PaintedAlpha).  Otherwise all pixels in
	// Region must be untouched (alpha zero).
	Painted bool

	// If Solid is true, every pixel in Region must be fully covered
	// (alpha at least SolidAlpha).
	Solid bool
}

// PaintedAlpha is the minimum 8-bit alpha value of a painted pixel.
const PaintedAlpha = 100

// SolidAlpha is the minimum 8-bit alpha value of a fully covered pixel.
const SolidAlpha = 250

// Check reports whether img satisfies the expectation.
func (p Expectation) Check(img *image.RGBA) bool {
	r := p.Region.Intersect(img.Bounds())
	if p.Solid {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.RGBAAt(x, y).A < SolidAlpha {
					return false
				}
			}
		}
		return !r.Empty()
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := img.RGBAAt(x, y).A
			if p.Painted && a >= PaintedAlpha {
				return true
			}
			if !p.Painted && a != 0 {
				return false
			}
		}
	}
	return !p.Painted
}

func painted(x0, y0, x1, y1 int) Expectation {
	return Expectation{Region: image.Rect(x0, y0, x1, y1), Painted: true}
}

func solid(x0, y0, x1, y1 int) Expectation {
	return Expectation{Region: image.Rect(x0, y0, x1, y1), Painted: true, Solid: true}
}

func blank(x0, y0, x1, y1 int) Expectation {
	return Expectation{Region: image.Rect(x0, y0, x1, y1)}
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
