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

package testcases

import (
	"image"

	"seehuhn.de/go/plotcanvas"
)

var shapeCases = []TestCase{
	{
		Name:   "filled_rect",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Red, Filled: true}
			return b.DrawRect(pt(10, 10), pt(30, 20), style)
		},
		Expect: []Expectation{
			painted(10, 10, 11, 11),
			painted(29, 19, 30, 20),
			blank(0, 0, 64, 10),
			blank(0, 20, 64, 64),
			blank(30, 0, 64, 64),
		},
	},
	{
		Name:   "outline_rect",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Green, StrokeWidth: 2}
			return b.DrawRect(pt(10, 10), pt(50, 40), style)
		},
		Expect: []Expectation{
			painted(29, 9, 30, 11),
			painted(9, 24, 11, 25),
			// mitered corners fill the outer corner pixels
			solid(9, 9, 10, 10),
			solid(50, 9, 51, 10),
			solid(50, 40, 51, 41),
			solid(9, 40, 10, 41),
			blank(15, 15, 45, 35),
			blank(0, 0, 64, 7),
		},
	},
	{
		Name:   "disc",
		Width:  100,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Blue, Filled: true}
			return b.DrawCircle(pt(50, 50), 20, style)
		},
		Expect: []Expectation{
			painted(45, 45, 55, 55),
			painted(50, 31, 51, 32),
			blank(0, 0, 30, 30),
			blank(0, 72, 100, 100),
		},
	},
	{
		Name:   "circle",
		Width:  100,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Blue, StrokeWidth: 2}
			return b.DrawCircle(pt(50, 50), 20, style)
		},
		Expect: []Expectation{
			painted(48, 28, 52, 32),
			painted(68, 48, 72, 52),
			blank(40, 40, 60, 60),
			blank(0, 0, 25, 25),
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			pts := []image.Point{pt(10, 50), pt(32, 10), pt(54, 50)}
			return b.FillPolygon(pts, plotcanvas.Black)
		},
		Expect: []Expectation{
			painted(28, 35, 36, 45),
			blank(0, 0, 10, 10),
			blank(0, 51, 64, 64),
		},
	},
}
