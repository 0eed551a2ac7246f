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

import "seehuhn.de/go/plotcanvas"

func label(tr plotcanvas.FontTransform, anchor plotcanvas.Anchor) *plotcanvas.TextStyle {
	return &plotcanvas.TextStyle{
		Family:    plotcanvas.FamilySansSerif,
		Size:      32,
		Color:     plotcanvas.Black,
		Transform: tr,
		Anchor:    anchor,
	}
}

// The expectations below assume the Go Regular font.  "Hello" at 32px is
// about 75 pixels wide and 24 pixels high, without descenders.
var textCases = []TestCase{
	{
		Name:   "baseline_left",
		Width:  200,
		Height: 60,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := label(plotcanvas.RotateNone, plotcanvas.Anchor{})
			return b.DrawText("Hello", style, pt(10, 45))
		},
		Expect: []Expectation{
			painted(10, 13, 90, 46),
			blank(100, 0, 200, 60),
			blank(0, 48, 200, 60),
			blank(0, 0, 8, 60),
		},
	},
	{
		Name:   "centered",
		Width:  200,
		Height: 60,
		Draw: func(b plotcanvas.DrawingBackend) error {
			anchor := plotcanvas.Anchor{H: plotcanvas.HPosCenter, V: plotcanvas.VPosCenter}
			return b.DrawText("Hello", label(plotcanvas.RotateNone, anchor), pt(100, 30))
		},
		Expect: []Expectation{
			painted(80, 15, 120, 45),
			blank(0, 0, 50, 60),
			blank(150, 0, 200, 60),
		},
	},
	{
		Name:   "rotate_90",
		Width:  100,
		Height: 200,
		Draw: func(b plotcanvas.DrawingBackend) error {
			return b.DrawText("Hello", label(plotcanvas.Rotate90, plotcanvas.Anchor{}), pt(50, 20))
		},
		Expect: []Expectation{
			painted(50, 20, 85, 100),
			blank(0, 0, 45, 200),
			blank(0, 110, 100, 200),
			blank(0, 0, 100, 15),
		},
	},
	{
		Name:   "rotate_180",
		Width:  200,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			return b.DrawText("Hello", label(plotcanvas.Rotate180, plotcanvas.Anchor{}), pt(150, 60))
		},
		Expect: []Expectation{
			painted(80, 60, 148, 92),
			blank(0, 0, 200, 55),
			blank(155, 0, 200, 100),
			blank(0, 0, 65, 100),
		},
	},
	{
		Name:   "rotate_270",
		Width:  100,
		Height: 200,
		Draw: func(b plotcanvas.DrawingBackend) error {
			return b.DrawText("Hello", label(plotcanvas.Rotate270, plotcanvas.Anchor{}), pt(50, 180))
		},
		Expect: []Expectation{
			painted(18, 100, 50, 180),
			blank(55, 0, 100, 200),
			blank(0, 0, 100, 95),
			blank(0, 185, 100, 200),
		},
	},
	{
		Name:   "transparent",
		Width:  200,
		Height: 60,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := label(plotcanvas.Rotate90, plotcanvas.Anchor{})
			style.Color = style.Color.Mix(0)
			return b.DrawText("Hello", style, pt(10, 45))
		},
		Expect: []Expectation{
			blank(0, 0, 200, 60),
		},
	},
}
