package testcases

import (
	"image"

	"seehuhn.de/go/plotcanvas"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Black, StrokeWidth: 8}
			return b.DrawLine(pt(10, 32), pt(54, 32), style)
		},
		Expect: []Expectation{
			painted(32, 32, 33, 33),
			painted(12, 29, 13, 30),
			blank(0, 0, 64, 27),
			blank(0, 37, 64, 64),
			blank(0, 0, 9, 64),
			blank(55, 0, 64, 64),
		},
	},
	{
		Name:   "diagonal",
		Width:  20,
		Height: 20,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Blue, StrokeWidth: 2}
			return b.DrawLine(pt(0, 0), pt(10, 10), style)
		},
		Expect: []Expectation{
			painted(5, 5, 6, 6),
			blank(8, 0, 20, 3),
			blank(12, 12, 20, 20),
		},
	},
	{
		Name:   "transparent",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Black.Mix(0), StrokeWidth: 8}
			return b.DrawLine(pt(10, 32), pt(54, 32), style)
		},
		Expect: []Expectation{
			blank(0, 0, 64, 64),
		},
	},
	{
		Name:   "polyline",
		Width:  64,
		Height: 64,
		Draw: func(b plotcanvas.DrawingBackend) error {
			style := plotcanvas.ShapeStyle{Color: plotcanvas.Red, StrokeWidth: 4}
			return b.DrawPath([]image.Point{pt(10, 50), pt(32, 10), pt(54, 50)}, style)
		},
		Expect: []Expectation{
			painted(21, 30, 22, 31),
			painted(42, 30, 43, 31),
			painted(31, 9, 33, 12),
			blank(28, 35, 36, 45),
			blank(0, 0, 10, 10),
		},
	},
}
