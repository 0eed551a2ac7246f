package testcases

import "seehuhn.de/go/plotcanvas"

var pixelCases = []TestCase{
	{
		Name:   "half_alpha",
		Width:  100,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			return b.DrawPixel(pt(50, 50), plotcanvas.Black.Mix(0.5))
		},
		Expect: []Expectation{
			painted(50, 50, 51, 51),
			blank(49, 49, 50, 52),
			blank(51, 49, 52, 52),
			blank(50, 49, 51, 50),
			blank(50, 51, 51, 52),
		},
	},
	{
		Name:   "transparent",
		Width:  100,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			return b.DrawPixel(pt(50, 50), plotcanvas.Black.Mix(0))
		},
		Expect: []Expectation{
			blank(0, 0, 100, 100),
		},
	},
	{
		// alpha runs from -2 to 1.9 along the diagonal
		Name:   "alpha_ramp",
		Width:  100,
		Height: 100,
		Draw: func(b plotcanvas.DrawingBackend) error {
			for i := -20; i < 20; i++ {
				alpha := float64(i) * 0.1
				err := b.DrawPixel(pt(50+i, 50+i), plotcanvas.Black.Mix(alpha))
				if err != nil {
					return err
				}
			}
			return nil
		},
		Expect: []Expectation{
			blank(30, 30, 51, 51),
			painted(55, 55, 56, 56),
			painted(69, 69, 70, 70),
			blank(70, 70, 100, 100),
		},
	},
}
