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

package raster

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageImage collects the spans of a Rasterizer into a w×h buffer.
type coverageImage struct {
	w, h int
	pix  []float32
}

func newCoverageImage(w, h int) *coverageImage {
	return &coverageImage{w: w, h: h, pix: make([]float32, w*h)}
}

func (img *coverageImage) span(y, x int, coverage []float32) {
	if y < 0 || y >= img.h || x < 0 || x+len(coverage) > img.w {
		panic(fmt.Sprintf("span (%d, %d)+%d outside the clip rectangle", x, y, len(coverage)))
	}
	copy(img.pix[y*img.w+x:], coverage)
}

func (img *coverageImage) at(x, y int) float32 {
	return img.pix[y*img.w+x]
}

// total returns the painted area in pixels.
func (img *coverageImage) total() float64 {
	var sum float64
	for _, v := range img.pix {
		sum += float64(v)
	}
	return sum
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	img := newCoverageImage(10, 1)
	New(clipRect(10, 1)).Fill(p, img.span)

	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := img.at(x, 0); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got, want)
		}
	}
}

func TestFillImplicitClose(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(pt(2, 2)).
		LineTo(pt(8, 2)).
		LineTo(pt(8, 8)).
		LineTo(pt(2, 8))
	closed := (&path.Data{}).
		MoveTo(pt(2, 2)).
		LineTo(pt(8, 2)).
		LineTo(pt(8, 8)).
		LineTo(pt(2, 8)).
		Close()

	a := newCoverageImage(10, 10)
	b := newCoverageImage(10, 10)
	r := New(clipRect(10, 10))
	r.Fill(open, a.span)
	r.Fill(closed, b.span)

	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			t.Fatalf("pixel %d: %g != %g", i, a.pix[i], b.pix[i])
		}
	}
	if got := a.total(); math.Abs(got-36) > 1e-4 {
		t.Errorf("area %g, want 36", got)
	}
}

func TestFillClipped(t *testing.T) {
	// a square which extends beyond all four sides of the clip rectangle
	p := (&path.Data{}).
		MoveTo(pt(-5, -5)).
		LineTo(pt(15, -5)).
		LineTo(pt(15, 15)).
		LineTo(pt(-5, 15)).
		Close()

	img := newCoverageImage(10, 10)
	New(clipRect(10, 10)).Fill(p, img.span)
	for i, v := range img.pix {
		if v != 1 {
			t.Fatalf("pixel %d: coverage %g", i, v)
		}
	}
}

func TestFillNonZero(t *testing.T) {
	// two nested squares with the same orientation: the inner one stays
	// filled
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close().
		MoveTo(pt(3, 3)).LineTo(pt(7, 3)).LineTo(pt(7, 7)).LineTo(pt(3, 7)).Close()

	img := newCoverageImage(10, 10)
	New(clipRect(10, 10)).Fill(p, img.span)
	if got := img.at(5, 5); got != 1 {
		t.Errorf("inner square: coverage %g", got)
	}

	// reversing the inner square cuts a hole
	p = (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close().
		MoveTo(pt(3, 3)).LineTo(pt(3, 7)).LineTo(pt(7, 7)).LineTo(pt(7, 3)).Close()
	img = newCoverageImage(10, 10)
	New(clipRect(10, 10)).Fill(p, img.span)
	if got := img.at(5, 5); got != 0 {
		t.Errorf("hole: coverage %g", got)
	}
	if got := img.at(1, 1); got != 1 {
		t.Errorf("ring: coverage %g", got)
	}
}

func TestFillCircle(t *testing.T) {
	// four cubic Bézier curves approximating a circle of radius 40
	const r = 40.0
	k := 4.0 / 3 * math.Tan(math.Pi/8) * r
	c := pt(50, 50)
	p := (&path.Data{}).
		MoveTo(c.Add(pt(r, 0))).
		CubeTo(c.Add(pt(r, k)), c.Add(pt(k, r)), c.Add(pt(0, r))).
		CubeTo(c.Add(pt(-k, r)), c.Add(pt(-r, k)), c.Add(pt(-r, 0))).
		CubeTo(c.Add(pt(-r, -k)), c.Add(pt(-k, -r)), c.Add(pt(0, -r))).
		CubeTo(c.Add(pt(k, -r)), c.Add(pt(r, -k)), c.Add(pt(r, 0))).
		Close()

	img := newCoverageImage(100, 100)
	New(clipRect(100, 100)).Fill(p, img.span)

	// 32 chords lose about 0.6% of the area
	want := math.Pi * r * r
	if got := img.total(); math.Abs(got-want)/want > 0.01 {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestFillQuadratic(t *testing.T) {
	// The region between the parabola through (0,10), (10,10) with
	// control point (5,0) and its chord has area 2/3·10·5.
	p := (&path.Data{}).
		MoveTo(pt(0, 10)).
		QuadTo(pt(5, 0), pt(10, 10)).
		Close()

	img := newCoverageImage(10, 10)
	New(clipRect(10, 10)).Fill(p, img.span)

	// The chords lie inside the curve.  With n equal parameter steps the
	// inscribed polygon misses the fraction 1/n² of the area; here n = 5.
	want := 2.0 / 3 * 10 * 5
	if got := img.total(); got > want+1e-3 || want-got > want/20 {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestFillCTM(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(1, 0)).LineTo(pt(1, 1)).LineTo(pt(0, 1)).Close()

	r := New(clipRect(20, 20))
	r.CTM = matrix.Scale(4, 2).Mul(matrix.Translate(3, 5))
	img := newCoverageImage(20, 20)
	r.Fill(p, img.span)

	if got := img.total(); math.Abs(got-8) > 1e-4 {
		t.Errorf("area %g, want 8", got)
	}
	if img.at(3, 5) != 1 || img.at(6, 6) != 1 || img.at(7, 5) != 0 || img.at(3, 7) != 0 {
		t.Error("square is not at (3, 5)-(7, 7)")
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(30, 10))

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 20 * 4},
		{graphics.LineCapSquare, 24 * 4},
		{graphics.LineCapRound, 20*4 + math.Pi*2*2},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := New(clipRect(40, 20))
			r.Width = 4
			r.Cap = tc.cap
			img := newCoverageImage(40, 20)
			r.Stroke(line, img.span)

			if got := img.total(); math.Abs(got-tc.area)/tc.area > 0.02 {
				t.Errorf("area %g, want %g", got, tc.area)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// a right angle at (30, 30), with the outer corner at (32, 32)
	corner := (&path.Data{}).MoveTo(pt(10, 30)).LineTo(pt(30, 30)).LineTo(pt(30, 10))

	const body = 20*4 + 20*4 - 4 // the two legs, overlapping in a 2×2 square
	cases := []struct {
		join  graphics.LineJoinStyle
		limit float64
		extra float64
		tol   float64
	}{
		{graphics.LineJoinMiter, 10, 2, 0.01},
		{graphics.LineJoinMiter, 1.2, 0, 0.01},
		{graphics.LineJoinBevel, 10, 0, 0.01},
		{graphics.LineJoinRound, 10, math.Pi - 2, 0.5}, // flattened arc
	}
	for _, tc := range cases {
		name := fmt.Sprintf("%s_%g", tc.join, tc.limit)
		t.Run(name, func(t *testing.T) {
			r := New(clipRect(40, 40))
			r.Width = 4
			r.Join = tc.join
			r.MiterLimit = tc.limit
			img := newCoverageImage(40, 40)
			r.Stroke(corner, img.span)

			want := body + 2 + tc.extra // plus the bevel triangle
			if got := img.total(); math.Abs(got-want) > tc.tol {
				t.Errorf("area %g, want %g", got, want)
			}
		})
	}
}

func TestStrokeClosedRectangle(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(10, 10)).LineTo(pt(30, 10)).LineTo(pt(30, 30)).LineTo(pt(10, 30)).Close()

	r := New(clipRect(40, 40))
	r.Width = 2
	img := newCoverageImage(40, 40)
	r.Stroke(p, img.span)

	if got, want := img.total(), 22.0*22-18*18; math.Abs(got-want) > 1e-3 {
		t.Errorf("area %g, want %g", got, want)
	}
	if img.at(20, 20) != 0 {
		t.Error("inside of the rectangle is painted")
	}
	if img.at(9, 9) != 1 || img.at(30, 30) != 1 {
		t.Error("mitered corners are missing")
	}
}

func TestStrokeAfterClose(t *testing.T) {
	// after ClosePath, drawing continues at the start of the subpath
	p := (&path.Data{}).
		MoveTo(pt(10, 10)).LineTo(pt(20, 10)).LineTo(pt(20, 20)).Close().
		LineTo(pt(10, 30))

	r := New(clipRect(40, 40))
	r.Width = 2
	img := newCoverageImage(40, 40)
	r.Stroke(p, img.span)

	if img.at(9, 20) == 0 || img.at(10, 20) == 0 {
		t.Error("segment after ClosePath is missing")
	}
}

func TestStrokeDot(t *testing.T) {
	dot := (&path.Data{}).MoveTo(pt(20, 20)).LineTo(pt(20, 20))

	r := New(clipRect(40, 40))
	r.Width = 20

	img := newCoverageImage(40, 40)
	r.Stroke(dot, img.span)
	if got := img.total(); got != 0 {
		t.Errorf("butt cap: area %g, want 0", got)
	}

	r.Cap = graphics.LineCapRound
	img = newCoverageImage(40, 40)
	r.Stroke(dot, img.span)
	if got, want := img.total(), math.Pi*100; math.Abs(got-want)/want > 0.05 {
		t.Errorf("round cap: area %g, want %g", got, want)
	}

	// a lone MoveTo draws nothing
	img = newCoverageImage(40, 40)
	r.Stroke((&path.Data{}).MoveTo(pt(20, 20)), img.span)
	if got := img.total(); got != 0 {
		t.Errorf("MoveTo only: area %g", got)
	}
}

func TestStrokeCTM(t *testing.T) {
	// the line width is scaled together with the path
	line := (&path.Data{}).MoveTo(pt(1, 2)).LineTo(pt(9, 2))

	r := New(clipRect(40, 40))
	r.CTM = matrix.Scale(3, 3)
	r.Width = 1
	img := newCoverageImage(40, 40)
	r.Stroke(line, img.span)

	if got := img.total(); math.Abs(got-24*3) > 1e-3 {
		t.Errorf("area %g, want 72", got)
	}
}

func TestReuse(t *testing.T) {
	big := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(100, 0)).LineTo(pt(100, 100)).LineTo(pt(0, 100)).Close()
	small := (&path.Data{}).
		MoveTo(pt(1, 1)).LineTo(pt(3, 1)).LineTo(pt(3, 3)).LineTo(pt(1, 3)).Close()

	r := New(clipRect(100, 100))
	r.Fill(big, func(int, int, []float32) {})
	img := newCoverageImage(100, 100)
	r.Fill(small, img.span)
	if got := img.total(); got != 4 {
		t.Errorf("area %g, want 4", got)
	}
}

func BenchmarkFill(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			p := (&path.Data{}).
				MoveTo(pt(0.1*s, 0.1*s)).
				LineTo(pt(0.9*s, 0.3*s)).
				LineTo(pt(0.5*s, 0.9*s)).
				Close()
			r := New(clipRect(size, size))
			span := func(y, x int, coverage []float32) {}

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(p, span)
			}
		})
	}
}

func BenchmarkStroke(b *testing.B) {
	p := &path.Data{}
	p.MoveTo(pt(10, 200))
	for i := 1; i <= 64; i++ {
		x := 10 + 380*float64(i)/64
		p.LineTo(pt(x, 200+150*math.Sin(x/30)))
	}
	r := New(clipRect(400, 400))
	r.Width = 3
	r.Join = graphics.LineJoinRound
	span := func(y, x int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, span)
	}
}
