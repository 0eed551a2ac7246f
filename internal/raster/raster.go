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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked paths.  The coverage is delivered one pixel row at a time, and
// the caller composites it into its own image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// SpanFunc receives the coverage of the pixels (x, y), (x+1, y), ...
// Coverage values are in the range [0, 1].  The slice is only valid
// during the call.
type SpanFunc func(y, x int, coverage []float32)

// Rasterizer turns paths into coverage spans.  The internal buffers grow
// as needed and are reused, so that a single Rasterizer can paint many
// paths without allocating.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.  It must be invertible.
	CTM matrix.Matrix

	// Clip limits the output to this device rectangle.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the line segments which replace it.
	Flatness float64

	// Width is the stroke width, measured before the CTM is applied.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of the corners between segments.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio between miter length and line
	// width for which a miter join is drawn.  Above this, the join is
	// beveled.
	MiterLimit float64

	edges  []edge
	active []int
	bbox   rect.Rect
	cover  []float32
	area   []float32

	segs    []segment
	back    []segment
	runs    []run
	dots    []vec.Vec2
	outline []vec.Vec2
	polys   []int
}

// edge is a non-horizontal line segment in device space, stored with the
// upper end point first.
type edge struct {
	x, y0, y1 float64 // x is the horizontal position at y0
	dxdy      float64
	dir       float32 // +1 for segments which run downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x + e.dxdy*(y-e.y0)
}

// New returns a Rasterizer which paints into the given clip rectangle.
// Line caps are butt, joins are mitered with limit 10, and the width is 1.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill paints the interior of p, using the non-zero winding rule.  Open
// subpaths are closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, span SpanFunc) {
	r.resetEdges()

	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			open = true
			k++
		case path.CmdQuadTo:
			c1, c2 := quadControls(cur, p.Coords[k], p.Coords[k+1])
			r.flattenCubic(cur, c1, c2, p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			open = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			open = true
			k += 3
		case path.CmdClose:
			if open {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open {
		r.addEdge(cur, start)
	}

	r.scan(span)
}

// quadControls returns the control points of the cubic Bézier curve
// which traces the same curve as the quadratic one with control point c.
func quadControls(p0, c, p1 vec.Vec2) (vec.Vec2, vec.Vec2) {
	return p0.Add(c.Sub(p0).Mul(2.0 / 3)), p1.Add(c.Sub(p1).Mul(2.0 / 3))
}

// linear applies the CTM without the translation part.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenCubic replaces a cubic Bézier curve by line segments.  The
// number of segments follows from Wang's formula, using the second
// differences of the control polygon measured in device space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bbox = rect.Rect{}
}

// addEdge maps the segment from a to b into device space and records it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0, y0 := r.CTM.Apply(a.X, a.Y)
	x1, y1 := r.CTM.Apply(b.X, b.Y)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	e := edge{dir: 1}
	if dy < 0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.x, e.y0, e.y1 = x0, y0, y1
	e.dxdy = (x1 - x0) / (y1 - y0)

	if len(r.edges) == 0 {
		r.bbox = rect.Rect{LLx: min(x0, x1), LLy: y0, URx: max(x0, x1), URy: y1}
	} else {
		r.bbox.Add(x0, y0)
		r.bbox.Add(x1, y1)
	}
	r.edges = append(r.edges, e)
}

// scan converts the collected edges into coverage spans.
//
// For every pixel, two sums are kept: cover is the signed height of the
// edge pieces inside the pixel column, and area weights the same pieces
// by how much of the pixel lies to the right of them.  Summing cover from
// the left and adding area gives the signed area of the path inside each
// pixel.
func (r *Rasterizer) scan(span SpanFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		if cov, offs := trimZeros(r.cover); cov != nil {
			span(y, xMin+offs, cov)
		}
	}
}

// accumulate adds the part of e between the heights top and bot to the
// cover and area sums.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	lo := max(top, e.y0)
	hi := min(bot, e.y1)
	if hi <= lo {
		return
	}

	xa, xb := e.xAt(lo), e.xAt(hi)
	if xa > xb {
		xa, xb = xb, xa
	}
	left, right := int(math.Floor(xa)), int(math.Floor(xb))
	if left == right {
		r.deposit(left, e.dir*float32(hi-lo), (xa+xb)/2, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns.  Split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for px := left; px <= right && px < xMax; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x)
		yb := e.y0 + dydx*(float64(px+1)-e.x)
		if ya > yb {
			ya, yb = yb, ya
		}
		ya, yb = max(ya, lo), min(yb, hi)
		if yb <= ya {
			continue
		}
		r.deposit(px, e.dir*float32(yb-ya), e.xAt((ya+yb)/2), xMin, xMax)
	}
}

// deposit records an edge piece of signed height h inside pixel column
// px, crossing the column at mean position x.  Pieces left of the
// buffer count fully for its first pixel.
func (r *Rasterizer) deposit(px int, h float32, x float64, xMin, xMax int) {
	switch {
	case px < xMin:
		r.cover[0] += h
		r.area[0] += h
	case px < xMax:
		i := px - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(x-float64(px)))
	}
}

// integrateNonZero overwrites cover with the final coverage values.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is well below what can be seen on screen.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the HTML canvas default.
	defaultMiterLimit = 10.0
)

const (
	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects segments which reverse direction,
	// about 179.4 degrees.
	cuspCosineThreshold = -0.9999
)
