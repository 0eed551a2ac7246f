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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a straight piece of a flattened path, in path coordinates.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by 90 degrees
}

func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Neg(), N: s.N.Neg()}
}

// run is a subpath of the flattened path, given as a range of segments.
type run struct {
	start, end int
	closed     bool
}

// Stroke paints the outline of p, using Width, Cap, Join and MiterLimit.
func (r *Rasterizer) Stroke(p *path.Data, span SpanFunc) {
	r.flatten(p)
	if len(r.runs) == 0 && len(r.dots) == 0 {
		return
	}

	d := r.Width / 2
	r.outline = r.outline[:0]
	r.polys = r.polys[:0]

	// Subpaths without length have no direction.  Only round caps give
	// them a shape.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.polys = append(r.polys, len(r.outline))
			r.arc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		}
	}

	for _, run := range r.runs {
		segs := r.segs[run.start:run.end]
		r.back = r.back[:0]
		for i := len(segs) - 1; i >= 0; i-- {
			r.back = append(r.back, segs[i].reversed())
		}

		if run.closed {
			// The two sides are separate rings of opposite orientation,
			// so that the non-zero rule leaves the inside empty.
			r.polys = append(r.polys, len(r.outline))
			r.ring(segs, d)
			r.polys = append(r.polys, len(r.outline))
			r.ring(r.back, d)
		} else {
			first, last := &segs[0], &segs[len(segs)-1]
			r.polys = append(r.polys, len(r.outline))
			r.chain(segs, d)
			r.cap(last.B, last.T, d)
			r.chain(r.back, d)
			r.cap(first.A, first.T.Neg(), d)
		}
	}

	r.resetEdges()
	for i, start := range r.polys {
		end := len(r.outline)
		if i+1 < len(r.polys) {
			end = r.polys[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(span)
}

// flatten splits p into straight segments.  The subpaths are recorded in
// r.runs, and subpaths without length in r.dots.
func (r *Rasterizer) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false  // a subpath has been started
	drawn := false // the subpath has a drawing operator

	k := 0
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && !open {
			// After ClosePath, drawing continues from the start point.
			cur = start
			first = len(r.segs)
			open = true
		}

		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.endRun(first, start, drawn, false)
			}
			cur = p.Coords[k]
			start = cur
			first = len(r.segs)
			open, drawn = true, false
			k++
		case path.CmdLineTo:
			r.addSegment(cur, p.Coords[k])
			cur = p.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			c1, c2 := quadControls(cur, p.Coords[k], p.Coords[k+1])
			r.flattenCubic(cur, c1, c2, p.Coords[k+1], r.addSegment)
			cur = p.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
			cur = p.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			if open {
				r.addSegment(cur, start)
				r.endRun(first, start, true, true)
			}
			cur = start
			open, drawn = false, false
		}
	}
	if open {
		r.endRun(first, start, drawn, false)
	}
}

func (r *Rasterizer) endRun(first int, start vec.Vec2, drawn, closed bool) {
	switch {
	case len(r.segs) > first:
		r.runs = append(r.runs, run{start: first, end: len(r.segs), closed: closed})
	case drawn:
		r.dots = append(r.dots, start)
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: t.Rot90()})
}

// chain appends the +N side of an open sequence of segments.
func (r *Rasterizer) chain(segs []segment, d float64) {
	r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
	for i := 0; i+1 < len(segs); i++ {
		r.corner(&segs[i], &segs[i+1], d)
	}
	last := &segs[len(segs)-1]
	r.outline = append(r.outline, last.B.Add(last.N.Mul(d)))
}

// ring appends the +N side of a closed sequence of segments.
func (r *Rasterizer) ring(segs []segment, d float64) {
	for i := range segs {
		r.corner(&segs[i], &segs[(i+1)%len(segs)], d)
	}
}

// corner appends the +N side of the stroke around the point where s
// meets next.
func (r *Rasterizer) corner(s, next *segment, d float64) {
	end := s.B.Add(s.N.Mul(d))
	start := next.A.Add(next.N.Mul(d))

	sin := s.T.X*next.T.Y - s.T.Y*next.T.X
	cos := s.T.Dot(next.T)
	switch {
	case cos < cuspCosineThreshold:
		r.outline = append(r.outline, end)
		r.join(s.B, s.T, next.T, d)
		r.outline = append(r.outline, start)
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, end, start)
	case sin > 0:
		// The path turns towards +N, so this is the inside of the corner.
		if p, ok := innerPoint(s.B, s.N, next.N, cos, d); ok {
			r.outline = append(r.outline, p)
		} else {
			r.outline = append(r.outline, end, start)
		}
	default:
		r.outline = append(r.outline, end)
		r.join(s.B, s.T, next.T, d)
		r.outline = append(r.outline, start)
	}
}

// innerPoint returns the point where the offset lines on the inside of a
// corner at p intersect.
func innerPoint(p, n1, n2 vec.Vec2, cos, d float64) (vec.Vec2, bool) {
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2)
	dir := n1.Add(n2)
	l := dir.Length()
	if half < 1e-9 || l < 1e-9 {
		return vec.Vec2{}, false
	}
	return p.Add(dir.Mul(d / (half * l))), true
}

// join appends the outside of a corner at p, where the tangent turns
// from t1 to t2.
func (r *Rasterizer) join(p, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.arc(p, d, t1.Rot90(), -angle, false)

	case graphics.LineJoinMiter:
		// Relative to the line width, the miter has length 1/cos(θ/2)
		// where θ is the angle between t1 and t2.
		const eps = 1e-10
		half := math.Sqrt((1 + cos) / 2)
		if half == 0 || 1/half > r.MiterLimit+eps {
			return
		}
		bisector := t1.Rot90().Add(t2.Rot90()).Normalize()
		if bisector == (vec.Vec2{}) {
			return
		}
		r.outline = append(r.outline, p.Add(bisector.Mul(d/half)))
	}
}

// cap appends the end of a stroke at p.  The vector t points away from
// the stroke.
func (r *Rasterizer) cap(p, t vec.Vec2, d float64) {
	n := t.Rot90()
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		r.arc(p, d, n, -math.Pi, true)
	}
}

// arc appends points on the circle of the given radius around center.
// The arc starts in direction dir and sweeps by the given angle, with
// positive angles turning from the x-axis towards the y-axis.
func (r *Rasterizer) arc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, withStart bool) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning the angle θ deviates from the circle by
	// radius·(1-cos(θ/2)).
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		} else {
			n = max(int(math.Ceil(math.Abs(sweep)/(math.Pi/4))), 1)
		}
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}
