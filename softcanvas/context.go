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
	"image/color"
	"math"

	"golang.org/x/image/font"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/plotcanvas"
	"seehuhn.de/go/plotcanvas/internal/raster"
)

// ErrNegativeRadius is returned by [Context.Arc] for a negative radius.
var ErrNegativeRadius = errors.New("softcanvas: negative arc radius")

// state is the part of the context saved by Save and restored by Restore.
type state struct {
	ctm        matrix.Matrix
	fill       color.NRGBA
	stroke     color.NRGBA
	lineWidth  float64
	lineCap    graphics.LineCapStyle
	lineJoin   graphics.LineJoinStyle
	miterLimit float64
	font       string
	fontSpec   fontSpec
	align      string
	baseline   string
}

// Context is the 2D rendering context of a [Canvas].
//
// A Context is not safe for concurrent use.
type Context struct {
	canvas *Canvas

	state
	stack []state

	// The current path, in device coordinates.
	path       *path.Data
	hasCurrent bool
	current    vec.Vec2
	start      vec.Vec2

	// reused across fill and stroke operations
	r    *raster.Rasterizer
	user *path.Data
	mask []uint8
}

var _ plotcanvas.Context2D = (*Context)(nil)

func newContext(c *Canvas) *Context {
	clip := rect.Rect{URx: float64(c.Width()), URy: float64(c.Height())}
	ctx := &Context{
		canvas: c,
		state: state{
			ctm:        matrix.Identity,
			fill:       color.NRGBA{A: 255},
			stroke:     color.NRGBA{A: 255},
			lineWidth:  1,
			lineCap:    c.opts.lineCap,
			lineJoin:   c.opts.lineJoin,
			miterLimit: 10,
			font:       "10px sans-serif",
			fontSpec:   fontSpec{size: 10},
			align:      "start",
			baseline:   "alphabetic",
		},
		path: &path.Data{},
		r:    raster.New(clip),
		user: &path.Data{},
	}
	ctx.SetFont(c.opts.font)
	return ctx
}

// CTM returns the current transformation matrix, mapping user space to
// device pixels.
func (c *Context) CTM() matrix.Matrix {
	return c.ctm
}

// SetFillStyle sets the colour used by Fill, FillRect and FillText.
// Unparsable values are ignored.
func (c *Context) SetFillStyle(css string) {
	if col, ok := parseColor(css); ok {
		c.fill = col
	}
}

// SetStrokeStyle sets the colour used by Stroke and StrokeRect.
// Unparsable values are ignored.
func (c *Context) SetStrokeStyle(css string) {
	if col, ok := parseColor(css); ok {
		c.stroke = col
	}
}

// SetLineWidth sets the stroke width in user space units.
// Values which are not finite and positive are ignored.
func (c *Context) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.lineWidth = w
	}
}

// SetLineCap sets the style used for the ends of stroked lines.
func (c *Context) SetLineCap(lc graphics.LineCapStyle) {
	c.lineCap = lc
}

// SetLineJoin sets the style used where two segments of a stroked path
// meet.
func (c *Context) SetLineJoin(lj graphics.LineJoinStyle) {
	c.lineJoin = lj
}

// SetMiterLimit sets the limit for the length of miter joins, relative
// to the line width.  Values which are not finite and positive are
// ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if limit > 0 && !math.IsInf(limit, 1) {
		c.miterLimit = limit
	}
}

// SetFont sets the font from a CSS font shorthand.
// Unparsable values are ignored.
func (c *Context) SetFont(css string) {
	if spec, ok := parseFont(css); ok {
		c.font = css
		c.fontSpec = spec
	}
}

// Font returns the current font specification.
func (c *Context) Font() string {
	return c.font
}

// SetTextAlign sets the horizontal text alignment.
// Unknown values are ignored.
func (c *Context) SetTextAlign(align string) {
	switch align {
	case "start", "end", "left", "right", "center":
		c.align = align
	}
}

// SetTextBaseline sets the vertical text alignment.
// Unknown values are ignored.
func (c *Context) SetTextBaseline(baseline string) {
	switch baseline {
	case "top", "hanging", "middle", "alphabetic", "ideographic", "bottom":
		c.baseline = baseline
	}
}

// Save pushes the current drawing state onto the state stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the drawing state from the stack.
// Restore on an empty stack does nothing.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Translate moves the origin of user space by (x, y).
// Non-finite arguments are ignored.
func (c *Context) Translate(x, y float64) error {
	if !isFinite(x) || !isFinite(y) {
		return nil
	}
	c.ctm = matrix.Translate(x, y).Mul(c.ctm)
	return nil
}

// Rotate rotates user space clockwise by angle radians.
// A non-finite angle is ignored.
func (c *Context) Rotate(angle float64) error {
	if !isFinite(angle) {
		return nil
	}
	c.ctm = matrix.Rotate(angle).Mul(c.ctm)
	return nil
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	c.hasCurrent = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	p := c.toDevice(vec.Vec2{X: x, Y: y})
	c.path.MoveTo(p)
	c.current, c.start = p, p
	c.hasCurrent = true
}

// LineTo adds a straight segment to (x, y).  Without a current point
// this behaves like MoveTo.
func (c *Context) LineTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	p := c.toDevice(vec.Vec2{X: x, Y: y})
	c.path.LineTo(p)
	c.current = p
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if !c.hasCurrent {
		return
	}
	c.path.Close()
	c.current = c.start
}

// Arc adds a circular arc around (x, y), clockwise on screen from
// startAngle to endAngle.  If there is a current point, it is joined to
// the start of the arc by a straight line.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64) error {
	if radius < 0 {
		return ErrNegativeRadius
	}
	if !isFinite(x) || !isFinite(y) || !isFinite(radius) ||
		!isFinite(startAngle) || !isFinite(endAngle) {
		return nil
	}

	sweep := endAngle - startAngle
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}

	center := vec.Vec2{X: x, Y: y}
	at := func(phi float64) (vec.Vec2, vec.Vec2) {
		sin, cos := math.Sincos(phi)
		return center.Add(vec.Vec2{X: cos, Y: sin}.Mul(radius)), vec.Vec2{X: -sin, Y: cos}
	}

	p0, _ := at(startAngle)
	p := c.toDevice(p0)
	if c.hasCurrent {
		c.path.LineTo(p)
	} else {
		c.path.MoveTo(p)
		c.start = p
		c.hasCurrent = true
	}
	c.current = p

	// Each piece of at most a quarter circle becomes one cubic Bézier
	// curve.  The control points lie on the tangents, at distance
	// 4/3·tan(δ/4)·radius from the end points.
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	delta := sweep / float64(max(n, 1))
	k := 4.0 / 3 * math.Tan(delta/4) * radius
	for i := range n {
		a, ta := at(startAngle + float64(i)*delta)
		b, tb := at(startAngle + float64(i+1)*delta)
		end := c.toDevice(b)
		c.path.CubeTo(c.toDevice(a.Add(ta.Mul(k))), c.toDevice(b.Sub(tb.Mul(k))), end)
		c.current = end
	}
	return nil
}

// Fill fills the current path with the fill colour, using the non-zero
// winding rule.  Open subpaths are closed implicitly.
func (c *Context) Fill() {
	if c.fill.A == 0 {
		return
	}
	c.r.CTM = matrix.Identity
	c.r.Fill(c.path, c.spans(c.fill))
}

// Stroke outlines the current path with the stroke colour and width.
func (c *Context) Stroke() {
	if c.stroke.A == 0 || !c.invertible() {
		return
	}

	// The path is kept in device space, but the stroke geometry is
	// defined in the current user space.
	inv := c.ctm.Inv()
	c.user.Cmds = append(c.user.Cmds[:0], c.path.Cmds...)
	c.user.Coords = c.user.Coords[:0]
	for _, q := range c.path.Coords {
		x, y := inv.Apply(q.X, q.Y)
		c.user.Coords = append(c.user.Coords, vec.Vec2{X: x, Y: y})
	}
	c.strokeUser(c.user)
}

// FillRect fills the rectangle with top-left corner (x, y).
// The current path is not affected.
func (c *Context) FillRect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return
	}
	if w == 0 || h == 0 || c.fill.A == 0 {
		return
	}
	c.rectPath(x, y, w, h)
	c.r.CTM = c.ctm
	c.r.Fill(c.user, c.spans(c.fill))
}

// StrokeRect outlines the rectangle with top-left corner (x, y).
// The current path is not affected.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return
	}
	if c.stroke.A == 0 || !c.invertible() {
		return
	}
	c.rectPath(x, y, w, h)
	c.strokeUser(c.user)
}

// rectPath replaces c.user by a closed rectangle in user space.
func (c *Context) rectPath(x, y, w, h float64) {
	c.user.Cmds = c.user.Cmds[:0]
	c.user.Coords = c.user.Coords[:0]
	c.user.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

func (c *Context) strokeUser(p *path.Data) {
	c.r.CTM = c.ctm
	c.r.Width = c.lineWidth
	c.r.Cap = c.lineCap
	c.r.Join = c.lineJoin
	c.r.MiterLimit = c.miterLimit
	c.r.Stroke(p, c.spans(c.stroke))
}

// toDevice maps a point from user space to device space.
func (c *Context) toDevice(p vec.Vec2) vec.Vec2 {
	x, y := c.ctm.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// invertible reports whether the CTM can be inverted.
func (c *Context) invertible() bool {
	m := c.ctm
	det := m[0]*m[3] - m[1]*m[2]
	return det != 0 && isFinite(det)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// face returns the font face for the current font.
func (c *Context) face() font.Face {
	return c.canvas.fonts.face(c.fontSpec)
}
