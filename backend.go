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

// Package plotcanvas implements a drawing backend for plotting libraries
// on top of an HTML-canvas style 2D rendering context.
//
// A [Backend] translates the drawing primitives used by a plotting engine
// (pixels, lines, text and simple shapes) into calls on a [Context2D].
// The context is obtained once, from a caller-owned [Surface], when the
// backend is created.  Every draw call is applied to the context
// immediately; there is no buffering.
//
// Sub-packages provide surfaces: jscanvas wraps a browser OffscreenCanvas
// (js/wasm only), softcanvas renders into an in-memory image, and
// canvastest records calls for use in tests.
package plotcanvas

//go:generate go run ./testcases/export -out debug

import (
	"fmt"
	"image"
	"math"
)

// Surface is an off-screen drawing surface which can hand out a 2D
// rendering context.  The surface is owned by the caller; a [Backend]
// only borrows it.
type Surface interface {
	// Width returns the width of the surface in pixels.
	Width() int

	// Height returns the height of the surface in pixels.
	Height() int

	// GetContext returns the rendering context for the given context id,
	// or nil if the surface does not support it.
	GetContext(contextID string) (any, error)
}

// Context2D is the subset of the canvas 2D rendering context used by
// a [Backend].
//
// Style values use CSS syntax.  Implementations ignore style strings
// they cannot parse, like a browser does.
type Context2D interface {
	SetFillStyle(css string)
	SetStrokeStyle(css string)
	SetLineWidth(w float64)
	SetFont(font string)
	SetTextAlign(align string)
	SetTextBaseline(baseline string)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64) error
	ClosePath()
	Stroke()
	Fill()

	Save()
	Restore()
	Translate(x, y float64) error
	Rotate(angle float64) error

	FillText(text string, x, y float64) error
	MeasureText(text string) (float64, error)
}

// DrawingBackend is the set of primitives a plotting engine draws with.
// Coordinates are in pixels, with the origin in the top-left corner.
type DrawingBackend interface {
	Size() (width, height int)
	EnsurePrepared() error
	Present() error
	DrawPixel(p image.Point, c Color) error
	DrawLine(from, to image.Point, s ShapeStyle) error
	DrawText(text string, s *TextStyle, pos image.Point) error
	DrawRect(ul, br image.Point, s ShapeStyle) error
	DrawPath(pts []image.Point, s ShapeStyle) error
	FillPolygon(pts []image.Point, c Color) error
	DrawCircle(center image.Point, radius int, s ShapeStyle) error
	EstimateTextSize(text string, s *TextStyle) (width, height int, err error)
}

// Backend draws onto the 2D context of a borrowed [Surface].
//
// A Backend is not safe for concurrent use.
type Backend struct {
	surface Surface
	ctx     Context2D
}

var _ DrawingBackend = (*Backend)(nil)

// New returns a backend which draws onto the "2d" context of s.
// If the context cannot be obtained, the returned error wraps
// [ErrNoContext] and no backend is returned.
func New(s Surface) (*Backend, error) {
	obj, err := s.GetContext("2d")
	if err != nil {
		Logger().Debug("getContext failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}
	if obj == nil {
		Logger().Debug("surface has no 2d context")
		return nil, ErrNoContext
	}
	ctx, ok := obj.(Context2D)
	if !ok {
		Logger().Debug("unexpected context type", "type", fmt.Sprintf("%T", obj))
		return nil, fmt.Errorf("%w: unexpected context type %T", ErrNoContext, obj)
	}
	return &Backend{surface: s, ctx: ctx}, nil
}

// Size returns the current size of the surface in pixels.
func (b *Backend) Size() (width, height int) {
	return b.surface.Width(), b.surface.Height()
}

// EnsurePrepared does nothing; drawing needs no preparation.
func (b *Backend) EnsurePrepared() error {
	return nil
}

// Present does nothing; all draw calls take effect immediately.
func (b *Backend) Present() error {
	return nil
}

// DrawPixel paints the 1x1 pixel at p.
func (b *Backend) DrawPixel(p image.Point, c Color) error {
	if c.IsTransparent() {
		return nil
	}
	b.ctx.SetFillStyle(c.CSS())
	b.ctx.FillRect(float64(p.X), float64(p.Y), 1, 1)
	return nil
}

func (b *Backend) setLineStyle(s ShapeStyle) {
	b.ctx.SetStrokeStyle(s.Color.CSS())
	b.ctx.SetLineWidth(s.StrokeWidth)
}

// DrawLine strokes a straight line between the two points.
func (b *Backend) DrawLine(from, to image.Point, s ShapeStyle) error {
	if s.Color.IsTransparent() {
		return nil
	}
	b.setLineStyle(s)
	b.ctx.BeginPath()
	b.ctx.MoveTo(float64(from.X), float64(from.Y))
	b.ctx.LineTo(float64(to.X), float64(to.Y))
	b.ctx.Stroke()
	return nil
}

// DrawText draws text anchored at pos.  Rotated text is rotated around
// pos.
func (b *Backend) DrawText(text string, s *TextStyle, pos image.Point) error {
	if s.Color.IsTransparent() {
		return nil
	}

	x, y := float64(pos.X), float64(pos.Y)
	angle := s.Transform.Angle()
	if angle != 0 {
		b.ctx.Save()
		defer b.ctx.Restore()

		if err := b.ctx.Translate(x, y); err != nil {
			return wrapError("translate", err)
		}
		if err := b.ctx.Rotate(angle); err != nil {
			return wrapError("rotate", err)
		}
		x, y = 0, 0
	}

	b.ctx.SetTextAlign(s.Anchor.H.TextAlign())
	b.ctx.SetTextBaseline(s.Anchor.V.TextBaseline())
	b.ctx.SetFillStyle(s.Color.CSS())
	b.ctx.SetFont(s.Font())
	if err := b.ctx.FillText(text, x, y); err != nil {
		return wrapError("fillText", err)
	}
	return nil
}

// DrawRect draws the rectangle with corners ul and br, filled or outlined
// depending on s.Filled.
func (b *Backend) DrawRect(ul, br image.Point, s ShapeStyle) error {
	if s.Color.IsTransparent() {
		return nil
	}
	x, y := float64(ul.X), float64(ul.Y)
	w, h := float64(br.X-ul.X), float64(br.Y-ul.Y)
	if s.Filled {
		b.ctx.SetFillStyle(s.Color.CSS())
		b.ctx.FillRect(x, y, w, h)
	} else {
		b.setLineStyle(s)
		b.ctx.StrokeRect(x, y, w, h)
	}
	return nil
}

// DrawPath strokes the polyline through pts.
func (b *Backend) DrawPath(pts []image.Point, s ShapeStyle) error {
	if s.Color.IsTransparent() || len(pts) < 2 {
		return nil
	}
	b.setLineStyle(s)
	b.tracePath(pts)
	b.ctx.Stroke()
	return nil
}

// FillPolygon fills the polygon with vertices pts.
func (b *Backend) FillPolygon(pts []image.Point, c Color) error {
	if c.IsTransparent() || len(pts) < 3 {
		return nil
	}
	b.ctx.SetFillStyle(c.CSS())
	b.tracePath(pts)
	b.ctx.ClosePath()
	b.ctx.Fill()
	return nil
}

func (b *Backend) tracePath(pts []image.Point) {
	b.ctx.BeginPath()
	b.ctx.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		b.ctx.LineTo(float64(p.X), float64(p.Y))
	}
}

// DrawCircle draws a circle around center.
func (b *Backend) DrawCircle(center image.Point, radius int, s ShapeStyle) error {
	if s.Color.IsTransparent() {
		return nil
	}
	if s.Filled {
		b.ctx.SetFillStyle(s.Color.CSS())
	} else {
		b.setLineStyle(s)
	}
	b.ctx.BeginPath()
	err := b.ctx.Arc(float64(center.X), float64(center.Y), float64(radius), 0, 2*math.Pi)
	if err != nil {
		return wrapError("arc", err)
	}
	if s.Filled {
		b.ctx.Fill()
	} else {
		b.ctx.Stroke()
	}
	return nil
}

// EstimateTextSize returns the size of the box text would occupy when
// drawn without rotation.  The height is the font size.
func (b *Backend) EstimateTextSize(text string, s *TextStyle) (width, height int, err error) {
	b.ctx.SetFont(s.Font())
	w, err := b.ctx.MeasureText(text)
	if err != nil {
		return 0, 0, wrapError("measureText", err)
	}
	return int(math.Ceil(w)), int(math.Ceil(s.Size)), nil
}
