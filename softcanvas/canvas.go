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

// Package softcanvas implements an off-screen canvas in pure Go.
//
// A [Canvas] renders into an [image.RGBA] and hands out a [Context]
// which follows the semantics of the HTML canvas 2D rendering context
// closely enough to serve as a drop-in surface for plotcanvas outside
// the browser.  Paths are anti-aliased by a scanline rasterizer and text
// is drawn using the Go fonts.
package softcanvas

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/plotcanvas"
)

// Canvas is an in-memory drawing surface.
type Canvas struct {
	img *image.RGBA
	ctx *Context

	fonts *fontCache
	opts  options
}

var _ plotcanvas.Surface = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	background color.Color
	lineCap    graphics.LineCapStyle
	lineJoin   graphics.LineJoinStyle
	font       string
}

func defaultOptions() options {
	return options{
		lineCap:  graphics.LineCapButt,
		lineJoin: graphics.LineJoinMiter,
		font:     "10px sans-serif",
	}
}

// WithBackground fills the new canvas with c.
// By default the canvas is fully transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLineCap sets the cap style used for the ends of stroked lines.
// The default is [graphics.LineCapButt], as in a browser.
func WithLineCap(c graphics.LineCapStyle) Option {
	return func(o *options) {
		o.lineCap = c
	}
}

// WithLineJoin sets the join style used at the corners of stroked
// paths.  The default is [graphics.LineJoinMiter], as in a browser.
func WithLineJoin(j graphics.LineJoinStyle) Option {
	return func(o *options) {
		o.lineJoin = j
	}
}

// WithFont sets the initial font of the 2D context, in CSS syntax.
func WithFont(font string) Option {
	return func(o *options) {
		o.font = font
	}
}

// New allocates a canvas of the given size.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		fonts: newFontCache(),
		opts:  o,
	}
	if o.background != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)
	}
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// GetContext returns the canvas' 2D context for the context id "2d".
// Repeated calls return the same context.  Other context types are not
// supported and give nil, without an error.
func (c *Canvas) GetContext(contextID string) (any, error) {
	if contextID != "2d" {
		return nil, nil
	}
	if c.ctx == nil {
		c.ctx = newContext(c)
	}
	return c.ctx, nil
}

// Image returns the pixel buffer of the canvas.
// The image is shared with the canvas, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas contents as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
