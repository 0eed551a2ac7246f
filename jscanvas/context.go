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

//go:build js && wasm

package jscanvas

import (
	"syscall/js"

	"seehuhn.de/go/plotcanvas"
)

// Context is a JavaScript 2D rendering context.
type Context struct {
	v js.Value
}

var _ plotcanvas.Context2D = (*Context)(nil)

// Value returns the underlying JavaScript object.
func (c *Context) Value() js.Value {
	return c.v
}

// set assigns a property of the context.  The assignment goes through
// Reflect.set, so that an exception thrown by a setter can be caught.
// Failures are logged, since the Context2D setters report no errors.
func (c *Context) set(prop string, value any) {
	ok, err := call(js.Global().Get("Reflect"), "set", c.v, prop, value)
	if err != nil {
		plotcanvas.Logger().Debug("canvas property assignment failed", "prop", prop, "err", err)
	} else if !ok.Truthy() {
		plotcanvas.Logger().Debug("canvas property is read-only", "prop", prop)
	}
}

// invoke calls a context method without a result.  A JavaScript
// exception is logged and otherwise ignored.
func (c *Context) invoke(method string, args ...any) {
	if _, err := call(c.v, method, args...); err != nil {
		plotcanvas.Logger().Debug("canvas method failed", "method", method, "err", err)
	}
}

// SetFillStyle sets the colour used by fill operations.
func (c *Context) SetFillStyle(css string) {
	c.set("fillStyle", css)
}

// SetStrokeStyle sets the colour used by stroke operations.
func (c *Context) SetStrokeStyle(css string) {
	c.set("strokeStyle", css)
}

func (c *Context) SetLineWidth(w float64) {
	c.set("lineWidth", w)
}

func (c *Context) SetFont(css string) {
	c.set("font", css)
}

func (c *Context) SetTextAlign(align string) {
	c.set("textAlign", align)
}

func (c *Context) SetTextBaseline(baseline string) {
	c.set("textBaseline", baseline)
}

func (c *Context) FillRect(x, y, w, h float64) {
	c.invoke("fillRect", x, y, w, h)
}

func (c *Context) StrokeRect(x, y, w, h float64) {
	c.invoke("strokeRect", x, y, w, h)
}

// BeginPath starts a new, empty path.
func (c *Context) BeginPath() {
	c.invoke("beginPath")
}

func (c *Context) MoveTo(x, y float64) {
	c.invoke("moveTo", x, y)
}

func (c *Context) LineTo(x, y float64) {
	c.invoke("lineTo", x, y)
}

func (c *Context) ClosePath() {
	c.invoke("closePath")
}

func (c *Context) Stroke() {
	c.invoke("stroke")
}

func (c *Context) Fill() {
	c.invoke("fill")
}

// Save pushes the drawing state onto the state stack.
func (c *Context) Save() {
	c.invoke("save")
}

// Restore pops the drawing state.  Without a matching Save this does
// nothing.
func (c *Context) Restore() {
	c.invoke("restore")
}

// Arc adds a circular arc to the current path.  A negative radius makes
// the browser throw an IndexSizeError, which is returned as a
// *ScriptError.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64) error {
	_, err := call(c.v, "arc", x, y, radius, startAngle, endAngle)
	return err
}

// Translate moves the origin of user space.
func (c *Context) Translate(x, y float64) error {
	_, err := call(c.v, "translate", x, y)
	return err
}

// Rotate rotates user space clockwise by angle radians.
func (c *Context) Rotate(angle float64) error {
	_, err := call(c.v, "rotate", angle)
	return err
}

// FillText draws text using the current fill style and font.
func (c *Context) FillText(text string, x, y float64) error {
	_, err := call(c.v, "fillText", text, x, y)
	return err
}

// MeasureText returns the advance width of text in the current font.
func (c *Context) MeasureText(text string) (float64, error) {
	m, err := call(c.v, "measureText", text)
	if err != nil {
		return 0, err
	}
	return m.Get("width").Float(), nil
}
