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
	"errors"
	"syscall/js"

	"seehuhn.de/go/plotcanvas"
)

// ErrUnsupported is returned by [New] if the JavaScript host has no
// OffscreenCanvas constructor.
var ErrUnsupported = errors.New("jscanvas: OffscreenCanvas not supported")

// ScriptError is a JavaScript exception raised by a canvas method.
type ScriptError struct {
	// Value is the thrown JavaScript value.
	Value js.Value

	msg string
}

func newScriptError(v js.Value) *ScriptError {
	return &ScriptError{Value: v, msg: stringify(v)}
}

// Error returns the JSON serialisation of the exception, or "unknown" if
// the exception cannot be serialised.
func (e *ScriptError) Error() string {
	return e.msg
}

func stringify(v js.Value) (s string) {
	defer func() {
		if recover() != nil {
			s = "unknown"
		}
	}()
	res := js.Global().Get("JSON").Call("stringify", v)
	if res.Type() != js.TypeString {
		return "unknown"
	}
	return res.String()
}

// call invokes a method of v and converts a JavaScript exception into a
// *ScriptError.  Other panics are passed on.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = newScriptError(jsErr.Value)
		}
	}()
	return v.Call(method, args...), nil
}

// OffscreenCanvas is a JavaScript canvas object.  Besides actual
// OffscreenCanvas instances, any object with width and height
// properties and a getContext method can be wrapped, for example an
// HTMLCanvasElement.
type OffscreenCanvas struct {
	v js.Value
}

var _ plotcanvas.Surface = (*OffscreenCanvas)(nil)

// New creates a new OffscreenCanvas of the given size.
func New(width, height int) (*OffscreenCanvas, error) {
	ctor := js.Global().Get("OffscreenCanvas")
	if ctor.Type() != js.TypeFunction {
		return nil, ErrUnsupported
	}

	var v js.Value
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				jsErr, ok := r.(js.Error)
				if !ok {
					panic(r)
				}
				err = newScriptError(jsErr.Value)
			}
		}()
		v = ctor.New(width, height)
		return nil
	}()
	if err != nil {
		return nil, err
	}
	return &OffscreenCanvas{v: v}, nil
}

// Wrap returns a surface for an existing JavaScript canvas object.
// The canvas is borrowed; its lifetime is managed by the caller.
func Wrap(v js.Value) *OffscreenCanvas {
	return &OffscreenCanvas{v: v}
}

// Value returns the underlying JavaScript object.
func (c *OffscreenCanvas) Value() js.Value {
	return c.v
}

// Width returns the current width of the canvas in pixels.
func (c *OffscreenCanvas) Width() int {
	return c.v.Get("width").Int()
}

// Height returns the current height of the canvas in pixels.
func (c *OffscreenCanvas) Height() int {
	return c.v.Get("height").Int()
}

// GetContext calls the getContext method of the canvas.  If the canvas
// has no context of the requested kind, or if the returned object is not
// a 2D rendering context, the result is nil.
func (c *OffscreenCanvas) GetContext(contextID string) (any, error) {
	res, err := call(c.v, "getContext", contextID)
	if err != nil {
		return nil, err
	}
	if res.IsNull() || res.IsUndefined() {
		return nil, nil
	}
	if !is2D(res) {
		plotcanvas.Logger().Debug("getContext returned a non-2d context", "id", contextID)
		return nil, nil
	}
	return &Context{v: res}, nil
}

var contextClasses = []string{
	"OffscreenCanvasRenderingContext2D",
	"CanvasRenderingContext2D",
}

func is2D(v js.Value) bool {
	for _, name := range contextClasses {
		cls := js.Global().Get(name)
		if cls.Type() == js.TypeFunction && v.InstanceOf(cls) {
			return true
		}
	}
	return false
}
