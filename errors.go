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

package plotcanvas

import (
	"encoding/json"
	"errors"
)

// ErrNoContext is returned by [New] if the surface cannot provide a
// usable 2D rendering context.
var ErrNoContext = errors.New("plotcanvas: no 2d context available")

// CanvasError is returned when an operation of the underlying rendering
// context fails.  Msg holds a textual description of the failure.
type CanvasError struct {
	Op  string // the context operation which failed, e.g. "rotate"
	Msg string

	err error
}

func (e *CanvasError) Error() string {
	return "canvas error: " + e.Op + ": " + e.Msg
}

func (e *CanvasError) Unwrap() error {
	return e.err
}

// wrapError converts a failure of the rendering context into a
// *CanvasError.
func wrapError(op string, err error) error {
	e := &CanvasError{Op: op, Msg: describe(err), err: err}
	Logger().Debug("canvas operation failed", "op", op, "msg", e.Msg)
	return e
}

// describe serialises err as well as possible.
func describe(err error) string {
	if err == nil {
		return "unknown"
	}
	if m, ok := err.(json.Marshaler); ok {
		if b, jErr := m.MarshalJSON(); jErr == nil && len(b) > 0 {
			return string(b)
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown"
}
