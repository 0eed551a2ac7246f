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

// Package canvastest provides a recording 2D context and a fake surface
// for testing code which draws through plotcanvas.
package canvastest

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/plotcanvas"
)

// Call is one recorded context operation.
type Call struct {
	Op   string // canvas method or property name, e.g. "fillRect"
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Op + "(" + strings.Join(args, ",") + ")"
}

// Recorder is a [plotcanvas.Context2D] which records every call.
// Property setters are recorded under the canvas property name
// ("fillStyle", "lineWidth", ...).
type Recorder struct {
	Calls []Call

	fail map[string]error
}

var _ plotcanvas.Context2D = (*Recorder)(nil)

// FailOn makes all following calls of op return err.
// Only operations with an error result can fail.
func (r *Recorder) FailOn(op string, err error) {
	if r.fail == nil {
		r.fail = make(map[string]error)
	}
	r.fail[op] = err
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Ops returns the names of all recorded operations, in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how often op was recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the first recorded call of op.
func (r *Recorder) Find(op string) (Call, bool) {
	for _, c := range r.Calls {
		if c.Op == op {
			return c, true
		}
	}
	return Call{}, false
}

func (r *Recorder) record(op string, args ...any) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	return r.fail[op]
}

func (r *Recorder) SetFillStyle(css string)         { r.record("fillStyle", css) }
func (r *Recorder) SetStrokeStyle(css string)       { r.record("strokeStyle", css) }
func (r *Recorder) SetLineWidth(w float64)          { r.record("lineWidth", w) }
func (r *Recorder) SetFont(font string)             { r.record("font", font) }
func (r *Recorder) SetTextAlign(align string)       { r.record("textAlign", align) }
func (r *Recorder) SetTextBaseline(baseline string) { r.record("textBaseline", baseline) }

func (r *Recorder) FillRect(x, y, w, h float64)   { r.record("fillRect", x, y, w, h) }
func (r *Recorder) StrokeRect(x, y, w, h float64) { r.record("strokeRect", x, y, w, h) }

func (r *Recorder) BeginPath()          { r.record("beginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", x, y) }
func (r *Recorder) ClosePath()          { r.record("closePath") }
func (r *Recorder) Stroke()             { r.record("stroke") }
func (r *Recorder) Fill()               { r.record("fill") }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) error {
	return r.record("arc", x, y, radius, startAngle, endAngle)
}

func (r *Recorder) Save()    { r.record("save") }
func (r *Recorder) Restore() { r.record("restore") }

func (r *Recorder) Translate(x, y float64) error {
	return r.record("translate", x, y)
}

func (r *Recorder) Rotate(angle float64) error {
	return r.record("rotate", angle)
}

func (r *Recorder) FillText(text string, x, y float64) error {
	return r.record("fillText", text, x, y)
}

// MeasureText reports a width of 0.5 times the font size in the last
// "font" call for every byte of text, assuming a "<style> <n>px ..."
// font string.  Without a font, 10px is assumed.
func (r *Recorder) MeasureText(text string) (float64, error) {
	if err := r.record("measureText", text); err != nil {
		return 0, err
	}
	size := 10.0
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op != "font" {
			continue
		}
		for _, field := range strings.Fields(r.Calls[i].Args[0].(string)) {
			num, ok := strings.CutSuffix(field, "px")
			if !ok {
				continue
			}
			if px, err := strconv.ParseFloat(num, 64); err == nil {
				size = px
				break
			}
		}
		break
	}
	return 0.5 * size * float64(len(text)), nil
}
