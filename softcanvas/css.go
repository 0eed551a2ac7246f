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
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.NRGBA{
	"transparent": {},
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"lime":        {0, 255, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
}

// parseColor parses a CSS colour value.  The second result is false if
// the value is not understood, in which case a canvas keeps its
// previous style.
func parseColor(css string) (color.NRGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(css))
	if c, ok := namedColors[s]; ok {
		return c, true
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return color.NRGBA{}, false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, true
	}

	var args string
	var hasAlpha bool
	if rest, ok := strings.CutPrefix(s, "rgba("); ok {
		args, hasAlpha = rest, true
	} else if rest, ok := strings.CutPrefix(s, "rgb("); ok {
		args = rest
	} else {
		return color.NRGBA{}, false
	}
	args, ok := strings.CutSuffix(args, ")")
	if !ok {
		return color.NRGBA{}, false
	}

	fields := strings.Split(args, ",")
	if hasAlpha && len(fields) != 4 || !hasAlpha && len(fields) != 3 {
		return color.NRGBA{}, false
	}
	var rgb [3]uint8
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil || math.IsNaN(v) {
			return color.NRGBA{}, false
		}
		rgb[i] = uint8(math.Round(clamp(v, 0, 255)))
	}
	alpha := 1.0
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || math.IsNaN(a) {
			return color.NRGBA{}, false
		}
		alpha = clamp(a, 0, 1)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math.Round(alpha * 255))}, true
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
