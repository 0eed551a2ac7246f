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
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with an alpha channel.
// Alpha is nominally in the range [0, 1]; values outside are clamped
// when the colour is rendered.
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// Common colours.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
	Red         = Color{255, 0, 0, 1}
	Green       = Color{0, 255, 0, 1}
	Blue        = Color{0, 0, 255, 1}
	Transparent = Color{}
)

// ParseHex parses a colour in "#rgb" or "#rrggbb" notation.
func ParseHex(s string, alpha float64) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("plotcanvas: invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, Alpha: alpha}, nil
}

// Mix returns the colour with its alpha multiplied by a.
func (c Color) Mix(a float64) Color {
	c.Alpha *= a
	return c
}

// IsTransparent reports whether drawing with c would leave the surface
// unchanged.  Only an alpha of exactly zero counts.
func (c Color) IsTransparent() bool {
	return c.Alpha == 0
}

// CSS renders the colour as "rgba(r,g,b,a)".
func (c Color) CSS() string {
	a := c.Alpha
	if math.IsNaN(a) || a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return "rgba(" + strconv.Itoa(int(c.R)) + "," +
		strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," +
		strconv.FormatFloat(a, 'f', -1, 64) + ")"
}

func (c Color) String() string {
	return c.CSS()
}

// ShapeStyle describes how lines and shapes are painted.
type ShapeStyle struct {
	Color       Color
	StrokeWidth float64
	Filled      bool
}

// FontStyle selects the style keyword of a font.
type FontStyle int

// Supported font styles.
const (
	FontNormal FontStyle = iota
	FontOblique
	FontItalic
	FontBold
)

func (s FontStyle) String() string {
	switch s {
	case FontOblique:
		return "oblique"
	case FontItalic:
		return "italic"
	case FontBold:
		return "bold"
	default:
		return "normal"
	}
}

// Generic font families.
const (
	FamilySerif     = "serif"
	FamilySansSerif = "sans-serif"
	FamilyMonospace = "monospace"
)

// FontTransform is a rotation applied to text around its anchor point.
type FontTransform int

// Supported text rotations, clockwise on screen.
const (
	RotateNone FontTransform = iota
	Rotate90
	Rotate180
	Rotate270
)

// Degrees returns the rotation angle in degrees.
func (t FontTransform) Degrees() float64 {
	switch t {
	case Rotate90:
		return 90
	case Rotate180:
		return 180
	case Rotate270:
		return 270
	default:
		return 0
	}
}

// Angle returns the rotation angle in radians.
func (t FontTransform) Angle() float64 {
	return t.Degrees() / 180 * math.Pi
}

// HPos is the horizontal position of the anchor point within the text.
type HPos int

// Horizontal anchor positions.
const (
	HPosLeft HPos = iota
	HPosCenter
	HPosRight
)

// TextAlign returns the canvas textAlign value for the anchor.
func (h HPos) TextAlign() string {
	switch h {
	case HPosCenter:
		return "center"
	case HPosRight:
		return "end"
	default:
		return "start"
	}
}

// VPos is the vertical position of the anchor point within the text.
type VPos int

// Vertical anchor positions.
const (
	VPosBaseline VPos = iota
	VPosTop
	VPosCenter
	VPosBottom
)

// TextBaseline returns the canvas textBaseline value for the anchor.
func (v VPos) TextBaseline() string {
	switch v {
	case VPosTop:
		return "top"
	case VPosCenter:
		return "middle"
	case VPosBottom:
		return "bottom"
	default:
		return "alphabetic"
	}
}

// Anchor locates the text relative to the drawing position.
type Anchor struct {
	H HPos
	V VPos
}

// TextStyle describes how text is drawn.
type TextStyle struct {
	Family    string // e.g. "sans-serif"; empty means FamilySansSerif
	Size      float64
	Style     FontStyle
	Color     Color
	Transform FontTransform
	Anchor    Anchor
}

// Font returns the CSS font specification "<style> <size>px <family>".
func (s *TextStyle) Font() string {
	family := s.Family
	if family == "" {
		family = FamilySansSerif
	}
	return s.Style.String() + " " + strconv.FormatFloat(s.Size, 'f', -1, 64) + "px " + family
}
