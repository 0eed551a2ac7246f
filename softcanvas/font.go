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
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/plotcanvas"
)

// fontSpec is the part of a CSS font shorthand which selects a face.
type fontSpec struct {
	bold   bool
	italic bool
	mono   bool
	size   float64 // in pixels
}

// parseFont parses a CSS font shorthand such as "bold 12px sans-serif".
// Only style, weight, size and family are interpreted.
func parseFont(css string) (fontSpec, bool) {
	var spec fontSpec
	fields := strings.Fields(css)
	for i, field := range fields {
		f := strings.ToLower(field)
		switch f {
		case "normal", "small-caps", "lighter", "100", "200", "300", "400", "500":
			continue
		case "italic", "oblique":
			spec.italic = true
			continue
		case "bold", "bolder", "600", "700", "800", "900":
			spec.bold = true
			continue
		}

		size, ok := parseFontSize(f)
		if !ok || size <= 0 {
			return fontSpec{}, false
		}
		spec.size = size

		family := strings.ToLower(strings.Join(fields[i+1:], " "))
		if family == "" {
			return fontSpec{}, false
		}
		first, _, _ := strings.Cut(family, ",")
		first = strings.Trim(strings.TrimSpace(first), `"'`)
		spec.mono = first == "monospace" || strings.Contains(first, "mono") ||
			strings.Contains(first, "courier")
		return spec, true
	}
	return fontSpec{}, false
}

// parseFontSize understands "12px", "9pt" and "12px/1.5".
func parseFontSize(s string) (float64, bool) {
	s, _, _ = strings.Cut(s, "/")
	scale := 1.0
	if v, ok := strings.CutSuffix(s, "px"); ok {
		s = v
	} else if v, ok := strings.CutSuffix(s, "pt"); ok {
		s = v
		scale = 4.0 / 3.0
	} else {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * scale, true
}

func (spec fontSpec) data() []byte {
	switch {
	case spec.mono && spec.bold && spec.italic:
		return gomonobolditalic.TTF
	case spec.mono && spec.bold:
		return gomonobold.TTF
	case spec.mono && spec.italic:
		return gomonoitalic.TTF
	case spec.mono:
		return gomono.TTF
	case spec.bold && spec.italic:
		return gobolditalic.TTF
	case spec.bold:
		return gobold.TTF
	case spec.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// fontCache keeps parsed fonts and sized faces.
type fontCache struct {
	fonts map[fontSpec]*opentype.Font
	faces map[fontSpec]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{
		fonts: make(map[fontSpec]*opentype.Font),
		faces: make(map[fontSpec]font.Face),
	}
}

// face returns the face for spec, or nil if the font data cannot be used.
func (fc *fontCache) face(spec fontSpec) font.Face {
	if f, ok := fc.faces[spec]; ok {
		return f
	}

	key := spec
	key.size = 0
	f, ok := fc.fonts[key]
	if !ok {
		var err error
		f, err = opentype.Parse(spec.data())
		if err != nil {
			plotcanvas.Logger().Warn("cannot parse font", "err", err)
			return nil
		}
		fc.fonts[key] = f
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		plotcanvas.Logger().Warn("cannot create font face", "size", spec.size, "err", err)
		return nil
	}
	fc.faces[spec] = face
	return face
}
