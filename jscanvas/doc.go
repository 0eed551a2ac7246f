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

// Package jscanvas provides plotcanvas surfaces backed by the canvas
// objects of a JavaScript host, most importantly OffscreenCanvas.
//
// The package is only available when compiling for GOOS=js GOARCH=wasm.
//
// Example:
//
//	c, err := jscanvas.New(640, 480)
//	if err != nil {
//		return err
//	}
//	b, err := plotcanvas.New(c)
//	if err != nil {
//		return err
//	}
//	err = b.DrawText("hello", style, image.Pt(20, 20))
package jscanvas
