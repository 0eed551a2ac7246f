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

package canvastest

import "seehuhn.de/go/plotcanvas"

// Surface is a fake [plotcanvas.Surface] of fixed size.
// By default GetContext("2d") returns the surface's Recorder.
type Surface struct {
	W, H int

	// Recorder receives all calls made through the "2d" context.
	Recorder *Recorder

	ctx     any
	ctxSet  bool
	ctxErr  error
	Queried []string // context ids passed to GetContext
}

var _ plotcanvas.Surface = (*Surface)(nil)

// NewSurface returns a surface of the given size whose "2d" context is a
// fresh Recorder.
func NewSurface(width, height int) *Surface {
	return &Surface{W: width, H: height, Recorder: &Recorder{}}
}

// WithContext makes GetContext("2d") return ctx instead of the Recorder.
// Use nil to simulate a surface without 2d support.
func (s *Surface) WithContext(ctx any) *Surface {
	s.ctx = ctx
	s.ctxSet = true
	return s
}

// WithError makes GetContext fail with err.
func (s *Surface) WithError(err error) *Surface {
	s.ctxErr = err
	return s
}

func (s *Surface) Width() int  { return s.W }
func (s *Surface) Height() int { return s.H }

func (s *Surface) GetContext(contextID string) (any, error) {
	s.Queried = append(s.Queried, contextID)
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	if contextID != "2d" {
		return nil, nil
	}
	if s.ctxSet {
		return s.ctx, nil
	}
	return s.Recorder, nil
}
