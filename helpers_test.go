// seehuhn.de/go/drawing - integer rasterization of simple shapes
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

package drawing

import (
	"image/color"
	"testing"
)

var testInk = color.RGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF}

// seqSource returns a fixed sequence of values, cycling when the end
// is reached.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// strictImage records pixels and reports writes outside the image.
type strictImage struct {
	*PixelSet
	t *testing.T
}

func newStrictImage(t *testing.T, width, height int) *strictImage {
	t.Helper()
	return &strictImage{PixelSet: NewPixelSet(width, height), t: t}
}

func (s *strictImage) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		s.t.Errorf("SetPixel(%d, %d) outside %dx%d image", x, y, s.W, s.H)
		return
	}
	s.PixelSet.SetPixel(x, y, c)
}

// drawn draws s into a fresh image and returns the set of written pixels.
func drawn(t *testing.T, s Drawable, width, height int) map[Point]color.RGBA {
	t.Helper()
	img := newStrictImage(t, width, height)
	s.Draw(img)
	return img.Pixels
}

func samePixels(a, b map[Point]color.RGBA) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
