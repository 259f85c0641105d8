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

// Package drawing rasterizes simple shapes (dots, lines, triangles,
// rectangles, circles and pentagons) onto a pixel buffer, using integer
// scan-conversion only.
//
// Lines use the Bresenham algorithm, circles the midpoint circle algorithm
// with 8-way symmetry. Polygons are drawn as closed sequences of lines.
// Every rasterizer clips per pixel, so shapes which are partially or
// completely outside the image are legal and only their visible part is
// drawn.
package drawing

import "image/color"

//go:generate go run ./testcases/export

// Image is the pixel buffer shapes are drawn into.
//
// SetPixel is only ever called with 0 <= x < Width() and 0 <= y < Height(),
// so implementations need not check bounds.
type Image interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.RGBA)
}

// Source produces uniformly distributed random integers.
// IntN returns a value in [0, n) and may panic if n <= 0.
// A *math/rand/v2.Rand satisfies this interface.
type Source interface {
	IntN(n int) int
}

// plot writes a single pixel if it lies inside the image.
func plot(img Image, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Width() || y >= img.Height() {
		return
	}
	img.SetPixel(x, y, c)
}
