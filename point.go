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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Pt returns the point (x, y). Any coordinates are accepted, including
// ones outside of every image.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point with X uniform in [0, width) and Y uniform
// in [0, height). It panics if width or height is not positive.
func RandomPoint(src Source, width, height int) Point {
	checkRange(width, height)
	return Point{X: src.IntN(width), Y: src.IntN(height)}
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside [0,width)×[0,height).
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders points lexicographically by X, then Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// centre returns the centre of the pixel p in continuous coordinates.
func (p Point) centre() vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

func checkRange(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("drawing: invalid range %dx%d", width, height))
	}
}
