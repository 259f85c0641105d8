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
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Circle is the outline of a circle. A circle with radius 0 is a single
// pixel, a circle with negative radius is empty.
type Circle struct {
	Center Point
	Radius int
	Ink    color.RGBA
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Point, radius int, c color.RGBA) *Circle {
	return &Circle{Center: center, Radius: radius, Ink: c}
}

// Draw implements the [Drawable] interface.
func (c *Circle) Draw(img Image) {
	drawPixels(img, c.Bounds(), c.Pixels(), c.Ink)
}

// Color implements the [Drawable] interface.
func (c *Circle) Color() color.RGBA {
	return c.Ink
}

// Display implements the [Displayable] interface.
// The circle is centred at (x, y), the radius is unchanged.
func (c *Circle) Display(x, y int, col color.RGBA) {
	c.Center = Point{X: x, Y: y}
	c.Ink = col
}

// Pixels implements the [Shape] interface.
func (c *Circle) Pixels() iter.Seq[Point] {
	return circlePixels(c.Center, c.Radius)
}

// Bounds implements the [Shape] interface.
func (c *Circle) Bounds() rect.Rect {
	if c.Radius < 0 {
		return rect.Rect{}
	}
	return boundsOf(c.Center.Add(-c.Radius, -c.Radius), c.Center.Add(c.Radius, c.Radius))
}

// Outline implements the [Shape] interface.
// The circle is approximated by four cubic Bézier arcs.
func (c *Circle) Outline() *path.Data {
	p := &path.Data{}
	if c.Radius < 0 {
		return p
	}
	return appendCircle(p, c.Center.centre(), float64(c.Radius))
}

// circlePixels enumerates the pixels of a circle using the midpoint circle
// algorithm. Only one octant is computed, the other seven are obtained by
// symmetry. Pixels on the diagonals are visited twice.
func circlePixels(center Point, radius int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cx, cy := center.X, center.Y
		x, y := 0, radius
		d := 3 - 2*radius
		for y >= x {
			octants := [8]Point{
				{X: cx + x, Y: cy + y},
				{X: cx - x, Y: cy + y},
				{X: cx + x, Y: cy - y},
				{X: cx - x, Y: cy - y},
				{X: cx + y, Y: cy + x},
				{X: cx - y, Y: cy + x},
				{X: cx + y, Y: cy - x},
				{X: cx - y, Y: cy - x},
			}
			for _, p := range octants {
				if !yield(p) {
					return
				}
			}

			if d <= 0 {
				d += 4*x + 6
			} else {
				d += 4*(x-y) + 10
				y--
			}
			x++
		}
	}
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// appendCircle adds a closed circle of radius r around m to p.
func appendCircle(p *path.Data, m vec.Vec2, r float64) *path.Data {
	k := kappa * r
	return p.MoveTo(vecXY(m.X+r, m.Y)).
		CubeTo(vecXY(m.X+r, m.Y+k), vecXY(m.X+k, m.Y+r), vecXY(m.X, m.Y+r)).
		CubeTo(vecXY(m.X-k, m.Y+r), vecXY(m.X-r, m.Y+k), vecXY(m.X-r, m.Y)).
		CubeTo(vecXY(m.X-r, m.Y-k), vecXY(m.X-k, m.Y-r), vecXY(m.X, m.Y-r)).
		CubeTo(vecXY(m.X+k, m.Y-r), vecXY(m.X+r, m.Y-k), vecXY(m.X+r, m.Y)).
		Close()
}

func vecXY(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
