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
)

// Line is a straight line segment between two pixels, including both
// end points.
type Line struct {
	First, Second Point
	Ink           color.RGBA
}

// NewLine returns the line from a to b.
func NewLine(a, b Point, c color.RGBA) *Line {
	return &Line{First: a, Second: b, Ink: c}
}

// Draw implements the [Drawable] interface.
func (l *Line) Draw(img Image) {
	drawPixels(img, l.Bounds(), l.Pixels(), l.Ink)
}

// Color implements the [Drawable] interface.
func (l *Line) Color() color.RGBA {
	return l.Ink
}

// Display implements the [Displayable] interface.
// The line is moved to run from (x, y) to (x+1, y+1).
func (l *Line) Display(x, y int, c color.RGBA) {
	l.First = Point{X: x, Y: y}
	l.Second = Point{X: x + 1, Y: y + 1}
	l.Ink = c
}

// Pixels implements the [Shape] interface.
func (l *Line) Pixels() iter.Seq[Point] {
	return linePixels(l.First, l.Second)
}

// Bounds implements the [Shape] interface.
func (l *Line) Bounds() rect.Rect {
	return boundsOf(l.First, l.Second)
}

// Outline implements the [Shape] interface.
func (l *Line) Outline() *path.Data {
	return (&path.Data{}).MoveTo(l.First.centre()).LineTo(l.Second.centre())
}

// linePixels enumerates the pixels of the line from a to b using the
// Bresenham algorithm.
//
// The end points are brought into a fixed order first, so that the lines
// a→b and b→a consist of the same pixels.
func linePixels(a, b Point) iter.Seq[Point] {
	if b.less(a) {
		a, b = b, a
	}
	return func(yield func(Point) bool) {
		dx := abs(b.X - a.X)
		dy := -abs(b.Y - a.Y)
		sx := 1
		if a.X > b.X {
			sx = -1
		}
		sy := 1
		if a.Y > b.Y {
			sy = -1
		}

		x, y := a.X, a.Y
		e := dx + dy
		for {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			if x == b.X && y == b.Y {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
		}
	}
}

// drawLine draws the line from a to b in color c.
func drawLine(img Image, a, b Point, c color.RGBA) {
	for p := range linePixels(a, b) {
		plot(img, p.X, p.Y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
