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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Triangle is the outline of a triangle.
type Triangle struct {
	A, B, C Point
	Ink     color.RGBA
}

// NewTriangle returns the triangle with corners a, b and c.
func NewTriangle(a, b, c Point, col color.RGBA) *Triangle {
	return &Triangle{A: a, B: b, C: c, Ink: col}
}

// Vertices returns the corners in drawing order.
func (t *Triangle) Vertices() []Point {
	return []Point{t.A, t.B, t.C}
}

// Draw implements the [Drawable] interface.
func (t *Triangle) Draw(img Image) {
	drawPolygon(img, t.Vertices(), t.Ink)
}

// Color implements the [Drawable] interface.
func (t *Triangle) Color() color.RGBA {
	return t.Ink
}

// Display implements the [Displayable] interface.
// The corners are moved to (x, y), (x+1, y+1) and (x+2, y+2).
//
// TODO: translate all three corners by the same offset instead, so that
// the triangle keeps its shape.
func (t *Triangle) Display(x, y int, c color.RGBA) {
	t.A = Point{X: x, Y: y}
	t.B = Point{X: x + 1, Y: y + 1}
	t.C = Point{X: x + 2, Y: y + 2}
	t.Ink = c
}

// Pixels implements the [Shape] interface.
func (t *Triangle) Pixels() iter.Seq[Point] {
	return polygonPixels(t.Vertices())
}

// Bounds implements the [Shape] interface.
func (t *Triangle) Bounds() rect.Rect {
	return boundsOf(t.A, t.B, t.C)
}

// Outline implements the [Shape] interface.
func (t *Triangle) Outline() *path.Data {
	return polygonOutline(t.Vertices())
}

// Rectangle is the outline of an axis-parallel rectangle, given by two
// opposite corners. The corners can be given in any order.
type Rectangle struct {
	First, Second Point
	Ink           color.RGBA
}

// NewRectangle returns the rectangle with opposite corners a and b.
func NewRectangle(a, b Point, c color.RGBA) *Rectangle {
	return &Rectangle{First: a, Second: b, Ink: c}
}

// Vertices returns the four corners in drawing order, starting at First.
func (r *Rectangle) Vertices() []Point {
	return []Point{
		r.First,
		{X: r.Second.X, Y: r.First.Y},
		r.Second,
		{X: r.First.X, Y: r.Second.Y},
	}
}

// Draw implements the [Drawable] interface.
func (r *Rectangle) Draw(img Image) {
	drawPolygon(img, r.Vertices(), r.Ink)
}

// Color implements the [Drawable] interface.
func (r *Rectangle) Color() color.RGBA {
	return r.Ink
}

// Display implements the [Displayable] interface.
// The corners are moved to (x, y) and (x+1, y+1).
func (r *Rectangle) Display(x, y int, c color.RGBA) {
	r.First = Point{X: x, Y: y}
	r.Second = Point{X: x + 1, Y: y + 1}
	r.Ink = c
}

// Pixels implements the [Shape] interface.
func (r *Rectangle) Pixels() iter.Seq[Point] {
	return polygonPixels(r.Vertices())
}

// Bounds implements the [Shape] interface.
func (r *Rectangle) Bounds() rect.Rect {
	return boundsOf(r.First, r.Second)
}

// Outline implements the [Shape] interface.
func (r *Rectangle) Outline() *path.Data {
	return polygonOutline(r.Vertices())
}

// Pentagon is the outline of a regular pentagon with one corner pointing
// upwards.
type Pentagon struct {
	Center Point
	Radius int // distance from the center to the corners
	Ink    color.RGBA
}

// NewPentagon returns the pentagon with the given center and radius.
func NewPentagon(center Point, radius int, c color.RGBA) *Pentagon {
	return &Pentagon{Center: center, Radius: radius, Ink: c}
}

// Vertices returns the five corners, starting with the top one and
// continuing clockwise on screen.
//
// Corner i lies at angle -90° + i·72°. Coordinates are truncated towards
// zero.
func (p *Pentagon) Vertices() []Point {
	m := vecXY(float64(p.Center.X), float64(p.Center.Y))
	r := float64(p.Radius)
	res := make([]Point, 5)
	for i := range res {
		phi := -math.Pi/2 + float64(i)*2*math.Pi/5
		q := m.Add(vecXY(math.Cos(phi), math.Sin(phi)).Mul(r))
		res[i] = Point{X: int(q.X), Y: int(q.Y)}
	}
	return res
}

// Draw implements the [Drawable] interface.
func (p *Pentagon) Draw(img Image) {
	drawPolygon(img, p.Vertices(), p.Ink)
}

// Color implements the [Drawable] interface.
func (p *Pentagon) Color() color.RGBA {
	return p.Ink
}

// Display implements the [Displayable] interface.
// The pentagon is centred at (x, y), the radius is unchanged.
func (p *Pentagon) Display(x, y int, c color.RGBA) {
	p.Center = Point{X: x, Y: y}
	p.Ink = c
}

// Pixels implements the [Shape] interface.
func (p *Pentagon) Pixels() iter.Seq[Point] {
	return polygonPixels(p.Vertices())
}

// Bounds implements the [Shape] interface.
func (p *Pentagon) Bounds() rect.Rect {
	return boundsOf(p.Vertices()...)
}

// Outline implements the [Shape] interface.
func (p *Pentagon) Outline() *path.Data {
	return polygonOutline(p.Vertices())
}

// drawPolygon draws the closed polygon through the given vertices. All
// edges use the same color.
func drawPolygon(img Image, vertices []Point, c color.RGBA) {
	if !visible(boundsOf(vertices...), img) {
		return
	}
	n := len(vertices)
	for i, a := range vertices {
		drawLine(img, a, vertices[(i+1)%n], c)
	}
}

// polygonPixels enumerates the pixels of all edges of the closed polygon.
// Corner pixels are visited twice.
func polygonPixels(vertices []Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := len(vertices)
		for i, a := range vertices {
			for p := range linePixels(a, vertices[(i+1)%n]) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func polygonOutline(vertices []Point) *path.Data {
	p := &path.Data{}
	if len(vertices) == 0 {
		return p
	}
	p = p.MoveTo(vertices[0].centre())
	for _, v := range vertices[1:] {
		p = p.LineTo(v.centre())
	}
	return p.Close()
}
