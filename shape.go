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

// Drawable is implemented by everything which can be drawn into an [Image].
type Drawable interface {
	// Draw writes the pixels of the shape into img. Pixels outside the
	// image are skipped. Draw does not modify the shape.
	Draw(img Image)

	// Color returns the color the shape is drawn with.
	Color() color.RGBA
}

// Displayable is implemented by shapes which can be moved.
type Displayable interface {
	// Display moves the shape so that its anchor is at (x, y) and sets
	// its color to c. Points other than the anchor are placed at fixed
	// offsets from the anchor, so the previous proportions of the shape
	// are lost.
	Display(x, y int, c color.RGBA)
}

// Shape is the common interface of all shape types in this package:
// [Dot], [Line], [Triangle], [Rectangle], [Circle] and [Pentagon].
type Shape interface {
	Drawable
	Displayable

	// Pixels enumerates the pixels of the shape, without clipping.
	// Some pixels may be visited more than once.
	Pixels() iter.Seq[Point]

	// Bounds returns the smallest rectangle containing all pixels of the
	// shape. Pixel (x, y) covers the unit square [x,x+1)×[y,y+1).
	Bounds() rect.Rect

	// Outline returns the geometric outline of the shape, running through
	// pixel centres.
	Outline() *path.Data
}

var (
	_ Shape = (*Dot)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Pentagon)(nil)
)

// Dot is a single colored pixel.
type Dot struct {
	Point
	Ink color.RGBA
}

// NewDot returns a dot at p.
func NewDot(p Point, c color.RGBA) *Dot {
	return &Dot{Point: p, Ink: c}
}

// Draw implements the [Drawable] interface.
func (d *Dot) Draw(img Image) {
	plot(img, d.X, d.Y, d.Ink)
}

// Color implements the [Drawable] interface.
func (d *Dot) Color() color.RGBA {
	return d.Ink
}

// Display implements the [Displayable] interface.
func (d *Dot) Display(x, y int, c color.RGBA) {
	d.Point = Point{X: x, Y: y}
	d.Ink = c
}

// Pixels implements the [Shape] interface.
func (d *Dot) Pixels() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		yield(d.Point)
	}
}

// Bounds implements the [Shape] interface.
func (d *Dot) Bounds() rect.Rect {
	return boundsOf(d.Point)
}

// Outline implements the [Shape] interface.
// The outline of a dot is the boundary of its pixel.
func (d *Dot) Outline() *path.Data {
	x, y := float64(d.X), float64(d.Y)
	return (&path.Data{}).
		MoveTo(vecXY(x, y)).
		LineTo(vecXY(x+1, y)).
		LineTo(vecXY(x+1, y+1)).
		LineTo(vecXY(x, y+1)).
		Close()
}

// drawPixels writes all pixels of seq into img, skipping the shape entirely
// if its bounding box misses the image.
func drawPixels(img Image, bbox rect.Rect, seq iter.Seq[Point], c color.RGBA) {
	if !visible(bbox, img) {
		return
	}
	for p := range seq {
		plot(img, p.X, p.Y, c)
	}
}

// visible reports whether bbox intersects the image area.
func visible(bbox rect.Rect, img Image) bool {
	if bbox.URx <= bbox.LLx || bbox.URy <= bbox.LLy {
		return false
	}
	return bbox.URx > 0 && bbox.URy > 0 &&
		bbox.LLx < float64(img.Width()) && bbox.LLy < float64(img.Height())
}

// boundsOf returns the bounding box of the given pixels.
func boundsOf(pts ...Point) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}
