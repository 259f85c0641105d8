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
	"image"
	"image/color"
	"image/draw"
	"maps"
	"slices"
)

// Canvas adapts an [image/draw.Image] to the [Image] interface.
// Pixel (0, 0) of the canvas is the top-left corner of the image bounds.
type Canvas struct {
	dst    draw.Image
	origin image.Point
	w, h   int
}

// NewCanvas returns a canvas drawing into dst.
func NewCanvas(dst draw.Image) *Canvas {
	b := dst.Bounds()
	return &Canvas{dst: dst, origin: b.Min, w: b.Dx(), h: b.Dy()}
}

// NewRGBA allocates a width×height RGBA image and returns a canvas for it.
// All pixels start out transparent black.
func NewRGBA(width, height int) (*Canvas, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return NewCanvas(img), img
}

// Width implements the [Image] interface.
func (c *Canvas) Width() int { return c.w }

// Height implements the [Image] interface.
func (c *Canvas) Height() int { return c.h }

// SetPixel implements the [Image] interface.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if rgba, ok := c.dst.(*image.RGBA); ok {
		rgba.SetRGBA(c.origin.X+x, c.origin.Y+y, col)
		return
	}
	c.dst.Set(c.origin.X+x, c.origin.Y+y, col)
}

// Fill sets every pixel of the canvas to col.
func (c *Canvas) Fill(col color.RGBA) {
	r := image.Rect(0, 0, c.w, c.h).Add(c.origin)
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Draw draws all shapes onto the canvas, in order.
func (c *Canvas) Draw(shapes ...Drawable) {
	for _, s := range shapes {
		s.Draw(c)
	}
}

// PixelSet is an [Image] which records the pixels written to it.
// Pixels written more than once keep the last color.
type PixelSet struct {
	W, H   int
	Pixels map[Point]color.RGBA

	// Writes counts all calls to SetPixel, including repeated ones.
	Writes int
}

// NewPixelSet returns an empty pixel set of the given size.
func NewPixelSet(width, height int) *PixelSet {
	return &PixelSet{W: width, H: height, Pixels: make(map[Point]color.RGBA)}
}

// Width implements the [Image] interface.
func (s *PixelSet) Width() int { return s.W }

// Height implements the [Image] interface.
func (s *PixelSet) Height() int { return s.H }

// SetPixel implements the [Image] interface.
func (s *PixelSet) SetPixel(x, y int, c color.RGBA) {
	s.Pixels[Point{X: x, Y: y}] = c
	s.Writes++
}

// Points returns the written pixels, sorted by Y and then by X.
func (s *PixelSet) Points() []Point {
	return slices.SortedFunc(maps.Keys(s.Pixels), func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
