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

// Package testcases contains named drawing scenes which are shared between
// the tests and the export commands.
package testcases

import (
	"image/color"

	"seehuhn.de/go/drawing"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Shapes []drawing.Shape // drawn in order
	Width  int             // canvas width in pixels
	Height int             // canvas height in pixels

	// Want lists the expected pixels, sorted by Y and then by X.
	// A nil slice means that only generic properties are checked.
	Want []drawing.Point
}

// Draw draws all shapes of the test case into img.
func (tc TestCase) Draw(img drawing.Image) {
	for _, s := range tc.Shapes {
		s.Draw(img)
	}
}

// Find returns the test case with the given full name, as used for
// reference files ("<category>_<name>").
func Find(fullName string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == fullName {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}

// A small fixed palette, so that test scenes do not depend on an allocator.
var (
	red    = color.RGBA{R: 0xE0, G: 0x20, B: 0x20, A: 0xFF}
	green  = color.RGBA{R: 0x20, G: 0xC0, B: 0x40, A: 0xFF}
	blue   = color.RGBA{R: 0x30, G: 0x50, B: 0xF0, A: 0xFF}
	yellow = color.RGBA{R: 0xF0, G: 0xD0, B: 0x20, A: 0xFF}
	white  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// pt is a helper to create a drawing.Point from x, y coordinates.
func pt(x, y int) drawing.Point {
	return drawing.Point{X: x, Y: y}
}

// pts converts a flat list of coordinates into points.
func pts(xy ...int) []drawing.Point {
	res := make([]drawing.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}
