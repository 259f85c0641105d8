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

// Command genpdf writes every test case to a PDF file, showing the drawn
// pixels together with the geometric outlines of the shapes.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/drawing/pdfout"
	"seehuhn.de/go/drawing/testcases"
)

const outDir = "testdata/pdf"

// pixelSize is the size of one pixel in PDF points.
const pixelSize = 8

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	opt := &pdfout.Options{Scale: pixelSize, Outlines: true}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			err := pdfout.WriteFile(pdfPath, tc.Width, tc.Height, tc.Shapes, opt)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
