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

package drawing_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/testcases"
)

// boundedImage records pixels and fails the test on writes outside the
// image.
type boundedImage struct {
	*drawing.PixelSet
	t *testing.T
}

func (b boundedImage) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		b.t.Errorf("SetPixel(%d, %d) outside %dx%d image", x, y, b.W, b.H)
		return
	}
	b.PixelSet.SetPixel(x, y, c)
}

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				img := boundedImage{PixelSet: drawing.NewPixelSet(tc.Width, tc.Height), t: t}
				tc.Draw(img)

				if len(tc.Shapes) > 0 && len(img.Pixels) == 0 && tc.Want == nil {
					t.Error("nothing was drawn")
				}
				if tc.Want == nil {
					return
				}

				got := img.Points()
				if !slices.Equal(got, tc.Want) {
					_ = writeDiffImage(name, tc.Want, got, tc.Width, tc.Height)
					t.Errorf("got %v, want %v", got, tc.Want)
				}
			})
		}
	}
}

// TestCanvasMatchesPixelSet renders every test case into an RGBA image and
// checks that exactly the recorded pixels are colored.
func TestCanvasMatchesPixelSet(t *testing.T) {
	bg := color.RGBA{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				pix := drawing.NewPixelSet(tc.Width, tc.Height)
				tc.Draw(pix)

				canvas, img := drawing.NewRGBA(tc.Width, tc.Height)
				tc.Draw(canvas)

				for y := range tc.Height {
					for x := range tc.Width {
						want, ok := pix.Pixels[drawing.Pt(x, y)]
						if !ok {
							want = bg
						}
						if got := img.RGBAAt(x, y); got != want {
							t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
						}
					}
				}
			})
		}
	}
}

func ExampleLine_Draw() {
	img := drawing.NewPixelSet(10, 10)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	drawing.NewLine(drawing.Pt(0, 0), drawing.Pt(5, 5), red).Draw(img)
	fmt.Println(img.Points())
	// Output:
	// [(0,0) (1,1) (2,2) (3,3) (4,4) (5,5)]
}

// writeDiffImage writes a picture showing expected pixels in red and
// actual pixels in green, so that matches appear yellow.
func writeDiffImage(name string, expected, actual []drawing.Point, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
		}
	}
	for _, p := range expected {
		c := img.RGBAAt(p.X, p.Y)
		c.R = 255
		img.SetRGBA(p.X, p.Y, c)
	}
	for _, p := range actual {
		c := img.RGBAAt(p.X, p.Y)
		c.G = 255
		img.SetRGBA(p.X, p.Y, c)
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
