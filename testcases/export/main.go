// Command export writes the test cases and the pixels they produce to JSON,
// for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
	Pixels [][2]int    `json:"pixels"`
}

type jsonShape struct {
	Kind   string   `json:"kind"`
	Pts    [][2]int `json:"pts"`
	Radius int      `json:"radius,omitempty"`
	Color  string   `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, s := range tc.Shapes {
		jtc.Shapes = append(jtc.Shapes, shapeToJSON(s))
	}

	pix := drawing.NewPixelSet(tc.Width, tc.Height)
	tc.Draw(pix)
	jtc.Pixels = make([][2]int, 0, len(pix.Pixels))
	for _, p := range pix.Points() {
		jtc.Pixels = append(jtc.Pixels, [2]int{p.X, p.Y})
	}
	return jtc
}

func shapeToJSON(s drawing.Shape) jsonShape {
	js := jsonShape{Color: hex(s.Color())}
	switch s := s.(type) {
	case *drawing.Dot:
		js.Kind = drawing.KindDot.String()
		js.Pts = ptsToJSON(s.Point)
	case *drawing.Line:
		js.Kind = drawing.KindLine.String()
		js.Pts = ptsToJSON(s.First, s.Second)
	case *drawing.Triangle:
		js.Kind = drawing.KindTriangle.String()
		js.Pts = ptsToJSON(s.Vertices()...)
	case *drawing.Rectangle:
		js.Kind = drawing.KindRectangle.String()
		js.Pts = ptsToJSON(s.First, s.Second)
	case *drawing.Circle:
		js.Kind = drawing.KindCircle.String()
		js.Pts = ptsToJSON(s.Center)
		js.Radius = s.Radius
	case *drawing.Pentagon:
		js.Kind = drawing.KindPentagon.String()
		js.Pts = ptsToJSON(s.Center)
		js.Radius = s.Radius
	}
	return js
}

func ptsToJSON(pts ...drawing.Point) [][2]int {
	res := make([][2]int, len(pts))
	for i, p := range pts {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
