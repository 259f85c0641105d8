package testcases

import "seehuhn.de/go/drawing"

var polygonCases = []TestCase{
	{
		Name: "triangle",
		Shapes: []drawing.Shape{
			drawing.NewTriangle(pt(0, 0), pt(4, 0), pt(0, 4), red),
		},
		Width:  10,
		Height: 10,
		Want: pts(
			0, 0, 1, 0, 2, 0, 3, 0, 4, 0,
			0, 1, 3, 1,
			0, 2, 2, 2,
			0, 3, 1, 3,
			0, 4,
		),
	},
	{
		Name:   "rectangle",
		Shapes: []drawing.Shape{drawing.NewRectangle(pt(1, 1), pt(4, 3), green)},
		Width:  10,
		Height: 10,
		Want: pts(
			1, 1, 2, 1, 3, 1, 4, 1,
			1, 2, 4, 2,
			1, 3, 2, 3, 3, 3, 4, 3,
		),
	},
	{
		Name:   "rectangle_reversed",
		Shapes: []drawing.Shape{drawing.NewRectangle(pt(4, 3), pt(1, 1), green)},
		Width:  10,
		Height: 10,
		Want: pts(
			1, 1, 2, 1, 3, 1, 4, 1,
			1, 2, 4, 2,
			1, 3, 2, 3, 3, 3, 4, 3,
		),
	},
	{
		Name:   "rectangle_degenerate",
		Shapes: []drawing.Shape{drawing.NewRectangle(pt(2, 2), pt(2, 2), blue)},
		Width:  10,
		Height: 10,
		Want:   pts(2, 2),
	},
	{
		Name: "pentagons",
		Shapes: []drawing.Shape{
			drawing.NewPentagon(pt(32, 32), 28, yellow),
			drawing.NewPentagon(pt(32, 32), 14, white),
		},
		Width:  64,
		Height: 64,
	},
}
