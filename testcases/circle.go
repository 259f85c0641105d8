package testcases

import "seehuhn.de/go/drawing"

var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Shapes: []drawing.Shape{drawing.NewCircle(pt(5, 5), 0, red)},
		Width:  10,
		Height: 10,
		Want:   pts(5, 5),
	},
	{
		Name:   "radius_one",
		Shapes: []drawing.Shape{drawing.NewCircle(pt(5, 5), 1, green)},
		Width:  10,
		Height: 10,
		Want:   pts(5, 4, 4, 5, 6, 5, 5, 6),
	},
	{
		Name:   "radius_two",
		Shapes: []drawing.Shape{drawing.NewCircle(pt(5, 5), 2, blue)},
		Width:  10,
		Height: 10,
		Want: pts(
			4, 3, 5, 3, 6, 3,
			3, 4, 7, 4,
			3, 5, 7, 5,
			3, 6, 7, 6,
			4, 7, 5, 7, 6, 7,
		),
	},
	{
		Name: "concentric",
		Shapes: []drawing.Shape{
			drawing.NewCircle(pt(32, 32), 30, red),
			drawing.NewCircle(pt(32, 32), 20, green),
			drawing.NewCircle(pt(32, 32), 10, blue),
		},
		Width:  64,
		Height: 64,
	},
}
