package testcases

import "seehuhn.de/go/drawing"

var lineCases = []TestCase{
	{
		Name:   "diagonal",
		Shapes: []drawing.Shape{drawing.NewLine(pt(0, 0), pt(5, 5), red)},
		Width:  10,
		Height: 10,
		Want:   pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5),
	},
	{
		Name:   "horizontal",
		Shapes: []drawing.Shape{drawing.NewLine(pt(6, 2), pt(1, 2), green)},
		Width:  10,
		Height: 10,
		Want:   pts(1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2),
	},
	{
		Name:   "vertical",
		Shapes: []drawing.Shape{drawing.NewLine(pt(3, 7), pt(3, 1), blue)},
		Width:  10,
		Height: 10,
		Want:   pts(3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7),
	},
	{
		Name:   "zero_length",
		Shapes: []drawing.Shape{drawing.NewLine(pt(4, 4), pt(4, 4), yellow)},
		Width:  10,
		Height: 10,
		Want:   pts(4, 4),
	},
	{
		Name:   "shallow",
		Shapes: []drawing.Shape{drawing.NewLine(pt(0, 0), pt(4, 2), red)},
		Width:  10,
		Height: 10,
		Want:   pts(0, 0, 1, 1, 2, 1, 3, 2, 4, 2),
	},
	{
		Name:   "shallow_reversed",
		Shapes: []drawing.Shape{drawing.NewLine(pt(4, 2), pt(0, 0), red)},
		Width:  10,
		Height: 10,
		Want:   pts(0, 0, 1, 1, 2, 1, 3, 2, 4, 2),
	},
	{
		Name: "fan",
		Shapes: []drawing.Shape{
			drawing.NewLine(pt(32, 32), pt(63, 0), red),
			drawing.NewLine(pt(32, 32), pt(63, 40), green),
			drawing.NewLine(pt(32, 32), pt(40, 63), blue),
			drawing.NewLine(pt(32, 32), pt(0, 50), yellow),
			drawing.NewLine(pt(32, 32), pt(5, 0), white),
		},
		Width:  64,
		Height: 64,
	},
}
