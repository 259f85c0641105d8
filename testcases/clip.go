package testcases

import "seehuhn.de/go/drawing"

// clipCases contain shapes which are partially or completely outside
// the canvas.
var clipCases = []TestCase{
	{
		Name:   "line_partial",
		Shapes: []drawing.Shape{drawing.NewLine(pt(-3, -3), pt(3, 3), red)},
		Width:  10,
		Height: 10,
		Want:   pts(0, 0, 1, 1, 2, 2, 3, 3),
	},
	{
		Name:   "line_outside",
		Shapes: []drawing.Shape{drawing.NewLine(pt(20, 20), pt(30, 25), red)},
		Width:  10,
		Height: 10,
		Want:   []drawing.Point{},
	},
	{
		Name:   "zero_length_outside",
		Shapes: []drawing.Shape{drawing.NewLine(pt(10, 3), pt(10, 3), red)},
		Width:  10,
		Height: 10,
		Want:   []drawing.Point{},
	},
	{
		Name:   "circle_corner",
		Shapes: []drawing.Shape{drawing.NewCircle(pt(0, 0), 2, green)},
		Width:  10,
		Height: 10,
		Want:   pts(2, 0, 2, 1, 0, 2, 1, 2),
	},
	{
		Name: "large_shapes",
		Shapes: []drawing.Shape{
			drawing.NewCircle(pt(32, 32), 40, red),
			drawing.NewRectangle(pt(-10, 10), pt(80, 50), green),
			drawing.NewTriangle(pt(-20, 70), pt(32, -30), pt(90, 70), blue),
			drawing.NewPentagon(pt(64, 64), 50, yellow),
		},
		Width:  64,
		Height: 64,
	},
}
