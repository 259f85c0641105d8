package drawing

import (
	"image/color"
	"slices"
	"testing"
)

func TestDisplay(t *testing.T) {
	newInk := color.RGBA{R: 9, G: 8, B: 7, A: 255}
	cases := []struct {
		shape Shape
		want  []Point // defining points after Display(10, 20, ...)
	}{
		{NewDot(Pt(1, 1), testInk), []Point{{10, 20}}},
		{NewLine(Pt(1, 1), Pt(5, 9), testInk), []Point{{10, 20}, {11, 21}}},
		{NewTriangle(Pt(1, 1), Pt(5, 9), Pt(0, 7), testInk), []Point{{10, 20}, {11, 21}, {12, 22}}},
		{NewRectangle(Pt(1, 1), Pt(5, 9), testInk), []Point{{10, 20}, {11, 21}}},
		{NewCircle(Pt(1, 1), 4, testInk), []Point{{10, 20}}},
		{NewPentagon(Pt(1, 1), 4, testInk), []Point{{10, 20}}},
	}
	for _, c := range cases {
		c.shape.Display(10, 20, newInk)
		if got := definingPoints(c.shape); !slices.Equal(got, c.want) {
			t.Errorf("%T: got %v, want %v", c.shape, got, c.want)
		}
		if c.shape.Color() != newInk {
			t.Errorf("%T: color not updated", c.shape)
		}
	}

	// the radius is kept
	circ := NewCircle(Pt(1, 1), 4, testInk)
	circ.Display(3, 3, testInk)
	if circ.Radius != 4 {
		t.Errorf("circle radius changed to %d", circ.Radius)
	}
}

func definingPoints(s Shape) []Point {
	switch s := s.(type) {
	case *Dot:
		return []Point{s.Point}
	case *Line:
		return []Point{s.First, s.Second}
	case *Triangle:
		return []Point{s.A, s.B, s.C}
	case *Rectangle:
		return []Point{s.First, s.Second}
	case *Circle:
		return []Point{s.Center}
	case *Pentagon:
		return []Point{s.Center}
	}
	return nil
}

// TestDrawDoesNotModify checks that drawing leaves the shape unchanged.
func TestDrawDoesNotModify(t *testing.T) {
	shapes := []Shape{
		NewDot(Pt(3, 3), testInk),
		NewLine(Pt(-4, 2), Pt(30, 7), testInk),
		NewTriangle(Pt(1, 1), Pt(5, 9), Pt(0, 7), testInk),
		NewRectangle(Pt(8, 1), Pt(2, 6), testInk),
		NewCircle(Pt(5, 5), 4, testInk),
		NewPentagon(Pt(5, 5), 4, testInk),
	}
	for _, s := range shapes {
		before := definingPoints(s)
		first := drawn(t, s, 10, 10)
		second := drawn(t, s, 10, 10)
		if !slices.Equal(before, definingPoints(s)) {
			t.Errorf("%T: Draw modified the shape", s)
		}
		if !samePixels(first, second) {
			t.Errorf("%T: drawing twice gives different results", s)
		}
	}
}

// TestPixelsMatchDraw checks that Draw writes exactly the visible part of
// Pixels.
func TestPixelsMatchDraw(t *testing.T) {
	shapes := []Shape{
		NewDot(Pt(3, 3), testInk),
		NewLine(Pt(-4, 2), Pt(30, 7), testInk),
		NewTriangle(Pt(1, 1), Pt(25, 9), Pt(0, 17), testInk),
		NewRectangle(Pt(18, 1), Pt(2, 16), testInk),
		NewCircle(Pt(5, 5), 8, testInk),
		NewPentagon(Pt(10, 10), 12, testInk),
	}
	for _, s := range shapes {
		got := drawn(t, s, 20, 20)
		want := make(map[Point]color.RGBA)
		for p := range s.Pixels() {
			if p.In(20, 20) {
				want[p] = testInk
			}
		}
		if !samePixels(got, want) {
			t.Errorf("%T: Draw and Pixels disagree", s)
		}
	}
}

func TestDot(t *testing.T) {
	img := newStrictImage(t, 5, 5)
	NewDot(Pt(2, 3), testInk).Draw(img)
	NewDot(Pt(5, 3), testInk).Draw(img)
	NewDot(Pt(-1, 0), testInk).Draw(img)
	if got := img.Points(); !slices.Equal(got, []Point{{2, 3}}) {
		t.Errorf("got %v", got)
	}

	b := NewDot(Pt(2, 3), testInk).Bounds()
	if b.LLx != 2 || b.LLy != 3 || b.URx != 3 || b.URy != 4 {
		t.Errorf("bounds: got %v", b)
	}
	if o := NewDot(Pt(2, 3), testInk).Outline(); len(o.Cmds) != 5 {
		t.Errorf("outline: got %d commands, want 5", len(o.Cmds))
	}
}
