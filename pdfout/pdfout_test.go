package pdfout

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/drawing"
)

// recorder implements pathBuilder by recording the calls.
type recorder struct {
	calls []string
}

func (r *recorder) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("m %g %g", x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("l %g %g", x, y))
}

func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.calls = append(r.calls, fmt.Sprintf("c %g %g", x3, y3))
}

func (r *recorder) ClosePath() {
	r.calls = append(r.calls, "h")
}

func TestAppendPath(t *testing.T) {
	ink := color.RGBA{R: 1, A: 255}

	rec := &recorder{}
	tri := drawing.NewTriangle(drawing.Pt(0, 0), drawing.Pt(4, 0), drawing.Pt(0, 4), ink)
	if !appendPath(rec, tri.Outline()) {
		t.Fatal("triangle outline is empty")
	}
	want := "m 0.5 0.5|l 4.5 0.5|l 0.5 4.5|h"
	if got := strings.Join(rec.calls, "|"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	rec = &recorder{}
	circ := drawing.NewCircle(drawing.Pt(2, 2), 2, ink)
	appendPath(rec, circ.Outline())
	want = "m 4.5 2.5|c 2.5 4.5|c 0.5 2.5|c 2.5 0.5|c 4.5 2.5|h"
	if got := strings.Join(rec.calls, "|"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if appendPath(&recorder{}, drawing.NewCircle(drawing.Pt(2, 2), -1, ink).Outline()) {
		t.Error("empty outline reported as non-empty")
	}
}

func TestWriteFile(t *testing.T) {
	ink := color.RGBA{G: 0x80, A: 255}
	shapes := []drawing.Shape{
		drawing.NewLine(drawing.Pt(0, 0), drawing.Pt(9, 5), ink),
		drawing.NewCircle(drawing.Pt(5, 5), 3, ink),
		drawing.NewCircle(drawing.Pt(50, 50), 3, ink), // not visible
	}

	fileName := filepath.Join(t.TempDir(), "out.pdf")
	err := WriteFile(fileName, 10, 10, shapes, &Options{Scale: 4, Outlines: true})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Errorf("output does not look like a PDF file")
	}
}
