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

// Package pdfout writes drawings to PDF files.
//
// Every pixel written by a shape becomes a filled unit square, so that the
// raster output can be inspected at any zoom level. Optionally the exact
// geometric outline of each shape is drawn on top.
package pdfout

import (
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/drawing"
)

// Options control the PDF output.
type Options struct {
	// Scale is the size of one pixel in PDF points. Zero means 1.
	Scale float64

	// Outlines enables drawing the geometric outline of every shape
	// on top of its pixels.
	Outlines bool

	// Background is painted below all shapes. The zero value gives
	// a white background.
	Background stdcolor.RGBA
}

// outlineWidth is the line width of shape outlines, in pixels.
const outlineWidth = 0.1

// WriteFile draws the shapes onto a width×height canvas and writes the
// result as a single-page PDF file.
func WriteFile(fileName string, width, height int, shapes []drawing.Shape, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}

	paper := &pdf.Rectangle{
		URx: float64(width) * scale,
		URy: float64(height) * scale,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, pixel coordinates start top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(height) * scale})

	bg := opt.Background
	if bg == (stdcolor.RGBA{}) {
		bg = stdcolor.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	page.SetFillColor(toPDF(bg))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	for _, s := range shapes {
		pix := drawing.NewPixelSet(width, height)
		s.Draw(pix)
		if len(pix.Pixels) == 0 {
			continue
		}
		page.SetFillColor(toPDF(s.Color()))
		for _, p := range pix.Points() {
			page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		}
		page.Fill()
	}

	if opt.Outlines {
		page.SetLineWidth(outlineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		page.SetStrokeColor(color.DeviceGray(0))
		for _, s := range shapes {
			if !appendPath(page, s.Outline()) {
				continue
			}
			page.Stroke()
		}
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods needed to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// appendPath adds p to the current path of the page.
// The result is false if p is empty.
func appendPath(page pathBuilder, p *path.Data) bool {
	if p == nil || len(p.Cmds) == 0 {
		return false
	}
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[coordIdx]
			page.MoveTo(c.X, c.Y)
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			page.LineTo(c.X, c.Y)
			coordIdx++
		case path.CmdQuadTo:
			// not produced by any shape, approximate by a line
			c := p.Coords[coordIdx+1]
			page.LineTo(c.X, c.Y)
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, c3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, c3.X, c3.Y)
			coordIdx += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
	return true
}

func toPDF(c stdcolor.RGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
