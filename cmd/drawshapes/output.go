package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"seehuhn.de/go/drawing"
)

var background = color.RGBA{A: 0xFF}

// render draws the shapes onto a new image with black background.
func render(width, height int, shapes []drawing.Shape) *image.RGBA {
	canvas, img := drawing.NewRGBA(width, height)
	canvas.Fill(background)
	for _, s := range shapes {
		canvas.Draw(s)
	}
	return img
}

// enlarge scales img by an integer factor, without smoothing, so that
// the individual pixels stay visible.
func enlarge(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// writeImage writes img to fileName. The file format is chosen by the
// file name extension.
func writeImage(fileName string, img *image.RGBA, scale int) (err error) {
	var encode func(*os.File, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".png":
		encode = func(f *os.File, m image.Image) error { return png.Encode(f, m) }
	case ".bmp":
		encode = func(f *os.File, m image.Image) error { return bmp.Encode(f, m) }
	default:
		return fmt.Errorf("%s: unsupported image format %q", fileName, ext)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := encode(f, enlarge(img, scale)); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}
