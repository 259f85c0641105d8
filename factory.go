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

package drawing

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// Kind identifies one of the shape types of this package.
type Kind int

// These are the supported shape kinds.
const (
	KindDot Kind = iota
	KindLine
	KindTriangle
	KindRectangle
	KindCircle
	KindPentagon

	numKinds
)

var kindNames = [numKinds]string{
	KindDot:       "dot",
	KindLine:      "line",
	KindTriangle:  "triangle",
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindPentagon:  "pentagon",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts the name of a shape kind, as returned by
// [Kind.String], back into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("drawing: unknown shape kind %q", s)
}

// Factory creates shapes with random geometry. Colors are taken from a
// [ColorAllocator], so that all shapes made by the factory (and by every
// other user of the same allocator) have different colors.
//
// The methods of a Factory panic if width or height is not positive.
// They only return an error if the color space is exhausted.
//
// A Factory is safe for concurrent use. The factory's source must be
// different from the allocator's source.
type Factory struct {
	mu    sync.Mutex
	src   Source
	alloc *ColorAllocator
}

// NewFactory returns a factory which uses src for the geometry and alloc
// for the colors.
func NewFactory(src Source, alloc *ColorAllocator) *Factory {
	return &Factory{src: src, alloc: alloc}
}

// Dot returns a random dot inside [0,width)×[0,height).
func (f *Factory) Dot(width, height int) (*Dot, error) {
	p := f.points(width, height, 1)
	c, err := f.color(KindDot)
	if err != nil {
		return nil, err
	}
	return NewDot(p[0], c), nil
}

// Line returns a line between two random points.
func (f *Factory) Line(width, height int) (*Line, error) {
	p := f.points(width, height, 2)
	c, err := f.color(KindLine)
	if err != nil {
		return nil, err
	}
	return NewLine(p[0], p[1], c), nil
}

// Triangle returns a triangle with three random corners.
func (f *Factory) Triangle(width, height int) (*Triangle, error) {
	p := f.points(width, height, 3)
	c, err := f.color(KindTriangle)
	if err != nil {
		return nil, err
	}
	return NewTriangle(p[0], p[1], p[2], c), nil
}

// Rectangle returns a rectangle with two random opposite corners.
func (f *Factory) Rectangle(width, height int) (*Rectangle, error) {
	p := f.points(width, height, 2)
	c, err := f.color(KindRectangle)
	if err != nil {
		return nil, err
	}
	return NewRectangle(p[0], p[1], c), nil
}

// Circle returns a circle with a random center inside the bounds and a
// random radius in [0, min(width, height)/2].
func (f *Factory) Circle(width, height int) (*Circle, error) {
	center, radius := f.centerRadius(width, height, 0)
	c, err := f.color(KindCircle)
	if err != nil {
		return nil, err
	}
	return NewCircle(center, radius, c), nil
}

// Pentagon returns a pentagon with a random center inside the bounds and a
// random radius in [1, min(width, height)/2+1].
func (f *Factory) Pentagon(width, height int) (*Pentagon, error) {
	center, radius := f.centerRadius(width, height, 1)
	c, err := f.color(KindPentagon)
	if err != nil {
		return nil, err
	}
	return NewPentagon(center, radius, c), nil
}

// Shape returns a random shape of the given kind.
func (f *Factory) Shape(k Kind, width, height int) (Shape, error) {
	var s Shape
	var err error
	switch k {
	case KindDot:
		s, err = f.Dot(width, height)
	case KindLine:
		s, err = f.Line(width, height)
	case KindTriangle:
		s, err = f.Triangle(width, height)
	case KindRectangle:
		s, err = f.Rectangle(width, height)
	case KindCircle:
		s, err = f.Circle(width, height)
	case KindPentagon:
		s, err = f.Pentagon(width, height)
	default:
		return nil, fmt.Errorf("drawing: unknown shape kind %d", int(k))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Scene returns n random shapes of random kinds.
func (f *Factory) Scene(width, height, n int) ([]Shape, error) {
	checkRange(width, height)
	shapes := make([]Shape, 0, max(n, 0))
	for range n {
		f.mu.Lock()
		k := Kind(f.src.IntN(int(numKinds)))
		f.mu.Unlock()

		s, err := f.Shape(k, width, height)
		if err != nil {
			return shapes, fmt.Errorf("shape %d of %d: %w", len(shapes)+1, n, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func (f *Factory) points(width, height, n int) []Point {
	checkRange(width, height)
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]Point, n)
	for i := range res {
		res[i] = RandomPoint(f.src, width, height)
	}
	return res
}

func (f *Factory) centerRadius(width, height, minRadius int) (Point, int) {
	checkRange(width, height)
	f.mu.Lock()
	defer f.mu.Unlock()

	center := RandomPoint(f.src, width, height)
	radius := minRadius + f.src.IntN(min(width, height)/2+1)
	return center, radius
}

func (f *Factory) color(k Kind) (color.RGBA, error) {
	c, err := f.alloc.Allocate()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("random %s: %w", k, err)
	}
	Logger().Debug("random shape", "kind", k, "color", c)
	return c, nil
}
