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
	"errors"
	"image/color"
	"sync"
)

// numColors is the number of distinct RGB triples.
const numColors = 1 << 24

// ErrColorsExhausted is returned by [ColorAllocator.Allocate] once every
// RGB triple has been handed out.
var ErrColorsExhausted = errors.New("drawing: all colors allocated")

// ColorAllocator hands out colors whose RGB triples are pairwise distinct.
// Allocated colors are always opaque; the alpha channel does not take part
// in the uniqueness check.
//
// A ColorAllocator is safe for concurrent use. It owns its random source:
// the source must not be used by anybody else while the allocator is in use.
type ColorAllocator struct {
	mu   sync.Mutex
	src  Source
	used map[uint32]struct{}
}

// NewColorAllocator returns an allocator with an empty used-color set.
func NewColorAllocator(src Source) *ColorAllocator {
	return &ColorAllocator{
		src:  src,
		used: make(map[uint32]struct{}),
	}
}

// Allocate returns an opaque color whose RGB triple has not been returned
// (or reserved) before. Random triples are drawn until an unused one is
// found, so the expected cost grows as the color space fills up.
// Once all 2^24 triples are in use, Allocate returns [ErrColorsExhausted].
func (a *ColorAllocator) Allocate() (color.RGBA, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.used) >= numColors {
		Logger().Warn("color space exhausted", "allocated", len(a.used))
		return color.RGBA{}, ErrColorsExhausted
	}

	for {
		key := uint32(a.src.IntN(numColors))
		if _, seen := a.used[key]; seen {
			Logger().Debug("color collision, resampling", "rgb", key)
			continue
		}
		a.used[key] = struct{}{}
		return fromKey(key), nil
	}
}

// Reserve marks the RGB triple of c as used, so that Allocate will never
// return it. The result is false if the triple was already in use.
func (a *ColorAllocator) Reserve(c color.RGBA) bool {
	key := toKey(c)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, seen := a.used[key]; seen {
		return false
	}
	a.used[key] = struct{}{}
	return true
}

// Len returns the number of RGB triples allocated or reserved so far.
func (a *ColorAllocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.used)
}

func toKey(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func fromKey(key uint32) color.RGBA {
	return color.RGBA{
		R: uint8(key >> 16),
		G: uint8(key >> 8),
		B: uint8(key),
		A: 0xFF,
	}
}
