// seehuhn.de/go/mosaic - approximate images with translucent rectangles
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

package mosaic

import (
	"image"
	"image/color"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Figure is a single translucent, axis-aligned rectangle.
//
// The two points are opposite corners of the rectangle, in any order.
// Both corner pixels belong to the rectangle, so a figure whose points
// coincide covers exactly one pixel.  Color is not premultiplied.
type Figure struct {
	Color  color.NRGBA
	Points [2]image.Point
}

// Bounds returns the set of pixels covered by the figure.
func (f Figure) Bounds() image.Rectangle {
	p, q := f.Points[0], f.Points[1]
	return image.Rectangle{
		Min: image.Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)},
		Max: image.Point{X: max(p.X, q.X) + 1, Y: max(p.Y, q.Y) + 1},
	}
}

// Path returns the outline of the figure in pixel coordinates.
func (f Figure) Path() *path.Data {
	return f.appendOutline(&path.Data{})
}

// appendOutline adds the outline of the figure to p as a closed subpath.
func (f Figure) appendOutline(p *path.Data) *path.Data {
	b := f.Bounds()
	x0, y0 := float64(b.Min.X), float64(b.Min.Y)
	x1, y1 := float64(b.Max.X), float64(b.Max.Y)
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// Mutate returns a copy of f with one random change applied.
// The receiver is not modified.
//
// With probability 1/2 one of the four color channels is replaced by a
// random value.  Otherwise two random corner slots (possibly the same one)
// are overwritten by two fresh random points on a canvas of the given size.
func (f Figure) Mutate(rng *rand.Rand, size image.Point) Figure {
	if rng.Float64() < 0.5 {
		return f.mutateColor(rng)
	}
	return f.mutatePoints(rng, size)
}

func (f Figure) mutateColor(rng *rand.Rand) Figure {
	v := uint8(rng.IntN(256))
	switch rng.IntN(4) {
	case 0:
		f.Color.R = v
	case 1:
		f.Color.G = v
	case 2:
		f.Color.B = v
	default:
		f.Color.A = v
	}
	return f
}

func (f Figure) mutatePoints(rng *rand.Rand, size image.Point) Figure {
	p := RandomPoint(rng, size)
	q := RandomPoint(rng, size)
	i := rng.IntN(len(f.Points))
	j := rng.IntN(len(f.Points))
	f.Points[i] = p
	f.Points[j] = q
	return f
}

// randomColor returns a color with all four channels drawn uniformly.
func randomColor(rng *rand.Rand) color.NRGBA {
	return color.NRGBA{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: uint8(rng.IntN(256)),
	}
}
