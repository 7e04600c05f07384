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
	"math"
	"math/rand/v2"
)

// RandomPoint returns a pixel position drawn uniformly from the canvas
// [0, size.X) × [0, size.Y).  Both coordinates are drawn independently.
func RandomPoint(rng *rand.Rand, size image.Point) image.Point {
	return image.Point{
		X: rng.IntN(size.X),
		Y: rng.IntN(size.Y),
	}
}

// PolygonArea returns the unsigned area of the polygon with the given
// vertices, taken in order and closed implicitly, using the shoelace
// formula.
//
// A polygon with fewer than three vertices encloses no area, so the
// result is zero in this case.
func PolygonArea(points []image.Point) float64 {
	n := len(points)
	var twice int
	for i, p := range points {
		q := points[(i+1)%n]
		twice += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(twice)) / 2
}
