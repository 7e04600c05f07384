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

package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/mosaic"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name string       // lowercase a-z and _ only
	Gene *mosaic.Gene // the figures to render, with the canvas size
}

// gene builds a Gene of size w×h from the given figures.
func gene(w, h int, figures ...mosaic.Figure) *mosaic.Gene {
	return &mosaic.Gene{Size: image.Pt(w, h), Figures: figures}
}

// fig is a helper to create a figure with corners (x0, y0) and (x1, y1).
func fig(r, g, b, a uint8, x0, y0, x1, y1 int) mosaic.Figure {
	return mosaic.Figure{
		Color:  color.NRGBA{R: r, G: g, B: b, A: a},
		Points: [2]image.Point{{X: x0, Y: y0}, {X: x1, Y: y1}},
	}
}
