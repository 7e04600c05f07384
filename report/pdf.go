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

package report

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/mosaic"
)

// WritePDF writes the figures of g as filled rectangles into a single-page
// PDF file, one point per pixel, on a black background.
//
// PDF has no equivalent of the repeated surface blending done by
// [mosaic.Renderer], so every figure is painted with its opaque RGB color.
// Fully transparent figures are omitted.
func WritePDF(name string, g *mosaic.Gene) error {
	w, h := float64(g.Size.X), float64(g.Size.Y)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Pixel rows count downwards from the top edge.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	for _, f := range g.Figures {
		if f.Color.A == 0 {
			continue
		}
		c := f.Color
		page.SetFillColor(color.DeviceRGB(
			float64(c.R)/255, float64(c.G)/255, float64(c.B)/255))
		b := f.Bounds()
		page.Rectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
		page.Fill()
	}

	return page.Close()
}
