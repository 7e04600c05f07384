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

// Command genpdf writes every rendering test case twice: as a PDF file with
// the figures as vector rectangles, and as a PNG file rendered by the
// mosaic renderer.  The pairs are meant for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mosaic"
	"seehuhn.de/go/mosaic/imagefile"
	"seehuhn.de/go/mosaic/report"
	"seehuhn.de/go/mosaic/testcases"
)

const outDir = "testdata/inspect"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	r := mosaic.NewRenderer()
	r.Scale = 8

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := report.WritePDF(pdfPath, tc.Gene); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := imagefile.SavePNG(pngPath, r.Render(tc.Gene)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
