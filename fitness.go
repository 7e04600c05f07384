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
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrSizeMismatch is returned when two images of different size are
// compared.
var ErrSizeMismatch = errors.New("image sizes differ")

// Fitness measures how far img is from the reference image ref.
// The result is the sum, over all pixels, of the Euclidean distance between
// the two RGB triples.  Alpha is ignored.  Lower is better, and zero means
// that both images agree in every pixel.
//
// The images must have the same size; they are not rescaled.
func Fitness(img, ref *image.RGBA) (float64, error) {
	a, b := img.Rect.Size(), ref.Rect.Size()
	if a != b {
		return 0, fmt.Errorf("%w: %v vs. %v", ErrSizeMismatch, a, b)
	}
	return distance(img, ref), nil
}

// distance implements Fitness for images already known to have the same
// size.
func distance(img, ref *image.RGBA) float64 {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	var total float64
	for y := range h {
		p := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		q := ref.Pix[ref.PixOffset(ref.Rect.Min.X, ref.Rect.Min.Y+y):]
		for i := 0; i < 4*w; i += 4 {
			dr := int(p[i]) - int(q[i])
			dg := int(p[i+1]) - int(q[i+1])
			db := int(p[i+2]) - int(q[i+2])
			total += math.Sqrt(float64(dr*dr + dg*dg + db*db))
		}
	}
	return total
}
