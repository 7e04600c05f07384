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

// Package reference derives the target image for a mosaic run from a
// source image, by mixing up the color channels separately in each
// quadrant.
package reference

import (
	"fmt"
	"image"
	"math/rand/v2"

	"golang.org/x/image/draw"
)

// Channel indices into an RGB triple.
const (
	Red = iota
	Green
	Blue
)

// Plan fixes the channel permutation for every quadrant.  Plan[i][j]
// applies to the quadrant in column i and row j, and Plan[i][j][k] is the
// source channel which becomes output channel k.  Source channels may be
// used more than once.
type Plan [2][2][3]int

// Identity is the Plan which leaves the image unchanged.
var Identity = Plan{
	{{Red, Green, Blue}, {Red, Green, Blue}},
	{{Red, Green, Blue}, {Red, Green, Blue}},
}

// RandomPlan draws every channel index of every quadrant independently
// and uniformly from red, green and blue.
func RandomPlan(rng *rand.Rand) Plan {
	var p Plan
	for i := range p {
		for j := range p[i] {
			for k := range p[i][j] {
				p[i][j][k] = rng.IntN(3)
			}
		}
	}
	return p
}

func (p Plan) String() string {
	names := [3]byte{'R', 'G', 'B'}
	var buf []byte
	for j := range 2 {
		for i := range 2 {
			if len(buf) > 0 {
				buf = append(buf, ' ')
			}
			for _, c := range p[i][j] {
				buf = append(buf, names[c])
			}
		}
	}
	return string(buf)
}

// Validate checks that all channel indices are in range.
func (p Plan) Validate() error {
	for i := range p {
		for j := range p[i] {
			for _, c := range p[i][j] {
				if c < Red || c > Blue {
					return fmt.Errorf("quadrant (%d,%d): invalid channel %d", i, j, c)
				}
			}
		}
	}
	return nil
}

// Derive returns an opaque copy of src in which the channels of each
// quadrant are recombined as described by plan.  The quadrant boundaries
// are at half the width and half the height, rounded down.  Any alpha
// channel of src is discarded, without compositing.
func Derive(src image.Image, plan Plan) (*image.RGBA, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	in := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(in, in.Rect, src, b.Min, draw.Src)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xs := [3]int{0, w / 2, w}
	ys := [3]int{0, h / 2, h}
	for i := range 2 {
		for j := range 2 {
			perm := plan[i][j]
			for y := ys[j]; y < ys[j+1]; y++ {
				p := in.Pix[in.PixOffset(xs[i], y):]
				q := out.Pix[out.PixOffset(xs[i], y):]
				for k := 0; k < 4*(xs[i+1]-xs[i]); k += 4 {
					q[k] = p[k+perm[0]]
					q[k+1] = p[k+perm[1]]
					q[k+2] = p[k+perm[2]]
					q[k+3] = 0xff
				}
			}
		}
	}
	return out, nil
}
