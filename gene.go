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
	"fmt"
	"image"
	"math/rand/v2"
	"slices"
)

// Gene is one candidate approximation: a list of figures, composited in
// order onto a canvas of the given size.  Later figures are drawn on top
// of earlier ones.
//
// A Gene owns its Figures slice.  Genes produced by [Gene.Mutate] never
// share storage with their parent.
type Gene struct {
	Size    image.Point
	Figures []Figure
}

// Clone returns a deep copy of g.
func (g *Gene) Clone() *Gene {
	return &Gene{
		Size:    g.Size,
		Figures: slices.Clone(g.Figures),
	}
}

// Mutate returns a new Gene which differs from g in exactly one randomly
// chosen figure, mutated by [Figure.Mutate].  The receiver is left
// unchanged.  A Gene without figures yields an unchanged copy.
func (g *Gene) Mutate(rng *rand.Rand) *Gene {
	child := g.Clone()
	if len(child.Figures) == 0 {
		return child
	}
	i := rng.IntN(len(child.Figures))
	child.Figures[i] = child.Figures[i].Mutate(rng, child.Size)
	return child
}

// Render composites the figures onto a fresh opaque canvas.
// See [Renderer.Render] for details.
func (g *Gene) Render() *image.RGBA {
	return NewRenderer().Render(g)
}

// Generate builds an initial Gene with up to n figures.
//
// For each of the n attempts two random corner points are drawn.  If the
// area measured by filter is below 1/16 of the canvas area, the figure is
// kept with a random color; otherwise the attempt is dropped.  The returned
// Gene may therefore hold fewer than n figures.
func Generate(rng *rand.Rand, size image.Point, n int, filter AreaFilter) *Gene {
	limit := float64(size.X*size.Y) / 16

	figures := make([]Figure, 0, n)
	for range n {
		f := Figure{
			Points: [2]image.Point{RandomPoint(rng, size), RandomPoint(rng, size)},
		}
		if filter.Area(f) >= limit {
			continue
		}
		f.Color = randomColor(rng)
		figures = append(figures, f)
	}

	return &Gene{Size: size, Figures: figures}
}

// AreaFilter selects how [Generate] measures the size of a new figure.
type AreaFilter int

const (
	// ShoelaceArea applies the shoelace formula to the two corner points.
	// Two points never enclose any area, so every figure passes.
	ShoelaceArea AreaFilter = iota

	// BoundingBoxArea uses the number of pixels covered by the figure.
	BoundingBoxArea
)

// Area returns the size of f as measured by the filter.
func (a AreaFilter) Area(f Figure) float64 {
	switch a {
	case BoundingBoxArea:
		size := f.Bounds().Size()
		return float64(size.X * size.Y)
	default:
		return PolygonArea(f.Points[:])
	}
}

func (a AreaFilter) String() string {
	switch a {
	case ShoelaceArea:
		return "shoelace"
	case BoundingBoxArea:
		return "bbox"
	default:
		return fmt.Sprintf("AreaFilter(%d)", int(a))
	}
}

// ParseAreaFilter converts the name used in configuration files
// ("shoelace" or "bbox") into an AreaFilter.
func ParseAreaFilter(name string) (AreaFilter, error) {
	switch name {
	case "shoelace", "":
		return ShoelaceArea, nil
	case "bbox":
		return BoundingBoxArea, nil
	default:
		return 0, fmt.Errorf("unknown area filter %q", name)
	}
}
