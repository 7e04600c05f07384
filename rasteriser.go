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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates,
// stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the path runs downwards along this edge, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts polygonal paths into per-pixel coverage values, the
// fraction of each pixel's area inside the path, using the nonzero winding
// rule.  Coverage is anti-aliased; for rectangles with integer corners it is
// exactly 0 or 1.
//
// Create one instance and reuse it.  Internal buffers grow as needed but
// never shrink, so that no allocations happen in steady state.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from path coordinates to device pixels.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	edges     []edge
	active    []int     // indices into edges, for the current scanline
	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // cover weighted by the uncovered part of the pixel
	crossings []float64 // y values where an edge crosses a pixel column

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser with the identity CTM and the given
// clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the identity CTM and sets a new clip rectangle, keeping
// the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// Fill rasterises the path and delivers the coverage row by row through
// emit.  Rows are emitted in increasing y, and each coverage slice starts
// at column xMin with leading and trailing zeros removed.  The slice is only
// valid for the duration of the callback.
//
// Curved segments are replaced by the straight line to their end point.
func (r *Rasteriser) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collectEdges transforms the path to device space and fills r.edges.
// The returned bounding box is clipped and may be empty.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge appends the device-space image of the segment from a to b.
// Horizontal segments do not contribute to coverage and are skipped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(ax, bx), max(ax, bx)
		r.bboxYMin, r.bboxYMax = min(ay, by), max(ay, by)
		r.bboxEmpty = false
	} else {
		r.bboxXMin = min(r.bboxXMin, ax, bx)
		r.bboxXMax = max(r.bboxXMax, ax, bx)
		r.bboxYMin = min(r.bboxYMin, ay, by)
		r.bboxYMax = max(r.bboxYMax, ay, by)
	}

	if math.Abs(by-ay) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: ax, y0: ay, x1: bx, y1: by, dir: 1}
	if by < ay {
		e = edge{x0: bx, y0: by, x1: ax, y1: ay, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)
}

// Coverage model:
//
// Each edge piece inside a pixel deposits two numbers.  cover is the signed
// height of the piece (positive for downward edges).  area is cover times
// the fraction of the pixel to the right of the piece.  Scanning a row from
// left to right, the coverage of a pixel is the sum of all cover values
// strictly to its left plus its own area value.

// accumulate adds the part of e between the scanline boundaries top and
// bottom to r.cover and r.area.  Pieces left of xMin are folded into the
// first pixel, pieces right of xMax are dropped.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	yTop := max(top, e.y0)
	yBot := min(bottom, e.y1)
	if yBot <= yTop {
		return
	}

	xTop := e.xAt(yTop)
	xBot := e.xAt(yBot)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if left == right {
		r.deposit(e.dir*float32(yBot-yTop), (xTop+xBot)/2, left, xMin, xMax)
		return
	}

	// Split the piece where it crosses pixel column boundaries.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := left + 1; x <= right; x++ {
		y := e.y0 + (float64(x)-e.x0)/e.dxdy
		if y > yTop && y < yBot {
			r.crossings = append(r.crossings, y)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		xMid := e.xAt((y0 + y1) / 2)
		r.deposit(e.dir*float32(y1-y0), xMid, int(math.Floor(xMid)), xMin, xMax)
	}
}

// deposit records a piece of signed height c, centred at horizontal
// position x inside pixel column pix.
func (r *Rasteriser) deposit(c float32, x float64, pix, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(pix)))
	}
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entry, together with its offset.  The result is nil if all
// entries are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// horizontalEdgeThreshold is the smallest vertical extent for which an
// edge is kept.
const horizontalEdgeThreshold = 1e-10
