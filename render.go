// Package mosaic approximates a target image by a stack of translucent,
// axis-aligned rectangles, improved one random mutation at a time.
package mosaic

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Renderer composites Genes into images.  The canvas, the drawing surface
// and the rasteriser are kept between calls, so that rendering the same
// size repeatedly does not allocate.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Scale is an integer magnification applied to every figure.
	// Values below 1 are treated as 1.
	Scale int

	canvas  *image.RGBA
	surface *image.NRGBA
	rast    *Rasteriser
	outline path.Data
	dirty   image.Rectangle
}

// NewRenderer returns a Renderer with scale 1.
func NewRenderer() *Renderer {
	return &Renderer{
		Scale: 1,
		rast:  NewRasteriser(rect.Rect{}),
	}
}

// Render draws the figures of g, in order, and returns the resulting
// opaque image of size g.Size times r.Scale.
//
// The canvas starts out opaque black and the drawing surface fully
// transparent.  Each figure overwrites its rectangle on the surface with
// the figure's color, and then the whole surface is blended onto the canvas,
// using the surface alpha as the blend weight.  Thus the surface accumulates
// all figures drawn so far, and earlier figures are blended in again every
// time a later figure is added.
//
// The returned image is owned by the Renderer and is overwritten by the
// next call to Render.
func (r *Renderer) Render(g *Gene) *image.RGBA {
	scale := max(r.Scale, 1)
	w, h := g.Size.X*scale, g.Size.Y*scale
	r.reset(w, h)
	r.rast.Reset(rect.Rect{URx: float64(w), URy: float64(h)})
	if scale > 1 {
		r.rast.CTM = matrix.Scale(float64(scale), float64(scale))
	}

	for _, f := range g.Figures {
		r.outline.Cmds = r.outline.Cmds[:0]
		r.outline.Coords = r.outline.Coords[:0]
		f.appendOutline(&r.outline)

		c := f.Color
		r.rast.Fill(&r.outline, func(y, xMin int, coverage []float32) {
			row := r.surface.Pix[r.surface.PixOffset(xMin, y):]
			for i, cov := range coverage {
				paint(row[4*i:4*i+4], c, cov)
			}
			r.dirty = r.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
		})
		r.composite()
	}

	return r.canvas
}

// reset prepares a black canvas and a transparent surface of size w×h.
func (r *Renderer) reset(w, h int) {
	bounds := image.Rect(0, 0, w, h)
	if r.canvas == nil || r.canvas.Rect != bounds {
		r.canvas = image.NewRGBA(bounds)
		r.surface = image.NewNRGBA(bounds)
	} else {
		clear(r.surface.Pix)
	}
	pix := r.canvas.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0xff
	}
	r.dirty = image.Rectangle{}
}

// composite blends the surface onto the canvas.  Pixels outside r.dirty
// are transparent on the surface and are skipped.
func (r *Renderer) composite() {
	for y := r.dirty.Min.Y; y < r.dirty.Max.Y; y++ {
		src := r.surface.Pix[r.surface.PixOffset(r.dirty.Min.X, y):]
		dst := r.canvas.Pix[r.canvas.PixOffset(r.dirty.Min.X, y):]
		for i := 0; i < 4*r.dirty.Dx(); i += 4 {
			a := src[i+3]
			if a == 0 {
				continue
			}
			dst[i] = blend(dst[i], src[i], a)
			dst[i+1] = blend(dst[i+1], src[i+1], a)
			dst[i+2] = blend(dst[i+2], src[i+2], a)
		}
	}
}

// paint sets a non-premultiplied surface pixel to c, weighted by the
// coverage cov.
func paint(px []uint8, c color.NRGBA, cov float32) {
	if cov >= 1 {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		return
	}
	px[0] = mix(px[0], c.R, cov)
	px[1] = mix(px[1], c.G, cov)
	px[2] = mix(px[2], c.B, cov)
	px[3] = mix(px[3], c.A, cov)
}

func mix(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}

// blend returns (dst*(255-a) + src*a)/255, rounded to the nearest integer.
func blend(dst, src, a uint8) uint8 {
	t := int(dst)*(255-int(a)) + int(src)*int(a) + 128
	return uint8((t + t>>8) >> 8)
}
