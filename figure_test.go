package mosaic

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestFigureBounds(t *testing.T) {
	cases := []struct {
		p, q image.Point
		want image.Rectangle
	}{
		{image.Pt(2, 3), image.Pt(5, 7), image.Rect(2, 3, 6, 8)},
		{image.Pt(5, 7), image.Pt(2, 3), image.Rect(2, 3, 6, 8)},
		{image.Pt(5, 3), image.Pt(2, 7), image.Rect(2, 3, 6, 8)},
		{image.Pt(4, 4), image.Pt(4, 4), image.Rect(4, 4, 5, 5)},
	}
	for _, tc := range cases {
		f := Figure{Points: [2]image.Point{tc.p, tc.q}}
		if got := f.Bounds(); got != tc.want {
			t.Errorf("Bounds(%v, %v) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestMutateColorScope(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	f := Figure{
		Color:  color.NRGBA{R: 10, G: 20, B: 30, A: 40},
		Points: [2]image.Point{{1, 2}, {3, 4}},
	}

	changed := 0
	for range 500 {
		g := f.mutateColor(rng)
		if g.Points != f.Points {
			t.Fatalf("color mutation moved points: %v -> %v", f.Points, g.Points)
		}
		n := channelDiff(f.Color, g.Color)
		if n > 1 {
			t.Fatalf("color mutation changed %d channels: %v -> %v", n, f.Color, g.Color)
		}
		changed += n
	}
	if changed < 400 {
		t.Errorf("only %d of 500 color mutations had an effect", changed)
	}
}

func TestMutateKinds(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	size := image.Pt(64, 64)
	f := Figure{
		Color:  color.NRGBA{R: 1, G: 2, B: 3, A: 4},
		Points: [2]image.Point{{10, 10}, {20, 20}},
	}

	var colorChanges, pointChanges int
	for range 1000 {
		g := f.Mutate(rng, size)
		colorChanged := g.Color != f.Color
		pointsChanged := g.Points != f.Points
		if colorChanged && pointsChanged {
			t.Fatalf("one mutation changed color and points: %v -> %v", f, g)
		}
		if colorChanged {
			colorChanges++
		}
		if pointsChanged {
			pointChanges++
		}
	}
	if colorChanges < 350 || pointChanges < 350 {
		t.Errorf("unbalanced mutations: %d color, %d point", colorChanges, pointChanges)
	}
}

func TestMutateLeavesReceiver(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	f := Figure{
		Color:  color.NRGBA{R: 100, G: 110, B: 120, A: 130},
		Points: [2]image.Point{{0, 0}, {9, 9}},
	}
	orig := f
	for range 100 {
		_ = f.Mutate(rng, image.Pt(10, 10))
	}
	if f != orig {
		t.Errorf("receiver modified: %v -> %v", orig, f)
	}
}

func TestMutateStaysInside(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	size := image.Pt(7, 5)
	canvas := image.Rectangle{Max: size}

	f := Figure{Points: [2]image.Point{{0, 0}, {6, 4}}}
	for i := range 2000 {
		f = f.Mutate(rng, size)
		for _, p := range f.Points {
			if !p.In(canvas) {
				t.Fatalf("after %d mutations: point %v outside %v", i+1, p, canvas)
			}
		}
	}
}

func channelDiff(a, b color.NRGBA) int {
	n := 0
	for _, d := range [4]bool{a.R != b.R, a.G != b.G, a.B != b.B, a.A != b.A} {
		if d {
			n++
		}
	}
	return n
}
