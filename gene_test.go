package mosaic

import (
	"bytes"
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGenerateShoelace(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	size := image.Pt(16, 16)
	g := Generate(rng, size, 50, ShoelaceArea)

	if g.Size != size {
		t.Errorf("size %v, want %v", g.Size, size)
	}
	if len(g.Figures) != 50 {
		t.Errorf("%d figures, want 50", len(g.Figures))
	}
	for i, f := range g.Figures {
		for _, p := range f.Points {
			if !p.In(image.Rectangle{Max: size}) {
				t.Errorf("figure %d: point %v outside the canvas", i, p)
			}
		}
	}
}

func TestGenerateBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	size := image.Pt(32, 32)
	limit := float64(size.X*size.Y) / 16

	g := Generate(rng, size, 200, BoundingBoxArea)
	if len(g.Figures) > 200 {
		t.Fatalf("%d figures, want at most 200", len(g.Figures))
	}
	if len(g.Figures) == 0 {
		t.Fatal("no figure passed the filter")
	}
	for i, f := range g.Figures {
		if a := BoundingBoxArea.Area(f); a >= limit {
			t.Errorf("figure %d: area %g not below %g", i, a, limit)
		}
	}
}

func TestGenerateZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	g := Generate(rng, image.Pt(8, 8), 0, ShoelaceArea)
	if len(g.Figures) != 0 {
		t.Errorf("%d figures, want 0", len(g.Figures))
	}
}

func TestMutateIsolation(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	parent := Generate(rng, image.Pt(24, 24), 40, ShoelaceArea)
	before := slices.Clone(parent.Render().Pix)
	figures := slices.Clone(parent.Figures)

	child := parent
	for range 500 {
		child = child.Mutate(rng)
	}
	child.Figures[0].Color.A ^= 0xff

	if !slices.Equal(parent.Figures, figures) {
		t.Error("mutating descendants changed the parent's figures")
	}
	if after := parent.Render().Pix; !bytes.Equal(before, after) {
		t.Error("mutating descendants changed the parent's rendering")
	}
}

func TestMutateSingleFigure(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	parent := Generate(rng, image.Pt(24, 24), 10, ShoelaceArea)

	for range 200 {
		child := parent.Mutate(rng)
		if child == parent {
			t.Fatal("Mutate returned its receiver")
		}
		if child.Size != parent.Size || len(child.Figures) != len(parent.Figures) {
			t.Fatal("Mutate changed the shape of the gene")
		}
		changed := 0
		for i := range child.Figures {
			if child.Figures[i] != parent.Figures[i] {
				changed++
			}
		}
		if changed > 1 {
			t.Fatalf("%d figures changed, want at most 1", changed)
		}
	}
}

func TestMutateEmptyGene(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 6))
	g := &Gene{Size: image.Pt(5, 5)}
	child := g.Mutate(rng)
	if child == g {
		t.Error("Mutate returned its receiver")
	}
	if child.Size != g.Size || len(child.Figures) != 0 {
		t.Errorf("got %+v, want an empty 5x5 gene", child)
	}
}

func TestParseAreaFilter(t *testing.T) {
	cases := []struct {
		in   string
		want AreaFilter
		ok   bool
	}{
		{"", ShoelaceArea, true},
		{"shoelace", ShoelaceArea, true},
		{"bbox", BoundingBoxArea, true},
		{"circle", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAreaFilter(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseAreaFilter(%q): unexpected error state %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseAreaFilter(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if tc.ok && tc.in != "" && got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
}
