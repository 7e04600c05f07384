package mosaic

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func randomImage(rng *rand.Rand, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

func TestFitnessIdentical(t *testing.T) {
	img := randomImage(rand.New(rand.NewPCG(1, 1)), 13, 9)
	got, err := Fitness(img, img)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Fitness(img, img) = %g, want 0", got)
	}
}

func TestFitnessSinglePixel(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 3, 3))
	b := image.NewRGBA(image.Rect(0, 0, 3, 3))
	a.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	b.SetRGBA(1, 2, color.RGBA{R: 13, G: 16, B: 30, A: 7})

	got, err := Fitness(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("Fitness = %g, want 5", got)
	}

	// symmetric
	got, _ = Fitness(b, a)
	if got != 5 {
		t.Errorf("reversed Fitness = %g, want 5", got)
	}
}

func TestFitnessSubImage(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	big := randomImage(rng, 20, 20)
	ref := image.NewRGBA(image.Rect(0, 0, 5, 4))
	for y := range 4 {
		for x := range 5 {
			ref.SetRGBA(x, y, big.RGBAAt(x+7, y+3))
		}
	}

	sub := big.SubImage(image.Rect(7, 3, 12, 7)).(*image.RGBA)
	got, err := Fitness(sub, ref)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Fitness = %g, want 0", got)
	}
}

func TestFitnessSizeMismatch(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 4, 4))
	b := image.NewRGBA(image.Rect(0, 0, 4, 5))
	_, err := Fitness(a, b)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("got error %v, want ErrSizeMismatch", err)
	}
}
