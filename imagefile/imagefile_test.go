package imagefile

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nothing.png"))
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("got error %v, want ErrMissingInput", err)
	}
}

func TestLoadGarbage(t *testing.T) {
	name := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(name, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(name)
	if err == nil || errors.Is(err, ErrMissingInput) {
		t.Errorf("got error %v, want a decoding error", err)
	}
}

func TestSaveLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	name := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(name, img); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != 0o644 {
		t.Errorf("file mode %v, want %v", perm, os.FileMode(0o644))
	}

	back, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if back.Bounds() != img.Rect {
		t.Fatalf("bounds %v, want %v", back.Bounds(), img.Rect)
	}
	for y := range 5 {
		for x := range 7 {
			r1, g1, b1, a1 := img.At(x, y).RGBA()
			r2, g2, b2, a2 := back.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d, %d) differs after round trip", x, y)
			}
		}
	}

	entries, err := os.ReadDir(filepath.Dir(name))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("%d files left in the directory, want 1", len(entries))
	}
}

func TestSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 10, 11))
	for i := range src.Pix {
		src.Pix[i] = 100
	}
	src.SetNRGBA(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out, err := Square(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rect != image.Rect(0, 0, 8, 8) {
		t.Fatalf("bounds %v, want 8x8 at the origin", out.Rect)
	}
	if got, want := out.RGBAAt(0, 0), (color.RGBA{R: 10, G: 20, B: 30, A: 255}); got != want {
		t.Errorf("pixel (0, 0) = %v, want %v", got, want)
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("pixel %d is not opaque", i/4)
		}
	}
}

func TestSquareResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 20))
	out, err := Square(src, 16)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rect != image.Rect(0, 0, 16, 16) {
		t.Errorf("bounds %v, want 16x16", out.Rect)
	}
}

func TestSquareRejects(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 20))
	if _, err := Square(src, 0); !errors.Is(err, ErrNotSquare) {
		t.Errorf("got error %v, want ErrNotSquare", err)
	}
}

func TestFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames", "run1")
	fr := &Frames{Dir: dir}

	if got, want := fr.Path(12), filepath.Join(dir, "12.png"); got != want {
		t.Errorf("Path(12) = %q, want %q", got, want)
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for _, i := range []int{0, 1, 2} {
		if err := fr.Write(i, img); err != nil {
			t.Fatal(err)
		}
	}
	for _, i := range []int{0, 1, 2} {
		if _, err := os.Stat(fr.Path(i)); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}
}
