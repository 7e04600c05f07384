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

// Package imagefile reads source images and writes the frames produced
// during a mosaic run.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrMissingInput is returned by Load if the source file does not exist.
	ErrMissingInput = errors.New("input image not found")

	// ErrNotSquare is returned by Square if no size is given and the image
	// is not square.
	ErrNotSquare = errors.New("image is not square")
)

// Load decodes the image stored in the named file.  PNG, JPEG, GIF, BMP,
// TIFF and WebP files are recognised.
func Load(name string) (img image.Image, err error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
	} else if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// Square returns an opaque copy of img with its origin at (0, 0).
// If size is positive, the image is resampled to size×size pixels;
// otherwise img must already be square and is copied unchanged.
// Any alpha channel is dropped, without compositing.
func Square(img image.Image, size int) (*image.RGBA, error) {
	b := img.Bounds()
	if size <= 0 {
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, b.Dx(), b.Dy())
		}
		size = b.Dx()
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, size, size))
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(tmp, tmp.Rect, img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(tmp, tmp.Rect, img, b, draw.Src, nil)
	}

	out := image.NewRGBA(tmp.Rect)
	for i := 0; i < len(tmp.Pix); i += 4 {
		copy(out.Pix[i:i+3], tmp.Pix[i:i+3])
		out.Pix[i+3] = 0xff
	}
	return out, nil
}

// SavePNG writes img to the named file in PNG format.  The data is first
// written to a temporary file in the same directory, so that an existing
// file is never left truncated.  The file is readable by everyone.
func SavePNG(name string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), ".frame-*.png")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	err = png.Encode(f, img)
	if err == nil {
		err = f.Chmod(0o644)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return os.Rename(tmpName, name)
}

// Frames writes numbered snapshots into a directory.
type Frames struct {
	Dir string
}

// Path returns the file name used for the snapshot with the given index.
func (fr *Frames) Path(index int) string {
	return filepath.Join(fr.Dir, fmt.Sprintf("%d.png", index))
}

// Write stores img as snapshot number index, creating the directory if
// needed.
func (fr *Frames) Write(index int, img image.Image) error {
	if err := os.MkdirAll(fr.Dir, 0o755); err != nil {
		return err
	}
	return SavePNG(fr.Path(index), img)
}
