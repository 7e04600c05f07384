package mosaic

import (
	"math"
	"testing"
)

func TestBlendValues(t *testing.T) {
	cases := []struct {
		dst, src, a uint8
		want        uint8
	}{
		{1, 0, 128, 0}, // 127/255 rounds down
		{0, 1, 128, 1}, // 128/255 rounds up
		{100, 200, 128, 150},
		{0, 200, 128, 100},
		{37, 250, 0, 37},
		{37, 250, 255, 250},
		{255, 0, 1, 254},
	}
	for _, tc := range cases {
		if got := blend(tc.dst, tc.src, tc.a); got != tc.want {
			t.Errorf("blend(%d, %d, %d) = %d, want %d", tc.dst, tc.src, tc.a, got, tc.want)
		}
	}
}

// TestBlendRounding compares blend with exact rounding for all inputs.
func TestBlendRounding(t *testing.T) {
	mismatches := 0
	for dst := range 256 {
		for src := range 256 {
			for a := range 256 {
				x := float64(dst*(255-a) + src*a)
				want := uint8(math.Round(x / 255))
				got := blend(uint8(dst), uint8(src), uint8(a))
				if got != want {
					if mismatches < 10 {
						t.Errorf("blend(%d, %d, %d) = %d, want %d", dst, src, a, got, want)
					}
					mismatches++
				}
			}
		}
	}
	if mismatches > 0 {
		t.Errorf("%d mismatches", mismatches)
	}
}
