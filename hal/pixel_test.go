//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(RGB565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("round trip %v = %d,%d,%d", tt, r, g, b)
		}
	}
}

func TestRGBAtAndToRGBA(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.ClearRGB(255, 0, 0)

	if got, want := RGBAt(fb, 3, 2), (color.RGBA{R: 255, A: 255}); got != want {
		t.Fatalf("RGBAt(3,2) = %+v, want %+v", got, want)
	}
	if got := RGBAt(fb, 4, 0); got != (color.RGBA{}) {
		t.Fatalf("RGBAt(out of bounds) = %+v, want zero", got)
	}

	img := ToRGBA(fb, nil)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("ToRGBA() bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("ToRGBA().RGBAAt(1,1) = %+v", got)
	}
	if again := ToRGBA(fb, img); again != img {
		t.Fatalf("ToRGBA() reallocated a matching image")
	}
}
