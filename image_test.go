package displaylist

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/displaylist/geom"
)

func TestFromImage(t *testing.T) {
	if FromImage(nil) != nil {
		t.Error("FromImage(nil) != nil")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img := FromImage(rgba)
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.IsOpaque() {
		t.Error("transparent image IsOpaque() = true")
	}
	if img.Source() != image.Image(rgba) {
		t.Error("Source() does not return the wrapped image")
	}
	if got := imageBounds(img); !rectNear(got, geom.MakeWH(4, 3)) {
		t.Errorf("imageBounds() = %v", got)
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	if !FromImage(gray).IsOpaque() {
		t.Error("gray image IsOpaque() = false")
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			rgba.Set(x, y, color.White)
		}
	}
	if !FromImage(rgba).IsOpaque() {
		t.Error("filled image IsOpaque() = false")
	}
}

func TestSampling(t *testing.T) {
	tests := []struct {
		s    Sampling
		name string
		want draw.Interpolator
	}{
		{SamplingNearest, "Nearest", draw.NearestNeighbor},
		{SamplingLinear, "Linear", draw.ApproxBiLinear},
		{SamplingMipmapLinear, "MipmapLinear", draw.BiLinear},
		{SamplingCubic, "Cubic", draw.CatmullRom},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.s.Interpolator(); got != tt.want {
			t.Errorf("%v.Interpolator() = %v, want %v", tt.s, got, tt.want)
		}
	}
	if got := Sampling(9).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
	if FilterLinear.Sampling() != SamplingLinear || FilterNearest.Sampling() != SamplingNearest {
		t.Error("FilterMode.Sampling() mismatch")
	}
}
