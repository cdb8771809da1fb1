package displaylist

import (
	"image/color"
	"testing"
)

func TestColorComponents(t *testing.T) {
	c := ARGB(0x80, 0x11, 0x22, 0x33)
	if c.Alpha() != 0x80 || c.Red() != 0x11 || c.Green() != 0x22 || c.Blue() != 0x33 {
		t.Errorf("components of %v = %d %d %d %d", c, c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
	if got := c.String(); got != "#80112233" {
		t.Errorf("String() = %q, want %q", got, "#80112233")
	}
	if RGB(0xFF, 0, 0) != Red {
		t.Errorf("RGB(255, 0, 0) = %v, want %v", RGB(0xFF, 0, 0), Red)
	}
}

func TestColorOpacity(t *testing.T) {
	tests := []struct {
		c           Color
		opaque      bool
		transparent bool
	}{
		{Black, true, false},
		{Transparent, false, true},
		{Red.WithAlpha(0x7F), false, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsOpaque(); got != tt.opaque {
			t.Errorf("%v.IsOpaque() = %v, want %v", tt.c, got, tt.opaque)
		}
		if got := tt.c.IsTransparent(); got != tt.transparent {
			t.Errorf("%v.IsTransparent() = %v, want %v", tt.c, got, tt.transparent)
		}
	}
	if got := White.Opacity(); got != 1 {
		t.Errorf("Opacity() = %v, want 1", got)
	}
}

func TestModulateOpacity(t *testing.T) {
	tests := []struct {
		c       Color
		opacity float32
		want    Color
	}{
		{Red, 0.5, Red.WithAlpha(128)},
		{Red, 0, Red.WithAlpha(0)},
		{Red, 2, Red},
		{Red.WithAlpha(100), 1, Red.WithAlpha(100)},
	}
	for _, tt := range tests {
		if got := tt.c.ModulateOpacity(tt.opacity); got != tt.want {
			t.Errorf("%v.ModulateOpacity(%v) = %v, want %v", tt.c, tt.opacity, got, tt.want)
		}
	}
}

func TestColorStdlibConversion(t *testing.T) {
	c := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if c != ARGB(40, 10, 20, 30) {
		t.Errorf("FromColor() = %v, want %v", c, ARGB(40, 10, 20, 30))
	}
	if back := FromColor(c); back != c {
		t.Errorf("FromColor(Color) = %v, want %v", back, c)
	}
}
