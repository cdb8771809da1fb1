package displaylist

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied 32-bit color packed as 0xAARRGGBB.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB creates a color from alpha, red, green and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// Opacity returns the alpha component in [0, 1].
func (c Color) Opacity() float32 {
	return float32(c.Alpha()) / 255
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool { return c.Alpha() == 0xFF }

// IsTransparent reports whether alpha is 0.
func (c Color) IsTransparent() bool { return c.Alpha() == 0 }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// ModulateOpacity scales the alpha of c by opacity in [0, 1].
func (c Color) ModulateOpacity(opacity float32) Color {
	a := float32(c.Alpha())*opacity + 0.5
	switch {
	case a <= 0:
		return c.WithAlpha(0)
	case a >= 255:
		return c.WithAlpha(255)
	}
	return c.WithAlpha(uint8(a))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
