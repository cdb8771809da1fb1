package displaylist

import (
	"image"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/displaylist/geom"
)

func TestEffectConstructorsDisable(t *testing.T) {
	nan := math32.NaN()
	stops := []GradientStop{{0, Red}, {1, Blue}}
	tests := []struct {
		name     string
		disabled bool
	}{
		{"blur nan", NewBlurImageFilter(nan, 1, TileClamp) == nil},
		{"blur zero", NewBlurImageFilter(0, 0, TileClamp) == nil},
		{"dilate negative", NewDilateImageFilter(-1, 0) == nil},
		{"erode inf", NewErodeImageFilter(math32.Inf(1), 1) == nil},
		{"identity matrix", NewMatrixImageFilter(geom.Identity33(), SamplingLinear) == nil},
		{"compose nil", NewComposeImageFilter(nil, nil) == nil},
		{"color filter nil", NewColorFilterImageFilter(nil) == nil},
		{"mask sigma zero", NewBlurMaskFilter(BlurNormal, 0, false) == nil},
		{"mask sigma nan", NewBlurMaskFilter(BlurNormal, nan, false) == nil},
		{"dash odd", NewDashPathEffect([]float32{1, 2, 3}, 0) == nil},
		{"dash zero sum", NewDashPathEffect([]float32{0, 0}, 0) == nil},
		{"blend dst", NewBlendColorFilter(Red, BlendDestination) == nil},
		{"blend transparent src over", NewBlendColorFilter(Transparent, BlendSourceOver) == nil},
		{"matrix nan", NewMatrixColorFilter([20]float32{0: nan}) == nil},
		{"gradient one stop", NewLinearGradient(geom.Pt(0, 0), geom.Pt(1, 0), stops[:1], TileClamp) == nil},
		{"radial zero radius", NewRadialGradient(geom.Pt(0, 0), 0, stops, TileClamp) == nil},
		{"image source nil", NewImageColorSource(nil, TileClamp, TileClamp, SamplingLinear) == nil},
		{"blender inf", NewArithmeticBlender(math32.Inf(-1), 0, 0, 0, false) == nil},
	}
	for _, tt := range tests {
		if !tt.disabled {
			t.Errorf("%s: constructor returned non-nil", tt.name)
		}
	}
}

func TestEffectEqual(t *testing.T) {
	blur := NewBlurImageFilter(2, 3, TileDecal)
	if !effectEqual(blur, NewBlurImageFilter(2, 3, TileDecal)) {
		t.Error("equal blurs compare unequal")
	}
	if effectEqual(blur, NewBlurImageFilter(2, 3, TileClamp)) {
		t.Error("blurs with different tile modes compare equal")
	}
	if effectEqual(blur, NewDilateImageFilter(2, 3)) {
		t.Error("blur equals dilate")
	}
	if effectEqual(blur, nil) || effectEqual(nil, blur) {
		t.Error("filter equals nil")
	}
	var none ImageFilter
	if !effectEqual(none, nil) {
		t.Error("nil != nil")
	}

	compose := NewComposeImageFilter(blur, NewDilateImageFilter(1, 1))
	if !effectEqual(compose, NewComposeImageFilter(NewBlurImageFilter(2, 3, TileDecal), NewDilateImageFilter(1, 1))) {
		t.Error("equal compose filters compare unequal")
	}
	if !effectEqual(SRGBToLinearGamma(), SRGBToLinearGamma()) || effectEqual(SRGBToLinearGamma(), LinearToSRGBGamma()) {
		t.Error("gamma filters compare wrong")
	}
}

func TestImageFilterBounds(t *testing.T) {
	in := geom.MakeLTRB(10, 10, 20, 20)
	scale := geom.Scale44(2, 2).AsM33()

	tests := []struct {
		name   string
		f      ImageFilter
		local  geom.Rect
		device geom.Rect
	}{
		{"blur", NewBlurImageFilter(1, 2, TileClamp), geom.MakeLTRB(7, 4, 23, 26), geom.MakeLTRB(4, -2, 26, 32)},
		{"dilate", NewDilateImageFilter(1, 1), geom.MakeLTRB(9, 9, 21, 21), geom.MakeLTRB(8, 8, 22, 22)},
		{"erode", NewErodeImageFilter(1, 1), geom.MakeLTRB(11, 11, 19, 19), geom.MakeLTRB(12, 12, 18, 18)},
		{"compose", NewComposeImageFilter(NewDilateImageFilter(1, 1), NewDilateImageFilter(2, 2)),
			geom.MakeLTRB(7, 7, 23, 23), geom.MakeLTRB(4, 4, 26, 26)},
		{"matrix", NewMatrixImageFilter(geom.Affine44(1, 0, 5, 0, 1, 0).AsM33(), SamplingNearest),
			geom.MakeLTRB(15, 10, 25, 20), geom.MakeLTRB(20, 10, 30, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, ok := tt.f.MapLocalBounds(in)
			if !ok || !rectNear(local, tt.local) {
				t.Errorf("MapLocalBounds() = %v, %v, want %v", local, ok, tt.local)
			}
			device, ok := tt.f.MapDeviceBounds(in, scale)
			if !ok || !rectNear(device, tt.device) {
				t.Errorf("MapDeviceBounds() = %v, %v, want %v", device, ok, tt.device)
			}
		})
	}
}

func TestImageFilterPerspectiveFails(t *testing.T) {
	persp := geom.Identity33()
	persp[6] = 0.01
	if _, ok := NewBlurImageFilter(1, 1, TileClamp).MapDeviceBounds(geom.MakeWH(10, 10), persp); ok {
		t.Error("blur MapDeviceBounds() ok = true under perspective")
	}
}

func TestColorFilterTransparency(t *testing.T) {
	tests := []struct {
		name     string
		f        ColorFilter
		modifies bool
		commutes bool
	}{
		{"blend src over", NewBlendColorFilter(Red, BlendSourceOver), true, false},
		{"blend src in", NewBlendColorFilter(Red, BlendSourceIn), false, false},
		{"identity matrix", NewMatrixColorFilter([20]float32{0: 1, 6: 1, 12: 1, 18: 1}), false, true},
		{"translating matrix", NewMatrixColorFilter([20]float32{0: 1, 6: 1, 12: 1, 18: 1, 19: 0.5}), true, false},
		{"gamma", SRGBToLinearGamma(), false, true},
	}
	for _, tt := range tests {
		if got := tt.f.ModifiesTransparentBlack(); got != tt.modifies {
			t.Errorf("%s: ModifiesTransparentBlack() = %v, want %v", tt.name, got, tt.modifies)
		}
		if got := tt.f.CanCommuteWithOpacity(); got != tt.commutes {
			t.Errorf("%s: CanCommuteWithOpacity() = %v, want %v", tt.name, got, tt.commutes)
		}
	}

	wrapped := NewColorFilterImageFilter(NewBlendColorFilter(Red, BlendSourceOver))
	if _, ok := wrapped.MapLocalBounds(geom.MakeWH(1, 1)); ok {
		t.Error("MapLocalBounds() ok = true for a filter that floods")
	}
}

func TestColorSourceOpaque(t *testing.T) {
	img := FromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	stops := []GradientStop{{0, Red}, {1, Blue}}
	tests := []struct {
		name string
		s    ColorSource
		want bool
	}{
		{"color", NewColorSource(Red), true},
		{"translucent color", NewColorSource(Red.WithAlpha(1)), false},
		{"linear", NewLinearGradient(geom.Pt(0, 0), geom.Pt(1, 0), stops, TileClamp), true},
		{"linear decal", NewLinearGradient(geom.Pt(0, 0), geom.Pt(1, 0), stops, TileDecal), false},
		{"radial translucent", NewRadialGradient(geom.Pt(0, 0), 1, []GradientStop{{0, Red}, {1, Transparent}}, TileClamp), false},
		{"image", NewImageColorSource(img, TileRepeat, TileRepeat, SamplingLinear), false},
	}
	for _, tt := range tests {
		if got := tt.s.IsOpaque(); got != tt.want {
			t.Errorf("%s: IsOpaque() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPaintNopsOnTransparency(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
		want bool
	}{
		{"default", func(*Builder) {}, true},
		{"clear", func(b *Builder) { b.SetBlendMode(BlendClear) }, false},
		{"blender", func(b *Builder) { b.SetBlender(NewArithmeticBlender(0, 0, 0, 1, false)) }, false},
		{"flooding color filter", func(b *Builder) { b.SetColorFilter(NewBlendColorFilter(Red, BlendSourceOver)) }, false},
		{"blur", func(b *Builder) { b.SetImageFilter(NewBlurImageFilter(1, 1, TileClamp)) }, true},
	}
	for _, tt := range tests {
		b := newTestBuilder()
		tt.fn(b)
		if got := b.paintNopsOnTransparency(); got != tt.want {
			t.Errorf("%s: paintNopsOnTransparency() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
