package displaylist

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBlendModeString(t *testing.T) {
	for m := BlendClear; m < blendModeCount; m++ {
		name := m.String()
		got, ok := ParseBlendMode(name)
		if !ok || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v, want %v", name, got, ok, m)
		}
	}
	if got := BlendMode(200).String(); got != "BlendMode(200)" {
		t.Errorf("String() = %q, want BlendMode(200)", got)
	}
	if _, ok := ParseBlendMode("Nope"); ok {
		t.Error("ParseBlendMode(Nope) ok = true")
	}
	if BlendMode(200).IsValid() || !BlendLuminosity.IsValid() {
		t.Error("IsValid() misclassifies modes")
	}
}

func TestNopsOnTransparency(t *testing.T) {
	nops := map[BlendMode]bool{
		BlendClear:           false,
		BlendSource:          false,
		BlendSourceIn:        false,
		BlendDestinationIn:   false,
		BlendSourceOut:       false,
		BlendDestinationAtop: false,
		BlendModulate:        false,
		BlendSourceOver:      true,
		BlendDestination:     true,
		BlendPlus:            true,
		BlendScreen:          true,
		BlendMultiply:        true,
	}
	for m, want := range nops {
		if got := m.nopsOnTransparency(); got != want {
			t.Errorf("%v.nopsOnTransparency() = %v, want %v", m, got, want)
		}
	}
}

func TestGPUBlendState(t *testing.T) {
	state, ok := BlendSourceOver.GPUBlendState()
	if !ok || state != gputypes.BlendStatePremultiplied() {
		t.Errorf("SourceOver.GPUBlendState() = %+v, %v", state, ok)
	}
	state, ok = BlendSource.GPUBlendState()
	if !ok || state != gputypes.BlendStateReplace() {
		t.Errorf("Source.GPUBlendState() = %+v, %v", state, ok)
	}
	state, ok = BlendPlus.GPUBlendState()
	if !ok || state.Color.SrcFactor != gputypes.BlendFactorOne || state.Color.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("Plus.GPUBlendState() = %+v, %v", state, ok)
	}
	state, ok = BlendDestinationIn.GPUBlendState()
	if !ok || state.Alpha.DstFactor != gputypes.BlendFactorSrcAlpha {
		t.Errorf("DestinationIn.GPUBlendState() = %+v, %v", state, ok)
	}
	for _, m := range []BlendMode{BlendOverlay, BlendHue, BlendColorBurn} {
		if _, ok := m.GPUBlendState(); ok {
			t.Errorf("%v.GPUBlendState() ok = true, want false", m)
		}
	}
}

func TestBlend(t *testing.T) {
	def := NewPaint().Blend
	if !def.IsDefault() {
		t.Error("NewPaint().Blend.IsDefault() = false")
	}
	if (Blend{}).IsDefault() {
		t.Error("zero Blend.IsDefault() = true, want false (BlendClear)")
	}
	if !BlendWithBlender(nil).Equal(def) {
		t.Error("BlendWithBlender(nil) != default")
	}

	a := BlendWithBlender(NewArithmeticBlender(0, 1, 1, 0, false))
	b := BlendWithBlender(NewArithmeticBlender(0, 1, 1, 0, false))
	if !a.Equal(b) {
		t.Error("equal blenders compare unequal")
	}
	if a.Equal(def) || def.Equal(a) {
		t.Error("blender equals a plain mode")
	}
	if _, ok := a.Mode(); ok {
		t.Error("Mode() ok = true with a blender")
	}
	if got := BlendWithMode(BlendXor).String(); got != "Xor" {
		t.Errorf("String() = %q, want Xor", got)
	}
}
