package displaylist

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BlendMode is a compositing operation. The Porter-Duff modes come first,
// followed by the separable and non-separable blend modes.
type BlendMode uint8

const (
	BlendClear           BlendMode = iota // 0
	BlendSource                           // S
	BlendDestination                      // D
	BlendSourceOver                       // S + D*(1-Sa) [default]
	BlendDestinationOver                  // S*(1-Da) + D
	BlendSourceIn                         // S*Da
	BlendDestinationIn                    // D*Sa
	BlendSourceOut                        // S*(1-Da)
	BlendDestinationOut                   // D*(1-Sa)
	BlendSourceAtop                       // S*Da + D*(1-Sa)
	BlendDestinationAtop                  // S*(1-Da) + D*Sa
	BlendXor                              // S*(1-Da) + D*(1-Sa)
	BlendPlus                             // min(S + D, 1)
	BlendModulate                         // S*D

	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	blendModeCount
)

var blendModeNames = [...]string{
	BlendClear:           "Clear",
	BlendSource:          "Source",
	BlendDestination:     "Destination",
	BlendSourceOver:      "SourceOver",
	BlendDestinationOver: "DestinationOver",
	BlendSourceIn:        "SourceIn",
	BlendDestinationIn:   "DestinationIn",
	BlendSourceOut:       "SourceOut",
	BlendDestinationOut:  "DestinationOut",
	BlendSourceAtop:      "SourceAtop",
	BlendDestinationAtop: "DestinationAtop",
	BlendXor:             "Xor",
	BlendPlus:            "Plus",
	BlendModulate:        "Modulate",
	BlendScreen:          "Screen",
	BlendOverlay:         "Overlay",
	BlendDarken:          "Darken",
	BlendLighten:         "Lighten",
	BlendColorDodge:      "ColorDodge",
	BlendColorBurn:       "ColorBurn",
	BlendHardLight:       "HardLight",
	BlendSoftLight:       "SoftLight",
	BlendDifference:      "Difference",
	BlendExclusion:       "Exclusion",
	BlendMultiply:        "Multiply",
	BlendHue:             "Hue",
	BlendSaturation:      "Saturation",
	BlendColor:           "Color",
	BlendLuminosity:      "Luminosity",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode returns the mode whose String matches name.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m), true
		}
	}
	return 0, false
}

// IsValid reports whether m is a known mode.
func (m BlendMode) IsValid() bool {
	return m < blendModeCount
}

// nopsOnTransparency reports whether drawing transparent black with m
// leaves the destination unchanged.
func (m BlendMode) nopsOnTransparency() bool {
	switch m {
	case BlendClear, BlendSource, BlendSourceIn, BlendDestinationIn,
		BlendSourceOut, BlendDestinationAtop, BlendModulate:
		return false
	}
	return true
}

// GPUBlendState returns the fixed-function blend state implementing m on
// premultiplied colors. The boolean is false for modes that need a shader.
func (m BlendMode) GPUBlendState() (gputypes.BlendState, bool) {
	var src, dst gputypes.BlendFactor
	switch m {
	case BlendClear:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorZero
	case BlendSource:
		return gputypes.BlendStateReplace(), true
	case BlendDestination:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOne
	case BlendSourceOver:
		return gputypes.BlendStatePremultiplied(), true
	case BlendDestinationOver:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne
	case BlendSourceIn:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero
	case BlendDestinationIn:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha
	case BlendSourceOut:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero
	case BlendDestinationOut:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendSourceAtop:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendDestinationAtop:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha
	case BlendXor:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendPlus:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOne
	case BlendModulate:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorSrc,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
		}, true
	case BlendScreen:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOneMinusSrc,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
		}, true
	default:
		return gputypes.BlendState{}, false
	}
	c := gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: gputypes.BlendOperationAdd}
	return gputypes.BlendState{Color: c, Alpha: c}, true
}

// Blend is the blending state of a paint: either a BlendMode or a custom
// Blender, never both. Paints start with BlendSourceOver; note that the
// zero Blend is BlendClear.
type Blend struct {
	mode    BlendMode
	blender Blender
}

// BlendWithMode returns a Blend using m.
func BlendWithMode(m BlendMode) Blend {
	return Blend{mode: m}
}

// BlendWithBlender returns a Blend using b. A nil b is BlendSourceOver.
func BlendWithBlender(b Blender) Blend {
	if b == nil {
		return defaultBlend()
	}
	return Blend{mode: BlendSourceOver, blender: b}
}

func defaultBlend() Blend {
	return Blend{mode: BlendSourceOver}
}

// Mode returns the blend mode. The boolean is false when a custom blender
// is in use.
func (b Blend) Mode() (BlendMode, bool) {
	if b.blender != nil {
		return 0, false
	}
	return b.mode, true
}

// Blender returns the custom blender, or nil.
func (b Blend) Blender() Blender {
	return b.blender
}

// IsDefault reports whether b is plain BlendSourceOver.
func (b Blend) IsDefault() bool {
	return b.blender == nil && b.mode == BlendSourceOver
}

// Equal reports whether both select the same mode or an equal blender.
func (b Blend) Equal(o Blend) bool {
	if b.blender != nil || o.blender != nil {
		return effectEqual(b.blender, o.blender)
	}
	return b.mode == o.mode
}

func (b Blend) String() string {
	if b.blender != nil {
		return fmt.Sprintf("Blender(%v)", b.blender)
	}
	return b.mode.String()
}
