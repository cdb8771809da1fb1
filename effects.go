package displaylist

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/gogpu/displaylist/geom"
)

// Effects are shared, immutable paint attributes. Concrete effects are
// pointer types created by the New* constructors, so interface values can
// be compared cheaply for identity before falling back to Equal.
// Constructors return nil when their parameters disable the effect.

// ColorSource shades the pixels covered by a draw.
type ColorSource interface {
	Equal(ColorSource) bool
	// IsOpaque reports whether every shaded pixel is opaque.
	IsOpaque() bool
}

// ColorFilter transforms the colors produced by a draw.
type ColorFilter interface {
	Equal(ColorFilter) bool
	// ModifiesTransparentBlack reports whether the filter turns transparent
	// black into a visible color, which makes it affect pixels outside the
	// geometry of a draw.
	ModifiesTransparentBlack() bool
	// CanCommuteWithOpacity reports whether filtering then applying an
	// opacity gives the same result as the reverse.
	CanCommuteWithOpacity() bool
}

// ImageFilter post-processes the rendered output of a draw or layer.
type ImageFilter interface {
	Equal(ImageFilter) bool
	ModifiesTransparentBlack() bool
	// MapLocalBounds returns the bounds of the filter output for input
	// bounds in local coordinates. It returns false when the output bounds
	// cannot be determined.
	MapLocalBounds(in geom.Rect) (geom.Rect, bool)
	// MapDeviceBounds returns the device bounds of the filter output for
	// device input bounds rendered under ctm.
	MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool)
}

// PathEffect alters geometry before it is stroked or filled.
type PathEffect interface {
	Equal(PathEffect) bool
	// EffectBounds returns the bounds of the altered geometry.
	EffectBounds(in geom.Rect) (geom.Rect, bool)
}

// MaskFilter alters the coverage mask of a draw.
type MaskFilter interface {
	Equal(MaskFilter) bool
	// Outset returns how far the mask may extend beyond the geometry.
	Outset() float32
}

// Blender is a custom blend function used in place of a BlendMode.
type Blender interface {
	Equal(Blender) bool
}

// effectEqual compares two effects by identity, then by value.
func effectEqual[T interface {
	comparable
	Equal(T) bool
}](a, b T) bool {
	var zero T
	if a == b {
		return true
	}
	if a == zero || b == zero {
		return false
	}
	return a.Equal(b)
}

// TileMode selects how a color source or filter samples outside its
// content.
type TileMode uint8

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
	TileDecal
)

// ----------------------------------------------------------------------------
// Color sources
// ----------------------------------------------------------------------------

// ColorColorSource shades with a single color.
type ColorColorSource struct {
	color Color
}

// NewColorSource returns a color source that shades with c.
func NewColorSource(c Color) ColorSource {
	return &ColorColorSource{color: c}
}

func (s *ColorColorSource) Color() Color   { return s.color }
func (s *ColorColorSource) IsOpaque() bool { return s.color.IsOpaque() }

func (s *ColorColorSource) Equal(o ColorSource) bool {
	c, ok := o.(*ColorColorSource)
	return ok && s.color == c.color
}

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Offset float32
	Color  Color
}

func stopsOpaque(stops []GradientStop) bool {
	for _, s := range stops {
		if !s.Color.IsOpaque() {
			return false
		}
	}
	return true
}

// LinearGradient shades along the line from Start to End.
type LinearGradient struct {
	Start, End geom.Point
	Stops      []GradientStop
	Tile       TileMode
}

// NewLinearGradient returns a linear gradient. It returns nil when fewer
// than two stops are given.
func NewLinearGradient(start, end geom.Point, stops []GradientStop, tile TileMode) ColorSource {
	if len(stops) < 2 {
		return nil
	}
	return &LinearGradient{Start: start, End: end, Stops: slices.Clone(stops), Tile: tile}
}

func (g *LinearGradient) IsOpaque() bool {
	return g.Tile != TileDecal && stopsOpaque(g.Stops)
}

func (g *LinearGradient) Equal(o ColorSource) bool {
	l, ok := o.(*LinearGradient)
	return ok && g.Start == l.Start && g.End == l.End && g.Tile == l.Tile && slices.Equal(g.Stops, l.Stops)
}

// RadialGradient shades outward from Center.
type RadialGradient struct {
	Center geom.Point
	Radius float32
	Stops  []GradientStop
	Tile   TileMode
}

// NewRadialGradient returns a radial gradient. It returns nil when fewer
// than two stops are given or the radius is not positive.
func NewRadialGradient(center geom.Point, radius float32, stops []GradientStop, tile TileMode) ColorSource {
	if len(stops) < 2 || !(radius > 0) || !geom.IsFinite(radius) {
		return nil
	}
	return &RadialGradient{Center: center, Radius: radius, Stops: slices.Clone(stops), Tile: tile}
}

func (g *RadialGradient) IsOpaque() bool {
	return g.Tile != TileDecal && stopsOpaque(g.Stops)
}

func (g *RadialGradient) Equal(o ColorSource) bool {
	r, ok := o.(*RadialGradient)
	return ok && g.Center == r.Center && g.Radius == r.Radius && g.Tile == r.Tile && slices.Equal(g.Stops, r.Stops)
}

// ImageColorSource shades with an image.
type ImageColorSource struct {
	Image        Image
	TileX, TileY TileMode
	Sampling     Sampling
}

// NewImageColorSource returns a color source that tiles img. It returns
// nil for a nil image.
func NewImageColorSource(img Image, tx, ty TileMode, sampling Sampling) ColorSource {
	if img == nil {
		return nil
	}
	return &ImageColorSource{Image: img, TileX: tx, TileY: ty, Sampling: sampling}
}

func (s *ImageColorSource) IsOpaque() bool {
	return s.TileX != TileDecal && s.TileY != TileDecal && s.Image.IsOpaque()
}

func (s *ImageColorSource) Equal(o ColorSource) bool {
	i, ok := o.(*ImageColorSource)
	return ok && s.Image == i.Image && s.TileX == i.TileX && s.TileY == i.TileY && s.Sampling == i.Sampling
}

// ----------------------------------------------------------------------------
// Color filters
// ----------------------------------------------------------------------------

// BlendColorFilter blends a constant color over the filtered colors.
type BlendColorFilter struct {
	color Color
	mode  BlendMode
}

// NewBlendColorFilter returns a filter blending c with mode. It returns nil
// when the combination leaves every color unchanged.
func NewBlendColorFilter(c Color, mode BlendMode) ColorFilter {
	switch {
	case mode == BlendDestination:
		return nil
	case c.IsTransparent() && mode.nopsOnTransparency():
		return nil
	}
	return &BlendColorFilter{color: c, mode: mode}
}

func (f *BlendColorFilter) Color() Color    { return f.color }
func (f *BlendColorFilter) Mode() BlendMode { return f.mode }

func (f *BlendColorFilter) ModifiesTransparentBlack() bool {
	if f.color.IsTransparent() {
		return false
	}
	switch f.mode {
	case BlendClear, BlendDestination, BlendSourceIn, BlendDestinationIn,
		BlendDestinationOut, BlendSourceAtop, BlendModulate:
		return false
	}
	return true
}

func (f *BlendColorFilter) CanCommuteWithOpacity() bool {
	return false
}

func (f *BlendColorFilter) Equal(o ColorFilter) bool {
	b, ok := o.(*BlendColorFilter)
	return ok && *f == *b
}

// MatrixColorFilter multiplies RGBA by a 4x5 row-major matrix whose last
// column is a translation.
type MatrixColorFilter struct {
	m [20]float32
}

// NewMatrixColorFilter returns a matrix filter. It returns nil when any
// entry is not finite.
func NewMatrixColorFilter(m [20]float32) ColorFilter {
	for _, v := range m {
		if !geom.IsFinite(v) {
			return nil
		}
	}
	return &MatrixColorFilter{m: m}
}

func (f *MatrixColorFilter) Matrix() [20]float32 { return f.m }

func (f *MatrixColorFilter) ModifiesTransparentBlack() bool {
	return f.m[4] != 0 || f.m[9] != 0 || f.m[14] != 0 || f.m[19] != 0
}

func (f *MatrixColorFilter) CanCommuteWithOpacity() bool {
	m := f.m
	return m[3] == 0 && m[8] == 0 && m[13] == 0 &&
		m[15] == 0 && m[16] == 0 && m[17] == 0 && m[18] == 1 && m[19] == 0
}

func (f *MatrixColorFilter) Equal(o ColorFilter) bool {
	m, ok := o.(*MatrixColorFilter)
	return ok && f.m == m.m
}

type gammaColorFilter struct {
	toLinear bool
}

func (f *gammaColorFilter) ModifiesTransparentBlack() bool { return false }
func (f *gammaColorFilter) CanCommuteWithOpacity() bool    { return true }
func (f *gammaColorFilter) Equal(o ColorFilter) bool {
	g, ok := o.(*gammaColorFilter)
	return ok && f.toLinear == g.toLinear
}

var (
	srgbToLinear = &gammaColorFilter{toLinear: true}
	linearToSrgb = &gammaColorFilter{toLinear: false}
)

// SRGBToLinearGamma returns the shared filter converting sRGB to linear.
func SRGBToLinearGamma() ColorFilter { return srgbToLinear }

// LinearToSRGBGamma returns the shared filter converting linear to sRGB.
func LinearToSRGBGamma() ColorFilter { return linearToSrgb }

// ----------------------------------------------------------------------------
// Image filters
// ----------------------------------------------------------------------------

// deviceOutset maps a local (dx, dy) outset through the linear part of ctm.
func deviceOutset(ctm geom.M33, dx, dy float32) (float32, float32, bool) {
	if ctm.HasPerspective() {
		return 0, 0, false
	}
	x := ctm.MapVector(geom.Pt(dx, 0))
	y := ctm.MapVector(geom.Pt(0, dy))
	return math32.Abs(x.X) + math32.Abs(y.X), math32.Abs(x.Y) + math32.Abs(y.Y), true
}

// BlurImageFilter applies a Gaussian blur.
type BlurImageFilter struct {
	SigmaX, SigmaY float32
	Tile           TileMode
}

// NewBlurImageFilter returns a blur filter. It returns nil when a sigma is
// not finite or both are not positive.
func NewBlurImageFilter(sigmaX, sigmaY float32, tile TileMode) ImageFilter {
	if !geom.IsFinite(sigmaX) || !geom.IsFinite(sigmaY) {
		return nil
	}
	sigmaX, sigmaY = max(sigmaX, 0), max(sigmaY, 0)
	if sigmaX == 0 && sigmaY == 0 {
		return nil
	}
	return &BlurImageFilter{SigmaX: sigmaX, SigmaY: sigmaY, Tile: tile}
}

func (f *BlurImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *BlurImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	return in.Outset(f.SigmaX*3, f.SigmaY*3), true
}

func (f *BlurImageFilter) MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool) {
	dx, dy, ok := deviceOutset(ctm, f.SigmaX*3, f.SigmaY*3)
	if !ok {
		return geom.Rect{}, false
	}
	return in.Outset(dx, dy).RoundOut(), true
}

func (f *BlurImageFilter) Equal(o ImageFilter) bool {
	b, ok := o.(*BlurImageFilter)
	return ok && *f == *b
}

// DilateImageFilter grows bright areas by a radius.
type DilateImageFilter struct {
	RadiusX, RadiusY float32
}

// NewDilateImageFilter returns a dilate filter, or nil when both radii are
// not positive or either is not finite.
func NewDilateImageFilter(rx, ry float32) ImageFilter {
	if !geom.IsFinite(rx) || !geom.IsFinite(ry) || (rx <= 0 && ry <= 0) {
		return nil
	}
	return &DilateImageFilter{RadiusX: max(rx, 0), RadiusY: max(ry, 0)}
}

func (f *DilateImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *DilateImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	return in.Outset(f.RadiusX, f.RadiusY), true
}

func (f *DilateImageFilter) MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool) {
	dx, dy, ok := deviceOutset(ctm, f.RadiusX, f.RadiusY)
	if !ok {
		return geom.Rect{}, false
	}
	return in.Outset(dx, dy).RoundOut(), true
}

func (f *DilateImageFilter) Equal(o ImageFilter) bool {
	d, ok := o.(*DilateImageFilter)
	return ok && *f == *d
}

// ErodeImageFilter shrinks bright areas by a radius.
type ErodeImageFilter struct {
	RadiusX, RadiusY float32
}

// NewErodeImageFilter returns an erode filter, or nil when both radii are
// not positive or either is not finite.
func NewErodeImageFilter(rx, ry float32) ImageFilter {
	if !geom.IsFinite(rx) || !geom.IsFinite(ry) || (rx <= 0 && ry <= 0) {
		return nil
	}
	return &ErodeImageFilter{RadiusX: max(rx, 0), RadiusY: max(ry, 0)}
}

func (f *ErodeImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *ErodeImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	return in.Outset(-f.RadiusX, -f.RadiusY), true
}

func (f *ErodeImageFilter) MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool) {
	dx, dy, ok := deviceOutset(ctm, f.RadiusX, f.RadiusY)
	if !ok {
		return geom.Rect{}, false
	}
	return in.Outset(-dx, -dy).RoundOut(), true
}

func (f *ErodeImageFilter) Equal(o ImageFilter) bool {
	e, ok := o.(*ErodeImageFilter)
	return ok && *f == *e
}

// MatrixImageFilter transforms the filtered content.
type MatrixImageFilter struct {
	Matrix   geom.M33
	Sampling Sampling
}

// NewMatrixImageFilter returns a matrix filter. It returns nil for the
// identity.
func NewMatrixImageFilter(m geom.M33, sampling Sampling) ImageFilter {
	if m.IsIdentity() {
		return nil
	}
	return &MatrixImageFilter{Matrix: m, Sampling: sampling}
}

func (f *MatrixImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *MatrixImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	return f.Matrix.MapRect(in)
}

// MapDeviceBounds applies ctm * Matrix * inverse(ctm) to the device
// bounds.
func (f *MatrixImageFilter) MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool) {
	inv, ok := ctm.Invert()
	if !ok {
		return geom.Rect{}, false
	}
	out, ok := ctm.Concat(f.Matrix).Concat(inv).MapRect(in)
	if !ok {
		return geom.Rect{}, false
	}
	return out.RoundOut(), true
}

func (f *MatrixImageFilter) Equal(o ImageFilter) bool {
	m, ok := o.(*MatrixImageFilter)
	return ok && *f == *m
}

// ComposeImageFilter applies Inner, then Outer.
type ComposeImageFilter struct {
	Outer, Inner ImageFilter
}

// NewComposeImageFilter composes two filters. When either is nil the
// other is returned.
func NewComposeImageFilter(outer, inner ImageFilter) ImageFilter {
	switch {
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	}
	return &ComposeImageFilter{Outer: outer, Inner: inner}
}

func (f *ComposeImageFilter) ModifiesTransparentBlack() bool {
	return f.Outer.ModifiesTransparentBlack() || f.Inner.ModifiesTransparentBlack()
}

func (f *ComposeImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	mid, ok := f.Inner.MapLocalBounds(in)
	if !ok {
		return geom.Rect{}, false
	}
	return f.Outer.MapLocalBounds(mid)
}

func (f *ComposeImageFilter) MapDeviceBounds(in geom.Rect, ctm geom.M33) (geom.Rect, bool) {
	mid, ok := f.Inner.MapDeviceBounds(in, ctm)
	if !ok {
		return geom.Rect{}, false
	}
	return f.Outer.MapDeviceBounds(mid, ctm)
}

func (f *ComposeImageFilter) Equal(o ImageFilter) bool {
	c, ok := o.(*ComposeImageFilter)
	return ok && effectEqual(f.Outer, c.Outer) && effectEqual(f.Inner, c.Inner)
}

// ColorFilterImageFilter applies a color filter to the filtered content.
type ColorFilterImageFilter struct {
	Filter ColorFilter
}

// NewColorFilterImageFilter wraps cf, or returns nil for a nil cf.
func NewColorFilterImageFilter(cf ColorFilter) ImageFilter {
	if cf == nil {
		return nil
	}
	return &ColorFilterImageFilter{Filter: cf}
}

func (f *ColorFilterImageFilter) ModifiesTransparentBlack() bool {
	return f.Filter.ModifiesTransparentBlack()
}

func (f *ColorFilterImageFilter) MapLocalBounds(in geom.Rect) (geom.Rect, bool) {
	if f.Filter.ModifiesTransparentBlack() {
		return geom.Rect{}, false
	}
	return in, true
}

func (f *ColorFilterImageFilter) MapDeviceBounds(in geom.Rect, _ geom.M33) (geom.Rect, bool) {
	if f.Filter.ModifiesTransparentBlack() {
		return geom.Rect{}, false
	}
	return in, true
}

func (f *ColorFilterImageFilter) Equal(o ImageFilter) bool {
	c, ok := o.(*ColorFilterImageFilter)
	return ok && effectEqual(f.Filter, c.Filter)
}

// ----------------------------------------------------------------------------
// Path effects, mask filters, blenders
// ----------------------------------------------------------------------------

// DashPathEffect strokes alternating on and off intervals.
type DashPathEffect struct {
	Intervals []float32
	Phase     float32
}

// NewDashPathEffect returns a dash effect. It returns nil unless there is
// an even, non-zero number of non-negative intervals with a positive sum.
func NewDashPathEffect(intervals []float32, phase float32) PathEffect {
	if len(intervals) == 0 || len(intervals)%2 != 0 || !geom.IsFinite(phase) {
		return nil
	}
	var sum float32
	for _, v := range intervals {
		if v < 0 || !geom.IsFinite(v) {
			return nil
		}
		sum += v
	}
	if sum <= 0 {
		return nil
	}
	return &DashPathEffect{Intervals: slices.Clone(intervals), Phase: phase}
}

// EffectBounds returns in: dashing only removes geometry.
func (e *DashPathEffect) EffectBounds(in geom.Rect) (geom.Rect, bool) {
	return in, true
}

func (e *DashPathEffect) Equal(o PathEffect) bool {
	d, ok := o.(*DashPathEffect)
	return ok && e.Phase == d.Phase && slices.Equal(e.Intervals, d.Intervals)
}

// BlurStyle selects which side of the edge a mask blur affects.
type BlurStyle uint8

const (
	BlurNormal BlurStyle = iota
	BlurSolid
	BlurOuter
	BlurInner
)

// BlurMaskFilter blurs the coverage mask.
type BlurMaskFilter struct {
	Style      BlurStyle
	Sigma      float32
	RespectCTM bool
}

// NewBlurMaskFilter returns a mask blur. It returns nil when sigma is not
// finite or not positive.
func NewBlurMaskFilter(style BlurStyle, sigma float32, respectCTM bool) MaskFilter {
	if !geom.IsFinite(sigma) || sigma <= 0 {
		return nil
	}
	return &BlurMaskFilter{Style: style, Sigma: sigma, RespectCTM: respectCTM}
}

// Outset returns three standard deviations.
func (f *BlurMaskFilter) Outset() float32 {
	return f.Sigma * 3
}

func (f *BlurMaskFilter) Equal(o MaskFilter) bool {
	b, ok := o.(*BlurMaskFilter)
	return ok && *f == *b
}

// ArithmeticBlender computes k1*S*D + k2*S + k3*D + k4.
type ArithmeticBlender struct {
	K1, K2, K3, K4 float32
	EnforcePremul  bool
}

// NewArithmeticBlender returns an arithmetic blender, or nil when a
// coefficient is not finite.
func NewArithmeticBlender(k1, k2, k3, k4 float32, enforcePremul bool) Blender {
	for _, k := range []float32{k1, k2, k3, k4} {
		if !geom.IsFinite(k) {
			return nil
		}
	}
	return &ArithmeticBlender{K1: k1, K2: k2, K3: k3, K4: k4, EnforcePremul: enforcePremul}
}

func (b *ArithmeticBlender) Equal(o Blender) bool {
	a, ok := o.(*ArithmeticBlender)
	return ok && *b == *a
}
