package displaylist

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/displaylist/geom"
)

const (
	// minStrokeHalfWidth pads hairlines, whose device width is one pixel
	// regardless of the transform.
	minStrokeHalfWidth = 0.01

	maxShadowBlur = 300
)

// adjustBoundsForPaint grows r by everything the current attributes may
// paint outside the geometry. It returns false when the result cannot be
// bounded.
func (b *Builder) adjustBoundsForPaint(r geom.Rect, flags AttributeFlags) (geom.Rect, bool) {
	p := &b.current
	if flags.Has(UsesPathEffect) && p.PathEffect != nil {
		var ok bool
		if r, ok = p.PathEffect.EffectBounds(r); !ok {
			return r, false
		}
	}
	if flags.isStroked(p.Style) {
		pad := float32(1)
		if flags.Has(MayHaveJoins) && p.StrokeJoin == LineJoinMiter {
			if flags.Has(AcuteJoins) {
				pad = math32.Max(pad, p.StrokeMiter)
			} else if p.StrokeMiter >= math32.Sqrt2 {
				pad = math32.Sqrt2
			}
		}
		if flags.Has(MayHaveCaps) && flags.Has(DiagonalCaps) && p.StrokeCap == LineCapSquare {
			pad = math32.Max(pad, math32.Sqrt2)
		}
		pad *= math32.Max(p.StrokeWidth*0.5, minStrokeHalfWidth)
		r = r.Outset(pad, pad)
	}
	if flags.Has(UsesMaskFilter) && p.MaskFilter != nil {
		o := p.MaskFilter.Outset()
		r = r.Outset(o, o)
	}
	if flags.Has(UsesImageFilter) && p.ImageFilter != nil {
		return p.ImageFilter.MapLocalBounds(r)
	}
	return r, true
}

// accumulateOpBounds adds the painted bounds of the last op, drawn with the
// current attributes.
func (b *Builder) accumulateOpBounds(r geom.Rect, flags AttributeFlags) {
	if adjusted, ok := b.adjustBoundsForPaint(r, flags); ok {
		b.accumulateBounds(adjusted)
	} else {
		b.accumulateUnbounded()
	}
}

// accumulateBounds adds r, in local coordinates, as the bounds of the last
// op.
func (b *Builder) accumulateBounds(r geom.Rect) {
	l := b.top()
	dev, ok := l.m33.MapRect(r)
	if !ok {
		b.accumulateUnbounded()
		return
	}
	if dev, ok = dev.Intersect(l.clip); ok {
		b.acc.Accumulate(dev, b.lastOpIndex())
	}
}

// accumulateUnbounded records that the last op may paint anywhere inside
// the current clip.
func (b *Builder) accumulateUnbounded() {
	l := b.top()
	if l.clip.IsFinite() {
		b.acc.Accumulate(l.clip, b.lastOpIndex())
	} else {
		l.unbounded = true
	}
}

func (b *Builder) updateLayerOpacityCompatibility(compatible bool) {
	if compatible {
		b.top().addCompatibleOp()
	} else {
		b.top().markIncompatible()
	}
}

// checkLayerOpacityCompatibility accounts for an op in the current frame.
// Ops that ignore the blend attributes are always compatible.
func (b *Builder) checkLayerOpacityCompatibility(usesBlendAttrs bool) {
	b.updateLayerOpacityCompatibility(!usesBlendAttrs || b.opacityCompatible)
}

// checkLayerOpacityHairlineCompatibility is used by geometry whose strokes
// may overlap themselves; hairlines never do.
func (b *Builder) checkLayerOpacityHairlineCompatibility() {
	b.updateLayerOpacityCompatibility(b.opacityCompatible &&
		(b.current.Style == StyleFill || b.current.StrokeWidth > 0))
}

func (b *Builder) checkLayerOpacityCompatibilityMode(mode BlendMode) {
	b.updateLayerOpacityCompatibility(mode == BlendSourceOver)
}

// paintNopsOnTransparency reports whether painting transparent black with
// the current attributes leaves the destination unchanged.
func (b *Builder) paintNopsOnTransparency() bool {
	p := &b.current
	if p.ImageFilter != nil && p.ImageFilter.ModifiesTransparentBlack() {
		return false
	}
	if p.ColorFilter != nil && p.ColorFilter.ModifiesTransparentBlack() {
		return false
	}
	mode, ok := p.Blend.Mode()
	if !ok {
		return false
	}
	return mode.nopsOnTransparency()
}

// ShadowBounds returns the area a shadow of geometry with the given bounds
// may cover. The light is above and slightly below the occluder, so the
// shadow spreads around it and further down.
func ShadowBounds(r geom.Rect, elevation, dpr float32) geom.Rect {
	z := elevation * dpr
	spread := math32.Min(z/2, maxShadowBlur)
	ambient := r.Outset(spread, spread)
	spot := r.Offset(0, z).Outset(z*4/3, z*4/3)
	return r.Union(ambient).Union(spot)
}
