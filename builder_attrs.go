package displaylist

import "github.com/gogpu/displaylist/geom"

// Attribute setters record an op only when the value changes.

// SetAntiAlias turns edge anti-aliasing on or off.
func (b *Builder) SetAntiAlias(aa bool) {
	if b.current.AntiAlias == aa {
		return
	}
	b.current.AntiAlias = aa
	b.push(OpSetAntiAlias, 1, 0).Bool(aa)
}

// SetDither turns dithering on or off.
func (b *Builder) SetDither(dither bool) {
	if b.current.Dither == dither {
		return
	}
	b.current.Dither = dither
	b.push(OpSetDither, 1, 0).Bool(dither)
}

// SetInvertColors turns color inversion on or off. Inverted colors stop
// draws from taking an inherited opacity.
func (b *Builder) SetInvertColors(invert bool) {
	if b.current.InvertColors == invert {
		return
	}
	b.current.InvertColors = invert
	b.push(OpSetInvertColors, 1, 0).Bool(invert)
	b.updateOpacityCompatibility()
}

// SetStrokeCap sets the cap drawn at open stroke ends.
func (b *Builder) SetStrokeCap(lineCap LineCap) {
	if b.current.StrokeCap == lineCap {
		return
	}
	b.current.StrokeCap = lineCap
	b.push(OpSetStrokeCap, 1, 0).U8(uint8(lineCap))
}

// SetStrokeJoin sets how stroke segments meet.
func (b *Builder) SetStrokeJoin(join LineJoin) {
	if b.current.StrokeJoin == join {
		return
	}
	b.current.StrokeJoin = join
	b.push(OpSetStrokeJoin, 1, 0).U8(uint8(join))
}

// SetStyle sets whether shapes are filled, stroked or both.
func (b *Builder) SetStyle(style DrawStyle) {
	if b.current.Style == style {
		return
	}
	b.current.Style = style
	b.push(OpSetStyle, 1, 0).U8(uint8(style))
}

// SetStrokeWidth sets the stroke width. Zero means hairline. Negative
// and non-finite widths are ignored.
func (b *Builder) SetStrokeWidth(width float32) {
	if !validStrokeParam(width) || b.current.StrokeWidth == width {
		return
	}
	b.current.StrokeWidth = width
	b.push(OpSetStrokeWidth, 4, 0).F32(width)
}

// SetStrokeMiter sets the miter limit. Negative and non-finite limits
// are ignored.
func (b *Builder) SetStrokeMiter(limit float32) {
	if !validStrokeParam(limit) || b.current.StrokeMiter == limit {
		return
	}
	b.current.StrokeMiter = limit
	b.push(OpSetStrokeMiter, 4, 0).F32(limit)
}

// SetColor sets the paint color.
func (b *Builder) SetColor(c Color) {
	if b.current.Color == c {
		return
	}
	b.current.Color = c
	b.push(OpSetColor, 4, 0).U32(uint32(c))
}

// SetBlendMode selects mode and clears any custom blender.
func (b *Builder) SetBlendMode(mode BlendMode) {
	blend := BlendWithMode(mode)
	if b.current.Blend.Equal(blend) {
		return
	}
	b.current.Blend = blend
	b.push(OpSetBlendMode, 1, 0).U8(uint8(mode))
	b.updateOpacityCompatibility()
}

// SetBlender selects a custom blender. A nil blender is recorded as
// SetBlendMode(BlendSourceOver).
func (b *Builder) SetBlender(blender Blender) {
	if blender == nil {
		b.SetBlendMode(BlendSourceOver)
		return
	}
	blend := BlendWithBlender(blender)
	if b.current.Blend.Equal(blend) {
		return
	}
	b.current.Blend = blend
	b.push(OpSetBlender, 4, 0).U32(b.ref(blender))
	b.updateOpacityCompatibility()
}

// SetColorSource sets the shader that replaces the paint color. Nil
// clears it.
func (b *Builder) SetColorSource(s ColorSource) {
	if effectEqual(b.current.ColorSource, s) {
		return
	}
	b.current.ColorSource = s
	b.push(OpSetColorSource, 4, 0).U32(b.ref(s))
}

// SetImageFilter sets the filter applied to the output of each draw.
func (b *Builder) SetImageFilter(f ImageFilter) {
	if effectEqual(b.current.ImageFilter, f) {
		return
	}
	b.current.ImageFilter = f
	b.push(OpSetImageFilter, 4, 0).U32(b.ref(f))
}

// SetColorFilter sets the color filter. A non-nil filter stops draws
// from taking an inherited opacity.
func (b *Builder) SetColorFilter(f ColorFilter) {
	if effectEqual(b.current.ColorFilter, f) {
		return
	}
	b.current.ColorFilter = f
	b.push(OpSetColorFilter, 4, 0).U32(b.ref(f))
	b.updateOpacityCompatibility()
}

// SetPathEffect sets the effect applied to geometry before stroking.
func (b *Builder) SetPathEffect(e PathEffect) {
	if effectEqual(b.current.PathEffect, e) {
		return
	}
	b.current.PathEffect = e
	b.push(OpSetPathEffect, 4, 0).U32(b.ref(e))
}

// SetMaskFilter sets the mask filter.
func (b *Builder) SetMaskFilter(f MaskFilter) {
	if effectEqual(b.current.MaskFilter, f) {
		return
	}
	b.current.MaskFilter = f
	b.push(OpSetMaskFilter, 4, 0).U32(b.ref(f))
}

// SetAttributesFromPaint brings the current attributes in line with the
// ones of p that flags marks as used. Unused attributes keep their value.
func (b *Builder) SetAttributesFromPaint(p Paint, flags AttributeFlags) {
	if flags.Has(UsesAntiAlias) {
		b.SetAntiAlias(p.AntiAlias)
	}
	if flags.Has(UsesDither) {
		b.SetDither(p.Dither)
	}
	if flags.Has(UsesAlpha) || flags.Has(UsesColor) {
		b.SetColor(p.Color)
	}
	if flags.Has(UsesBlend) {
		if blender := p.Blend.Blender(); blender != nil {
			b.SetBlender(blender)
		} else {
			mode, _ := p.Blend.Mode()
			b.SetBlendMode(mode)
		}
	}
	if flags.Has(UsesStyle) {
		b.SetStyle(p.Style)
	}
	if flags.isStroked(p.Style) {
		b.SetStrokeWidth(p.StrokeWidth)
		b.SetStrokeMiter(p.StrokeMiter)
		b.SetStrokeCap(p.StrokeCap)
		b.SetStrokeJoin(p.StrokeJoin)
	}
	if flags.Has(UsesColorSource) {
		b.SetColorSource(p.ColorSource)
	}
	if flags.Has(UsesColorFilter) {
		b.SetColorFilter(p.ColorFilter)
	}
	if flags.Has(UsesImageFilter) {
		b.SetImageFilter(p.ImageFilter)
	}
	if flags.Has(UsesPathEffect) {
		b.SetPathEffect(p.PathEffect)
	}
	if flags.Has(UsesMaskFilter) {
		b.SetMaskFilter(p.MaskFilter)
	}
	if flags.Has(UsesInvertColors) {
		b.SetInvertColors(p.InvertColors)
	}
}

// updateOpacityCompatibility recomputes whether the current attributes
// let a draw op take an inherited opacity.
func (b *Builder) updateOpacityCompatibility() {
	mode, ok := b.current.Blend.Mode()
	b.opacityCompatible = b.current.ColorFilter == nil &&
		!b.current.InvertColors &&
		ok && mode == BlendSourceOver
}

func validStrokeParam(v float32) bool {
	return geom.IsFinite(v) && v >= 0
}
