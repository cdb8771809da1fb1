package displaylist

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// DrawStyle selects whether geometry is filled, stroked or both.
type DrawStyle uint8

const (
	StyleFill DrawStyle = iota
	StyleStroke
	StyleStrokeAndFill
)

// Paint holds the rendering attributes applied to draw ops.
// Effects are shared by reference and must not be modified.
//
// The zero Paint is not the default paint: its blend mode is BlendClear
// and its miter limit is zero. Start from NewPaint and adjust it with the
// With methods.
type Paint struct {
	Color        Color
	Blend        Blend
	AntiAlias    bool
	Dither       bool
	InvertColors bool

	Style       DrawStyle
	StrokeWidth float32
	StrokeMiter float32
	StrokeCap   LineCap
	StrokeJoin  LineJoin

	ColorSource ColorSource
	ColorFilter ColorFilter
	ImageFilter ImageFilter
	PathEffect  PathEffect
	MaskFilter  MaskFilter
}

// Default stroke attributes.
const (
	DefaultStrokeWidth = 0
	DefaultStrokeMiter = 4
)

// NewPaint returns a paint with the default attributes: opaque black,
// source-over, filled, hairline width and a miter limit of 4.
func NewPaint() Paint {
	return Paint{
		Color:       Black,
		Blend:       defaultBlend(),
		StrokeWidth: DefaultStrokeWidth,
		StrokeMiter: DefaultStrokeMiter,
		StrokeCap:   LineCapButt,
		StrokeJoin:  LineJoinMiter,
	}
}

// WithColor returns a copy of p using c.
func (p Paint) WithColor(c Color) Paint {
	p.Color = c
	return p
}

// WithStyle returns a copy of p using style.
func (p Paint) WithStyle(style DrawStyle) Paint {
	p.Style = style
	return p
}

// WithStroke returns a copy of p stroking with width.
func (p Paint) WithStroke(width float32) Paint {
	p.Style = StyleStroke
	p.StrokeWidth = width
	return p
}

// WithBlendMode returns a copy of p using mode.
func (p Paint) WithBlendMode(mode BlendMode) Paint {
	p.Blend = BlendWithMode(mode)
	return p
}

// Equal reports whether both paints have the same attributes.
func (p Paint) Equal(o Paint) bool {
	return p.Color == o.Color &&
		p.Blend.Equal(o.Blend) &&
		p.AntiAlias == o.AntiAlias &&
		p.Dither == o.Dither &&
		p.InvertColors == o.InvertColors &&
		p.Style == o.Style &&
		p.StrokeWidth == o.StrokeWidth &&
		p.StrokeMiter == o.StrokeMiter &&
		p.StrokeCap == o.StrokeCap &&
		p.StrokeJoin == o.StrokeJoin &&
		effectEqual(p.ColorSource, o.ColorSource) &&
		effectEqual(p.ColorFilter, o.ColorFilter) &&
		effectEqual(p.ImageFilter, o.ImageFilter) &&
		effectEqual(p.PathEffect, o.PathEffect) &&
		effectEqual(p.MaskFilter, o.MaskFilter)
}

// AttributeFlags describe which paint attributes an op uses and how they
// affect its bounds.
type AttributeFlags uint32

const (
	UsesAntiAlias AttributeFlags = 1 << iota
	UsesDither
	UsesAlpha
	UsesColor
	UsesBlend
	UsesColorSource
	UsesColorFilter
	UsesImageFilter
	UsesPathEffect
	UsesMaskFilter
	UsesInvertColors

	// UsesStyle marks geometry whose bounds depend on the draw style.
	UsesStyle
	// AlwaysStroked marks geometry that is stroked regardless of style.
	AlwaysStroked
	// MayHaveJoins, with AcuteJoins, lets a miter limit grow the bounds.
	MayHaveJoins
	AcuteJoins
	// MayHaveCaps, with DiagonalCaps, lets square caps grow the bounds.
	MayHaveCaps
	DiagonalCaps
)

const (
	flagsBase = UsesAntiAlias | UsesDither | UsesAlpha | UsesColor | UsesBlend |
		UsesColorSource | UsesColorFilter | UsesImageFilter | UsesInvertColors
	flagsGeometry = flagsBase | UsesPathEffect | UsesMaskFilter
	flagsImage    = UsesAntiAlias | UsesAlpha | UsesBlend | UsesColorFilter | UsesImageFilter | UsesInvertColors
)

// Attribute usage of each op kind.
const (
	FlagsPaint        = flagsBase
	FlagsLine         = flagsGeometry | AlwaysStroked | MayHaveCaps | DiagonalCaps
	FlagsHVLine       = flagsGeometry | AlwaysStroked | MayHaveCaps
	FlagsRect         = flagsGeometry | UsesStyle | MayHaveJoins
	FlagsOval         = flagsGeometry | UsesStyle
	FlagsRRect        = flagsGeometry | UsesStyle
	FlagsDRRect       = flagsGeometry | UsesStyle
	FlagsPath         = flagsGeometry | UsesStyle | MayHaveJoins | AcuteJoins | MayHaveCaps | DiagonalCaps
	FlagsArc          = flagsGeometry | UsesStyle | MayHaveCaps | DiagonalCaps
	FlagsArcUseCenter = flagsGeometry | UsesStyle | MayHaveJoins | AcuteJoins
	FlagsPoints       = flagsGeometry | AlwaysStroked | MayHaveCaps | DiagonalCaps
	FlagsVertices     = flagsBase
	FlagsImage        = flagsImage | UsesMaskFilter
	FlagsImageNine    = flagsImage
	FlagsAtlas        = flagsImage
	FlagsText         = flagsGeometry | UsesStyle
	FlagsSaveLayer    = UsesAlpha | UsesBlend | UsesColorFilter | UsesImageFilter | UsesInvertColors
	FlagsPicture      = FlagsSaveLayer
)

// Has reports whether every bit of want is set.
func (f AttributeFlags) Has(want AttributeFlags) bool {
	return f&want == want
}

// isStroked reports whether geometry with these flags is stroked under
// style.
func (f AttributeFlags) isStroked(style DrawStyle) bool {
	return f.Has(AlwaysStroked) || (f.Has(UsesStyle) && style != StyleFill)
}
