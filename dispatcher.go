package displaylist

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/displaylist/geom"
)

// ClipOp combines a clip shape with the current clip.
type ClipOp uint8

const (
	// ClipIntersect keeps only the area inside the shape.
	ClipIntersect ClipOp = iota
	// ClipDifference removes the area inside the shape.
	ClipDifference
)

func (op ClipOp) String() string {
	if op == ClipDifference {
		return "Difference"
	}
	return "Intersect"
}

// PointMode selects how DrawPoints interprets its points.
type PointMode uint8

const (
	// PointsEach draws each point as a dot.
	PointsEach PointMode = iota
	// PointsLines draws each pair of points as a segment.
	PointsLines
	// PointsPolygon draws a connected polyline.
	PointsPolygon
)

// SaveLayerOptions carries the flags of a SaveLayer op.
type SaveLayerOptions uint8

const (
	// RendersWithAttributes applies the current paint (alpha, blend, color
	// filter, image filter) when the layer is composited.
	RendersWithAttributes SaveLayerOptions = 1 << iota
	// CanDistributeOpacity reports that the layer content accepts a group
	// opacity applied to its single op. The builder sets it at Restore.
	CanDistributeOpacity
)

func (o SaveLayerOptions) RendersWithAttributes() bool {
	return o&RendersWithAttributes != 0
}

func (o SaveLayerOptions) CanDistributeOpacity() bool {
	return o&CanDistributeOpacity != 0
}

// RSTransform is a compressed rotate-scale-translate transform used by
// DrawAtlas: x' = SCos*x - SSin*y + TX, y' = SSin*x + SCos*y + TY.
type RSTransform struct {
	SCos, SSin float32
	TX, TY     float32
}

// MakeRSTransform returns the transform for scale, rotation in radians,
// and translation.
func MakeRSTransform(scale, radians, tx, ty float32) RSTransform {
	s, c := math32.Sincos(radians)
	return RSTransform{SCos: scale * c, SSin: scale * s, TX: tx, TY: ty}
}

// Quad returns the four corners of a width x height sprite.
func (t RSTransform) Quad(width, height float32) [4]geom.Point {
	pt := func(x, y float32) geom.Point {
		return geom.Pt(t.SCos*x-t.SSin*y+t.TX, t.SSin*x+t.SCos*y+t.TY)
	}
	return [4]geom.Point{pt(0, 0), pt(width, 0), pt(width, height), pt(0, height)}
}

// Dispatcher receives the sequence of calls recorded in a display list.
// Builder implements it to record; playback backends implement it to
// render. Shared objects passed to the methods must not be modified.
type Dispatcher interface {
	SetAntiAlias(aa bool)
	SetDither(dither bool)
	SetInvertColors(invert bool)
	SetStrokeCap(lineCap LineCap)
	SetStrokeJoin(join LineJoin)
	SetStyle(style DrawStyle)
	SetStrokeWidth(width float32)
	SetStrokeMiter(limit float32)
	SetColor(c Color)
	SetBlendMode(mode BlendMode)
	SetBlender(b Blender)
	SetColorSource(s ColorSource)
	SetImageFilter(f ImageFilter)
	SetColorFilter(f ColorFilter)
	SetPathEffect(e PathEffect)
	SetMaskFilter(f MaskFilter)

	Save()
	// SaveLayer opens a layer. A nil bounds means the layer is sized by its
	// content.
	SaveLayer(bounds *geom.Rect, options SaveLayerOptions, backdrop ImageFilter)
	Restore()

	Translate(tx, ty float32)
	Scale(sx, sy float32)
	Rotate(degrees float32)
	Skew(sx, sy float32)
	Transform2DAffine(mxx, mxy, mxt, myx, myy, myt float32)
	// TransformFullPerspective concatenates a 4x4 matrix given in row
	// major order.
	TransformFullPerspective(m [16]float32)
	TransformReset()

	ClipRect(r geom.Rect, op ClipOp, aa bool)
	ClipRRect(rr geom.RRect, op ClipOp, aa bool)
	ClipPath(p *geom.Path, op ClipOp, aa bool)

	DrawPaint()
	DrawColor(c Color, mode BlendMode)
	DrawLine(p0, p1 geom.Point)
	DrawRect(r geom.Rect)
	DrawOval(bounds geom.Rect)
	DrawCircle(center geom.Point, radius float32)
	DrawRRect(rr geom.RRect)
	DrawDRRect(outer, inner geom.RRect)
	DrawPath(p *geom.Path)
	DrawArc(oval geom.Rect, startDegrees, sweepDegrees float32, useCenter bool)
	DrawPoints(mode PointMode, pts []geom.Point)
	DrawVertices(v *Vertices, mode BlendMode)
	DrawImage(img Image, p geom.Point, sampling Sampling, renderWithAttributes bool)
	DrawImageRect(img Image, src, dst geom.Rect, sampling Sampling, renderWithAttributes bool, constraint SrcRectConstraint)
	DrawImageNine(img Image, center, dst geom.Rect, filter FilterMode, renderWithAttributes bool)
	DrawImageLattice(img Image, lattice Lattice, dst geom.Rect, filter FilterMode, renderWithAttributes bool)
	DrawAtlas(atlas Image, xforms []RSTransform, tex []geom.Rect, colors []Color, mode BlendMode, sampling Sampling, cull *geom.Rect, renderWithAttributes bool)
	DrawDisplayList(dl *DisplayList, opacity float32)
	DrawPicture(dl *DisplayList, matrix *geom.M33, renderWithAttributes bool)
	DrawTextBlob(blob TextBlob, x, y float32)
	DrawShadow(p *geom.Path, c Color, elevation float32, transparentOccluder bool, dpr float32)
}

// NopDispatcher implements every Dispatcher method as a no-op. Embed it
// to implement only the methods of interest.
type NopDispatcher struct{}

var _ Dispatcher = NopDispatcher{}

func (NopDispatcher) SetAntiAlias(bool)                                   {}
func (NopDispatcher) SetDither(bool)                                      {}
func (NopDispatcher) SetInvertColors(bool)                                {}
func (NopDispatcher) SetStrokeCap(LineCap)                                {}
func (NopDispatcher) SetStrokeJoin(LineJoin)                              {}
func (NopDispatcher) SetStyle(DrawStyle)                                  {}
func (NopDispatcher) SetStrokeWidth(float32)                              {}
func (NopDispatcher) SetStrokeMiter(float32)                              {}
func (NopDispatcher) SetColor(Color)                                      {}
func (NopDispatcher) SetBlendMode(BlendMode)                              {}
func (NopDispatcher) SetBlender(Blender)                                  {}
func (NopDispatcher) SetColorSource(ColorSource)                          {}
func (NopDispatcher) SetImageFilter(ImageFilter)                          {}
func (NopDispatcher) SetColorFilter(ColorFilter)                          {}
func (NopDispatcher) SetPathEffect(PathEffect)                            {}
func (NopDispatcher) SetMaskFilter(MaskFilter)                            {}
func (NopDispatcher) Save()                                               {}
func (NopDispatcher) SaveLayer(*geom.Rect, SaveLayerOptions, ImageFilter) {}
func (NopDispatcher) Restore()                                            {}
func (NopDispatcher) Translate(float32, float32)                          {}
func (NopDispatcher) Scale(float32, float32)                              {}
func (NopDispatcher) Rotate(float32)                                      {}
func (NopDispatcher) Skew(float32, float32)                               {}
func (NopDispatcher) Transform2DAffine(_, _, _, _, _, _ float32)          {}
func (NopDispatcher) TransformFullPerspective([16]float32)                {}
func (NopDispatcher) TransformReset()                                     {}
func (NopDispatcher) ClipRect(geom.Rect, ClipOp, bool)                    {}
func (NopDispatcher) ClipRRect(geom.RRect, ClipOp, bool)                  {}
func (NopDispatcher) ClipPath(*geom.Path, ClipOp, bool)                   {}
func (NopDispatcher) DrawPaint()                                          {}
func (NopDispatcher) DrawColor(Color, BlendMode)                          {}
func (NopDispatcher) DrawLine(_, _ geom.Point)                            {}
func (NopDispatcher) DrawRect(geom.Rect)                                  {}
func (NopDispatcher) DrawOval(geom.Rect)                                  {}
func (NopDispatcher) DrawCircle(geom.Point, float32)                      {}
func (NopDispatcher) DrawRRect(geom.RRect)                                {}
func (NopDispatcher) DrawDRRect(_, _ geom.RRect)                          {}
func (NopDispatcher) DrawPath(*geom.Path)                                 {}
func (NopDispatcher) DrawArc(geom.Rect, float32, float32, bool)           {}
func (NopDispatcher) DrawPoints(PointMode, []geom.Point)                  {}
func (NopDispatcher) DrawVertices(*Vertices, BlendMode)                   {}
func (NopDispatcher) DrawImage(Image, geom.Point, Sampling, bool)         {}
func (NopDispatcher) DrawImageRect(Image, geom.Rect, geom.Rect, Sampling, bool, SrcRectConstraint) {
}
func (NopDispatcher) DrawImageNine(Image, geom.Rect, geom.Rect, FilterMode, bool)  {}
func (NopDispatcher) DrawImageLattice(Image, Lattice, geom.Rect, FilterMode, bool) {}
func (NopDispatcher) DrawAtlas(Image, []RSTransform, []geom.Rect, []Color, BlendMode, Sampling, *geom.Rect, bool) {
}
func (NopDispatcher) DrawDisplayList(*DisplayList, float32)                {}
func (NopDispatcher) DrawPicture(*DisplayList, *geom.M33, bool)            {}
func (NopDispatcher) DrawTextBlob(TextBlob, float32, float32)              {}
func (NopDispatcher) DrawShadow(*geom.Path, Color, float32, bool, float32) {}
