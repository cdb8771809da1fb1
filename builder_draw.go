package displaylist

import (
	"fmt"

	"github.com/gogpu/displaylist/geom"
)

// DrawPaint fills the current clip with the current attributes.
func (b *Builder) DrawPaint() {
	b.push(OpDrawPaint, 0, 0)
	b.checkLayerOpacityCompatibility(true)
	b.accumulateUnbounded()
}

// DrawColor fills the current clip with c using mode. It ignores the
// current attributes.
func (b *Builder) DrawColor(c Color, mode BlendMode) {
	b.push(OpDrawColor, 5, 0).U32(uint32(c)).U8(uint8(mode))
	b.checkLayerOpacityCompatibilityMode(mode)
	b.accumulateUnbounded()
}

// DrawLine strokes a line. Style is ignored: lines are always stroked.
func (b *Builder) DrawLine(p0, p1 geom.Point) {
	e := b.push(OpDrawLine, 16, 0)
	encPoint(encPoint(e, p0), p1)
	flags := FlagsLine
	if p0.X == p1.X || p0.Y == p1.Y {
		flags = FlagsHVLine
	}
	b.checkLayerOpacityCompatibility(true)
	b.accumulateOpBounds(geom.BoundsOf(p0, p1), flags)
}

// DrawRect draws r.
func (b *Builder) DrawRect(r geom.Rect) {
	encRect(b.push(OpDrawRect, 16, 0), r)
	b.checkLayerOpacityCompatibility(true)
	b.accumulateOpBounds(r.Sorted(), FlagsRect)
}

// DrawOval draws the oval inscribed in bounds.
func (b *Builder) DrawOval(bounds geom.Rect) {
	encRect(b.push(OpDrawOval, 16, 0), bounds)
	b.checkLayerOpacityCompatibility(true)
	b.accumulateOpBounds(bounds.Sorted(), FlagsOval)
}

// DrawCircle draws a circle around center.
func (b *Builder) DrawCircle(center geom.Point, radius float32) {
	encPoint(b.push(OpDrawCircle, 12, 0), center).F32(radius)
	b.checkLayerOpacityCompatibility(true)
	r := geom.MakeLTRB(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	b.accumulateOpBounds(r.Sorted(), FlagsOval)
}

// DrawRRect records rounded rects without rounded corners as DrawRect and
// elliptical ones as DrawOval.
func (b *Builder) DrawRRect(rr geom.RRect) {
	switch {
	case rr.IsRect():
		b.DrawRect(rr.Rect)
		return
	case rr.IsOval():
		b.DrawOval(rr.Rect)
		return
	}
	encRRect(b.push(OpDrawRRect, 48, 0), rr)
	b.checkLayerOpacityCompatibility(true)
	b.accumulateOpBounds(rr.Bounds(), FlagsRRect)
}

// DrawDRRect draws the area between outer and inner.
func (b *Builder) DrawDRRect(outer, inner geom.RRect) {
	encRRect(encRRect(b.push(OpDrawDRRect, 96, 0), outer), inner)
	b.checkLayerOpacityCompatibility(true)
	b.accumulateOpBounds(outer.Bounds(), FlagsDRRect)
}

// DrawPath draws a copy of p. Inverse-filled paths flood the clip.
func (b *Builder) DrawPath(p *geom.Path) {
	if p == nil {
		return
	}
	b.push(OpDrawPath, 4, 0).U32(b.ref(p.Clone()))
	b.checkLayerOpacityHairlineCompatibility()
	if p.IsInverseFillType() {
		b.accumulateUnbounded()
		return
	}
	b.accumulateOpBounds(p.Bounds(), FlagsPath)
}

// DrawArc draws the arc of the oval from startDegrees sweeping
// sweepDegrees clockwise. With useCenter the arc is closed through the
// center of the oval.
func (b *Builder) DrawArc(oval geom.Rect, startDegrees, sweepDegrees float32, useCenter bool) {
	encRect(b.push(OpDrawArc, 25, 0), oval).F32s(startDegrees, sweepDegrees).Bool(useCenter)
	flags := FlagsArc
	if useCenter {
		flags = FlagsArcUseCenter
		b.checkLayerOpacityHairlineCompatibility()
	} else {
		b.checkLayerOpacityCompatibility(true)
	}
	b.accumulateOpBounds(oval.Sorted(), flags)
}

// DrawPoints strokes pts as mode describes. An empty slice records
// nothing.
func (b *Builder) DrawPoints(mode PointMode, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	e := b.push(OpDrawPoints, 8, 8*len(pts)).U8(uint8(mode)).Skip(3).U32(uint32(len(pts)))
	for _, p := range pts {
		encPoint(e, p)
	}
	b.updateLayerOpacityCompatibility(false)
	b.accumulateOpBounds(geom.BoundsOf(pts...), FlagsPoints)
}

// DrawVertices draws a triangle mesh. Per-vertex colors blend with the
// current color using mode.
func (b *Builder) DrawVertices(v *Vertices, mode BlendMode) {
	if v == nil {
		return
	}
	b.push(OpDrawVertices, 5, 0).U32(b.ref(v)).U8(uint8(mode))
	b.updateLayerOpacityCompatibility(false)
	b.accumulateOpBounds(v.Bounds(), FlagsVertices)
}

func imageFlags(renderWithAttributes bool, flags AttributeFlags) AttributeFlags {
	if renderWithAttributes {
		return flags
	}
	return 0
}

// DrawImage draws img with its top-left corner at p. The current
// attributes are only used when renderWithAttributes is set.
func (b *Builder) DrawImage(img Image, p geom.Point, sampling Sampling, renderWithAttributes bool) {
	if img == nil {
		return
	}
	e := b.push(OpDrawImage, 14, 0).U32(b.ref(img))
	encPoint(e, p).U8(uint8(sampling)).Bool(renderWithAttributes)
	b.checkLayerOpacityCompatibility(renderWithAttributes)
	b.accumulateOpBounds(imageBounds(img).Offset(p.X, p.Y), imageFlags(renderWithAttributes, FlagsImage))
}

// DrawImageRect draws the src area of img scaled into dst.
func (b *Builder) DrawImageRect(img Image, src, dst geom.Rect, sampling Sampling, renderWithAttributes bool, constraint SrcRectConstraint) {
	if img == nil {
		return
	}
	e := b.push(OpDrawImageRect, 39, 0).U32(b.ref(img))
	encRect(encRect(e, src), dst).U8(uint8(sampling)).Bool(renderWithAttributes).U8(uint8(constraint))
	b.checkLayerOpacityCompatibility(renderWithAttributes)
	b.accumulateOpBounds(dst.Sorted(), imageFlags(renderWithAttributes, FlagsImage))
}

// DrawImageNine draws img into dst as a nine-patch: the corners outside
// center keep their size and the rest stretches.
func (b *Builder) DrawImageNine(img Image, center, dst geom.Rect, filter FilterMode, renderWithAttributes bool) {
	if img == nil {
		return
	}
	e := b.push(OpDrawImageNine, 38, 0).U32(b.ref(img))
	encRect(encRect(e, center), dst).U8(uint8(filter)).Bool(renderWithAttributes)
	b.checkLayerOpacityCompatibility(renderWithAttributes)
	b.accumulateOpBounds(dst.Sorted(), imageFlags(renderWithAttributes, FlagsImageNine))
}

// DrawImageLattice draws img into dst split by lattice: fixed columns and
// rows keep their size and the others stretch. It panics if
// lattice.RectTypes or lattice.Colors has the wrong length.
func (b *Builder) DrawImageLattice(img Image, lattice Lattice, dst geom.Rect, filter FilterMode, renderWithAttributes bool) {
	cells := lattice.Cells()
	if (lattice.RectTypes != nil && len(lattice.RectTypes) != cells) ||
		(lattice.Colors != nil && (lattice.RectTypes == nil || len(lattice.Colors) != cells)) {
		panic(fmt.Sprintf("displaylist: DrawImageLattice with %d cells, %d rect types and %d colors",
			cells, len(lattice.RectTypes), len(lattice.Colors)))
	}
	if img == nil {
		return
	}
	nx, ny := len(lattice.XDivs), len(lattice.YDivs)
	extra := 4 * (nx + ny)
	if lattice.RectTypes != nil {
		extra += cells
	}
	if lattice.Colors != nil {
		extra += 4 * cells
	}
	e := b.push(OpDrawImageLattice, 52, extra).U32(b.ref(img)).
		U8(uint8(filter)).Bool(renderWithAttributes).
		Bool(lattice.RectTypes != nil).Bool(lattice.Colors != nil).Bool(lattice.Src != nil).
		Skip(3).U32(uint32(nx)).U32(uint32(ny))
	encRect(e, dst)
	if lattice.Src != nil {
		encRect(e, *lattice.Src)
	} else {
		e.Skip(16)
	}
	for _, d := range lattice.XDivs {
		e.I32(d)
	}
	for _, d := range lattice.YDivs {
		e.I32(d)
	}
	for _, t := range lattice.RectTypes {
		e.U8(uint8(t))
	}
	for _, c := range lattice.Colors {
		e.U32(uint32(c))
	}
	b.checkLayerOpacityCompatibility(renderWithAttributes)
	b.accumulateOpBounds(dst.Sorted(), imageFlags(renderWithAttributes, FlagsImageNine))
}

// DrawAtlas draws the tex areas of atlas, each placed by the matching
// transform and optionally blended with the matching color using mode.
// colors must be nil or as long as xforms, and so must tex. cull, when
// non-nil, bounds the whole draw.
func (b *Builder) DrawAtlas(atlas Image, xforms []RSTransform, tex []geom.Rect, colors []Color,
	mode BlendMode, sampling Sampling, cull *geom.Rect, renderWithAttributes bool,
) {
	if len(tex) != len(xforms) || (colors != nil && len(colors) != len(xforms)) {
		panic(fmt.Sprintf("displaylist: DrawAtlas with %d transforms, %d rects and %d colors",
			len(xforms), len(tex), len(colors)))
	}
	if atlas == nil || len(xforms) == 0 {
		return
	}
	n := len(xforms)
	extra := 32 * n
	if colors != nil {
		extra += 4 * n
	}
	e := b.push(OpDrawAtlas, 32, extra).U32(b.ref(atlas)).
		U8(uint8(mode)).U8(uint8(sampling)).Bool(renderWithAttributes).
		Bool(colors != nil).Bool(cull != nil).Skip(3).U32(uint32(n))
	if cull != nil {
		encRect(e, *cull)
	} else {
		e.Skip(16)
	}
	for _, x := range xforms {
		e.F32s(x.SCos, x.SSin, x.TX, x.TY)
	}
	for _, r := range tex {
		encRect(e, r)
	}
	for _, c := range colors {
		e.U32(uint32(c))
	}

	b.updateLayerOpacityCompatibility(false)
	var r geom.Rect
	if cull != nil {
		r = *cull
	} else {
		pts := make([]geom.Point, 0, 4*n)
		for i, x := range xforms {
			q := x.Quad(tex[i].Width(), tex[i].Height())
			pts = append(pts, q[:]...)
		}
		r = geom.BoundsOf(pts...)
	}
	b.accumulateOpBounds(r, imageFlags(renderWithAttributes, FlagsAtlas))
}

// DrawDisplayList plays dl back at opacity. It does not use or change the
// current attributes.
func (b *Builder) DrawDisplayList(dl *DisplayList, opacity float32) {
	if dl == nil {
		return
	}
	b.push(OpDrawDisplayList, 8, 0).U32(b.ref(dl)).F32(opacity)
	b.buf.AddNested(dl.OpCount(true), dl.Bytes(true))
	b.updateLayerOpacityCompatibility(dl.CanApplyGroupOpacity())

	if b.opts.rtree && dl.RTree() != nil {
		for _, r := range dl.RTree().SearchNonOverlapping(dl.Bounds()) {
			b.accumulateBounds(r)
		}
	} else if !dl.Bounds().IsEmpty() {
		b.accumulateBounds(dl.Bounds())
	}
	if dl.IsUnbounded() {
		b.accumulateUnbounded()
	}
}

// DrawPicture plays dl back through matrix, when non-nil. With
// renderWithAttributes the current alpha, blend and filters apply to the
// nested content as one layer. The nested ops count toward
// OpCount(true) and Bytes(true).
func (b *Builder) DrawPicture(dl *DisplayList, matrix *geom.M33, renderWithAttributes bool) {
	if dl == nil {
		return
	}
	e := b.push(OpDrawPicture, 44, 0).U32(b.ref(dl)).
		Bool(matrix != nil).Bool(renderWithAttributes).Skip(2)
	if matrix != nil {
		for _, v := range matrix {
			e.F32(float32(v))
		}
	}
	b.buf.AddNested(dl.OpCount(true), dl.Bytes(true))
	if renderWithAttributes {
		b.updateLayerOpacityCompatibility(b.opacityCompatible)
	} else {
		b.updateLayerOpacityCompatibility(dl.CanApplyGroupOpacity())
	}

	if dl.IsUnbounded() {
		b.accumulateUnbounded()
		return
	}
	r := dl.Bounds()
	if matrix != nil {
		mapped, ok := matrix.MapRect(r)
		if !ok {
			b.accumulateUnbounded()
			return
		}
		r = mapped
	}
	if !r.IsEmpty() {
		b.accumulateOpBounds(r, imageFlags(renderWithAttributes, FlagsPicture))
	}
}

// DrawTextBlob draws blob with its origin at (x, y).
func (b *Builder) DrawTextBlob(blob TextBlob, x, y float32) {
	if blob == nil {
		return
	}
	b.push(OpDrawTextBlob, 12, 0).U32(b.ref(blob)).F32s(x, y)
	b.updateLayerOpacityCompatibility(false)
	b.accumulateOpBounds(blob.Bounds().Offset(x, y), FlagsText)
}

// DrawShadow draws the shadow cast by a copy of p at elevation. It ignores
// the current attributes.
func (b *Builder) DrawShadow(p *geom.Path, c Color, elevation float32, transparentOccluder bool, dpr float32) {
	if p == nil {
		return
	}
	b.push(OpDrawShadow, 17, 0).U32(b.ref(p.Clone())).U32(uint32(c)).
		F32s(elevation, dpr).Bool(transparentOccluder)
	b.updateLayerOpacityCompatibility(false)
	b.accumulateBounds(ShadowBounds(p.Bounds(), elevation, dpr))
}

// The WithPaint variants set the attributes the draw uses from p, then
// record the draw. p is applied as a whole: build it from NewPaint, since
// the zero Paint clears the destination.

// DrawPaintWithPaint is DrawPaint with the attributes of p.
func (b *Builder) DrawPaintWithPaint(p Paint) {
	b.SetAttributesFromPaint(p, FlagsPaint)
	b.DrawPaint()
}

// DrawLineWithPaint is DrawLine with the attributes of p.
func (b *Builder) DrawLineWithPaint(p0, p1 geom.Point, p Paint) {
	b.SetAttributesFromPaint(p, FlagsLine)
	b.DrawLine(p0, p1)
}

// DrawRectWithPaint is DrawRect with the attributes of p.
func (b *Builder) DrawRectWithPaint(r geom.Rect, p Paint) {
	b.SetAttributesFromPaint(p, FlagsRect)
	b.DrawRect(r)
}

// DrawOvalWithPaint is DrawOval with the attributes of p.
func (b *Builder) DrawOvalWithPaint(bounds geom.Rect, p Paint) {
	b.SetAttributesFromPaint(p, FlagsOval)
	b.DrawOval(bounds)
}

// DrawCircleWithPaint is DrawCircle with the attributes of p.
func (b *Builder) DrawCircleWithPaint(center geom.Point, radius float32, p Paint) {
	b.SetAttributesFromPaint(p, FlagsOval)
	b.DrawCircle(center, radius)
}

// DrawRRectWithPaint is DrawRRect with the attributes of p.
func (b *Builder) DrawRRectWithPaint(rr geom.RRect, p Paint) {
	b.SetAttributesFromPaint(p, FlagsRRect)
	b.DrawRRect(rr)
}

// DrawPathWithPaint is DrawPath with the attributes of p.
func (b *Builder) DrawPathWithPaint(path *geom.Path, p Paint) {
	b.SetAttributesFromPaint(p, FlagsPath)
	b.DrawPath(path)
}

// DrawArcWithPaint is DrawArc with the attributes of p.
func (b *Builder) DrawArcWithPaint(oval geom.Rect, startDegrees, sweepDegrees float32, useCenter bool, p Paint) {
	flags := FlagsArc
	if useCenter {
		flags = FlagsArcUseCenter
	}
	b.SetAttributesFromPaint(p, flags)
	b.DrawArc(oval, startDegrees, sweepDegrees, useCenter)
}
