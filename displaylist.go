package displaylist

import (
	"bytes"
	"sync/atomic"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/internal/opbuf"
	"github.com/gogpu/displaylist/rtree"
)

var lastUniqueID atomic.Uint32

func nextUniqueID() uint32 {
	return lastUniqueID.Add(1)
}

// DisplayList is an immutable recording produced by Builder.Build. It is
// safe for concurrent use by multiple goroutines.
type DisplayList struct {
	data []byte
	refs []any

	opCount     int
	nestedOps   int
	nestedBytes int

	bounds               geom.Rect
	unbounded            bool
	canApplyGroupOpacity bool
	rtree                *rtree.RTree
	id                   uint32
}

// Bounds returns the device-space bounds of everything the list draws,
// limited by the cull rect it was recorded with.
func (dl *DisplayList) Bounds() geom.Rect { return dl.bounds }

// IsUnbounded reports whether some op may draw outside Bounds because no
// finite clip constrained it.
func (dl *DisplayList) IsUnbounded() bool { return dl.unbounded }

// OpCount returns the number of recorded ops. With nested set it also
// counts the ops of embedded display lists.
func (dl *DisplayList) OpCount(nested bool) int {
	if nested {
		return dl.opCount + dl.nestedOps
	}
	return dl.opCount
}

// Bytes returns the size of the encoded ops. With nested set it also
// counts embedded display lists.
func (dl *DisplayList) Bytes(nested bool) int {
	if nested {
		return len(dl.data) + dl.nestedBytes
	}
	return len(dl.data)
}

// RTree returns the spatial index of the recorded ops, or nil when the
// builder did not use WithRTree.
func (dl *DisplayList) RTree() *rtree.RTree { return dl.rtree }

// CanApplyGroupOpacity reports whether an opacity applied to the whole
// list can be distributed to its ops instead of requiring a layer.
func (dl *DisplayList) CanApplyGroupOpacity() bool { return dl.canApplyGroupOpacity }

// UniqueID returns an identifier no other DisplayList in the process
// shares.
func (dl *DisplayList) UniqueID() uint32 { return dl.id }

// Equals reports whether both lists record the same ops with equal shared
// objects. Images and text blobs compare by identity.
func (dl *DisplayList) Equals(o *DisplayList) bool {
	if dl == o {
		return true
	}
	if dl == nil || o == nil {
		return false
	}
	if dl.opCount != o.opCount || !bytes.Equal(dl.data, o.data) || len(dl.refs) != len(o.refs) {
		return false
	}
	for i := range dl.refs {
		if !refEqual(dl.refs[i], o.refs[i]) {
			return false
		}
	}
	return true
}

func refEqual(a, b any) bool {
	switch x := a.(type) {
	case *geom.Path:
		y, ok := b.(*geom.Path)
		return ok && x.Equal(y)
	case *Vertices:
		y, ok := b.(*Vertices)
		return ok && x.Equal(y)
	case *DisplayList:
		y, ok := b.(*DisplayList)
		return ok && x.Equals(y)
	case ColorSource:
		y, ok := b.(ColorSource)
		return ok && effectEqual(x, y)
	case ColorFilter:
		y, ok := b.(ColorFilter)
		return ok && effectEqual(x, y)
	case ImageFilter:
		y, ok := b.(ImageFilter)
		return ok && effectEqual(x, y)
	case PathEffect:
		y, ok := b.(PathEffect)
		return ok && effectEqual(x, y)
	case MaskFilter:
		y, ok := b.(MaskFilter)
		return ok && effectEqual(x, y)
	case Blender:
		y, ok := b.(Blender)
		return ok && effectEqual(x, y)
	}
	return a == b
}

// Dispatch replays every recorded op into d, in order.
func (dl *DisplayList) Dispatch(d Dispatcher) {
	dl.dispatch(d, nil)
}

// DispatchCulled replays the ops that may draw inside cull, given in the
// device space of the recording. State ops are always replayed. Without
// an R-tree, or when cull covers the whole list, it is Dispatch.
func (dl *DisplayList) DispatchCulled(d Dispatcher, cull geom.Rect) {
	if cull.IsEmpty() {
		return
	}
	if dl.rtree == nil || dl.unbounded || cull.Contains(dl.bounds) {
		dl.dispatch(d, nil)
		return
	}
	ids := dl.rtree.SearchIDs(cull)
	dl.dispatch(d, func(index int) bool {
		for len(ids) > 0 && ids[0] < index {
			ids = ids[1:]
		}
		return len(ids) > 0 && ids[0] == index
	})
}

func refAt[T any](refs []any, i uint32) T {
	var zero T
	if i == noRef {
		return zero
	}
	v, _ := refs[i].(T)
	return v
}

// dispatch walks the records. keep, when non-nil, selects the draw ops to
// replay by index; indices are visited in increasing order.
func (dl *DisplayList) dispatch(d Dispatcher, keep func(index int) bool) {
	w := opbuf.NewWalker(dl.data)
	for index := 0; ; index++ {
		rec, ok := w.Next()
		if !ok {
			return
		}
		op := OpType(rec.Op)
		if keep != nil && op.IsDraw() && !keep(index) {
			continue
		}
		dl.replay(d, op, opbuf.NewDec(rec.Payload))
	}
}

func (dl *DisplayList) replay(d Dispatcher, op OpType, r *opbuf.Dec) {
	refs := dl.refs
	switch op {
	case OpSetAntiAlias:
		d.SetAntiAlias(r.Bool())
	case OpSetDither:
		d.SetDither(r.Bool())
	case OpSetInvertColors:
		d.SetInvertColors(r.Bool())
	case OpSetStrokeCap:
		d.SetStrokeCap(LineCap(r.U8()))
	case OpSetStrokeJoin:
		d.SetStrokeJoin(LineJoin(r.U8()))
	case OpSetStyle:
		d.SetStyle(DrawStyle(r.U8()))
	case OpSetStrokeWidth:
		d.SetStrokeWidth(r.F32())
	case OpSetStrokeMiter:
		d.SetStrokeMiter(r.F32())
	case OpSetColor:
		d.SetColor(Color(r.U32()))
	case OpSetBlendMode:
		d.SetBlendMode(BlendMode(r.U8()))
	case OpSetBlender:
		d.SetBlender(refAt[Blender](refs, r.U32()))
	case OpSetColorSource:
		d.SetColorSource(refAt[ColorSource](refs, r.U32()))
	case OpSetImageFilter:
		d.SetImageFilter(refAt[ImageFilter](refs, r.U32()))
	case OpSetColorFilter:
		d.SetColorFilter(refAt[ColorFilter](refs, r.U32()))
	case OpSetPathEffect:
		d.SetPathEffect(refAt[PathEffect](refs, r.U32()))
	case OpSetMaskFilter:
		d.SetMaskFilter(refAt[MaskFilter](refs, r.U32()))

	case OpSave:
		d.Save()
	case OpSaveLayer:
		options := SaveLayerOptions(r.U8())
		hasBounds := r.Bool()
		r.Skip(2)
		bounds := decRect(r)
		backdrop := refAt[ImageFilter](refs, r.U32())
		if hasBounds {
			d.SaveLayer(&bounds, options, backdrop)
		} else {
			d.SaveLayer(nil, options, backdrop)
		}
	case OpRestore:
		d.Restore()

	case OpTranslate:
		d.Translate(r.F32(), r.F32())
	case OpScale:
		d.Scale(r.F32(), r.F32())
	case OpRotate:
		d.Rotate(r.F32())
	case OpSkew:
		d.Skew(r.F32(), r.F32())
	case OpTransform2DAffine:
		d.Transform2DAffine(r.F32(), r.F32(), r.F32(), r.F32(), r.F32(), r.F32())
	case OpTransformFullPerspective:
		d.TransformFullPerspective([16]float32(r.F32s(16)))
	case OpTransformReset:
		d.TransformReset()

	case OpClipRect:
		clipOp, aa := ClipOp(r.U8()), r.Bool()
		d.ClipRect(decRect(r.Skip(2)), clipOp, aa)
	case OpClipRRect:
		clipOp, aa := ClipOp(r.U8()), r.Bool()
		d.ClipRRect(decRRect(r.Skip(2)), clipOp, aa)
	case OpClipPath:
		clipOp, aa := ClipOp(r.U8()), r.Bool()
		d.ClipPath(refAt[*geom.Path](refs, r.Skip(2).U32()), clipOp, aa)

	case OpDrawPaint:
		d.DrawPaint()
	case OpDrawColor:
		d.DrawColor(Color(r.U32()), BlendMode(r.U8()))
	case OpDrawLine:
		p0 := decPoint(r)
		d.DrawLine(p0, decPoint(r))
	case OpDrawRect:
		d.DrawRect(decRect(r))
	case OpDrawOval:
		d.DrawOval(decRect(r))
	case OpDrawCircle:
		center := decPoint(r)
		d.DrawCircle(center, r.F32())
	case OpDrawRRect:
		d.DrawRRect(decRRect(r))
	case OpDrawDRRect:
		outer := decRRect(r)
		d.DrawDRRect(outer, decRRect(r))
	case OpDrawPath:
		d.DrawPath(refAt[*geom.Path](refs, r.U32()))
	case OpDrawArc:
		oval := decRect(r)
		start, sweep := r.F32(), r.F32()
		d.DrawArc(oval, start, sweep, r.Bool())
	case OpDrawPoints:
		mode := PointMode(r.U8())
		n := int(r.Skip(3).U32())
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = decPoint(r)
		}
		d.DrawPoints(mode, pts)
	case OpDrawVertices:
		v := refAt[*Vertices](refs, r.U32())
		d.DrawVertices(v, BlendMode(r.U8()))
	case OpDrawImage:
		img := refAt[Image](refs, r.U32())
		p := decPoint(r)
		sampling := Sampling(r.U8())
		d.DrawImage(img, p, sampling, r.Bool())
	case OpDrawImageRect:
		img := refAt[Image](refs, r.U32())
		src, dst := decRect(r), decRect(r)
		sampling, attrs := Sampling(r.U8()), r.Bool()
		d.DrawImageRect(img, src, dst, sampling, attrs, SrcRectConstraint(r.U8()))
	case OpDrawImageNine:
		img := refAt[Image](refs, r.U32())
		center, dst := decRect(r), decRect(r)
		filter := FilterMode(r.U8())
		d.DrawImageNine(img, center, dst, filter, r.Bool())
	case OpDrawImageLattice:
		dl.replayLattice(d, r)
	case OpDrawAtlas:
		dl.replayAtlas(d, r)
	case OpDrawDisplayList:
		nested := refAt[*DisplayList](refs, r.U32())
		d.DrawDisplayList(nested, r.F32())
	case OpDrawPicture:
		nested := refAt[*DisplayList](refs, r.U32())
		hasMatrix, attrs := r.Bool(), r.Bool()
		r.Skip(2)
		if !hasMatrix {
			d.DrawPicture(nested, nil, attrs)
			break
		}
		var m geom.M33
		for i := range m {
			m[i] = float64(r.F32())
		}
		d.DrawPicture(nested, &m, attrs)
	case OpDrawTextBlob:
		blob := refAt[TextBlob](refs, r.U32())
		x, y := r.F32(), r.F32()
		d.DrawTextBlob(blob, x, y)
	case OpDrawShadow:
		p := refAt[*geom.Path](refs, r.U32())
		c := Color(r.U32())
		elevation, dpr := r.F32(), r.F32()
		d.DrawShadow(p, c, elevation, r.Bool(), dpr)
	default:
		panic("displaylist: unknown op " + op.String())
	}
}

func (dl *DisplayList) replayAtlas(d Dispatcher, r *opbuf.Dec) {
	atlas := refAt[Image](dl.refs, r.U32())
	mode := BlendMode(r.U8())
	sampling := Sampling(r.U8())
	attrs := r.Bool()
	hasColors := r.Bool()
	hasCull := r.Bool()
	n := int(r.Skip(3).U32())
	cullRect := decRect(r)

	xforms := make([]RSTransform, n)
	for i := range xforms {
		xforms[i] = RSTransform{SCos: r.F32(), SSin: r.F32(), TX: r.F32(), TY: r.F32()}
	}
	tex := make([]geom.Rect, n)
	for i := range tex {
		tex[i] = decRect(r)
	}
	var colors []Color
	if hasColors {
		colors = make([]Color, n)
		for i := range colors {
			colors[i] = Color(r.U32())
		}
	}
	var cull *geom.Rect
	if hasCull {
		cull = &cullRect
	}
	d.DrawAtlas(atlas, xforms, tex, colors, mode, sampling, cull, attrs)
}

func (dl *DisplayList) replayLattice(d Dispatcher, r *opbuf.Dec) {
	img := refAt[Image](dl.refs, r.U32())
	filter := FilterMode(r.U8())
	attrs := r.Bool()
	hasTypes, hasColors, hasSrc := r.Bool(), r.Bool(), r.Bool()
	nx := int(r.Skip(3).U32())
	ny := int(r.U32())
	dst, src := decRect(r), decRect(r)

	var l Lattice
	l.XDivs = make([]int32, nx)
	for i := range l.XDivs {
		l.XDivs[i] = r.I32()
	}
	l.YDivs = make([]int32, ny)
	for i := range l.YDivs {
		l.YDivs[i] = r.I32()
	}
	if hasTypes {
		l.RectTypes = make([]LatticeRectType, l.Cells())
		for i := range l.RectTypes {
			l.RectTypes[i] = LatticeRectType(r.U8())
		}
	}
	if hasColors {
		l.Colors = make([]Color, l.Cells())
		for i := range l.Colors {
			l.Colors[i] = Color(r.U32())
		}
	}
	if hasSrc {
		l.Src = &src
	}
	d.DrawImageLattice(img, l, dst, filter, attrs)
}
