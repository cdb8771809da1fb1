package displaylist

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gogpu/displaylist/geom"
)

func init() {
	RegisterDispatcher("trace", func() Dispatcher { return NewTraceDispatcher(nil) })
	RegisterDispatcher("stats", func() Dispatcher { return NewStatsDispatcher() })
}

// Tracer is a Dispatcher that reports every call to a sink, descending
// into nested display lists.
type Tracer struct {
	sink  func(op OpType, depth int, attrs []slog.Attr)
	depth int
}

var _ Dispatcher = (*Tracer)(nil)

// NewTraceDispatcher returns a Tracer logging each call at debug level to
// l, or to Logger() when l is nil.
func NewTraceDispatcher(l *slog.Logger) *Tracer {
	return &Tracer{sink: func(op OpType, depth int, attrs []slog.Attr) {
		log := l
		if log == nil {
			log = Logger()
		}
		if !log.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs = append(attrs, slog.Int("depth", depth))
		log.LogAttrs(context.Background(), slog.LevelDebug, "displaylist: "+op.String(), attrs...)
	}}
}

func (t *Tracer) emit(op OpType, attrs ...slog.Attr) {
	t.sink(op, t.depth, attrs)
}

func rectAttr(key string, r geom.Rect) slog.Attr {
	return slog.String(key, fmt.Sprintf("[%g %g %g %g]", r.Left, r.Top, r.Right, r.Bottom))
}

func pointAttr(key string, p geom.Point) slog.Attr {
	return slog.String(key, fmt.Sprintf("(%g %g)", p.X, p.Y))
}

const fixedFunctionKey = "fixed_function"

// blendAttrs describes mode and the GPU blend factors implementing it on
// color channels. Modes that need a shader report fixed_function=false.
func blendAttrs(mode BlendMode) []slog.Attr {
	state, ok := mode.GPUBlendState()
	attrs := []slog.Attr{slog.String("mode", mode.String()), slog.Bool(fixedFunctionKey, ok)}
	if ok {
		attrs = append(attrs,
			slog.String("src_factor", state.Color.SrcFactor.String()),
			slog.String("dst_factor", state.Color.DstFactor.String()))
	}
	return attrs
}

func (t *Tracer) SetAntiAlias(aa bool)         { t.emit(OpSetAntiAlias, slog.Bool("aa", aa)) }
func (t *Tracer) SetDither(dither bool)        { t.emit(OpSetDither, slog.Bool("dither", dither)) }
func (t *Tracer) SetInvertColors(invert bool)  { t.emit(OpSetInvertColors, slog.Bool("invert", invert)) }
func (t *Tracer) SetStrokeCap(lineCap LineCap) { t.emit(OpSetStrokeCap, slog.Int("cap", int(lineCap))) }
func (t *Tracer) SetStrokeJoin(join LineJoin)  { t.emit(OpSetStrokeJoin, slog.Int("join", int(join))) }
func (t *Tracer) SetStyle(style DrawStyle)     { t.emit(OpSetStyle, slog.Int("style", int(style))) }
func (t *Tracer) SetStrokeWidth(width float32) { t.emit(OpSetStrokeWidth, slog.Float64("width", float64(width))) }
func (t *Tracer) SetStrokeMiter(limit float32) { t.emit(OpSetStrokeMiter, slog.Float64("miter", float64(limit))) }
func (t *Tracer) SetColor(c Color)             { t.emit(OpSetColor, slog.String("color", c.String())) }
func (t *Tracer) SetBlendMode(mode BlendMode)  { t.emit(OpSetBlendMode, blendAttrs(mode)...) }
func (t *Tracer) SetBlender(b Blender)         { t.emit(OpSetBlender, slog.Bool("set", b != nil)) }
func (t *Tracer) SetColorSource(s ColorSource) { t.emit(OpSetColorSource, slog.Bool("set", s != nil)) }
func (t *Tracer) SetImageFilter(f ImageFilter) { t.emit(OpSetImageFilter, slog.Bool("set", f != nil)) }
func (t *Tracer) SetColorFilter(f ColorFilter) { t.emit(OpSetColorFilter, slog.Bool("set", f != nil)) }
func (t *Tracer) SetPathEffect(e PathEffect)   { t.emit(OpSetPathEffect, slog.Bool("set", e != nil)) }
func (t *Tracer) SetMaskFilter(f MaskFilter)   { t.emit(OpSetMaskFilter, slog.Bool("set", f != nil)) }

func (t *Tracer) Save() { t.emit(OpSave) }

func (t *Tracer) SaveLayer(bounds *geom.Rect, options SaveLayerOptions, backdrop ImageFilter) {
	attrs := []slog.Attr{
		slog.Bool("attributes", options.RendersWithAttributes()),
		slog.Bool("distribute_opacity", options.CanDistributeOpacity()),
		slog.Bool("backdrop", backdrop != nil),
	}
	if bounds != nil {
		attrs = append(attrs, rectAttr("bounds", *bounds))
	}
	t.emit(OpSaveLayer, attrs...)
}

func (t *Tracer) Restore() { t.emit(OpRestore) }

func (t *Tracer) Translate(tx, ty float32) { t.emit(OpTranslate, pointAttr("t", geom.Pt(tx, ty))) }
func (t *Tracer) Scale(sx, sy float32)     { t.emit(OpScale, pointAttr("s", geom.Pt(sx, sy))) }
func (t *Tracer) Rotate(degrees float32)   { t.emit(OpRotate, slog.Float64("degrees", float64(degrees))) }
func (t *Tracer) Skew(sx, sy float32)      { t.emit(OpSkew, pointAttr("s", geom.Pt(sx, sy))) }

func (t *Tracer) Transform2DAffine(mxx, mxy, mxt, myx, myy, myt float32) {
	t.emit(OpTransform2DAffine, slog.Any("m", []float32{mxx, mxy, mxt, myx, myy, myt}))
}

func (t *Tracer) TransformFullPerspective(m [16]float32) {
	t.emit(OpTransformFullPerspective, slog.Any("m", m[:]))
}

func (t *Tracer) TransformReset() { t.emit(OpTransformReset) }

func (t *Tracer) ClipRect(r geom.Rect, op ClipOp, aa bool) {
	t.emit(OpClipRect, rectAttr("rect", r), slog.String("op", op.String()), slog.Bool("aa", aa))
}

func (t *Tracer) ClipRRect(rr geom.RRect, op ClipOp, aa bool) {
	t.emit(OpClipRRect, rectAttr("rect", rr.Rect), slog.String("op", op.String()), slog.Bool("aa", aa))
}

func (t *Tracer) ClipPath(p *geom.Path, op ClipOp, aa bool) {
	t.emit(OpClipPath, rectAttr("bounds", p.Bounds()), slog.String("op", op.String()), slog.Bool("aa", aa))
}

func (t *Tracer) DrawPaint() { t.emit(OpDrawPaint) }

func (t *Tracer) DrawColor(c Color, mode BlendMode) {
	t.emit(OpDrawColor, append([]slog.Attr{slog.String("color", c.String())}, blendAttrs(mode)...)...)
}

func (t *Tracer) DrawLine(p0, p1 geom.Point) {
	t.emit(OpDrawLine, pointAttr("p0", p0), pointAttr("p1", p1))
}

func (t *Tracer) DrawRect(r geom.Rect)           { t.emit(OpDrawRect, rectAttr("rect", r)) }
func (t *Tracer) DrawOval(bounds geom.Rect)      { t.emit(OpDrawOval, rectAttr("bounds", bounds)) }
func (t *Tracer) DrawRRect(rr geom.RRect)        { t.emit(OpDrawRRect, rectAttr("rect", rr.Rect)) }
func (t *Tracer) DrawPath(p *geom.Path)          { t.emit(OpDrawPath, rectAttr("bounds", p.Bounds())) }
func (t *Tracer) DrawDRRect(outer, _ geom.RRect) { t.emit(OpDrawDRRect, rectAttr("outer", outer.Rect)) }

func (t *Tracer) DrawCircle(center geom.Point, radius float32) {
	t.emit(OpDrawCircle, pointAttr("center", center), slog.Float64("radius", float64(radius)))
}

func (t *Tracer) DrawArc(oval geom.Rect, startDegrees, sweepDegrees float32, useCenter bool) {
	t.emit(OpDrawArc, rectAttr("oval", oval),
		slog.Float64("start", float64(startDegrees)),
		slog.Float64("sweep", float64(sweepDegrees)),
		slog.Bool("center", useCenter))
}

func (t *Tracer) DrawPoints(mode PointMode, pts []geom.Point) {
	t.emit(OpDrawPoints, slog.Int("mode", int(mode)), slog.Int("count", len(pts)))
}

func (t *Tracer) DrawVertices(v *Vertices, mode BlendMode) {
	t.emit(OpDrawVertices, append([]slog.Attr{rectAttr("bounds", v.Bounds())}, blendAttrs(mode)...)...)
}

func (t *Tracer) DrawImage(img Image, p geom.Point, sampling Sampling, renderWithAttributes bool) {
	t.emit(OpDrawImage, pointAttr("at", p),
		slog.Int("width", img.Width()), slog.Int("height", img.Height()),
		slog.String("sampling", sampling.String()), slog.Bool("attributes", renderWithAttributes))
}

func (t *Tracer) DrawImageRect(_ Image, src, dst geom.Rect, sampling Sampling, renderWithAttributes bool, _ SrcRectConstraint) {
	t.emit(OpDrawImageRect, rectAttr("src", src), rectAttr("dst", dst),
		slog.String("sampling", sampling.String()), slog.Bool("attributes", renderWithAttributes))
}

func (t *Tracer) DrawImageNine(_ Image, center, dst geom.Rect, _ FilterMode, renderWithAttributes bool) {
	t.emit(OpDrawImageNine, rectAttr("center", center), rectAttr("dst", dst),
		slog.Bool("attributes", renderWithAttributes))
}

func (t *Tracer) DrawAtlas(_ Image, xforms []RSTransform, _ []geom.Rect, colors []Color, mode BlendMode, _ Sampling, _ *geom.Rect, renderWithAttributes bool) {
	t.emit(OpDrawAtlas, slog.Int("count", len(xforms)), slog.Bool("colors", colors != nil),
		slog.String("mode", mode.String()), slog.Bool("attributes", renderWithAttributes))
}

func (t *Tracer) DrawImageLattice(_ Image, lattice Lattice, dst geom.Rect, _ FilterMode, renderWithAttributes bool) {
	t.emit(OpDrawImageLattice, rectAttr("dst", dst),
		slog.Int("xdivs", len(lattice.XDivs)), slog.Int("ydivs", len(lattice.YDivs)),
		slog.Bool("attributes", renderWithAttributes))
}

// DrawDisplayList reports the call, then the calls of dl one level deeper.
func (t *Tracer) DrawDisplayList(dl *DisplayList, opacity float32) {
	t.emit(OpDrawDisplayList, slog.Uint64("id", uint64(dl.UniqueID())), slog.Float64("opacity", float64(opacity)))
	t.depth++
	dl.Dispatch(t)
	t.depth--
}

// DrawPicture reports the call, then the calls of dl one level deeper.
func (t *Tracer) DrawPicture(dl *DisplayList, matrix *geom.M33, renderWithAttributes bool) {
	t.emit(OpDrawPicture, slog.Uint64("id", uint64(dl.UniqueID())),
		slog.Bool("matrix", matrix != nil), slog.Bool("attributes", renderWithAttributes))
	t.depth++
	dl.Dispatch(t)
	t.depth--
}

func (t *Tracer) DrawTextBlob(blob TextBlob, x, y float32) {
	t.emit(OpDrawTextBlob, rectAttr("bounds", blob.Bounds()), pointAttr("at", geom.Pt(x, y)))
}

func (t *Tracer) DrawShadow(p *geom.Path, c Color, elevation float32, _ bool, dpr float32) {
	t.emit(OpDrawShadow, rectAttr("bounds", p.Bounds()), slog.String("color", c.String()),
		slog.Float64("elevation", float64(elevation)), slog.Float64("dpr", float64(dpr)))
}

// Stats counts the calls it receives per op, including those of nested
// display lists.
type Stats struct {
	Tracer
	counts       [opCount]int
	shaderBlends int
}

// NewStatsDispatcher returns an empty Stats.
func NewStatsDispatcher() *Stats {
	s := &Stats{}
	s.sink = func(op OpType, _ int, attrs []slog.Attr) {
		s.counts[op]++
		for _, a := range attrs {
			if a.Key == fixedFunctionKey && !a.Value.Bool() {
				s.shaderBlends++
			}
		}
	}
	return s
}

// ShaderBlends returns the number of blend modes received, from
// SetBlendMode, DrawColor and DrawVertices, that have no fixed-function
// GPU blend state.
func (s *Stats) ShaderBlends() int {
	return s.shaderBlends
}

// Count returns the number of op calls received.
func (s *Stats) Count(op OpType) int {
	if op >= opCount {
		return 0
	}
	return s.counts[op]
}

// Total returns the number of calls received.
func (s *Stats) Total() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// Draws returns the number of draw calls received.
func (s *Stats) Draws() int {
	n := 0
	for op, c := range s.counts {
		if OpType(op).IsDraw() {
			n += c
		}
	}
	return n
}

// String lists the non-zero counters by op name.
func (s *Stats) String() string {
	var parts []string
	for op, c := range s.counts {
		if c > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", OpType(op), c))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
