package displaylist

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/displaylist/bounds"
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/internal/opbuf"
)

// saveState tracks whether the Save op of a frame has been recorded.
type saveState uint8

const (
	// saveNotApplicable is used by the root frame and by layers, whose
	// SaveLayer op is always recorded.
	saveNotApplicable saveState = iota
	// saveDeferred means Save was called but nothing has changed the frame
	// yet, so no op has been recorded.
	saveDeferred
	// saveWritten means the Save op has been recorded and Restore must be
	// recorded too.
	saveWritten
)

// layerInfo is one entry of the save stack.
type layerInfo struct {
	offset   opbuf.Offset
	hasLayer bool
	save     saveState

	m44  geom.M44
	m33  geom.M33
	clip geom.Rect

	// filter is applied to the layer content bounds at restore.
	filter    ImageFilter
	unbounded bool

	hasCompatibleOp      bool
	cannotInheritOpacity bool
}

// addCompatibleOp records an op that can take an inherited opacity. A
// second one makes the frame incompatible because the ops may overlap.
func (l *layerInfo) addCompatibleOp() {
	if l.cannotInheritOpacity {
		return
	}
	if l.hasCompatibleOp {
		l.cannotInheritOpacity = true
	} else {
		l.hasCompatibleOp = true
	}
}

func (l *layerInfo) markIncompatible() {
	l.cannotInheritOpacity = true
}

func (l *layerInfo) isGroupOpacityCompatible() bool {
	return !l.cannotInheritOpacity
}

func (l *layerInfo) setMatrix(m geom.M44) {
	l.m44 = m
	l.m33 = m.AsM33()
}

// Builder records drawing calls into a DisplayList.
//
// Example:
//
//	b := displaylist.NewBuilder(displaylist.WithCullRect(geom.MakeWH(800, 600)))
//	b.Save()
//	b.ClipRect(geom.MakeLTRB(0, 0, 100, 100), displaylist.ClipIntersect, true)
//	b.SetColor(displaylist.Red)
//	b.DrawRect(geom.MakeLTRB(10, 10, 50, 50))
//	b.Restore()
//	dl := b.Build()
//
// A Builder is not safe for concurrent use. Precondition violations
// (unbalanced Restore, RestoreToCount out of range, Build with open
// saves) panic.
type Builder struct {
	opts builderOptions

	buf    *opbuf.Buffer
	layers []layerInfo
	acc    bounds.Accumulator

	current           Paint
	opacityCompatible bool

	// last is the offset of the most recently pushed record.
	last opbuf.Offset
}

var _ Dispatcher = (*Builder)(nil)

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{opts: o}
	b.reset()
	return b
}

// reset starts a fresh recording with the original options.
func (b *Builder) reset() {
	b.buf = opbuf.New(b.opts.initialCapacity)
	root := layerInfo{clip: b.opts.cullRect}
	root.setMatrix(geom.Identity44())
	b.layers = append(b.layers[:0], root)
	if b.opts.rtree {
		b.acc = bounds.NewRTreeAccumulator()
	} else {
		b.acc = bounds.NewRectAccumulator()
	}
	b.current = NewPaint()
	b.opacityCompatible = true
}

func (b *Builder) top() *layerInfo {
	return &b.layers[len(b.layers)-1]
}

// push appends a record and returns an encoder for its payload.
func (b *Builder) push(op OpType, inline, extra int) *opbuf.Enc {
	off, payload := b.buf.Push(uint8(op), inline, extra)
	b.last = off
	return opbuf.NewEnc(payload)
}

// lastOpIndex returns the index of the most recently pushed record.
func (b *Builder) lastOpIndex() int {
	return b.buf.OpCount() - 1
}

// ref stores a shared object and returns its reference, or noRef for nil.
func (b *Builder) ref(v any) uint32 {
	if v == nil {
		return noRef
	}
	return b.buf.AddRef(v)
}

// Build returns the recorded DisplayList and resets the builder for a new
// recording. It panics if a Save or SaveLayer is still open.
func (b *Builder) Build() *DisplayList {
	if len(b.layers) != 1 {
		panic(fmt.Sprintf("displaylist: Build with %d unrestored saves", len(b.layers)-1))
	}
	root := b.layers[0]
	f := b.buf.Take()
	dl := &DisplayList{
		data:                 f.Data,
		refs:                 f.Refs,
		opCount:              f.OpCount,
		nestedOps:            f.NestedOps,
		nestedBytes:          f.NestedBytes,
		bounds:               b.acc.Bounds(),
		unbounded:            root.unbounded,
		canApplyGroupOpacity: root.isGroupOpacityCompatible(),
		rtree:                b.acc.RTree(),
		id:                   nextUniqueID(),
	}
	log := Logger()
	log.Debug("displaylist: built",
		slog.Uint64("id", uint64(dl.id)),
		slog.Int("ops", dl.opCount),
		slog.Int("bytes", len(dl.data)),
		slog.Any("bounds", dl.bounds))
	if dl.unbounded {
		log.Info("displaylist: recording is unbounded", slog.Uint64("id", uint64(dl.id)))
	}
	b.reset()
	return dl
}

// SaveCount returns the depth of the save stack, starting at 1.
func (b *Builder) SaveCount() int {
	return len(b.layers)
}

// OpCount returns the number of ops recorded so far.
func (b *Builder) OpCount() int {
	return b.buf.OpCount()
}

// CullRect returns the cull rect every recording starts with.
func (b *Builder) CullRect() geom.Rect {
	return b.opts.cullRect
}

// Transform returns the current 4x4 transform.
func (b *Builder) Transform() geom.M44 {
	return b.top().m44
}

// Transform33 returns the 3x3 projection of the current transform.
func (b *Builder) Transform33() geom.M33 {
	return b.top().m33
}

// DestinationClipBounds returns a conservative bound of the current clip
// in device coordinates.
func (b *Builder) DestinationClipBounds() geom.Rect {
	return b.top().clip
}

// LocalClipBounds returns DestinationClipBounds mapped back into the
// current local coordinates. It is empty when the transform is singular.
func (b *Builder) LocalClipBounds() geom.Rect {
	l := b.top()
	if !l.clip.IsFinite() {
		return l.clip
	}
	inv, ok := l.m33.Invert()
	if !ok {
		return geom.Rect{}
	}
	r, ok := inv.MapRect(l.clip)
	if !ok {
		return geom.Rect{}
	}
	return r
}

// QuickReject reports whether r, in local coordinates, is certainly
// outside the current clip.
func (b *Builder) QuickReject(r geom.Rect) bool {
	if r.IsEmpty() {
		return true
	}
	l := b.top()
	if _, ok := l.m33.Invert(); !ok {
		return true
	}
	dev, ok := l.m33.MapRect(r)
	if !ok {
		return false
	}
	return !l.clip.Intersects(dev.RoundOut())
}

// Attributes returns a copy of the current rendering attributes.
func (b *Builder) Attributes() Paint {
	return b.current
}

// BlendMode returns the current blend mode. The boolean is false while a
// custom blender is set.
func (b *Builder) BlendMode() (BlendMode, bool) {
	return b.current.Blend.Mode()
}

// OpacityCompatible reports whether the current attributes allow ops to
// take an inherited opacity.
func (b *Builder) OpacityCompatible() bool {
	return b.opacityCompatible
}
