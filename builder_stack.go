package displaylist

import (
	"fmt"

	"github.com/gogpu/displaylist/geom"
)

// Save pushes a copy of the current transform and clip. The Save op is
// only recorded once the frame is modified by a transform or clip.
func (b *Builder) Save() {
	l := *b.top()
	l.offset = 0
	l.hasLayer = false
	l.save = saveDeferred
	l.filter = nil
	l.unbounded = false
	l.hasCompatibleOp = false
	l.cannotInheritOpacity = false
	b.layers = append(b.layers, l)
}

// checkForDeferredSave records the pending Save op of the current frame.
func (b *Builder) checkForDeferredSave() {
	l := b.top()
	if l.save != saveDeferred {
		return
	}
	b.push(OpSave, 0, 0)
	l.offset = b.last
	l.save = saveWritten
}

// SaveLayer opens an offscreen layer that is composited into its parent by
// the matching Restore. When options has RendersWithAttributes the layer
// is composited with the current alpha, blend, color filter and image
// filter. bounds, when non-nil, clips the layer content. backdrop filters
// the parent content behind the layer.
//
// CanDistributeOpacity is computed by the builder and ignored in options.
func (b *Builder) SaveLayer(bounds *geom.Rect, options SaveLayerOptions, backdrop ImageFilter) {
	options &^= CanDistributeOpacity
	withAttrs := options.RendersWithAttributes()

	e := b.push(OpSaveLayer, 24, 0)
	e.U8(uint8(options)).Bool(bounds != nil).Skip(2)
	if bounds != nil {
		encRect(e, *bounds)
	} else {
		e.Skip(16)
	}
	e.U32(b.ref(backdrop))
	off := b.last

	if backdrop != nil {
		b.updateLayerOpacityCompatibility(false)
	} else {
		b.checkLayerOpacityCompatibility(withAttrs)
	}
	if withAttrs && !b.paintNopsOnTransparency() {
		b.accumulateUnbounded()
	}

	parent := b.top()
	l := layerInfo{
		offset:   off,
		hasLayer: true,
		m44:      parent.m44,
		m33:      parent.m33,
		clip:     parent.clip,
	}
	if withAttrs {
		l.filter = b.current.ImageFilter
	}
	b.layers = append(b.layers, l)
	b.acc.Save()

	if withAttrs && (!b.opacityCompatible || b.current.ImageFilter != nil) {
		b.top().markIncompatible()
	}
	if bounds != nil {
		b.intersectClip(*bounds)
	}
	if backdrop != nil {
		b.accumulateUnbounded()
	}
}

// SaveLayerWithPaint opens a layer composited with p, or without
// attributes when p is nil.
func (b *Builder) SaveLayerWithPaint(bounds *geom.Rect, p *Paint, backdrop ImageFilter) {
	var options SaveLayerOptions
	if p != nil {
		b.SetAttributesFromPaint(*p, FlagsSaveLayer)
		options = RendersWithAttributes
	}
	b.SaveLayer(bounds, options, backdrop)
}

// Restore pops the innermost Save or SaveLayer. It panics when there is
// nothing to restore.
func (b *Builder) Restore() {
	if len(b.layers) <= 1 {
		panic("displaylist: Restore without matching Save")
	}
	popped := b.layers[len(b.layers)-1]
	b.layers = b.layers[:len(b.layers)-1]
	parent := b.top()

	if !popped.hasLayer {
		if popped.save == saveWritten {
			b.push(OpRestore, 0, 0)
		}
		parent.unbounded = parent.unbounded || popped.unbounded
		if popped.cannotInheritOpacity {
			parent.markIncompatible()
		} else if popped.hasCompatibleOp {
			parent.addCompatibleOp()
		}
		return
	}

	if filter := popped.filter; filter != nil {
		ctm := parent.m33
		clip := parent.clip
		mapped := b.acc.RestoreMapped(func(r geom.Rect) (geom.Rect, bool) {
			return filter.MapDeviceBounds(r.RoundOut(), ctm)
		}, &clip)
		if !mapped {
			popped.unbounded = true
		}
	} else {
		b.acc.Restore()
	}
	if popped.unbounded {
		b.accumulateUnbounded()
	}

	b.push(OpRestore, 0, 0)
	if popped.isGroupOpacityCompatible() {
		options := SaveLayerOptions(b.buf.Byte(popped.offset, saveLayerOptionsField))
		b.buf.PatchByte(popped.offset, saveLayerOptionsField, uint8(options|CanDistributeOpacity))
	}
}

// RestoreToCount restores until SaveCount returns count. It panics when
// count is not in [1, SaveCount()].
func (b *Builder) RestoreToCount(count int) {
	if count < 1 || count > b.SaveCount() {
		panic(fmt.Sprintf("displaylist: RestoreToCount(%d) with save count %d", count, b.SaveCount()))
	}
	for b.SaveCount() > count {
		b.Restore()
	}
}
