// Package bounds accumulates the device-space bounds of recorded
// operations, with nested regions for layers whose content is post
// processed (mapped through an image filter) before it reaches its parent.
package bounds

import (
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/rtree"
)

// MapFunc maps layer content bounds to the bounds of the filtered output.
// It returns false when the result cannot be computed.
type MapFunc func(geom.Rect) (geom.Rect, bool)

// Accumulator unions op bounds. Save opens a nested region and Restore or
// RestoreMapped closes it, folding its bounds into the enclosing region.
type Accumulator interface {
	// Accumulate adds r, already in root coordinates and clipped, for the
	// op at opIndex. Empty rects are ignored.
	Accumulate(r geom.Rect, opIndex int)

	// Save opens a nested region.
	Save()

	// Restore closes the innermost region, adding its bounds unchanged.
	Restore()

	// RestoreMapped closes the innermost region, mapping its content
	// through fn and intersecting the result with clip when clip is non
	// nil. It returns false when fn fails; the caller must then treat the
	// region as unbounded.
	RestoreMapped(fn MapFunc, clip *geom.Rect) bool

	// Bounds returns the union of everything accumulated.
	Bounds() geom.Rect

	// RTree returns a spatial index of the accumulated rects, or nil if
	// the accumulator does not keep per-op rects.
	RTree() *rtree.RTree
}

// RectAccumulator keeps a single running union per region.
type RectAccumulator struct {
	rect  geom.Rect
	saved []geom.Rect
}

// NewRectAccumulator returns an empty RectAccumulator.
func NewRectAccumulator() *RectAccumulator {
	return &RectAccumulator{}
}

func (a *RectAccumulator) Accumulate(r geom.Rect, _ int) {
	a.rect = a.rect.Union(r)
}

func (a *RectAccumulator) Save() {
	a.saved = append(a.saved, a.rect)
	a.rect = geom.Rect{}
}

func (a *RectAccumulator) pop() geom.Rect {
	if len(a.saved) == 0 {
		panic("bounds: Restore without Save")
	}
	inner := a.rect
	a.rect = a.saved[len(a.saved)-1]
	a.saved = a.saved[:len(a.saved)-1]
	return inner
}

func (a *RectAccumulator) Restore() {
	inner := a.pop()
	a.rect = a.rect.Union(inner)
}

func (a *RectAccumulator) RestoreMapped(fn MapFunc, clip *geom.Rect) bool {
	inner := a.pop()
	if inner.IsEmpty() {
		return true
	}
	mapped, ok := fn(inner)
	if !ok {
		return false
	}
	if clip != nil {
		mapped, ok = mapped.Intersect(*clip)
		if !ok {
			return true
		}
	}
	a.rect = a.rect.Union(mapped)
	return true
}

func (a *RectAccumulator) Bounds() geom.Rect {
	return a.rect
}

func (a *RectAccumulator) RTree() *rtree.RTree {
	return nil
}

// RTreeAccumulator keeps every op rect with its op index so that the
// final result can be indexed.
type RTreeAccumulator struct {
	rects []geom.Rect
	ops   []int
	saved []int
}

// NewRTreeAccumulator returns an empty RTreeAccumulator.
func NewRTreeAccumulator() *RTreeAccumulator {
	return &RTreeAccumulator{}
}

func (a *RTreeAccumulator) Accumulate(r geom.Rect, opIndex int) {
	if r.IsEmpty() {
		return
	}
	a.rects = append(a.rects, r)
	a.ops = append(a.ops, opIndex)
}

func (a *RTreeAccumulator) Save() {
	a.saved = append(a.saved, len(a.rects))
}

func (a *RTreeAccumulator) pop() int {
	if len(a.saved) == 0 {
		panic("bounds: Restore without Save")
	}
	start := a.saved[len(a.saved)-1]
	a.saved = a.saved[:len(a.saved)-1]
	return start
}

func (a *RTreeAccumulator) Restore() {
	a.pop()
}

// RestoreMapped maps every rect of the region individually. On failure the
// region's rects are widened to clip, when given, so that culling never
// drops an op whose filtered output is unknown.
func (a *RTreeAccumulator) RestoreMapped(fn MapFunc, clip *geom.Rect) bool {
	start := a.pop()
	ok := true
	var (
		rects = a.rects[:start]
		ops   = a.ops[:start]
	)
	for i := start; i < len(a.rects); i++ {
		r, mapped := fn(a.rects[i])
		if !mapped {
			ok = false
			if clip == nil {
				r = a.rects[i]
			} else {
				r = *clip
			}
		} else if clip != nil {
			var hit bool
			if r, hit = r.Intersect(*clip); !hit {
				continue
			}
		}
		if r.IsEmpty() {
			continue
		}
		rects = append(rects, r)
		ops = append(ops, a.ops[i])
	}
	a.rects, a.ops = rects, ops
	return ok
}

func (a *RTreeAccumulator) Bounds() geom.Rect {
	var r geom.Rect
	for _, b := range a.rects {
		r = r.Union(b)
	}
	return r
}

func (a *RTreeAccumulator) RTree() *rtree.RTree {
	return rtree.New(a.rects, a.ops)
}
