// Package rtree is an immutable spatial index over the bounds of recorded
// operations. It answers "which operations touch this region" so that
// playback can skip everything outside a cull rect.
package rtree

import (
	"slices"

	"github.com/gogpu/displaylist/geom"
	"github.com/tidwall/rtree"
)

// RTree maps rectangles, in insertion order, to caller supplied ids.
// It is safe for concurrent searches once built.
type RTree struct {
	tree   rtree.RTreeGN[float32, int]
	rects  []geom.Rect
	ids    []int
	bounds geom.Rect
}

// New builds an index over rects. ids[i] is reported for rects[i]; when ids
// is nil the index i itself is used. Empty rects are not indexed.
func New(rects []geom.Rect, ids []int) *RTree {
	if ids != nil && len(ids) != len(rects) {
		panic("rtree: len(ids) != len(rects)")
	}
	t := &RTree{}
	for i, r := range rects {
		if r.IsEmpty() {
			continue
		}
		id := i
		if ids != nil {
			id = ids[i]
		}
		t.tree.Insert([2]float32{r.Left, r.Top}, [2]float32{r.Right, r.Bottom}, len(t.rects))
		t.rects = append(t.rects, r)
		t.ids = append(t.ids, id)
		t.bounds = t.bounds.Union(r)
	}
	return t
}

// Len returns the number of indexed rects.
func (t *RTree) Len() int {
	return len(t.rects)
}

// Bounds returns the union of all indexed rects.
func (t *RTree) Bounds() geom.Rect {
	return t.bounds
}

// Rect returns the i'th indexed rect.
func (t *RTree) Rect(i int) geom.Rect {
	return t.rects[i]
}

// ID returns the id of the i'th indexed rect.
func (t *RTree) ID(i int) int {
	return t.ids[i]
}

// Search returns the indices, in insertion order, of the rects that share
// area with query. Rects that only touch query are not reported.
func (t *RTree) Search(query geom.Rect) []int {
	if query.IsEmpty() || !query.Intersects(t.bounds) {
		return nil
	}
	var found []int
	t.tree.Search(
		[2]float32{query.Left, query.Top},
		[2]float32{query.Right, query.Bottom},
		func(_, _ [2]float32, i int) bool {
			if t.rects[i].Intersects(query) {
				found = append(found, i)
			}
			return true
		},
	)
	slices.Sort(found)
	return found
}

// SearchIDs returns the ids of the rects that share area with query,
// sorted and without duplicates.
func (t *RTree) SearchIDs(query geom.Rect) []int {
	idx := t.Search(query)
	out := make([]int, len(idx))
	for k, i := range idx {
		out[k] = t.ids[i]
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// SearchNonOverlapping returns the rects matching query merged until no two
// results overlap.
func (t *RTree) SearchNonOverlapping(query geom.Rect) []geom.Rect {
	var out []geom.Rect
	for _, i := range t.Search(query) {
		r := t.rects[i]
		for merged := true; merged; {
			merged = false
			for j, o := range out {
				if o.Intersects(r) {
					r = r.Union(o)
					out = slices.Delete(out, j, j+1)
					merged = true
					break
				}
			}
		}
		out = append(out, r)
	}
	return out
}
