package rtree

import (
	"testing"

	"github.com/gogpu/displaylist/geom"
	"github.com/stretchr/testify/assert"
)

func grid(n int) []geom.Rect {
	var rects []geom.Rect
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			rects = append(rects, geom.MakeXYWH(float32(x*10), float32(y*10), 5, 5))
		}
	}
	return rects
}

func TestSearch(t *testing.T) {
	tr := New(grid(10), nil)
	assert.Equal(t, 100, tr.Len())
	assert.Equal(t, geom.MakeLTRB(0, 0, 95, 95), tr.Bounds())

	got := tr.Search(geom.MakeLTRB(0, 0, 12, 12))
	assert.Equal(t, []int{0, 1, 10, 11}, got)

	assert.Empty(t, tr.Search(geom.MakeLTRB(6, 6, 9, 9)), "query in a gap")
	assert.Empty(t, tr.Search(geom.MakeLTRB(5, 0, 10, 5)), "touching edges only")
	assert.Empty(t, tr.Search(geom.Rect{}))
}

func TestSearchLarge(t *testing.T) {
	// Enough entries to force node splits.
	tr := New(grid(40), nil)
	got := tr.Search(geom.MakeLTRB(100, 100, 121, 111))
	assert.Equal(t, []int{410, 411, 412, 450, 451, 452}, got)
}

func TestIDs(t *testing.T) {
	rects := []geom.Rect{
		geom.MakeLTRB(0, 0, 10, 10),
		{},
		geom.MakeLTRB(5, 5, 15, 15),
		geom.MakeLTRB(50, 50, 60, 60),
	}
	tr := New(rects, []int{3, 4, 4, 7})
	assert.Equal(t, 3, tr.Len(), "empty rect skipped")
	assert.Equal(t, []int{3, 4}, tr.SearchIDs(geom.MakeLTRB(0, 0, 20, 20)))
	assert.Equal(t, []int{7}, tr.SearchIDs(geom.MakeLTRB(55, 55, 56, 56)))
	assert.Equal(t, 4, tr.ID(1))
	assert.Equal(t, rects[2], tr.Rect(1))
}

func TestSearchNonOverlapping(t *testing.T) {
	rects := []geom.Rect{
		geom.MakeLTRB(0, 0, 10, 10),
		geom.MakeLTRB(20, 0, 30, 10),
		geom.MakeLTRB(5, 5, 25, 8),
		geom.MakeLTRB(100, 100, 110, 110),
	}
	tr := New(rects, nil)
	got := tr.SearchNonOverlapping(geom.MakeLTRB(-1000, -1000, 1000, 1000))
	assert.ElementsMatch(t, []geom.Rect{
		geom.MakeLTRB(0, 0, 30, 10),
		geom.MakeLTRB(100, 100, 110, 110),
	}, got)
}

func TestLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		New([]geom.Rect{{}}, []int{1, 2})
	})
}
