package displaylist

import (
	"testing"

	"github.com/gogpu/displaylist/geom"
)

func TestBuilderOptions(t *testing.T) {
	if got := NewBuilder().CullRect(); got != MaxCullRect {
		t.Errorf("default CullRect() = %v, want %v", got, MaxCullRect)
	}

	cull := geom.MakeWH(100, 50)
	b := NewBuilder(WithCullRect(cull), WithRTree(true), WithInitialCapacity(1024))
	if got := b.CullRect(); got != cull {
		t.Errorf("CullRect() = %v, want %v", got, cull)
	}
	b.DrawRect(geom.MakeLTRB(10, 10, 20, 20))
	dl := b.Build()
	if dl.RTree() == nil {
		t.Error("RTree() = nil with WithRTree(true)")
	}

	// Options survive Build.
	b.DrawRect(geom.MakeLTRB(10, 10, 20, 20))
	if dl := b.Build(); dl.RTree() == nil || b.CullRect() != cull {
		t.Error("options lost after Build")
	}
}

func TestBuilderWithoutRTree(t *testing.T) {
	b := NewBuilder(WithRTree(false))
	b.DrawRect(geom.MakeLTRB(10, 10, 20, 20))
	if dl := b.Build(); dl.RTree() != nil {
		t.Error("RTree() != nil without WithRTree")
	}
}

func TestLargestCullRectFloodIsUnbounded(t *testing.T) {
	b := NewBuilder(WithCullRect(geom.LargestRect))
	b.DrawPaint()
	if dl := b.Build(); !dl.IsUnbounded() {
		t.Error("IsUnbounded() = false for a flood without a finite cull")
	}

	b = NewBuilder()
	b.DrawPaint()
	if dl := b.Build(); dl.IsUnbounded() || dl.Bounds() != MaxCullRect {
		t.Errorf("flood bounds = %v, unbounded %v", dl.Bounds(), dl.IsUnbounded())
	}
}
