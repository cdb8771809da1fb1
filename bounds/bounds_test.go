package bounds

import (
	"testing"

	"github.com/gogpu/displaylist/geom"
)

func outset(n float32) MapFunc {
	return func(r geom.Rect) (geom.Rect, bool) { return r.Outset(n, n), true }
}

func fail(geom.Rect) (geom.Rect, bool) { return geom.Rect{}, false }

func accumulators() map[string]func() Accumulator {
	return map[string]func() Accumulator{
		"rect":  func() Accumulator { return NewRectAccumulator() },
		"rtree": func() Accumulator { return NewRTreeAccumulator() },
	}
}

func TestAccumulateUnion(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			a := newAcc()
			a.Accumulate(geom.MakeLTRB(10, 10, 20, 20), 0)
			a.Accumulate(geom.Rect{}, 1)
			a.Accumulate(geom.MakeLTRB(30, 5, 40, 15), 2)
			want := geom.MakeLTRB(10, 5, 40, 20)
			if got := a.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestSaveRestore(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			a := newAcc()
			a.Accumulate(geom.MakeLTRB(0, 0, 10, 10), 0)
			a.Save()
			a.Accumulate(geom.MakeLTRB(50, 50, 60, 60), 2)
			a.Restore()
			want := geom.MakeLTRB(0, 0, 60, 60)
			if got := a.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestRestoreMapped(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			a := newAcc()
			a.Save()
			a.Accumulate(geom.MakeLTRB(10, 10, 20, 20), 1)
			clip := geom.MakeLTRB(0, 0, 22, 100)
			if !a.RestoreMapped(outset(5), &clip) {
				t.Fatal("RestoreMapped() = false, want true")
			}
			want := geom.MakeLTRB(5, 5, 22, 25)
			if got := a.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestRestoreMappedEmptyRegion(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			a := newAcc()
			a.Save()
			if !a.RestoreMapped(fail, nil) {
				t.Error("RestoreMapped() of empty region = false, want true")
			}
			if got := a.Bounds(); !got.IsEmpty() {
				t.Errorf("Bounds() = %v, want empty", got)
			}
		})
	}
}

func TestRestoreMappedFailure(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			a := newAcc()
			a.Save()
			a.Accumulate(geom.MakeLTRB(10, 10, 20, 20), 1)
			clip := geom.MakeLTRB(0, 0, 100, 100)
			if a.RestoreMapped(fail, &clip) {
				t.Error("RestoreMapped() = true, want false")
			}
		})
	}
}

func TestRestoreWithoutSavePanics(t *testing.T) {
	for name, newAcc := range accumulators() {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Restore() without Save() did not panic")
				}
			}()
			newAcc().Restore()
		})
	}
}

func TestRectAccumulatorHasNoRTree(t *testing.T) {
	if NewRectAccumulator().RTree() != nil {
		t.Error("RectAccumulator.RTree() != nil")
	}
}

func TestRTreeAccumulatorIndex(t *testing.T) {
	a := NewRTreeAccumulator()
	a.Accumulate(geom.MakeLTRB(0, 0, 10, 10), 3)
	a.Save()
	a.Accumulate(geom.MakeLTRB(40, 40, 50, 50), 7)
	a.Accumulate(geom.MakeLTRB(90, 90, 95, 95), 8)
	clip := geom.MakeLTRB(0, 0, 60, 60)
	a.RestoreMapped(outset(2), &clip)

	tr := a.RTree()
	if tr.Len() != 2 {
		t.Fatalf("RTree().Len() = %d, want 2 (op 8 clipped away)", tr.Len())
	}
	got := tr.SearchIDs(geom.MakeLTRB(35, 35, 39, 39))
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("SearchIDs() = %v, want [7]", got)
	}
}

func TestRTreeAccumulatorFailureWidensToClip(t *testing.T) {
	a := NewRTreeAccumulator()
	a.Save()
	a.Accumulate(geom.MakeLTRB(40, 40, 50, 50), 4)
	clip := geom.MakeLTRB(0, 0, 100, 100)
	a.RestoreMapped(fail, &clip)

	got := a.RTree().SearchIDs(geom.MakeLTRB(1, 1, 2, 2))
	if len(got) != 1 || got[0] != 4 {
		t.Errorf("SearchIDs() = %v, want [4]", got)
	}
}
