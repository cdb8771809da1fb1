package opbuf

import (
	"testing"
)

func TestPushAlignment(t *testing.T) {
	b := New(0)
	sizes := []struct{ inline, extra int }{{0, 0}, {1, 0}, {8, 0}, {12, 3}, {16, 16}}
	for i, s := range sizes {
		off, payload := b.Push(uint8(i+1), s.inline, s.extra)
		if int(off)%align != 0 {
			t.Errorf("Push(%d) offset = %d, not aligned", i, off)
		}
		if len(payload) != s.inline+s.extra {
			t.Errorf("Push(%d) payload len = %d, want %d", i, len(payload), s.inline+s.extra)
		}
	}
	if b.Used()%align != 0 {
		t.Errorf("Used() = %d, not aligned", b.Used())
	}
	if b.OpCount() != len(sizes) {
		t.Errorf("OpCount() = %d, want %d", b.OpCount(), len(sizes))
	}
}

func TestGrowthPreservesRecords(t *testing.T) {
	b := New(0)
	const n = 1000
	for i := 0; i < n; i++ {
		_, p := b.Push(uint8(i%250), 4, 0)
		NewEnc(p).U32(uint32(i))
	}
	if cap(b.data) < b.Used() {
		t.Fatalf("cap %d < used %d", cap(b.data), b.Used())
	}

	w := NewWalker(b.data)
	i := 0
	for rec, ok := w.Next(); ok; rec, ok = w.Next() {
		if rec.Op != uint8(i%250) {
			t.Errorf("record %d op = %d, want %d", i, rec.Op, i%250)
		}
		if got := NewDec(rec.Payload).U32(); got != uint32(i) {
			t.Errorf("record %d value = %d, want %d", i, got, i)
		}
		i++
	}
	if i != n {
		t.Errorf("walked %d records, want %d", i, n)
	}
}

func TestMinimumCapacity(t *testing.T) {
	b := New(4096)
	b.Push(1, 0, 0)
	if cap(b.data) < 4096 {
		t.Errorf("cap = %d, want >= 4096", cap(b.data))
	}

	big := New(0)
	big.Push(1, 10000, 0)
	if cap(big.data) < 10008 {
		t.Errorf("cap = %d, want >= 10008", cap(big.data))
	}
}

func TestPatchByte(t *testing.T) {
	b := New(0)
	b.Push(1, 4, 0)
	off, p := b.Push(2, 8, 0)
	p[3] = 7
	b.Push(3, 200, 0)
	for i := 0; i < 100; i++ {
		b.Push(4, 64, 0)
	}

	if got := b.Byte(off, 3); got != 7 {
		t.Fatalf("Byte() = %d before patch, want 7", got)
	}
	b.PatchByte(off, 3, 9)
	if got := b.Byte(off, 3); got != 9 {
		t.Errorf("Byte() = %d after patch, want 9", got)
	}
}

func TestPatchByteOutOfRange(t *testing.T) {
	b := New(0)
	off, _ := b.Push(1, 4, 0)
	defer func() {
		if recover() == nil {
			t.Error("PatchByte() past the record did not panic")
		}
	}()
	b.PatchByte(off, 8, 1)
}

func TestRefsAndNested(t *testing.T) {
	b := New(0)
	if i := b.AddRef("a"); i != 0 {
		t.Errorf("AddRef() = %d, want 0", i)
	}
	if i := b.AddRef(42); i != 1 {
		t.Errorf("AddRef() = %d, want 1", i)
	}
	b.Push(1, 0, 0)
	b.AddNested(5, 80)
	if got := b.ApproximateComplexity(); got != 6 {
		t.Errorf("ApproximateComplexity() = %d, want 6", got)
	}
	if b.NestedBytes() != 80 || b.NestedOps() != 5 {
		t.Errorf("nested = (%d, %d), want (5, 80)", b.NestedOps(), b.NestedBytes())
	}
}

func TestTake(t *testing.T) {
	b := New(2048)
	b.Push(1, 4, 0)
	b.AddRef("x")
	b.AddNested(2, 16)

	f := b.Take()
	if f.OpCount != 1 || len(f.Data) != 16 || len(f.Refs) != 1 {
		t.Errorf("Take() = %d ops, %d bytes, %d refs, want 1, 16, 1", f.OpCount, len(f.Data), len(f.Refs))
	}
	if f.NestedOps != 2 || f.NestedBytes != 16 {
		t.Errorf("Take() nested = (%d, %d), want (2, 16)", f.NestedOps, f.NestedBytes)
	}
	if b.OpCount() != 0 || b.Used() != 0 || b.NestedOps() != 0 {
		t.Error("buffer not reset after Take()")
	}

	b.Push(9, 4, 0)
	if f.Data[0] != 1 {
		t.Error("recording after Take() modified the frozen data")
	}
	if b.minCap != 2048 {
		t.Errorf("minCap = %d after Take(), want 2048", b.minCap)
	}
}

func TestWalkerCorrupt(t *testing.T) {
	data := make([]byte, 16)
	data[4] = 3
	defer func() {
		if recover() == nil {
			t.Error("Next() on corrupt size did not panic")
		}
	}()
	NewWalker(data).Next()
}

func TestCodec(t *testing.T) {
	buf := make([]byte, 32)
	e := NewEnc(buf)
	e.U8(3).Bool(true).Skip(2).F32(1.5).I32(-7).F32s(2, 3)
	if e.Pos() != 20 {
		t.Errorf("Pos() = %d, want 20", e.Pos())
	}

	d := NewDec(buf)
	if got := d.U8(); got != 3 {
		t.Errorf("U8() = %d, want 3", got)
	}
	if !d.Bool() {
		t.Error("Bool() = false, want true")
	}
	d.Skip(2)
	if got := d.F32(); got != 1.5 {
		t.Errorf("F32() = %v, want 1.5", got)
	}
	if got := d.I32(); got != -7 {
		t.Errorf("I32() = %d, want -7", got)
	}
	got := d.F32s(2)
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("F32s() = %v, want [2 3]", got)
	}
}
