package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRectNear(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.Left, got.Left, 1e-4, "left")
	assert.InDelta(t, want.Top, got.Top, 1e-4, "top")
	assert.InDelta(t, want.Right, got.Right, 1e-4, "right")
	assert.InDelta(t, want.Bottom, got.Bottom, 1e-4, "bottom")
}

func TestConcatOrder(t *testing.T) {
	// Translate then scale: scale is applied to the point first.
	m := Translate44(10, 20).Concat(Scale44(2, 3))
	p, ok := m.AsM33().MapPoint(Pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, Pt(12, 23), p)
}

func TestRotate(t *testing.T) {
	m := Rotate44(90).AsM33()
	p, ok := m.MapPoint(Pt(1, 0))
	require.True(t, ok)
	assert.Equal(t, Pt(0, 1), p)

	assert.True(t, Rotate44(360).IsIdentity())

	r, ok := Rotate44(45).AsM33().MapRect(MakeLTRB(-1, -1, 1, 1))
	require.True(t, ok)
	assertRectNear(t, MakeLTRB(-1.41421, -1.41421, 1.41421, 1.41421), r)
}

func TestMapRect(t *testing.T) {
	m := Scale44(-2, 1).AsM33()
	r, ok := m.MapRect(MakeLTRB(1, 1, 3, 2))
	require.True(t, ok)
	assert.Equal(t, MakeLTRB(-6, 1, -2, 2), r)

	skew := Skew44(1, 0).AsM33()
	r, ok = skew.MapRect(MakeLTRB(0, 0, 10, 10))
	require.True(t, ok)
	assert.Equal(t, MakeLTRB(0, 0, 20, 10), r)
}

func TestMapRectPerspective(t *testing.T) {
	var v [16]float32
	copy(v[:], []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0.01, 0, 0, 1,
	})
	m := Rows44(v).AsM33()
	assert.True(t, m.HasPerspective())

	_, ok := m.MapRect(MakeLTRB(0, 0, 10, 10))
	assert.True(t, ok)

	_, ok = m.MapRect(MakeLTRB(-200, 0, 10, 10))
	assert.False(t, ok, "corner behind the eye")
}

func TestInvert(t *testing.T) {
	m := Translate44(5, 7).Concat(Scale44(2, 4)).AsM33()
	inv, ok := m.Invert()
	require.True(t, ok)
	id := m.Concat(inv)
	for i, v := range Identity33() {
		assert.InDelta(t, v, id[i], 1e-9)
	}

	_, ok = Scale44(0, 1).AsM33().Invert()
	assert.False(t, ok)
}

func TestAffine44(t *testing.T) {
	m := Affine44(1, 0, 3, 0, 1, 4)
	assert.Equal(t, Translate44(3, 4), m)
	assert.False(t, m.AsM33().HasPerspective())
	assert.Equal(t, [6]float64{1, 0, 3, 0, 1, 4}, [6]float64(m.AsM33().Aff3()))
}
