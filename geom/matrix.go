package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// M44 is a full 4x4 transform in row-major order, m[4*row+col].
// Points are column vectors, so A.Concat(B) applies B first.
type M44 f64.Mat4

// M33 is the 3x3 projection of an M44 that drops the Z row and column,
// in row-major order. It maps 2D points with an optional perspective
// divide.
type M33 f64.Mat3

// Identity44 returns the 4x4 identity.
func Identity44() M44 {
	return M44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity33 returns the 3x3 identity.
func Identity33() M33 {
	return M33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate44 returns a translation.
func Translate44(tx, ty float32) M44 {
	m := Identity44()
	m[3] = float64(tx)
	m[7] = float64(ty)
	return m
}

// Scale44 returns a scale about the origin.
func Scale44(sx, sy float32) M44 {
	m := Identity44()
	m[0] = float64(sx)
	m[5] = float64(sy)
	return m
}

// Rotate44 returns a rotation by degrees about the origin. Multiples of 90
// degrees produce exact zeros.
func Rotate44(degrees float32) M44 {
	sin, cos := sinCosDegrees(float64(degrees))
	m := Identity44()
	m[0], m[1] = cos, -sin
	m[4], m[5] = sin, cos
	return m
}

// Skew44 returns a skew where x' = x + sx*y and y' = sy*x + y.
func Skew44(sx, sy float32) M44 {
	m := Identity44()
	m[1] = float64(sx)
	m[4] = float64(sy)
	return m
}

// Affine44 returns the 4x4 form of a 2x3 affine transform given in row
// major order.
func Affine44(mxx, mxy, mxt, myx, myy, myt float32) M44 {
	return M44{
		float64(mxx), float64(mxy), 0, float64(mxt),
		float64(myx), float64(myy), 0, float64(myt),
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rows44 returns an M44 from 16 values in row major order.
func Rows44(v [16]float32) M44 {
	var m M44
	for i, f := range v {
		m[i] = float64(f)
	}
	return m
}

func sinCosDegrees(deg float64) (sin, cos float64) {
	deg = math.Mod(deg, 360)
	switch deg {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}

// Concat returns m*o: o is applied first, then m.
func (m M44) Concat(o M44) M44 {
	var out M44
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[4*r]*o[c] + m[4*r+1]*o[4+c] + m[4*r+2]*o[8+c] + m[4*r+3]*o[12+c]
		}
	}
	return out
}

// IsIdentity reports whether m is exactly the identity.
func (m M44) IsIdentity() bool {
	return m == Identity44()
}

// Rows returns the 16 values in row major order as float32.
func (m M44) Rows() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// AsM33 drops the Z row and column.
func (m M44) AsM33() M33 {
	return M33{
		m[0], m[1], m[3],
		m[4], m[5], m[7],
		m[12], m[13], m[15],
	}
}

// HasPerspective reports whether the bottom row differs from [0 0 1].
func (m M33) HasPerspective() bool {
	return m[6] != 0 || m[7] != 0 || m[8] != 1
}

// IsIdentity reports whether m is exactly the identity.
func (m M33) IsIdentity() bool {
	return m == Identity33()
}

// Concat returns m*o: o is applied first, then m.
func (m M33) Concat(o M33) M33 {
	var out M33
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*r]*o[c] + m[3*r+1]*o[3+c] + m[3*r+2]*o[6+c]
		}
	}
	return out
}

// MapPoint transforms p. The boolean is false when the point maps to or
// behind the perspective eye (w <= 0).
func (m M33) MapPoint(p Point) (Point, bool) {
	x, y := float64(p.X), float64(p.Y)
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	w := m[6]*x + m[7]*y + m[8]
	if w <= 0 {
		return Point{}, false
	}
	if w != 1 {
		tx /= w
		ty /= w
	}
	return Point{X: float32(tx), Y: float32(ty)}, true
}

// MapVector transforms v ignoring translation and perspective.
func (m M33) MapVector(v Point) Point {
	x, y := float64(v.X), float64(v.Y)
	return Point{X: float32(m[0]*x + m[1]*y), Y: float32(m[3]*x + m[4]*y)}
}

// MapRect returns the bounds of r's four mapped corners. The boolean is
// false when any corner cannot be mapped; callers must then treat the
// result as unknown.
func (m M33) MapRect(r Rect) (Rect, bool) {
	if !m.HasPerspective() && m[1] == 0 && m[3] == 0 {
		out := Rect{
			Left:   float32(m[0]*float64(r.Left) + m[2]),
			Top:    float32(m[4]*float64(r.Top) + m[5]),
			Right:  float32(m[0]*float64(r.Right) + m[2]),
			Bottom: float32(m[4]*float64(r.Bottom) + m[5]),
		}
		return out.Sorted(), true
	}
	corners := r.Corners()
	var pts [4]Point
	for i, c := range corners {
		p, ok := m.MapPoint(c)
		if !ok {
			return Rect{}, false
		}
		pts[i] = p
	}
	return BoundsOf(pts[:]...), true
}

// Determinant returns the 3x3 determinant.
func (m M33) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Invert returns the inverse of m. The boolean is false when m is
// singular or the inverse is not finite.
func (m M33) Invert() (M33, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return M33{}, false
	}
	inv := 1 / det
	out := M33{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return M33{}, false
		}
	}
	return out, true
}

// Aff3 returns the affine part of m. It is only meaningful when
// HasPerspective is false.
func (m M33) Aff3() f64.Aff3 {
	return f64.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]}
}
