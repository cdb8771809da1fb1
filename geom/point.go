// Package geom provides the float32 geometry used by display lists:
// points, rectangles, rounded rectangles, paths and the 4x4 / 3x3
// transforms applied to them.
//
// Rectangles use left/top/right/bottom edges. A rectangle is empty when it
// has no area; empty rectangles never contribute to unions or
// intersections.
package geom

import "github.com/chewxy/math32"

// Point is a 2D point or vector.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the Euclidean length of p.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	return isFinite(v)
}
