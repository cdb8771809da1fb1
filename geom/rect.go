package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// LargestRect is the rectangle used to represent "no constraint".
// It is not finite.
var LargestRect = Rect{
	Left:   math32.Inf(-1),
	Top:    math32.Inf(-1),
	Right:  math32.Inf(1),
	Bottom: math32.Inf(1),
}

// MakeLTRB returns a rectangle from its edges.
func MakeLTRB(l, t, r, b float32) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// MakeXYWH returns a rectangle from its origin and size.
func MakeXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// MakeWH returns a rectangle at the origin with the given size.
func MakeWH(w, h float32) Rect {
	return Rect{Right: w, Bottom: h}
}

// BoundsOf returns the smallest rectangle containing all points.
// It returns the zero Rect when pts is empty.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = math32.Min(r.Left, p.X)
		r.Top = math32.Min(r.Top, p.Y)
		r.Right = math32.Max(r.Right, p.X)
		r.Bottom = math32.Max(r.Bottom, p.Y)
	}
	return r
}

// Width returns Right-Left.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns Bottom-Top.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.Left*0.5 + r.Right*0.5, Y: r.Top*0.5 + r.Bottom*0.5}
}

// IsEmpty reports whether r has no area. NaN edges make a rect empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// IsFinite reports whether all four edges are finite.
func (r Rect) IsFinite() bool {
	return isFinite(r.Left) && isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom)
}

// Sorted returns r with Left<=Right and Top<=Bottom.
func (r Rect) Sorted() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Outset grows r by dx horizontally and dy vertically on every side.
// Negative values shrink it.
func (r Rect) Outset(dx, dy float32) Rect {
	return Rect{Left: r.Left - dx, Top: r.Top - dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// RoundOut returns the smallest integer-aligned rect containing r.
func (r Rect) RoundOut() Rect {
	return Rect{
		Left:   math32.Floor(r.Left),
		Top:    math32.Floor(r.Top),
		Right:  math32.Ceil(r.Right),
		Bottom: math32.Ceil(r.Bottom),
	}
}

// Intersect returns the intersection of r and o. The boolean is false, and
// the returned rect is the zero Rect, when the intersection is empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		Left:   math32.Max(r.Left, o.Left),
		Top:    math32.Max(r.Top, o.Top),
		Right:  math32.Min(r.Right, o.Right),
		Bottom: math32.Min(r.Bottom, o.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}, false
	}
	return out, true
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	_, ok := r.Intersect(o)
	return ok
}

// Union returns the smallest rect containing r and o. Empty operands are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   math32.Min(r.Left, o.Left),
		Top:    math32.Min(r.Top, o.Top),
		Right:  math32.Max(r.Right, o.Right),
		Bottom: math32.Max(r.Bottom, o.Bottom),
	}
}

// Contains reports whether o lies entirely within r. An empty o is never
// contained.
func (r Rect) Contains(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// ContainsPoint reports whether p lies inside r (right and bottom edges
// excluded).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Corners returns the four corners in clockwise order from top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}
