package geom

import "github.com/chewxy/math32"

// Corner indexes RRect.Radii.
type Corner int

const (
	UpperLeft Corner = iota
	UpperRight
	LowerRight
	LowerLeft
)

// RRect is a rectangle with elliptical corners.
// Radii holds the x/y radius of each corner, indexed by Corner.
type RRect struct {
	Rect  Rect
	Radii [4]Point
}

// MakeRRectXY returns a rounded rect with the same radii on all corners.
func MakeRRectXY(r Rect, rx, ry float32) RRect {
	rr := RRect{Rect: r.Sorted()}
	for i := range rr.Radii {
		rr.Radii[i] = Point{X: rx, Y: ry}
	}
	rr.scaleRadii()
	return rr
}

// MakeRRectRadii returns a rounded rect with per-corner radii.
func MakeRRectRadii(r Rect, radii [4]Point) RRect {
	rr := RRect{Rect: r.Sorted(), Radii: radii}
	rr.scaleRadii()
	return rr
}

// MakeOval returns the rounded rect inscribed ellipse of r.
func MakeOval(r Rect) RRect {
	r = r.Sorted()
	return MakeRRectXY(r, r.Width()/2, r.Height()/2)
}

// Bounds returns the bounding rectangle.
func (rr RRect) Bounds() Rect {
	return rr.Rect
}

// IsEmpty reports whether the underlying rect is empty.
func (rr RRect) IsEmpty() bool {
	return rr.Rect.IsEmpty()
}

// IsRect reports whether every corner is square.
func (rr RRect) IsRect() bool {
	for _, r := range rr.Radii {
		if r.X > 0 && r.Y > 0 {
			return false
		}
	}
	return true
}

// IsOval reports whether the corners meet in the middle of each edge.
func (rr RRect) IsOval() bool {
	w2, h2 := rr.Rect.Width()/2, rr.Rect.Height()/2
	for _, r := range rr.Radii {
		if r.X != w2 || r.Y != h2 {
			return false
		}
	}
	return !rr.IsEmpty()
}

// Offset translates the rounded rect.
func (rr RRect) Offset(dx, dy float32) RRect {
	rr.Rect = rr.Rect.Offset(dx, dy)
	return rr
}

// scaleRadii clamps negative radii to zero and scales all radii down
// uniformly when adjacent corners would overlap.
func (rr *RRect) scaleRadii() {
	for i, r := range rr.Radii {
		if r.X <= 0 || r.Y <= 0 || !r.IsFinite() {
			rr.Radii[i] = Point{}
		}
	}
	w, h := rr.Rect.Width(), rr.Rect.Height()
	scale := float32(1)
	sumTop := rr.Radii[UpperLeft].X + rr.Radii[UpperRight].X
	sumBottom := rr.Radii[LowerLeft].X + rr.Radii[LowerRight].X
	sumLeft := rr.Radii[UpperLeft].Y + rr.Radii[LowerLeft].Y
	sumRight := rr.Radii[UpperRight].Y + rr.Radii[LowerRight].Y
	for _, s := range []struct{ sum, limit float32 }{
		{sumTop, w}, {sumBottom, w}, {sumLeft, h}, {sumRight, h},
	} {
		if s.sum > s.limit && s.sum > 0 {
			scale = math32.Min(scale, s.limit/s.sum)
		}
	}
	if scale < 1 {
		for i := range rr.Radii {
			rr.Radii[i] = rr.Radii[i].Mul(scale)
		}
	}
}
