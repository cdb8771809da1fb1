package geom

import "github.com/chewxy/math32"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillType selects how the inside of a path is computed.
type FillType uint8

const (
	FillWinding FillType = iota
	FillEvenOdd
	FillInverseWinding
	FillInverseEvenOdd
)

// IsInverse reports whether the fill covers the outside of the path.
func (f FillType) IsInverse() bool {
	return f == FillInverseWinding || f == FillInverseEvenOdd
}

// kappa is the cubic control distance for a quarter ellipse.
const kappa = 0.5522847498

// Path is a vector path. A Path handed to a display list builder is
// cloned, so later edits by the caller do not affect the recording.
type Path struct {
	elements []PathElement
	fillType FillType
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// AddRect appends a closed clockwise rectangle.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddOval appends a closed ellipse inscribed in r, built from four cubics.
func (p *Path) AddOval(r Rect) {
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+ky, c.X+kx, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-kx, c.Y+ry, c.X-rx, c.Y+ky, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-ky, c.X-kx, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+kx, c.Y-ry, c.X+rx, c.Y-ky, c.X+rx, c.Y)
	p.Close()
}

// AddRRect appends a closed rounded rectangle.
func (p *Path) AddRRect(rr RRect) {
	if rr.IsRect() {
		p.AddRect(rr.Rect)
		return
	}
	r := rr.Rect
	ul, ur, lr, ll := rr.Radii[UpperLeft], rr.Radii[UpperRight], rr.Radii[LowerRight], rr.Radii[LowerLeft]
	p.MoveTo(r.Left+ul.X, r.Top)
	p.LineTo(r.Right-ur.X, r.Top)
	p.CubicTo(r.Right-ur.X*(1-kappa), r.Top, r.Right, r.Top+ur.Y*(1-kappa), r.Right, r.Top+ur.Y)
	p.LineTo(r.Right, r.Bottom-lr.Y)
	p.CubicTo(r.Right, r.Bottom-lr.Y*(1-kappa), r.Right-lr.X*(1-kappa), r.Bottom, r.Right-lr.X, r.Bottom)
	p.LineTo(r.Left+ll.X, r.Bottom)
	p.CubicTo(r.Left+ll.X*(1-kappa), r.Bottom, r.Left, r.Bottom-ll.Y*(1-kappa), r.Left, r.Bottom-ll.Y)
	p.LineTo(r.Left, r.Top+ul.Y)
	p.CubicTo(r.Left, r.Top+ul.Y*(1-kappa), r.Left+ul.X*(1-kappa), r.Top, r.Left+ul.X, r.Top)
	p.Close()
}

// SetFillType sets the fill rule.
func (p *Path) SetFillType(f FillType) {
	p.fillType = f
}

// FillType returns the fill rule.
func (p *Path) FillType() FillType {
	return p.fillType
}

// IsInverseFillType reports whether the path fills its outside.
func (p *Path) IsInverseFillType() bool {
	return p.fillType.IsInverse()
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Bounds returns the bounds of all points including curve control points.
// This is conservative: the curves never leave their control hull.
func (p *Path) Bounds() Rect {
	var (
		r     Rect
		first = true
	)
	add := func(pt Point) {
		if first {
			r = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
			first = false
			return
		}
		r.Left = math32.Min(r.Left, pt.X)
		r.Top = math32.Min(r.Top, pt.Y)
		r.Right = math32.Max(r.Right, pt.X)
		r.Bottom = math32.Max(r.Bottom, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return r
}

// IsRect reports whether the path is a single closed axis-aligned
// rectangle, and returns it.
func (p *Path) IsRect() (Rect, bool) {
	els := p.elements
	if len(els) < 4 || len(els) > 6 {
		return Rect{}, false
	}
	m, ok := els[0].(MoveTo)
	if !ok {
		return Rect{}, false
	}
	pts := []Point{m.Point}
	closed := false
	for _, elem := range els[1:] {
		switch e := elem.(type) {
		case LineTo:
			if closed {
				return Rect{}, false
			}
			pts = append(pts, e.Point)
		case Close:
			closed = true
		default:
			return Rect{}, false
		}
	}
	if len(pts) == 5 && pts[4] == pts[0] {
		pts = pts[:4]
	}
	if len(pts) != 4 || (!closed && len(els) != 5) {
		return Rect{}, false
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return Rect{}, false
		}
	}
	// Consecutive edges must alternate between horizontal and vertical.
	if (pts[0].X == pts[1].X) == (pts[1].X == pts[2].X) {
		return Rect{}, false
	}
	r := BoundsOf(pts...)
	if r.IsEmpty() {
		return Rect{}, false
	}
	return r, true
}

// Equal reports whether both paths have the same elements and fill type.
func (p *Path) Equal(o *Path) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || p.fillType != o.fillType || len(p.elements) != len(o.elements) {
		return false
	}
	for i := range p.elements {
		if p.elements[i] != o.elements[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		fillType: p.fillType,
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}
