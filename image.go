package displaylist

import (
	"image"

	"github.com/gogpu/displaylist/geom"
	"golang.org/x/image/draw"
)

// Image is decoded image content referenced by draw ops. Implementations
// must be comparable and immutable once recorded.
type Image interface {
	Width() int
	Height() int
	IsOpaque() bool
}

// imageBounds returns the rect covering img at the origin.
func imageBounds(img Image) geom.Rect {
	return geom.MakeWH(float32(img.Width()), float32(img.Height()))
}

// GoImage adapts an image.Image.
type GoImage struct {
	img    image.Image
	opaque bool
}

// FromImage wraps img. It returns nil for a nil img.
func FromImage(img image.Image) *GoImage {
	if img == nil {
		return nil
	}
	g := &GoImage{img: img}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		g.opaque = o.Opaque()
	}
	return g
}

// Source returns the wrapped image.
func (g *GoImage) Source() image.Image { return g.img }

func (g *GoImage) Width() int     { return g.img.Bounds().Dx() }
func (g *GoImage) Height() int    { return g.img.Bounds().Dy() }
func (g *GoImage) IsOpaque() bool { return g.opaque }

// Sampling selects how image pixels are filtered when scaled.
type Sampling uint8

const (
	SamplingNearest Sampling = iota
	SamplingLinear
	SamplingMipmapLinear
	SamplingCubic
)

var samplingNames = [...]string{
	SamplingNearest:      "Nearest",
	SamplingLinear:       "Linear",
	SamplingMipmapLinear: "MipmapLinear",
	SamplingCubic:        "Cubic",
}

func (s Sampling) String() string {
	if int(s) < len(samplingNames) {
		return samplingNames[s]
	}
	return "Unknown"
}

// Interpolator returns the x/image/draw interpolator a software backend
// should use for s.
func (s Sampling) Interpolator() draw.Interpolator {
	switch s {
	case SamplingLinear:
		return draw.ApproxBiLinear
	case SamplingMipmapLinear:
		return draw.BiLinear
	case SamplingCubic:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// FilterMode is the filter used by nine-patch and lattice draws.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Sampling returns the equivalent Sampling.
func (f FilterMode) Sampling() Sampling {
	if f == FilterLinear {
		return SamplingLinear
	}
	return SamplingNearest
}

// LatticeRectType says how DrawImageLattice fills one cell.
type LatticeRectType uint8

const (
	// LatticeDefault draws the image area of the cell.
	LatticeDefault LatticeRectType = iota
	// LatticeTransparent leaves the cell empty.
	LatticeTransparent
	// LatticeFixedColor fills the cell with its entry in Colors.
	LatticeFixedColor
)

// Lattice divides an image into a grid for DrawImageLattice. XDivs and
// YDivs are increasing image coordinates. Columns and rows alternate
// between fixed and stretched, starting with fixed; a leading zero div
// makes the first one stretched.
//
// RectTypes, when non-nil, holds one entry per cell in row-major order,
// (len(XDivs)+1)*(len(YDivs)+1) in all. Colors, when non-nil, is as long
// as RectTypes and is read for LatticeFixedColor cells. Src, when non-nil,
// limits the lattice to that area of the image.
type Lattice struct {
	XDivs     []int32
	YDivs     []int32
	RectTypes []LatticeRectType
	Colors    []Color
	Src       *geom.Rect
}

// Cells returns the number of grid cells.
func (l Lattice) Cells() int {
	return (len(l.XDivs) + 1) * (len(l.YDivs) + 1)
}

// SrcRectConstraint controls sampling outside the source rect of
// DrawImageRect.
type SrcRectConstraint uint8

const (
	// ConstraintStrict never samples outside the source rect.
	ConstraintStrict SrcRectConstraint = iota
	// ConstraintFast may sample outside it for speed.
	ConstraintFast
)
