package displaylist

import (
	"slices"

	"github.com/gogpu/displaylist/geom"
)

// VertexMode selects how vertex positions form triangles.
type VertexMode uint8

const (
	VertexTriangles VertexMode = iota
	VertexTriangleStrip
	VertexTriangleFan
)

// Vertices is an immutable triangle mesh.
type Vertices struct {
	mode      VertexMode
	positions []geom.Point
	texCoords []geom.Point
	colors    []Color
	indices   []uint16
	bounds    geom.Rect
}

// NewVertices copies the mesh data. texCoords and colors are either empty
// or the same length as positions. It returns nil when fewer than three
// positions are given or the lengths do not match.
func NewVertices(mode VertexMode, positions, texCoords []geom.Point, colors []Color, indices []uint16) *Vertices {
	if len(positions) < 3 {
		return nil
	}
	if (len(texCoords) != 0 && len(texCoords) != len(positions)) ||
		(len(colors) != 0 && len(colors) != len(positions)) {
		return nil
	}
	for _, i := range indices {
		if int(i) >= len(positions) {
			return nil
		}
	}
	return &Vertices{
		mode:      mode,
		positions: slices.Clone(positions),
		texCoords: slices.Clone(texCoords),
		colors:    slices.Clone(colors),
		indices:   slices.Clone(indices),
		bounds:    geom.BoundsOf(positions...),
	}
}

func (v *Vertices) Mode() VertexMode        { return v.mode }
func (v *Vertices) Positions() []geom.Point { return v.positions }
func (v *Vertices) TexCoords() []geom.Point { return v.texCoords }
func (v *Vertices) Colors() []Color         { return v.colors }
func (v *Vertices) Indices() []uint16       { return v.indices }
func (v *Vertices) Bounds() geom.Rect       { return v.bounds }

// Equal reports whether both meshes hold the same data.
func (v *Vertices) Equal(o *Vertices) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	return v.mode == o.mode &&
		slices.Equal(v.positions, o.positions) &&
		slices.Equal(v.texCoords, o.texCoords) &&
		slices.Equal(v.colors, o.colors) &&
		slices.Equal(v.indices, o.indices)
}
