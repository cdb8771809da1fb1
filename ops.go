package displaylist

import (
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/internal/opbuf"
)

// OpType identifies the kind of a recorded op.
type OpType uint8

const (
	opInvalid OpType = iota

	OpSetAntiAlias
	OpSetDither
	OpSetInvertColors
	OpSetStrokeCap
	OpSetStrokeJoin
	OpSetStyle
	OpSetStrokeWidth
	OpSetStrokeMiter
	OpSetColor
	OpSetBlendMode
	OpSetBlender
	OpSetColorSource
	OpSetImageFilter
	OpSetColorFilter
	OpSetPathEffect
	OpSetMaskFilter

	OpSave
	OpSaveLayer
	OpRestore

	OpTranslate
	OpScale
	OpRotate
	OpSkew
	OpTransform2DAffine
	OpTransformFullPerspective
	OpTransformReset

	OpClipRect
	OpClipRRect
	OpClipPath

	OpDrawPaint
	OpDrawColor
	OpDrawLine
	OpDrawRect
	OpDrawOval
	OpDrawCircle
	OpDrawRRect
	OpDrawDRRect
	OpDrawPath
	OpDrawArc
	OpDrawPoints
	OpDrawVertices
	OpDrawImage
	OpDrawImageRect
	OpDrawImageNine
	OpDrawImageLattice
	OpDrawAtlas
	OpDrawDisplayList
	OpDrawPicture
	OpDrawTextBlob
	OpDrawShadow

	opCount
)

var opNames = [...]string{
	opInvalid:                  "Invalid",
	OpSetAntiAlias:             "SetAntiAlias",
	OpSetDither:                "SetDither",
	OpSetInvertColors:          "SetInvertColors",
	OpSetStrokeCap:             "SetStrokeCap",
	OpSetStrokeJoin:            "SetStrokeJoin",
	OpSetStyle:                 "SetStyle",
	OpSetStrokeWidth:           "SetStrokeWidth",
	OpSetStrokeMiter:           "SetStrokeMiter",
	OpSetColor:                 "SetColor",
	OpSetBlendMode:             "SetBlendMode",
	OpSetBlender:               "SetBlender",
	OpSetColorSource:           "SetColorSource",
	OpSetImageFilter:           "SetImageFilter",
	OpSetColorFilter:           "SetColorFilter",
	OpSetPathEffect:            "SetPathEffect",
	OpSetMaskFilter:            "SetMaskFilter",
	OpSave:                     "Save",
	OpSaveLayer:                "SaveLayer",
	OpRestore:                  "Restore",
	OpTranslate:                "Translate",
	OpScale:                    "Scale",
	OpRotate:                   "Rotate",
	OpSkew:                     "Skew",
	OpTransform2DAffine:        "Transform2DAffine",
	OpTransformFullPerspective: "TransformFullPerspective",
	OpTransformReset:           "TransformReset",
	OpClipRect:                 "ClipRect",
	OpClipRRect:                "ClipRRect",
	OpClipPath:                 "ClipPath",
	OpDrawPaint:                "DrawPaint",
	OpDrawColor:                "DrawColor",
	OpDrawLine:                 "DrawLine",
	OpDrawRect:                 "DrawRect",
	OpDrawOval:                 "DrawOval",
	OpDrawCircle:               "DrawCircle",
	OpDrawRRect:                "DrawRRect",
	OpDrawDRRect:               "DrawDRRect",
	OpDrawPath:                 "DrawPath",
	OpDrawArc:                  "DrawArc",
	OpDrawPoints:               "DrawPoints",
	OpDrawVertices:             "DrawVertices",
	OpDrawImage:                "DrawImage",
	OpDrawImageRect:            "DrawImageRect",
	OpDrawImageNine:            "DrawImageNine",
	OpDrawImageLattice:         "DrawImageLattice",
	OpDrawAtlas:                "DrawAtlas",
	OpDrawDisplayList:          "DrawDisplayList",
	OpDrawPicture:              "DrawPicture",
	OpDrawTextBlob:             "DrawTextBlob",
	OpDrawShadow:               "DrawShadow",
}

func (op OpType) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// IsDraw reports whether op renders pixels. Only draw ops are skipped by
// culled playback.
func (op OpType) IsDraw() bool {
	return op >= OpDrawPaint && op < opCount
}

// noRef encodes a nil shared object.
const noRef = ^uint32(0)

// saveLayerOptionsField is the payload byte holding SaveLayerOptions.
const saveLayerOptionsField = 0

func encRect(e *opbuf.Enc, r geom.Rect) *opbuf.Enc {
	return e.F32s(r.Left, r.Top, r.Right, r.Bottom)
}

func decRect(d *opbuf.Dec) geom.Rect {
	return geom.Rect{Left: d.F32(), Top: d.F32(), Right: d.F32(), Bottom: d.F32()}
}

func encRRect(e *opbuf.Enc, rr geom.RRect) *opbuf.Enc {
	encRect(e, rr.Rect)
	for _, r := range rr.Radii {
		e.F32s(r.X, r.Y)
	}
	return e
}

func decRRect(d *opbuf.Dec) geom.RRect {
	rr := geom.RRect{Rect: decRect(d)}
	for i := range rr.Radii {
		rr.Radii[i] = geom.Pt(d.F32(), d.F32())
	}
	return rr
}

func encPoint(e *opbuf.Enc, p geom.Point) *opbuf.Enc {
	return e.F32s(p.X, p.Y)
}

func decPoint(d *opbuf.Dec) geom.Point {
	return geom.Pt(d.F32(), d.F32())
}
