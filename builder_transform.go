package displaylist

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/displaylist/geom"
)

func allFinite(vs ...float32) bool {
	for _, v := range vs {
		if !geom.IsFinite(v) {
			return false
		}
	}
	return true
}

// postConcat post-multiplies the current transform by m.
func (b *Builder) postConcat(m geom.M44) {
	l := b.top()
	l.setMatrix(l.m44.Concat(m))
}

// Translate, Scale, Rotate, Skew and the Transform methods ignore
// non-finite arguments and increments that leave the transform unchanged.

// Translate shifts the origin by (tx, ty).
func (b *Builder) Translate(tx, ty float32) {
	if !allFinite(tx, ty) || (tx == 0 && ty == 0) {
		return
	}
	b.checkForDeferredSave()
	b.push(OpTranslate, 8, 0).F32s(tx, ty)
	b.postConcat(geom.Translate44(tx, ty))
}

// Scale scales local coordinates by sx and sy.
func (b *Builder) Scale(sx, sy float32) {
	if !allFinite(sx, sy) || (sx == 1 && sy == 1) {
		return
	}
	b.checkForDeferredSave()
	b.push(OpScale, 8, 0).F32s(sx, sy)
	b.postConcat(geom.Scale44(sx, sy))
}

// Rotate rotates by degrees, clockwise in a y-down coordinate system.
func (b *Builder) Rotate(degrees float32) {
	if !allFinite(degrees) || math32.Mod(degrees, 360) == 0 {
		return
	}
	b.checkForDeferredSave()
	b.push(OpRotate, 4, 0).F32(degrees)
	b.postConcat(geom.Rotate44(degrees))
}

// Skew shears by sx along x and sy along y.
func (b *Builder) Skew(sx, sy float32) {
	if !allFinite(sx, sy) || (sx == 0 && sy == 0) {
		return
	}
	b.checkForDeferredSave()
	b.push(OpSkew, 8, 0).F32s(sx, sy)
	b.postConcat(geom.Skew44(sx, sy))
}

// Transform2DAffine concatenates the affine transform
//
//	x' = mxx*x + mxy*y + mxt
//	y' = myx*x + myy*y + myt
func (b *Builder) Transform2DAffine(mxx, mxy, mxt, myx, myy, myt float32) {
	if !allFinite(mxx, mxy, mxt, myx, myy, myt) {
		return
	}
	if mxx == 1 && mxy == 0 && mxt == 0 && myx == 0 && myy == 1 && myt == 0 {
		return
	}
	b.checkForDeferredSave()
	b.push(OpTransform2DAffine, 24, 0).F32s(mxx, mxy, mxt, myx, myy, myt)
	b.postConcat(geom.Affine44(mxx, mxy, mxt, myx, myy, myt))
}

// TransformFullPerspective concatenates a row-major 4x4 matrix. Matrices
// that only act on x and y are recorded as Transform2DAffine.
func (b *Builder) TransformFullPerspective(m [16]float32) {
	if !allFinite(m[:]...) {
		return
	}
	if m[2] == 0 && m[6] == 0 &&
		m[8] == 0 && m[9] == 0 && m[10] == 1 && m[11] == 0 &&
		m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1 {
		b.Transform2DAffine(m[0], m[1], m[3], m[4], m[5], m[7])
		return
	}
	b.checkForDeferredSave()
	b.push(OpTransformFullPerspective, 64, 0).F32s(m[:]...)
	b.postConcat(geom.Rows44(m))
}

// Concat concatenates m, recorded as the simplest transform op that
// represents it.
func (b *Builder) Concat(m geom.M44) {
	if m.IsIdentity() {
		return
	}
	b.TransformFullPerspective(m.Rows())
}

// TransformReset replaces the current transform with the identity.
func (b *Builder) TransformReset() {
	b.checkForDeferredSave()
	b.push(OpTransformReset, 0, 0)
	b.top().setMatrix(geom.Identity44())
}

// intersectClip narrows the device clip of the current frame by r, given
// in local coordinates.
func (b *Builder) intersectClip(r geom.Rect) {
	l := b.top()
	dev, ok := l.m33.MapRect(r)
	if !ok {
		return
	}
	if clip, ok := l.clip.Intersect(dev); ok {
		l.clip = clip
	} else {
		l.clip = geom.Rect{}
	}
}

// Difference clips never grow the clip and are not tracked by the device
// clip bounds; neither are inverse-filled path clips.

// ClipRect combines the clip with r using op.
func (b *Builder) ClipRect(r geom.Rect, op ClipOp, aa bool) {
	if !r.IsFinite() {
		return
	}
	b.checkForDeferredSave()
	e := b.push(OpClipRect, 20, 0).U8(uint8(op)).Bool(aa).Skip(2)
	encRect(e, r)
	if op == ClipIntersect {
		b.intersectClip(r)
	}
}

// ClipRRect records rounded rects without rounded corners as ClipRect.
func (b *Builder) ClipRRect(rr geom.RRect, op ClipOp, aa bool) {
	if rr.IsRect() {
		b.ClipRect(rr.Rect, op, aa)
		return
	}
	if !rr.Rect.IsFinite() {
		return
	}
	b.checkForDeferredSave()
	e := b.push(OpClipRRect, 52, 0).U8(uint8(op)).Bool(aa).Skip(2)
	encRRect(e, rr)
	if op == ClipIntersect {
		b.intersectClip(rr.Bounds())
	}
}

// ClipPath records rectangular paths as ClipRect. The path is copied.
func (b *Builder) ClipPath(p *geom.Path, op ClipOp, aa bool) {
	if p == nil {
		return
	}
	if !p.IsInverseFillType() {
		if r, ok := p.IsRect(); ok {
			b.ClipRect(r, op, aa)
			return
		}
	}
	b.checkForDeferredSave()
	b.push(OpClipPath, 8, 0).U8(uint8(op)).Bool(aa).Skip(2).U32(b.ref(p.Clone()))
	if op == ClipIntersect && !p.IsInverseFillType() {
		b.intersectClip(p.Bounds())
	}
}
