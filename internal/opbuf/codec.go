package opbuf

import (
	"encoding/binary"
	"math"
)

// Enc writes little-endian fields into a record payload.
type Enc struct {
	buf []byte
	pos int
}

// NewEnc returns an encoder writing at the start of buf.
func NewEnc(buf []byte) *Enc {
	return &Enc{buf: buf}
}

func (e *Enc) U8(v uint8) *Enc {
	e.buf[e.pos] = v
	e.pos++
	return e
}

func (e *Enc) Bool(v bool) *Enc {
	if v {
		return e.U8(1)
	}
	return e.U8(0)
}

func (e *Enc) U32(v uint32) *Enc {
	binary.LittleEndian.PutUint32(e.buf[e.pos:], v)
	e.pos += 4
	return e
}

func (e *Enc) I32(v int32) *Enc {
	return e.U32(uint32(v))
}

func (e *Enc) F32(v float32) *Enc {
	return e.U32(math.Float32bits(v))
}

func (e *Enc) F32s(vs ...float32) *Enc {
	for _, v := range vs {
		e.F32(v)
	}
	return e
}

// Skip advances past n bytes, leaving them zero.
func (e *Enc) Skip(n int) *Enc {
	e.pos += n
	return e
}

// Pos returns the number of bytes written or skipped.
func (e *Enc) Pos() int { return e.pos }

// Dec reads fields written by Enc in the same order.
type Dec struct {
	buf []byte
	pos int
}

// NewDec returns a decoder reading from the start of buf.
func NewDec(buf []byte) *Dec {
	return &Dec{buf: buf}
}

func (d *Dec) U8() uint8 {
	v := d.buf[d.pos]
	d.pos++
	return v
}

func (d *Dec) Bool() bool {
	return d.U8() != 0
}

func (d *Dec) U32() uint32 {
	v := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v
}

func (d *Dec) I32() int32 {
	return int32(d.U32())
}

func (d *Dec) F32() float32 {
	return math.Float32frombits(d.U32())
}

// F32s reads n float32 values.
func (d *Dec) F32s(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = d.F32()
	}
	return out
}

func (d *Dec) Skip(n int) *Dec {
	d.pos += n
	return d
}

// Pos returns the number of bytes consumed.
func (d *Dec) Pos() int { return d.pos }
