package opbuf

import (
	"encoding/binary"
	"fmt"
)

// Record is one decoded record header with its payload.
type Record struct {
	Op      uint8
	Offset  Offset
	Payload []byte
}

// Walker iterates the records of a buffer in order.
type Walker struct {
	data []byte
	pos  int
}

// NewWalker returns a walker over a stream produced by Buffer.
func NewWalker(data []byte) *Walker {
	return &Walker{data: data}
}

// Next returns the next record. It returns false at the end of the stream
// and panics if the stream is corrupt.
func (w *Walker) Next() (Record, bool) {
	if w.pos >= len(w.data) {
		return Record{}, false
	}
	if len(w.data)-w.pos < HeaderSize {
		panic(fmt.Sprintf("opbuf: truncated header at offset %d", w.pos))
	}
	size := int(binary.LittleEndian.Uint32(w.data[w.pos+4:]))
	if size < HeaderSize || size%align != 0 || w.pos+size > len(w.data) {
		panic(fmt.Sprintf("opbuf: corrupt record size %d at offset %d", size, w.pos))
	}
	rec := Record{
		Op:      w.data[w.pos],
		Offset:  Offset(w.pos),
		Payload: w.data[w.pos+HeaderSize : w.pos+size],
	}
	w.pos += size
	return rec, true
}

// Pos returns the offset of the next record.
func (w *Walker) Pos() Offset {
	return Offset(w.pos)
}
