// Package opbuf implements the command buffer behind display lists: an
// append-only byte arena of self-sized records with a side table for
// references to Go values.
//
// Every record starts with an 8 byte header:
//
//	byte 0     op tag
//	bytes 1-3  zero
//	bytes 4-7  total record size in bytes, little endian
//
// followed by the inline payload and optional trailing data. Records are
// padded to a multiple of 8 bytes, so the stream can be walked forward
// using only the header sizes.
package opbuf

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size of a record header.
	HeaderSize = 8

	// DefaultCapacity is the initial capacity used when none is given.
	DefaultCapacity = 1024

	align = 8
)

// Offset identifies a record by the byte offset of its header. Unlike a
// slice into the buffer it stays valid across growth.
type Offset uint32

// Buffer is a growable command buffer. The zero value is ready to use.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	refs []any

	opCount     int
	nestedOps   int
	nestedBytes int

	minCap int
}

// New returns a buffer whose first allocation holds at least capacity
// bytes. Values below DefaultCapacity are raised to it.
func New(capacity int) *Buffer {
	return &Buffer{minCap: max(capacity, DefaultCapacity)}
}

// Push appends a record for op with inline payload bytes followed by extra
// trailing bytes, and returns its offset and the zeroed payload. The
// payload slice aliases the buffer and must not be used after the next
// call to Push.
func (b *Buffer) Push(op uint8, inline, extra int) (Offset, []byte) {
	if inline < 0 || extra < 0 {
		panic(fmt.Sprintf("opbuf: negative record size (%d, %d)", inline, extra))
	}
	payload := inline + extra
	size := (HeaderSize + payload + align - 1) &^ (align - 1)
	off := len(b.data)
	b.grow(size)
	b.data = b.data[:off+size]
	rec := b.data[off : off+size]
	clear(rec)
	rec[0] = op
	binary.LittleEndian.PutUint32(rec[4:], uint32(size))
	b.opCount++
	return Offset(off), rec[HeaderSize : HeaderSize+payload]
}

// grow makes room for n more bytes, at least doubling the capacity.
func (b *Buffer) grow(n int) {
	if len(b.data)+n <= cap(b.data) {
		return
	}
	newCap := max(2*cap(b.data), b.minCap, DefaultCapacity)
	for newCap < len(b.data)+n {
		newCap *= 2
	}
	data := make([]byte, len(b.data), newCap)
	copy(data, b.data)
	b.data = data
}

// AddRef stores v in the reference table and returns its index.
func (b *Buffer) AddRef(v any) uint32 {
	b.refs = append(b.refs, v)
	return uint32(len(b.refs) - 1)
}

// PatchByte overwrites byte field of the inline payload of the record at
// off. It is the only way to modify a record after Push.
func (b *Buffer) PatchByte(off Offset, field int, v byte) {
	i := int(off) + HeaderSize + field
	if int(off)+HeaderSize > len(b.data) || field < 0 || i >= int(off)+b.recordSize(off) {
		panic(fmt.Sprintf("opbuf: patch outside record at offset %d field %d", off, field))
	}
	b.data[i] = v
}

// Byte returns byte field of the inline payload of the record at off.
func (b *Buffer) Byte(off Offset, field int) byte {
	return b.data[int(off)+HeaderSize+field]
}

func (b *Buffer) recordSize(off Offset) int {
	return int(binary.LittleEndian.Uint32(b.data[int(off)+4:]))
}

// AddNested attributes ops and bytes contributed by an embedded display
// list.
func (b *Buffer) AddNested(ops, bytes int) {
	b.nestedOps += ops
	b.nestedBytes += bytes
}

// OpCount returns the number of records pushed.
func (b *Buffer) OpCount() int { return b.opCount }

// Used returns the number of bytes used by records.
func (b *Buffer) Used() int { return len(b.data) }

// NestedOps returns the ops contributed by embedded display lists.
func (b *Buffer) NestedOps() int { return b.nestedOps }

// NestedBytes returns the bytes contributed by embedded display lists.
func (b *Buffer) NestedBytes() int { return b.nestedBytes }

// ApproximateComplexity estimates the playback cost as the number of
// top-level records plus every record of embedded lists.
func (b *Buffer) ApproximateComplexity() int {
	return b.opCount + b.nestedOps
}

// Frozen is the contents of a Buffer handed over by Take.
type Frozen struct {
	Data        []byte
	Refs        []any
	OpCount     int
	NestedOps   int
	NestedBytes int
}

// Take returns the recorded contents and resets b to an empty buffer with
// the same growth policy. The returned slices are trimmed to their length
// and no longer referenced by b.
func (b *Buffer) Take() Frozen {
	f := Frozen{
		Data:        b.data[:len(b.data):len(b.data)],
		Refs:        b.refs[:len(b.refs):len(b.refs)],
		OpCount:     b.opCount,
		NestedOps:   b.nestedOps,
		NestedBytes: b.nestedBytes,
	}
	*b = Buffer{minCap: b.minCap}
	return f
}
