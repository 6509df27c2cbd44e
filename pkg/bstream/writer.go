package bstream

import (
	"bytes"
	"encoding/binary"
)

// Writer appends wire-format primitives to a growable buffer.
//
// Writes never fail; the encoded bytes are collected with Bytes.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes written so far.
//
// The slice is valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(b byte) {
	w.buf.WriteByte(b)
}

// WriteUint32 appends a 4-byte little-endian unsigned integer.
func (w *Writer) WriteUint32(v uint32) {
	binary.Write(&w.buf, binary.LittleEndian, v)
}

// WriteInt32 appends a 4-byte little-endian signed integer.
func (w *Writer) WriteInt32(v int32) {
	binary.Write(&w.buf, binary.LittleEndian, v)
}

// WriteUint64 appends an 8-byte little-endian unsigned integer.
func (w *Writer) WriteUint64(v uint64) {
	binary.Write(&w.buf, binary.LittleEndian, v)
}

// WriteCompactSize appends a variable-length unsigned integer.
func (w *Writer) WriteCompactSize(n uint64) {
	if n < 0xFD {
		w.buf.WriteByte(byte(n))
	} else if n <= 0xFFFF {
		w.buf.WriteByte(0xFD)
		binary.Write(&w.buf, binary.LittleEndian, uint16(n))
	} else if n <= 0xFFFFFFFF {
		w.buf.WriteByte(0xFE)
		binary.Write(&w.buf, binary.LittleEndian, uint32(n))
	} else {
		w.buf.WriteByte(0xFF)
		binary.Write(&w.buf, binary.LittleEndian, n)
	}
}

// WriteVarBytes appends a compact-size length followed by b.
func (w *Writer) WriteVarBytes(b []byte) {
	w.WriteCompactSize(uint64(len(b)))
	w.buf.Write(b)
}
