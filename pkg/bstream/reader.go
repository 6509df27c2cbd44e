// Package bstream implements the positioned byte-stream reader and writer
// used by the transaction wire format.
//
// The reader tracks a cursor over an in-memory buffer and supports the
// fixed-width little-endian integer reads, compact-size reads, and raw byte
// extraction the format needs. Readers are stateful and must not be shared
// across concurrent decodes.
package bstream

import (
	"encoding/binary"
)

// Reader reads wire-format primitives from an in-memory buffer.
//
// Every read either consumes exactly the requested bytes or fails with
// *TruncatedInputError without consuming them, so the error's offset points
// at the read that could not be satisfied.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
//
// The Reader does not copy buf; the caller must not mutate it while the
// Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// require checks that n more bytes are available before a read consumes them.
func (r *Reader) require(n uint64) error {
	if rem := uint64(r.Len()); n > rem {
		return &TruncatedInputError{Offset: r.off, Want: n, Have: rem}
	}
	return nil
}

// ReadBytes consumes and returns exactly n bytes.
//
// The returned slice aliases the underlying buffer; callers that retain it
// past the decode must copy. The length is validated against the remaining
// buffer before anything is allocated or consumed, so a hostile length
// cannot trigger a large allocation.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.buf[r.off : r.off+int(n)]
	r.off += int(n)
	return b, nil
}

// ReadInto fills dst with the next len(dst) bytes. Used for fixed-size
// fields held in byte arrays.
func (r *Reader) ReadInto(dst []byte) error {
	b, err := r.ReadBytes(uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadByte consumes and returns a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadUint32 reads a 4-byte little-endian unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a 4-byte little-endian signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an 8-byte little-endian unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads an 8-byte little-endian signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadCompactSize reads a variable-length unsigned integer.
//
// Values below 0xFD are encoded as a single byte; 0xFD, 0xFE, and 0xFF
// prefix a little-endian uint16, uint32, and uint64 respectively.
func (r *Reader) ReadCompactSize() (uint64, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch first {
	case 0xFD:
		b, err := r.ReadBytes(2)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 0xFE:
		b, err := r.ReadBytes(4)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 0xFF:
		return r.ReadUint64()
	default:
		return uint64(first), nil
	}
}

// ReadVarBytes reads a compact-size length followed by that many bytes.
//
// Unlike ReadBytes, the result is a fresh copy, since var-bytes fields are
// typically retained by the caller.
func (r *Reader) ReadVarBytes() ([]byte, error) {
	n, err := r.ReadCompactSize()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
