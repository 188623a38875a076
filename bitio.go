package picojpeg

import (
	"bytes"

	"github.com/icza/bitio"
)

// bitWriter is a growable, MSB-first bit buffer. It wraps an icza/bitio
// Writer over a bytes.Buffer, giving bytes.Buffer's doubling growth policy
// for free while keeping the exact surface the codec needs: write_bits,
// size_in_bytes, and a one-shot flush to a byte slice.
//
// Per the design notes, write and read are two distinct views (bitWriter,
// bitReader) rather than a single dual-mode type.
type bitWriter struct {
	buf      *bytes.Buffer
	bw       *bitio.Writer
	bitCount uint64
}

// newBitWriter creates a writer with the underlying byte vector pre-sized to
// initialCapacity bytes, all positions implicitly zero until written.
func newBitWriter(initialCapacity int) *bitWriter {
	buf := bytes.NewBuffer(make([]byte, 0, initialCapacity))
	return &bitWriter{buf: buf, bw: bitio.NewWriter(buf)}
}

// writeBits writes the low n bits of value, most-significant bit first. n
// must be in [1,24].
func (w *bitWriter) writeBits(value uint32, n uint) error {
	if n < 1 || n > 24 {
		return InvalidArgumentError("write_bits: n out of [1,24]")
	}
	if err := w.bw.WriteBits(uint64(value), uint8(n)); err != nil {
		return OutOfMemoryError(err.Error())
	}
	w.bitCount += uint64(n)
	return nil
}

// sizeInBytes reports byte_cursor + (bit_cursor > 0 ? 1 : 0) without
// flushing the pending partial byte.
func (w *bitWriter) sizeInBytes() int {
	n := int(w.bitCount / 8)
	if w.bitCount%8 != 0 {
		n++
	}
	return n
}

// bytes pads the final partial byte with zero bits and returns the complete
// byte slice. The writer must not be used afterwards.
func (w *bitWriter) bytes() ([]byte, error) {
	if err := w.bw.Close(); err != nil {
		return nil, OutOfMemoryError(err.Error())
	}
	return w.buf.Bytes(), nil
}

// bitReader consumes an MSB-first bit stream previously produced by a
// bitWriter (or, symmetrically, any conforming encoder).
type bitReader struct {
	br *bitio.Reader
}

// openBitReader opens a reader positioned at bit (0,0) of data.
func openBitReader(data []byte) *bitReader {
	return &bitReader{br: bitio.NewReader(bytes.NewReader(data))}
}

// readBits returns the next n bits as an unsigned integer, most-significant
// bit first. n must be in [1,24].
func (r *bitReader) readBits(n uint) (uint32, error) {
	if n < 1 || n > 24 {
		return 0, InvalidArgumentError("read_bits: n out of [1,24]")
	}
	v, err := r.br.ReadBits(uint8(n))
	if err != nil {
		return 0, MalformedError("unexpected end of bitstream")
	}
	return uint32(v), nil
}

// readBit returns the next single bit as a bool (true for 1).
func (r *bitReader) readBit() (bool, error) {
	v, err := r.br.ReadBool()
	if err != nil {
		return false, MalformedError("unexpected end of bitstream")
	}
	return v, nil
}
