package mpeg2enc

import (
	"io"
)

var (
	// BufferSize is the default size for buffer. A buffer with a writer flushes
	// itself once this many bytes are pending.
	BufferSize = 128 * 1024
)

// BitWriter is the bit sink the encoder writes to. Bits are written MSB first.
type BitWriter interface {
	// WriteBits appends the low n bits of v, 0 <= n <= 32.
	WriteBits(n int, v uint32)
	// WriteBit appends the low bit of v.
	WriteBit(v uint32)
	// Pos returns the number of bits written so far.
	Pos() int
	// Align pads with zero bits up to the next byte boundary.
	Align()
	// Flush hands complete bytes to the underlying sink.
	Flush() error
}

// Buffer collects the encoded bitstream.
type Buffer struct {
	writer io.Writer
	bytes  []byte

	cache     uint64
	cacheBits int

	flushed int
	err     error
}

// NewBuffer creates a buffer instance. With a nil writer all data stays in the
// buffer and is available through Bytes.
func NewBuffer(w io.Writer) *Buffer {
	buf := &Buffer{}

	buf.writer = w
	buf.bytes = make([]byte, 0, BufferSize)

	return buf
}

// Bytes returns the complete bytes not yet flushed.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// Pos returns the bit position.
func (b *Buffer) Pos() int {
	return (b.flushed+len(b.bytes))<<3 + b.cacheBits
}

// Aligned checks whether the bit position is at a byte boundary.
func (b *Buffer) Aligned() bool {
	return b.cacheBits == 0
}

// WriteBits appends the low n bits of v.
func (b *Buffer) WriteBits(n int, v uint32) {
	if n == 0 {
		return
	}
	if n < 0 || n > 32 {
		panic("mpeg2enc: bit count out of range")
	}

	b.cache = (b.cache << n) | uint64(v)&(1<<n-1)
	b.cacheBits += n

	for b.cacheBits >= 8 {
		b.cacheBits -= 8
		b.bytes = append(b.bytes, byte(b.cache>>b.cacheBits))
	}

	if b.writer != nil && len(b.bytes) >= BufferSize {
		_ = b.Flush()
	}
}

// WriteBit appends the low bit of v.
func (b *Buffer) WriteBit(v uint32) {
	b.WriteBits(1, v&1)
}

// Align pads with zero bits to the next byte boundary.
func (b *Buffer) Align() {
	if b.cacheBits != 0 {
		b.WriteBits(8-b.cacheBits, 0)
	}
}

// Flush writes complete bytes to the writer. Bits of an incomplete byte stay
// in the buffer. The first write error is kept and returned by every later call.
func (b *Buffer) Flush() error {
	if b.err != nil {
		return b.err
	}
	if b.writer == nil || len(b.bytes) == 0 {
		return nil
	}

	n, err := b.writer.Write(b.bytes)
	b.flushed += n
	if err == nil && n < len(b.bytes) {
		err = io.ErrShortWrite
	}
	if err != nil {
		b.err = err
		b.bytes = b.bytes[n:]

		return err
	}

	b.bytes = b.bytes[:0]

	return nil
}

// Reset discards all data and sets a new writer.
func (b *Buffer) Reset(w io.Writer) {
	b.writer = w
	b.bytes = b.bytes[:0]
	b.cache = 0
	b.cacheBits = 0
	b.flushed = 0
	b.err = nil
}
