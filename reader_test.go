package mpeg2enc

import (
	"strings"
	"testing"
)

// bitReader reads back what the encoder wrote.
type bitReader struct {
	bytes    []byte
	bitIndex int
}

func newBitReader(b *Buffer) *bitReader {
	b.Align()
	return &bitReader{bytes: b.Bytes()}
}

func (b *bitReader) read(count int) int {
	value := 0
	for count != 0 {
		currentByte := int(b.bytes[b.bitIndex>>3])

		remaining := 8 - (b.bitIndex & 7) // Remaining bits in byte
		read := count
		if remaining < count { // Bits in self run
			read = remaining
		}

		shift := remaining - read
		mask := 0xff >> (8 - read)

		value = (value << read) | ((currentByte & (mask << shift)) >> shift)

		b.bitIndex += read
		count -= read
	}

	return value
}

func (b *bitReader) read1() int {
	currentByte := int(b.bytes[b.bitIndex>>3])

	shift := 7 - (b.bitIndex & 7)
	value := (currentByte & (1 << shift)) >> shift

	b.bitIndex++

	return value
}

// readVlc returns the index of the code in table that matches the stream, -1 if none does.
func (b *bitReader) readVlc(t *testing.T, table []vlc) int {
	t.Helper()

	code, size := uint32(0), 0
	for size < 32 {
		code = code<<1 | uint32(b.read1())
		size++

		for i, v := range table {
			if v.Size == size && v.Code == code {
				return i
			}
		}
	}

	t.Fatalf("readVlc: no code matches at bit %d", b.bitIndex)
	return -1
}

// bitString renders the bits of v.
func bitString(v vlc) string {
	var sb strings.Builder
	for i := v.Size - 1; i >= 0; i-- {
		if v.Code&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// bufferBits renders the bits written to b.
func bufferBits(b *Buffer) string {
	var sb strings.Builder
	r := &bitReader{bytes: b.Bytes()}
	for r.bitIndex < len(r.bytes)<<3 {
		sb.WriteByte(byte('0' + r.read1()))
	}
	sb.WriteString(bitString(vlc{Code: uint32(b.cache), Size: b.cacheBits}))

	return sb.String()
}
