package mpeg2enc

import (
	"fmt"
)

const (
	startSliceFirst = 0x01
	startSliceLast  = 0xAF
)

// Stats counts the bits and macroblocks written through a Slice.
type Stats struct {
	// HeaderBits counts slice headers and macroblock address increments.
	HeaderBits int
	// ModeBits counts macroblock_type, quantiser_scale_code and motion vectors.
	ModeBits int
	// TextureBits counts coded_block_pattern and block data.
	TextureBits int

	Macroblocks [5]int // indexed by MacroblockType
	Skipped     int
}

// Add adds the counters of o to st.
func (st *Stats) Add(o Stats) {
	st.HeaderBits += o.HeaderBits
	st.ModeBits += o.ModeBits
	st.TextureBits += o.TextureBits
	for i := range st.Macroblocks {
		st.Macroblocks[i] += o.Macroblocks[i]
	}
	st.Skipped += o.Skipped
}

// Bits returns the total number of bits.
func (st *Stats) Bits() int {
	return st.HeaderBits + st.ModeBits + st.TextureBits
}

// Slice encodes the macroblocks of one slice and carries the state that is
// predicted from one macroblock to the next.
type Slice struct {
	w   BitWriter
	pic Picture

	blocks int

	quantizerScale int
	pmv            [2][2]int
	dcPredictor    [3]int

	sliceBegin bool
	column     int
	skipped    int
	prevIntra  bool

	stats Stats
}

// NewSlice creates a slice encoder writing to w. The carried state starts as
// after Reset(0).
func NewSlice(w BitWriter, pic Picture) (*Slice, error) {
	if err := pic.Validate(); err != nil {
		return nil, err
	}

	s := &Slice{}
	s.w = w
	s.pic = pic
	s.pic.ChromaFormat = pic.chromaFormat()
	s.blocks = s.pic.ChromaFormat.Blocks()

	s.Reset(0)

	return s, nil
}

// Begin writes a slice header for the macroblock row and resets the carried
// state. The first macroblock of the slice is at column. The header carries
// the quantizer, so macroblocks only signal it when it changes.
func (s *Slice) Begin(row, column, quant int) error {
	if row < 0 || startSliceFirst+row > startSliceLast {
		return fmt.Errorf("%w: %d", ErrSliceRow, row)
	}
	if quant < 1 || quant > 31 {
		return fmt.Errorf("%w: %d", ErrQuantizer, quant)
	}

	start := s.w.Pos()

	s.w.Align()
	s.w.WriteBits(32, 0x00000100|uint32(startSliceFirst+row))
	s.w.WriteBits(5, uint32(quant)) // quantiser_scale_code
	s.w.WriteBit(0)                 // extra_bit_slice

	s.stats.HeaderBits += s.w.Pos() - start

	s.Reset(column)
	s.quantizerScale = quant

	return nil
}

// Reset resets the carried state for a slice whose header is written by the
// caller. No quantizer is known, so the first coded macroblock signals its own.
func (s *Slice) Reset(column int) {
	s.sliceBegin = true
	s.column = column
	s.skipped = 0
	s.prevIntra = false

	s.quantizerScale = -1
	s.resetMotionPredictors(0)
	s.resetMotionPredictors(1)
	s.resetDCPredictors()
}

// Skip records a skipped macroblock. It is coded as part of the address
// increment of the next encoded macroblock.
func (s *Slice) Skip() {
	switch {
	case s.sliceBegin:
		panic("mpeg2enc: first macroblock of a slice cannot be skipped")
	case s.pic.Type == PictureI:
		panic("mpeg2enc: macroblocks of an I picture cannot be skipped")
	case s.pic.Type == PictureB && s.prevIntra:
		panic("mpeg2enc: skipped macroblock after an intra macroblock in a B picture")
	}

	s.skipped++
	s.stats.Skipped++

	// Skipped macroblocks reset DC predictors
	s.resetDCPredictors()

	// Skipped macroblocks in P-pictures reset motion vectors
	if s.pic.Type == PictureP {
		s.resetMotionPredictors(0)
	}
}

// End finishes the slice and aligns the stream to a byte boundary.
func (s *Slice) End() {
	if s.skipped > 0 {
		panic("mpeg2enc: last macroblock of a slice cannot be skipped")
	}

	start := s.w.Pos()
	s.w.Align()
	s.stats.HeaderBits += s.w.Pos() - start
}

// Quant returns the carried quantiser_scale_code, -1 if none was signalled yet.
func (s *Slice) Quant() int {
	return s.quantizerScale
}

// Predictor returns the motion vector predictor for direction list (0 forward,
// 1 backward) and component t (0 horizontal, 1 vertical).
func (s *Slice) Predictor(list, t int) int {
	return s.pmv[list][t]
}

// DCPredictor returns the intra DC predictor for component cc (0 Y, 1 Cb, 2 Cr).
func (s *Slice) DCPredictor(cc int) int {
	return s.dcPredictor[cc]
}

// Stats returns the counters of the slice.
func (s *Slice) Stats() Stats {
	return s.stats
}

func (s *Slice) writeAddressIncrement() {
	increment := s.skipped + 1
	if s.sliceBegin {
		// The first increment of each slice is relative to the start of the row
		increment = s.column + 1
	}

	for increment > 33 {
		writeVlc(s.w, videoMacroblockEscape)
		increment -= 33
	}
	writeVlc(s.w, videoMacroblockAddressIncrement[increment-1])

	s.sliceBegin = false
	s.skipped = 0
}
