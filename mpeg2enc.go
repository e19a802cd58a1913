// Package mpeg2enc implements the macroblock layer of an MPEG-2 Video (ISO/IEC 13818-2) encoder.
//
// The package turns already decided macroblock data (macroblock type, quantizer, motion vectors and
// quantized coefficients) into the variable length codes of the standard. Sequence, GOP and picture
// headers, motion estimation, DCT and quantization are left to the caller.
//
// A Slice carries the state that is coded differentially from one macroblock to the next:
// the quantizer, the motion vector predictors and the intra DC predictors. Macroblocks of a slice
// must therefore be encoded in raster order through one Slice:
//
//	buf := mpeg2enc.NewBuffer(w)
//	slice, err := mpeg2enc.NewSlice(buf, mpeg2enc.Picture{Type: mpeg2enc.PictureI})
//	if err != nil {
//		return err
//	}
//
//	if err = slice.Begin(row, 0, quant); err != nil {
//		return err
//	}
//	for col := 0; col < mbWidth; col++ {
//		slice.Encode(&macroblocks[col])
//	}
//	slice.End()
//
//	err = buf.Flush()
//
// Different slices share no state, so they can be encoded concurrently as long as each one
// writes to its own BitWriter.
//
// Violations of the input contract (unknown macroblock types, quantizer or motion vectors out of range,
// zero levels, skipping where the standard forbids it) are programming errors and cause a panic.
// Values that merely exceed the code tables are coded with escape codes.
package mpeg2enc

import (
	"errors"
	"fmt"
)

// PictureType is the picture_coding_type.
type PictureType int

// Picture types.
const (
	PictureI PictureType = 1
	PictureP PictureType = 2
	PictureB PictureType = 3
)

// ChromaFormat is the chroma_format of the sequence.
type ChromaFormat int

// Chroma formats.
const (
	Chroma420 ChromaFormat = 1
	Chroma422 ChromaFormat = 2
	Chroma444 ChromaFormat = 3
)

// Blocks returns the number of 8x8 blocks in a macroblock.
func (c ChromaFormat) Blocks() int {
	switch c {
	case Chroma422:
		return 8
	case Chroma444:
		return 12
	default:
		return 6
	}
}

var (
	// ErrPictureType is returned for a picture_coding_type other than I, P or B.
	ErrPictureType = errors.New("invalid picture type")
	// ErrFCode is returned for an f_code outside 1..9.
	ErrFCode = errors.New("invalid f_code")
	// ErrDCPrecision is returned for an intra_dc_precision outside 0..3.
	ErrDCPrecision = errors.New("invalid intra DC precision")
	// ErrChromaFormat is returned for an unknown chroma format.
	ErrChromaFormat = errors.New("invalid chroma format")
	// ErrSliceRow is returned for a slice row that needs slice_vertical_position_extension.
	ErrSliceRow = errors.New("invalid slice row")
	// ErrQuantizer is returned for a quantiser_scale_code outside 1..31.
	ErrQuantizer = errors.New("invalid quantiser scale code")
)

// Picture holds the picture level parameters the macroblock layer depends on.
type Picture struct {
	Type PictureType

	// FCode is indexed by direction (0 forward, 1 backward) and component
	// (0 horizontal, 1 vertical). Unused entries are ignored.
	FCode [2][2]int

	IntraDCPrecision int
	IntraVLCFormat   bool
	AlternateScan    bool

	// ChromaFormat defaults to Chroma420 when zero.
	ChromaFormat ChromaFormat
}

// Validate checks the parameters.
func (p *Picture) Validate() error {
	if p.Type < PictureI || p.Type > PictureB {
		return fmt.Errorf("%w: %d", ErrPictureType, p.Type)
	}

	directions := 0
	switch p.Type {
	case PictureP:
		directions = 1
	case PictureB:
		directions = 2
	}

	for s := 0; s < directions; s++ {
		for t := 0; t < 2; t++ {
			if p.FCode[s][t] < 1 || p.FCode[s][t] > 9 {
				return fmt.Errorf("%w: f_code[%d][%d] = %d", ErrFCode, s, t, p.FCode[s][t])
			}
		}
	}

	if p.IntraDCPrecision < 0 || p.IntraDCPrecision > 3 {
		return fmt.Errorf("%w: %d", ErrDCPrecision, p.IntraDCPrecision)
	}

	if p.ChromaFormat < 0 || p.ChromaFormat > Chroma444 {
		return fmt.Errorf("%w: %d", ErrChromaFormat, p.ChromaFormat)
	}

	return nil
}

func (p *Picture) chromaFormat() ChromaFormat {
	if p.ChromaFormat == 0 {
		return Chroma420
	}

	return p.ChromaFormat
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
