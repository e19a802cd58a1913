package mpeg2enc

import (
	"fmt"
)

// MacroblockType is the prediction mode of a macroblock.
type MacroblockType int

// Macroblock types. MacroblockPredicted is the forward prediction of a P
// picture; the forward, backward and interpolated types belong to B pictures.
const (
	MacroblockIntra MacroblockType = iota
	MacroblockPredicted
	MacroblockForward
	MacroblockBackward
	MacroblockInterpolated
)

// Macroblock is the coding decision for one macroblock.
type Macroblock struct {
	Type MacroblockType

	// Quant is the quantiser_scale_code, 1..31.
	Quant int

	// MV holds the vectors in half sample units, indexed by direction
	// (0 forward, 1 backward) and component (0 horizontal, 1 vertical).
	MV [2][2]int

	// Pattern has one bit per block, the most significant of the
	// ChromaFormat.Blocks() bits is block 0. Ignored for intra macroblocks.
	Pattern int

	Blocks []Block
}

// CodedPattern computes Pattern from the blocks of a non-intra macroblock.
func CodedPattern(blocks []Block) int {
	pattern := 0

	for i := range blocks {
		pattern <<= 1
		for _, c := range blocks[i] {
			if c != 0 {
				pattern |= 1
				break
			}
		}
	}

	return pattern
}

// Encode writes one macroblock, preceded by the address increment that
// accounts for macroblocks skipped since the previous one.
func (s *Slice) Encode(mb *Macroblock) {
	intra := mb.Type == MacroblockIntra
	if mb.Quant < 1 || mb.Quant > 31 {
		panic(fmt.Sprintf("mpeg2enc: quantiser_scale_code %d out of range", mb.Quant))
	}

	start := s.w.Pos()
	s.writeAddressIncrement()
	mode := s.w.Pos()

	pattern := s.pattern(mb)
	coded := pattern != 0

	quant := mb.Quant != s.quantizerScale
	if quant && !coded {
		// No residual, no quantiser_scale_code: carried value stays
		quant = false
	}

	// Macroblock type
	switch {
	case intra:
		writeVlc(s.w, videoMacroblockTypeIntra[s.pic.Type][boolIndex(quant)])
	case s.pic.Type == PictureP && mb.Type == MacroblockPredicted:
		// A macroblock without motion and texture would be a skipped one
		mc := mb.MV[0] != [2]int{} || !coded
		writeVlc(s.w, videoMacroblockTypePredictive[boolIndex(mc)][boolIndex(coded)][boolIndex(quant)])
	case s.pic.Type == PictureB && mb.Type >= MacroblockForward && mb.Type <= MacroblockInterpolated:
		dir := direction(mb.Type - MacroblockForward)
		writeVlc(s.w, videoMacroblockTypeB[dir][boolIndex(coded)][boolIndex(quant)])
	default:
		panic(fmt.Sprintf("mpeg2enc: macroblock type %d invalid in picture type %d", mb.Type, s.pic.Type))
	}

	// Quantizer scale
	if quant {
		s.w.WriteBits(5, uint32(mb.Quant))
		s.quantizerScale = mb.Quant
	}

	// Motion vectors
	if intra {
		// Intra-coded macroblocks reset motion vectors
		s.resetMotionPredictors(0)
		s.resetMotionPredictors(1)
	} else {
		// Non-intra macroblocks reset DC predictors
		s.resetDCPredictors()
		s.writeMacroblockMotion(mb, coded)
	}

	texture := s.w.Pos()

	// Coded block pattern
	if !intra && coded {
		s.writeCodedBlockPattern(pattern)
	}

	// Blocks
	if coded && len(mb.Blocks) < s.blocks {
		panic(fmt.Sprintf("mpeg2enc: macroblock has %d blocks, want %d", len(mb.Blocks), s.blocks))
	}

	mask := 1 << (s.blocks - 1)
	for block := 0; block < s.blocks; block++ {
		if pattern&mask != 0 {
			s.writeBlock(&mb.Blocks[block], block, intra)
		}
		mask >>= 1
	}

	s.prevIntra = intra

	s.stats.HeaderBits += mode - start
	s.stats.ModeBits += texture - mode
	s.stats.TextureBits += s.w.Pos() - texture
	s.stats.Macroblocks[mb.Type]++
}

func (s *Slice) pattern(mb *Macroblock) int {
	all := 1<<s.blocks - 1
	if mb.Type == MacroblockIntra {
		return all
	}
	if mb.Pattern&^all != 0 {
		panic(fmt.Sprintf("mpeg2enc: coded block pattern %#x has more than %d blocks", mb.Pattern, s.blocks))
	}

	return mb.Pattern
}

func (s *Slice) writeMacroblockMotion(mb *Macroblock, coded bool) {
	switch mb.Type {
	case MacroblockPredicted:
		if mb.MV[0] != [2]int{} || !coded {
			s.writeMotionVectors(0, mb.MV[0])
		} else {
			// No motion information in P-picture, reset vectors
			s.resetMotionPredictors(0)
		}
	case MacroblockForward:
		s.writeMotionVectors(0, mb.MV[0])
	case MacroblockBackward:
		s.writeMotionVectors(1, mb.MV[1])
	case MacroblockInterpolated:
		s.writeMotionVectors(0, mb.MV[0])
		s.writeMotionVectors(1, mb.MV[1])
	}
}

// writeCodedBlockPattern writes coded_block_pattern_420 for the first six
// blocks and the remaining blocks of 4:2:2 and 4:4:4 as a plain field.
func (s *Slice) writeCodedBlockPattern(pattern int) {
	extra := s.blocks - 6

	writeVlc(s.w, videoCodeBlockPattern[pattern>>extra])
	if extra > 0 {
		s.w.WriteBits(extra, uint32(pattern)&(1<<extra-1))
	}
}
