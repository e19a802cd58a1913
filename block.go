package mpeg2enc

import (
	"fmt"
	"math/bits"
)

// Block holds the quantized coefficients of one 8x8 block in raster order.
// For intra blocks Block[0] is the quantized DC value.
type Block [64]int16

// RunLevel is one coefficient: the number of zero coefficients preceding it
// in scan order and its signed value. Last marks the final nonzero coefficient.
type RunLevel struct {
	Run   int
	Level int
	Last  bool
}

// RunLevelSource yields the coefficients of one block in bitstream order.
// It is single pass; Next reports false once exhausted.
type RunLevelSource interface {
	Next() (RunLevel, bool)
}

// Scanner is a RunLevelSource over a Block.
type Scanner struct {
	block *Block
	scan  *[64]byte
	pos   int
	last  int
}

// NewScanner creates a scanner starting at scan position start, 1 for intra
// blocks whose DC is coded separately, 0 otherwise.
func NewScanner(block *Block, alternate bool, start int) *Scanner {
	s := &Scanner{block: block, pos: start}

	s.scan = &videoZigZag
	if alternate {
		s.scan = &videoAlternateScan
	}

	s.last = 63
	for s.last >= start && block[s.scan[s.last]] == 0 {
		s.last--
	}

	return s
}

// Next returns the next run/level pair.
func (s *Scanner) Next() (RunLevel, bool) {
	if s.pos > s.last {
		return RunLevel{}, false
	}

	run := 0
	for s.block[s.scan[s.pos]] == 0 {
		run++
		s.pos++
	}

	rl := RunLevel{Run: run, Level: int(s.block[s.scan[s.pos]]), Last: s.pos == s.last}
	s.pos++

	return rl, true
}

// coefficientCode selects the code for one coefficient. Table entries are
// preferred, then the first coefficient shortcut, then the escape.
func coefficientCode(t *coeffTable, run, level int, first, intra bool) (v vlc, escape bool) {
	magnitude := abs(level)

	if magnitude <= 40 && run <= t.maxRun[magnitude] {
		if first && !intra && run == 0 && magnitude == 1 {
			return videoDctCoeffFirst, false
		}

		return t.codes[magnitude][run], false
	}

	return videoDctCoeffEscape, true
}

// EncodeCoefficients writes the AC coefficients of a block (all coefficients
// for non-intra blocks) followed by end_of_block. The alternate table
// (Table B-15) is only valid for intra blocks.
func EncodeCoefficients(w BitWriter, src RunLevelSource, intra, alternate bool) {
	t := &coeffTables[0]
	if intra && alternate {
		t = &coeffTables[1]
	}

	first := true
	for {
		rl, ok := src.Next()
		if !ok {
			break
		}

		if rl.Level == 0 || rl.Level < -2047 || rl.Level > 2047 || rl.Run < 0 || rl.Run > 63 {
			panic(fmt.Sprintf("mpeg2enc: invalid run/level pair %d/%d", rl.Run, rl.Level))
		}

		v, escape := coefficientCode(t, rl.Run, rl.Level, first, intra)
		writeVlc(w, v)

		if escape {
			w.WriteBits(6, uint32(rl.Run))
			w.WriteBits(12, uint32(rl.Level)&0xfff)
		} else if rl.Level < 0 {
			w.WriteBit(1)
		} else {
			w.WriteBit(0)
		}

		first = false
	}

	if first && !intra {
		panic("mpeg2enc: coded non-intra block without coefficients")
	}

	writeVlc(w, t.eob)
}

// writeDC writes dct_dc_size and dct_dc_differential for one intra block.
func writeDC(w BitWriter, cc, differential int) {
	magnitude := abs(differential)
	size := bits.Len(uint(magnitude))
	if size > 11 {
		panic(fmt.Sprintf("mpeg2enc: DC differential %d out of range", differential))
	}

	writeVlc(w, videoDctSize[cc][size])

	if size > 0 {
		if differential < 0 {
			differential += (1 << size) - 1
		}
		w.WriteBits(size, uint32(differential))
	}
}

// writeBlock writes one coded block of the current macroblock.
func (s *Slice) writeBlock(block *Block, index int, intra bool) {
	start := 0

	if intra {
		// Y blocks, then Cb and Cr alternating
		cc := 0
		if index > 3 {
			cc = 1 + (index-4)&1
		}

		dc := int(block[0])
		if dc < 0 || dc >= 256<<s.pic.IntraDCPrecision {
			panic(fmt.Sprintf("mpeg2enc: intra DC %d out of range", dc))
		}

		writeDC(s.w, cc, dc-s.dcPredictor[cc])
		s.dcPredictor[cc] = dc
		start = 1
	}

	EncodeCoefficients(s.w, NewScanner(block, s.pic.AlternateScan, start), intra, s.pic.IntraVLCFormat)
}

func (s *Slice) resetDCPredictors() {
	reset := 128 << s.pic.IntraDCPrecision

	s.dcPredictor[0] = reset
	s.dcPredictor[1] = reset
	s.dcPredictor[2] = reset
}
