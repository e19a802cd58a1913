package mpeg2enc

import "fmt"

// vlc is a variable length codeword. Code holds the codeword in its low Size bits.
type vlc struct {
	Code uint32
	Size int
}

// direction is the motion prediction class of a non-intra B macroblock.
type direction int

const (
	directionForward direction = iota
	directionBackward
	directionInterpolated
)

// coeffTable is a run/level table expanded for direct lookup.
type coeffTable struct {
	codes  [41][32]vlc // [|level|][run]
	maxRun *[41]int
	eob    vlc
}

var coeffTables [2]coeffTable

func init() {
	coeffTables[0] = newCoeffTable(videoDctCoeffZero, videoDctCoeffEndZero)
	coeffTables[1] = newCoeffTable(videoDctCoeffOne, videoDctCoeffEndOne)

	validateMacroblockTypes()
}

func newCoeffTable(entries []dctCoeff, eob vlc) coeffTable {
	t := coeffTable{maxRun: &videoDctCoeffMaxRun, eob: eob}

	for _, e := range entries {
		if e.Level < 1 || e.Level > 40 || e.Run > videoDctCoeffMaxRun[e.Level] {
			panic(fmt.Sprintf("mpeg2enc: coefficient table entry run %d level %d outside its key space", e.Run, e.Level))
		}
		t.codes[e.Level][e.Run] = e.Code
	}

	for level := 1; level <= 40; level++ {
		for run := 0; run <= videoDctCoeffMaxRun[level]; run++ {
			if t.codes[level][run].Size == 0 {
				panic(fmt.Sprintf("mpeg2enc: coefficient table misses run %d level %d", run, level))
			}
		}
	}

	return t
}

// validateMacroblockTypes checks that every macroblock_type key the mode
// encoder can construct has a codeword.
func validateMacroblockTypes() {
	for _, pt := range []PictureType{PictureI, PictureP, PictureB} {
		for quant := 0; quant < 2; quant++ {
			mustDefined(videoMacroblockTypeIntra[pt][quant], "intra")
		}
	}

	// Not coded implies no quant change; not coded without motion is a skip.
	for mc := 0; mc < 2; mc++ {
		mustDefined(videoMacroblockTypePredictive[mc][1][0], "predictive")
		mustDefined(videoMacroblockTypePredictive[mc][1][1], "predictive")
	}
	mustDefined(videoMacroblockTypePredictive[1][0][0], "predictive")

	for dir := directionForward; dir <= directionInterpolated; dir++ {
		mustDefined(videoMacroblockTypeB[dir][0][0], "bidirectional")
		mustDefined(videoMacroblockTypeB[dir][1][0], "bidirectional")
		mustDefined(videoMacroblockTypeB[dir][1][1], "bidirectional")
	}
}

func mustDefined(v vlc, table string) {
	if v.Size == 0 {
		panic("mpeg2enc: missing " + table + " macroblock_type code")
	}
}

func boolIndex(b bool) int {
	if b {
		return 1
	}

	return 0
}

func writeVlc(w BitWriter, v vlc) {
	if v.Size == 0 {
		panic("mpeg2enc: write of unreachable code table entry")
	}

	w.WriteBits(v.Size, v.Code)
}
