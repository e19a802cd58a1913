package mpeg2enc

import "fmt"

// MotionCode splits a motion vector difference into motion_code and
// motion_residual for the given f_code. The difference is first wrapped into
// the range [-16<<(fCode-1), 16<<(fCode-1)).
func MotionCode(delta, fCode int) (code, residual int) {
	rSize := fCode - 1
	fscale := 1 << rSize

	if delta < (-fscale << 4) {
		delta += fscale << 5
	} else if delta > (fscale<<4)-1 {
		delta -= fscale << 5
	}

	if delta == 0 {
		return 0, 0
	}

	magnitude := abs(delta) + fscale - 1
	code = magnitude >> rSize
	if delta < 0 {
		code = -code
	}

	return code, magnitude & (fscale - 1)
}

func writeMotionVector(w BitWriter, delta, fCode int) {
	code, residual := MotionCode(delta, fCode)

	writeVlc(w, videoMotion[code+16])
	if rSize := fCode - 1; rSize > 0 && code != 0 {
		w.WriteBits(rSize, uint32(residual))
	}
}

// writeMotionVectors writes both components of one direction and moves the
// predictors to the coded vector.
func (s *Slice) writeMotionVectors(list int, mv [2]int) {
	for t := 0; t < 2; t++ {
		fCode := s.pic.FCode[list][t]
		fscale := 1 << (fCode - 1)
		if mv[t] < (-fscale<<4) || mv[t] > (fscale<<4)-1 {
			panic(fmt.Sprintf("mpeg2enc: motion vector %d out of range for f_code %d", mv[t], fCode))
		}

		writeMotionVector(s.w, mv[t]-s.pmv[list][t], fCode)
		s.pmv[list][t] = mv[t]
	}
}

func (s *Slice) resetMotionPredictors(list int) {
	s.pmv[list][0] = 0
	s.pmv[list][1] = 0
}
