package mpeg2enc_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/gen2brain/mpeg2enc"
)

func TestBegin(t *testing.T) {
	buf := mpeg2enc.NewBuffer(nil)
	slice, err := mpeg2enc.NewSlice(buf, mpeg2enc.Picture{Type: mpeg2enc.PictureI})
	if err != nil {
		t.Fatal(err)
	}

	buf.WriteBits(3, 0x5)

	if err = slice.Begin(2, 0, 10); err != nil {
		t.Fatal(err)
	}
	slice.End()

	want := []byte{0xa0, 0x00, 0x00, 0x01, 0x03, 0x50}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Bytes: got %x, want %x", buf.Bytes(), want)
	}

	if slice.Quant() != 10 {
		t.Errorf("Quant: got %d, want %d", slice.Quant(), 10)
	}

	// Alignment before the start code counts as header
	if got := slice.Stats().HeaderBits; got != 5+38+2 {
		t.Errorf("HeaderBits: got %d, want %d", got, 5+38+2)
	}
}

func TestBeginErrors(t *testing.T) {
	slice, err := mpeg2enc.NewSlice(mpeg2enc.NewBuffer(nil), mpeg2enc.Picture{Type: mpeg2enc.PictureI})
	if err != nil {
		t.Fatal(err)
	}

	if err = slice.Begin(174, 0, 1); err != nil {
		t.Errorf("Begin row 174: %v", err)
	}

	if err = slice.Begin(175, 0, 1); !errors.Is(err, mpeg2enc.ErrSliceRow) {
		t.Errorf("Begin row 175: got %v, want %v", err, mpeg2enc.ErrSliceRow)
	}

	if err = slice.Begin(-1, 0, 1); !errors.Is(err, mpeg2enc.ErrSliceRow) {
		t.Errorf("Begin row -1: got %v, want %v", err, mpeg2enc.ErrSliceRow)
	}

	if err = slice.Begin(0, 0, 0); !errors.Is(err, mpeg2enc.ErrQuantizer) {
		t.Errorf("Begin quant 0: got %v, want %v", err, mpeg2enc.ErrQuantizer)
	}

	if err = slice.Begin(0, 0, 32); !errors.Is(err, mpeg2enc.ErrQuantizer) {
		t.Errorf("Begin quant 32: got %v, want %v", err, mpeg2enc.ErrQuantizer)
	}
}

func TestReset(t *testing.T) {
	buf := mpeg2enc.NewBuffer(nil)
	slice, err := mpeg2enc.NewSlice(buf, mpeg2enc.Picture{Type: mpeg2enc.PictureI})
	if err != nil {
		t.Fatal(err)
	}

	slice.Reset(0)
	if slice.Quant() != -1 {
		t.Errorf("Quant: got %d, want %d", slice.Quant(), -1)
	}

	blocks := make([]mpeg2enc.Block, 6)
	for i := range blocks {
		blocks[i][0] = 128
	}

	slice.Encode(&mpeg2enc.Macroblock{Type: mpeg2enc.MacroblockIntra, Quant: 7, Blocks: blocks})

	// address increment, intra with quant, quantiser_scale_code, blocks
	if got, want := buf.Pos(), 1+2+5+28; got != want {
		t.Errorf("Pos: got %d, want %d", got, want)
	}
	if slice.Quant() != 7 {
		t.Errorf("Quant: got %d, want %d", slice.Quant(), 7)
	}
}

func TestPictureValidate(t *testing.T) {
	tests := []struct {
		name string
		pic  mpeg2enc.Picture
		err  error
	}{
		{"I", mpeg2enc.Picture{Type: mpeg2enc.PictureI}, nil},
		{"P", mpeg2enc.Picture{Type: mpeg2enc.PictureP, FCode: [2][2]int{{1, 9}}}, nil},
		{"B", mpeg2enc.Picture{Type: mpeg2enc.PictureB, FCode: [2][2]int{{3, 3}, {4, 2}}}, nil},
		{"4:4:4", mpeg2enc.Picture{Type: mpeg2enc.PictureI, ChromaFormat: mpeg2enc.Chroma444, IntraDCPrecision: 3}, nil},
		{"type 0", mpeg2enc.Picture{}, mpeg2enc.ErrPictureType},
		{"type 4", mpeg2enc.Picture{Type: 4}, mpeg2enc.ErrPictureType},
		{"P f_code 0", mpeg2enc.Picture{Type: mpeg2enc.PictureP, FCode: [2][2]int{{1, 0}}}, mpeg2enc.ErrFCode},
		{"P f_code 10", mpeg2enc.Picture{Type: mpeg2enc.PictureP, FCode: [2][2]int{{10, 1}}}, mpeg2enc.ErrFCode},
		{"B backward f_code", mpeg2enc.Picture{Type: mpeg2enc.PictureB, FCode: [2][2]int{{1, 1}}}, mpeg2enc.ErrFCode},
		{"precision 4", mpeg2enc.Picture{Type: mpeg2enc.PictureI, IntraDCPrecision: 4}, mpeg2enc.ErrDCPrecision},
		{"precision -1", mpeg2enc.Picture{Type: mpeg2enc.PictureI, IntraDCPrecision: -1}, mpeg2enc.ErrDCPrecision},
		{"chroma 4", mpeg2enc.Picture{Type: mpeg2enc.PictureI, ChromaFormat: 4}, mpeg2enc.ErrChromaFormat},
	}

	for _, tt := range tests {
		err := tt.pic.Validate()
		if tt.err == nil && err != nil {
			t.Errorf("%s: got %v, want nil", tt.name, err)
		} else if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.err)
		}

		if _, err = mpeg2enc.NewSlice(mpeg2enc.NewBuffer(nil), tt.pic); !errors.Is(err, tt.err) {
			t.Errorf("NewSlice %s: got %v, want %v", tt.name, err, tt.err)
		}
	}
}

func TestChromaFormatBlocks(t *testing.T) {
	for format, want := range map[mpeg2enc.ChromaFormat]int{0: 6, mpeg2enc.Chroma420: 6, mpeg2enc.Chroma422: 8, mpeg2enc.Chroma444: 12} {
		if got := format.Blocks(); got != want {
			t.Errorf("Blocks(%d): got %d, want %d", format, got, want)
		}
	}
}

// encodePicture encodes one P picture row per slice, each slice to its own buffer.
func encodePicture(t *testing.T, rows, columns int, concurrent bool) ([][]byte, mpeg2enc.Stats) {
	pic := mpeg2enc.Picture{Type: mpeg2enc.PictureP, FCode: [2][2]int{{2, 2}}}

	out := make([][]byte, rows)
	stats := make([]mpeg2enc.Stats, rows)
	errs := make([]error, rows)

	encodeRow := func(row int) {
		buf := mpeg2enc.NewBuffer(nil)
		slice, err := mpeg2enc.NewSlice(buf, pic)
		if err != nil {
			errs[row] = err
			return
		}

		if err = slice.Begin(row, 0, 4+row%8); err != nil {
			errs[row] = err
			return
		}

		for col := 0; col < columns; col++ {
			n := row*columns + col
			if col > 0 && col < columns-1 && n%5 == 0 {
				slice.Skip()
				continue
			}

			mb := &mpeg2enc.Macroblock{Quant: 2 + n%20, Blocks: make([]mpeg2enc.Block, 6)}
			if n%7 == 0 {
				mb.Type = mpeg2enc.MacroblockIntra
				for i := range mb.Blocks {
					mb.Blocks[i][0] = int16(64 + (n*13+i*29)%128)
					mb.Blocks[i][(n+i)%64] += int16(n%9 - 4)
				}
			} else {
				mb.Type = mpeg2enc.MacroblockPredicted
				mb.MV = [2][2]int{{(n*7)%63 - 31, (n*11)%41 - 20}}
				for i := range mb.Blocks {
					if (n+i)%3 == 0 {
						mb.Blocks[i][(n*3+i)%64] = int16((n+i)%50 - 25)
						mb.Blocks[i][63] = 1
					}
				}
				mb.Pattern = mpeg2enc.CodedPattern(mb.Blocks)
			}

			slice.Encode(mb)
		}

		slice.End()

		out[row] = buf.Bytes()
		stats[row] = slice.Stats()
	}

	if concurrent {
		var wg sync.WaitGroup
		for row := 0; row < rows; row++ {
			wg.Add(1)
			go func(row int) {
				defer wg.Done()
				encodeRow(row)
			}(row)
		}
		wg.Wait()
	} else {
		for row := 0; row < rows; row++ {
			encodeRow(row)
		}
	}

	var total mpeg2enc.Stats
	for row := 0; row < rows; row++ {
		if errs[row] != nil {
			t.Fatal(errs[row])
		}
		total.Add(stats[row])
	}

	return out, total
}

func TestConcurrentSlices(t *testing.T) {
	want, wantStats := encodePicture(t, 18, 22, false)
	got, gotStats := encodePicture(t, 18, 22, true)

	for row := range want {
		if !bytes.Equal(got[row], want[row]) {
			t.Errorf("row %d: concurrent output differs", row)
		}
	}

	if gotStats != wantStats {
		t.Errorf("Stats: got %+v, want %+v", gotStats, wantStats)
	}

	bits := 0
	for _, b := range want {
		bits += len(b) * 8
	}
	if wantStats.Bits() != bits {
		t.Errorf("Bits: got %d, want %d", wantStats.Bits(), bits)
	}

	if wantStats.Skipped == 0 || wantStats.Macroblocks[mpeg2enc.MacroblockIntra] == 0 {
		t.Errorf("Stats: got %+v, want skipped and intra macroblocks", wantStats)
	}
}

func TestStatsAdd(t *testing.T) {
	a := mpeg2enc.Stats{HeaderBits: 1, ModeBits: 2, TextureBits: 3, Skipped: 4}
	a.Macroblocks[mpeg2enc.MacroblockForward] = 5

	b := a
	b.Add(a)

	if b.HeaderBits != 2 || b.ModeBits != 4 || b.TextureBits != 6 || b.Skipped != 8 {
		t.Errorf("Add: got %+v", b)
	}
	if b.Macroblocks[mpeg2enc.MacroblockForward] != 10 {
		t.Errorf("Macroblocks: got %d, want %d", b.Macroblocks[mpeg2enc.MacroblockForward], 10)
	}
	if b.Bits() != 12 {
		t.Errorf("Bits: got %d, want %d", b.Bits(), 12)
	}
}
