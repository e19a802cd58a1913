package mpeg2enc

// Code tables of ISO/IEC 13818-2 Annex B. Every entry is {code, size}; the
// comment shows the bit string. A zero size marks a key that the encoder
// never produces.

// Table B-1, indexed by increment - 1.
var videoMacroblockAddressIncrement = [33]vlc{
	{0x1, 1}, // 1: 1
	{0x3, 3}, // 2: 011
	{0x2, 3}, // 3: 010
	{0x3, 4}, // 4: 0011
	{0x2, 4}, // 5: 0010
	{0x3, 5}, // 6: 00011
	{0x2, 5}, // 7: 00010
	{0x7, 7}, // 8: 0000111
	{0x6, 7}, // 9: 0000110
	{0xb, 8}, // 10: 00001011
	{0xa, 8}, // 11: 00001010
	{0x9, 8}, // 12: 00001001
	{0x8, 8}, // 13: 00001000
	{0x7, 8}, // 14: 00000111
	{0x6, 8}, // 15: 00000110
	{0x17, 10}, // 16: 0000010111
	{0x16, 10}, // 17: 0000010110
	{0x15, 10}, // 18: 0000010101
	{0x14, 10}, // 19: 0000010100
	{0x13, 10}, // 20: 0000010011
	{0x12, 10}, // 21: 0000010010
	{0x23, 11}, // 22: 00000100011
	{0x22, 11}, // 23: 00000100010
	{0x21, 11}, // 24: 00000100001
	{0x20, 11}, // 25: 00000100000
	{0x1f, 11}, // 26: 00000011111
	{0x1e, 11}, // 27: 00000011110
	{0x1d, 11}, // 28: 00000011101
	{0x1c, 11}, // 29: 00000011100
	{0x1b, 11}, // 30: 00000011011
	{0x1a, 11}, // 31: 00000011010
	{0x19, 11}, // 32: 00000011001
	{0x18, 11}, // 33: 00000011000
}

var videoMacroblockEscape = vlc{0x08, 11} // 0000 0001 000

// Tables B-2, B-3 and B-4, intra rows. Indexed by picture type and quant flag.
var videoMacroblockTypeIntra = [4][2]vlc{
	PictureI: {{0x1, 1}, {0x1, 2}},  // 1, 01
	PictureP: {{0x3, 5}, {0x1, 6}},  // 00011, 000001
	PictureB: {{0x3, 5}, {0x1, 6}},  // 00011, 000001
}

// Table B-3, non-intra rows. Indexed by motion compensated, coded and quant flags.
var videoMacroblockTypePredictive = [2][2][2]vlc{
	{
		{},                     // no MC, not coded: skipped macroblock
		{{0x1, 2}, {0x1, 5}}, // 01, 00001
	},
	{
		{{0x1, 3}, {}},       // 001
		{{0x1, 1}, {0x2, 5}}, // 1, 00010
	},
}

// Table B-4, non-intra rows. Indexed by direction, coded and quant flags.
var videoMacroblockTypeB = [3][2][2]vlc{
	directionForward: {
		{{0x2, 4}, {}},       // 0010
		{{0x3, 4}, {0x3, 6}}, // 0011, 000011
	},
	directionBackward: {
		{{0x2, 3}, {}},       // 010
		{{0x3, 3}, {0x2, 6}}, // 011, 000010
	},
	directionInterpolated: {
		{{0x2, 2}, {}},       // 10
		{{0x3, 2}, {0x2, 5}}, // 11, 00010
	},
}

// Table B-9, indexed by the 4:2:0 coded block pattern. Pattern 0 only
// occurs with 4:2:2 and 4:4:4 chroma.
var videoCodeBlockPattern = [64]vlc{
	{0x1, 9}, // 0: 000000001
	{0xb, 5}, // 1: 01011
	{0x9, 5}, // 2: 01001
	{0xd, 6}, // 3: 001101
	{0xd, 4}, // 4: 1101
	{0x17, 7}, // 5: 0010111
	{0x13, 7}, // 6: 0010011
	{0x1f, 8}, // 7: 00011111
	{0xc, 4}, // 8: 1100
	{0x16, 7}, // 9: 0010110
	{0x12, 7}, // 10: 0010010
	{0x1e, 8}, // 11: 00011110
	{0x13, 5}, // 12: 10011
	{0x1b, 8}, // 13: 00011011
	{0x17, 8}, // 14: 00010111
	{0x13, 8}, // 15: 00010011
	{0xb, 4}, // 16: 1011
	{0x15, 7}, // 17: 0010101
	{0x11, 7}, // 18: 0010001
	{0x1d, 8}, // 19: 00011101
	{0x11, 5}, // 20: 10001
	{0x19, 8}, // 21: 00011001
	{0x15, 8}, // 22: 00010101
	{0x11, 8}, // 23: 00010001
	{0xf, 6}, // 24: 001111
	{0xf, 8}, // 25: 00001111
	{0xd, 8}, // 26: 00001101
	{0x3, 9}, // 27: 000000011
	{0xf, 5}, // 28: 01111
	{0xb, 8}, // 29: 00001011
	{0x7, 8}, // 30: 00000111
	{0x7, 9}, // 31: 000000111
	{0xa, 4}, // 32: 1010
	{0x14, 7}, // 33: 0010100
	{0x10, 7}, // 34: 0010000
	{0x1c, 8}, // 35: 00011100
	{0xe, 6}, // 36: 001110
	{0xe, 8}, // 37: 00001110
	{0xc, 8}, // 38: 00001100
	{0x2, 9}, // 39: 000000010
	{0x10, 5}, // 40: 10000
	{0x18, 8}, // 41: 00011000
	{0x14, 8}, // 42: 00010100
	{0x10, 8}, // 43: 00010000
	{0xe, 5}, // 44: 01110
	{0xa, 8}, // 45: 00001010
	{0x6, 8}, // 46: 00000110
	{0x6, 9}, // 47: 000000110
	{0x12, 5}, // 48: 10010
	{0x1a, 8}, // 49: 00011010
	{0x16, 8}, // 50: 00010110
	{0x12, 8}, // 51: 00010010
	{0xd, 5}, // 52: 01101
	{0x9, 8}, // 53: 00001001
	{0x5, 8}, // 54: 00000101
	{0x5, 9}, // 55: 000000101
	{0xc, 5}, // 56: 01100
	{0x8, 8}, // 57: 00001000
	{0x4, 8}, // 58: 00000100
	{0x4, 9}, // 59: 000000100
	{0x7, 3}, // 60: 111
	{0xa, 5}, // 61: 01010
	{0x8, 5}, // 62: 01000
	{0xc, 6}, // 63: 001100
}

// Table B-10, indexed by motion_code + 16. The sign bit is part of the code.
var videoMotion = [33]vlc{
	{0x19, 11}, // -16: 00000011001
	{0x1b, 11}, // -15: 00000011011
	{0x1d, 11}, // -14: 00000011101
	{0x1f, 11}, // -13: 00000011111
	{0x21, 11}, // -12: 00000100001
	{0x23, 11}, // -11: 00000100011
	{0x13, 10}, // -10: 0000010011
	{0x15, 10}, // -9: 0000010101
	{0x17, 10}, // -8: 0000010111
	{0x7, 8}, // -7: 00000111
	{0x9, 8}, // -6: 00001001
	{0xb, 8}, // -5: 00001011
	{0x7, 7}, // -4: 0000111
	{0x3, 5}, // -3: 00011
	{0x3, 4}, // -2: 0011
	{0x3, 3}, // -1: 011
	{0x1, 1}, // 0: 1
	{0x2, 3}, // 1: 010
	{0x2, 4}, // 2: 0010
	{0x2, 5}, // 3: 00010
	{0x6, 7}, // 4: 0000110
	{0xa, 8}, // 5: 00001010
	{0x8, 8}, // 6: 00001000
	{0x6, 8}, // 7: 00000110
	{0x16, 10}, // 8: 0000010110
	{0x14, 10}, // 9: 0000010100
	{0x12, 10}, // 10: 0000010010
	{0x22, 11}, // 11: 00000100010
	{0x20, 11}, // 12: 00000100000
	{0x1e, 11}, // 13: 00000011110
	{0x1c, 11}, // 14: 00000011100
	{0x1a, 11}, // 15: 00000011010
	{0x18, 11}, // 16: 00000011000
}

// Table B-12.
var videoDctSizeLuminance = [12]vlc{
	{0x4, 3},   // 0: 100
	{0x0, 2},   // 1: 00
	{0x1, 2},   // 2: 01
	{0x5, 3},   // 3: 101
	{0x6, 3},   // 4: 110
	{0xe, 4},   // 5: 1110
	{0x1e, 5},  // 6: 11110
	{0x3e, 6},  // 7: 111110
	{0x7e, 7},  // 8: 1111110
	{0xfe, 8},  // 9: 11111110
	{0x1fe, 9}, // 10: 111111110
	{0x1ff, 9}, // 11: 111111111
}

// Table B-13.
var videoDctSizeChrominance = [12]vlc{
	{0x0, 2},    // 0: 00
	{0x1, 2},    // 1: 01
	{0x2, 2},    // 2: 10
	{0x6, 3},    // 3: 110
	{0xe, 4},    // 4: 1110
	{0x1e, 5},   // 5: 11110
	{0x3e, 6},   // 6: 111110
	{0x7e, 7},   // 7: 1111110
	{0xfe, 8},   // 8: 11111110
	{0x1fe, 9},  // 9: 111111110
	{0x3fe, 10}, // 10: 1111111110
	{0x3ff, 10}, // 11: 1111111111
}

var videoDctSize = [3]*[12]vlc{
	&videoDctSizeLuminance,
	&videoDctSizeChrominance,
	&videoDctSizeChrominance,
}

// dctCoeff is one run/level entry of the coefficient tables. The sign bit
// follows the code in the stream.
type dctCoeff struct {
	Run   int
	Level int
	Code  vlc
}

// Table B-14. Run 0, level 1 is listed in its "11s" form; the first
// coefficient of a non-intra block uses "1s" instead.
var videoDctCoeffZero = []dctCoeff{
	{0, 1, vlc{0x3, 2}}, // 11s
	{0, 2, vlc{0x4, 4}}, // 0100s
	{0, 3, vlc{0x5, 5}}, // 00101s
	{0, 4, vlc{0x6, 7}}, // 0000110s
	{0, 5, vlc{0x26, 8}}, // 00100110s
	{0, 6, vlc{0x21, 8}}, // 00100001s
	{0, 7, vlc{0xa, 10}}, // 0000001010s
	{0, 8, vlc{0x1d, 12}}, // 000000011101s
	{0, 9, vlc{0x18, 12}}, // 000000011000s
	{0, 10, vlc{0x13, 12}}, // 000000010011s
	{0, 11, vlc{0x10, 12}}, // 000000010000s
	{0, 12, vlc{0x1a, 13}}, // 0000000011010s
	{0, 13, vlc{0x19, 13}}, // 0000000011001s
	{0, 14, vlc{0x18, 13}}, // 0000000011000s
	{0, 15, vlc{0x17, 13}}, // 0000000010111s
	{0, 16, vlc{0x1f, 14}}, // 00000000011111s
	{0, 17, vlc{0x1e, 14}}, // 00000000011110s
	{0, 18, vlc{0x1d, 14}}, // 00000000011101s
	{0, 19, vlc{0x1c, 14}}, // 00000000011100s
	{0, 20, vlc{0x1b, 14}}, // 00000000011011s
	{0, 21, vlc{0x1a, 14}}, // 00000000011010s
	{0, 22, vlc{0x19, 14}}, // 00000000011001s
	{0, 23, vlc{0x18, 14}}, // 00000000011000s
	{0, 24, vlc{0x17, 14}}, // 00000000010111s
	{0, 25, vlc{0x16, 14}}, // 00000000010110s
	{0, 26, vlc{0x15, 14}}, // 00000000010101s
	{0, 27, vlc{0x14, 14}}, // 00000000010100s
	{0, 28, vlc{0x13, 14}}, // 00000000010011s
	{0, 29, vlc{0x12, 14}}, // 00000000010010s
	{0, 30, vlc{0x11, 14}}, // 00000000010001s
	{0, 31, vlc{0x10, 14}}, // 00000000010000s
	{0, 32, vlc{0x18, 15}}, // 000000000011000s
	{0, 33, vlc{0x17, 15}}, // 000000000010111s
	{0, 34, vlc{0x16, 15}}, // 000000000010110s
	{0, 35, vlc{0x15, 15}}, // 000000000010101s
	{0, 36, vlc{0x14, 15}}, // 000000000010100s
	{0, 37, vlc{0x13, 15}}, // 000000000010011s
	{0, 38, vlc{0x12, 15}}, // 000000000010010s
	{0, 39, vlc{0x11, 15}}, // 000000000010001s
	{0, 40, vlc{0x10, 15}}, // 000000000010000s
	{1, 1, vlc{0x3, 3}}, // 011s
	{1, 2, vlc{0x6, 6}}, // 000110s
	{1, 3, vlc{0x25, 8}}, // 00100101s
	{1, 4, vlc{0xc, 10}}, // 0000001100s
	{1, 5, vlc{0x1b, 12}}, // 000000011011s
	{1, 6, vlc{0x16, 13}}, // 0000000010110s
	{1, 7, vlc{0x15, 13}}, // 0000000010101s
	{1, 8, vlc{0x1f, 15}}, // 000000000011111s
	{1, 9, vlc{0x1e, 15}}, // 000000000011110s
	{1, 10, vlc{0x1d, 15}}, // 000000000011101s
	{1, 11, vlc{0x1c, 15}}, // 000000000011100s
	{1, 12, vlc{0x1b, 15}}, // 000000000011011s
	{1, 13, vlc{0x1a, 15}}, // 000000000011010s
	{1, 14, vlc{0x19, 15}}, // 000000000011001s
	{1, 15, vlc{0x13, 16}}, // 0000000000010011s
	{1, 16, vlc{0x12, 16}}, // 0000000000010010s
	{1, 17, vlc{0x11, 16}}, // 0000000000010001s
	{1, 18, vlc{0x10, 16}}, // 0000000000010000s
	{2, 1, vlc{0x5, 4}}, // 0101s
	{2, 2, vlc{0x4, 7}}, // 0000100s
	{2, 3, vlc{0xb, 10}}, // 0000001011s
	{2, 4, vlc{0x14, 12}}, // 000000010100s
	{2, 5, vlc{0x14, 13}}, // 0000000010100s
	{3, 1, vlc{0x7, 5}}, // 00111s
	{3, 2, vlc{0x24, 8}}, // 00100100s
	{3, 3, vlc{0x1c, 12}}, // 000000011100s
	{3, 4, vlc{0x13, 13}}, // 0000000010011s
	{4, 1, vlc{0x6, 5}}, // 00110s
	{4, 2, vlc{0xf, 10}}, // 0000001111s
	{4, 3, vlc{0x12, 12}}, // 000000010010s
	{5, 1, vlc{0x7, 6}}, // 000111s
	{5, 2, vlc{0x9, 10}}, // 0000001001s
	{5, 3, vlc{0x12, 13}}, // 0000000010010s
	{6, 1, vlc{0x5, 6}}, // 000101s
	{6, 2, vlc{0x1e, 12}}, // 000000011110s
	{6, 3, vlc{0x14, 16}}, // 0000000000010100s
	{7, 1, vlc{0x4, 6}}, // 000100s
	{7, 2, vlc{0x15, 12}}, // 000000010101s
	{8, 1, vlc{0x7, 7}}, // 0000111s
	{8, 2, vlc{0x11, 12}}, // 000000010001s
	{9, 1, vlc{0x5, 7}}, // 0000101s
	{9, 2, vlc{0x11, 13}}, // 0000000010001s
	{10, 1, vlc{0x27, 8}}, // 00100111s
	{10, 2, vlc{0x10, 13}}, // 0000000010000s
	{11, 1, vlc{0x23, 8}}, // 00100011s
	{11, 2, vlc{0x1a, 16}}, // 0000000000011010s
	{12, 1, vlc{0x22, 8}}, // 00100010s
	{12, 2, vlc{0x19, 16}}, // 0000000000011001s
	{13, 1, vlc{0x20, 8}}, // 00100000s
	{13, 2, vlc{0x18, 16}}, // 0000000000011000s
	{14, 1, vlc{0xe, 10}}, // 0000001110s
	{14, 2, vlc{0x17, 16}}, // 0000000000010111s
	{15, 1, vlc{0xd, 10}}, // 0000001101s
	{15, 2, vlc{0x16, 16}}, // 0000000000010110s
	{16, 1, vlc{0x8, 10}}, // 0000001000s
	{16, 2, vlc{0x15, 16}}, // 0000000000010101s
	{17, 1, vlc{0x1f, 12}}, // 000000011111s
	{18, 1, vlc{0x1a, 12}}, // 000000011010s
	{19, 1, vlc{0x19, 12}}, // 000000011001s
	{20, 1, vlc{0x17, 12}}, // 000000010111s
	{21, 1, vlc{0x16, 12}}, // 000000010110s
	{22, 1, vlc{0x1f, 13}}, // 0000000011111s
	{23, 1, vlc{0x1e, 13}}, // 0000000011110s
	{24, 1, vlc{0x1d, 13}}, // 0000000011101s
	{25, 1, vlc{0x1c, 13}}, // 0000000011100s
	{26, 1, vlc{0x1b, 13}}, // 0000000011011s
	{27, 1, vlc{0x1f, 16}}, // 0000000000011111s
	{28, 1, vlc{0x1e, 16}}, // 0000000000011110s
	{29, 1, vlc{0x1d, 16}}, // 0000000000011101s
	{30, 1, vlc{0x1c, 16}}, // 0000000000011100s
	{31, 1, vlc{0x1b, 16}}, // 0000000000011011s
}

// Table B-15, used for intra blocks when intra_vlc_format is set.
var videoDctCoeffOne = []dctCoeff{
	{0, 1, vlc{0x2, 2}}, // 10s
	{0, 2, vlc{0x6, 3}}, // 110s
	{0, 3, vlc{0x7, 4}}, // 0111s
	{0, 4, vlc{0x1c, 5}}, // 11100s
	{0, 5, vlc{0x1d, 5}}, // 11101s
	{0, 6, vlc{0x5, 6}}, // 000101s
	{0, 7, vlc{0x4, 6}}, // 000100s
	{0, 8, vlc{0x7b, 7}}, // 1111011s
	{0, 9, vlc{0x7c, 7}}, // 1111100s
	{0, 10, vlc{0x23, 8}}, // 00100011s
	{0, 11, vlc{0x22, 8}}, // 00100010s
	{0, 12, vlc{0xfa, 8}}, // 11111010s
	{0, 13, vlc{0xfb, 8}}, // 11111011s
	{0, 14, vlc{0xfe, 8}}, // 11111110s
	{0, 15, vlc{0xff, 8}}, // 11111111s
	{0, 16, vlc{0x1f, 14}}, // 00000000011111s
	{0, 17, vlc{0x1e, 14}}, // 00000000011110s
	{0, 18, vlc{0x1d, 14}}, // 00000000011101s
	{0, 19, vlc{0x1c, 14}}, // 00000000011100s
	{0, 20, vlc{0x1b, 14}}, // 00000000011011s
	{0, 21, vlc{0x1a, 14}}, // 00000000011010s
	{0, 22, vlc{0x19, 14}}, // 00000000011001s
	{0, 23, vlc{0x18, 14}}, // 00000000011000s
	{0, 24, vlc{0x17, 14}}, // 00000000010111s
	{0, 25, vlc{0x16, 14}}, // 00000000010110s
	{0, 26, vlc{0x15, 14}}, // 00000000010101s
	{0, 27, vlc{0x14, 14}}, // 00000000010100s
	{0, 28, vlc{0x13, 14}}, // 00000000010011s
	{0, 29, vlc{0x12, 14}}, // 00000000010010s
	{0, 30, vlc{0x11, 14}}, // 00000000010001s
	{0, 31, vlc{0x10, 14}}, // 00000000010000s
	{0, 32, vlc{0x18, 15}}, // 000000000011000s
	{0, 33, vlc{0x17, 15}}, // 000000000010111s
	{0, 34, vlc{0x16, 15}}, // 000000000010110s
	{0, 35, vlc{0x15, 15}}, // 000000000010101s
	{0, 36, vlc{0x14, 15}}, // 000000000010100s
	{0, 37, vlc{0x13, 15}}, // 000000000010011s
	{0, 38, vlc{0x12, 15}}, // 000000000010010s
	{0, 39, vlc{0x11, 15}}, // 000000000010001s
	{0, 40, vlc{0x10, 15}}, // 000000000010000s
	{1, 1, vlc{0x2, 3}}, // 010s
	{1, 2, vlc{0x6, 5}}, // 00110s
	{1, 3, vlc{0x79, 7}}, // 1111001s
	{1, 4, vlc{0x27, 8}}, // 00100111s
	{1, 5, vlc{0x20, 8}}, // 00100000s
	{1, 6, vlc{0x16, 13}}, // 0000000010110s
	{1, 7, vlc{0x15, 13}}, // 0000000010101s
	{1, 8, vlc{0x1f, 15}}, // 000000000011111s
	{1, 9, vlc{0x1e, 15}}, // 000000000011110s
	{1, 10, vlc{0x1d, 15}}, // 000000000011101s
	{1, 11, vlc{0x1c, 15}}, // 000000000011100s
	{1, 12, vlc{0x1b, 15}}, // 000000000011011s
	{1, 13, vlc{0x1a, 15}}, // 000000000011010s
	{1, 14, vlc{0x19, 15}}, // 000000000011001s
	{1, 15, vlc{0x13, 16}}, // 0000000000010011s
	{1, 16, vlc{0x12, 16}}, // 0000000000010010s
	{1, 17, vlc{0x11, 16}}, // 0000000000010001s
	{1, 18, vlc{0x10, 16}}, // 0000000000010000s
	{2, 1, vlc{0x5, 5}}, // 00101s
	{2, 2, vlc{0x7, 7}}, // 0000111s
	{2, 3, vlc{0xfc, 8}}, // 11111100s
	{2, 4, vlc{0xc, 10}}, // 0000001100s
	{2, 5, vlc{0x14, 13}}, // 0000000010100s
	{3, 1, vlc{0x7, 5}}, // 00111s
	{3, 2, vlc{0x26, 8}}, // 00100110s
	{3, 3, vlc{0x1c, 12}}, // 000000011100s
	{3, 4, vlc{0x13, 13}}, // 0000000010011s
	{4, 1, vlc{0x6, 6}}, // 000110s
	{4, 2, vlc{0xfd, 8}}, // 11111101s
	{4, 3, vlc{0x12, 12}}, // 000000010010s
	{5, 1, vlc{0x7, 6}}, // 000111s
	{5, 2, vlc{0x4, 9}}, // 000000100s
	{5, 3, vlc{0x12, 13}}, // 0000000010010s
	{6, 1, vlc{0x6, 7}}, // 0000110s
	{6, 2, vlc{0x1e, 12}}, // 000000011110s
	{6, 3, vlc{0x14, 16}}, // 0000000000010100s
	{7, 1, vlc{0x4, 7}}, // 0000100s
	{7, 2, vlc{0x15, 12}}, // 000000010101s
	{8, 1, vlc{0x5, 7}}, // 0000101s
	{8, 2, vlc{0x11, 12}}, // 000000010001s
	{9, 1, vlc{0x78, 7}}, // 1111000s
	{9, 2, vlc{0x11, 13}}, // 0000000010001s
	{10, 1, vlc{0x7a, 7}}, // 1111010s
	{10, 2, vlc{0x10, 13}}, // 0000000010000s
	{11, 1, vlc{0x21, 8}}, // 00100001s
	{11, 2, vlc{0x1a, 16}}, // 0000000000011010s
	{12, 1, vlc{0x25, 8}}, // 00100101s
	{12, 2, vlc{0x19, 16}}, // 0000000000011001s
	{13, 1, vlc{0x24, 8}}, // 00100100s
	{13, 2, vlc{0x18, 16}}, // 0000000000011000s
	{14, 1, vlc{0x5, 9}}, // 000000101s
	{14, 2, vlc{0x17, 16}}, // 0000000000010111s
	{15, 1, vlc{0x7, 9}}, // 000000111s
	{15, 2, vlc{0x16, 16}}, // 0000000000010110s
	{16, 1, vlc{0xd, 10}}, // 0000001101s
	{16, 2, vlc{0x15, 16}}, // 0000000000010101s
	{17, 1, vlc{0x1f, 12}}, // 000000011111s
	{18, 1, vlc{0x1a, 12}}, // 000000011010s
	{19, 1, vlc{0x19, 12}}, // 000000011001s
	{20, 1, vlc{0x17, 12}}, // 000000010111s
	{21, 1, vlc{0x16, 12}}, // 000000010110s
	{22, 1, vlc{0x1f, 13}}, // 0000000011111s
	{23, 1, vlc{0x1e, 13}}, // 0000000011110s
	{24, 1, vlc{0x1d, 13}}, // 0000000011101s
	{25, 1, vlc{0x1c, 13}}, // 0000000011100s
	{26, 1, vlc{0x1b, 13}}, // 0000000011011s
	{27, 1, vlc{0x1f, 16}}, // 0000000000011111s
	{28, 1, vlc{0x1e, 16}}, // 0000000000011110s
	{29, 1, vlc{0x1d, 16}}, // 0000000000011101s
	{30, 1, vlc{0x1c, 16}}, // 0000000000011100s
	{31, 1, vlc{0x1b, 16}}, // 0000000000011011s
}

// Largest run with a table entry, indexed by |level|. Both coefficient
// tables cover the same run/level pairs.
var videoDctCoeffMaxRun = [41]int{
	-1,
	31, 16, 6, 3, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var (
	videoDctCoeffEscape  = vlc{0x01, 6} // 0000 01
	videoDctCoeffFirst   = vlc{0x01, 1} // 1
	videoDctCoeffEndZero = vlc{0x02, 2} // 10
	videoDctCoeffEndOne  = vlc{0x06, 4} // 0110
)

var videoZigZag = [64]byte{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

var videoAlternateScan = [64]byte{
	0, 8, 16, 24, 1, 9, 2, 10,
	17, 25, 32, 40, 48, 56, 57, 49,
	41, 33, 26, 18, 3, 11, 4, 12,
	19, 27, 34, 42, 50, 58, 35, 43,
	51, 59, 20, 28, 5, 13, 6, 14,
	21, 29, 36, 44, 52, 60, 37, 45,
	53, 61, 22, 30, 7, 15, 23, 31,
	38, 46, 54, 62, 39, 47, 55, 63,
}
