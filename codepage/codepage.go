/*
Package codepage maps Windows codepage numbers onto OS/2
ulCodePageRange bit positions, per the OpenType OS/2 table
specification. Glyphs stores codepage support as codepage numbers;
UFO's openTypeOS2CodePageRanges stores the bit positions.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package codepage

// Ranges maps a codepage number to its ulCodePageRange bit.
var Ranges = map[int64]int64{
	1252:  0, // Latin 1
	1250:  1, // Latin 2: Eastern Europe
	1251:  2, // Cyrillic
	1253:  3, // Greek
	1254:  4, // Turkish
	1255:  5, // Hebrew
	1256:  6, // Arabic
	1257:  7, // Windows Baltic
	1258:  8, // Vietnamese
	874:   16, // Thai
	932:   17, // JIS/Japan
	936:   18, // Chinese: Simplified
	949:   19, // Korean Wansung
	950:   20, // Chinese: Traditional
	1361:  21, // Korean Johab
	10000: 29, // Macintosh Character Set (US Roman)
	869:   48, // IBM Greek
	866:   49, // MS-DOS Russian
	865:   50, // MS-DOS Nordic
	864:   51, // Arabic
	863:   52, // MS-DOS Canadian French
	862:   53, // Hebrew
	861:   54, // MS-DOS Icelandic
	860:   55, // MS-DOS Portuguese
	857:   56, // IBM Turkish
	855:   57, // IBM Cyrillic, primarily Russian
	852:   58, // Latin 2
	775:   59, // MS-DOS Baltic
	737:   60, // Greek, former 437 G
	708:   61, // Arabic, ASMO 708
	850:   62, // WE/Latin 1
	437:   63, // US
}

// ReverseRanges maps a ulCodePageRange bit back to its codepage number.
var ReverseRanges = make(map[int64]int64, len(Ranges))

func init() {
	for cp, bit := range Ranges {
		ReverseRanges[bit] = cp
	}
}

// Bit returns the ulCodePageRange bit for a codepage number.
func Bit(cp int64) (int64, bool) {
	bit, ok := Ranges[cp]
	return bit, ok
}

// Codepage returns the codepage number for a ulCodePageRange bit. Bits
// without a codepage equivalent (OEM, symbol, reserved) report false.
func Codepage(bit int64) (int64, bool) {
	cp, ok := ReverseRanges[bit]
	return cp, ok
}
