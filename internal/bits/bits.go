// Package bits converts between bit-encoded values and lists of set-bit
// positions. Glyphs stores per-range GASP behavior as a binary digit
// string ("11000000"); UFO stores the positions of the set bits.
package bits

import (
	"fmt"
	"strconv"
)

// ToIntList decodes a bit-encoded value into the ascending positions of
// its set bits. The value is a binary digit string, counted from the
// rightmost digit; a numeric value is stringified first, so a plist
// decoder turning "11" into the number 11 still yields bits 0 and 1,
// not eleven. Anything other than binary digits is an error.
func ToIntList(value any) ([]int64, error) {
	switch v := value.(type) {
	case string:
		return fromDigitString(v)
	case int:
		return fromDigitString(strconv.FormatInt(int64(v), 10))
	case int64:
		return fromDigitString(strconv.FormatInt(v, 10))
	case uint64:
		return fromDigitString(strconv.FormatUint(v, 10))
	case float64:
		return fromDigitString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil, fmt.Errorf("cannot decode bit value of type %T", value)
}

// FromIntList encodes set-bit positions as a minimal binary digit
// string. Leading zeros of the original encoding are not preserved, and
// positions outside [0, 63] are dropped.
func FromIntList(positions []int64) string {
	var n uint64
	for _, pos := range positions {
		if pos >= 0 && pos < 64 {
			n |= 1 << uint(pos)
		}
	}
	return strconv.FormatUint(n, 2)
}

func fromDigitString(s string) ([]int64, error) {
	var positions []int64
	last := len(s) - 1
	for i := last; i >= 0; i-- {
		switch s[i] {
		case '0':
		case '1':
			positions = append(positions, int64(last-i))
		default:
			return nil, fmt.Errorf("not a binary digit string: %q", s)
		}
	}
	return positions, nil
}
