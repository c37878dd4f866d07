package radix

import "strconv"

// Format renders v as a numeral in the given base.
//
// Base 10 is the native rendering: signed values keep their minus sign.
// Every other base in [2,16] renders the two's-complement bit pattern of
// v, zero-extended to the width of T, so Format(int8(-1), 16) is "ff".
// Bases outside [2,16] coerce to 10; there is no error path.
//
// Bases 11 through 15 render each positional digit as its decimal value,
// so digits past nine occupy two characters: Format(25, 13) is "112",
// not "1c". Use base 16 for letter digits.
func Format[T Integer](v T, base int) string {
	return string(AppendFormat(make([]byte, 0, 20), v, base))
}

// AppendFormat appends the Format rendering of v to dst and returns the
// extended buffer.
func AppendFormat[T Integer](dst []byte, v T, base int) []byte {
	if base < 2 || base == 10 || base > 16 {
		if signed[T]() {
			return strconv.AppendInt(dst, int64(v), 10)
		}
		return strconv.AppendUint(dst, uint64(v), 10)
	}

	u := toUnsigned(v)
	switch base {
	case 16, 8:
		return strconv.AppendUint(dst, u, base)
	}
	if u == 0 {
		return append(dst, '0')
	}

	// Positional digits accumulate least-significant-first; 64 covers the
	// longest case, a 64-bit value in base 2.
	var digits [64]uint64
	n := 0
	b := uint64(base)
	for u > 0 {
		digits[n] = u % b
		u /= b
		n++
	}
	for i := n - 1; i >= 0; i-- {
		dst = strconv.AppendUint(dst, digits[i], 10)
	}
	return dst
}
