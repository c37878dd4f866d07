package radix

import (
	"math"
	"strings"
	"unicode"
)

// Parse converts s into a value of type T, selecting the base with
// DetectBase and consuming the longest valid digit run.
//
// The contract is best-effort:
//
//   - Trailing garbage after at least one valid digit is ignored:
//     "7SEVEN" parses to 7 with no error.
//   - Inputs with no usable digit parse to zero and report ErrNoDigits
//     (ErrEmpty for ""), wrapped in a *ParseError.
//   - Digit runs exceeding the range of T parse to the nearest bound of
//     T and report ErrRange, like strconv.
//
// Binary literals are capped at BitWidth(T) digits; the accumulated bit
// pattern converts to T with wraparound, so "0b11111111" is -1 for int8.
// The decimal branch accepts an optional sign after optional leading
// whitespace; for unsigned types a minus wraps the magnitude modulo
// 2^bits, so "-1" is the maximum value. The other branches accept
// neither sign nor whitespace.
func Parse[T Integer](s string) (T, error) {
	if s == "" {
		return 0, parseError(s, 10, ErrEmpty)
	}
	base, digits := DetectBase(s)
	if base == 2 {
		return parseBinary[T](s, digits)
	}
	return parseDigits[T](s, digits, base)
}

// parseBinary consumes at most BitWidth(T) leading binary digits so the
// accumulator stays within the representable bit pattern of T.
func parseBinary[T Integer](input, digits string) (T, error) {
	width := BitWidth[T]()
	var u uint64
	n := 0
	for i := 0; i < len(digits) && n < width; i++ {
		c := digits[i]
		if c != '0' && c != '1' {
			break
		}
		u = u<<1 | uint64(c-'0')
		n++
	}
	if n == 0 {
		return 0, parseError(input, 2, ErrNoDigits)
	}
	return T(u), nil
}

func parseDigits[T Integer](input, digits string, base int) (T, error) {
	neg := false
	if base == 10 {
		// Stream extraction tolerates leading separators; the prefixed
		// branches never see them because prefix detection is exact.
		digits = strings.TrimLeftFunc(digits, unicode.IsSpace)
		if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
			neg = digits[0] == '-'
			digits = digits[1:]
		}
	}

	u, n, sat := accumulate(digits, base)
	if n == 0 {
		return 0, parseError(input, base, ErrNoDigits)
	}
	v, outOfRange := clamp[T](u, sat, neg)
	if outOfRange {
		return v, parseError(input, base, ErrRange)
	}
	return v, nil
}

// accumulate consumes the longest digit run valid under base and folds it
// into a uint64. n is the number of digits consumed; sat reports that the
// run overflowed 64 bits, in which case the value is pinned at MaxUint64
// while the remaining digits are still consumed as part of the numeral.
func accumulate(digits string, base int) (u uint64, n int, sat bool) {
	b := uint64(base)
	cutoff := math.MaxUint64/b + 1
	for i := 0; i < len(digits); i++ {
		d, ok := digitVal(digits[i], base)
		if !ok {
			break
		}
		n++
		if sat {
			continue
		}
		if u >= cutoff {
			u, sat = math.MaxUint64, true
			continue
		}
		next := u*b + d
		if next < u {
			u, sat = math.MaxUint64, true
			continue
		}
		u = next
	}
	return u, n, sat
}

// clamp folds a 64-bit magnitude into T, saturating at the type bounds.
// The second result reports whether saturation happened.
func clamp[T Integer](u uint64, sat, neg bool) (T, bool) {
	lo, hi := Limits[T]()
	if signed[T]() {
		if neg {
			mag := uint64(hi) + 1
			if sat || u > mag {
				return lo, true
			}
			return -T(u), false
		}
		if sat || u > uint64(hi) {
			return hi, true
		}
		return T(u), false
	}

	outOfRange := sat || u > uint64(hi)
	if outOfRange {
		u = uint64(hi)
	}
	v := T(u)
	if neg {
		v = -v
	}
	return v, outOfRange
}
