package radix

import (
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer constrains the fixed-width machine integer types this package
// operates on. Floating-point and arbitrary-precision types are rejected
// at compile time.
type Integer interface {
	constraints.Signed | constraints.Unsigned
}

// signed reports whether T is a signed type.
// ^x is -1 for signed types, all-ones for unsigned ones; only the former
// survives an arithmetic shift unchanged.
func signed[T Integer]() bool {
	var x T
	x = ^x
	return x == x>>1
}

// BitWidth returns the width of T in bits (8, 16, 32 or 64).
func BitWidth[T Integer]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// Limits returns the smallest and largest values representable by T.
func Limits[T Integer]() (lo, hi T) {
	if signed[T]() {
		lo = T(1) << (BitWidth[T]() - 1)
		hi = ^lo
		return lo, hi
	}
	return 0, ^T(0)
}

// toUnsigned returns the two's-complement bit pattern of v, zero-extended
// to 64 bits. This is the value the non-decimal formatting paths render.
func toUnsigned[T Integer](v T) uint64 {
	return uint64(v) & (^uint64(0) >> (64 - BitWidth[T]()))
}

// DetectBase inspects the leading characters of s and selects the numeral
// base the string declares, returning the base together with the substring
// the digit scan should start from.
//
// The prefix rules, in priority order:
//
//   - "0b" or "0B": base 2, digits follow the prefix
//   - "0x" (lowercase x only; "0X" is not a hex prefix): base 16, digits
//     follow the prefix
//   - leading "0": base 8, the zero itself counts as the first digit
//   - otherwise: base 10, digits may carry a leading sign
//
// DetectBase looks at the raw string: a leading sign or space suppresses
// every prefix rule, so "-0x10" and " 017" are both decimal.
func DetectBase(s string) (base int, digits string) {
	switch {
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		return 2, s[2:]
	case strings.HasPrefix(s, "0x"):
		return 16, s[2:]
	case strings.HasPrefix(s, "0"):
		return 8, s
	default:
		return 10, s
	}
}

// digitVal returns the numeric value of c under base, or false when c is
// not a digit of that base. Letters cover bases up to 16 in either case.
func digitVal(c byte, base int) (uint64, bool) {
	var d byte
	switch {
	case '0' <= c && c <= '9':
		d = c - '0'
	case 'a' <= c && c <= 'f':
		d = c - 'a' + 10
	case 'A' <= c && c <= 'F':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	if int(d) >= base {
		return 0, false
	}
	return uint64(d), true
}
