// Package radix implements prefix-aware integer parsing and positional
// radix formatting for fixed-width integer types.
//
// The parser and the formatter are inverse transformations over the same
// value domain and share one base-detection convention:
//
//   - "0b"/"0B" prefix: binary
//   - "0x" prefix (lowercase x only): hexadecimal
//   - leading "0": octal
//   - anything else: decimal, optionally signed
//
// # Parsing
//
// Parse is greedy: it consumes the longest run of digits valid under the
// detected base and ignores anything after it, so "7SEVEN" parses to 7.
// Inputs with no usable digits parse to zero together with an error the
// caller may ignore; this keeps the "best effort, default to zero"
// contract of the Value wrapper in the parent package while still giving
// strict callers something to check.
//
// # Formatting
//
// Format supports bases 2 through 16. Base 10 renders through the native
// signed conversion; all other bases render the two's-complement bit
// pattern of the value and therefore never emit a sign. Out-of-range
// bases collapse to base 10.
//
// Bases 11 through 15 have no letter digits: remainders of ten or more
// are written in their decimal expansion, producing multi-character
// "digits" (25 in base 13 formats as "112"). Such output is ambiguous
// and does not round-trip; it is kept for output compatibility.
package radix
