// Package integral provides a generic fixed-width integer value type with
// prefix-aware string parsing and multi-radix formatting.
//
// Integral wraps any machine integer type in an immutable Value and gives
// it a uniform surface: construction from strings that declare their own
// base, arithmetic and comparison helpers, radix rendering, and the
// standard marshalling interfaces.
//
// # Quick Start
//
//	v := integral.FromString[int32]("0x64")  // 100
//	v = integral.FromString[int32]("017")    // 15 (octal)
//	v = integral.FromString[int32]("0b1111") // 15 (binary)
//	v = integral.FromString[int32]("7SEVEN") // 7 (trailing garbage ignored)
//	v = integral.FromString[int32]("SEVEN")  // 0 (no digits, absorbed)
//
//	fmt.Println(v.Hex())      // rendering shortcuts
//	fmt.Println(v.ToRadix(4)) // any base from 2 to 16
//
// # Parsing Contract
//
// FromString never fails: inputs without a single usable digit become
// zero, extra characters after a valid digit run are ignored, and values
// beyond the range of the target type clamp to its nearest bound. Parse
// offers the same semantics but reports what was absorbed:
//
//	v, err := integral.Parse[uint8]("300")
//	// v.Native() == 255, errors.Is(err, integral.ErrRange)
//
// The base is chosen by the string itself: "0b"/"0B" select binary, a
// lowercase "0x" selects hex, any other leading "0" selects octal and
// everything else is decimal. Only the decimal form accepts a sign or
// leading whitespace.
//
// # Arithmetic
//
// Values are immutable; operations return new values and delegate to the
// native machine operation, wraparound included:
//
//	a := integral.New(int8(127))
//	b := a.Add(integral.New(int8(1))) // -128, native overflow
//
// # Streams
//
// Value implements fmt.Stringer and fmt.Scanner, so values move through
// fmt.Fprint and fmt.Fscan like plain integers while keeping the
// absorbing parse. Scanner reads whole streams of whitespace-separated
// values, optionally logging or rejecting absorbed failures.
//
// # Key Properties
//
//   - Generic over all fixed-width integer types, signed and unsigned
//   - Zero-defaulting parse surface that never returns an error
//   - Radix formatting from 2 to 16 with documented coercion rules
//   - JSON and text marshalling, prefix forms accepted on input
//   - Pure value semantics, safe for concurrent use
package integral
