package integral

import (
	"golang.org/x/exp/constraints"

	"github.com/compusuave/integral/radix"
)

// Integer is the constraint satisfied by every fixed-width machine
// integer type. It mirrors radix.Integer so callers only need this
// package for the common surface.
type Integer = radix.Integer

// Number is the constraint accepted by FromNumber: any integer or
// floating-point type.
type Number interface {
	constraints.Signed | constraints.Unsigned | constraints.Float
}

// Value wraps a single integer of type T. The zero value is the number
// zero. Values are immutable; every operation returns a new Value, so
// they are safe to copy and to share between goroutines.
type Value[T Integer] struct {
	v T
}

// New wraps v.
func New[T Integer](v T) Value[T] {
	return Value[T]{v: v}
}

// FromString parses s with the prefix rules of the radix package and
// absorbs every failure: no usable digit yields zero, out-of-range digit
// runs clamp to the nearest bound of T, trailing garbage is ignored.
// FromString never fails; use Parse to observe what was absorbed.
func FromString[T Integer](s string) Value[T] {
	v, _ := radix.Parse[T](s)
	return Value[T]{v: v}
}

// Parse parses s like FromString but reports absorbed failures. The
// returned Value always carries the FromString result, so callers may
// ignore the error and keep the absorbing behavior. Stopping at trailing
// garbage is not an error.
func Parse[T Integer](s string) (Value[T], error) {
	v, err := radix.Parse[T](s)
	return Value[T]{v: v}, err
}

// FromNumber converts any numeric value to T with the native conversion:
// floats truncate toward zero, wider integers wrap. Use Convert for a
// checked conversion between integer widths.
func FromNumber[T Integer, N Number](n N) Value[T] {
	return Value[T]{v: T(n)}
}

// U8 wraps an unsigned 8-bit value.
func U8(v uint8) Value[uint8] { return Value[uint8]{v: v} }

// U16 wraps an unsigned 16-bit value.
func U16(v uint16) Value[uint16] { return Value[uint16]{v: v} }

// U32 wraps an unsigned 32-bit value.
func U32(v uint32) Value[uint32] { return Value[uint32]{v: v} }

// U64 wraps an unsigned 64-bit value.
func U64(v uint64) Value[uint64] { return Value[uint64]{v: v} }

// Native returns the wrapped integer.
func (v Value[T]) Native() T {
	return v.v
}

// Float64 returns the wrapped integer widened to a float64. Values above
// 2^53 lose precision like any native integer-to-float conversion.
func (v Value[T]) Float64() float64 {
	return float64(v.v)
}

// Odd reports whether the wrapped value is odd. The low-bit test covers
// negative values through their two's-complement pattern.
func (v Value[T]) Odd() bool {
	return v.v&1 == 1
}

// Even reports whether the wrapped value is even.
func (v Value[T]) Even() bool {
	return v.v&1 == 0
}
