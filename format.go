package integral

import "github.com/compusuave/integral/radix"

// String renders the wrapped value in decimal and makes Value a
// fmt.Stringer, so values print like plain integers.
func (v Value[T]) String() string {
	return radix.Format(v.v, 10)
}

// ToRadix renders the wrapped value in the given base. Bases outside
// [2,16] coerce to decimal. Decimal keeps the native sign; every other
// base renders the two's-complement bit pattern of the value, and the
// bases 11 through 15 expand digits past nine to their decimal form (see
// radix.Format).
func (v Value[T]) ToRadix(base int) string {
	return radix.Format(v.v, base)
}

// Hex renders the wrapped value in lowercase base 16.
func (v Value[T]) Hex() string {
	return radix.Format(v.v, 16)
}

// Dec renders the wrapped value in base 10.
func (v Value[T]) Dec() string {
	return radix.Format(v.v, 10)
}

// Oct renders the wrapped value in base 8.
func (v Value[T]) Oct() string {
	return radix.Format(v.v, 8)
}

// Bin renders the wrapped value in base 2.
func (v Value[T]) Bin() string {
	return radix.Format(v.v, 2)
}
