package integral

import "github.com/compusuave/integral/radix"

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() Value[T] {
	lo, _ := radix.Limits[T]()
	return Value[T]{v: lo}
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() Value[T] {
	_, hi := radix.Limits[T]()
	return Value[T]{v: hi}
}
