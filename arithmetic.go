package integral

// Arithmetic delegates to the native machine operation and rewraps the
// result. Overflow wraps around exactly like the underlying type;
// division and modulo by zero panic with the native runtime error.

// Add returns v + o.
func (v Value[T]) Add(o Value[T]) Value[T] {
	return Value[T]{v: v.v + o.v}
}

// Sub returns v - o.
func (v Value[T]) Sub(o Value[T]) Value[T] {
	return Value[T]{v: v.v - o.v}
}

// Mul returns v * o.
func (v Value[T]) Mul(o Value[T]) Value[T] {
	return Value[T]{v: v.v * o.v}
}

// Div returns v / o, truncated toward zero.
func (v Value[T]) Div(o Value[T]) Value[T] {
	return Value[T]{v: v.v / o.v}
}

// Mod returns v % o. The result takes the sign of v, matching the native
// operator.
func (v Value[T]) Mod(o Value[T]) Value[T] {
	return Value[T]{v: v.v % o.v}
}

// Neg returns -v. For unsigned types and for the minimum signed value the
// result wraps.
func (v Value[T]) Neg() Value[T] {
	return Value[T]{v: -v.v}
}

// Inc returns v + 1.
func (v Value[T]) Inc() Value[T] {
	return Value[T]{v: v.v + 1}
}

// Dec returns v - 1.
func (v Value[T]) Dec() Value[T] {
	return Value[T]{v: v.v - 1}
}
