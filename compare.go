package integral

import "cmp"

// Cmp compares v and o, returning -1 when v is smaller, 0 when equal and
// +1 when larger.
func (v Value[T]) Cmp(o Value[T]) int {
	return cmp.Compare(v.v, o.v)
}

// Equal reports whether v and o wrap the same value.
func (v Value[T]) Equal(o Value[T]) bool {
	return v.v == o.v
}

// Less reports whether v is smaller than o.
func (v Value[T]) Less(o Value[T]) bool {
	return v.v < o.v
}

// Greater reports whether v is larger than o.
func (v Value[T]) Greater(o Value[T]) bool {
	return v.v > o.v
}

// Min returns the smaller of a and b.
func Min[T Integer](a, b Value[T]) Value[T] {
	return Value[T]{v: min(a.v, b.v)}
}

// Max returns the larger of a and b.
func Max[T Integer](a, b Value[T]) Value[T] {
	return Value[T]{v: max(a.v, b.v)}
}
