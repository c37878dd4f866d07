package integral

import "github.com/compusuave/integral/internal/conv"

// Convert re-wraps v as a Value of type U, reporting ErrOverflow when
// the wrapped value is not representable in U. This is the checked
// counterpart of FromNumber, which truncates silently.
func Convert[U, T Integer](v Value[T]) (Value[U], error) {
	u, err := conv.To[U](v.v)
	if err != nil {
		return Value[U]{}, err
	}
	return Value[U]{v: u}, nil
}
