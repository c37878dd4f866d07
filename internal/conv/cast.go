package conv

import (
	"errors"
	"fmt"

	"github.com/compusuave/integral/radix"
)

// ErrOverflow is the sentinel wrapped by every failed conversion.
var ErrOverflow = errors.New("integer overflow")

// To converts v to Dst, failing when the value does not survive the
// round trip. The sign comparison catches same-pattern conversions
// between signed and unsigned types, where converting back would hide
// the flip (int8(-1) to uint8(255) and the reverse).
func To[Dst, Src radix.Integer](v Src) (Dst, error) {
	d := Dst(v)
	if Src(d) != v || (d < 0) != (v < 0) {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T", ErrOverflow, v, d)
	}
	return d, nil
}
