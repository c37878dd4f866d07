package integral

import (
	"github.com/compusuave/integral/internal/conv"
	"github.com/compusuave/integral/radix"
)

// The parse sentinels live in the radix package; re-exporting them here
// keeps errors.Is checks in this package's vocabulary for callers that
// never import radix directly.
var (
	// ErrEmpty is reported by Parse for the empty string.
	ErrEmpty = radix.ErrEmpty

	// ErrNoDigits is reported by Parse when the input contains no digit
	// valid under its detected base. The value is zero in that case.
	ErrNoDigits = radix.ErrNoDigits

	// ErrRange is reported by Parse when the digit run exceeds the range
	// of the target type. The value is clamped to the nearest bound.
	ErrRange = radix.ErrRange

	// ErrOverflow is reported by Convert when a value does not fit the
	// destination type.
	ErrOverflow = conv.ErrOverflow
)

// ParseError carries the input and detected base of a failed or clamped
// parse. The sentinel cause is available via errors.Unwrap.
type ParseError = radix.ParseError
