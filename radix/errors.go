package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the input is the empty string.
	ErrEmpty = errors.New("empty input")

	// ErrNoDigits is returned when no digit valid under the detected base
	// could be consumed. The parsed value is zero in that case.
	ErrNoDigits = errors.New("no digits")

	// ErrRange is returned when the digit run does not fit the target
	// type. The parsed value is clamped to the nearest representable
	// bound, mirroring strconv.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed or clamped parse.
//
// The underlying cause (ErrEmpty, ErrNoDigits or ErrRange) can be
// accessed via errors.Unwrap and matched with errors.Is.
type ParseError struct {
	Input string
	Base  int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("radix: parsing %q (base %d): %v", e.Input, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(input string, base int, err error) *ParseError {
	return &ParseError{Input: input, Base: base, Err: err}
}
