package integral

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/compusuave/integral/radix"
)

// MarshalJSON renders the value as a bare JSON number in decimal.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	return []byte(radix.Format(v.v, 10)), nil
}

// UnmarshalJSON accepts a JSON number or a JSON string. Numbers must be
// plain decimal integers in range of T; strings go through the fallible
// prefix-aware parse, so "0x64" and "017" work. Unlike FromString this
// surface reports failures: marshalling is not part of the absorbing
// contract.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := Parse[T](s)
		if err != nil {
			return fmt.Errorf("integral: unmarshal %q: %w", s, err)
		}
		*v = parsed
		return nil
	}
	return v.setNumber(string(data))
}

// setNumber parses a JSON number token with strconv strictness; floats
// and out-of-range values are errors rather than truncations.
func (v *Value[T]) setNumber(s string) error {
	lo, _ := radix.Limits[T]()
	bits := radix.BitWidth[T]()
	if lo != 0 {
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return fmt.Errorf("integral: unmarshal %q: %w", s, err)
		}
		v.v = T(n)
		return nil
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return fmt.Errorf("integral: unmarshal %q: %w", s, err)
	}
	v.v = T(n)
	return nil
}

// MarshalText renders the value in decimal.
func (v Value[T]) MarshalText() ([]byte, error) {
	return []byte(radix.Format(v.v, 10)), nil
}

// UnmarshalText parses text with the fallible prefix-aware parse; errors
// propagate instead of being absorbed.
func (v *Value[T]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
