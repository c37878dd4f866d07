package radix

import (
	"strconv"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		base int
		want string
	}{
		{name: "decimal", v: 137, base: 10, want: "137"},
		{name: "decimal negative", v: -25, base: 10, want: "-25"},
		{name: "binary", v: 12, base: 2, want: "1100"},
		{name: "quaternary", v: 12, base: 4, want: "30"},
		{name: "octal", v: 12, base: 8, want: "14"},
		{name: "hex", v: 12, base: 16, want: "c"},
		{name: "hex multi digit", v: 255, base: 16, want: "ff"},
		{name: "base seven", v: 137, base: 7, want: "254"},
		{name: "base thirteen expands digits", v: 25, base: 13, want: "112"},
		{name: "base twelve expands digits", v: 255, base: 12, want: "193"},
		{name: "base eleven single digit ten", v: 10, base: 11, want: "10"},
		{name: "base fifteen", v: 14, base: 15, want: "14"},
		{name: "base zero coerces to decimal", v: -12, base: 0, want: "-12"},
		{name: "base one coerces to decimal", v: -12, base: 1, want: "-12"},
		{name: "base seventeen coerces to decimal", v: -12, base: 17, want: "-12"},
		{name: "huge base coerces to decimal", v: 1234, base: 1000, want: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.v, tt.base)
			if got != tt.want {
				t.Errorf("Format(%d, %d) = %q, want %q", tt.v, tt.base, got, tt.want)
			}
		})
	}
}

func TestFormatZero(t *testing.T) {
	for _, base := range []int{0, 2, 5, 8, 10, 13, 16, 99} {
		if got := Format(int32(0), base); got != "0" {
			t.Errorf("Format(0, %d) = %q, want %q", base, got, "0")
		}
		if got := Format(uint8(0), base); got != "0" {
			t.Errorf("Format(uint8(0), %d) = %q, want %q", base, got, "0")
		}
	}
}

func TestFormatBitPattern(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "int8 minus one hex", got: Format(int8(-1), 16), want: "ff"},
		{name: "int8 minus one octal", got: Format(int8(-1), 8), want: "377"},
		{name: "int8 minus one binary", got: Format(int8(-1), 2), want: "11111111"},
		{name: "int8 minus five binary", got: Format(int8(-5), 2), want: "11111011"},
		{name: "int8 minus one base four", got: Format(int8(-1), 4), want: "3333"},
		{name: "int8 minus one base thirteen", got: Format(int8(-1), 13), want: "168"},
		{name: "int16 minus one hex", got: Format(int16(-1), 16), want: "ffff"},
		{name: "int64 minus one hex", got: Format(int64(-1), 16), want: strings.Repeat("f", 16)},
		{name: "int32 minus one binary", got: Format(int32(-1), 2), want: strings.Repeat("1", 32)},
		{name: "int8 min hex", got: Format(int8(-128), 16), want: "80"},
		{name: "uint16 hex", got: Format(uint16(0xabcd), 16), want: "abcd"},
		{name: "uint8 max decimal", got: Format(uint8(255), 10), want: "255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAppendFormat(t *testing.T) {
	buf := AppendFormat([]byte("0x"), uint8(255), 16)
	if string(buf) != "0xff" {
		t.Errorf("AppendFormat prefixed = %q, want %q", buf, "0xff")
	}

	buf = AppendFormat(nil, int16(-42), 10)
	if string(buf) != "-42" {
		t.Errorf("AppendFormat(nil) = %q, want %q", buf, "-42")
	}
}

// TestFormatMatchesStrconv cross-checks the paths that strconv can also
// produce. The expansion bases 11 through 15 are deliberately excluded;
// for everything else the renderings must agree digit for digit.
func TestFormatMatchesStrconv(t *testing.T) {
	require := require.New(t)

	f := fuzz.New()
	var v int64
	for i := 0; i < 1000; i++ {
		f.Fuzz(&v)
		require.Equal(strconv.FormatInt(v, 10), Format(v, 10))
		require.Equal(strconv.FormatUint(uint64(v), 16), Format(uint64(v), 16))
		require.Equal(strconv.FormatUint(uint64(v), 8), Format(uint64(v), 8))
		require.Equal(strconv.FormatUint(uint64(v), 2), Format(uint64(v), 2))
		require.Equal(strconv.FormatUint(uint64(v), 7), Format(uint64(v), 7))
		require.Equal(strconv.FormatUint(uint64(v), 9), Format(uint64(v), 9))
	}
}

// TestParseFormatRoundTrip feeds formatted output back through Parse with
// the matching prefix. Decimal round-trips preserve the value for signed
// types; the prefixed bases round-trip the bit pattern, so the checks run
// on unsigned types where pattern and value coincide.
func TestParseFormatRoundTrip(t *testing.T) {
	require := require.New(t)

	f := fuzz.New()

	var sv int32
	for i := 0; i < 1000; i++ {
		f.Fuzz(&sv)
		got, err := Parse[int32](Format(sv, 10))
		require.NoError(err)
		require.Equal(sv, got)
	}

	var uv uint32
	for i := 0; i < 1000; i++ {
		f.Fuzz(&uv)

		got, err := Parse[uint32]("0x" + Format(uv, 16))
		require.NoError(err)
		require.Equal(uv, got)

		got, err = Parse[uint32]("0b" + Format(uv, 2))
		require.NoError(err)
		require.Equal(uv, got)

		got, err = Parse[uint32]("0" + Format(uv, 8))
		require.NoError(err)
		require.Equal(uv, got)
	}
}

// TestBinaryRoundTripSigned exercises the bit-pattern round trip for a
// signed type: formatting in base 2 and parsing with a "0b" prefix must
// restore the original value through two's-complement wraparound.
func TestBinaryRoundTripSigned(t *testing.T) {
	require := require.New(t)

	f := fuzz.New()
	var v int8
	for i := 0; i < 1000; i++ {
		f.Fuzz(&v)
		got, err := Parse[int8]("0b" + Format(v, 2))
		require.NoError(err)
		require.Equal(v, got)
	}
}
