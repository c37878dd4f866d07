package integral

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "137", New(int32(137)).String())
	assert.Equal(t, "-25", New(int32(-25)).String())
	assert.Equal(t, "0", New(int32(0)).String())
	assert.Equal(t, "255", U8(255).String())
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "137", fmt.Sprint(New(int32(137))))
	assert.Equal(t, "value: -25", fmt.Sprintf("value: %v", New(int8(-25))))
}

func TestRadixShortcuts(t *testing.T) {
	v := New(int64(12))

	assert.Equal(t, "1100", v.Bin())
	assert.Equal(t, "14", v.Oct())
	assert.Equal(t, "12", v.Dec())
	assert.Equal(t, "c", v.Hex())
}

func TestToRadix(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		base int
		want string
	}{
		{name: "base four", v: 12, base: 4, want: "30"},
		{name: "base thirteen", v: 25, base: 13, want: "112"},
		{name: "decimal negative", v: -25, base: 10, want: "-25"},
		{name: "coerced low", v: -12, base: 1, want: "-12"},
		{name: "coerced high", v: -12, base: 17, want: "-12"},
		{name: "zero", v: 0, base: 7, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.v).ToRadix(tt.base); got != tt.want {
				t.Errorf("ToRadix(%d) of %d = %q, want %q", tt.base, tt.v, got, tt.want)
			}
		})
	}
}

func TestToRadixBitPattern(t *testing.T) {
	assert.Equal(t, "ff", New(int8(-1)).Hex())
	assert.Equal(t, "11111011", New(int8(-5)).Bin())
	assert.Equal(t, "377", New(int8(-1)).Oct())
	assert.Equal(t, "-1", New(int8(-1)).Dec())
}
