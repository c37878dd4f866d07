package integral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Value[int32]
		want int32
	}{
		{name: "add", got: New(int32(12)).Add(New(int32(30))), want: 42},
		{name: "sub", got: New(int32(12)).Sub(New(int32(30))), want: -18},
		{name: "mul", got: New(int32(-6)).Mul(New(int32(7))), want: -42},
		{name: "div truncates toward zero", got: New(int32(-7)).Div(New(int32(2))), want: -3},
		{name: "mod takes dividend sign", got: New(int32(-7)).Mod(New(int32(2))), want: -1},
		{name: "neg", got: New(int32(42)).Neg(), want: -42},
		{name: "neg of negative", got: New(int32(-42)).Neg(), want: 42},
		{name: "inc", got: New(int32(41)).Inc(), want: 42},
		{name: "dec", got: New(int32(43)).Dec(), want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Native() != tt.want {
				t.Errorf("got %d, want %d", tt.got.Native(), tt.want)
			}
		})
	}
}

func TestArithmeticWraparound(t *testing.T) {
	t.Run("signed overflow", func(t *testing.T) {
		v := New(int8(math.MaxInt8)).Add(New(int8(1)))
		assert.Equal(t, int8(math.MinInt8), v.Native())
	})

	t.Run("signed underflow", func(t *testing.T) {
		v := New(int8(math.MinInt8)).Dec()
		assert.Equal(t, int8(math.MaxInt8), v.Native())
	})

	t.Run("unsigned wrap", func(t *testing.T) {
		v := U8(255).Inc()
		assert.Equal(t, uint8(0), v.Native())

		v = U8(0).Dec()
		assert.Equal(t, uint8(255), v.Native())
	})

	t.Run("neg of signed minimum", func(t *testing.T) {
		v := New(int8(math.MinInt8)).Neg()
		assert.Equal(t, int8(math.MinInt8), v.Native())
	})

	t.Run("neg of unsigned", func(t *testing.T) {
		v := U8(1).Neg()
		assert.Equal(t, uint8(255), v.Native())
	})

	t.Run("mul overflow", func(t *testing.T) {
		v := New(int8(64)).Mul(New(int8(4)))
		assert.Equal(t, int8(0), v.Native())
	})
}

func TestDivModByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = New(int32(1)).Div(New(int32(0)))
	})
	assert.Panics(t, func() {
		_ = New(int32(1)).Mod(New(int32(0)))
	})
}

func TestArithmeticDoesNotMutate(t *testing.T) {
	a := New(int32(10))
	_ = a.Add(New(int32(5)))
	_ = a.Inc()
	_ = a.Neg()
	assert.Equal(t, int32(10), a.Native())
}
