package arithmetic_test

import (
	"testing"

	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/specialistvlad/rpncalc/internal/registry"
	"github.com/specialistvlad/rpncalc/modules/arithmetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Register(t *testing.T) {
	r := registry.NewWith(&arithmetic.Module{})
	require.ElementsMatch(t, []string{"×", "÷", "+", "−"}, r.Symbols())

	// a is the value entered last, b the one entered before it.
	testCases := []struct {
		symbol string
		a, b   float64
		want   float64
	}{
		{arithmetic.Multiply, 5, 3, 15},
		{arithmetic.Divide, 2, 10, 5},
		{arithmetic.Add, 5, 3, 8},
		{arithmetic.Subtract, 5, 3, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.symbol, func(t *testing.T) {
			o, ok := r.Lookup(tc.symbol)
			require.True(t, ok)
			binary, ok := o.(op.Binary)
			require.True(t, ok, "expected a binary operation, got %T", o)
			assert.Equal(t, tc.want, binary.Fn(tc.a, tc.b))
		})
	}
}

func TestModule_ASCIIMinusIsNotRegistered(t *testing.T) {
	r := registry.NewWith(&arithmetic.Module{})
	_, ok := r.Lookup("-")
	assert.False(t, ok)
}
