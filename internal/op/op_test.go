package op_test

import (
	"math"
	"testing"

	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/stretchr/testify/assert"
)

func TestEntry_String(t *testing.T) {
	testCases := []struct {
		entry op.Entry
		want  string
	}{
		{op.Operand(2), "2"},
		{op.Operand(-0.5), "-0.5"},
		{op.Operand(1e21), "1e+21"},
		{op.Operand(math.Inf(-1)), "-Inf"},
		{op.Unary{Symbol: "√", Fn: math.Sqrt}, "√"},
		{op.Binary{Symbol: "÷"}, "÷"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.entry.String())
	}
}

func TestStrings(t *testing.T) {
	entries := []op.Entry{op.Operand(2), op.Operand(3), op.Binary{Symbol: "+"}}
	assert.Equal(t, []string{"2", "3", "+"}, op.Strings(entries))
	assert.Empty(t, op.Strings(nil))
}
