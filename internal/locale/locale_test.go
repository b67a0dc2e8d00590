package locale_test

import (
	"testing"

	"github.com/specialistvlad/rpncalc/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestForTag(t *testing.T) {
	testCases := []struct {
		tag  string
		want locale.NumberFormat
	}{
		{"en", locale.Default},
		{"en-GB", locale.Default},
		{"de", locale.NumberFormat{Decimal: ",", Group: "."}},
		{"de-DE", locale.NumberFormat{Decimal: ",", Group: "."}},
		{"pt-BR", locale.NumberFormat{Decimal: ",", Group: "."}},
		{"not a tag!", locale.Default},
		{"", locale.Default},
	}

	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, locale.ForTag(tc.tag))
		})
	}
}

func TestNumberFormat_Parse(t *testing.T) {
	de := locale.ForTag("de")

	testCases := []struct {
		name   string
		format locale.NumberFormat
		input  string
		want   float64
		wantOK bool
	}{
		{"integer", locale.Default, "42", 42, true},
		{"decimal", locale.Default, "3.25", 3.25, true},
		{"negative", locale.Default, "-0.5", -0.5, true},
		{"exponent", locale.Default, "1e+21", 1e21, true},
		{"grouped", locale.Default, "1,234,567.5", 1234567.5, true},
		{"surrounding space", locale.Default, "  7 ", 7, true},
		{"empty", locale.Default, "", 0, false},
		{"word", locale.Default, "banana", 0, false},
		{"operator", locale.Default, "+", 0, false},
		{"two points", locale.Default, "1.2.3", 0, false},
		{"german decimal", de, "2,5", 2.5, true},
		{"german grouped", de, "1.234,5", 1234.5, true},
		{"german exponent", de, "1,5e3", 1500, true},
		{"leading decimal", locale.Default, ".5", 0.5, true},
		{"grouped negative", locale.Default, "-1,000", -1000, true},
		{"short group", locale.Default, "3,14", 0, false},
		{"empty groups", locale.Default, ",,,5", 0, false},
		{"long leading group", locale.Default, "1234,567", 0, false},
		{"group in fraction", locale.Default, "1.234,5", 0, false},
		{"trailing decimal", locale.Default, "5.", 0, false},
		{"bad exponent", locale.Default, "1e2.5", 0, false},
		{"infinity", locale.Default, "Inf", 0, false},
		{"german point decimal", de, "2.5", 0, false},
		{"german long fraction", de, "3.14159", 0, false},
		{"german two commas", de, "1,2,3", 0, false},
		{"french point decimal", locale.ForTag("fr"), "2.5", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.format.Parse(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNumberFormat_FormatParsesBack(t *testing.T) {
	formats := []locale.NumberFormat{locale.Default, locale.ForTag("de"), locale.ForTag("fr")}
	values := []float64{0, 2.5, -1234.75, 1e21, 0.1}

	for _, f := range formats {
		for _, v := range values {
			got, ok := f.Parse(f.Format(v))
			assert.True(t, ok, "format %+v value %v", f, v)
			assert.Equal(t, v, got, "format %+v value %v", f, v)
		}
	}
	assert.Equal(t, "2,5", locale.ForTag("de").Format(2.5))
}
