// Package locale parses and formats calculator operands using the decimal
// and grouping conventions of a language.
package locale

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"golang.org/x/text/language"
)

// NumberFormat describes how a locale writes a decimal number.
type NumberFormat struct {
	Decimal string
	Group   string
}

// Default is the format used when no locale is configured.
var Default = NumberFormat{Decimal: ".", Group: ","}

var (
	commaDecimal = NumberFormat{Decimal: ",", Group: "."}

	// The first entry is what the matcher falls back to.
	supported = []struct {
		tag    language.Tag
		format NumberFormat
	}{
		{language.English, Default},
		{language.German, commaDecimal},
		{language.MustParse("de-CH"), NumberFormat{Decimal: ".", Group: "’"}},
		{language.French, NumberFormat{Decimal: ",", Group: " "}},
		{language.Russian, NumberFormat{Decimal: ",", Group: " "}},
		{language.Spanish, commaDecimal},
		{language.Italian, commaDecimal},
		{language.Portuguese, commaDecimal},
		{language.Dutch, commaDecimal},
		{language.Japanese, Default},
		{language.Chinese, Default},
		{language.Hindi, Default},
	}

	matcher = newMatcher()
)

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}

// ForTag returns the number format for a BCP 47 language tag such as "de" or
// "pt-BR". Tags that cannot be parsed or matched yield Default.
func ForTag(tag string) NumberFormat {
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return Default
	}
	return supported[index].format
}

// Parse reads s as a number written in this format. Group separators are
// accepted only in the integer part, between complete groups of three
// digits. It reports false when s is not a number in this format.
func (f NumberFormat) Parse(s string) (float64, bool) {
	normalized, ok := f.normalize(strings.TrimSpace(s))
	if !ok {
		return 0, false
	}

	v, err := cty.ParseNumberVal(normalized)
	if err != nil {
		return 0, false
	}
	var out float64
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return 0, false
	}
	return out, true
}

// normalize rewrites s into the plain form "-123.45e6", checking every part
// against the format on the way.
func (f NumberFormat) normalize(s string) (string, bool) {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	mantissa, exponent, hasExponent := cutExponent(s)
	if hasExponent {
		digits := strings.TrimLeft(exponent, "+-")
		if len(exponent)-len(digits) > 1 || !isDigits(digits) {
			return "", false
		}
		exponent = "e" + exponent
	}

	integer, fraction, hasFraction := strings.Cut(mantissa, f.decimal())
	if hasFraction && !isDigits(fraction) {
		return "", false
	}
	if integer == "" {
		if !hasFraction {
			return "", false
		}
		integer = "0"
	}
	integer, ok := f.ungroup(integer)
	if !ok {
		return "", false
	}

	out := sign + integer
	if hasFraction {
		out += "." + fraction
	}
	return out + exponent, true
}

// ungroup strips group separators from the integer part of a number.
func (f NumberFormat) ungroup(integer string) (string, bool) {
	if f.Group == "" || !strings.Contains(integer, f.Group) {
		return integer, isDigits(integer)
	}
	groups := strings.Split(integer, f.Group)
	if len(groups[0]) < 1 || len(groups[0]) > 3 || !isDigits(groups[0]) {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !isDigits(g) {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

func (f NumberFormat) decimal() string {
	if f.Decimal == "" {
		return "."
	}
	return f.Decimal
}

func cutExponent(s string) (mantissa, exponent string, found bool) {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Format writes v in this format without grouping, so that Parse reads it
// back unchanged.
func (f NumberFormat) Format(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if f.decimal() != "." {
		s = strings.Replace(s, ".", f.decimal(), 1)
	}
	return s
}
