// Package op defines the entries that make up a postfix calculator program.
//
// An Entry is one of exactly three kinds: an Operand literal, a Unary operation
// or a Binary operation. The set is closed; the unexported marker method keeps
// other packages from adding kinds, so a type switch over the three types
// covers every entry.
package op

import "strconv"

// Entry is a single element of the evaluation stack.
type Entry interface {
	// String returns the program form of the entry: the literal for an
	// operand, the symbol for an operation.
	String() string
	isEntry()
}

// Operation is an Entry that can be registered under a symbol.
type Operation interface {
	Entry
	OpSymbol() string
}

// Operand is a numeric literal pushed by the caller.
type Operand float64

func (Operand) isEntry() {}

// String formats the operand as the shortest decimal that parses back to the
// same value.
func (o Operand) String() string {
	return strconv.FormatFloat(float64(o), 'g', -1, 64)
}

// Unary is a named single-argument function.
type Unary struct {
	Symbol string
	Fn     func(a float64) float64
}

func (Unary) isEntry() {}

func (u Unary) String() string   { return u.Symbol }
func (u Unary) OpSymbol() string { return u.Symbol }

// Binary is a named two-argument function. Fn receives the first value
// reduced off the stack as a and the second as b, so a was entered later.
type Binary struct {
	Symbol string
	Fn     func(a, b float64) float64
}

func (Binary) isEntry() {}

func (b Binary) String() string   { return b.Symbol }
func (b Binary) OpSymbol() string { return b.Symbol }

// Strings projects entries onto their program form.
func Strings(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}
