package arithmetic

import (
	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/specialistvlad/rpncalc/internal/registry"
)

// Symbols used on the keypad. Minus is U+2212, not the ASCII hyphen.
const (
	Multiply = "×"
	Divide   = "÷"
	Add      = "+"
	Subtract = "−"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Both a and b come off the stack with a on top, so the non-commutative
// operations put b on the left.

func multiply(a, b float64) float64 { return a * b }
func divide(a, b float64) float64   { return b / a }
func add(a, b float64) float64      { return a + b }
func subtract(a, b float64) float64 { return b - a }

// Register registers the four basic operations.
func (m *Module) Register(r *registry.Registry) {
	r.Register(op.Binary{Symbol: Multiply, Fn: multiply})
	r.Register(op.Binary{Symbol: Divide, Fn: divide})
	r.Register(op.Binary{Symbol: Add, Fn: add})
	r.Register(op.Binary{Symbol: Subtract, Fn: subtract})
}
