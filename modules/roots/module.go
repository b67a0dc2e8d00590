package roots

import (
	"math"

	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/specialistvlad/rpncalc/internal/registry"
)

// SquareRoot is the keypad symbol for the square root.
const SquareRoot = "√"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the square root. Negative input yields NaN.
func (m *Module) Register(r *registry.Registry) {
	r.Register(op.Unary{Symbol: SquareRoot, Fn: math.Sqrt})
}
