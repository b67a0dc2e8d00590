package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/rpncalc/internal/op"
)

// Module is the interface that all operation modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the operations known to a single engine instance.
type Registry struct {
	ops     map[string]op.Operation
	logger  *slog.Logger
	modules []Module
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithModules registers the given modules, in order, once all options have
// been applied.
func WithModules(modules ...Module) Option {
	return func(r *Registry) {
		r.modules = append(r.modules, modules...)
	}
}

// New creates a Registry. Without WithModules it is empty.
func New(opts ...Option) *Registry {
	r := &Registry{
		ops:    make(map[string]op.Operation),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, m := range r.modules {
		m.Register(r)
	}
	r.modules = nil
	return r
}

// NewWith creates a Registry populated by the given modules, in order.
func NewWith(modules ...Module) *Registry {
	return New(WithModules(modules...))
}

// Register adds an operation keyed by its own symbol. A later registration
// for the same symbol replaces the earlier one.
func (r *Registry) Register(o op.Operation) {
	symbol := o.OpSymbol()
	if symbol == "" {
		panic(fmt.Sprintf("operation %T registered without a symbol", o))
	}
	switch v := o.(type) {
	case op.Unary:
		if v.Fn == nil {
			panic(fmt.Sprintf("unary operation '%s' has no function", symbol))
		}
	case op.Binary:
		if v.Fn == nil {
			panic(fmt.Sprintf("binary operation '%s' has no function", symbol))
		}
	}

	if _, exists := r.ops[symbol]; exists {
		r.logger.Warn("Operation symbol registered twice, keeping the latest.", "symbol", symbol)
	}
	r.logger.Debug("Registering operation.", "symbol", symbol, "kind", fmt.Sprintf("%T", o))
	r.ops[symbol] = o
}

// Lookup returns the operation registered under symbol. The match is exact.
func (r *Registry) Lookup(symbol string) (op.Operation, bool) {
	o, ok := r.ops[symbol]
	return o, ok
}

// Symbols returns all registered symbols in sorted order.
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, len(r.ops))
	for s := range r.ops {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Len reports how many operations are registered.
func (r *Registry) Len() int {
	return len(r.ops)
}
