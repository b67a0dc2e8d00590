package engine

import (
	"log/slog"

	"github.com/specialistvlad/rpncalc/internal/locale"
	"github.com/specialistvlad/rpncalc/internal/registry"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry makes the engine resolve symbols through r instead of a
// registry built from CoreModules.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithLogger sets the logger used for evaluation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithNumberFormat sets how operands are read and written in programs.
func WithNumberFormat(f locale.NumberFormat) Option {
	return func(e *Engine) {
		e.numbers = f
	}
}
