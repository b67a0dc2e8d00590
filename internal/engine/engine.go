package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/specialistvlad/rpncalc/internal/locale"
	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/specialistvlad/rpncalc/internal/registry"
)

// Engine holds a postfix program and evaluates it.
type Engine struct {
	registry *registry.Registry
	logger   *slog.Logger
	numbers  locale.NumberFormat
	stack    []op.Entry
}

// New creates an Engine with an empty stack.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  slog.Default(),
		numbers: locale.Default,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = registry.New(
			registry.WithLogger(e.logger),
			registry.WithModules(CoreModules...),
		)
	}
	return e
}

// HasOperation reports whether symbol names a known operation.
func (e *Engine) HasOperation(symbol string) bool {
	_, ok := e.registry.Lookup(symbol)
	return ok
}

// Symbols returns the known operation symbols in sorted order.
func (e *Engine) Symbols() []string {
	return e.registry.Symbols()
}

// PushOperand appends v to the stack and evaluates.
func (e *Engine) PushOperand(v float64) (float64, bool) {
	e.stack = append(e.stack, op.Operand(v))
	return e.Evaluate()
}

// PerformOperation appends the operation registered under symbol and
// evaluates. An unknown symbol leaves the stack as it was; the stack is still
// evaluated.
func (e *Engine) PerformOperation(symbol string) (float64, bool) {
	if o, ok := e.registry.Lookup(symbol); ok {
		e.stack = append(e.stack, o)
	} else {
		e.logger.Debug("Unknown operation symbol ignored.", "symbol", symbol)
	}
	return e.Evaluate()
}

// Evaluate reduces the whole stack and returns the result. It reports false
// when the operations at the top of the stack lack operands. Entries left
// below a successful reduction are ignored.
func (e *Engine) Evaluate() (float64, bool) {
	result, ok, remainder := reduce(e.stack)
	if !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return result, ok
	}
	if ok {
		e.logger.Debug("Stack evaluated.", "stack", e.String(), "result", result, "remainder", format(remainder))
	} else {
		e.logger.Debug("Stack evaluated without result.", "stack", e.String(), "remainder", format(remainder))
	}
	return result, ok
}

// Clear empties the stack.
func (e *Engine) Clear() {
	e.stack = nil
	e.logger.Debug("Stack cleared.")
}

// Len reports the number of entries on the stack.
func (e *Engine) Len() int {
	return len(e.stack)
}

// String renders the stack bottom to top, e.g. "[2, 3, +]".
func (e *Engine) String() string {
	return format(e.stack)
}

func format(entries []op.Entry) string {
	return "[" + strings.Join(op.Strings(entries), ", ") + "]"
}

// reduce consumes entries from the end. On success it returns the value of
// the trailing sub-program and what lies below it. On failure it returns the
// entries it was given, untouched.
func reduce(entries []op.Entry) (float64, bool, []op.Entry) {
	if len(entries) == 0 {
		return 0, false, entries
	}
	last := len(entries) - 1
	rest := entries[:last]

	switch e := entries[last].(type) {
	case op.Operand:
		return float64(e), true, rest
	case op.Unary:
		if a, ok, rest2 := reduce(rest); ok {
			return e.Fn(a), true, rest2
		}
	case op.Binary:
		if a, ok, rest2 := reduce(rest); ok {
			if b, ok, rest3 := reduce(rest2); ok {
				return e.Fn(a, b), true, rest3
			}
		}
	}
	return 0, false, entries
}
