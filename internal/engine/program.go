package engine

import (
	"fmt"

	"github.com/specialistvlad/rpncalc/internal/op"
	"github.com/zclconf/go-cty/cty"
)

// Program returns the stack as strings, bottom to top. Operands are written
// in the engine's number format. The slice is a copy.
func (e *Engine) Program() []string {
	out := make([]string, len(e.stack))
	for i, entry := range e.stack {
		if v, ok := entry.(op.Operand); ok {
			out[i] = e.numbers.Format(float64(v))
			continue
		}
		out[i] = entry.String()
	}
	return out
}

// ProgramValue returns Program as a cty list of strings.
func (e *Engine) ProgramValue() cty.Value {
	program := e.Program()
	if len(program) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(program))
	for i, s := range program {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

// SetProgram replaces the stack with the program in v.
//
// v must be a []string, a []any holding only strings, or a cty list or tuple
// of known strings; any other value is ignored and the stack is kept. Each
// string becomes the operation registered under it, or else an operand if it
// parses as a number, or else nothing.
func (e *Engine) SetProgram(v any) {
	symbols, ok := programSymbols(v)
	if !ok {
		e.logger.Debug("Program ignored, not a sequence of strings.", "type", fmt.Sprintf("%T", v))
		return
	}

	stack := make([]op.Entry, 0, len(symbols))
	for _, s := range symbols {
		if o, ok := e.registry.Lookup(s); ok {
			stack = append(stack, o)
			continue
		}
		if n, ok := e.numbers.Parse(s); ok {
			stack = append(stack, op.Operand(n))
			continue
		}
		e.logger.Debug("Program entry skipped.", "entry", s)
	}
	e.stack = stack
	e.logger.Debug("Program replaced.", "stack", e.String(), "skipped", len(symbols)-len(stack))
}

func programSymbols(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		symbols := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			symbols[i] = s
		}
		return symbols, true
	case cty.Value:
		return ctySymbols(t)
	default:
		return nil, false
	}
}

func ctySymbols(v cty.Value) ([]string, bool) {
	v, _ = v.Unmark()
	if v.IsNull() || !v.IsWhollyKnown() {
		return nil, false
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, false
	}

	symbols := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || !ev.Type().Equals(cty.String) {
			return nil, false
		}
		symbols = append(symbols, ev.AsString())
	}
	return symbols, true
}
