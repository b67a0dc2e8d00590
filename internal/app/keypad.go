package app

import (
	"fmt"
	"strings"
)

// aliases lets the operator keys be typed on a plain keyboard.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
}

// handle feeds one token into the engine and prints the display.
func (a *App) handle(token string) {
	if a.engine.HasOperation(token) {
		a.display(a.engine.PerformOperation(token))
		return
	}
	if symbol, ok := aliases[token]; ok {
		if a.engine.HasOperation(symbol) {
			a.display(a.engine.PerformOperation(symbol))
			return
		}
	}

	switch token {
	case "clear":
		a.engine.Clear()
		a.display(a.engine.Evaluate())
		return
	case "program":
		fmt.Fprintln(a.outW, strings.Join(a.engine.Program(), " "))
		return
	case "symbols":
		fmt.Fprintln(a.outW, strings.Join(a.engine.Symbols(), " "))
		return
	}

	if v, ok := a.numbers.Parse(token); ok {
		a.display(a.engine.PushOperand(v))
		return
	}

	a.logger.Warn("Unrecognized input ignored.", "token", token)
	fmt.Fprintf(a.outW, "unknown input %q\n", token)
}

// display prints the result, or 0 when there is none.
func (a *App) display(result float64, ok bool) {
	if !ok {
		result = 0
	}
	fmt.Fprintln(a.outW, a.numbers.Format(result))
}
