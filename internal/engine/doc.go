// Package engine evaluates postfix calculator programs.
//
// An Engine owns an ordered stack of op.Entry values. Each push or operation
// appends to the stack and re-reduces the whole stack from the top:
//
//	2 3 + 4 ×   →   (2+3)×4 = 20
//
// Failure is never an error. Too few operands yields no result, unknown
// symbols are ignored, and arithmetic edge cases such as √-1 or 1÷0 produce
// the usual floating-point NaN and Inf values.
//
// The engine is not safe for concurrent use.
package engine
