// Package registry maps operator symbols to the operations they stand for.
//
// Operation modules (see the modules/ directory) implement Module and add
// their operations during startup. Once the engine has been handed a
// Registry nothing registers into it again, so lookups during evaluation see
// a fixed table.
package registry
