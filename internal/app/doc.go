// Package app wires the calculator engine to its host: logging, program files
// and the line-oriented keypad that feeds tokens into the engine. It is
// decoupled from any specific entrypoint like a CLI.
package app
