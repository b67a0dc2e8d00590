package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgramPath string // snapshot loaded before any input
	ProgramName string // empty selects the first program in the file
	SavePath    string // snapshot written after the input ends
	SaveName    string

	Locale    string
	LogFormat string
	LogLevel  string

	// Tokens, when non-empty, are fed instead of reading the input stream.
	Tokens []string
}

// DefaultSaveName names the program written to SavePath when SaveName is empty.
const DefaultSaveName = "main"

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProgramName != "" && cfg.ProgramPath == "" {
		return nil, errors.New("a program name requires a program file")
	}
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.SavePath != "" && cfg.SaveName == "" {
		cfg.SaveName = DefaultSaveName
	}
	return &cfg, nil
}
