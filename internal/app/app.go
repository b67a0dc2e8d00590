package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/rpncalc/internal/engine"
	"github.com/specialistvlad/rpncalc/internal/locale"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	numbers locale.NumberFormat
	engine  *engine.Engine
}

// NewApp returns an App that prints the display to outW and logs to logW.
// Extra engine options are applied after the ones derived from cfg.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...engine.Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	numbers := locale.ForTag(cfg.Locale)
	logger.Debug("Logger configured successfully.", "locale", cfg.Locale, "decimal", numbers.Decimal)

	engineOpts := append([]engine.Option{
		engine.WithLogger(logger),
		engine.WithNumberFormat(numbers),
	}, opts...)
	eng := engine.New(engineOpts...)
	logger.Debug("Engine created.", "operations", len(eng.Symbols()))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		numbers: numbers,
		engine:  eng,
	}
}

// Engine returns the application's engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
