package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/rpncalc/internal/ctxlog"
	"github.com/specialistvlad/rpncalc/internal/programfile"
)

// Run loads the configured program, feeds tokens from the config or from in,
// then saves the resulting program if asked to.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ProgramPath != "" {
		if err := a.loadProgram(ctx); err != nil {
			return err
		}
	}

	if len(a.config.Tokens) > 0 {
		for _, token := range a.config.Tokens {
			a.handle(token)
		}
	} else if err := a.readInput(ctx, in); err != nil {
		return err
	}

	if a.config.SavePath != "" {
		err := programfile.Save(ctx, a.config.SavePath, []programfile.Program{{
			Name:    a.config.SaveName,
			Entries: a.engine.Program(),
		}})
		if err != nil {
			return fmt.Errorf("failed to save program: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) loadProgram(ctx context.Context) error {
	programs, err := programfile.Load(ctx, a.config.ProgramPath)
	if err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	program, ok := programfile.Find(programs, a.config.ProgramName)
	if !ok {
		return fmt.Errorf("program %q not found in %s", a.config.ProgramName, a.config.ProgramPath)
	}

	a.engine.SetProgram(program.Entries)
	a.logger.Info("Program loaded.", "name", program.Name, "entries", a.engine.Len())
	a.display(a.engine.Evaluate())
	return nil
}

func (a *App) readInput(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, token := range strings.Fields(scanner.Text()) {
			a.handle(token)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
