package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/rpncalc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rpncalc - A postfix (RPN) calculator.

Usage:
  rpncalc [options] [TOKENS...]

Arguments:
  TOKENS
    Numbers and operators, e.g. "2 3 + 4 ×". When omitted, tokens are read
    line by line from standard input. Operators: × ÷ + − √ (or * / - sqrt).
    The words "program", "symbols" and "clear" inspect or reset the stack.

Options:
`)
		flagSet.PrintDefaults()
	}

	programFlag := flagSet.String("program", "", "Program file (.hcl, .yaml, .yml) or directory of them to load before reading input.")
	nameFlag := flagSet.String("name", "", "Name of the program to load. Defaults to the first one in the file.")
	saveFlag := flagSet.String("save", "", "Program file to write the final stack to.")
	saveNameFlag := flagSet.String("save-name", app.DefaultSaveName, "Name of the saved program.")
	localeFlag := flagSet.String("locale", "en", "Language tag selecting the number format, e.g. 'de' or 'pt-BR'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "tokens", flagSet.NArg())

	config, err := app.NewConfig(app.Config{
		ProgramPath: *programFlag,
		ProgramName: *nameFlag,
		SavePath:    *saveFlag,
		SaveName:    *saveNameFlag,
		Locale:      *localeFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		Tokens:      flagSet.Args(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
