package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/rpncalc/internal/app"
	"github.com/specialistvlad/rpncalc/internal/programfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp builds an App from cfg, runs it over input and returns the display
// lines and the log output.
func runApp(t *testing.T, cfg app.Config, input string) ([]string, string, error) {
	t.Helper()

	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	a := app.NewApp(out, logs, config)
	runErr := a.Run(context.Background(), strings.NewReader(input))

	if os.Getenv("RPNCALC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), logs.String(), runErr
}

func TestRun_ReadsInputLines(t *testing.T) {
	// --- Arrange ---
	input := "2 3 +\n4 ×\n"

	// --- Act ---
	lines, _, err := runApp(t, app.Config{}, input)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "5", "4", "20"}, lines)
}

func TestRun_NoResultDisplaysZero(t *testing.T) {
	lines, _, err := runApp(t, app.Config{}, "+\n7 √ ×")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "7", "2.6457513110645907", "0"}, lines)
}

func TestRun_AliasesAndCommands(t *testing.T) {
	lines, logs, err := runApp(t, app.Config{}, "10 2 / 3 - program symbols banana clear 9 sqrt")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10", "2", "5", "3", "2",
		"10 2 ÷ 3 −",
		"+ × ÷ − √",
		`unknown input "banana"`,
		"0", "9", "3",
	}, lines)
	assert.Contains(t, logs, "Unrecognized input ignored.")
}

func TestRun_TokensTakePrecedenceOverInput(t *testing.T) {
	lines, _, err := runApp(t, app.Config{Tokens: []string{"6", "7", "×"}}, "1 1 +")
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "7", "42"}, lines)
}

func TestRun_Locale(t *testing.T) {
	lines, _, err := runApp(t, app.Config{Locale: "de"}, "1.000,5 0,5 +")
	require.NoError(t, err)
	assert.Equal(t, []string{"1000,5", "0,5", "1001"}, lines)
}

func TestRun_LoadAndSaveProgram(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	programPath := filepath.Join(dir, "in.hcl")
	require.NoError(t, os.WriteFile(programPath, []byte(`
program "first" {
  entries = ["1"]
}

program "area" {
  entries = ["2", "3", "+"]
}
`), 0o600))
	savePath := filepath.Join(dir, "out.yaml")

	// --- Act ---
	lines, logs, err := runApp(t, app.Config{
		ProgramPath: programPath,
		ProgramName: "area",
		SavePath:    savePath,
		LogLevel:    "info",
	}, "4 ×")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "20"}, lines)
	assert.Contains(t, logs, "Program loaded.")

	saved, err := programfile.Load(context.Background(), savePath)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, app.DefaultSaveName, saved[0].Name)
	assert.Equal(t, []any{"2", "3", "+", "4", "×"}, saved[0].Entries)
}

func TestRun_ProgramErrors(t *testing.T) {
	dir := t.TempDir()
	programPath := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(programPath, []byte("programs:\n  - name: a\n    entries: [\"1\"]\n"), 0o600))

	t.Run("missing program name", func(t *testing.T) {
		_, _, err := runApp(t, app.Config{ProgramPath: programPath, ProgramName: "b"}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `program "b" not found`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runApp(t, app.Config{ProgramPath: filepath.Join(dir, "nope.hcl")}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load program")
	})

	t.Run("unsupported save path", func(t *testing.T) {
		_, _, err := runApp(t, app.Config{SavePath: filepath.Join(dir, "out.txt")}, "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save program")
	})
}

func TestRun_CancelledContext(t *testing.T) {
	config, err := app.NewConfig(app.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	a := app.NewApp(out, &bytes.Buffer{}, config)
	err = a.Run(ctx, strings.NewReader("1 2 +"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Zero(t, a.Engine().Len())
}

func TestNewConfig(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{SavePath: "out.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, app.DefaultSaveName, cfg.SaveName)

	_, err = app.NewConfig(app.Config{LogFormat: "xml"})
	assert.Error(t, err)
	_, err = app.NewConfig(app.Config{LogLevel: "verbose"})
	assert.Error(t, err)
	_, err = app.NewConfig(app.Config{ProgramName: "a"})
	assert.Error(t, err)
}
