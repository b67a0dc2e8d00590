// Package programfile reads and writes calculator program snapshots.
//
// A snapshot file holds one or more named programs, each an ordered list of
// symbols and literals. HCL (.hcl) and YAML (.yaml, .yml) are supported, and
// a directory of such files can be loaded as one collection. Loaded
// entries are passed on exactly as the file expressed them, so a file whose
// entries are not a list of strings still loads; the engine decides whether to
// accept it.
package programfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rpncalc/internal/ctxlog"
	"github.com/specialistvlad/rpncalc/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Program is one named snapshot.
type Program struct {
	Name        string
	Description string
	// Entries is a cty.Value when read from HCL and a plain Go value when
	// read from YAML. For saving it must be a []string, a []any of strings,
	// or a cty value convertible to a list of strings.
	Entries any
}

type format int

const (
	formatHCL format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return formatHCL, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported program file extension %q: use .hcl, .yaml or .yml", filepath.Ext(path))
	}
}

// Load reads all programs in the file at path. When path is a directory,
// every program file below it is read, in lexical order, and program names
// must be unique across the files.
func Load(ctx context.Context, path string) ([]Program, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return loadFile(ctx, path)
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl", ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for program files: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No program files found in directory.", "path", path)
	}

	var programs []Program
	origin := make(map[string]string)
	for _, file := range files {
		loaded, err := loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, p := range loaded {
			if first, dup := origin[p.Name]; dup {
				return nil, fmt.Errorf("duplicate program %q in %s and %s", p.Name, first, file)
			}
			origin[p.Name] = file
			programs = append(programs, p)
		}
	}
	return programs, nil
}

func loadFile(ctx context.Context, path string) ([]Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading program file.", "path", path)

	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	var programs []Program
	switch f {
	case formatHCL:
		programs, err = loadHCL(path)
	case formatYAML:
		programs, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Program file loaded.", "path", path, "programs", len(programs))
	return programs, nil
}

// Save writes programs to path, replacing the file.
func Save(ctx context.Context, path string, programs []Program) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Saving program file.", "path", path, "programs", len(programs))

	f, err := formatOf(path)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(programs))
	for _, p := range programs {
		if p.Name == "" {
			return fmt.Errorf("cannot save %s: program name must not be empty", path)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("cannot save %s: duplicate program %q", path, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	switch f {
	case formatHCL:
		err = saveHCL(path, programs)
	case formatYAML:
		err = saveYAML(path, programs)
	}
	if err != nil {
		return err
	}

	logger.Info("Program file saved.", "path", path)
	return nil
}

// Find returns the program called name. An empty name selects the first
// program in the file.
func Find(programs []Program, name string) (Program, bool) {
	if name == "" {
		if len(programs) == 0 {
			return Program{}, false
		}
		return programs[0], true
	}
	for _, p := range programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// symbolsOf flattens saveable entries into strings.
func symbolsOf(entries any) ([]string, error) {
	switch t := entries.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d is %T, not a string", i, item)
			}
			out[i] = s
		}
		return out, nil
	case cty.Value:
		list, err := convert.Convert(t, cty.List(cty.String))
		if err != nil {
			return nil, fmt.Errorf("entries are not a list of strings: %w", err)
		}
		if list.IsNull() || !list.IsWhollyKnown() {
			return nil, fmt.Errorf("entries must be a known, non-null list")
		}
		var out []string
		if list.LengthInt() == 0 {
			return []string{}, nil
		}
		if err := gocty.FromCtyValue(list, &out); err != nil {
			return nil, fmt.Errorf("entries are not a list of strings: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("entries of type %T cannot be saved", entries)
	}
}
