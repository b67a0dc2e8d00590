package programfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlRoot struct {
	Programs []yamlProgram `yaml:"programs"`
}

type yamlProgram struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Entries     any    `yaml:"entries"`
}

func loadYAML(path string) ([]Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root yamlRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}

	programs := make([]Program, 0, len(root.Programs))
	seen := make(map[string]struct{}, len(root.Programs))
	for i, p := range root.Programs {
		if p.Name == "" {
			return nil, fmt.Errorf("invalid program in %s: program %d has no name", path, i)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("invalid program in %s: duplicate program %q", path, p.Name)
		}
		seen[p.Name] = struct{}{}
		programs = append(programs, Program{
			Name:        p.Name,
			Description: p.Description,
			Entries:     p.Entries,
		})
	}
	return programs, nil
}

func saveYAML(path string, programs []Program) error {
	root := yamlRoot{Programs: make([]yamlProgram, 0, len(programs))}
	for _, p := range programs {
		symbols, err := symbolsOf(p.Entries)
		if err != nil {
			return fmt.Errorf("cannot save program %q: %w", p.Name, err)
		}
		root.Programs = append(root.Programs, yamlProgram{
			Name:        p.Name,
			Description: p.Description,
			Entries:     symbols,
		})
	}

	data, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
