package programfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

type hclRoot struct {
	Programs []*hclProgram `hcl:"program,block"`
}

type hclProgram struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Entries     hcl.Expression `hcl:"entries,attr"`
	DefRange    hcl.Range      `hcl:",def_range"`
}

func loadHCL(path string) ([]Program, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root hclRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	programs := make([]Program, 0, len(root.Programs))
	seen := make(map[string]hcl.Range)
	for _, block := range root.Programs {
		if first, dup := seen[block.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate program block",
				Detail:   fmt.Sprintf("A program named %q was already defined at %s.", block.Name, first),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[block.Name] = block.DefRange

		// No evaluation context: entries must be literal values.
		val, valDiags := block.Entries.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		programs = append(programs, Program{
			Name:        block.Name,
			Description: block.Description,
			Entries:     val,
		})
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid program in %s: %w", path, diags)
	}
	return programs, nil
}

func saveHCL(path string, programs []Program) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, p := range programs {
		symbols, err := symbolsOf(p.Entries)
		if err != nil {
			return fmt.Errorf("cannot save program %q: %w", p.Name, err)
		}
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("program", []string{p.Name})
		if p.Description != "" {
			block.Body().SetAttributeValue("description", cty.StringVal(p.Description))
		}
		block.Body().SetAttributeValue("entries", stringList(symbols))
	}

	if err := os.WriteFile(path, hclwrite.Format(f.Bytes()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func stringList(symbols []string) cty.Value {
	if len(symbols) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(symbols))
	for i, s := range symbols {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
