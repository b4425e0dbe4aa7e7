// Package schema validates raw snapshot documents against embedded CUE
// schemas. This is the boundary where a wrongly-shaped document is
// rejected; the scoring engine itself assumes its input matches the
// documented shape.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a boundary validation error.
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning
}

// Validator handles CUE validation of snapshot documents.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with no schemas loaded.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every embedded .cue schema file.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		schemaName := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateProfile validates a raw snapshot document against the profile
// schema. A missing schema yields no errors, matching the engine's
// degrade-gracefully posture: schema validation gates input quality, it
// never blocks scoring infrastructure problems onto the user.
func (v *Validator) ValidateProfile(data map[string]any, file string) ([]ValidationError, error) {
	schema, ok := v.schemas["profile"]
	if !ok {
		return nil, nil
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding document: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#Profile"))
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err, file), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err, file), nil
	}

	return nil, nil
}

// extractErrors converts CUE errors into boundary validation errors.
func extractErrors(err error, file string) []ValidationError {
	return []ValidationError{{
		File:     file,
		Message:  fmt.Sprintf("Snapshot schema validation failed: %v", err),
		Severity: "error",
	}}
}
