package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes a snapshot file. The format is chosen by
// extension: .json, .yaml or .yml.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes snapshot bytes with the format implied by ext.
func Parse(data []byte, ext string) (*Profile, error) {
	var profile Profile
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("error parsing JSON snapshot: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("error parsing YAML snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q: expected .json, .yaml or .yml", ext)
	}
	return &profile, nil
}

// LoadRaw reads a snapshot file into a generic document for boundary
// validation. Schema checks run against the raw document so that shape
// problems are reported before the typed decode papers over them.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot %s: %w", path, err)
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error parsing JSON snapshot %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error parsing YAML snapshot %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q: expected .json, .yaml or .yml", filepath.Ext(path))
	}
	return doc, nil
}
