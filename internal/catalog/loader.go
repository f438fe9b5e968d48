package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a feature catalog from the given path.
// Files with a .yaml or .yml extension are read as YAML, anything else as JSON.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	parse := Parse
	if isYAML(path) {
		parse = ParseYAML
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return c, nil
}

// Parse parses JSON catalog data, preserving feature, key and variable
// declaration order.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	if len(bytes.TrimSpace(data)) > 0 {
		err := json.Unmarshal(data, &c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	}

	return orEmpty(&c), nil
}

// ParseYAML parses YAML catalog data with the same ordering guarantees as Parse.
func ParseYAML(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return orEmpty(&c), nil
}

func orEmpty(c *Catalog) *Catalog {
	if c.Features == nil {
		// Empty document.
		c.Features = []*Feature{}
	}

	return c
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
