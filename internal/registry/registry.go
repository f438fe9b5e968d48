package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bsfield-generator/internal/common"
)

// ErrMalformedRecord is returned when a registry record carries no usable id.
var ErrMalformedRecord = errors.New("malformed registry record")

// Registry maps canonical paths to externally assigned ids.
type Registry struct {
	records map[string]Record
}

// Record is one positional registry entry. Element 1 holds the id.
type Record []string

// ID returns the integer id stored at position 1 of the record.
// A float literal is accepted when it holds a whole number, e.g. 42.0.
func (r Record) ID() (int64, error) {
	raw, ok := common.Second(r)
	if !ok {
		return 0, fmt.Errorf("%w: expected at least 2 elements, got %d", ErrMalformedRecord, len(r))
	}

	s := strings.TrimSpace(raw)

	id, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: element 1 %q is not an integer", ErrMalformedRecord, raw)
	}

	return int64(f), nil
}

// file is the on-disk shape of the registry.
type file struct {
	Mapping *map[string]Record `json:"mapping" yaml:"mapping"`
}

// LoadFile loads and validates a registry file.
// Files with a .yaml or .yml extension are read as YAML, anything else as JSON.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	parse := Parse

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}

	r, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}

	return r, nil
}

// Parse parses JSON registry data. Every record must carry an integer id, so
// that lookups during assignment cannot fail.
func Parse(data []byte) (*Registry, error) {
	var f file

	err := json.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	return validate(f)
}

// ParseYAML parses YAML registry data with the same validation as Parse.
func ParseYAML(data []byte) (*Registry, error) {
	var f file

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	return validate(f)
}

func validate(f file) (*Registry, error) {
	if f.Mapping == nil {
		return nil, errors.New(`field "mapping": missing required field`)
	}

	for path, rec := range *f.Mapping {
		_, err := rec.ID()
		if err != nil {
			return nil, fmt.Errorf("field \"mapping\": path %q: %w", path, err)
		}
	}

	return &Registry{records: *f.Mapping}, nil
}

// New builds a registry from path to id pairs.
func New(ids map[string]int64) *Registry {
	records := make(map[string]Record, len(ids))
	for path, id := range ids {
		records[path] = Record{path, strconv.FormatInt(id, 10)}
	}

	return &Registry{records: records}
}

// Lookup returns the id registered for path.
func (r *Registry) Lookup(path string) (int64, bool) {
	rec, ok := r.records[path]
	if !ok {
		return 0, false
	}

	id, err := rec.ID()
	if err != nil {
		return 0, false
	}

	return id, true
}

// Len returns the number of registered paths.
func (r *Registry) Len() int {
	return len(r.records)
}
