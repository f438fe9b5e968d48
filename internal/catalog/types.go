package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned when a feature lacks a required field.
var ErrMissingField = errors.New("missing required field")

// Field names of a feature object.
const (
	KeyAdlogFields   = "adlog_fields"
	KeyIntVar        = "int_var"
	KeyCommonInfoVar = "common_info_var"
	KeyBSFields      = "bs_fields"
)

// Catalog is the ordered set of features read from a catalog file.
type Catalog struct {
	// Features in declaration order.
	Features []*Feature
}

// Feature is a named group of raw field expressions sharing lookup tables.
type Feature struct {
	// Name is the key the feature is declared under.
	Name string
	// AdlogFields are the raw expressions, possibly with duplicates.
	AdlogFields []string
	// IntVar maps a variable name to the integer key used by find(name)->second lookups.
	IntVar VarTable
	// CommonInfoVar maps a variable name to the integer key used by common info lookups.
	CommonInfoVar VarTable
	// BSFields holds the accepted canonical paths. Nil until the pipeline ran.
	BSFields []string

	// keys is the key order of the source object.
	keys []string
	// extra holds the raw JSON of keys the generator does not interpret.
	// Values keep their source literals and key order.
	extra map[string]json.RawMessage
}

func (f *Feature) setExtra(key string, raw json.RawMessage) {
	if f.extra == nil {
		f.extra = make(map[string]json.RawMessage)
	}

	f.extra[key] = raw
}

// checkRequired reports the first required field missing from present.
func (f *Feature) checkRequired(present map[string]bool) error {
	for _, required := range []string{KeyAdlogFields, KeyIntVar, KeyCommonInfoVar} {
		if !present[required] {
			return fmt.Errorf("feature %q: field %q: %w", f.Name, required, ErrMissingField)
		}
	}

	return nil
}

// VarEntry is one declared variable of a VarTable.
type VarEntry struct {
	Name string
	Key  int
}

// VarTable is an ordered association list from variable name to key.
// Declaration order decides which variable wins when several match.
type VarTable []VarEntry

// Get returns the key declared for name.
func (t VarTable) Get(name string) (int, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Key, true
		}
	}

	return 0, false
}
