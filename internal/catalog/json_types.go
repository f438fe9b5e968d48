package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON implements order-preserving decoding for VarTable.
// Accepts an object of variable name to integer key.
func (t *VarTable) UnmarshalJSON(data []byte) error {
	if kind := jsonKind(data); kind != "object" {
		return fmt.Errorf("expected mapping of name to integer, got %s", kind)
	}

	table := VarTable{}

	err := walkObject(data, func(name string, value json.RawMessage) error {
		if _, dup := table.Get(name); dup {
			return fmt.Errorf("variable %q declared twice", name)
		}

		var key int

		err := json.Unmarshal(value, &key)
		if err != nil {
			return fmt.Errorf("variable %q: expected integer key: %w", name, err)
		}

		table = append(table, VarEntry{Name: name, Key: key})

		return nil
	})
	if err != nil {
		return err
	}

	*t = table

	return nil
}

// UnmarshalJSON implements order-preserving decoding for Catalog.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	if kind := jsonKind(data); kind != "object" {
		return fmt.Errorf("expected mapping of feature name to feature, got %s", kind)
	}

	features := []*Feature{}
	seen := make(map[string]struct{})

	err := walkObject(data, func(name string, value json.RawMessage) error {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("feature %q declared twice", name)
		}

		seen[name] = struct{}{}

		f, err := decodeFeatureJSON(name, value)
		if err != nil {
			return err
		}

		features = append(features, f)

		return nil
	})
	if err != nil {
		return err
	}

	c.Features = features

	return nil
}

// decodeFeatureJSON decodes one feature object, keeping its key order and
// the raw value of any key it does not know about.
func decodeFeatureJSON(name string, data json.RawMessage) (*Feature, error) {
	if kind := jsonKind(data); kind != "object" {
		return nil, fmt.Errorf("feature %q: expected object, got %s", name, kind)
	}

	f := &Feature{Name: name}
	present := make(map[string]bool)

	err := walkObject(data, func(key string, value json.RawMessage) error {
		if present[key] {
			return fmt.Errorf("feature %q: field %q declared twice", name, key)
		}

		present[key] = true
		f.keys = append(f.keys, key)

		var err error

		switch key {
		case KeyAdlogFields:
			err = json.Unmarshal(value, &f.AdlogFields)
		case KeyIntVar:
			err = json.Unmarshal(value, &f.IntVar)
		case KeyCommonInfoVar:
			err = json.Unmarshal(value, &f.CommonInfoVar)
		case KeyBSFields:
			// Regenerated on every run; only the key position is kept.
		default:
			f.setExtra(key, value)
		}

		if err != nil {
			return fmt.Errorf("feature %q: field %q: %w", name, key, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = f.checkRequired(present)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// walkObject calls fn for each member of a JSON object in source order.
// The values handed to fn are copies and may be retained.
func walkObject(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	_, err := dec.Token()
	if err != nil {
		return err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage

		err = dec.Decode(&value)
		if err != nil {
			return err
		}

		err = fn(key, value)
		if err != nil {
			return err
		}
	}

	_, err = dec.Token()

	return err
}

// jsonKind names the kind of the JSON value in data, in the same terms
// kindName uses for YAML nodes.
func jsonKind(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "nothing"
	}

	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 'n':
		return "null"
	default:
		return "scalar"
	}
}
