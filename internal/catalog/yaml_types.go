package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements order-preserving decoding for VarTable.
// Accepts a mapping of variable name to integer key.
func (t *VarTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping of name to integer, got %s", kindName(node.Kind))
	}

	table := make(VarTable, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string

		err := node.Content[i].Decode(&name)
		if err != nil {
			return fmt.Errorf("invalid variable name: %w", err)
		}

		if _, dup := table.Get(name); dup {
			return fmt.Errorf("variable %q declared twice", name)
		}

		var key int

		err = node.Content[i+1].Decode(&key)
		if err != nil {
			return fmt.Errorf("variable %q: expected integer key: %w", name, err)
		}

		table = append(table, VarEntry{Name: name, Key: key})
	}

	*t = table

	return nil
}

// UnmarshalYAML implements order-preserving decoding for Catalog.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping of feature name to feature, got %s", kindName(node.Kind))
	}

	features := make([]*Feature, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string

		err := node.Content[i].Decode(&name)
		if err != nil {
			return fmt.Errorf("invalid feature name: %w", err)
		}

		if _, dup := seen[name]; dup {
			return fmt.Errorf("feature %q declared twice", name)
		}

		seen[name] = struct{}{}

		f, err := decodeFeatureYAML(name, node.Content[i+1])
		if err != nil {
			return err
		}

		features = append(features, f)
	}

	c.Features = features

	return nil
}

// decodeFeatureYAML decodes one feature object, keeping its key order and
// any keys it does not know about.
func decodeFeatureYAML(name string, node *yaml.Node) (*Feature, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("feature %q: expected object, got %s", name, kindName(node.Kind))
	}

	f := &Feature{Name: name}
	present := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string

		err := node.Content[i].Decode(&key)
		if err != nil {
			return nil, fmt.Errorf("feature %q: invalid key: %w", name, err)
		}

		if present[key] {
			return nil, fmt.Errorf("feature %q: field %q declared twice", name, key)
		}

		present[key] = true
		f.keys = append(f.keys, key)
		value := node.Content[i+1]

		switch key {
		case KeyAdlogFields:
			err = value.Decode(&f.AdlogFields)
		case KeyIntVar:
			err = value.Decode(&f.IntVar)
		case KeyCommonInfoVar:
			err = value.Decode(&f.CommonInfoVar)
		case KeyBSFields:
			// Regenerated on every run; only the key position is kept.
		default:
			var raw json.RawMessage

			raw, err = nodeJSON(value)
			if err == nil {
				f.setExtra(key, raw)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("feature %q: field %q: %w", name, key, err)
		}
	}

	err := f.checkRequired(present)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// nodeJSON converts a YAML node to JSON, keeping mapping order and the
// literal text of numbers.
func nodeJSON(node *yaml.Node) (json.RawMessage, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return json.RawMessage("null"), nil
		}

		return nodeJSON(node.Content[0])
	case yaml.AliasNode:
		return nodeJSON(node.Alias)
	case yaml.MappingNode:
		var buf bytes.Buffer

		buf.WriteByte('{')

		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string

			err := node.Content[i].Decode(&key)
			if err != nil {
				return nil, err
			}

			value, err := nodeJSON(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			if i > 0 {
				buf.WriteByte(',')
			}

			err = writeMember(&buf, key, value)
			if err != nil {
				return nil, err
			}
		}

		buf.WriteByte('}')

		return buf.Bytes(), nil
	case yaml.SequenceNode:
		var buf bytes.Buffer

		buf.WriteByte('[')

		for i, item := range node.Content {
			value, err := nodeJSON(item)
			if err != nil {
				return nil, err
			}

			if i > 0 {
				buf.WriteByte(',')
			}

			buf.Write(value)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil
	default:
		tag := node.ShortTag()
		if (tag == "!!int" || tag == "!!float") && json.Valid([]byte(node.Value)) {
			return json.RawMessage(node.Value), nil
		}

		var v any

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return encodeCompact(v)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
