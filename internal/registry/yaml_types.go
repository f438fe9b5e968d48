package registry

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Record.
// Accepts a sequence of scalars of any type (ids may be numbers or
// numeric strings); nested values are kept as empty placeholders so that
// positions stay stable.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: expected array at line %d", ErrMalformedRecord, node.Line)
	}

	rec := make(Record, len(node.Content))

	for i, item := range node.Content {
		if item.Kind == yaml.ScalarNode {
			rec[i] = item.Value
		}
	}

	*r = rec

	return nil
}

// UnmarshalJSON is the JSON counterpart of UnmarshalYAML. Numbers keep their
// literal text and strings their decoded value.
func (r *Record) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage

	err := json.Unmarshal(data, &items)
	if err != nil || items == nil {
		return fmt.Errorf("%w: expected array", ErrMalformedRecord)
	}

	rec := make(Record, len(items))

	for i, item := range items {
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()

		var v any

		err := dec.Decode(&v)
		if err != nil {
			return fmt.Errorf("%w: element %d: %w", ErrMalformedRecord, i, err)
		}

		switch v := v.(type) {
		case string:
			rec[i] = v
		case json.Number:
			rec[i] = v.String()
		}
	}

	*r = rec

	return nil
}
