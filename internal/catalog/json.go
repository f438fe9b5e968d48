package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// MarshalJSON encodes the catalog as an object keyed by feature name,
// in declaration order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range c.Features {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := writeMember(&buf, f.Name, f)
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON encodes the feature with its source key order. bs_fields is
// appended last unless the source already declared it.
func (f *Feature) MarshalJSON() ([]byte, error) {
	keys := f.keys
	if f.BSFields != nil && !slices.Contains(keys, KeyBSFields) {
		keys = append(slices.Clone(keys), KeyBSFields)
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		var value any

		switch key {
		case KeyAdlogFields:
			value = nonNil(f.AdlogFields)
		case KeyIntVar:
			value = f.IntVar
		case KeyCommonInfoVar:
			value = f.CommonInfoVar
		case KeyBSFields:
			value = nonNil(f.BSFields)
		default:
			value = f.extra[key]
		}

		err := writeMember(&buf, key, value)
		if err != nil {
			return nil, fmt.Errorf("feature %q: field %q: %w", f.Name, key, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON encodes the table as an object in declaration order.
func (t VarTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := writeMember(&buf, e.Name, e.Key)
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Encode renders v as indented JSON without HTML escaping, so expressions
// like find(x)->second stay readable.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := encodeCompact(key)
	if err != nil {
		return err
	}

	v, err := encodeCompact(value)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)

	return nil
}

func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
