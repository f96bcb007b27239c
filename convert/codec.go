package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/format"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/parse"
)

// ToJSON returns the data of b as indented JSON.
func ToJSON(b *ir.Branch) ([]byte, error) {
	d, err := json.MarshalIndent(ToAny(b), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}

// FromJSON builds a branch from a JSON object, keeping key order.
func FromJSON(d []byte) (*ir.Branch, error) {
	// JSON is read by the YAML decoder, which keeps key order.
	return FromYAML(d)
}

func ToYAML(b *ir.Branch) ([]byte, error) {
	return yaml.Marshal(mapSlice(ToAny(b)))
}

// FromYAML builds a branch from a YAML mapping, keeping key order.
func FromYAML(d []byte) (*ir.Branch, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

func ToTOML(b *ir.Branch) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := toml.NewEncoder(buf)
	if err := enc.Encode(plain(ToAny(b))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromTOML builds a branch from a TOML document. Keys are visited in sorted
// order.
func FromTOML(d []byte) (*ir.Branch, error) {
	m := map[string]any{}
	if err := toml.Unmarshal(d, &m); err != nil {
		return nil, err
	}
	return FromAny(m)
}

// Encode writes b to w in format f.
func Encode(b *ir.Branch, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.VersaFormat:
		return encode.Encode(b, w, opts...)
	case format.JSONFormat:
		d, err = ToJSON(b)
	case format.YAMLFormat:
		d, err = ToYAML(b)
	case format.TOMLFormat:
		d, err = ToTOML(b)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Decode reads a document in format f.
func Decode(d []byte, f format.Format, opts ...parse.ParseOption) (*ir.Branch, error) {
	switch f {
	case format.VersaFormat:
		return parse.Parse(d, opts...)
	case format.JSONFormat:
		return FromJSON(d)
	case format.YAMLFormat:
		return FromYAML(d)
	case format.TOMLFormat:
		return FromTOML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}
