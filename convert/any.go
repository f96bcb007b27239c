package convert

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
)

var ErrUnsupported = ir.ErrUnsupported

// Object is the data of a branch with keys in document order.
type Object []Field

type Field struct {
	Key   string
	Value any
}

// Get returns the value under key, or nil.
func (o Object) Get(key string) any {
	for _, f := range o {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// ToAny returns the data of b. Child branches become Objects, lists become
// []any and lists of branches []any of Objects. Integers are int64 and
// floats float64. Of several entries with the same name the first wins.
func ToAny(b *ir.Branch) Object {
	res := Object{}
	seen := map[string]bool{}
	for _, e := range b.Entries() {
		var v any
		switch e.Kind {
		case ir.ValueEntry:
			v = valueToAny(e.Value)
		case ir.BranchEntry:
			v = ToAny(e.Branch)
		default:
			continue
		}
		name := e.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, Field{Key: name, Value: v})
	}
	return res
}

func valueToAny(v *ir.Value) any {
	switch v.Kind {
	case ir.ListKind:
		res := make([]any, len(v.List))
		for i, elt := range v.List {
			res[i] = valueToAny(elt)
		}
		return res
	case ir.ListOfBranchesKind:
		res := make([]any, len(v.Branches))
		for i, b := range v.Branches {
			res[i] = ToAny(b)
		}
		return res
	default:
		return v.Raw()
	}
}

// FromAny builds an unnamed branch from an Object, a yaml.MapSlice or a
// map[string]any. Nested objects become child branches, lists of objects
// lists of branches.
func FromAny(v any) (*ir.Branch, error) {
	switch x := v.(type) {
	case Object:
		return fromFields(len(x), func(i int) (string, any) { return x[i].Key, x[i].Value })
	case yaml.MapSlice:
		return fromFields(len(x), func(i int) (string, any) { return fmt.Sprint(x[i].Key), x[i].Value })
	case map[string]any:
		return ir.FromMap(x)
	default:
		return nil, fmt.Errorf("%w: %T is not an object", ErrUnsupported, v)
	}
}

func isObject(v any) bool {
	switch v.(type) {
	case Object, yaml.MapSlice, map[string]any:
		return true
	default:
		return false
	}
}

func fromFields(n int, field func(int) (string, any)) (*ir.Branch, error) {
	res := ir.NewBranch("")
	for i := range n {
		k, v := field(i)
		if isObject(v) {
			c, err := FromAny(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			c.Name = k
			res.AddBranch(c)
			continue
		}
		val, err := valueFromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		res.Set(k, val)
	}
	return res, nil
}

func valueFromAny(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrUnsupported, x)
		}
		return ir.FromFloat64(f), nil
	case []any:
		if len(x) > 0 && allObjects(x) {
			bs := make([]*ir.Branch, len(x))
			for i, elt := range x {
				b, err := FromAny(elt)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				bs[i] = b
			}
			return ir.FromBranches(bs...), nil
		}
		vs := make([]*ir.Value, len(x))
		for i, elt := range x {
			ev, err := valueFromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = ev
		}
		return ir.FromList(vs...), nil
	default:
		return ir.FromAny(v)
	}
}

func allObjects(vs []any) bool {
	for _, v := range vs {
		if !isObject(v) {
			return false
		}
	}
	return true
}

// jsonValue prepares v for encoding/json: floats keep a '.' so that they
// read back as floats.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		return json.Number(encode.FormatFloat(x, 64))
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = jsonValue(elt)
		}
		return res
	default:
		return v
	}
}

func (o Object) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(jsonValue(f.Value))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// mapSlice converts Objects in v to yaml.MapSlice so that the YAML encoder
// keeps their order.
func mapSlice(v any) any {
	switch x := v.(type) {
	case Object:
		res := make(yaml.MapSlice, len(x))
		for i, f := range x {
			res[i] = yaml.MapItem{Key: f.Key, Value: mapSlice(f.Value)}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = mapSlice(elt)
		}
		return res
	default:
		return v
	}
}

// plain converts Objects in v to maps.
func plain(v any) any {
	switch x := v.(type) {
	case Object:
		res := make(map[string]any, len(x))
		for _, f := range x {
			res[f.Key] = plain(f.Value)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = plain(elt)
		}
		return res
	default:
		return v
	}
}
