package ir

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"sort"
)

// FromAny converts a plain Go value to a Value.
//
// Supported are strings, booleans, integer and floating types, *Value,
// []*Branch, *Branch (a single element list of branches) and slices of
// those. A slice whose elements are all maps or branches becomes a
// ListOfBranches. Maps with string keys become branches with keys in sorted
// order.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case *Value:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt32(int32(x)), nil
	case int16:
		return FromInt32(int32(x)), nil
	case int32:
		return FromInt32(x), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt32(int32(x)), nil
	case uint16:
		return FromInt32(int32(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows Int64", ErrUnsupported, x)
		}
		return FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows Int64", ErrUnsupported, x)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat32(x), nil
	case float64:
		return FromFloat64(x), nil
	case *Branch:
		return FromBranches(x.Clone()), nil
	case []*Branch:
		bs := make([]*Branch, len(x))
		for i, b := range x {
			bs[i] = b.Clone()
		}
		return FromBranches(bs...), nil
	case map[string]any:
		b, err := FromMap(x)
		if err != nil {
			return nil, err
		}
		return FromBranches(b), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
	n := rv.Len()
	elts := make([]any, n)
	for i := range n {
		elts[i] = rv.Index(i).Interface()
	}
	if n > 0 && allBranchLike(elts) {
		bs := make([]*Branch, n)
		for i, elt := range elts {
			switch x := elt.(type) {
			case *Branch:
				bs[i] = x.Clone()
			case map[string]any:
				b, err := FromMap(x)
				if err != nil {
					return nil, err
				}
				bs[i] = b
			}
		}
		return FromBranches(bs...), nil
	}
	vs := make([]*Value, n)
	for i, elt := range elts {
		ev, err := FromAny(elt)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		vs[i] = ev
	}
	return FromList(vs...), nil
}

func allBranchLike(elts []any) bool {
	for _, elt := range elts {
		switch elt.(type) {
		case *Branch, map[string]any:
		default:
			return false
		}
	}
	return true
}

// FromMap converts a map to an unnamed branch. Nested maps become child
// branches; everything else is converted with FromAny. Keys are visited in
// sorted order.
func FromMap(m map[string]any) (*Branch, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := NewBranch("")
	for _, k := range keys {
		switch x := m[k].(type) {
		case map[string]any:
			c, err := FromMap(x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			c.Name = k
			res.AddBranch(c)
		default:
			v, err := FromAny(x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, v)
		}
	}
	return res, nil
}

// ToMap returns the data of b as nested maps. Comments, blank lines and
// order are dropped. Of several children with the same name the first wins.
func ToMap(b *Branch) map[string]any {
	res := make(map[string]any, len(b.values)+len(b.children))
	for _, c := range slices.Backward(b.children) {
		res[c.Name] = ToMap(c)
	}
	for k, v := range b.values {
		res[k] = toAny(v)
	}
	return res
}

func toAny(v *Value) any {
	switch v.Kind {
	case ListKind:
		res := make([]any, len(v.List))
		for i, elt := range v.List {
			res[i] = toAny(elt)
		}
		return res
	case ListOfBranchesKind:
		res := make([]any, len(v.Branches))
		for i, b := range v.Branches {
			res[i] = ToMap(b)
		}
		return res
	default:
		return v.Raw()
	}
}
