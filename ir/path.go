package ir

import (
	"fmt"
	"strings"
)

// Resolve looks up a value by dot path. All but the last segment name child
// branches, taking the first child with a matching name; the last segment
// is a key of the branch reached. Resolve returns nil if the path does not
// resolve.
func (b *Branch) Resolve(path string) *Value {
	parts := strings.Split(path, ".")
	n := b
	for _, p := range parts[:len(parts)-1] {
		n = n.Branch(p)
		if n == nil {
			return nil
		}
	}
	return n.values[parts[len(parts)-1]]
}

// GetBranch looks up a branch by dot path through child branches only.
func (b *Branch) GetBranch(path string) *Branch {
	n := b
	for _, p := range strings.Split(path, ".") {
		n = n.Branch(p)
		if n == nil {
			return nil
		}
	}
	return n
}

// FindAnywhere returns the first value under key in b or, depth first, in
// any of its descendants regardless of their names.
func (b *Branch) FindAnywhere(key string) *Value {
	if v := b.values[key]; v != nil {
		return v
	}
	for _, c := range b.children {
		if v := c.FindAnywhere(key); v != nil {
			return v
		}
	}
	return nil
}

// HasPath reports whether path resolves to a value.
func (b *Branch) HasPath(path string) bool {
	return b.Resolve(path) != nil
}

// HasKey reports whether a value under key exists anywhere in b.
func (b *Branch) HasKey(key string) bool {
	return b.FindAnywhere(key) != nil
}

func get[T any](b *Branch, path, want string, conv func(*Value) (T, bool)) (T, error) {
	var zero T
	v := b.Resolve(path)
	if v == nil {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	res, ok := conv(v)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, path, v.Kind, want)
	}
	return res, nil
}

func getOr[T any](b *Branch, path string, def T, conv func(*Value) (T, bool)) T {
	v := b.Resolve(path)
	if v == nil {
		return def
	}
	res, ok := conv(v)
	if !ok {
		return def
	}
	return res
}

func listOf[T any](conv func(*Value) (T, bool)) func(*Value) ([]T, bool) {
	return func(v *Value) ([]T, bool) {
		vs, ok := v.AsList()
		if !ok {
			return nil, false
		}
		res := make([]T, len(vs))
		for i, elt := range vs {
			x, ok := conv(elt)
			if !ok {
				return nil, false
			}
			res[i] = x
		}
		return res, true
	}
}

func (b *Branch) GetString(path string) (string, error) {
	return get(b, path, "String", (*Value).AsString)
}

func (b *Branch) GetInt(path string) (int, error) {
	return get(b, path, "Int", (*Value).AsInt)
}

func (b *Branch) GetInt32(path string) (int32, error) {
	return get(b, path, "Int32", (*Value).AsInt32)
}

func (b *Branch) GetInt64(path string) (int64, error) {
	return get(b, path, "Int64", (*Value).AsInt64)
}

func (b *Branch) GetFloat64(path string) (float64, error) {
	return get(b, path, "Float64", (*Value).AsFloat64)
}

func (b *Branch) GetBool(path string) (bool, error) {
	return get(b, path, "Bool", (*Value).AsBool)
}

func (b *Branch) GetList(path string) ([]*Value, error) {
	return get(b, path, "List", (*Value).AsList)
}

func (b *Branch) GetBranchList(path string) ([]*Branch, error) {
	return get(b, path, "ListOfBranches", (*Value).AsBranches)
}

func (b *Branch) GetStringList(path string) ([]string, error) {
	return get(b, path, "List of String", listOf((*Value).AsString))
}

func (b *Branch) GetIntList(path string) ([]int, error) {
	return get(b, path, "List of Int", listOf((*Value).AsInt))
}

func (b *Branch) GetStringOr(path, def string) string {
	return getOr(b, path, def, (*Value).AsString)
}

func (b *Branch) GetIntOr(path string, def int) int {
	return getOr(b, path, def, (*Value).AsInt)
}

func (b *Branch) GetInt32Or(path string, def int32) int32 {
	return getOr(b, path, def, (*Value).AsInt32)
}

func (b *Branch) GetInt64Or(path string, def int64) int64 {
	return getOr(b, path, def, (*Value).AsInt64)
}

func (b *Branch) GetFloat64Or(path string, def float64) float64 {
	return getOr(b, path, def, (*Value).AsFloat64)
}

func (b *Branch) GetBoolOr(path string, def bool) bool {
	return getOr(b, path, def, (*Value).AsBool)
}

func (b *Branch) GetListOr(path string, def []*Value) []*Value {
	return getOr(b, path, def, (*Value).AsList)
}

func (b *Branch) GetBranchListOr(path string, def []*Branch) []*Branch {
	return getOr(b, path, def, (*Value).AsBranches)
}

func (b *Branch) GetStringListOr(path string, def []string) []string {
	return getOr(b, path, def, listOf((*Value).AsString))
}

func (b *Branch) GetIntListOr(path string, def []int) []int {
	return getOr(b, path, def, listOf((*Value).AsInt))
}
