package loader

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/versa-format/versa/ir"
)

// Binding ties a variable to a dot path.
type Binding interface {
	Path() string
	// Apply assigns the variable from doc, or its default if doc has
	// nothing at the path.
	Apply(doc *ir.Branch) error
	// Default writes the default into doc, creating branches along the
	// path.
	Default(doc *ir.Branch)
}

type scalar[T any] struct {
	path string
	dst  *T
	def  T
	get  func(*ir.Branch, string) (T, error)
	val  func(T) *ir.Value
	copy func(T) T
}

func (s *scalar[T]) Path() string {
	return s.path
}

func (s *scalar[T]) Apply(doc *ir.Branch) error {
	v, err := s.get(doc, s.path)
	if errors.Is(err, ir.ErrNotFound) {
		*s.dst = s.copy(s.def)
		return nil
	}
	if err != nil {
		return err
	}
	*s.dst = v
	return nil
}

func (s *scalar[T]) Default(doc *ir.Branch) {
	setPath(doc, s.path, s.val(s.def))
}

func same[T any](v T) T { return v }

func newScalar[T any](dst *T, path string, get func(*ir.Branch, string) (T, error), val func(T) *ir.Value) *scalar[T] {
	return &scalar[T]{path: path, dst: dst, def: *dst, get: get, val: val, copy: same[T]}
}

func String(dst *string, path string) Binding {
	return newScalar(dst, path, (*ir.Branch).GetString, ir.FromString)
}

func Int(dst *int, path string) Binding {
	return newScalar(dst, path, (*ir.Branch).GetInt, func(v int) *ir.Value {
		return ir.FromInt(int64(v))
	})
}

func Int64(dst *int64, path string) Binding {
	return newScalar(dst, path, (*ir.Branch).GetInt64, ir.FromInt64)
}

func Float64(dst *float64, path string) Binding {
	return newScalar(dst, path, (*ir.Branch).GetFloat64, ir.FromFloat64)
}

func Bool(dst *bool, path string) Binding {
	return newScalar(dst, path, (*ir.Branch).GetBool, ir.FromBool)
}

func listBinding[T any](dst *[]T, path string, get func(*ir.Branch, string) ([]T, error), elt func(T) *ir.Value) *scalar[[]T] {
	s := newScalar(dst, path, get, func(vs []T) *ir.Value {
		elts := make([]*ir.Value, len(vs))
		for i, v := range vs {
			elts[i] = elt(v)
		}
		return ir.FromList(elts...)
	})
	s.def = slices.Clone(s.def)
	s.copy = func(v []T) []T { return slices.Clone(v) }
	return s
}

func StringList(dst *[]string, path string) Binding {
	return listBinding(dst, path, (*ir.Branch).GetStringList, ir.FromString)
}

func IntList(dst *[]int, path string) Binding {
	return listBinding(dst, path, (*ir.Branch).GetIntList, func(v int) *ir.Value {
		return ir.FromInt(int64(v))
	})
}

// setPath sets v at a dot path of doc, adding missing branches.
func setPath(doc *ir.Branch, path string, v *ir.Value) {
	parent, key := branchFor(doc, path)
	parent.Set(key, v)
}

// branchFor returns the branch holding the last segment of path, creating
// the branches on the way, and that segment.
func branchFor(doc *ir.Branch, path string) (*ir.Branch, string) {
	parts := strings.Split(path, ".")
	b := doc
	for _, p := range parts[:len(parts)-1] {
		c := b.Branch(p)
		if c == nil {
			c = ir.NewBranch(p)
			b.AddBranch(c)
		}
		b = c
	}
	return b, parts[len(parts)-1]
}

func pathErr(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
