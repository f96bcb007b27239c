package loader

import (
	"fmt"

	"github.com/versa-format/versa/ir"
)

// Adapter converts between a Go type and a branch.
type Adapter[T any] interface {
	FromBranch(b *ir.Branch) (T, error)
	// ToBranch writes v into the empty branch b.
	ToBranch(v T, b *ir.Branch)
}

type adapted[T any] struct {
	path string
	dst  *T
	def  T
	ad   Adapter[T]
}

// Adapt binds dst to the branch at path through ad.
func Adapt[T any](dst *T, path string, ad Adapter[T]) Binding {
	return &adapted[T]{path: path, dst: dst, def: *dst, ad: ad}
}

func (a *adapted[T]) Path() string {
	return a.path
}

func (a *adapted[T]) Apply(doc *ir.Branch) error {
	b := doc.GetBranch(a.path)
	if b == nil {
		*a.dst = a.def
		return nil
	}
	v, err := a.ad.FromBranch(b)
	if err != nil {
		return pathErr(a.path, err)
	}
	*a.dst = v
	return nil
}

func (a *adapted[T]) Default(doc *ir.Branch) {
	parent, name := branchFor(doc, a.path)
	b := ir.NewBranch(name)
	a.ad.ToBranch(a.def, b)
	b.Name = name
	parent.AddBranch(b)
}

type adaptedList[T any] struct {
	path string
	dst  *[]T
	def  []T
	ad   Adapter[T]
}

// AdaptList binds dst to the list of branches at path, converting each
// element through ad.
func AdaptList[T any](dst *[]T, path string, ad Adapter[T]) Binding {
	return &adaptedList[T]{path: path, dst: dst, def: append([]T(nil), *dst...), ad: ad}
}

func (a *adaptedList[T]) Path() string {
	return a.path
}

func (a *adaptedList[T]) Apply(doc *ir.Branch) error {
	bs, err := doc.GetBranchList(a.path)
	if err != nil {
		if v := doc.Resolve(a.path); v != nil {
			return err
		}
		*a.dst = append([]T(nil), a.def...)
		return nil
	}
	res := make([]T, len(bs))
	for i, b := range bs {
		v, err := a.ad.FromBranch(b)
		if err != nil {
			return pathErr(fmt.Sprintf("%s[%d]", a.path, i), err)
		}
		res[i] = v
	}
	*a.dst = res
	return nil
}

func (a *adaptedList[T]) Default(doc *ir.Branch) {
	bs := make([]*ir.Branch, len(a.def))
	for i, v := range a.def {
		bs[i] = ir.NewBranch("")
		a.ad.ToBranch(v, bs[i])
		bs[i].Name = ""
	}
	setPath(doc, a.path, ir.FromBranches(bs...))
}
