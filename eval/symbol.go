package eval

import "github.com/versa-format/versa/ir"

// Symbol is a function available to expressions.
type Symbol interface {
	String() string
	// Func returns the implementation of the symbol bound to a document.
	Func(doc *ir.Branch) func(params ...any) (any, error)
	// Types returns the signatures of the function, as pointers to func
	// types, for the expression type checker.
	Types() []any
}

type name string

func (s name) String() string {
	return string(s)
}

type funcSymbol struct {
	name
	fn    func(doc *ir.Branch, params []any) (any, error)
	types []any
}

func (s *funcSymbol) Func(doc *ir.Branch) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		return s.fn(doc, params)
	}
}

func (s *funcSymbol) Types() []any {
	return s.types
}

// NewSymbol returns a Symbol named n implemented by fn.
func NewSymbol(n string, fn func(doc *ir.Branch, params []any) (any, error), types ...any) Symbol {
	return &funcSymbol{name: name(n), fn: fn, types: types}
}
