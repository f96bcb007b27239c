package eval

import (
	"github.com/versa-format/versa/ir"

	"github.com/expr-lang/expr"
)

var getpathSym = NewSymbol("getpath", func(doc *ir.Branch, params []any) (any, error) {
	path := params[0].(string)
	if v := doc.Resolve(path); v != nil {
		return ToAny(v), nil
	}
	if b := doc.GetBranch(path); b != nil {
		return ir.ToMap(b), nil
	}
	return nil, nil
}, new(func(string) any))

// GetPath returns getpath(path): the value or branch at a dot path, or nil.
func GetPath() Symbol {
	return getpathSym
}

var haspathSym = NewSymbol("haspath", func(doc *ir.Branch, params []any) (any, error) {
	path := params[0].(string)
	return doc.HasPath(path) || doc.GetBranch(path) != nil, nil
}, new(func(string) bool))

// HasPath returns haspath(path): whether a value or branch is at the dot
// path.
func HasPath() Symbol {
	return haspathSym
}

var findkeySym = NewSymbol("findkey", func(doc *ir.Branch, params []any) (any, error) {
	if v := doc.FindAnywhere(params[0].(string)); v != nil {
		return ToAny(v), nil
	}
	return nil, nil
}, new(func(string) any))

// FindKey returns findkey(key): the first value under key anywhere in the
// document.
func FindKey() Symbol {
	return findkeySym
}

var keysSym = NewSymbol("keys", func(doc *ir.Branch, params []any) (any, error) {
	b := doc
	if p := params[0].(string); p != "" {
		b = doc.GetBranch(p)
	}
	if b == nil {
		return []any{}, nil
	}
	res := []any{}
	for _, k := range b.Keys() {
		res = append(res, k)
	}
	return res, nil
}, new(func(string) []any))

// Keys returns keys(path): the value keys of the branch at path, "" for the
// document itself.
func Keys() Symbol {
	return keysSym
}

func exprOpts(doc *ir.Branch) []expr.Option {
	syms := Symbols()
	res := make([]expr.Option, 0, len(syms))
	for _, s := range syms {
		res = append(res, expr.Function(s.String(), s.Func(doc), s.Types()...))
	}
	return res
}
