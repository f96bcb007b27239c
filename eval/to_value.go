package eval

import (
	"fmt"

	"github.com/versa-format/versa/ir"
)

// ToAny returns the payload of v as expressions see it. Lists of branches
// become []any of maps.
func ToAny(v *ir.Value) any {
	switch v.Kind {
	case ir.ListKind:
		res := make([]any, len(v.List))
		for i, elt := range v.List {
			res[i] = ToAny(elt)
		}
		return res
	case ir.ListOfBranchesKind:
		res := make([]any, len(v.Branches))
		for i, b := range v.Branches {
			res[i] = ir.ToMap(b)
		}
		return res
	default:
		return v.Raw()
	}
}

// ToValue converts the result of an expression to a value.
func ToValue(res any) (*ir.Value, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", ir.ErrUnsupported)
	}
	return ir.FromAny(res)
}
