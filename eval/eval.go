package eval

import (
	"fmt"

	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables visible to an expression.
type Env map[string]any

// DocVar names the variable holding the evaluated document as nested maps.
const DocVar = "doc"

func (e Env) with(doc *ir.Branch) Env {
	res := make(Env, len(e)+1)
	if doc != nil {
		res[DocVar] = ir.ToMap(doc)
	}
	for k, v := range e {
		res[k] = v
	}
	return res
}

// Eval evaluates src against doc. The registered symbols are bound to doc
// and env is extended with DocVar unless it sets DocVar itself.
func Eval(doc *ir.Branch, src string, env Env) (any, error) {
	var opts []expr.Option
	if doc != nil {
		opts = exprOpts(doc)
	}
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := vm.Run(program, env.with(doc))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}

// EvalBool is Eval for expressions producing a boolean.
func EvalBool(doc *ir.Branch, src string, env Env) (bool, error) {
	res, err := Eval(doc, src, env)
	if err != nil {
		return false, err
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ir.ErrTypeMismatch, src, res)
	}
	return v, nil
}
