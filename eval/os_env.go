package eval

import (
	"os"
	"strings"

	"github.com/versa-format/versa/ir"
)

var osenvSym = NewSymbol("getenv", func(_ *ir.Branch, params []any) (any, error) {
	return os.Getenv(strings.TrimSpace(params[0].(string))), nil
}, new(func(string) string))

// OSEnv returns getenv(name).
func OSEnv() Symbol {
	return osenvSym
}
