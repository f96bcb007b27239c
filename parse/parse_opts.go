package parse

import (
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/token"
)

type parseOpts struct {
	lenient   bool
	filename  string
	positions *Positions
}

type ParseOption func(*parseOpts)

// Lenient makes the parser recover from malformed input instead of failing:
// unterminated branches and lists close at the end of the input, stray
// tokens are skipped and a repeated key replaces the earlier value.
func Lenient(v bool) ParseOption {
	return func(o *parseOpts) { o.lenient = v }
}

// WithFilename names the input in errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// Positions records where parsed values and branches start in the input.
// The position of a value or branch is that of its key; branches in a list
// are recorded at their '{'.
type Positions struct {
	Values   map[*ir.Value]*token.Pos
	Branches map[*ir.Branch]*token.Pos
}

func NewPositions() *Positions {
	return &Positions{
		Values:   map[*ir.Value]*token.Pos{},
		Branches: map[*ir.Branch]*token.Pos{},
	}
}

// ParsePositions fills p while parsing.
func ParsePositions(p *Positions) ParseOption {
	return func(o *parseOpts) { o.positions = p }
}
