package parse

import (
	"errors"
	"fmt"

	"github.com/versa-format/versa/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrUnterminatedString = fmt.Errorf("%w: unterminated string", ErrParse)
	ErrUnterminatedBranch = fmt.Errorf("%w: unterminated branch", ErrParse)
	ErrUnterminatedList   = fmt.Errorf("%w: unterminated list", ErrParse)
	ErrUnbalanced         = fmt.Errorf("%w: unbalanced '}'", ErrParse)
	ErrMissingValue       = fmt.Errorf("%w: missing value", ErrParse)
	ErrMixedList          = fmt.Errorf("%w: list mixes branches and values", ErrParse)
	ErrDuplicateKey       = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrUnexpected         = fmt.Errorf("%w: unexpected token", ErrParse)
)

// Error is a parse error at a position in the input.
type Error struct {
	Err      error
	Pos      *token.Pos
	Filename string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	prefix := ""
	if e.Filename != "" {
		prefix = e.Filename + ": "
	}
	if e.Pos == nil {
		return prefix + e.Err.Error()
	}
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%s%s at line=%d, col=%d", prefix, e.Err.Error(), line+1, col+1)
}
