package ir

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrUnsupported  = errors.New("unsupported value")
)
