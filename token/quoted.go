package token

import (
	"strconv"
)

// Quote returns v as a double quoted string literal.
func Quote(v string) string {
	return strconv.Quote(v)
}

// QuotedToString returns the contents of the quoted literal d.
//
// Escapes are interpreted where they are valid. Literals with invalid escapes
// or without a closing quote yield their raw inner text.
func QuotedToString(d []byte) string {
	s, err := Unquote(d)
	if err == nil {
		return s
	}
	return rawInner(d)
}

// Unquote interprets d as a double quoted string literal.
func Unquote(d []byte) (string, error) {
	return strconv.Unquote(string(d))
}

func rawInner(d []byte) string {
	if len(d) > 0 && d[0] == '"' {
		d = d[1:]
	}
	if len(d) > 0 && d[len(d)-1] == '"' {
		d = d[:len(d)-1]
	}
	return string(d)
}

// NeedsQuote reports whether a key must be quoted to be read back as a
// single word.
func NeedsQuote(key string) bool {
	if key == "" {
		return true
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isDelim(c) || c == '\\' {
			return true
		}
		if c == '/' && i+1 < len(key) && key[i+1] == '/' {
			return true
		}
	}
	return false
}
