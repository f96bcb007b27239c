package token

import (
	"bytes"
)

// Tokenize appends the tokens of src to dst and returns the result.
//
// Tokenize never fails: characters which do not start a string, a comment
// or punctuation are consumed as part of a word.
func Tokenize(dst []Token, src []byte) []Token {
	posDoc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '#':
			j := lineEnd(src, i)
			dst = append(dst, Token{
				Type:  TComment,
				Pos:   posDoc.Pos(i),
				Bytes: trimCR(src[i+1 : j]),
			})
			i = j
		case c == '/' && i+1 < n && src[i+1] == '/':
			j := lineEnd(src, i)
			dst = append(dst, Token{
				Type:  TComment,
				Pos:   posDoc.Pos(i),
				Bytes: trimCR(src[i+2 : j]),
				Slash: true,
			})
			i = j
		case c == '"':
			j, ok := quotedEnd(src, i)
			dst = append(dst, Token{
				Type:         TString,
				Pos:          posDoc.Pos(i),
				Bytes:        src[i:j],
				Unterminated: !ok,
			})
			i = j
		case isPunct(c):
			dst = append(dst, Token{
				Type:  punctType(c),
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+1],
			})
			i++
		default:
			j := wordEnd(src, i)
			word := src[i:j]
			dst = append(dst, Token{
				Type:  wordType(word),
				Pos:   posDoc.Pos(i),
				Bytes: word,
			})
			i = j
		}
	}
	return dst
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', '=', ':':
		return true
	}
	return false
}

func punctType(c byte) TokenType {
	switch c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ',':
		return TComma
	default:
		return TAssign
	}
}

// isDelim reports whether c ends a word.
func isDelim(c byte) bool {
	return isSpace(c) || isPunct(c) || c == '"' || c == '#'
}

func wordEnd(src []byte, i int) int {
	n := len(src)
	j := i
	for j < n {
		c := src[j]
		if isDelim(c) {
			break
		}
		if c == '/' && j+1 < n && src[j+1] == '/' {
			break
		}
		j++
	}
	return j
}

func lineEnd(src []byte, i int) int {
	j := bytes.IndexByte(src[i:], '\n')
	if j == -1 {
		return len(src)
	}
	return i + j
}

func trimCR(d []byte) []byte {
	return bytes.TrimSuffix(d, []byte{'\r'})
}

// quotedEnd returns the offset just past the string starting at src[i] and
// whether it was closed before the end of the line.
func quotedEnd(src []byte, i int) (int, bool) {
	n := len(src)
	j := i + 1
	for j < n {
		switch src[j] {
		case '\\':
			if j+1 < n && src[j+1] != '\n' {
				j += 2
				continue
			}
			j++
		case '"':
			return j + 1, true
		case '\n':
			return j, false
		default:
			j++
		}
	}
	return n, false
}

func wordType(w []byte) TokenType {
	if isInteger(w) {
		return TInteger
	}
	if isDecimal(w) {
		return TFloat
	}
	return TWord
}

func isDigits(w []byte) bool {
	if len(w) == 0 {
		return false
	}
	for _, c := range w {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isInteger(w []byte) bool {
	if len(w) > 0 && w[0] == '-' {
		w = w[1:]
	}
	return isDigits(w)
}

func isDecimal(w []byte) bool {
	if len(w) > 0 && w[0] == '-' {
		w = w[1:]
	}
	dot := bytes.IndexByte(w, '.')
	if dot == -1 {
		return false
	}
	return isDigits(w[:dot]) && isDigits(w[dot+1:])
}
