package token

import (
	"fmt"
)

type TokenType int

const (
	TWord TokenType = iota
	TInteger
	TFloat
	TString
	TComment
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TAssign
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWord:    "TWord",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TComment: "TComment",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TAssign:  "TAssign",
	}[t]
}

// Token is a single lexical token.
//
// Bytes holds the source text of the token. For TString the quotes are
// retained; for TComment Bytes is the comment text without its prefix.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// Slash reports a '//' comment prefix (false means '#').
	Slash bool
	// Unterminated marks a TString with no closing quote on its line.
	Unterminated bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text of the token, with quotes removed from strings.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// End returns the offset just past the token in its source document.
func (t *Token) End() int {
	switch t.Type {
	case TComment:
		return t.Pos.I + len(t.Bytes) + t.prefixLen()
	default:
		return t.Pos.I + len(t.Bytes)
	}
}

func (t *Token) prefixLen() int {
	if t.Slash {
		return 2
	}
	return 1
}
