package main

import (
	"context"
	"math"

	"github.com/versa-format/versa/token"

	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

// indexes into tokenTypes
const (
	semComment = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
)

const modDefinition = 1 << 0

type semToken struct {
	line, col, length int
	typ, mods         int
}

// classify returns the semantic type and modifiers of toks[i], or false for
// tokens that are not highlighted.
func classify(toks []token.Token, i int) (int, int, bool) {
	t := &toks[i]
	isKey := i+1 < len(toks) &&
		(toks[i+1].Type == token.TAssign || toks[i+1].Type == token.TLCurl) &&
		toks[i+1].Pos.Line() == t.Pos.Line()
	switch t.Type {
	case token.TComment:
		return semComment, 0, true
	case token.TWord, token.TString:
		if isKey {
			return semProperty, modDefinition, true
		}
		if t.Type == token.TWord {
			switch string(t.Bytes) {
			case "true", "false":
				return semKeyword, 0, true
			}
		}
		return semString, 0, true
	case token.TInteger, token.TFloat:
		if isKey {
			return semProperty, modDefinition, true
		}
		return semNumber, 0, true
	case token.TAssign:
		return semOperator, 0, true
	}
	return 0, 0, false
}

func collectSemanticTokens(doc *document) []semToken {
	var res []semToken
	for i := range doc.tokens {
		typ, mods, ok := classify(doc.tokens, i)
		if !ok {
			continue
		}
		t := &doc.tokens[i]
		line, col := t.Pos.LineCol()
		endLine, endCol := t.Pos.D.LineCol(t.End())
		if endLine != line {
			endCol = len(lineContent(doc.content, line))
		}
		start := runeCol(doc.content, line, col)
		res = append(res, semToken{
			line:   line,
			col:    start,
			length: runeCol(doc.content, line, endCol) - start,
			typ:    typ,
			mods:   mods,
		})
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of toks in lines
// [from, to).
func encodeSemanticTokens(toks []semToken, from, to int) []uint32 {
	data := []uint32{}
	prevLine, prevCol := 0, 0
	for _, t := range toks {
		if t.line < from || t.line >= to {
			continue
		}
		dl := t.line - prevLine
		dc := t.col
		if dl == 0 {
			dc = t.col - prevCol
		}
		data = append(data, uint32(dl), uint32(dc), uint32(t.length), uint32(t.typ), uint32(t.mods))
		prevLine, prevCol = t.line, t.col
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	toks := collectSemanticTokens(doc)
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(toks, 0, math.MaxInt)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	toks := collectSemanticTokens(doc)
	from, to := int(params.Range.Start.Line), int(params.Range.End.Line)+1
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(toks, from, to)}, nil
}
