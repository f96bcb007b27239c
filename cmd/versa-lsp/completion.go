package main

import (
	"context"
	"sort"

	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/token"

	"go.lsp.dev/protocol"
)

// Completion offers the keys and branch names of the branch enclosing the
// cursor.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.branch == nil {
		return nil, nil
	}
	off := lineColToByteOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	b := enclosingBranch(doc.branch, doc.tokens, off)
	if b == nil {
		return &protocol.CompletionList{}, nil
	}
	return &protocol.CompletionList{Items: completionItems(b)}, nil
}

func completionItems(b *ir.Branch) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	seen := map[string]bool{}
	for _, v := range b.Values() {
		seen[v.Name] = true
		items = append(items, protocol.CompletionItem{
			Label:  v.Name,
			Kind:   protocol.CompletionItemKindProperty,
			Detail: v.Kind.String(),
		})
	}
	for _, c := range b.Children() {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		items = append(items, protocol.CompletionItem{
			Label:  c.Name,
			Kind:   protocol.CompletionItemKindModule,
			Detail: "branch",
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})
	return items
}

// enclosingBranch returns the branch of root open at byte offset off, by
// following the named braces of toks before off. It returns nil inside
// lists.
func enclosingBranch(root *ir.Branch, toks []token.Token, off int) *ir.Branch {
	// "" marks a list or an anonymous branch
	var stack []string
	for i := range toks {
		t := &toks[i]
		if t.Pos.I >= off {
			break
		}
		switch t.Type {
		case token.TLCurl:
			name := ""
			if i > 0 && (toks[i-1].Type == token.TWord || toks[i-1].Type == token.TString) {
				name = toks[i-1].String()
			}
			stack = append(stack, name)
		case token.TLSquare:
			stack = append(stack, "")
		case token.TRCurl, token.TRSquare:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	b := root
	for _, name := range stack {
		if name == "" {
			return nil
		}
		b = b.Branch(name)
		if b == nil {
			return nil
		}
	}
	return b
}

// lineColToByteOffset returns the byte offset of a zero based line and
// rune column.
func lineColToByteOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
