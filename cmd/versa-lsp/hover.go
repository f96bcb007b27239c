package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.branch == nil {
		return nil, nil
	}
	line := int(params.Position.Line)
	col := int(params.Position.Character)

	v, b := findAtPosition(doc, line, col)
	text := ""
	switch {
	case v != nil:
		text = valueHoverText(pathOf(doc.branch, v, nil), v)
	case b != nil:
		text = branchHoverText(pathOf(doc.branch, nil, b), b)
	}
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// findAtPosition returns the value or branch whose key is on line and
// closest to col.
func findAtPosition(doc *document, line, col int) (*ir.Value, *ir.Branch) {
	var (
		bestV   *ir.Value
		bestB   *ir.Branch
		bestCol = -1
	)
	closer := func(pos *token.Pos) bool {
		pl, pc := pos.LineCol()
		if pl != line {
			return false
		}
		pc = runeCol(doc.content, pl, pc)
		if pc > col {
			return false
		}
		if pc > bestCol {
			bestCol = pc
			return true
		}
		return false
	}
	for v, pos := range doc.positions.Values {
		if closer(pos) {
			bestV, bestB = v, nil
		}
	}
	for b, pos := range doc.positions.Branches {
		if closer(pos) {
			bestV, bestB = nil, b
		}
	}
	return bestV, bestB
}

// pathOf returns the dot path of v or b in root, with list indexes as
// "[i]", or "" if absent.
func pathOf(root *ir.Branch, v *ir.Value, b *ir.Branch) string {
	var walk func(n *ir.Branch, prefix string) (string, bool)
	join := func(prefix, name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	walk = func(n *ir.Branch, prefix string) (string, bool) {
		for _, e := range n.Entries() {
			switch e.Kind {
			case ir.ValueEntry:
				p := join(prefix, e.Value.Name)
				if e.Value == v {
					return p, true
				}
				for i, lb := range e.Value.Branches {
					lp := fmt.Sprintf("%s[%d]", p, i)
					if lb == b {
						return lp, true
					}
					if res, ok := walk(lb, lp); ok {
						return res, true
					}
				}
			case ir.BranchEntry:
				p := join(prefix, e.Branch.Name)
				if e.Branch == b {
					return p, true
				}
				if res, ok := walk(e.Branch, p); ok {
					return res, true
				}
			}
		}
		return "", false
	}
	res, _ := walk(root, "")
	return res
}

func valueHoverText(path string, v *ir.Value) string {
	var parts []string
	if path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}
	parts = append(parts, fmt.Sprintf("**Kind:** %s", v.Kind))
	switch v.Kind {
	case ir.ListKind:
		parts = append(parts, fmt.Sprintf("**Value:** list with %d elements", len(v.List)))
	case ir.ListOfBranchesKind:
		parts = append(parts, fmt.Sprintf("**Value:** list of %d branches", len(v.Branches)))
	default:
		val := encode.ValueString(v)
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	}
	if c := v.Comment(); c != nil {
		parts = append(parts, strings.TrimSpace(c.Text))
	}
	return strings.Join(parts, "\n\n")
}

func branchHoverText(path string, b *ir.Branch) string {
	var parts []string
	if path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}
	parts = append(parts, fmt.Sprintf("**Branch** with %d values and %d branches",
		len(b.Values()), len(b.Children())))
	if c := b.StartComment(); c != nil {
		parts = append(parts, strings.TrimSpace(c.Text))
	}
	return strings.Join(parts, "\n\n")
}
