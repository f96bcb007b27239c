package main

import (
	"context"
	"strings"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	if doc.err != nil {
		// no edits for malformed input
		return nil, nil
	}
	b, err := parse.ParseString(doc.content)
	if err != nil {
		return nil, nil
	}
	var opts []encode.EncodeOption
	if n := int(params.Options.TabSize); n > 0 && params.Options.InsertSpaces {
		opts = append(opts, encode.Indent(n))
	}
	formatted := encode.MustString(b, opts...)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
