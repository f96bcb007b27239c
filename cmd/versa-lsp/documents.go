package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/parse"
	"github.com/versa-format/versa/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	branch    *ir.Branch
	err       error
	positions *parse.Positions
	tokens    []token.Token
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: parse.NewPositions(),
	}
	doc.tokens = token.Tokenize(nil, []byte(content))
	doc.branch, doc.err = parse.ParseString(content, parse.ParsePositions(doc.positions))
	if doc.err != nil {
		// keep a best effort tree for hover and completion
		doc.positions = parse.NewPositions()
		doc.branch, _ = parse.ParseString(content, parse.Lenient(true), parse.ParsePositions(doc.positions))
	}
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Version:     uint32(doc.version),
			Diagnostics: validateDocument(doc),
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "versa",
	}
	var perr *parse.Error
	if errors.As(doc.err, &perr) && perr.Pos != nil {
		line, col := perr.Pos.LineCol()
		start := protocol.Position{Line: uint32(line), Character: uint32(runeCol(doc.content, line, col))}
		end := start
		end.Character++
		diagnostic.Range = protocol.Range{Start: start, End: end}
		diagnostic.Message = perr.Err.Error()
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
			continue
		}
		runes := []rune(content)
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(runes) {
			content = string(runes[:start]) + change.Text + string(runes[end:])
		}
	}
	return content
}

// lineColToOffset returns the rune offset of a zero based line and rune
// column.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	i := 0
	for _, r := range content {
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
		i++
	}
	return i
}

// runeCol converts a byte column of a line to a rune column.
func runeCol(content string, line, col int) int {
	ln := lineContent(content, line)
	if col > len(ln) {
		col = len(ln)
	}
	return len([]rune(ln[:col]))
}

// lineContent returns a line of content without its newline.
func lineContent(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}
