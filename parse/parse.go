package parse

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/token"
)

// Parse parses a Versa document into an unnamed root branch.
func Parse(d []byte, opts ...ParseOption) (*ir.Branch, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		toks: token.Tokenize(nil, d),
		last: -1,
		opts: pOpts,
	}
	root := ir.NewBranch("")
	if err := p.parseBody(root, 0, nil); err != nil {
		return nil, err
	}
	p.blankLines(root, token.NewPosDoc(d).End().Line())
	if debug.Parse() {
		debug.Logf("parsed %d tokens into:\n%v", len(p.toks), root)
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Branch, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses the file at path. Errors name the file.
func ParseFile(path string, opts ...ParseOption) (*ir.Branch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{WithFilename(path)}, opts...)...)
}

type parser struct {
	toks []token.Token
	i    int
	// last is the line of the last consumed token, -1 before the first.
	last int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	p.i++
	p.last = t.Pos.Line()
	return t
}

func (p *parser) errorf(err error, pos *token.Pos, format string, args ...any) error {
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	}
	return &Error{Err: err, Pos: pos, Filename: p.opts.filename}
}

// recover reports whether a malformed construct should be skipped rather
// than reported.
func (p *parser) recover(err error) bool {
	if !p.opts.lenient {
		return false
	}
	if debug.Parse() {
		debug.Logf("recovering from %v\n", err)
	}
	return true
}

// trailing returns the next token if it is a comment on the same line as
// the last consumed token, consuming it.
func (p *parser) trailing() *token.Token {
	t := p.peek()
	if t == nil || t.Type != token.TComment || p.last == -1 || t.Pos.Line() != p.last {
		return nil
	}
	return p.next()
}

func (p *parser) blankLines(b *ir.Branch, line int) {
	for range line - p.last - 1 {
		b.EmptyLine()
	}
}

// parseBody parses entries into b up to and including the '}' closing the
// block opened at open, or to the end of input at the top level.
func (p *parser) parseBody(b *ir.Branch, depth int, open *token.Pos) error {
	for {
		t := p.peek()
		if t == nil {
			if depth > 0 {
				err := p.errorf(ErrUnterminatedBranch, open, "%q", b.Name)
				if !p.recover(err) {
					return err
				}
			}
			return nil
		}
		p.blankLines(b, t.Pos.Line())
		switch t.Type {
		case token.TComment:
			p.next()
			b.AddComment(string(t.Bytes), t.Slash)
		case token.TRCurl:
			if depth > 0 {
				p.next()
				return nil
			}
			err := p.errorf(ErrUnbalanced, t.Pos, "")
			if !p.recover(err) {
				return err
			}
			p.next()
		case token.TWord, token.TString, token.TInteger, token.TFloat:
			if err := p.parseEntry(b, depth); err != nil {
				return err
			}
		default:
			err := p.errorf(ErrUnexpected, t.Pos, "%q", t.Bytes)
			if !p.recover(err) {
				return err
			}
			p.next()
		}
	}
}

// parseEntry parses an assignment or a branch starting at a key token.
func (p *parser) parseEntry(b *ir.Branch, depth int) error {
	kt := p.next()
	if err := p.checkString(kt); err != nil {
		return err
	}
	key := kt.String()
	t := p.peek()
	switch {
	case t != nil && t.Type == token.TAssign:
		p.next()
		v, err := p.parseValue(depth)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		v.Glyph = t.Bytes[0]
		if c := p.trailing(); c != nil {
			v.WithComment(string(c.Bytes), c.Slash)
		}
		if b.Value(key) != nil {
			err := p.errorf(ErrDuplicateKey, kt.Pos, "%q", key)
			if !p.recover(err) {
				return err
			}
		}
		b.Set(key, v)
		p.trackValue(v, kt.Pos)
		return nil

	case t != nil && t.Type == token.TLCurl:
		child := ir.NewBranch(key)
		if err := p.parseBlock(child, depth); err != nil {
			return err
		}
		b.AddBranch(child)
		p.trackBranch(child, kt.Pos)
		return nil

	default:
		pos := kt.Pos
		if t != nil {
			pos = t.Pos
		}
		err := p.errorf(ErrUnexpected, pos, "expected '=', ':' or '{' after %q", key)
		if !p.recover(err) {
			return err
		}
		return nil
	}
}

// parseBlock parses '{' entries '}' into b, with the comments trailing both
// braces.
func (p *parser) parseBlock(b *ir.Branch, depth int) error {
	open := p.next()
	if c := p.trailing(); c != nil {
		b.SetStartComment(string(c.Bytes), c.Slash)
	}
	if err := p.parseBody(b, depth+1, open.Pos); err != nil {
		return err
	}
	if c := p.trailing(); c != nil {
		b.SetEndComment(string(c.Bytes), c.Slash)
	}
	return nil
}

// parseValue parses the value following an assignment glyph. It returns a
// nil value when a missing value is recovered from.
func (p *parser) parseValue(depth int) (*ir.Value, error) {
	t := p.peek()
	if t == nil || t.Pos.Line() != p.last || !isValueStart(t.Type) {
		var pos *token.Pos
		if t != nil {
			pos = t.Pos
		}
		err := p.errorf(ErrMissingValue, pos, "")
		if !p.recover(err) {
			return nil, err
		}
		return nil, nil
	}
	if t.Type == token.TLSquare {
		return p.parseList(depth)
	}
	p.next()
	if err := p.checkString(t); err != nil {
		return nil, err
	}
	return scalar(t), nil
}

func isValueStart(tt token.TokenType) bool {
	switch tt {
	case token.TWord, token.TString, token.TInteger, token.TFloat, token.TLSquare:
		return true
	default:
		return false
	}
}

func (p *parser) checkString(t *token.Token) error {
	if t.Type != token.TString || !t.Unterminated {
		return nil
	}
	err := p.errorf(ErrUnterminatedString, t.Pos, "")
	if !p.recover(err) {
		return err
	}
	return nil
}

// parseList parses '[' elements ']'. Comments between elements are
// dropped, except one trailing a branch element's '}' which becomes that
// branch's end comment.
func (p *parser) parseList(depth int) (*ir.Value, error) {
	open := p.next()
	var (
		vals     []*ir.Value
		branches []*ir.Branch
		lastB    *ir.Branch
		lastLine = -1
	)
	for {
		t := p.peek()
		if t == nil {
			err := p.errorf(ErrUnterminatedList, open.Pos, "")
			if !p.recover(err) {
				return nil, err
			}
			break
		}
		if t.Type == token.TComment {
			p.next()
			if lastB != nil && lastB.EndComment() == nil && t.Pos.Line() == lastLine {
				lastB.SetEndComment(string(t.Bytes), t.Slash)
			}
			continue
		}
		if t.Type == token.TRSquare {
			p.next()
			break
		}
		if t.Type == token.TComma {
			p.next()
			continue
		}
		lastB = nil
		switch t.Type {
		case token.TLCurl:
			b := ir.NewBranch("")
			p.trackBranch(b, t.Pos)
			if err := p.parseBlock(b, depth+1); err != nil {
				return nil, err
			}
			branches = append(branches, b)
			lastB = b
			lastLine = p.last
		case token.TLSquare:
			v, err := p.parseList(depth)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		case token.TWord, token.TString, token.TInteger, token.TFloat:
			p.next()
			if err := p.checkString(t); err != nil {
				return nil, err
			}
			vals = append(vals, scalar(t))
		default:
			err := p.errorf(ErrUnexpected, t.Pos, "%q in list", t.Bytes)
			if !p.recover(err) {
				return nil, err
			}
			p.next()
		}
	}
	switch {
	case len(branches) > 0 && len(vals) > 0:
		err := p.errorf(ErrMixedList, open.Pos, "")
		if !p.recover(err) {
			return nil, err
		}
		return ir.FromBranches(branches...), nil
	case len(branches) > 0:
		return ir.FromBranches(branches...), nil
	default:
		return ir.FromList(vals...), nil
	}
}

// scalar types a scalar token. Quoted text is a String; true and false are
// Bools; integers are Int32 when they fit in 32 bits and Int64 otherwise;
// decimals are Float64. Any other word is kept as a String.
func scalar(t *token.Token) *ir.Value {
	s := t.String()
	switch t.Type {
	case token.TString:
		return ir.FromString(s)
	case token.TInteger:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ir.FromString(s)
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return ir.FromInt32(int32(i))
		}
		return ir.FromInt64(i)
	case token.TFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ir.FromFloat64(f)
		}
		return ir.FromString(s)
	}
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ir.FromFloat64(f)
		}
	}
	return ir.FromString(s)
}

func (p *parser) trackValue(v *ir.Value, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions.Values[v] = pos
	}
}

func (p *parser) trackBranch(b *ir.Branch, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions.Branches[b] = pos
	}
}
