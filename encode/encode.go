package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the entries of b to w, one per line. The braces and name of
// b itself are not written: b is rendered as a document.
func Encode(b *ir.Branch, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if b == nil {
		return fmt.Errorf("%w: nil branch", ErrEncoding)
	}
	return encodeBody(b, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", es.indent*depth)
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func encodeBody(b *ir.Branch, w io.Writer, es *EncState) error {
	for _, e := range b.Entries() {
		var err error
		switch e.Kind {
		case ir.BlankEntry:
			err = writeString(w, "\n")
		case ir.CommentEntry:
			err = writeString(w, es.pad(es.depth)+commentString(e.Comment, ir.StringKind, es)+"\n")
		case ir.ValueEntry:
			err = encodeValueEntry(e.Value, w, es)
		case ir.BranchEntry:
			err = encodeBranchEntry(e.Branch, w, es)
		default:
			err = fmt.Errorf("%w: unknown entry kind %s", ErrEncoding, e.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func commentString(c *ir.Comment, k ir.Kind, es *EncState) string {
	return applyColor(es, k, CommentColor, c.Prefix()+c.Text)
}

func trailingComment(c *ir.Comment, k ir.Kind, es *EncState) string {
	if c == nil {
		return ""
	}
	return " " + commentString(c, k, es)
}

func keyString(key string, k ir.Kind, attr ColorAttr, es *EncState) string {
	if token.NeedsQuote(key) {
		key = token.Quote(key)
	}
	return applyColor(es, k, attr, key)
}

func encodeValueEntry(v *ir.Value, w io.Writer, es *EncState) error {
	sep := " = "
	if v.AssignGlyph() == ':' {
		sep = ": "
	}
	line := es.pad(es.depth) +
		keyString(v.Name, v.Kind, KeyColor, es) +
		applyColor(es, v.Kind, SepColor, sep)
	if err := writeString(w, line); err != nil {
		return err
	}
	if err := encodeValue(v, w, es); err != nil {
		return err
	}
	return writeString(w, trailingComment(v.Comment(), v.Kind, es)+"\n")
}

func encodeBranchEntry(b *ir.Branch, w io.Writer, es *EncState) error {
	k := ir.ListOfBranchesKind
	pad := es.pad(es.depth)
	open := pad + keyString(b.Name, k, BranchColor, es) + " " +
		applyColor(es, k, SepColor, "{") +
		trailingComment(b.StartComment(), k, es) + "\n"
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	err := encodeBody(b, w, es)
	es.depth--
	if err != nil {
		return err
	}
	return writeString(w, pad+applyColor(es, k, SepColor, "}")+trailingComment(b.EndComment(), k, es)+"\n")
}

func encodeValue(v *ir.Value, w io.Writer, es *EncState) error {
	switch v.Kind {
	case ir.ListOfBranchesKind:
		return encodeBranchList(v, w, es)
	case ir.ListKind:
		if err := writeString(w, applyColor(es, v.Kind, SepColor, "[")); err != nil {
			return err
		}
		for i, elt := range v.List {
			if i > 0 {
				if err := writeString(w, applyColor(es, v.Kind, SepColor, ",")+" "); err != nil {
					return err
				}
			}
			if err := encodeValue(elt, w, es); err != nil {
				return err
			}
		}
		return writeString(w, applyColor(es, v.Kind, SepColor, "]"))
	}
	s, err := scalarString(v)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, v.Kind, ValueColor, s))
}

// encodeBranchList writes each branch as a brace block on its own lines,
// indented one step deeper than the value's key.
func encodeBranchList(v *ir.Value, w io.Writer, es *EncState) error {
	k := v.Kind
	if len(v.Branches) == 0 {
		return writeString(w, applyColor(es, k, SepColor, "[]"))
	}
	pad := es.pad(es.depth)
	inner := es.pad(es.depth + 1)
	if err := writeString(w, applyColor(es, k, SepColor, "[")+"\n"); err != nil {
		return err
	}
	for i, b := range v.Branches {
		open := inner + applyColor(es, k, SepColor, "{") + trailingComment(b.StartComment(), k, es) + "\n"
		if err := writeString(w, open); err != nil {
			return err
		}
		es.depth += 2
		err := encodeBody(b, w, es)
		es.depth -= 2
		if err != nil {
			return err
		}
		end := inner + applyColor(es, k, SepColor, "}")
		if i < len(v.Branches)-1 {
			end += applyColor(es, k, SepColor, ",")
		}
		end += trailingComment(b.EndComment(), k, es) + "\n"
		if err := writeString(w, end); err != nil {
			return err
		}
	}
	return writeString(w, pad+applyColor(es, k, SepColor, "]"))
}

func scalarString(v *ir.Value) (string, error) {
	switch v.Kind {
	case ir.StringKind:
		return token.Quote(v.String), nil
	case ir.BoolKind:
		if v.Int != 0 {
			return "true", nil
		}
		return "false", nil
	case ir.Int32Kind, ir.Int64Kind:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.Float32Kind, ir.Float64Kind:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return "", fmt.Errorf("%w: %v has no Versa form", ErrEncoding, v.Float)
		}
		if v.Kind == ir.Float32Kind {
			return FormatFloat(v.Float, 32), nil
		}
		return FormatFloat(v.Float, 64), nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrEncoding, v.Kind)
	}
}

// FormatFloat renders f in the shortest form that reads back as the same
// float of the given bit size. For finite f the result always contains a
// '.', so it reads back as a float rather than an integer. Infinities and
// NaN have no such form and Encode rejects them.
func FormatFloat(f float64, bitSize int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i != -1 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
