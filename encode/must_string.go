package encode

import (
	"bytes"
	"io"

	"github.com/versa-format/versa/ir"
)

// MustString renders b and panics on error. Encoding to memory only fails
// on a tree that is not well formed.
func MustString(b *ir.Branch, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(b, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// ValueString renders the payload of v as it appears after the assignment
// glyph and panics where EncodeValue would fail.
func ValueString(v *ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// EncodeValue writes the payload of v to w as it appears after the
// assignment glyph.
func EncodeValue(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	return encodeValue(v, w, newEncState(opts))
}
