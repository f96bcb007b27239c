package encode

import (
	"bytes"
	"os"

	"github.com/versa-format/versa/ir"
)

// WriteFile renders b to the file at path, creating or truncating it.
func WriteFile(b *ir.Branch, path string, opts ...EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := Encode(b, buf, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
