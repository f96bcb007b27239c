// Package encode renders Versa document trees as text.
//
// # Usage
//
//	// Render a document
//	err := encode.Encode(root, os.Stdout)
//
//	// Render with colors, two spaces per depth
//	err := encode.Encode(root, os.Stdout,
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.Indent(2))
//
//	// Render to a string
//	s := encode.MustString(root)
//
// Entries are written in order, one per line. Indentation is normalized to a
// fixed number of spaces per depth; comments, blank lines and element order
// are written as they are in the tree.
//
// # Related Packages
//
//   - github.com/versa-format/versa/ir - document tree
//   - github.com/versa-format/versa/parse - parse text to a document tree
package encode
