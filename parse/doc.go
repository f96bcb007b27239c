// Package parse parses Versa text into document trees.
//
// # Usage
//
//	// Parse a document
//	root, err := parse.Parse([]byte("port = 3306\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse a file; errors name the file
//	root, err := parse.ParseFile("app.versa")
//
//	// Recover from malformed input instead of failing
//	root, err := parse.ParseString(text, parse.Lenient(true))
//
// The parser keeps standalone comments, blank lines and element order in
// the tree. A comment on the same line as a value, a '{' or a '}' is
// attached to that value or branch instead.
//
// By default malformed input is an error wrapping ErrParse, reported as an
// *Error carrying the position.
//
// # Related Packages
//
//   - github.com/versa-format/versa/ir - document tree
//   - github.com/versa-format/versa/encode - render a document tree
//   - github.com/versa-format/versa/token - tokenization
package parse
