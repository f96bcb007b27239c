// Package token provides tokenization of versa configuration text.
//
// Tokenization is total: every input produces a token sequence and there is
// no lexical error. Whitespace separates tokens and is not emitted, while
// comments are emitted as TComment tokens so that the parser can keep them.
//
// # Usage
//
//	toks := token.Tokenize([]byte(`port = 3306 // default`))
//	for _, tok := range toks {
//	    fmt.Println(tok.Type, tok.String())
//	}
//
// # Related Packages
//
//   - github.com/versa-format/versa/parse - Parse tokens into a document tree
//   - github.com/versa-format/versa/encode - Render a document tree to text
package token
