// Package convert moves the data of Versa documents to and from JSON, YAML
// and TOML.
//
// Conversions carry data only: comments, blank lines and assignment glyphs
// are not represented in the other formats. Key order is kept for JSON and
// YAML; TOML output orders keys as the TOML encoder does.
//
// ApplyMergePatch and ApplyPatch edit a document with JSON patches while
// keeping its layout: unchanged entries keep their position and comments,
// changed values are replaced in place and new keys are appended.
package convert
