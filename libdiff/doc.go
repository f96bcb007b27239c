// Package libdiff compares documents, both as rendered text and as data.
//
// [Lines] and [Unified] diff text line by line. [Diff] compares the data of
// two branches, ignoring comments and layout, and produces changes which
// may be reversed with [Reverse] and applied with [Apply].
package libdiff
