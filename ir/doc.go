// Package ir provides the document tree for Versa documents.
//
// # Overview
//
// A document is a tree of Branches. The root of a parsed document is an
// unnamed Branch; every other Branch is a named section. A Branch holds
// typed Values under unique keys, child Branches, and the presentation of
// its contents: standalone comments and blank lines.
//
// # Order
//
// The rendering order of a Branch is a list of Entries, a tagged union over
// value, branch, comment and blank line. The order is the single source of
// truth for presentation. The value and child indexes of a Branch are
// derived from it and every mutator in this package keeps them in sync.
//
// Comments attached to a Branch's braces (StartOfBranch, EndOfBranch) and to
// a Value's line (InlineValue) live on the Branch or Value, not in any
// order.
//
// # Values
//
// A Value's Kind selects which payload field is meaningful:
//
//   - Int32, Int64: Int
//   - Bool: Int, 0 or 1
//   - Float32, Float64: Float
//   - String: String
//   - List: List, a list of unnamed Values
//   - ListOfBranches: Branches
//
// # Lookup
//
// Resolve follows a dot path through child Branches by name, taking the
// first child of each name. FindAnywhere searches a whole subtree for a key
// regardless of Branch names. Neither treats absence as an error; the typed
// getters (GetString, GetIntOr, ...) build on Resolve.
//
// # Editing
//
// The construction API (NewBranch, Set, AddBranch, AddLineComment, ...)
// appends to the order. A Cursor, obtained from Before, After,
// BeforeBranch, AfterBranch, Start or End, splices comments and blank lines
// at a position without disturbing existing entries.
//
// Clone produces a fully detached copy of a Branch or a Value.
package ir
