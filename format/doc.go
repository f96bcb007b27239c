// Package format names the text formats a Versa document can be written in.
//
// Only VersaFormat keeps comments, blank lines and layout. The other
// formats carry data only; see package convert.
package format
