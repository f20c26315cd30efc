// Package token holds source positions for the reader.
//
// Offsets are byte offsets into the source text. A [PosDoc] indexes the
// newlines of a source once so that offsets can be mapped to zero based
// line and column numbers, and a [Span] is a half open offset interval
// [Start, End) covering a token or a tree.
package token
