// Package encode renders trees read by package parse.
//
// Three formats are supported:
//
//   - [SexpFormat] renders each tree on one line as a parenthesized list
//     headed by the node's tag, "(PLUS 1 2)".  With [EncodeTokens] the
//     element's own tokens are used instead, "1 + 2".
//   - [TreeFormat] renders one node per line, indented by depth, with the
//     node's type, tag and tokens.  It is the format compared by package
//     libdiff.
//   - [JSONFormat] renders the trees as a JSON array.
//
// Output may be colored with [EncodeColors].
package encode
