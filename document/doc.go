// Package document indexes parsed trees for structural queries.
//
// A [Document] is an ordered forest of top level trees.  Nodes are
// addressed by a [Path] of child indices starting from a virtual root
// whose children are the top level trees, so [0] is the first tree and
// [0][2] is the third child of the first tree.
package document
