// Package ir provides the trees produced by the reader.
//
// # Overview
//
// A tree is made of [Node] values.  A node is either a leaf, holding the
// literal text of a token exactly as it appears in the source (escape
// runes included), or an inner node produced by a syntax element: an
// encloser, a symmetric encloser or an operator.  Inner nodes record the
// element which produced them, the element's tag and their ordered
// children.
//
// Every node carries the half open byte span it covers in its source.  An
// inner node's span contains its children's spans, which are ordered and
// do not overlap.  An encloser's span runs from the start of its opening
// token to the end of its closing token.  An operator's span runs from the
// start of its first left operand (or its own token when it has none) to
// the end of its last right operand (or its own token when it has none).
//
// Nodes keep parent links so that a node's structural path can be
// recovered without a search.
package ir
