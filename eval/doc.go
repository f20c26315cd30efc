// Package eval selects nodes of a document with boolean expressions.
//
// Expressions are compiled with github.com/expr-lang/expr and evaluated
// once per node against an environment describing it:
//
//	tag       the node's tag, "" for leaves
//	kind      "Leaf", "Encloser", "SymmetricEncloser" or "Operator"
//	text      the text of a leaf, "" otherwise
//	token     the opening token of an inner node, the text of a leaf
//	depth     the number of ancestors
//	start     the start offset of the node's span
//	end       the end offset of the node's span
//	children  the number of children
//	leaf      whether the node is a leaf
//	path      the node's document path, "[0][1]"
//	parent    the parent's tag, "" for roots
//
// and the functions
//
//	hasChild(tag)        whether some child has the tag
//	within(start, end)   whether the node's span lies within [start, end]
//	getenv(name)         an environment variable
//
// For example
//
//	kind == "Operator" && depth > 0
//	leaf && text matches "^[0-9]+$"
package eval
