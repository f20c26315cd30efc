// Package syntax describes the grammar a reader scans with.
//
// # Overview
//
// A grammar is a graph of named contexts.  Each context lists the tags of
// the syntax elements that may open inside it, the runes it treats as
// whitespace, and an optional escape rune.  Every element names the
// context that is active for its children, so a grammar can switch to a
// different sub grammar inside, say, a string literal.
//
// # Elements
//
// There are exactly three kinds of element:
//
//   - [Encloser]: an opening token and a distinct closing token, as in "(" ... ")".
//   - [SymmetricEncloser]: one token which both opens and closes, as in "|" ... "|".
//   - [Operator]: a token taking a fixed number of already read expressions
//     on its left and of following expressions on its right, as the
//     prefix quote "'" (0, 1) or infix "+" (1, 1).
//
// # Construction
//
// Grammars are built with a [Builder] and frozen by [Builder.Build].  A
// built [Graph] is immutable and may be shared by any number of concurrent
// parses.
//
//	g, err := syntax.NewBuilder("root").
//		Context(syntax.ContextDef{Name: "root", Tags: []syntax.Tag{"", "PLUS"}, Whitespace: " \n\t\r"}).
//		Encloser("", "(", ")", "root").
//		Operator("PLUS", "+", 1, 1, "root").
//		Build()
package syntax
