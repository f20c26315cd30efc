// Package parse reads position annotated trees from text against a
// grammar built with package syntax.
//
// # Overview
//
// A [Parser] scans its source one position at a time and never backtracks.
// At each position the active context, which is the child context of the
// innermost open element (or the grammar's root), decides what the text
// means:
//
//  1. after the context's escape rune, the next rune is literal;
//  2. the closing token of the innermost open encloser closes it;
//  3. otherwise the longest permitted opening token wins, ties going to
//     the most recently declared element.  A permitted encloser's closing
//     token found here is an unexpected closer;
//  4. context whitespace ends the current leaf;
//  5. anything else extends the current leaf.
//
// Operators take their left operands from the siblings already read in
// the current scope and their right operands from the expressions which
// follow, closing as soon as they have them all.  Closing cascades up
// through any operators waiting on the closed expression.
//
// [Parser.ReadNext] returns one top level tree per call.  A top level
// tree is returned once the next significant text cannot extend it, so
// "1 + 2" with an infix "+" reads as one tree while "(a) (b)" reads as
// two.
//
// # Errors
//
// Errors are [*ParseError] values wrapping [ErrUnexpectedCloser],
// [ErrOpenEncloser], [ErrMissingLeftArgument] or
// [ErrMissingRightArgument].  The first two are terminal: every later
// read returns the same error.  After a missing argument the parser drops
// its open scopes and continues after the offending token.
package parse
