// Package eval computes the variable bindings an APML document makes.
//
// Evaluation walks assignments in file order, substituting each value
// against the bindings made so far, so a later assignment may refer to
// an earlier one and a reassignment sees its own previous value.  The
// result is the final binding of every variable; nothing else of the
// document survives.
package eval
