// Package poset builds validated posets from user text.
//
// A [Poset] is a list of elements plus a list of declared relations
// "Lower < Upper". Relations need not be minimal or transitive; turning
// them into covering relations is the job of pkg/core/dag/transform.
//
// # Building
//
// [ParseInput] reads two free-form text fields:
//
//	elements:  "a, b, c, d"
//	relations: "a < b
//	            b, c
//	            a < d"
//
// Each relation line uses either the "A < B" or the "A,B" form. Blank
// lines are skipped, everything else that matches neither form is an
// INVALID_FORMAT error, and endpoints must be declared elements.
//
// [GenerateDivisibility] builds the divisibility order over a list of
// positive integers: a is below b when a divides b and a ≠ b.
//
// # Examples
//
// A small table of example posets is embedded in the binary. [Examples]
// and [ExampleByName] return copies, so callers may modify them freely.
//
// # Errors
//
// All builder failures are *errors.Error values with one of the codes
// EMPTY_INPUT, INVALID_FORMAT, UNKNOWN_ELEMENT, INVALID_NUMBER or
// INVALID_INPUT. Builders never panic on user input.
package poset
