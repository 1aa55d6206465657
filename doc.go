// Package finitediff finds the order of linear finite-difference expressions.
//
// An expression is a sum of terms like "-2.5*d^3u(x-2h)", meaning -2.5 times
// the third forward difference of u starting at x-2h. "du(x)" is
// u(x+h)-u(x), and "u(x+h)" is a plain value. Evaluating an expression
// combines its terms into a single Difference, a weighted sum of values of u
// at points evenly spaced by h. Terms that cancel at the ends of the sum lower
// the order of the result, so
//
//	d^2u(x) - u(x+2h)
//
// has order 1, not 2.
//
// Errors from parsing report exactly which summand of the input was invalid,
// and distinguish malformed text from numbers that are too large.
package finitediff
