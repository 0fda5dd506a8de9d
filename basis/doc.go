// Package basis defines the d-CGP basis-function registry: the small set of
// elementary operators (sum, diff, mul, div, sqrt, pow, exp, log, and the
// trigonometric/hyperbolic family) that a chromosome's function genes index
// into.
//
// Each *Function bundles three overloads of the same mathematical operation:
// a numeric one (float64), a differential-algebra one (da.DA, for extracting
// derivatives) and a symbolic one (string, with optional local algebraic
// simplification). Its Arity tag tells the activity analyzer and evaluator
// how many of the two operand slots actually matter.
//
// Predefined functions are package-level *Function values with static
// lifetime, to be referenced by pointer identity (never copied) - this is
// what lets package funcset deduplicate a Set by pointer equality.
package basis
