// Package dcgp is the root of a differentiable Cartesian Genetic
// Programming (d-CGP) evaluation and mutation engine: it represents a
// mathematical program as an integer-encoded, fixed-topology acyclic graph
// (a "chromosome") and evaluates it over three coupled value domains -
// numeric, symbolic, and a truncated-power-series differential algebra that
// yields arbitrary-order partial derivatives.
//
// The engine is organized into single-concern subpackages rather than one
// flat package:
//
//	basis/    — elementary operator registry (numeric/DA/symbolic overloads)
//	funcset/  — ordered, deduplicated function-set collections and presets
//	bounds/   — per-gene chromosome bound computation and validation
//	da/       — the differential-algebra backend (truncated power series)
//	activity/ — active-node/active-gene reachability analysis
//	eval/     — the polymorphic active-subgraph evaluator
//	expr/     — Expression, the genome type tying everything together
//	cachekey/ — content-addressed chromosome fingerprinting
//
// expr.Expression is the package most callers want; see its doc comment for
// construction, mutation, and differentiation.
package dcgp
