// Package eval implements the polymorphic evaluator: a single
// traversal, generic over the value domain T, that walks a chromosome's
// active nodes in ascending id order and applies each node's basis function
// to its already-resolved operands.
//
// Three concrete instantiations are exported - Numeric (T=float64),
// Differential (T=da.DA) and Symbolic (T=string) - each supplying the
// per-domain "apply" closure that picks the matching overload off a
// *basis.Function. Levels-back guarantees a node's column strictly exceeds
// its operands' columns, so ascending-id order is always a valid evaluation
// order; no topological sort is needed.
package eval
