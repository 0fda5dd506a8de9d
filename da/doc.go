// Package da implements the differential-algebra (truncated multivariate
// power series) backend consumed by package expr and package basis.
//
// A DA value represents a function of the process-wide variable count
// Vars(), truncated to total degree Order(). Constructing one from a point
// and composing it through +, -, *, / and the elementary transcendentals
// yields, in its low-order terms, every partial derivative of the composed
// expression at that point up to Order() — this is what lets package expr
// extract derivatives without symbolic differentiation.
//
// Process-wide state (Order, Vars) is established once via Init and never
// changed afterward; see the comment on the package-level config variables
// for the concurrency contract.
package da
