// Package bounds computes and validates the per-gene lower/upper bound
// vectors of a d-CGP chromosome from its construction parameters
// (n, m, r, c, l, numFuncs): a function gene followed by two operand genes
// for each of the r*c internal nodes, then m output genes.
package bounds
