// Package activity computes, for a chromosome, the set of active nodes and
// active genes: the minimal subset of the graph that actually contributes to
// at least one output, closed under arity-aware operand traversal.
//
// The traversal processes the worklist in whole generations - appending the
// current worklist to the active-node set, then building the next worklist
// from the arity-dependent operands of every non-input node just visited -
// rather than a classic one-at-a-time queue, mirroring the level-batch
// do-while loop the source describes.
package activity
