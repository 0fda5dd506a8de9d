// Package expr implements Expression, the central d-CGP genome type: a
// bounded chromosome, its derived active-node/active-gene sets, and three
// coupled operations - numeric/symbolic/derivative evaluation, and
// single-gene mutation restricted to active genes.
//
// An Expression owns its mutable state (chromosome, active set, PRNG)
// exclusively and guards it with a sync.RWMutex: concurrent read-only
// evaluation from disjoint input buffers is safe, but Set and MutateActive
// require exclusive access. The DA library (package da) is a process-wide
// external collaborator; its Init must be called once before any
// Expression's differentiation methods are used.
package expr
