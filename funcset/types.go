package funcset

import (
	"golang.org/x/exp/slices"

	"github.com/dcgp-go/dcgp/basis"
)

// Set is an ordered, deduplicated collection of basis-function handles.
// Element identity is by pointer: two *basis.Function values are the same
// element iff they point at the same underlying Function. The zero value is
// an empty, usable Set.
type Set struct {
	fns []*basis.Function
}

// New builds a Set from the given handles, in order, deduplicating as each
// one is pushed.
func New(fns ...*basis.Function) Set {
	var s Set
	for _, fn := range fns {
		s.Push(fn)
	}

	return s
}

// Push appends fn unless it is already present (by pointer identity), in
// which case the call is a no-op.
func (s *Set) Push(fn *basis.Function) {
	if fn == nil || s.Contains(fn) {
		return
	}
	s.fns = append(s.fns, fn)
}

// Contains reports whether fn is already a member of s.
func (s Set) Contains(fn *basis.Function) bool {
	return slices.Contains(s.fns, fn)
}

// Union returns a new Set that is the left-biased deduplicated concatenation
// of s and other: every element of s, in order, followed by every element of
// other not already present.
func (s Set) Union(other Set) Set {
	out := New(s.fns...)
	for _, fn := range other.fns {
		out.Push(fn)
	}

	return out
}

// Len returns the number of elements in s.
func (s Set) Len() int {
	return len(s.fns)
}

// At returns the i'th handle in insertion order. It panics if i is out of
// range, matching slice indexing semantics.
func (s Set) At(i int) *basis.Function {
	return s.fns[i]
}

// Slice returns the handles in insertion order. The returned slice is a copy;
// mutating it does not affect s.
func (s Set) Slice() []*basis.Function {
	out := make([]*basis.Function, len(s.fns))
	copy(out, s.fns)

	return out
}

// Names returns the Name field of each member, in insertion order. The dump
// report renders this list as "[n1, n2, ...]".
func (s Set) Names() []string {
	names := make([]string, len(s.fns))
	for i, fn := range s.fns {
		names[i] = fn.Name
	}

	return names
}
