package expr

import (
	"fmt"

	"github.com/dcgp-go/dcgp/bounds"
)

// Set validates x against e's bounds and, if valid, replaces the
// chromosome atomically and recomputes the active set. On validation
// failure, e is left unchanged and ErrInvalidInput is returned.
func (e *Expression) Set(x []int) error {
	if err := bounds.Validate(x, e.bnds); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.chromosome = append([]int(nil), x...)
	e.recomputeActive()

	return nil
}

// Get returns a copy of the current chromosome.
func (e *Expression) Get() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]int(nil), e.chromosome...)
}

// ActiveNodes returns a copy of the current active-node set, sorted
// ascending and duplicate-free.
func (e *Expression) ActiveNodes() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]int(nil), e.active.Nodes...)
}

// ActiveGenes returns a copy of the current active-gene set, sorted
// ascending and duplicate-free.
func (e *Expression) ActiveGenes() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]int(nil), e.active.Genes...)
}
