package expr

// MutateActive picks one gene uniformly from the active-gene set and, if its
// bounds allow more than one value, replaces it with a uniformly random
// value drawn (by rejection sampling) from its bound interval excluding its
// current value. If the chosen gene's bounds are degenerate (lb == ub), the
// call is a no-op. Otherwise the active set is recomputed afterward, since
// a single gene change can grow or shrink it.
func (e *Expression) MutateActive() {
	e.mu.Lock()
	defer e.mu.Unlock()

	genes := e.active.Genes
	g := genes[e.rng.Intn(len(genes))]

	lb, ub := e.bnds.Lower[g], e.bnds.Upper[g]
	if lb == ub {
		return
	}

	current := e.chromosome[g]
	for {
		v := lb + e.rng.Intn(ub-lb+1)
		if v != current {
			e.chromosome[g] = v
			break
		}
	}

	e.recomputeActive()
}
