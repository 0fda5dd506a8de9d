package expr

import (
	"fmt"
	"math/rand"

	"github.com/dcgp-go/dcgp/activity"
	"github.com/dcgp-go/dcgp/bounds"
	"github.com/dcgp-go/dcgp/funcset"
)

// New allocates the bound vectors for (n,m,r,c,l,fns), draws a uniformly
// random chromosome within those bounds using a PRNG seeded by seed (or
// overridden via WithRand), and runs the activity analyzer.
//
// n, m, r, c, l must all be >= 1 and fns must be non-empty; any violation
// raises ErrInvalidInput.
func New(n, m, r, c, l int, fns funcset.Set, seed int64, opts ...Option) (*Expression, error) {
	b, err := bounds.ComputeBounds(n, m, r, c, l, fns.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cfg := &config{rng: rand.New(rand.NewSource(seed))}
	for _, opt := range opts {
		opt(cfg)
	}

	chromosome := make([]int, b.Len())
	for i := range chromosome {
		chromosome[i] = b.Lower[i] + cfg.rng.Intn(b.Upper[i]-b.Lower[i]+1)
	}

	e := &Expression{
		n: n, m: m, r: r, c: c, l: l,
		fns:        fns,
		bnds:       b,
		chromosome: chromosome,
		rng:        cfg.rng,
	}
	e.active = activity.Compute(e.chromosome, e.n, e.r, e.c, e.m, e.fns)

	return e, nil
}

// recomputeActive refreshes e.active from e.chromosome. Callers must already
// hold e.mu for writing.
func (e *Expression) recomputeActive() {
	e.active = activity.Compute(e.chromosome, e.n, e.r, e.c, e.m, e.fns)
}
