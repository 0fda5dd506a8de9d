package expr

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dcgp-go/dcgp/activity"
	"github.com/dcgp-go/dcgp/bounds"
	"github.com/dcgp-go/dcgp/funcset"
)

// Option customizes Expression construction via functional arguments.
type Option func(cfg *config)

// config holds the resolved construction options. New fills rng from its
// seed argument before applying any Option.
type config struct {
	rng *rand.Rand
}

// WithRand overrides the PRNG source New would otherwise build from seed.
// A nil r is ignored. Use this to share a single *rand.Rand across several
// expressions, or to inject a non-default source in tests.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// RandomSeed returns a seed suitable for New's required seed argument when
// the caller has no reproducibility requirement of their own. It is the Go
// counterpart of the original implementation's defaulted seed parameter,
// which Go's lack of default arguments otherwise forces every caller to
// spell out explicitly.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// Expression is a d-CGP genome: a bounded chromosome plus its derived
// active-node/active-gene sets, a function set, and a private PRNG.
//
// Concurrency: guarded by mu. Evaluation methods (EvalFloat, EvalString,
// DifferentiateSeed, Differentiate, Dump, String, Get, ActiveNodes,
// ActiveGenes, Fingerprint) take a read lock; Set and MutateActive take a
// write lock. DifferentiatePartial and the parameter accessors take no lock;
// they read only fields fixed at construction.
type Expression struct {
	mu sync.RWMutex

	n, m, r, c, l int
	fns           funcset.Set
	bnds          bounds.Bounds

	chromosome []int
	active     activity.Result

	rng *rand.Rand
}

// N, M, R, C, L expose the construction parameters.
func (e *Expression) N() int { return e.n }
func (e *Expression) M() int { return e.m }
func (e *Expression) R() int { return e.r }
func (e *Expression) C() int { return e.c }
func (e *Expression) L() int { return e.l }

// Funcs returns the function set this expression's function genes index
// into.
func (e *Expression) Funcs() funcset.Set {
	return e.fns
}

// Bounds returns the per-gene lower/upper bound vectors.
func (e *Expression) Bounds() bounds.Bounds {
	return e.bnds
}
