package expr

import (
	"fmt"
	"strings"

	"github.com/dcgp-go/dcgp/cachekey"
)

// Dump renders a human-readable report: construction parameters, full
// bound vectors, the current chromosome, the active-node and active-gene
// lists, and the function-set names.
func (e *Expression) Dump() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "n = %d, m = %d, r = %d, c = %d, l = %d\n", e.n, e.m, e.r, e.c, e.l)
	fmt.Fprintf(&b, "lower bounds:\t%s\n", formatInts(e.bnds.Lower))
	fmt.Fprintf(&b, "upper bounds:\t%s\n", formatInts(e.bnds.Upper))
	fmt.Fprintf(&b, "chromosome:\t%s\n", formatInts(e.chromosome))
	fmt.Fprintf(&b, "active nodes:\t%s\n", formatInts(e.active.Nodes))
	fmt.Fprintf(&b, "active genes:\t%s\n", formatInts(e.active.Genes))
	fmt.Fprintf(&b, "function set:\t%s\n", formatNames(e.fns.Names()))

	return b.String()
}

// String implements fmt.Stringer as Dump, so an Expression prints its full
// report via %v/%s in tests and debug output.
func (e *Expression) String() string {
	return e.Dump()
}

// Fingerprint returns a content-addressed digest of the current chromosome,
// for caller-side caching of DifferentiateSeed or any other per-genome
// memoization outside this package's scope.
func (e *Expression) Fingerprint() [32]byte {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return cachekey.Fingerprint(e.chromosome)
}

func formatInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
