package expr

import (
	"fmt"
	"strconv"

	"github.com/dcgp-go/dcgp/eval"
)

// EvalFloat evaluates the expression numerically at in, which must have
// length n. The numeric path is total: it cannot fail for any legally
// bounded chromosome other than a mismatched input length.
func (e *Expression) EvalFloat(in []float64) ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out, err := eval.Numeric(e.chromosome, e.n, e.r, e.c, e.m, e.fns, e.active, in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return out, nil
}

// DefaultSymbols returns the canonical input symbol names "in0".."in(n-1)"
// used by EvalStringDefault.
func (e *Expression) DefaultSymbols() []string {
	syms := make([]string, e.N())
	for i := range syms {
		syms[i] = "in" + strconv.Itoa(i)
	}

	return syms
}

// EvalString evaluates the expression symbolically at in (one string per
// input slot), propagating simplify to every basis function's symbolic
// overload.
func (e *Expression) EvalString(in []string, simplify bool) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out, err := eval.Symbolic(e.chromosome, e.n, e.r, e.c, e.m, e.fns, e.active, in, simplify)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return out, nil
}

// EvalStringDefault is EvalString seeded with the canonical "in0",
// "in1", ... symbols returned by DefaultSymbols.
func (e *Expression) EvalStringDefault(simplify bool) ([]string, error) {
	return e.EvalString(e.DefaultSymbols(), simplify)
}
