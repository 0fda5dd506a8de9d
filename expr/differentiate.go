package expr

import (
	"fmt"

	"github.com/dcgp-go/dcgp/da"
	"github.com/dcgp-go/dcgp/eval"
)

// DifferentiateSeed evaluates the expression over the DA value domain,
// seeding in_da[i] = in[i] + DA.identity(i+1) so that the resulting m DA
// outputs carry every partial derivative up to the DA backend's configured
// order at the point in. da.Init must already have been called.
//
// Callers that need several (wrt) combinations at the same point should
// cache the result and feed it to DifferentiatePartial repeatedly, rather
// than reseeding for every query.
func (e *Expression) DifferentiateSeed(in []float64) ([]da.DA, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(in) != e.n {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrInvalidInput, len(in), e.n)
	}

	inDA := make([]da.DA, e.n)
	for i, v := range in {
		c, err := da.Const(v)
		if err != nil {
			return nil, err
		}
		id, err := da.Identity(i + 1)
		if err != nil {
			return nil, err
		}
		inDA[i] = da.Add(c, id)
	}

	out, err := eval.Differential(e.chromosome, e.n, e.r, e.c, e.m, e.fns, e.active, inDA)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DifferentiatePartial extracts, for each output in exp, the mixed partial
// derivative with respect to the variables named by wrt (0-based, applied in
// order), evaluated at the point exp was seeded at. Each wrt entry must lie
// in [0, n).
func (e *Expression) DifferentiatePartial(wrt []int, exp []da.DA) ([]float64, error) {
	n := e.N()
	result := append([]da.DA(nil), exp...)

	for _, i := range wrt {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: derivative index %d out of [0,%d)", ErrInvalidInput, i, n)
		}
		for j, d := range result {
			nd, err := da.Deriv(d, i+1)
			if err != nil {
				return nil, err
			}
			result[j] = nd
		}
	}

	out := make([]float64, len(result))
	for j, d := range result {
		out[j] = da.Cons(d)
	}

	return out, nil
}

// Differentiate is the convenience composition DifferentiatePartial(wrt,
// DifferentiateSeed(in)). Prefer calling DifferentiateSeed once and
// DifferentiatePartial per wrt when evaluating several derivatives at the
// same point.
func (e *Expression) Differentiate(wrt []int, in []float64) ([]float64, error) {
	exp, err := e.DifferentiateSeed(in)
	if err != nil {
		return nil, err
	}

	return e.DifferentiatePartial(wrt, exp)
}
