package eval

import (
	"fmt"

	"github.com/dcgp-go/dcgp/activity"
	"github.com/dcgp-go/dcgp/basis"
	"github.com/dcgp-go/dcgp/da"
	"github.com/dcgp-go/dcgp/funcset"
)

// applyFunc resolves one node's value given its basis function and its two
// (arity-dependent) already-resolved operand values. Unused operand slots
// are passed as T's zero value.
type applyFunc[T any] func(fn *basis.Function, a, b T) (T, error)

// run is the shared traversal: it walks active.Nodes ascending, seeding
// input nodes (k < n) from in and computing internal nodes (k >= n) via
// apply, then extracts the m output values. It is not exported; each value
// domain gets its own apply closure and its own exported wrapper below.
func run[T any](x []int, n, r, c, m int, fns funcset.Set, act activity.Result, in []T, apply applyFunc[T]) ([]T, error) {
	if len(in) != n {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrInvalidInput, len(in), n)
	}

	val := make(map[int]T, len(act.Nodes))
	for _, k := range act.Nodes {
		if k < n {
			val[k] = in[k]
			continue
		}
		idx := (k - n) * 3
		fn := fns.At(x[idx])

		var a, b T
		switch fn.Arity {
		case basis.Unary:
			a = val[x[idx+1]]
		case basis.Binary:
			a = val[x[idx+1]]
			b = val[x[idx+2]]
		}

		v, err := apply(fn, a, b)
		if err != nil {
			return nil, err
		}
		val[k] = v
	}

	rc := r * c
	out := make([]T, m)
	for i := 0; i < m; i++ {
		out[i] = val[x[3*rc+i]]
	}

	return out, nil
}

// Numeric evaluates x over T=float64. The numeric path is total: no basis
// function's EvalNum ever returns an error, so this call cannot fail for
// reasons other than a mismatched input length.
func Numeric(x []int, n, r, c, m int, fns funcset.Set, act activity.Result, in []float64) ([]float64, error) {
	return run(x, n, r, c, m, fns, act, in, func(fn *basis.Function, a, b float64) (float64, error) {
		return fn.EvalNum(a, b), nil
	})
}

// Differential evaluates x over T=da.DA, surfacing da.ErrDerivativeUndefined
// when a basis function's closed-form derivative does not exist at the
// operands supplied.
func Differential(x []int, n, r, c, m int, fns funcset.Set, act activity.Result, in []da.DA) ([]da.DA, error) {
	return run(x, n, r, c, m, fns, act, in, func(fn *basis.Function, a, b da.DA) (da.DA, error) {
		return fn.EvalDA(a, b)
	})
}

// Symbolic evaluates x over T=string, propagating simplify to every basis
// function's symbolic overload.
func Symbolic(x []int, n, r, c, m int, fns funcset.Set, act activity.Result, in []string, simplify bool) ([]string, error) {
	return run(x, n, r, c, m, fns, act, in, func(fn *basis.Function, a, b string) (string, error) {
		return fn.EvalSym(a, b, simplify), nil
	})
}
