package da

import (
	"strconv"
	"strings"
	"sync"
)

// config holds the process-wide, write-once DA parameters.
//
// Concurrency: guarded by mu; Init is the only writer and is expected to run
// once during process startup, establishing the truncation order and
// variable count for every DA value created afterward.
var (
	mu          sync.Mutex
	initialized bool
	order       int
	vars        int
)

// Init establishes the truncation order and variable count for every DA
// value subsequently constructed. It is idempotent when called again with
// identical parameters (a defensive refinement over "undefined behavior" for
// a mid-run re-init), and returns ErrAlreadyInitialized otherwise.
//
// order must be >= 0 and vars must be >= 1.
func Init(initOrder, initVars int) error {
	if initOrder < 0 || initVars < 1 {
		return ErrInvalidVariable
	}

	mu.Lock()
	defer mu.Unlock()

	if initialized {
		if order == initOrder && vars == initVars {
			return nil
		}
		return ErrAlreadyInitialized
	}
	order = initOrder
	vars = initVars
	initialized = true

	return nil
}

// Order reports the configured truncation order (0 if not yet initialized).
func Order() int {
	mu.Lock()
	defer mu.Unlock()

	return order
}

// Vars reports the configured number of independent variables (0 if not yet
// initialized).
func Vars() int {
	mu.Lock()
	defer mu.Unlock()

	return vars
}

// term is one monomial of a DA: coeff * prod_i x_i^exp[i].
type term struct {
	exp   []int
	coeff float64
}

// DA is a truncated multivariate power series (differential algebra value).
// The zero DA (DA{}) is the constant zero; all DA values in normal
// circulation are produced by Const, Identity, or an arithmetic operation.
type DA struct {
	terms map[string]term
}

// key canonically encodes an exponent vector so equal exponents compare equal
// as map keys regardless of how they were produced.
func key(exp []int) string {
	var b strings.Builder
	for i, e := range exp {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}

func zeroExp() []int {
	return make([]int, vars)
}

func degree(exp []int) int {
	d := 0
	for _, e := range exp {
		d += e
	}

	return d
}

// Const returns the DA representing the constant value v.
func Const(v float64) (DA, error) {
	if !initialized {
		return DA{}, ErrNotInitialized
	}
	d := DA{terms: make(map[string]term, 1)}
	if v != 0 {
		e := zeroExp()
		d.terms[key(e)] = term{exp: e, coeff: v}
	}

	return d, nil
}

// Identity returns the DA for the i-th independent variable (1-based,
// i in [1, vars]).
func Identity(i int) (DA, error) {
	if !initialized {
		return DA{}, ErrNotInitialized
	}
	if i < 1 || i > vars {
		return DA{}, ErrInvalidVariable
	}
	e := zeroExp()
	e[i-1] = 1
	d := DA{terms: map[string]term{key(e): {exp: e, coeff: 1.0}}}

	return d, nil
}

// Cons returns the constant part of d (the coefficient of the zero monomial).
func Cons(d DA) float64 {
	if d.terms == nil {
		return 0
	}
	if t, ok := d.terms[key(zeroExp())]; ok {
		return t.coeff
	}

	return 0
}

// Deriv returns d'/dx_i, the DA representing the partial derivative of d
// with respect to the i-th independent variable (1-based).
func Deriv(d DA, i int) (DA, error) {
	if i < 1 || i > vars {
		return DA{}, ErrInvalidVariable
	}
	out := DA{terms: make(map[string]term, len(d.terms))}
	for _, t := range d.terms {
		k := t.exp[i-1]
		if k == 0 {
			continue
		}
		ne := make([]int, len(t.exp))
		copy(ne, t.exp)
		ne[i-1] = k - 1
		out.terms[key(ne)] = term{exp: ne, coeff: t.coeff * float64(k)}
	}

	return out, nil
}
