package da

import "math"

// seriesPow computes the Taylor coefficients, in the formal variable s, of
// u(s)^p truncated to degree n, where u is given as its own Taylor
// coefficients u[0], u[1], ... (missing/short entries are treated as zero)
// and u[0] must be nonzero.
//
// This is the standard "power of a power series" recurrence: writing
// w = (u/u[0])^p (so w[0]=1), differentiating w*u0^{-p}... logarithmically
// gives k*w[k] = sum_{i=1}^{k} (p*i - (k-i)) * (u[i]/u[0]) * w[k-i]. The
// result is then rescaled by u[0]^p.
//
// Used to generate the local Taylor expansion of sqrt, reciprocal (division),
// and the derivative series of atan/asin/acos around a constant part,
// avoiding a hand-derived closed form for each.
func seriesPow(u []float64, p float64, n int) []float64 {
	u0 := u[0]
	uu := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		if i < len(u) {
			uu[i] = u[i] / u0
		}
	}

	w := make([]float64, n+1)
	w[0] = 1
	for k := 1; k <= n; k++ {
		var sum float64
		for i := 1; i <= k; i++ {
			sum += (p*float64(i) - float64(k-i)) * uu[i] * w[k-i]
		}
		w[k] = sum / float64(k)
	}

	u0p := math.Pow(u0, p)
	out := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		out[k] = w[k] * u0p
	}

	return out
}

// factorial returns k! as a float64. Orders used by DA are small, so this
// plain iterative product is adequate.
func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}

	return f
}

// composeElementary builds sum_{k=0}^{order} coeffs[k] * (x - Cons(x))^k,
// i.e. composes a scalar elementary function - given as its own Taylor
// coefficients about Cons(x) - with the DA x. This is the single mechanism
// behind every one of package da's transcendental functions: the caller only
// has to supply the scalar Taylor table, not a DA-level implementation.
func composeElementary(x DA, coeffs []float64) DA {
	c := Cons(x)
	cDA, _ := Const(c) // x is already initialized, so this cannot fail
	eps := Sub(x, cDA)

	one, _ := Const(1.0)
	result, _ := Const(coeffs[0])
	epsPow := one
	for k := 1; k < len(coeffs); k++ {
		epsPow = Mul(epsPow, eps)
		if IsZero(epsPow) {
			break
		}
		result = Add(result, Scale(epsPow, coeffs[k]))
	}

	return result
}
