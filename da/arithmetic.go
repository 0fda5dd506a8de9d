package da

// Add returns a+b, truncated to Order().
func Add(a, b DA) DA {
	out := DA{terms: make(map[string]term, len(a.terms)+len(b.terms))}
	for k, t := range a.terms {
		out.terms[k] = t
	}
	for k, t := range b.terms {
		if ex, ok := out.terms[k]; ok {
			c := ex.coeff + t.coeff
			if c == 0 {
				delete(out.terms, k)
				continue
			}
			out.terms[k] = term{exp: ex.exp, coeff: c}
		} else {
			out.terms[k] = t
		}
	}

	return out
}

// Neg returns -a.
func Neg(a DA) DA {
	out := DA{terms: make(map[string]term, len(a.terms))}
	for k, t := range a.terms {
		out.terms[k] = term{exp: t.exp, coeff: -t.coeff}
	}

	return out
}

// Sub returns a-b.
func Sub(a, b DA) DA {
	return Add(a, Neg(b))
}

// Scale returns a*s for a scalar s.
func Scale(a DA, s float64) DA {
	if s == 0 {
		return DA{terms: map[string]term{}}
	}
	out := DA{terms: make(map[string]term, len(a.terms))}
	for k, t := range a.terms {
		out.terms[k] = term{exp: t.exp, coeff: t.coeff * s}
	}

	return out
}

// Mul returns a*b, truncated to total degree Order() (the Cauchy product of
// the two truncated series, dropping any monomial whose combined degree
// exceeds the configured order).
func Mul(a, b DA) DA {
	out := DA{terms: make(map[string]term)}
	maxDeg := Order()
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			d := degree(ta.exp) + degree(tb.exp)
			if d > maxDeg {
				continue
			}
			ne := make([]int, len(ta.exp))
			for i := range ne {
				ne[i] = ta.exp[i] + tb.exp[i]
			}
			k := key(ne)
			c := ta.coeff * tb.coeff
			if ex, ok := out.terms[k]; ok {
				c += ex.coeff
			}
			if c == 0 {
				delete(out.terms, k)
				continue
			}
			out.terms[k] = term{exp: ne, coeff: c}
		}
	}

	return out
}

// IsZero reports whether d has no nonzero terms.
func IsZero(d DA) bool {
	return len(d.terms) == 0
}
