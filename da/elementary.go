// elementary.go implements the transcendental operations of the DA backend
// contract. Every function here reduces to composeElementary
// plus a small scalar Taylor-coefficient table, following the technique
// hinted at by the original C++ implementation's "factorial" helper in
// expression.cpp: f^(k)(c)/k!, evaluated once at the constant part and then
// composed with the nilpotent remainder of the DA.
package da

import "math"

// absVal folds x to a DA whose constant part is positive, returning an error
// if the constant part is exactly zero (the shared precondition of sqrt, log
// and pow).
func absVal(x DA) (DA, error) {
	c := Cons(x)
	switch {
	case c > 0:
		return x, nil
	case c < 0:
		return Neg(x), nil
	default:
		return DA{}, ErrDerivativeUndefined
	}
}

// Exp returns e^x.
func Exp(x DA) DA {
	c := Cons(x)
	ord := Order()
	coeffs := make([]float64, ord+1)
	ec := math.Exp(c)
	coeffs[0] = ec
	for k := 1; k <= ord; k++ {
		coeffs[k] = coeffs[k-1] / float64(k)
	}

	return composeElementary(x, coeffs)
}

// Log returns the DA expansion of log(|x|); an error is raised when x's
// constant part is zero, where the derivative of log does not exist.
func Log(x DA) (DA, error) {
	y, err := absVal(x)
	if err != nil {
		return DA{}, err
	}
	m := Cons(y)
	ord := Order()
	coeffs := make([]float64, ord+1)
	coeffs[0] = math.Log(m)
	for k := 1; k <= ord; k++ {
		coeffs[k] = math.Pow(-1, float64(k-1)) / (float64(k) * math.Pow(m, float64(k)))
	}

	return composeElementary(y, coeffs), nil
}

// Sqrt returns the DA expansion of sqrt(|x|); an error is raised when x's
// constant part is zero.
func Sqrt(x DA) (DA, error) {
	y, err := absVal(x)
	if err != nil {
		return DA{}, err
	}
	m := Cons(y)
	coeffs := seriesPow([]float64{m, 1}, 0.5, Order())

	return composeElementary(y, coeffs), nil
}

// Pow returns |x|^y, computed as exp(y*log(|x|)) (matching the original
// implementation's negative-base convention exactly). An error is raised
// when x's constant part is zero.
func Pow(x, y DA) (DA, error) {
	if Cons(x) == 0 {
		return DA{}, ErrDerivativeUndefined
	}
	ax, err := absVal(x)
	if err != nil {
		return DA{}, err
	}
	lx, err := Log(ax)
	if err != nil {
		return DA{}, err
	}

	return Exp(Mul(y, lx)), nil
}

// Div returns a/b; an error is raised when b's constant part is zero.
func Div(a, b DA) (DA, error) {
	bc := Cons(b)
	if bc == 0 {
		return DA{}, ErrDerivativeUndefined
	}
	invCoeffs := seriesPow([]float64{bc, 1}, -1, Order())
	invB := composeElementary(b, invCoeffs)

	return Mul(a, invB), nil
}

// trigCoeffs builds the Taylor table for a function whose derivatives at c
// cycle through a fixed sequence of scalar values (e.g. sin/cos/sinh/cosh).
func trigCoeffs(cycle []float64) []float64 {
	ord := Order()
	coeffs := make([]float64, ord+1)
	period := len(cycle)
	for k := 0; k <= ord; k++ {
		coeffs[k] = cycle[k%period] / factorial(k)
	}

	return coeffs
}

// Sin returns sin(x).
func Sin(x DA) DA {
	c := Cons(x)
	return composeElementary(x, trigCoeffs([]float64{math.Sin(c), math.Cos(c), -math.Sin(c), -math.Cos(c)}))
}

// Cos returns cos(x).
func Cos(x DA) DA {
	c := Cons(x)
	return composeElementary(x, trigCoeffs([]float64{math.Cos(c), -math.Sin(c), -math.Cos(c), math.Sin(c)}))
}

// Tan returns sin(x)/cos(x); an error is raised where cos(x)'s constant
// part is zero.
func Tan(x DA) (DA, error) {
	return Div(Sin(x), Cos(x))
}

// Sinh returns sinh(x).
func Sinh(x DA) DA {
	c := Cons(x)
	return composeElementary(x, trigCoeffs([]float64{math.Sinh(c), math.Cosh(c)}))
}

// Cosh returns cosh(x).
func Cosh(x DA) DA {
	c := Cons(x)
	return composeElementary(x, trigCoeffs([]float64{math.Cosh(c), math.Sinh(c)}))
}

// Tanh returns sinh(x)/cosh(x). cosh's constant part is never zero for a
// real argument, so this never errors, but keeps Div's signature for
// uniformity with Tan.
func Tanh(x DA) (DA, error) {
	return Div(Sinh(x), Cosh(x))
}

// Atan returns atan(x), obtained by integrating the Taylor series of its
// derivative 1/(1+x^2) term by term about x's constant part.
func Atan(x DA) DA {
	c := Cons(x)
	ord := Order()
	base := []float64{1 + c*c, 2 * c, 1}
	deriv := seriesPow(base, -1, ord)
	coeffs := make([]float64, ord+1)
	coeffs[0] = math.Atan(c)
	for k := 0; k < ord; k++ {
		coeffs[k+1] = deriv[k] / float64(k+1)
	}

	return composeElementary(x, coeffs)
}

// Asin returns asin(x), obtained by integrating the Taylor series of its
// derivative 1/sqrt(1-x^2) term by term about x's constant part. An error is
// raised when |Cons(x)| >= 1, where the derivative does not exist.
func Asin(x DA) (DA, error) {
	c := Cons(x)
	if math.Abs(c) >= 1.0 {
		return DA{}, ErrDerivativeUndefined
	}
	ord := Order()
	base := []float64{1 - c*c, -2 * c, -1}
	deriv := seriesPow(base, -0.5, ord)
	coeffs := make([]float64, ord+1)
	coeffs[0] = math.Asin(c)
	for k := 0; k < ord; k++ {
		coeffs[k+1] = deriv[k] / float64(k+1)
	}

	return composeElementary(x, coeffs), nil
}

// Acos returns acos(x) = pi/2 - asin(x). An error is raised when
// |Cons(x)| >= 1.
func Acos(x DA) (DA, error) {
	c := Cons(x)
	if math.Abs(c) >= 1.0 {
		return DA{}, ErrDerivativeUndefined
	}
	asinX, err := Asin(x)
	if err != nil {
		return DA{}, err
	}
	halfPi, _ := Const(math.Pi / 2)

	return Sub(halfPi, asinX), nil
}
