package funcset

import (
	"fmt"

	"github.com/dcgp-go/dcgp/basis"
)

// Basic is {zero, one, sum, diff, mul, div}.
var Basic = New(basis.Zero, basis.One, basis.Sum, basis.Diff, basis.Mul, basis.Div)

// Extended is {sqrt, pow, exp, log}.
var Extended = New(basis.Sqrt, basis.Pow, basis.Exp, basis.Log)

// Trig is {sin, cos, tan, asin, acos, atan}.
var Trig = New(basis.Sin, basis.Cos, basis.Tan, basis.Asin, basis.Acos, basis.Atan)

// Hyp is {sinh, cosh, tanh}.
var Hyp = New(basis.Sinh, basis.Cosh, basis.Tanh)

// All is the union of Basic, Extended, Trig and Hyp, in that order.
var All = Basic.Union(Extended).Union(Trig).Union(Hyp)

// byName maps every supported basis-function name to its handle, for
// FromNames.
var byName = map[string]*basis.Function{
	basis.Zero.Name: basis.Zero,
	basis.One.Name:  basis.One,
	basis.Sum.Name:  basis.Sum,
	basis.Diff.Name: basis.Diff,
	basis.Mul.Name:  basis.Mul,
	basis.Div.Name:  basis.Div,
	basis.Sqrt.Name: basis.Sqrt,
	basis.Pow.Name:  basis.Pow,
	basis.Exp.Name:  basis.Exp,
	basis.Log.Name:  basis.Log,
	basis.Sin.Name:  basis.Sin,
	basis.Cos.Name:  basis.Cos,
	basis.Tan.Name:  basis.Tan,
	basis.Asin.Name: basis.Asin,
	basis.Acos.Name: basis.Acos,
	basis.Atan.Name: basis.Atan,
	basis.Sinh.Name: basis.Sinh,
	basis.Cosh.Name: basis.Cosh,
	basis.Tanh.Name: basis.Tanh,
}

// FromNames builds a Set from a list of basis-function names, in order,
// for configuration-driven callers (e.g. a CLI flag or config file listing
// function names rather than importing basis handles directly). An unknown
// name returns ErrUnknownFunction wrapped with the offending name.
func FromNames(names []string) (Set, error) {
	var s Set
	for _, name := range names {
		fn, ok := byName[name]
		if !ok {
			return Set{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		}
		s.Push(fn)
	}

	return s, nil
}
