package basis

import (
	"math"
	"strconv"

	"github.com/dcgp-go/dcgp/da"
)

// noErr adapts a binary DA overload that can never fail (sum, diff, mul) to
// the common DAFunc signature.
func noErr(f func(x, y da.DA) da.DA) DAFunc {
	return func(x, y da.DA) (da.DA, error) {
		return f(x, y), nil
	}
}

// Zero is the constant-zero basis function.
var Zero = &Function{
	Name:    "zero",
	Arity:   Const,
	EvalNum: func(x, y float64) float64 { return 0.0 },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Const(0.0)
	},
	EvalSym: func(s1, s2 string, simplify bool) string { return "0" },
}

// One is the constant-one basis function.
var One = &Function{
	Name:    "one",
	Arity:   Const,
	EvalNum: func(x, y float64) float64 { return 1.0 },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Const(1.0)
	},
	EvalSym: func(s1, s2 string, simplify bool) string { return "1" },
}

// NewConst builds an arbitrary named constant basis function, supplementing
// the built-in Zero/One with the original C++ implementation's generalized
// basis_cons. Its symbolic overload prints "(<val>)" since, unlike 0 and 1,
// an arbitrary constant carries no folding rule in the simplifier table.
func NewConst(name string, val float64) *Function {
	return &Function{
		Name:    name,
		Arity:   Const,
		EvalNum: func(x, y float64) float64 { return val },
		EvalDA: func(x, y da.DA) (da.DA, error) {
			return da.Const(val)
		},
		EvalSym: func(s1, s2 string, simplify bool) string {
			return "(" + strconv.FormatFloat(val, 'g', -1, 64) + ")"
		},
	}
}

// Sum is addition.
var Sum = &Function{
	Name:    "sum",
	Arity:   Binary,
	EvalNum: func(x, y float64) float64 { return x + y },
	EvalDA:  noErr(da.Add),
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch {
			case s1 == s2:
				return "(2*" + s1 + ")"
			case s1 == "0":
				return s2
			case s2 == "0":
				return s1
			}
		}

		return "(" + s1 + "+" + s2 + ")"
	},
}

// Diff is subtraction.
var Diff = &Function{
	Name:    "diff",
	Arity:   Binary,
	EvalNum: func(x, y float64) float64 { return x - y },
	EvalDA:  noErr(da.Sub),
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch {
			case s1 == s2:
				return "0"
			case s1 == "0":
				return "(-" + s2 + ")"
			case s2 == "0":
				return s1
			}
		}

		return "(" + s1 + "-" + s2 + ")"
	},
}

// Mul is multiplication.
var Mul = &Function{
	Name:    "mul",
	Arity:   Binary,
	EvalNum: func(x, y float64) float64 { return x * y },
	EvalDA:  noErr(da.Mul),
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch {
			case s1 == "0" || s2 == "0":
				return "0"
			case s1 == s2:
				return s1 + "^2"
			case s1 == "1":
				return s2
			case s2 == "1":
				return s1
			}
		}

		return "(" + s1 + "*" + s2 + ")"
	},
}

// Div is division. The numeric overload performs unchecked IEEE-754
// division (may yield +-Inf/NaN); only the DA overload enforces that the
// divisor's constant part is nonzero.
var Div = &Function{
	Name:    "div",
	Arity:   Binary,
	EvalNum: func(x, y float64) float64 { return x / y },
	EvalDA:  da.Div,
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch {
			case s1 == "0" && s2 != "0":
				return "0"
			case s1 == s2 && s1 != "0":
				return "1"
			}
		}

		return "(" + s1 + "/" + s2 + ")"
	},
}

// Pow is power; the base is folded to its absolute value in both the
// numeric and DA overloads, matching the original implementation's
// pow(fabs(x), y) / exp(y*log(|x|)) convention.
var Pow = &Function{
	Name:    "pow",
	Arity:   Binary,
	EvalNum: func(x, y float64) float64 { return math.Pow(math.Abs(x), y) },
	EvalDA:  da.Pow,
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch {
			case s1 == "0" && s2 != "0":
				return "0"
			case s1 == "1":
				return "1"
			case s2 == "0" && s1 != "0":
				return "1"
			case s2 == "1":
				return "abs(" + s1 + ")"
			}
		}

		return "abs(" + s1 + ")^(" + s2 + ")"
	},
}

// Sqrt is the unary square root, operating on |x|.
var Sqrt = &Function{
	Name:    "sqrt",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Sqrt(math.Abs(x)) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Sqrt(x)
	},
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify {
			switch s1 {
			case "0":
				return "0"
			case "1":
				return "1"
			}
		}

		return "sqrt(abs(" + s1 + "))"
	},
}

// Exp is the unary exponential.
var Exp = &Function{
	Name:    "exp",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Exp(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Exp(x), nil
	},
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify && s1 == "0" {
			return "1"
		}

		return "exp(" + s1 + ")"
	},
}

// Log is the unary natural logarithm, operating on |x|.
var Log = &Function{
	Name:    "log",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Log(math.Abs(x)) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Log(x)
	},
	EvalSym: func(s1, s2 string, simplify bool) string {
		if simplify && s1 == "1" {
			return "0"
		}

		return "log(abs(" + s1 + "))"
	},
}

func unarySym(name string) SymFunc {
	return func(s1, s2 string, simplify bool) string {
		return name + "(" + s1 + ")"
	}
}

// Sin is the unary sine.
var Sin = &Function{
	Name:    "sin",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Sin(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Sin(x), nil
	},
	EvalSym: unarySym("sin"),
}

// Cos is the unary cosine.
var Cos = &Function{
	Name:    "cos",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Cos(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Cos(x), nil
	},
	EvalSym: unarySym("cos"),
}

// Tan is the unary tangent.
var Tan = &Function{
	Name:    "tan",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Tan(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Tan(x)
	},
	EvalSym: unarySym("tan"),
}

// Asin is the unary arcsine.
var Asin = &Function{
	Name:    "asin",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Asin(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Asin(x)
	},
	EvalSym: unarySym("asin"),
}

// Acos is the unary arccosine.
var Acos = &Function{
	Name:    "acos",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Acos(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Acos(x)
	},
	EvalSym: unarySym("acos"),
}

// Atan is the unary arctangent.
var Atan = &Function{
	Name:    "atan",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Atan(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Atan(x), nil
	},
	EvalSym: unarySym("atan"),
}

// Sinh is the unary hyperbolic sine.
var Sinh = &Function{
	Name:    "sinh",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Sinh(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Sinh(x), nil
	},
	EvalSym: unarySym("sinh"),
}

// Cosh is the unary hyperbolic cosine.
var Cosh = &Function{
	Name:    "cosh",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Cosh(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Cosh(x), nil
	},
	EvalSym: unarySym("cosh"),
}

// Tanh is the unary hyperbolic tangent.
var Tanh = &Function{
	Name:    "tanh",
	Arity:   Unary,
	EvalNum: func(x, y float64) float64 { return math.Tanh(x) },
	EvalDA: func(x, y da.DA) (da.DA, error) {
		return da.Tanh(x)
	},
	EvalSym: unarySym("tanh"),
}
