package basis

import "github.com/dcgp-go/dcgp/da"

// Arity tells the activity analyzer and evaluator how many operand genes a
// Function actually reads.
type Arity int

const (
	// Const functions (e.g. the zero/one constants) ignore both operands.
	Const Arity = iota
	// Unary functions read only the first operand.
	Unary
	// Binary functions read both operands.
	Binary
)

// String renders the arity tag for diagnostics (e.g. Dump output).
func (a Arity) String() string {
	switch a {
	case Const:
		return "CONST"
	case Unary:
		return "UNARY"
	case Binary:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// NumFunc is the numeric overload: (x,y) -> f(x,y). The numeric evaluator is
// total - it never raises, so search over the numeric domain never has to
// handle an evaluation failure.
type NumFunc func(x, y float64) float64

// DAFunc is the differential-algebra overload. It can fail with
// da.ErrDerivativeUndefined when evaluated at a point outside the closed
// form's domain (see package da).
type DAFunc func(x, y da.DA) (da.DA, error)

// SymFunc is the symbolic overload: given the operands' string
// representations and whether local simplification is requested, returns
// the combined string.
type SymFunc func(s1, s2 string, simplify bool) string

// Function is a basis-function handle: one name, one arity, and its three
// value-domain overloads. Functions are always referenced by pointer -
// *Function is a static-lifetime handle into an immutable registry.
type Function struct {
	Name    string
	Arity   Arity
	EvalNum NumFunc
	EvalDA  DAFunc
	EvalSym SymFunc
}
