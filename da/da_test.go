package da_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/da"
)

// resetDA ensures the process-wide DA config is initialized to (order=4,
// vars=2); it cannot reset it. Init is a no-op on identical parameters and
// rejects differing ones, so a test that wants a different
// (order, vars) from a prior test must run in its own process - acceptable
// here since every test in this file shares (order=4, vars=2).
func resetDA(t *testing.T) {
	t.Helper()
	require.NoError(t, da.Init(4, 2))
}

func closeEnough(a, b float64) bool {
	return cmp.Equal(a, b, cmpopts.EquateApprox(0, 1e-9))
}

func TestInit_IdempotentOnIdentical(t *testing.T) {
	resetDA(t)
	require.NoError(t, da.Init(4, 2))
	require.Equal(t, 4, da.Order())
	require.Equal(t, 2, da.Vars())
}

func TestInit_ErrorsOnDiffering(t *testing.T) {
	resetDA(t)
	require.ErrorIs(t, da.Init(5, 2), da.ErrAlreadyInitialized)
}

func TestConstAndCons(t *testing.T) {
	resetDA(t)
	c, err := da.Const(3.5)
	require.NoError(t, err)
	require.Equal(t, 3.5, da.Cons(c))
}

func TestIdentityAndDeriv(t *testing.T) {
	resetDA(t)
	x, err := da.Identity(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, da.Cons(x))

	dx, err := da.Deriv(x, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, da.Cons(dx))

	dy, err := da.Deriv(x, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, da.Cons(dy))
}

func TestIdentity_OutOfRange(t *testing.T) {
	resetDA(t)
	_, err := da.Identity(0)
	require.ErrorIs(t, err, da.ErrInvalidVariable)
	_, err = da.Identity(3)
	require.ErrorIs(t, err, da.ErrInvalidVariable)
}

// TestMul_MatchesProductRule checks that d/dx1 (x1*x2) = x2, by constant
// part comparison at a seeded point.
func TestMul_MatchesProductRule(t *testing.T) {
	resetDA(t)
	cx, _ := da.Const(2.0)
	cy, _ := da.Const(3.0)
	x1, _ := da.Identity(1)
	x2, _ := da.Identity(2)
	x := da.Add(cx, x1)
	y := da.Add(cy, x2)

	p := da.Mul(x, y)
	require.True(t, closeEnough(da.Cons(p), 6.0))

	dpdx, err := da.Deriv(p, 1)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(dpdx), 3.0))

	dpdy, err := da.Deriv(p, 2)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(dpdy), 2.0))
}

// TestExp_DerivativeIsItself checks d/dx exp(x) = exp(x) at x=1.
func TestExp_DerivativeIsItself(t *testing.T) {
	resetDA(t)
	c, _ := da.Const(1.0)
	x1, _ := da.Identity(1)
	x := da.Add(c, x1)

	e := da.Exp(x)
	require.True(t, closeEnough(da.Cons(e), math.Exp(1)))

	de, err := da.Deriv(e, 1)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(de), math.Exp(1)))
}

// TestSqrt_DerivativeMatchesClosedForm checks d/dx sqrt(x) = 1/(2*sqrt(x)).
func TestSqrt_DerivativeMatchesClosedForm(t *testing.T) {
	resetDA(t)
	c, _ := da.Const(4.0)
	x1, _ := da.Identity(1)
	x := da.Add(c, x1)

	s, err := da.Sqrt(x)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(s), 2.0))

	ds, err := da.Deriv(s, 1)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(ds), 1.0/(2.0*2.0)))
}

func TestSqrt_ZeroConstPart_Errors(t *testing.T) {
	resetDA(t)
	x1, _ := da.Identity(1)
	_, err := da.Sqrt(x1)
	require.ErrorIs(t, err, da.ErrDerivativeUndefined)
}

func TestDiv_ZeroDivisor_Errors(t *testing.T) {
	resetDA(t)
	one, _ := da.Const(1.0)
	x1, _ := da.Identity(1)
	_, err := da.Div(one, x1)
	require.ErrorIs(t, err, da.ErrDerivativeUndefined)
}

// TestSinCos_PythagoreanIdentity checks sin(x)^2 + cos(x)^2 == 1 at the
// constant part, for several seed points.
func TestSinCos_PythagoreanIdentity(t *testing.T) {
	resetDA(t)
	for _, v := range []float64{0.0, 0.3, 1.2, -0.7} {
		c, _ := da.Const(v)
		x1, _ := da.Identity(1)
		x := da.Add(c, x1)

		s := da.Sin(x)
		co := da.Cos(x)
		sum := da.Add(da.Mul(s, s), da.Mul(co, co))
		require.True(t, closeEnough(da.Cons(sum), 1.0), "sin^2+cos^2 at %v", v)
	}
}

func TestAsinAcos_DomainError(t *testing.T) {
	resetDA(t)
	c, _ := da.Const(1.5)
	x1, _ := da.Identity(1)
	x := da.Add(c, x1)

	_, err := da.Asin(x)
	require.ErrorIs(t, err, da.ErrDerivativeUndefined)
	_, err = da.Acos(x)
	require.ErrorIs(t, err, da.ErrDerivativeUndefined)
}

// TestPow_NegativeBaseConvention checks that pow(x,y) at negative base is
// computed as exp(y*log(|x|)), i.e. folds the base to its absolute value.
func TestPow_NegativeBaseConvention(t *testing.T) {
	resetDA(t)
	cx, _ := da.Const(-2.0)
	cy, _ := da.Const(3.0)
	x1, _ := da.Identity(1)
	x := da.Add(cx, x1)

	p, err := da.Pow(x, cy)
	require.NoError(t, err)
	require.True(t, closeEnough(da.Cons(p), 8.0))
}

func TestIsZero(t *testing.T) {
	resetDA(t)
	zero, _ := da.Const(0.0)
	require.True(t, da.IsZero(zero))

	nonzero, _ := da.Const(0.1)
	require.False(t, da.IsZero(nonzero))
}
