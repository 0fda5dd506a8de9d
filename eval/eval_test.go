package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/activity"
	"github.com/dcgp-go/dcgp/da"
	"github.com/dcgp-go/dcgp/eval"
	"github.com/dcgp-go/dcgp/funcset"
)

// sumOfInputs builds a single-node "sum of both inputs" fixture: n=2, m=1,
// r=1, c=1, l=1, f={sum}, chromosome [0,0,1,2].
func sumOfInputs() ([]int, funcset.Set, activity.Result) {
	x := []int{0, 0, 1, 2}
	fns := funcset.New(funcset.Basic.Slice()[2]) // sum
	act := activity.Compute(x, 2, 1, 1, 1, fns)

	return x, fns, act
}

func TestNumeric_SumOfInputs(t *testing.T) {
	x, fns, act := sumOfInputs()
	out, err := eval.Numeric(x, 2, 1, 1, 1, fns, act, []float64{3.0, 4.0})
	require.NoError(t, err)
	require.Equal(t, []float64{7.0}, out)
}

func TestNumeric_WrongInputLength(t *testing.T) {
	x, fns, act := sumOfInputs()
	_, err := eval.Numeric(x, 2, 1, 1, 1, fns, act, []float64{3.0})
	require.ErrorIs(t, err, eval.ErrInvalidInput)
}

func TestSymbolic_SumOfInputs(t *testing.T) {
	x, fns, act := sumOfInputs()
	out, err := eval.Symbolic(x, 2, 1, 1, 1, fns, act, []string{"in0", "in1"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"(in0+in1)"}, out)
}

func TestDifferential_SumOfInputs(t *testing.T) {
	require.NoError(t, da.Init(1, 2))
	x, fns, act := sumOfInputs()

	c0, _ := da.Const(3.0)
	c1, _ := da.Const(4.0)
	id0, _ := da.Identity(1)
	id1, _ := da.Identity(2)
	in := []da.DA{da.Add(c0, id0), da.Add(c1, id1)}

	out, err := eval.Differential(x, 2, 1, 1, 1, fns, act, in)
	require.NoError(t, err)
	require.Equal(t, 7.0, da.Cons(out[0]))

	d0, err := da.Deriv(out[0], 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, da.Cons(d0))
}
