package funcset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/basis"
	"github.com/dcgp-go/dcgp/funcset"
)

func TestPush_IdempotentOnDuplicate(t *testing.T) {
	s := funcset.New(basis.Sum)
	s.Push(basis.Sum)
	s.Push(basis.Diff)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"sum", "diff"}, s.Names())
}

func TestUnion_LeftBiasedDedup(t *testing.T) {
	a := funcset.New(basis.Sum, basis.Diff)
	b := funcset.New(basis.Diff, basis.Mul)
	u := a.Union(b)
	require.Equal(t, []string{"sum", "diff", "mul"}, u.Names())
}

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"zero", "one", "sum", "diff", "mul", "div"}, funcset.Basic.Names())
	require.Equal(t, []string{"sqrt", "pow", "exp", "log"}, funcset.Extended.Names())
	require.Equal(t, []string{"sin", "cos", "tan", "asin", "acos", "atan"}, funcset.Trig.Names())
	require.Equal(t, []string{"sinh", "cosh", "tanh"}, funcset.Hyp.Names())
	require.Equal(t, funcset.Basic.Len()+funcset.Extended.Len()+funcset.Trig.Len()+funcset.Hyp.Len(), funcset.All.Len())
}

func TestFromNames(t *testing.T) {
	s, err := funcset.FromNames([]string{"sum", "mul"})
	require.NoError(t, err)
	require.Equal(t, []string{"sum", "mul"}, s.Names())
}

func TestFromNames_Unknown(t *testing.T) {
	_, err := funcset.FromNames([]string{"sum", "bogus"})
	require.ErrorIs(t, err, funcset.ErrUnknownFunction)
}
