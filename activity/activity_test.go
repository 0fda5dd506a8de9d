package activity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/activity"
	"github.com/dcgp-go/dcgp/funcset"
)

// TestCompute_UnreachableColumnExcluded checks n=2, m=1, r=1, c=2, l=2,
// f={sum}. Chromosome [0,0,1, 0,2,0, 2] (output reads the column-0 node).
// active_nodes = {0,1,2}; node 3 (column 1) is never reached and stays
// inactive even though its genes are legally bounded.
func TestCompute_UnreachableColumnExcluded(t *testing.T) {
	x := []int{0, 0, 1, 0, 2, 0, 2}
	fns := funcset.New(funcset.Basic.Slice()[2]) // sum

	res := activity.Compute(x, 2, 1, 2, 1, fns)
	require.Equal(t, []int{0, 1, 2}, res.Nodes)
	require.Equal(t, []int{0, 1, 2, 6}, res.Genes)
}

// TestCompute_SingleNodeSum checks n=2, m=1, r=1, c=1, l=1, f={sum}.
// Chromosome [0,0,1,2]: the single internal node (id 2) sums inputs 0,1.
func TestCompute_SingleNodeSum(t *testing.T) {
	x := []int{0, 0, 1, 2}
	fns := funcset.New(funcset.Basic.Slice()[2]) // sum

	res := activity.Compute(x, 2, 1, 1, 1, fns)
	require.Equal(t, []int{0, 1, 2}, res.Nodes)
	require.Equal(t, []int{0, 1, 2, 3}, res.Genes)
}

// TestCompute_ConstNode checks that a CONST node contributes no operands to
// the next worklist generation.
func TestCompute_ConstNode(t *testing.T) {
	// n=1, m=1, r=1, c=1, l=1, f={zero, sum}. Chromosome selects "zero" (index
	// 0) for the sole internal node; its two operand genes are irrelevant.
	fns := funcset.New(funcset.Basic.Slice()[0], funcset.Basic.Slice()[2]) // zero, sum
	x := []int{0, 0, 0, 1}

	res := activity.Compute(x, 1, 1, 1, 1, fns)
	require.Equal(t, []int{1}, res.Nodes)
	require.Equal(t, []int{0, 1, 2, 3}, res.Genes)
}
