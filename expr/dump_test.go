package expr_test

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/dcgp-go/dcgp/expr"
	"github.com/dcgp-go/dcgp/funcset"
)

// TestDump_GoldenReport pins the exact report layout for a small
// sum-of-inputs fixture. On mismatch it prints a unified diff rather than a
// raw string dump, since the report is multi-line and a line-level diff is
// far easier to read than a giant string comparison failure.
func TestDump_GoldenReport(t *testing.T) {
	fns := funcset.New(funcset.Basic.Slice()[2]) // sum
	e, err := expr.New(2, 1, 1, 1, 1, fns, 1)
	require.NoError(t, err)
	require.NoError(t, e.Set([]int{0, 0, 1, 2}))

	want := strings.Join([]string{
		"n = 2, m = 1, r = 1, c = 1, l = 1",
		"lower bounds:\t[0, 0, 0, 2]",
		"upper bounds:\t[0, 1, 1, 2]",
		"chromosome:\t[0, 0, 1, 2]",
		"active nodes:\t[0, 1, 2]",
		"active genes:\t[0, 1, 2, 3]",
		"function set:\t[sum]",
		"",
	}, "\n")

	got := e.Dump()
	if got != want {
		diff, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		require.NoError(t, diffErr)
		t.Fatalf("Dump() mismatch:\n%s", diff)
	}
}
