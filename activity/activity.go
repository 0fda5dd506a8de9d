package activity

import (
	"golang.org/x/exp/slices"

	"github.com/dcgp-go/dcgp/basis"
	"github.com/dcgp-go/dcgp/funcset"
)

// Result bundles the active-node and active-gene sets produced by Compute.
// Both slices are sorted ascending and duplicate-free.
type Result struct {
	Nodes []int
	Genes []int
}

// Compute runs the activity analysis: starting from the m
// output targets (the trailing m entries of x), it repeatedly expands the
// worklist through arity-aware operand traversal until no new node is
// reached, then derives the active-gene positions from the surviving
// internal nodes plus the output genes themselves.
//
// x is the chromosome, n the input count, r*c the node grid, m the output
// count, and fns the function set the chromosome's function genes index
// into. x is assumed to already satisfy its bounds; Compute performs no
// validation of its own.
func Compute(x []int, n, r, c, m int, fns funcset.Set) Result {
	rc := r * c
	outputGenesStart := 3 * rc

	var activeNodes []int
	seen := make(map[int]bool)
	worklist := dedupUnseen(x[outputGenesStart:outputGenesStart+m], seen)

	for len(worklist) > 0 {
		activeNodes = append(activeNodes, worklist...)

		var next []int
		for _, k := range worklist {
			if k < n {
				continue // input node: no operands to follow
			}
			idx := (k - n) * 3
			fn := fns.At(x[idx])
			switch fn.Arity {
			case basis.Const:
				// no operands
			case basis.Unary:
				next = append(next, x[idx+1])
			case basis.Binary:
				next = append(next, x[idx+1], x[idx+2])
			}
		}

		worklist = dedupUnseen(next, seen)
	}

	activeNodes = sortDedup(activeNodes)

	var activeGenes []int
	for _, k := range activeNodes {
		if k < n {
			continue
		}
		idx := (k - n) * 3
		activeGenes = append(activeGenes, idx, idx+1, idx+2)
	}
	for i := 0; i < m; i++ {
		activeGenes = append(activeGenes, outputGenesStart+i)
	}

	return Result{Nodes: activeNodes, Genes: sortDedup(activeGenes)}
}

// dedupUnseen filters out values already recorded in seen, records the
// survivors, and returns them sorted and duplicate-free. seen accumulates
// across calls so a node reached in an earlier generation is never
// re-expanded.
func dedupUnseen(vals []int, seen map[int]bool) []int {
	out := sortDedup(vals)
	fresh := out[:0]
	for _, v := range out {
		if seen[v] {
			continue
		}
		seen[v] = true
		fresh = append(fresh, v)
	}

	return fresh
}

// sortDedup returns vals sorted ascending with duplicates removed.
func sortDedup(vals []int) []int {
	if len(vals) == 0 {
		return nil
	}
	out := make([]int, len(vals))
	copy(out, vals)
	slices.Sort(out)

	return slices.Compact(out)
}
