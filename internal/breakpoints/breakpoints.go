// Package breakpoints derives the significant stopping points the
// DispatchPlanner uses to avoid a continuous search over each plant's
// feasibility interval.
//
// At the layer where plant i is considered, any downstream plant j>i that
// ends up turned on contributes at least its pmin. So the residual demand
// left after plant i must land on a value reachable by some subset of
// downstream pmins plus slack absorbed by the plants still to come. Generate
// computes, for each layer, a set of such sums by the recurrence documented
// on it.
package breakpoints

import (
	"sort"

	"powerplant-dispatch/internal/priced"
)

// Generate returns, for each plant index i in plants, the set S[i] (in
// granules), deduplicated and sorted descending as in the reference
// algorithm.
//
// S[len(plants)-1] = {0, pmin(last)}. For i counting down from there,
// S[i] = { s, s + pmin(i+1) : s in S[i+1] }.
//
// So S[i] holds every subset-sum of the pmins of plants strictly after i,
// each also taken once more with pmin(last) added: the last plant's pmin
// can count twice (two plants with downstream pmin 3 give S[0] = {6, 3, 0}).
func Generate(plants []priced.PricedPlant) [][]int {
	n := len(plants)
	steps := make([][]int, n)
	if n == 0 {
		return steps
	}

	last := n - 1
	steps[last] = dedupDescending([]int{0, plants[last].Bounds.PminG})

	for i := n - 2; i >= 0; i-- {
		next := steps[i+1]
		pminNext := plants[i+1].Bounds.PminG
		combined := make([]int, 0, len(next)*2)
		for _, s := range next {
			combined = append(combined, s, s+pminNext)
		}
		steps[i] = dedupDescending(combined)
	}
	return steps
}

func dedupDescending(vals []int) []int {
	seen := make(map[int]struct{}, len(vals))
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
