// Package result converts the planner's integer-granule allocation into the
// MW-denominated response the caller sees.
package result

import (
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/planner"
)

// Allocation is one plant's share of the plan, in merit order (cheapest first).
type Allocation struct {
	Name string  `json:"name"`
	P    float64 `json:"p"`
}

// Build converts planner entries (granules) to an MW allocation list,
// rounding each plant's output to one decimal.
func Build(entries []planner.Entry) []Allocation {
	out := make([]Allocation, len(entries))
	for i, e := range entries {
		out[i] = Allocation{
			Name: e.Plant.Name,
			P:    model.FromGranules(e.Units),
		}
	}
	return out
}
