// Package dispatch wires the core components — merit-order pricing,
// capacity resolution, breakpoint generation, the frontier planner, and
// result building — into the single entry point the HTTP surface and CLI
// call. The core itself is a pure function: no I/O, no shared state, safe
// to call concurrently from independent requests.
package dispatch

import (
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/planner"
	"powerplant-dispatch/internal/priced"
	"powerplant-dispatch/internal/result"
)

// Plan solves grid and returns the merit-ordered allocation, or
// planner.ErrInfeasible if no combination of plant states sums exactly to
// the requested load.
func Plan(grid model.PowerGrid) ([]result.Allocation, error) {
	merit := priced.MeritOrder(grid)
	entries, err := planner.Plan(merit, grid.LoadGranules())
	if err != nil {
		return nil, err
	}
	return result.Build(entries), nil
}
