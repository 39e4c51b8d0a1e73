package priced

import (
	"sort"

	"powerplant-dispatch/internal/capacity"
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/pricing"
)

// PricedPlant is a Plant enriched with its marginal cost and granule bounds.
// +Inf unit costs are legal (an efficiency-0 plant never divides by zero
// downstream): the planner only ever compares costs, never inverts them.
type PricedPlant struct {
	model.Plant
	UnitCost float64
	Bounds   capacity.Bounds
}

// MeritOrder prices every plant and sorts it ascending by unit cost, ties
// broken by original input order (Go's sort.SliceStable preserves this).
// Wind plants, priced at 0, sort first.
func MeritOrder(grid model.PowerGrid) []PricedPlant {
	priced := make([]PricedPlant, len(grid.Plants))
	for i, p := range grid.Plants {
		priced[i] = PricedPlant{
			Plant:    p,
			UnitCost: pricing.UnitCost(p, grid.Fuels),
			Bounds:   capacity.Resolve(p, grid.Fuels),
		}
	}
	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].UnitCost < priced[j].UnitCost
	})
	return priced
}
