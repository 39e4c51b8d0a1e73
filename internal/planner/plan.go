// Package planner implements the layered frontier dynamic program that
// solves the unit-commitment / economic-dispatch problem: find the
// minimum-cost per-plant allocation that sums exactly to the requested load.
package planner

import (
	"math"
	"sort"

	"powerplant-dispatch/internal/breakpoints"
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/priced"
)

// Entry is one plant's share of the plan, in the planner's internal
// (merit-order) sequence.
type Entry struct {
	Plant model.Plant
	Units int // granules produced, in {0} ∪ [PminG, PmaxG]
}

// frontier maps a reachable cumulative production (granules) to the minimum
// cost (in cents, floored) to reach it with the plants considered so far.
// A key's absence means that production level is not yet reachable — the
// map itself is the "Option<cost>" / Unreachable sentinel.
type frontier map[int]float64

// backLayer maps a cumulative production after one plant to the cumulative
// production before it. Back-pointers only ever point strictly backward.
type backLayer map[int]int

// Plan runs the planner on a merit-ordered, priced plant list and returns
// the per-plant granule allocation in that same order, or ErrInfeasible.
func Plan(plants []priced.PricedPlant, loadGranules int) ([]Entry, error) {
	steps := breakpoints.Generate(plants)

	front := frontier{0: 0}
	backLayers := make([]backLayer, len(plants))

	for i, plant := range plants {
		stoppingPoints := stoppingPointsFor(plant, steps[i], loadGranules)
		next, prev := advanceLayer(front, plant, stoppingPoints)
		front = next
		backLayers[i] = prev
	}

	if _, ok := front[loadGranules]; !ok {
		return nil, ErrInfeasible
	}

	return reconstruct(plants, backLayers, loadGranules), nil
}

// stoppingPointsFor computes the significant residual-demand targets for one
// plant: LOAD - s for each realizable downstream pmin-sum s, restricted to
// this plant's feasibility interval.
func stoppingPointsFor(plant priced.PricedPlant, layerSteps []int, loadGranules int) []int {
	minUnits := plant.Bounds.PminG
	maxProdUnits := plant.Bounds.PmaxG
	if maxProdUnits > loadGranules {
		maxProdUnits = loadGranules
	}
	if minUnits > maxProdUnits {
		return nil
	}

	points := make([]int, 0, len(layerSteps))
	for _, s := range layerSteps {
		if maxProdUnits-s >= minUnits {
			points = append(points, loadGranules-s)
		}
	}
	return points
}

// advanceLayer applies one plant's transitions on top of the incoming
// frontier, returning the outgoing frontier and this layer's back-pointers.
//
// The outgoing frontier starts as a copy of the incoming one (plant off), and
// each transition is compared against the outgoing entry built so far, so
// every level keeps its minimum cost. Within a single layer the result does
// not depend on map iteration order beyond the documented tie-break: states
// are visited in ascending granule order, and a later write at equal cost
// wins.
//
// A stopping point sp is only reachable exactly when the plant's own pmax_g
// covers the gap; otherwise the plant saturates at its own ceiling
// (production + pmax_g), mirroring the original service's saturation branch.
// A transition is only taken if the resulting delta falls in
// [pmin_g, pmax_g] — delta 0 (plant off) is already covered by the copy of
// the incoming frontier above.
func advanceLayer(in frontier, plant priced.PricedPlant, stoppingPoints []int) (frontier, backLayer) {
	minUnits := plant.Bounds.PminG
	maxProdUnits := plant.Bounds.PmaxG

	out := make(frontier, len(in))
	prev := make(backLayer, len(in))
	for x := range in {
		out[x] = in[x]
		prev[x] = x // plant is off: stay at x
	}

	for _, production := range sortedKeys(in) {
		cost := in[production]
		for _, sp := range stoppingPoints {
			if sp < production {
				continue
			}
			newProduction := sp
			if maxProdUnits < sp-production {
				newProduction = production + maxProdUnits
			}
			delta := newProduction - production
			if delta <= 0 || delta < minUnits {
				continue
			}

			newCost := floorCents(cost + float64(delta)*plant.UnitCost*100)
			oldCost, existed := out[newProduction]
			if !existed || newCost <= oldCost {
				out[newProduction] = newCost
				prev[newProduction] = production
			}
		}
	}
	return out, prev
}

func floorCents(cents float64) float64 {
	if math.IsInf(cents, 1) {
		return cents
	}
	return math.Floor(cents)
}

func sortedKeys(m frontier) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// reconstruct walks the back-pointer layers from LOAD down to 0, turning
// them into a per-plant granule allocation in merit order.
func reconstruct(plants []priced.PricedPlant, backLayers []backLayer, loadGranules int) []Entry {
	n := len(plants)
	entries := make([]Entry, n)
	x := loadGranules
	for i := n - 1; i >= 0; i-- {
		prevX := backLayers[i][x]
		entries[i] = Entry{Plant: plants[i].Plant, Units: x - prevX}
		x = prevX
	}
	return entries
}
