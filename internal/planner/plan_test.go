package planner_test

import (
	"errors"
	"testing"

	"powerplant-dispatch/internal/capacity"
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/planner"
	"powerplant-dispatch/internal/priced"
)

func plant(name string, unitCost float64, pminG, pmaxG int) priced.PricedPlant {
	return priced.PricedPlant{
		Plant:    model.Plant{Name: name},
		UnitCost: unitCost,
		Bounds:   capacity.Bounds{PminG: pminG, PmaxG: pmaxG},
	}
}

func TestPlanSingleFreePlantMeetsLoad(t *testing.T) {
	plants := []priced.PricedPlant{plant("wind1", 0, 0, 1000)}
	entries, err := planner.Plan(plants, 600)
	if err != nil {
		t.Fatalf("Plan() err = %v", err)
	}
	if len(entries) != 1 || entries[0].Units != 600 {
		t.Fatalf("entries = %+v, want a single plant carrying all 600 granules", entries)
	}
}

func TestPlanPrefersCheaperPlantInMeritOrder(t *testing.T) {
	plants := []priced.PricedPlant{
		plant("cheap", 10, 0, 5000),
		plant("expensive", 100, 0, 5000),
	}
	entries, err := planner.Plan(plants, 3000)
	if err != nil {
		t.Fatalf("Plan() err = %v", err)
	}
	if entries[0].Units != 3000 || entries[1].Units != 0 {
		t.Fatalf("entries = %+v, want cheap plant to carry the whole load", entries)
	}
}

func TestPlanReturnsErrInfeasibleWhenLoadUnreachable(t *testing.T) {
	plants := []priced.PricedPlant{plant("gas1", 10, 1000, 4600)}
	_, err := planner.Plan(plants, 500)
	if !errors.Is(err, planner.ErrInfeasible) {
		t.Fatalf("Plan() err = %v, want ErrInfeasible (500 < pmin 1000)", err)
	}
}

func TestPlanRejectsDeltaBelowNextPlantsPmin(t *testing.T) {
	// cheap plant alone can only produce 0 or [1000, 2000] granules, so a
	// delta of 500 is below its pmin and a load of 500 can only be reached by
	// the expensive plant.
	plants := []priced.PricedPlant{
		plant("cheap", 10, 1000, 2000),
		plant("expensive", 100, 0, 5000),
	}
	entries, err := planner.Plan(plants, 500)
	if err != nil {
		t.Fatalf("Plan() err = %v", err)
	}
	total := entries[0].Units + entries[1].Units
	if total != 500 {
		t.Fatalf("total units = %v, want 500", total)
	}
}
