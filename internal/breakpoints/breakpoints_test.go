package breakpoints

import (
	"reflect"
	"testing"

	"powerplant-dispatch/internal/capacity"
	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/priced"
)

func plant(name string, pminG, pmaxG int) priced.PricedPlant {
	return priced.PricedPlant{
		Plant:  model.Plant{Name: name},
		Bounds: capacity.Bounds{PminG: pminG, PmaxG: pmaxG},
	}
}

func TestGenerateSingleplant(t *testing.T) {
	plants := []priced.PricedPlant{plant("only", 5, 100)}
	steps := Generate(plants)
	want := []int{5, 0}
	if !reflect.DeepEqual(steps[0], want) {
		t.Fatalf("steps[0] = %v, want %v", steps[0], want)
	}
}

func TestGenerateTwoPlants(t *testing.T) {
	// plants[0] is the one whose stopping points we care about; plants[1] is downstream.
	plants := []priced.PricedPlant{
		plant("cheap", 0, 1000),
		plant("expensive", 3, 50),
	}
	steps := Generate(plants)

	// last layer: {0, pmin(last)=3}
	wantLast := []int{3, 0}
	if !reflect.DeepEqual(steps[1], wantLast) {
		t.Fatalf("steps[1] = %v, want %v", steps[1], wantLast)
	}

	// steps[0] = {s, s+pmin(1)=3 : s in steps[1]} = {0,3} ∪ {3,6} = {0,3,6}
	wantFirst := []int{6, 3, 0}
	if !reflect.DeepEqual(steps[0], wantFirst) {
		t.Fatalf("steps[0] = %v, want %v", steps[0], wantFirst)
	}
}

func TestGenerateEmpty(t *testing.T) {
	if steps := Generate(nil); len(steps) != 0 {
		t.Fatalf("Generate(nil) = %v, want empty", steps)
	}
}
