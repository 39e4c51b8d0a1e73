package result_test

import (
	"testing"

	"powerplant-dispatch/internal/model"
	"powerplant-dispatch/internal/planner"
	"powerplant-dispatch/internal/result"
)

func TestBuildConvertsGranulesToMW(t *testing.T) {
	entries := []planner.Entry{
		{Plant: model.Plant{Name: "gas1"}, Units: 4600},
		{Plant: model.Plant{Name: "wind1"}, Units: 1},
	}
	got := result.Build(entries)
	want := []result.Allocation{
		{Name: "gas1", P: 460.0},
		{Name: "wind1", P: 0.1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Build()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildPreservesEmptyEntries(t *testing.T) {
	got := result.Build(nil)
	if len(got) != 0 {
		t.Fatalf("Build(nil) = %+v, want empty", got)
	}
}
