package capacity

import (
	"testing"

	"powerplant-dispatch/internal/model"
)

func TestResolveWindDerating(t *testing.T) {
	fuels := model.Fuels{WindPct: 60}
	p := model.Plant{Kind: model.Wind, PminMW: 0, PmaxMW: 100}

	got := Resolve(p, fuels)
	want := Bounds{PminG: 0, PmaxG: 600} // 100 * 0.6 = 60 MW -> 600 granules
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveNonWindUnaffectedByWindPct(t *testing.T) {
	fuels := model.Fuels{WindPct: 0}
	p := model.Plant{Kind: model.Gas, PminMW: 100, PmaxMW: 460}

	got := Resolve(p, fuels)
	want := Bounds{PminG: 1000, PmaxG: 4600}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestBoundsUsable(t *testing.T) {
	if !(Bounds{PminG: 0, PmaxG: 0}).Usable() {
		t.Fatal("a plant with pmax==pmin==0 should still be usable (at 0)")
	}
	if (Bounds{PminG: 10, PmaxG: 0}).Usable() {
		t.Fatal("pmax < pmin should be unusable")
	}
}

func TestResolveZeroWindMakesWindUnusableAboveZero(t *testing.T) {
	fuels := model.Fuels{WindPct: 0}
	p := model.Plant{Kind: model.Wind, PminMW: 0, PmaxMW: 100}

	got := Resolve(p, fuels)
	if got.PmaxG != 0 {
		t.Fatalf("PmaxG = %d, want 0 at 0%% wind", got.PmaxG)
	}
}
