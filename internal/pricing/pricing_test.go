package pricing

import (
	"math"
	"testing"

	"powerplant-dispatch/internal/model"
)

func TestUnitCost(t *testing.T) {
	fuels := model.Fuels{
		GasPricePerMWh:      13.4,
		KerosinePricePerMWh: 50.8,
		CO2PricePerTon:      20,
		WindPct:             60,
	}

	cases := []struct {
		name string
		p    model.Plant
		want float64
	}{
		{
			name: "wind is always free",
			p:    model.Plant{Kind: model.Wind, Efficiency: 1},
			want: 0,
		},
		{
			name: "gas includes CO2 term",
			p:    model.Plant{Kind: model.Gas, Efficiency: 0.53},
			want: 13.4/0.53 + 0.3*20,
		},
		{
			name: "turbojet has no CO2 term",
			p:    model.Plant{Kind: model.Turbojet, Efficiency: 0.9},
			want: 50.8 / 0.9,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UnitCost(tc.p, fuels)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("UnitCost() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnitCostZeroEfficiencyIsInfinite(t *testing.T) {
	fuels := model.Fuels{GasPricePerMWh: 10, CO2PricePerTon: 5}
	got := UnitCost(model.Plant{Kind: model.Gas, Efficiency: 0}, fuels)
	if !math.IsInf(got, 1) {
		t.Fatalf("UnitCost() = %v, want +Inf", got)
	}
}
