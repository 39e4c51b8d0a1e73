package models_test

import (
	"testing"

	"powerplant-dispatch/internal/api/models"
	"powerplant-dispatch/internal/config"
)

func validRequest() models.ProductionPlanRequest {
	return models.ProductionPlanRequest{
		Load: 910,
		Fuels: models.FuelsRequest{
			Gas:      13.4,
			Kerosine: 50.8,
			CO2:      20,
			WindPct:  60,
		},
		Plants: []models.PlantRequest{
			{Name: "gas1", Type: "gasfired", Efficiency: 0.53, Pmin: 100, Pmax: 460},
			{Name: "wind1", Type: "windturbine", Efficiency: 1, Pmin: 0, Pmax: 100},
		},
	}
}

func noDefaults() config.FuelDefaults {
	return config.FuelDefaults{GasPricePerMWh: 99, KerosinePricePerMWh: 99, CO2PricePerTon: 99, WindPct: 99}
}

func TestToGridConvertsValidRequest(t *testing.T) {
	grid, err := validRequest().ToGrid(noDefaults())
	if err != nil {
		t.Fatalf("ToGrid() err = %v", err)
	}
	if grid.LoadMW != 910 || len(grid.Plants) != 2 {
		t.Fatalf("grid = %+v, want load 910 with 2 plants", grid)
	}
	if grid.Fuels.WindPct != 60 {
		t.Fatalf("Fuels.WindPct = %v, want the request's own 60 (fully specified, defaults unused)", grid.Fuels.WindPct)
	}
}

func TestToGridFillsMissingFuelFieldsFromDefaults(t *testing.T) {
	req := validRequest()
	req.Fuels = models.FuelsRequest{Gas: 13.4} // kerosine/co2/wind_pct left unset

	defaults := config.FuelDefaults{
		GasPricePerMWh:      99, // overridden by the request's own value
		KerosinePricePerMWh: 50.8,
		CO2PricePerTon:      20,
		WindPct:             60,
	}

	grid, err := req.ToGrid(defaults)
	if err != nil {
		t.Fatalf("ToGrid() err = %v", err)
	}
	if grid.Fuels.GasPricePerMWh != 13.4 {
		t.Fatalf("Fuels.GasPricePerMWh = %v, want the request's own 13.4", grid.Fuels.GasPricePerMWh)
	}
	if grid.Fuels.KerosinePricePerMWh != 50.8 || grid.Fuels.CO2PricePerTon != 20 || grid.Fuels.WindPct != 60 {
		t.Fatalf("Fuels = %+v, want the remaining fields filled in from defaults", grid.Fuels)
	}
}

func TestToGridRejectsPminAbovePmax(t *testing.T) {
	req := validRequest()
	req.Plants[0].Pmin = 500
	req.Plants[0].Pmax = 460
	if _, err := req.ToGrid(noDefaults()); err == nil {
		t.Fatal("ToGrid() err = nil, want an error for pmin > pmax")
	}
}

func TestToGridRejectsUnknownPlantType(t *testing.T) {
	req := validRequest()
	req.Plants[0].Type = "nuclear"
	if _, err := req.ToGrid(noDefaults()); err == nil {
		t.Fatal("ToGrid() err = nil, want an error for an unknown plant type")
	}
}
