// Package models is the wire-format layer: JSON request/response shapes and
// their conversion to/from the core's internal model types. Field names on
// the wire intentionally differ from the internal ones (see FuelsRequest)
// to match the documented API contract.
package models

import (
	"fmt"

	"powerplant-dispatch/internal/config"
	"powerplant-dispatch/internal/model"
)

// ProductionPlanRequest is the POST /productionplan request body. Fuels is
// optional: any field left at its zero value is filled in from the
// service's configured fuel defaults (see ToGrid).
type ProductionPlanRequest struct {
	Load   float64        `json:"load" binding:"required,gt=0"`
	Fuels  FuelsRequest   `json:"fuels"`
	Plants []PlantRequest `json:"powerplants" binding:"required,min=1,dive"`
}

// FuelsRequest maps the wire field names to the internal fuel vector. Every
// field is optional (omitempty): a caller may send a partial vector and
// rely on the configured defaults for the rest.
type FuelsRequest struct {
	Gas      float64 `json:"gas(euro/MWh)" binding:"omitempty,gt=0"`
	Kerosine float64 `json:"kerosine(euro/MWh)" binding:"omitempty,gt=0"`
	CO2      float64 `json:"co2(euro/ton)" binding:"omitempty,gt=0"`
	WindPct  float64 `json:"wind(%)" binding:"gte=0,lte=100"`
}

func (f FuelsRequest) toFuelDefaults() config.FuelDefaults {
	return config.FuelDefaults{
		GasPricePerMWh:      f.Gas,
		KerosinePricePerMWh: f.Kerosine,
		CO2PricePerTon:      f.CO2,
		WindPct:             f.WindPct,
	}
}

// PlantRequest is one powerplant descriptor on the wire.
type PlantRequest struct {
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=gasfired turbojet windturbine"`
	Efficiency float64 `json:"efficiency" binding:"required,gt=0"`
	Pmax       float64 `json:"pmax" binding:"gt=0"`
	Pmin       float64 `json:"pmin" binding:"gte=0"`
}

// ToGrid converts the wire request into the core's PowerGrid, rejecting any
// plant whose pmin exceeds its pmax (undefined per the source model; the
// surface rejects it outright rather than passing it to the planner).
// defaults fills in any fuel field the request left at its zero value.
func (r ProductionPlanRequest) ToGrid(defaults config.FuelDefaults) (model.PowerGrid, error) {
	plants := make([]model.Plant, len(r.Plants))
	for i, p := range r.Plants {
		if p.Pmin > p.Pmax {
			return model.PowerGrid{}, fmt.Errorf("plant %q: pmin (%v) exceeds pmax (%v)", p.Name, p.Pmin, p.Pmax)
		}
		kind, err := plantKind(p.Type)
		if err != nil {
			return model.PowerGrid{}, err
		}
		plants[i] = model.Plant{
			Name:       p.Name,
			Kind:       kind,
			Efficiency: p.Efficiency,
			PminMW:     p.Pmin,
			PmaxMW:     p.Pmax,
		}
	}

	fuels := config.MergeFuels(defaults, r.Fuels.toFuelDefaults())

	return model.PowerGrid{
		LoadMW: r.Load,
		Fuels:  fuels.ToModelFuels(),
		Plants: plants,
	}, nil
}

func plantKind(wire string) (model.PlantKind, error) {
	switch wire {
	case "gasfired":
		return model.Gas, nil
	case "turbojet":
		return model.Turbojet, nil
	case "windturbine":
		return model.Wind, nil
	default:
		return "", fmt.Errorf("unknown plant type %q", wire)
	}
}
