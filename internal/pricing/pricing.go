// Package pricing computes the marginal cost of operating a single plant.
package pricing

import (
	"math"

	"powerplant-dispatch/internal/model"
)

// UnitCost returns the marginal cost to produce one MWh from plant, in the
// same currency as the fuel vector.
//
//   - Wind turbines have no fuel cost: 0.
//   - Gas-fired plants burn gas and emit CO2: gas/efficiency + 0.3*co2.
//   - Turbojets burn kerosine with no emissions term in this scope.
//
// A zero efficiency yields +Inf: the plant remains a legal (if never
// advantageous) member of the merit order rather than an error.
func UnitCost(p model.Plant, fuels model.Fuels) float64 {
	if p.Kind == model.Wind {
		return 0
	}
	if p.Efficiency == 0 {
		return math.Inf(1)
	}

	var fuelPrice float64
	switch p.Kind {
	case model.Gas:
		fuelPrice = fuels.GasPricePerMWh
	case model.Turbojet:
		fuelPrice = fuels.KerosinePricePerMWh
	}

	cost := fuelPrice / p.Efficiency
	if p.Kind == model.Gas {
		cost += co2IntensityGasTonPerMWh(fuels)
	}
	return cost
}

func co2IntensityGasTonPerMWh(fuels model.Fuels) float64 {
	const intensity = 0.3 // tons CO2 per MWh, fixed model constant
	return intensity * fuels.CO2PricePerTon
}
