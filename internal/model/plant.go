package model

import "math"

// PlantKind is the closed set of generator technologies the planner understands.
type PlantKind string

const (
	Gas      PlantKind = "gasfired"
	Turbojet PlantKind = "turbojet"
	Wind     PlantKind = "windturbine"
)

// Granule is the smallest discretization unit of power the planner works in: 0.1 MW.
const Granule = 0.1

// Plant is a single generator descriptor.
type Plant struct {
	Name       string
	Kind       PlantKind
	Efficiency float64
	PminMW     float64
	PmaxMW     float64
}

// Fuels is the fixed fuel-price and wind-availability vector for one planning request.
type Fuels struct {
	GasPricePerMWh      float64
	KerosinePricePerMWh float64
	CO2PricePerTon      float64
	WindPct             float64
}

// PowerGrid is the validated input to the planner: a target load, a fuel vector,
// and a nonempty fleet of plants.
type PowerGrid struct {
	LoadMW float64
	Fuels  Fuels
	Plants []Plant
}

// LoadGranules rounds the requested load to the nearest granule.
func (g PowerGrid) LoadGranules() int {
	return int(math.Round(g.LoadMW / Granule))
}

// ToGranules converts a MW quantity to the nearest granule, rounding half away from zero.
func ToGranules(mw float64) int {
	return int(math.Round(mw / Granule))
}

// FromGranules converts a granule count back to MW, rounded to one decimal.
func FromGranules(g int) float64 {
	return math.Round(float64(g)*Granule*10) / 10
}
