// Package capacity resolves each plant's effective [pmin, pmax] feasibility
// region in granules, applying wind derating where it applies.
package capacity

import (
	"math"

	"powerplant-dispatch/internal/model"
)

// Bounds is a plant's effective production region in granules: {0} ∪ [PminG, PmaxG].
type Bounds struct {
	PminG int
	PmaxG int
}

// Usable reports whether the interval [PminG, PmaxG] is nonempty in this
// instance; an unusable plant can only contribute 0.
func (b Bounds) Usable() bool {
	return b.PmaxG >= b.PminG
}

// Resolve computes a plant's granule bounds for the given fuel/wind vector.
// Wind turbines have their pmax derated by the fleet-wide wind percentage;
// every other plant kind is unchanged.
func Resolve(p model.Plant, fuels model.Fuels) Bounds {
	pminMW := p.PminMW
	pmaxMW := p.PmaxMW
	if p.Kind == model.Wind {
		pmaxMW = p.PmaxMW * fuels.WindPct / 100
	}

	return Bounds{
		PminG: int(math.Ceil(pminMW / model.Granule)),
		PmaxG: int(math.Floor(pmaxMW / model.Granule)),
	}
}
