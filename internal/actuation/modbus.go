// Package actuation optionally pushes an accepted allocation out to real
// plant hardware over Modbus TCP, writing each plant's setpoint (in
// hundredths of a MW) to a configured holding register. It is best-effort:
// a write failure is logged and never unwinds an already-returned
// allocation — actuation sits outside the core's transactional boundary.
package actuation

import (
	"fmt"
	"log"
	"math"

	"github.com/goburrow/modbus"

	"powerplant-dispatch/internal/result"
)

// Target is one plant's Modbus TCP endpoint and the register its setpoint
// is written to.
type Target struct {
	PlantName string
	Address   string // host:port
	Register  uint16
}

// Actuator writes allocations out to a fixed set of plant targets, keyed by
// plant name.
type Actuator struct {
	targets map[string]Target
}

// NewActuator builds an Actuator for the given targets.
func NewActuator(targets []Target) *Actuator {
	byName := make(map[string]Target, len(targets))
	for _, t := range targets {
		byName[t.PlantName] = t
	}
	return &Actuator{targets: byName}
}

// Apply writes each allocated plant's setpoint to its configured register,
// as hundredths of a MW (so 125.3 MW becomes 12530). Plants with no
// configured target are skipped silently: actuation is opt-in per plant.
func (a *Actuator) Apply(alloc []result.Allocation) {
	if a == nil {
		return
	}
	for _, entry := range alloc {
		target, ok := a.targets[entry.Name]
		if !ok {
			continue
		}
		if err := a.writeSetpoint(target, entry.P); err != nil {
			log.Printf("Actuation: %s: %v", entry.Name, err)
		}
	}
}

func (a *Actuator) writeSetpoint(target Target, setpointMW float64) error {
	handler := modbus.NewTCPClientHandler(target.Address)
	if err := handler.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer handler.Close()

	client := modbus.NewClient(handler)
	centiMW := uint16(math.Round(setpointMW * 100))
	_, err := client.WriteSingleRegister(target.Register, centiMW)
	return err
}
