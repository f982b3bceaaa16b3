package flight

import (
	"math"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// Launch and landing burn coefficients. Fuel for a single burn is linear in
// the mass being moved: floor(mass * gravity * rate - adjustment).
const (
	launchFuelRate       = 0.042
	launchFuelAdjustment = 33.0
	landFuelRate         = 0.033
	landFuelAdjustment   = 42.0
)

// LegCost is the propellant attributed to one maneuver of a flight path
type LegCost struct {
	Maneuver shared.Maneuver
	Fuel     int
}

// FuelEngine computes the total propellant mass for an already-validated
// flight path. It is a stateless domain service and assumes its caller has
// gated the input through PathValidator; it does not re-validate.
//
// Fuel computed for a maneuver must itself be carried by every maneuver that
// precedes it, so legs are costed from the final landing backwards: each
// earlier maneuver moves the payload plus all propellant reserved for the
// rest of the trip.
type FuelEngine struct{}

// NewFuelEngine creates a new fuel engine instance
func NewFuelEngine() *FuelEngine {
	return &FuelEngine{}
}

// Compute returns the total fuel mass in kilograms for the given spacecraft
// mass and maneuver sequence. Non-positive masses and bodies outside the
// gravity table contribute zero rather than failing; the engine never panics.
func (e *FuelEngine) Compute(mass int, maneuvers []shared.Maneuver) int {
	total := 0
	for _, leg := range e.ComputeLegs(mass, maneuvers) {
		total += leg.Fuel
	}
	return total
}

// ComputeLegs returns the per-maneuver fuel breakdown in flight order. The
// sum of the leg costs equals Compute for the same input.
func (e *FuelEngine) ComputeLegs(mass int, maneuvers []shared.Maneuver) []LegCost {
	legs := make([]LegCost, len(maneuvers))
	currentMass := mass
	for i := len(maneuvers) - 1; i >= 0; i-- {
		m := maneuvers[i]
		fuel := 0
		gravity, known := m.Body.Gravity()
		if known && currentMass > 0 {
			fuel = burnFuel(currentMass, gravity, m.Action)
		}
		legs[i] = LegCost{Maneuver: m, Fuel: fuel}
		currentMass += fuel
	}
	return legs
}

// burnFuel computes the fuel for one maneuver, including the fuel needed to
// move that fuel. Each stage is the burn cost of the previous stage's fuel;
// stages strictly decrease and stop once a stage needs no propellant, so the
// loop always terminates.
func burnFuel(mass int, gravity float64, action shared.Action) int {
	total := 0
	stage := stageFuel(mass, gravity, action)
	for stage > 0 {
		total += stage
		stage = stageFuel(stage, gravity, action)
	}
	return total
}

// stageFuel is the base burn cost of moving the given mass, before accounting
// for the mass of the fuel itself. A non-positive result means the mass is
// light enough to need no propellant.
func stageFuel(mass int, gravity float64, action shared.Action) int {
	if action == shared.ActionLaunch {
		return int(math.Floor(float64(mass)*gravity*launchFuelRate - launchFuelAdjustment))
	}
	return int(math.Floor(float64(mass)*gravity*landFuelRate - landFuelAdjustment))
}
