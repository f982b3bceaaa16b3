package types

import (
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// ValidateFlightPathQuery - Check whether a flight path is calculable.
// Mass is nil when the host never collected one.
type ValidateFlightPathQuery struct {
	Mass      *int
	Maneuvers []shared.Maneuver
}

// ValidateFlightPathResponse reports the validation outcome. Violations is
// empty when Valid is true.
type ValidateFlightPathResponse struct {
	Valid      bool
	Violations []flight.Violation
}

// ComputeFuelCommand - Validate a flight path and, if calculable, compute the
// total propellant mass. Validation failures come back as data on the
// response, never as a Go error.
type ComputeFuelCommand struct {
	Mass      *int
	Maneuvers []shared.Maneuver
}

// LegBreakdown is the per-maneuver cost in flight order
type LegBreakdown struct {
	Action string
	Body   string
	Fuel   int
}

// ComputeFuelResponse carries either the computed totals or the violations
// that prevented computation.
type ComputeFuelResponse struct {
	ReportID   string
	Valid      bool
	Violations []flight.Violation
	TotalFuel  int
	TotalMass  int
	Legs       []LegBreakdown
}
