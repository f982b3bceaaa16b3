package flight

import (
	"strings"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// FlightPath is the host-owned plan being assembled: an optional spacecraft
// mass and an ordered maneuver sequence. Mass-unset and empty-sequence are
// legal states of a plan under construction; PathValidator decides whether
// the plan is calculable.
//
// The entity hands out snapshots, never its internal slice, so the domain
// services operate on immutable copies.
type FlightPath struct {
	mass      *int
	maneuvers []shared.Maneuver
}

// NewFlightPath creates an empty flight path
func NewFlightPath() *FlightPath {
	return &FlightPath{}
}

// SetMass sets the spacecraft payload mass in kilograms. Any integer is
// accepted here; positivity is a validation concern.
func (fp *FlightPath) SetMass(mass int) {
	fp.mass = &mass
}

// ClearMass removes the mass, returning the path to the mass-unset state
func (fp *FlightPath) ClearMass() {
	fp.mass = nil
}

// Mass returns the mass and whether one has been set
func (fp *FlightPath) Mass() (int, bool) {
	if fp.mass == nil {
		return 0, false
	}
	return *fp.mass, true
}

// AddManeuver appends a maneuver to the end of the path
func (fp *FlightPath) AddManeuver(m shared.Maneuver) {
	fp.maneuvers = append(fp.maneuvers, m)
}

// RemoveManeuver removes the maneuver at the given position
func (fp *FlightPath) RemoveManeuver(index int) error {
	if index < 0 || index >= len(fp.maneuvers) {
		return shared.NewManeuverIndexError(index, len(fp.maneuvers))
	}
	fp.maneuvers = append(fp.maneuvers[:index], fp.maneuvers[index+1:]...)
	return nil
}

// Clear removes every maneuver, leaving the mass untouched
func (fp *FlightPath) Clear() {
	fp.maneuvers = nil
}

// Maneuvers returns a snapshot of the maneuver sequence
func (fp *FlightPath) Maneuvers() []shared.Maneuver {
	snapshot := make([]shared.Maneuver, len(fp.maneuvers))
	copy(snapshot, fp.maneuvers)
	return snapshot
}

// Len returns the number of maneuvers
func (fp *FlightPath) Len() int {
	return len(fp.maneuvers)
}

func (fp *FlightPath) String() string {
	if len(fp.maneuvers) == 0 {
		return "<empty flight path>"
	}
	parts := make([]string, len(fp.maneuvers))
	for i, m := range fp.maneuvers {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
