package flight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

func TestFuelEngine_MissionProfiles(t *testing.T) {
	engine := flight.NewFuelEngine()

	tests := []struct {
		name     string
		mass     int
		path     []string
		expected int
	}{
		{
			name:     "Apollo 11 moon round trip",
			mass:     28801,
			path:     []string{"launch earth", "land moon", "launch moon", "land earth"},
			expected: 51898,
		},
		{
			name:     "Mars mission",
			mass:     14606,
			path:     []string{"launch earth", "land mars", "launch mars", "land earth"},
			expected: 33388,
		},
		{
			name:     "passenger ship via moon and mars",
			mass:     75432,
			path:     []string{"launch earth", "land moon", "launch moon", "land mars", "launch mars", "land earth"},
			expected: 212161,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := engine.Compute(tt.mass, maneuvers(t, tt.path...))
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestFuelEngine_LegsSumToTotal(t *testing.T) {
	engine := flight.NewFuelEngine()
	path := maneuvers(t, "launch earth", "land moon", "launch moon", "land earth")

	legs := engine.ComputeLegs(28801, path)

	assert.Len(t, legs, len(path))
	sum := 0
	for i, leg := range legs {
		assert.Equal(t, path[i], leg.Maneuver)
		sum += leg.Fuel
	}
	assert.Equal(t, engine.Compute(28801, path), sum)
}

func TestFuelEngine_EarlierLegsCarryLaterFuel(t *testing.T) {
	engine := flight.NewFuelEngine()

	legs := engine.ComputeLegs(28801, maneuvers(t,
		"launch earth", "land moon", "launch moon", "land earth"))

	// The first launch lifts the payload plus every later leg's propellant,
	// so it costs more than launching the payload alone
	aloneLegs := engine.ComputeLegs(28801, maneuvers(t, "launch earth"))
	assert.Greater(t, legs[0].Fuel, aloneLegs[0].Fuel)
}

func TestFuelEngine_ZeroWhenFormulaNonPositive(t *testing.T) {
	engine := flight.NewFuelEngine()

	// 100 kg on the moon: both burn formulas go negative, no propellant needed
	total := engine.Compute(100, maneuvers(t, "launch moon", "land moon"))

	assert.Equal(t, 0, total)
}

func TestFuelEngine_MonotonicInMass(t *testing.T) {
	engine := flight.NewFuelEngine()
	path := maneuvers(t, "launch earth")

	previous := 0
	for mass := 1; mass <= 50000; mass += 499 {
		total := engine.Compute(mass, path)
		assert.GreaterOrEqual(t, total, previous, "mass %d", mass)
		previous = total
	}
}

func TestFuelEngine_MonotonicInGravity(t *testing.T) {
	engine := flight.NewFuelEngine()

	moon := engine.Compute(28801, maneuvers(t, "launch moon"))
	mars := engine.Compute(28801, maneuvers(t, "launch mars"))
	earth := engine.Compute(28801, maneuvers(t, "launch earth"))

	assert.LessOrEqual(t, moon, mars)
	assert.LessOrEqual(t, mars, earth)
}

func TestFuelEngine_NonPositiveMassContributesNothing(t *testing.T) {
	engine := flight.NewFuelEngine()
	path := maneuvers(t, "launch earth", "land earth")

	assert.Equal(t, 0, engine.Compute(0, path))
	assert.Equal(t, 0, engine.Compute(-500, path))
}

func TestFuelEngine_UnknownBodyContributesNothing(t *testing.T) {
	engine := flight.NewFuelEngine()

	path := []shared.Maneuver{
		{Action: shared.ActionLaunch, Body: shared.Body(99)},
	}

	assert.Equal(t, 0, engine.Compute(28801, path))
}

func TestFuelEngine_ValidPathYieldsNonNegativeTotal(t *testing.T) {
	validator := flight.NewPathValidator()
	engine := flight.NewFuelEngine()

	paths := [][]string{
		{"launch earth", "land earth"},
		{"launch moon", "land moon"},
		{"launch earth", "land moon", "launch moon", "land earth"},
		{"launch mars", "land moon", "launch moon", "land mars"},
	}

	for _, steps := range paths {
		path := maneuvers(t, steps...)
		for _, mass := range []int{1, 42, 1000, 28801, 75432} {
			m := mass
			result := validator.Validate(&m, path)
			assert.True(t, result.IsValid())
			assert.GreaterOrEqual(t, engine.Compute(mass, path), 0)
		}
	}
}
