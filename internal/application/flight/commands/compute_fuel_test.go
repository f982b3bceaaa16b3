package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/flightfuel-go/internal/application/flight/commands"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

func newHandler() *commands.ComputeFuelHandler {
	return commands.NewComputeFuelHandler(flight.NewPathValidator(), flight.NewFuelEngine())
}

func apolloPath(t *testing.T) []shared.Maneuver {
	t.Helper()
	steps := [][2]string{
		{"launch", "earth"},
		{"land", "moon"},
		{"launch", "moon"},
		{"land", "earth"},
	}
	path := make([]shared.Maneuver, 0, len(steps))
	for _, step := range steps {
		m, err := shared.NewManeuver(step[0], step[1])
		require.NoError(t, err)
		path = append(path, m)
	}
	return path
}

func TestComputeFuelHandler_ValidPlan(t *testing.T) {
	handler := newHandler()
	mass := 28801

	response, err := handler.Handle(context.Background(), &types.ComputeFuelCommand{
		Mass:      &mass,
		Maneuvers: apolloPath(t),
	})

	require.NoError(t, err)
	result := response.(*types.ComputeFuelResponse)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 51898, result.TotalFuel)
	assert.Equal(t, 28801+51898, result.TotalMass)
	assert.True(t, strings.HasPrefix(result.ReportID, "fuel-report-"))

	require.Len(t, result.Legs, 4)
	sum := 0
	for _, leg := range result.Legs {
		sum += leg.Fuel
	}
	assert.Equal(t, result.TotalFuel, sum)
	assert.Equal(t, "launch", result.Legs[0].Action)
	assert.Equal(t, "earth", result.Legs[0].Body)
}

func TestComputeFuelHandler_InvalidPlanReturnsViolationsAsData(t *testing.T) {
	handler := newHandler()

	response, err := handler.Handle(context.Background(), &types.ComputeFuelCommand{
		Mass:      nil,
		Maneuvers: nil,
	})

	require.NoError(t, err)
	result := response.(*types.ComputeFuelResponse)

	assert.False(t, result.Valid)
	assert.Empty(t, result.ReportID)
	assert.Zero(t, result.TotalFuel)

	codes := make([]flight.ReasonCode, 0, len(result.Violations))
	for _, v := range result.Violations {
		codes = append(codes, v.Code)
	}
	assert.Equal(t, []flight.ReasonCode{
		flight.ReasonMassRequired,
		flight.ReasonStepsEmpty,
	}, codes)
}

func TestComputeFuelHandler_RejectsWrongRequestType(t *testing.T) {
	handler := newHandler()

	_, err := handler.Handle(context.Background(), "not a command")

	assert.EqualError(t, err, "invalid request type")
}
