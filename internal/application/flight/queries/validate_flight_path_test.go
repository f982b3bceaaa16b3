package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/flightfuel-go/internal/application/flight/queries"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

func TestValidateFlightPathHandler_ValidPlan(t *testing.T) {
	handler := queries.NewValidateFlightPathHandler(flight.NewPathValidator())
	mass := 100

	launch, err := shared.NewManeuver("launch", "earth")
	require.NoError(t, err)
	land, err := shared.NewManeuver("land", "earth")
	require.NoError(t, err)

	response, err := handler.Handle(context.Background(), &types.ValidateFlightPathQuery{
		Mass:      &mass,
		Maneuvers: []shared.Maneuver{launch, land},
	})

	require.NoError(t, err)
	result := response.(*types.ValidateFlightPathResponse)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestValidateFlightPathHandler_ReportsViolations(t *testing.T) {
	handler := queries.NewValidateFlightPathHandler(flight.NewPathValidator())

	response, err := handler.Handle(context.Background(), &types.ValidateFlightPathQuery{})

	require.NoError(t, err)
	result := response.(*types.ValidateFlightPathResponse)
	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, flight.ReasonMassRequired, result.Violations[0].Code)
	assert.Equal(t, flight.ReasonStepsEmpty, result.Violations[1].Code)
}

func TestValidateFlightPathHandler_RejectsWrongRequestType(t *testing.T) {
	handler := queries.NewValidateFlightPathHandler(flight.NewPathValidator())

	_, err := handler.Handle(context.Background(), 42)

	assert.EqualError(t, err, "invalid request type")
}
