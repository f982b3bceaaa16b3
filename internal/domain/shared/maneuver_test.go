package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

func TestParseAction(t *testing.T) {
	action, err := shared.ParseAction("launch")
	require.NoError(t, err)
	assert.Equal(t, shared.ActionLaunch, action)

	action, err = shared.ParseAction("land")
	require.NoError(t, err)
	assert.Equal(t, shared.ActionLand, action)

	_, err = shared.ParseAction("hover")
	assert.Error(t, err)
}

func TestNewManeuver(t *testing.T) {
	m, err := shared.NewManeuver("launch", "earth")
	require.NoError(t, err)
	assert.Equal(t, shared.ActionLaunch, m.Action)
	assert.Equal(t, shared.BodyEarth, m.Body)
	assert.Equal(t, "launch earth", m.String())
}

func TestNewManeuver_RejectsUnknownIdentifiers(t *testing.T) {
	_, err := shared.NewManeuver("teleport", "earth")
	assert.ErrorContains(t, err, "unknown maneuver action")

	_, err = shared.NewManeuver("land", "venus")
	assert.ErrorContains(t, err, "unknown celestial body")
}
