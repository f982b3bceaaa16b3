package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/flightfuel-go/internal/application/common"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/pkg/utils"
)

// ComputeFuelHandler - Handles fuel computation commands. The handler wires
// validation before the engine: an invalid path short-circuits into a
// violations response and the engine is never invoked for it.
type ComputeFuelHandler struct {
	validator *flight.PathValidator
	engine    *flight.FuelEngine
}

// NewComputeFuelHandler creates a new compute fuel handler
func NewComputeFuelHandler(validator *flight.PathValidator, engine *flight.FuelEngine) *ComputeFuelHandler {
	return &ComputeFuelHandler{
		validator: validator,
		engine:    engine,
	}
}

// Handle executes the compute fuel command
func (h *ComputeFuelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.ComputeFuelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)

	result := h.validator.Validate(cmd.Mass, cmd.Maneuvers)
	if !result.IsValid() {
		logger.Log("DEBUG", "Fuel computation rejected by validation", map[string]interface{}{
			"violations": len(result.Violations),
		})
		return &types.ComputeFuelResponse{
			Valid:      false,
			Violations: result.Violations,
		}, nil
	}

	legCosts := h.engine.ComputeLegs(*cmd.Mass, cmd.Maneuvers)

	totalFuel := 0
	legs := make([]types.LegBreakdown, len(legCosts))
	for i, leg := range legCosts {
		totalFuel += leg.Fuel
		legs[i] = types.LegBreakdown{
			Action: leg.Maneuver.Action.Name(),
			Body:   leg.Maneuver.Body.Name(),
			Fuel:   leg.Fuel,
		}
	}

	response := &types.ComputeFuelResponse{
		ReportID:  utils.GenerateReportID("fuel-report"),
		Valid:     true,
		TotalFuel: totalFuel,
		TotalMass: *cmd.Mass + totalFuel,
		Legs:      legs,
	}

	logger.Log("DEBUG", "Fuel computed", map[string]interface{}{
		"report_id":  response.ReportID,
		"mass":       *cmd.Mass,
		"total_fuel": response.TotalFuel,
	})

	return response, nil
}
