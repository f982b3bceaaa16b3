package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/flightfuel-go/internal/application/common"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
)

// ValidateFlightPathHandler - Handles flight path validation queries
type ValidateFlightPathHandler struct {
	validator *flight.PathValidator
}

// NewValidateFlightPathHandler creates a new validation query handler
func NewValidateFlightPathHandler(validator *flight.PathValidator) *ValidateFlightPathHandler {
	return &ValidateFlightPathHandler{validator: validator}
}

// Handle executes the validation query
func (h *ValidateFlightPathHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*types.ValidateFlightPathQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	result := h.validator.Validate(query.Mass, query.Maneuvers)

	logger := common.LoggerFromContext(ctx)
	logger.Log("DEBUG", "Flight path validated", map[string]interface{}{
		"maneuvers":  len(query.Maneuvers),
		"valid":      result.IsValid(),
		"violations": len(result.Violations),
	})

	return &types.ValidateFlightPathResponse{
		Valid:      result.IsValid(),
		Violations: result.Violations,
	}, nil
}
