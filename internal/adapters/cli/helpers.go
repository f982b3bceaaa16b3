package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// buildFlightPath assembles the host-owned plan from command-line flags.
// hasMass distinguishes an omitted --mass flag from an explicit zero.
func buildFlightPath(mass int, hasMass bool, steps []string) (*flight.FlightPath, error) {
	maneuvers, err := parseSteps(steps)
	if err != nil {
		return nil, err
	}

	fp := flight.NewFlightPath()
	if hasMass {
		fp.SetMass(mass)
	}
	for _, m := range maneuvers {
		fp.AddManeuver(m)
	}
	return fp, nil
}

// parseSteps converts "action:body" flag values into maneuvers. Parsing
// happens once here at the boundary; past it only closed-set types flow.
func parseSteps(steps []string) ([]shared.Maneuver, error) {
	maneuvers := make([]shared.Maneuver, 0, len(steps))
	for _, step := range steps {
		parts := strings.SplitN(step, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid step %q: expected action:body, e.g. launch:earth", step)
		}
		m, err := shared.NewManeuver(parts[0], parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid step %q: %w", step, err)
		}
		maneuvers = append(maneuvers, m)
	}
	return maneuvers, nil
}

// violationDTO is the JSON shape of a violation
type violationDTO struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func violationsToDTO(violations []flight.Violation) []violationDTO {
	dtos := make([]violationDTO, len(violations))
	for i, v := range violations {
		dtos[i] = violationDTO{
			Code:    string(v.Code),
			Field:   v.Field,
			Message: v.Message,
		}
	}
	return dtos
}

func printViolations(violations []flight.Violation) {
	fmt.Println("✗ Flight path is not calculable:")
	for _, v := range violations {
		fmt.Printf("  - [%s] %s\n", v.Code, v.Message)
	}
}

// formatCount renders an integer, optionally grouping digits in thousands
// (51898 -> 51,898) when enabled in the output config.
func formatCount(n int, groupDigits bool) string {
	s := fmt.Sprintf("%d", n)
	if !groupDigits {
		return s
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteRune(',')
		}
		sb.WriteRune(digit)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
