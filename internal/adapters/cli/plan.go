package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
)

// NewPlanCommand creates the plan command group
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate flight plans and compute their fuel requirements",
	}

	cmd.AddCommand(newPlanValidateCommand())
	cmd.AddCommand(newPlanComputeCommand())

	return cmd
}

func newPlanValidateCommand() *cobra.Command {
	var (
		mass  int
		steps []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a flight plan is physically coherent",
		Long: `Check whether a flight plan is physically coherent: positive mass, starts
with a launch, ends with a landing, alternates launches and landings, and
only launches from the body last landed on.

Examples:
  flightfuel plan validate --mass 28801 --step launch:earth --step land:moon --step launch:moon --step land:earth
  flightfuel plan validate --step land:earth`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := buildFlightPath(mass, cmd.Flags().Changed("mass"), steps)
			if err != nil {
				return err
			}

			query := &types.ValidateFlightPathQuery{Maneuvers: fp.Maneuvers()}
			if m, ok := fp.Mass(); ok {
				query.Mass = &m
			}

			ctx, m, cfg, err := newAppContext()
			if err != nil {
				return err
			}

			response, err := m.Send(ctx, query)
			if err != nil {
				return err
			}
			result := response.(*types.ValidateFlightPathResponse)

			if cfg.Output.Format == "json" {
				return printValidateJSON(result)
			}

			if result.Valid {
				fmt.Println("✓ Flight path is calculable")
				return nil
			}
			printViolations(result.Violations)
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().IntVar(&mass, "mass", 0, "Spacecraft payload mass in kilograms")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "Maneuver as action:body (repeatable, in flight order)")

	return cmd
}

func newPlanComputeCommand() *cobra.Command {
	var (
		mass  int
		steps []string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the total propellant mass for a flight plan",
		Long: `Compute the total propellant mass for a flight plan. The plan is validated
first; an incoherent plan prints its violations and exits non-zero.

Examples:
  flightfuel plan compute --mass 28801 --step launch:earth --step land:moon --step launch:moon --step land:earth
  flightfuel plan compute --mass 14606 --step launch:earth --step land:mars --step launch:mars --step land:earth -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := buildFlightPath(mass, cmd.Flags().Changed("mass"), steps)
			if err != nil {
				return err
			}

			command := &types.ComputeFuelCommand{Maneuvers: fp.Maneuvers()}
			if m, ok := fp.Mass(); ok {
				command.Mass = &m
			}

			ctx, m, cfg, err := newAppContext()
			if err != nil {
				return err
			}

			response, err := m.Send(ctx, command)
			if err != nil {
				return err
			}
			result := response.(*types.ComputeFuelResponse)

			if cfg.Output.Format == "json" {
				return printComputeJSON(result)
			}

			if !result.Valid {
				printViolations(result.Violations)
				os.Exit(1)
				return nil
			}

			group := cfg.Output.GroupDigits
			fmt.Println("✓ Fuel report", result.ReportID)
			for _, leg := range result.Legs {
				fmt.Printf("  %-6s %-5s  %s kg\n", leg.Action, leg.Body, formatCount(leg.Fuel, group))
			}
			fmt.Printf("  Total fuel:  %s kg\n", formatCount(result.TotalFuel, group))
			fmt.Printf("  Total mass:  %s kg\n", formatCount(result.TotalMass, group))
			return nil
		},
	}

	cmd.Flags().IntVar(&mass, "mass", 0, "Spacecraft payload mass in kilograms")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "Maneuver as action:body (repeatable, in flight order)")

	return cmd
}

func printValidateJSON(result *types.ValidateFlightPathResponse) error {
	payload := struct {
		Valid      bool           `json:"valid"`
		Violations []violationDTO `json:"violations"`
	}{
		Valid:      result.Valid,
		Violations: violationsToDTO(result.Violations),
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func printComputeJSON(result *types.ComputeFuelResponse) error {
	type legDTO struct {
		Action string `json:"action"`
		Body   string `json:"body"`
		Fuel   int    `json:"fuel"`
	}
	payload := struct {
		ReportID   string         `json:"report_id,omitempty"`
		Valid      bool           `json:"valid"`
		Violations []violationDTO `json:"violations,omitempty"`
		TotalFuel  int            `json:"total_fuel"`
		TotalMass  int            `json:"total_mass"`
		Legs       []legDTO       `json:"legs,omitempty"`
	}{
		ReportID:   result.ReportID,
		Valid:      result.Valid,
		Violations: violationsToDTO(result.Violations),
		TotalFuel:  result.TotalFuel,
		TotalMass:  result.TotalMass,
	}
	for _, leg := range result.Legs {
		payload.Legs = append(payload.Legs, legDTO{Action: leg.Action, Body: leg.Body, Fuel: leg.Fuel})
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
