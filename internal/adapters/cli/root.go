package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/flightfuel-go/internal/application/common"
	flightCommands "github.com/andrescamacho/flightfuel-go/internal/application/flight/commands"
	flightQueries "github.com/andrescamacho/flightfuel-go/internal/application/flight/queries"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/infrastructure/config"
	"github.com/andrescamacho/flightfuel-go/internal/infrastructure/logging"
)

var (
	// Global flags
	configPath   string
	outputFormat string
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flightfuel",
		Short: "Flight fuel calculator - validate flight paths and compute propellant mass",
		Long: `Flight fuel calculator validates a sequence of launch and landing maneuvers
against known celestial bodies and computes the total propellant mass needed
to fly it, accounting for the mass of the fuel itself.

Examples:
  flightfuel plan compute --mass 28801 --step launch:earth --step land:moon --step launch:moon --step land:earth
  flightfuel plan validate --mass 14606 --step launch:earth --step land:mars
  flightfuel bodies`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search flightfuel.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"Report format: text or json (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewBodiesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newAppContext loads configuration and wires the mediator with the flight
// handlers. Returned context carries the configured logger.
func newAppContext() (context.Context, common.Mediator, *config.Config, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if cfg.Output.Format != "text" && cfg.Output.Format != "json" {
		return nil, nil, nil, fmt.Errorf("unsupported output format %q (want text or json)", cfg.Output.Format)
	}

	validator := flight.NewPathValidator()
	engine := flight.NewFuelEngine()

	m := common.NewMediator()
	if err := common.RegisterHandler[*types.ValidateFlightPathQuery](m,
		flightQueries.NewValidateFlightPathHandler(validator)); err != nil {
		return nil, nil, nil, err
	}
	if err := common.RegisterHandler[*types.ComputeFuelCommand](m,
		flightCommands.NewComputeFuelHandler(validator, engine)); err != nil {
		return nil, nil, nil, err
	}

	ctx := common.WithLogger(context.Background(), logging.NewLogger(cfg.Logging))
	return ctx, m, cfg, nil
}
