package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calc, report, factors, interactive and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult
	a := &app{}

	cmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Carbon footprint calculator for everyday products",
		Long:          "footprint: estimate the embodied and usage CO2e of products and export PDF reports",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.load(cmd)
			result := setupLogging(cmd, a.cfg)
			logResult = &result
			if a.loadErr != nil {
				logger.Warn().Ctx(cmd.Context()).Err(a.loadErr).Msg("configuration could not be loaded, using defaults")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.footprint/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.projectDirFlag, "project-dir", "",
		"project directory holding .footprint/config.yaml (default: nearest .footprint above the working directory)")
	cmd.PersistentFlags().StringVar(&a.datasetPath, "dataset", "", "emission factor dataset (default: built-in)")

	cmd.AddCommand(
		newCalcCmd(a),
		newReportCmd(a),
		newFactorsCmd(a),
		newInteractiveCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

const rootCmdExample = `  # Footprint of two laptops and a pair of jeans
  footprint calc --item electronics/laptop=2 --item clothing/jeans

  # Same, as JSON
  footprint calc --item electronics/laptop=2 --item clothing/jeans --output json

  # Export a PDF report into ./reports
  footprint report --item food/beef=3 --item transport/car_mile=120 --out-dir reports

  # Browse the emission factors
  footprint factors --category household

  # Build a list interactively
  footprint interactive

  # Initialize configuration
  footprint config init`

// newConfigCmd creates the config command group.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(a), newConfigValidateCmd(a))
	return cmd
}
