package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file merged with the
project file, if any. Checks the calculation constants, palette colours,
report page settings, output format and logging settings.`,
		Example: `  footprint config validate
  footprint config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return fmt.Errorf("configuration could not be loaded: %w", err)
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("Configuration is valid\n")
			if verbose {
				printVerboseDetails(cmd, a)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// printVerboseDetails prints the effective configuration.
func printVerboseDetails(cmd *cobra.Command, a *app) {
	cfg := a.cfg
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", a.resolvedConfigPath)
	if a.projectDir != "" {
		cmd.Printf("  Project directory: %s\n", a.projectDir)
	}
	cmd.Printf("  Lifespan years: %d\n", cfg.Footprint.LifespanYears)
	cmd.Printf("  Reference budget: %g kg\n", cfg.Footprint.ReferenceBudget)
	cmd.Printf("  Palette: %s\n", strings.Join(cfg.Footprint.Palette, ", "))
	if cfg.Footprint.Dataset != "" {
		cmd.Printf("  Dataset: %s\n", cfg.Footprint.Dataset)
	} else {
		cmd.Println("  Dataset: built-in")
	}
	cmd.Printf("  Report: %s, %s, out dir %s\n", cfg.Report.Title, cfg.Report.PageSize, cfg.Report.OutDir)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
