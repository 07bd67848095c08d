package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

var errNoItems = errors.New("no items given, use --item category/product[=quantity]")

// newCalcCmd creates the calc command.
func newCalcCmd(a *app) *cobra.Command {
	var (
		items  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the carbon footprint of a product list",
		Long: `Computes production and usage emissions for each --item, then prints the
itemized breakdown, the total with its rating against the monthly reference
budget, relatable equivalencies and, when over budget, recommendations.`,
		Example: `  footprint calc --item electronics/laptop --item food/beef=2
  footprint calc --item clothing/jeans=3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(items) == 0 {
				return errNoItems
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Output.DefaultFormat
			}
			if output != config.FormatTable && output != config.FormatJSON {
				return fmt.Errorf("unsupported output format %q (use %s or %s)",
					output, config.FormatTable, config.FormatJSON)
			}

			ctx := cmd.Context()
			session, _, settings, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			skipped, err := addItems(ctx, session, items, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result := newCalcResult(session, settings, skipped)
			logger.Debug().Ctx(ctx).
				Int("items", len(result.Items)).
				Int("skipped", len(skipped)).
				Float64("total_kg", result.Summary.TotalEmissions).
				Msg("calculation complete")

			return renderCalcResult(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "product as category/product[=quantity] (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")

	return cmd
}
