package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/greenops"
)

// FactorRow is one product of the factors listing.
type FactorRow struct {
	Category string  `json:"category"`
	Product  string  `json:"product"`
	Label    string  `json:"label"`
	Unit     string  `json:"unit"`
	FactorKg float64 `json:"factor_kg"`
	UsageKg  float64 `json:"usage_kg_per_year"`
}

// newFactorsCmd creates the factors command.
func newFactorsCmd(a *app) *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List the emission factors of the dataset",
		Example: `  footprint factors
  footprint factors --category electronics --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Output.DefaultFormat
			}

			table, err := a.factorTable(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := factorRows(table, category)
			if err != nil {
				return err
			}

			switch output {
			case config.FormatJSON:
				return renderJSON(cmd.OutOrStdout(), rows)
			case config.FormatTable:
				return renderFactorsTable(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("unsupported output format %q (use %s or %s)",
					output, config.FormatTable, config.FormatJSON)
			}
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")

	return cmd
}

func factorRows(table *factors.Table, only string) ([]FactorRow, error) {
	categories := table.Categories()
	if only != "" {
		categories = []string{only}
	}

	rows := []FactorRow{}
	for _, category := range categories {
		products, err := table.Products(category)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			rows = append(rows, FactorRow{
				Category: category,
				Product:  p.Key,
				Label:    p.Factor.DisplayLabel,
				Unit:     p.Factor.Unit,
				FactorKg: p.Factor.FactorPerUnit,
				UsageKg:  p.Usage,
			})
		}
	}
	return rows, nil
}

func renderFactorsTable(w io.Writer, rows []FactorRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // standard padding
	fmt.Fprintln(tw, "CATEGORY\tPRODUCT\tLABEL\tFACTOR\tUNIT\tUSAGE/YEAR")
	fmt.Fprintln(tw, "--------\t-------\t-----\t------\t----\t----------")
	for _, r := range rows {
		usage := "-"
		if r.UsageKg > 0 {
			usage = greenops.FormatKg(r.UsageKg)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Category, r.Product, r.Label, greenops.FormatKg(r.FactorKg), r.Unit, usage)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
