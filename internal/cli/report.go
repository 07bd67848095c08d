package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/report"
)

// newReportCmd creates the report command.
func newReportCmd(a *app) *cobra.Command {
	var (
		items  []string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a PDF carbon footprint report",
		Long: `Computes the footprint of the given items and writes
Carbon_Report_<date>.pdf with the totals, a breakdown chart, the itemized
list and, when over the monthly reference, recommendations.`,
		Example: `  footprint report --item electronics/laptop --item food/beef=2
  footprint report --item household/refrigerator --out-dir reports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(items) == 0 {
				return errNoItems
			}

			ctx := cmd.Context()
			session, _, _, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			if _, err = addItems(ctx, session, items, cmd.ErrOrStderr()); err != nil {
				return err
			}

			path, err := a.exportReport(ctx, session.Items(), session.Summary(), outDir)
			if err != nil {
				return err
			}
			cmd.Printf("Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "product as category/product[=quantity] (repeatable)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the PDF (default from config)")

	return cmd
}

// exportReport renders items into a PDF under outDir, or the configured
// directory when outDir is empty, and returns the written path.
func (a *app) exportReport(
	ctx context.Context,
	items []engine.LineItem,
	summary engine.FootprintSummary,
	outDir string,
) (string, error) {
	cfg, err := a.config()
	if err != nil {
		return "", err
	}
	settings, err := a.settings()
	if err != nil {
		return "", err
	}
	table, err := a.factorTable(ctx)
	if err != nil {
		return "", err
	}
	if outDir == "" {
		outDir = cfg.Report.OutDir
	}

	renderer := report.NewRenderer(settings, report.Options{
		Title:    cfg.Report.Title,
		Source:   table.Source(),
		Geometry: cfg.Report.Geometry(),
	})
	doc, err := renderer.Render(ctx, items, summary, report.NewPieChart())
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	path, err := doc.Save(outDir)
	if err != nil {
		return "", err
	}

	logger.Info().Ctx(ctx).
		Str("path", path).
		Str("report_id", doc.ReportID).
		Int("pages", doc.PageCount()).
		Msg("report exported")
	return path, nil
}
