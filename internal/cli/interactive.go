package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/tui"
)

var errNotTerminal = errors.New("interactive mode requires a terminal, use calc or report instead")

// newInteractiveCmd creates the interactive command.
func newInteractiveCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Build a product list in an interactive calculator",
		Long: `Opens a terminal UI to pick products by category, set quantities, watch the
total and rating update, remove items, and export a PDF report with "r".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isWriterTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}

			ctx := cmd.Context()
			session, table, settings, err := a.newSession(ctx)
			if err != nil {
				return err
			}

			reportFn := func(ctx context.Context, items []engine.LineItem, summary engine.FootprintSummary) (string, error) {
				return a.exportReport(ctx, items, summary, outDir)
			}

			model := tui.NewCalculatorModel(ctx, table, session, settings, reportFn)
			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("running interactive calculator: %w", err)
			}

			logger.Debug().Ctx(ctx).Int("items", session.Len()).Msg("interactive session finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for exported PDFs (default from config)")

	return cmd
}
