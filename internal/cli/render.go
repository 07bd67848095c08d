package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/tui"
)

// CalcResult is the JSON document printed by calc --output json.
type CalcResult struct {
	Items           []engine.LineItem           `json:"items"`
	Summary         engine.FootprintSummary     `json:"summary"`
	Equivalencies   *greenops.EquivalencyOutput `json:"equivalencies,omitempty"`
	Recommendations []engine.AdvisoryItem       `json:"recommendations"`
	Skipped         []string                    `json:"skipped,omitempty"`

	settings engine.Settings
}

func newCalcResult(session *engine.Session, settings engine.Settings, skipped []string) CalcResult {
	summary := session.Summary()
	result := CalcResult{
		Items:           session.Items(),
		Summary:         summary,
		Recommendations: session.Recommendations(),
		Skipped:         skipped,
		settings:        settings,
	}
	if result.Items == nil {
		result.Items = []engine.LineItem{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []engine.AdvisoryItem{}
	}
	if eq, err := greenops.Calculate(summary.TotalEmissions); err == nil && !eq.IsEmpty {
		result.Equivalencies = &eq
	}
	return result
}

// isWriterTerminal reports whether w is a terminal.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func renderCalcResult(w io.Writer, format string, result CalcResult) error {
	switch {
	case format == config.FormatJSON:
		return renderJSON(w, result)
	case isWriterTerminal(w):
		return renderCalcStyled(w, result)
	default:
		return renderCalcPlain(w, result)
	}
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderCalcPlain writes an aligned table for pipes and files.
func renderCalcPlain(w io.Writer, result CalcResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // standard padding
	fmt.Fprintln(tw, "#\tPRODUCT\tQTY\tPRODUCTION\tUSAGE\tTOTAL")
	fmt.Fprintln(tw, "-\t-------\t---\t----------\t-----\t-----")
	for i, item := range result.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			i+1,
			item.DisplayLabel,
			item.Quantity,
			greenops.FormatKg(item.ProductionEmissions),
			greenops.FormatKg(item.UsageEmissions),
			greenops.FormatKg(item.TotalEmissions),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nTotal:  %s CO2e\n", greenops.FormatKg(result.Summary.TotalEmissions))
	fmt.Fprintf(&sb, "Rating: %s\n", result.Summary.Rating.Label())
	fmt.Fprintf(&sb, "Budget: %s%% of %s monthly reference\n",
		greenops.FormatFloat(result.Summary.BudgetUtilization, 1),
		greenops.FormatKg(result.settings.ReferenceBudget))
	if result.Equivalencies != nil {
		fmt.Fprintf(&sb, "Equivalent to %s\n", result.Equivalencies.DisplayText)
	}
	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&sb, "  - %s\n", rec.Text)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderCalcStyled writes the lipgloss rendering used on terminals.
func renderCalcStyled(w io.Writer, result CalcResult) error {
	var sb strings.Builder

	sb.WriteString(tui.HeaderStyle.Render("ITEMS"))
	sb.WriteString("\n")
	for i, item := range result.Items {
		sb.WriteString(tui.LabelStyle.Render(fmt.Sprintf("%2d. %s (x%d)", i+1, item.DisplayLabel, item.Quantity)))
		sb.WriteString("  ")
		sb.WriteString(tui.ValueStyle.Render(greenops.FormatKg(item.TotalEmissions)))
		sb.WriteString("\n")
	}

	parts := []string{
		tui.BoxStyle.Render(strings.TrimRight(sb.String(), "\n")),
		tui.RenderSummary(result.Summary, result.settings),
	}
	if recs := tui.RenderRecommendations(result.Recommendations); recs != "" {
		parts = append(parts, recs)
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, parts...))
	return err
}
