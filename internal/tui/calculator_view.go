package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/greenops"
)

// Layout constants.
const (
	progressBarWidth = 30
	selectorWidth    = 28
	maxLabelLen      = 24
	truncateSuffix   = "..."

	colIndexWidth  = 3
	colLabelWidth  = maxLabelLen
	colQtyWidth    = 5
	colAmountWidth = 12
)

// NewBreakdownTable builds the line-item table.
func NewBreakdownTable(items []engine.LineItem, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: colIndexWidth},
		{Title: "Product", Width: colLabelWidth},
		{Title: "Qty", Width: colQtyWidth},
		{Title: "Production", Width: colAmountWidth},
		{Title: "Usage", Width: colAmountWidth},
		{Title: "Total", Width: colAmountWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(BreakdownRows(items)),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(ColorHeader).
		Bold(false)
	t.SetStyles(s)

	return t
}

// BreakdownRows converts line items into table rows.
func BreakdownRows(items []engine.LineItem) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for i, item := range items {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			truncate(item.DisplayLabel, maxLabelLen),
			fmt.Sprintf("%d", item.Quantity),
			greenops.FormatKg(item.ProductionEmissions),
			greenops.FormatKg(item.UsageEmissions),
			greenops.FormatKg(item.TotalEmissions),
		})
	}
	return rows
}

// RenderSelector renders a vertical pick list with the cursor row marked.
func RenderSelector(title string, options []string, cursor int, active bool) string {
	var sb strings.Builder

	titleStyle := LabelStyle
	if active {
		titleStyle = HeaderStyle
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	if len(options) == 0 {
		sb.WriteString(InfoStyle.Render("(none)"))
		return lipgloss.NewStyle().Width(selectorWidth).Render(sb.String())
	}

	for i, opt := range options {
		line := "  " + truncate(opt, maxLabelLen)
		if i == cursor {
			line = "> " + truncate(opt, maxLabelLen)
			if active {
				line = SelectedStyle.Render(line)
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(selectorWidth).Render(strings.TrimRight(sb.String(), "\n"))
}

// productOptions returns display labels for a product list.
func productOptions(products []factors.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = fmt.Sprintf("%s (%s)", p.Factor.DisplayLabel, greenops.FormatKg(p.Factor.FactorPerUnit))
	}
	return out
}

// RenderSummary renders total, rating badge, budget bar and equivalencies.
func RenderSummary(summary engine.FootprintSummary, settings engine.Settings) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("CARBON FOOTPRINT"))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Total:   "))
	sb.WriteString(ValueStyle.Render(greenops.FormatKg(summary.TotalEmissions) + " CO2e"))
	sb.WriteString("  ")
	sb.WriteString(RatingBadge(summary.Rating))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Budget:  "))
	sb.WriteString(RenderBudgetBar(summary.BudgetUtilization, summary.Rating))
	sb.WriteString(LabelStyle.Render(fmt.Sprintf(" of %s", greenops.FormatKg(settings.ReferenceBudget))))

	if eq, err := greenops.Calculate(summary.TotalEmissions); err == nil && !eq.IsEmpty {
		sb.WriteString("\n")
		sb.WriteString(InfoStyle.Render("≈ " + eq.DisplayText))
	}

	return BoxStyle.Render(sb.String())
}

// RenderBudgetBar renders utilization as a bar capped at 100% plus the
// uncapped percentage.
func RenderBudgetBar(utilization float64, tier engine.RatingTier) string {
	ratio := math.Max(0, math.Min(utilization/100, 1)) //nolint:mnd // percent to ratio
	filled := int(math.Round(ratio * progressBarWidth))

	bar := lipgloss.NewStyle().Foreground(ratingColor(tier)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("░", progressBarWidth-filled))

	return bar + " " + ValueStyle.Render(greenops.FormatFloat(utilization, 1)+"%")
}

// RenderRecommendations renders the advisory list, or "" when empty.
func RenderRecommendations(recs []engine.AdvisoryItem) string {
	if len(recs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(WarningStyle.Render("Over the monthly reference. Ways to reduce:"))
	for _, rec := range recs {
		sb.WriteString("\n  ")
		sb.WriteString(rec.Icon)
		sb.WriteString(" ")
		sb.WriteString(rec.Text)
	}
	return sb.String()
}

// RenderCalculatorHelp renders the keyboard shortcuts for state.
func RenderCalculatorHelp(state CalculatorState) string {
	var shortcuts []string
	switch state {
	case StateQuantity:
		shortcuts = []string{"Enter: Add", "Esc: Back"}
	case StateItems:
		shortcuts = []string{"↑/↓: Navigate", "d: Remove", "Tab: Products", "r: Report", "q: Quit"}
	case StateCategory, StateProduct, StateQuitting:
		shortcuts = []string{"↑/↓: Navigate", "Enter: Select", "Esc: Back", "Tab: Items", "r: Report", "q: Quit"}
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Join(shortcuts, " | "))
}

// truncate shortens s to maxLen runes, ending with "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(truncateSuffix) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(truncateSuffix)]) + truncateSuffix
}
