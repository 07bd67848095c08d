package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
)

func TestBreakdownRows(t *testing.T) {
	rows := BreakdownRows([]engine.LineItem{
		{
			DisplayLabel: "Laptop", Quantity: 2,
			ProductionEmissions: 170, UsageEmissions: 1.5, TotalEmissions: 171.5,
		},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"1", "Laptop", "2", "170.0 kg", "1.5 kg", "171.5 kg"}, []string(rows[0]))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a much longer label", 10, "a much ..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.max), tt.in)
	}
}

func TestRenderBudgetBar(t *testing.T) {
	over := RenderBudgetBar(250, engine.RatingGood)
	assert.Equal(t, progressBarWidth, strings.Count(over, "█"))
	assert.Contains(t, over, "250.0%")

	half := RenderBudgetBar(50, engine.RatingVeryGood)
	assert.Equal(t, progressBarWidth/2, strings.Count(half, "█"))
	assert.Equal(t, progressBarWidth/2, strings.Count(half, "░"))
}

func TestRenderRecommendations(t *testing.T) {
	assert.Empty(t, RenderRecommendations(nil))

	out := RenderRecommendations(engine.Recommendations())
	for _, rec := range engine.Recommendations() {
		assert.Contains(t, out, rec.Text)
	}
}

func TestRenderSelector(t *testing.T) {
	out := RenderSelector("Category", []string{"food", "transport"}, 1, true)
	assert.Contains(t, out, "  food")
	assert.Contains(t, out, "> transport")

	assert.Contains(t, RenderSelector("Product", nil, 0, false), "(none)")
}

func TestProductOptions(t *testing.T) {
	opts := productOptions([]factors.Product{
		{Key: "jeans", Factor: factors.EmissionFactor{FactorPerUnit: 33.4, DisplayLabel: "Jeans"}},
	})
	assert.Equal(t, []string{"Jeans (33.4 kg)"}, opts)
}

func TestRenderCalculatorHelp(t *testing.T) {
	assert.Contains(t, RenderCalculatorHelp(StateItems), "d: Remove")
	assert.Contains(t, RenderCalculatorHelp(StateQuantity), "Enter: Add")
	assert.Contains(t, RenderCalculatorHelp(StateCategory), "r: Report")
}
