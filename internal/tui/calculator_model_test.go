package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
)

func testCatalog(t *testing.T) *factors.Table {
	t.Helper()
	table, err := factors.NewTable(
		map[string]map[string]factors.EmissionFactor{
			"electronics": {
				"laptop":     {FactorPerUnit: 85, DisplayLabel: "Laptop", Unit: "per item"},
				"television": {FactorPerUnit: 400, DisplayLabel: "Television", Unit: "per item"},
			},
			"household": {
				"led_bulb": {FactorPerUnit: 5.5, DisplayLabel: "LED Bulb", Unit: "per item"},
			},
		},
		map[string]float64{"laptop": 0.5},
	)
	require.NoError(t, err)
	return table
}

func newTestModel(t *testing.T, reportFn ReportFunc) *CalculatorModel {
	t.Helper()
	catalog := testCatalog(t)
	settings := engine.DefaultSettings()
	session := engine.NewSession(engine.NewCalculator(catalog, settings), engine.NewAggregator(settings))
	return NewCalculatorModel(context.Background(), catalog, session, settings, reportFn)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *CalculatorModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestNewCalculatorModel(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, StateCategory, m.state)
	assert.Equal(t, []string{"electronics", "household"}, m.categories)
	require.Len(t, m.products, 2)
	assert.Equal(t, "laptop", m.products[0].Key)
	assert.Nil(t, m.Init())
}

func TestCalculatorModel_AddProduct(t *testing.T) {
	m := newTestModel(t, nil)

	// electronics -> laptop -> quantity 2
	press(m, keyEnter)
	assert.Equal(t, StateProduct, m.state)
	press(m, keyEnter)
	assert.Equal(t, StateQuantity, m.state)
	press(m, keyRunes("2"), keyEnter)

	assert.Equal(t, StateProduct, m.state)
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "laptop", items[0].ProductKey)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 85.0*2+0.5*3, items[0].TotalEmissions, 1e-9)
	assert.Contains(t, m.status, "Added Laptop (x2)")
}

func TestCalculatorModel_QuantityDefaults(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  int
	}{
		{name: "empty", typed: "", want: 1},
		{name: "not a number", typed: "abc", want: 1},
		{name: "zero", typed: "0", want: 1},
		{name: "three", typed: "3", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			press(m, keyEnter, keyEnter)
			if tt.typed != "" {
				press(m, keyRunes(tt.typed))
			}
			press(m, keyEnter)

			items := m.Items()
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Quantity)
		})
	}
}

func TestCalculatorModel_EscCancelsQuantity(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyEnter, keyEnter, keyRunes("4"), keyEsc)

	assert.Equal(t, StateProduct, m.state)
	assert.Empty(t, m.Items())

	press(m, keyEsc)
	assert.Equal(t, StateCategory, m.state)
}

func TestCalculatorModel_UnknownProductIsNoOp(t *testing.T) {
	m := newTestModel(t, nil)
	m.products = []factors.Product{{Key: "toaster"}}

	press(m, keyEnter, keyEnter, keyEnter)

	assert.Empty(t, m.Items())
	assert.Empty(t, m.status)
}

func TestCalculatorModel_CategoryNavigation(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyDown)

	assert.Equal(t, 1, m.catCursor)
	require.Len(t, m.products, 1)
	assert.Equal(t, "led_bulb", m.products[0].Key)

	// Cursor stops at the last category.
	press(m, keyDown)
	assert.Equal(t, 1, m.catCursor)
}

func TestCalculatorModel_RemoveItem(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyEnter, keyEnter, keyEnter)                // laptop
	press(m, keyDown, keyEnter, keyRunes("1"), keyEnter) // television
	require.Len(t, m.Items(), 2)

	press(m, keyTab)
	require.Equal(t, StateItems, m.state)

	// The table cursor sits on the latest addition.
	press(m, keyRunes("d"))
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "laptop", items[0].ProductKey)
	assert.Equal(t, StateItems, m.state)

	press(m, keyRunes("d"))
	assert.Empty(t, m.Items())
	assert.Equal(t, StateCategory, m.state, "focus returns to the selector when the list empties")
}

func TestCalculatorModel_TabWithoutItems(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyTab)
	assert.Equal(t, StateCategory, m.state)
}

func TestCalculatorModel_SummaryUpdates(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyEnter, keyDown, keyEnter, keyRunes("1"), keyEnter) // television 400

	summary := m.session.Summary()
	assert.InDelta(t, 400.0, summary.TotalEmissions, 1e-9)
	assert.Equal(t, engine.RatingOkay, summary.Rating)

	view := m.View()
	assert.Contains(t, view, "400.0 kg CO2e")
	assert.Contains(t, view, "Okay")
	assert.Contains(t, view, "Choose refurbished electronics")
}

func TestCalculatorModel_Report(t *testing.T) {
	t.Run("disabled without callback", func(t *testing.T) {
		m := newTestModel(t, nil)
		assert.Nil(t, press(m, keyRunes("r")))
	})

	t.Run("empty list", func(t *testing.T) {
		called := false
		m := newTestModel(t, func(context.Context, []engine.LineItem, engine.FootprintSummary) (string, error) {
			called = true
			return "", nil
		})
		assert.Nil(t, press(m, keyRunes("r")))
		assert.False(t, called)
		assert.True(t, m.statusErr)
	})

	t.Run("success", func(t *testing.T) {
		var gotItems []engine.LineItem
		m := newTestModel(t, func(_ context.Context, items []engine.LineItem, _ engine.FootprintSummary) (string, error) {
			gotItems = items
			return "/tmp/Carbon_Report_2026-10-19.pdf", nil
		})
		press(m, keyEnter, keyEnter, keyEnter)

		cmd := press(m, keyRunes("r"))
		require.NotNil(t, cmd)
		assert.True(t, m.exporting)

		press(m, cmd())
		assert.False(t, m.exporting)
		assert.Len(t, gotItems, 1)
		assert.Equal(t, "Report saved to /tmp/Carbon_Report_2026-10-19.pdf", m.status)
		assert.False(t, m.statusErr)
	})

	t.Run("failure", func(t *testing.T) {
		m := newTestModel(t, func(context.Context, []engine.LineItem, engine.FootprintSummary) (string, error) {
			return "", errors.New("chart capture unavailable")
		})
		press(m, keyEnter, keyEnter, keyEnter)

		cmd := press(m, keyRunes("r"))
		require.NotNil(t, cmd)
		press(m, cmd())
		assert.True(t, m.statusErr)
		assert.Contains(t, m.status, "chart capture unavailable")
		assert.Len(t, m.Items(), 1, "a failed export keeps the list")
	})
}

func TestCalculatorModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, nil)
		cmd := press(m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, StateQuitting, m.state)
		assert.Empty(t, m.View())
	}
}

func TestCalculatorModel_QTypedAsQuantityDoesNotQuit(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, keyEnter, keyEnter)
	press(m, keyRunes("q"))

	assert.Equal(t, StateQuantity, m.state)
	assert.Equal(t, "q", m.quantity.Value())
}

func TestCalculatorModel_WindowSize(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-chromeHeight, m.tableHeight())
}

func TestCalculatorModel_View(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	assert.Contains(t, view, "Category")
	assert.Contains(t, view, "electronics")
	assert.Contains(t, view, "No products added yet.")
	assert.True(t, strings.Contains(view, "q: Quit"))
}
