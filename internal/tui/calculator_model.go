package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/logging"
)

// CalculatorState is the part of the calculator that has focus.
type CalculatorState int

const (
	// StateCategory lets the user pick a category.
	StateCategory CalculatorState = iota
	// StateProduct lets the user pick a product of the chosen category.
	StateProduct
	// StateQuantity edits the quantity of the chosen product.
	StateQuantity
	// StateItems focuses the line-item table for removal.
	StateItems
	// StateQuitting indicates the application is exiting.
	StateQuitting
)

// Catalog enumerates the products that can be added. *factors.Table
// implements it.
type Catalog interface {
	Categories() []string
	Products(category string) ([]factors.Product, error)
}

// ReportFunc exports the current list and returns the written path.
type ReportFunc func(ctx context.Context, items []engine.LineItem, summary engine.FootprintSummary) (string, error)

// reportDoneMsg is sent when a report export finishes.
type reportDoneMsg struct {
	path string
	err  error
}

// Default dimensions for the calculator.
const (
	calculatorDefaultWidth  = 100
	calculatorDefaultHeight = 30
	minTableHeight          = 5
	chromeHeight            = 18
	quantityCharLimit       = 6
)

// errNoItems is shown when a report is requested for an empty list.
var errNoItems = errors.New("add a product before exporting a report")

// CalculatorModel is the Bubble Tea model of the interactive calculator.
type CalculatorModel struct {
	ctx      context.Context
	catalog  Catalog
	session  *engine.Session
	settings engine.Settings

	categories []string
	products   []factors.Product
	catCursor  int
	prodCursor int

	quantity textinput.Model
	table    table.Model

	state     CalculatorState
	exporting bool
	status    string
	statusErr bool

	width  int
	height int

	reportFn ReportFunc
}

// NewCalculatorModel returns a model adding products from catalog into
// session. reportFn may be nil, in which case report export is disabled.
func NewCalculatorModel(
	ctx context.Context,
	catalog Catalog,
	session *engine.Session,
	settings engine.Settings,
	reportFn ReportFunc,
) *CalculatorModel {
	ti := textinput.New()
	ti.Placeholder = "1"
	ti.CharLimit = quantityCharLimit
	ti.Prompt = "Quantity: "

	m := &CalculatorModel{
		ctx:        ctx,
		catalog:    catalog,
		session:    session,
		settings:   settings,
		categories: catalog.Categories(),
		quantity:   ti,
		state:      StateCategory,
		width:      calculatorDefaultWidth,
		height:     calculatorDefaultHeight,
		reportFn:   reportFn,
	}
	m.table = NewBreakdownTable(session.Items(), m.tableHeight())
	m.loadProducts()
	return m
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case reportDoneMsg:
		return m.handleReportDone(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.state == StateQuantity {
		return m.handleQuantityKey(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "r":
		return m, m.triggerReport()
	case "tab":
		if m.state == StateItems {
			m.focusSelector()
		} else {
			m.focusItems()
		}
		return m, nil
	}

	switch m.state {
	case StateCategory:
		m.handleCategoryKey(key)
	case StateProduct:
		return m, m.handleProductKey(key)
	case StateItems:
		return m.handleItemsKey(msg)
	case StateQuantity, StateQuitting:
	}
	return m, nil
}

func (m *CalculatorModel) handleCategoryKey(key string) {
	switch key {
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
			m.loadProducts()
		}
	case "down", "j":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
			m.loadProducts()
		}
	case "enter", "right", "l":
		if len(m.products) > 0 {
			m.state = StateProduct
		}
	}
}

func (m *CalculatorModel) handleProductKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.prodCursor > 0 {
			m.prodCursor--
		}
	case "down", "j":
		if m.prodCursor < len(m.products)-1 {
			m.prodCursor++
		}
	case "esc", "left", "h":
		m.state = StateCategory
	case "enter":
		m.state = StateQuantity
		m.quantity.SetValue("")
		return m.quantity.Focus()
	}
	return nil
}

func (m *CalculatorModel) handleQuantityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.addSelected()
		m.quantity.Blur()
		m.state = StateProduct
		return m, nil
	case "esc":
		m.quantity.Blur()
		m.state = StateProduct
		return m, nil
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)
	return m, cmd
}

func (m *CalculatorModel) handleItemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d", "delete", "backspace":
		m.removeFocused()
		return m, nil
	case "esc":
		m.focusSelector()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// addSelected adds the highlighted product with the typed quantity. Lookup
// failures leave the list unchanged.
func (m *CalculatorModel) addSelected() {
	log := logging.FromContext(m.ctx)

	if m.prodCursor >= len(m.products) || m.catCursor >= len(m.categories) {
		return
	}
	category := m.categories[m.catCursor]
	product := m.products[m.prodCursor].Key

	qty, err := engine.ParseQuantity(m.quantity.Value())
	if err != nil {
		log.Debug().Err(err).Str("component", "tui").Msg("quantity defaulted to 1")
	}

	item, err := m.session.Add(m.ctx, category, product, qty)
	if err != nil {
		log.Debug().Err(err).
			Str("component", "tui").
			Str("category", category).
			Str("product", product).
			Msg("selection ignored")
		return
	}

	m.setStatus(fmt.Sprintf("Added %s (x%d)", item.DisplayLabel, item.Quantity), false)
	m.refreshTable()
	m.table.SetCursor(m.session.Len() - 1)
}

func (m *CalculatorModel) removeFocused() {
	if m.session.Len() == 0 {
		return
	}
	removed, err := m.session.Remove(m.table.Cursor())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Removed "+removed.DisplayLabel, false)
	m.refreshTable()
	if m.session.Len() == 0 {
		m.focusSelector()
	}
}

func (m *CalculatorModel) triggerReport() tea.Cmd {
	if m.reportFn == nil || m.exporting {
		return nil
	}
	if m.session.Len() == 0 {
		m.setStatus(errNoItems.Error(), true)
		return nil
	}

	m.exporting = true
	m.setStatus("Generating report...", false)

	ctx := m.ctx
	items := m.session.Items()
	summary := m.session.Summary()
	reportFn := m.reportFn

	return func() tea.Msg {
		path, err := reportFn(ctx, items, summary)
		return reportDoneMsg{path: path, err: err}
	}
}

func (m *CalculatorModel) handleReportDone(msg reportDoneMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	if msg.err != nil {
		m.setStatus("Report failed: "+msg.err.Error(), true)
		return m, nil
	}
	m.setStatus("Report saved to "+msg.path, false)
	return m, nil
}

func (m *CalculatorModel) quit() (tea.Model, tea.Cmd) {
	m.state = StateQuitting
	return m, tea.Quit
}

func (m *CalculatorModel) focusItems() {
	if m.session.Len() == 0 {
		return
	}
	m.state = StateItems
	m.table.Focus()
}

func (m *CalculatorModel) focusSelector() {
	m.state = StateCategory
	m.table.Blur()
}

func (m *CalculatorModel) loadProducts() {
	m.products = nil
	m.prodCursor = 0
	if m.catCursor >= len(m.categories) {
		return
	}
	products, err := m.catalog.Products(m.categories[m.catCursor])
	if err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Str("component", "tui").Msg("loading products")
		return
	}
	m.products = products
}

func (m *CalculatorModel) refreshTable() {
	m.table.SetRows(BreakdownRows(m.session.Items()))
	m.table.SetCursor(m.table.Cursor())
}

func (m *CalculatorModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *CalculatorModel) tableHeight() int {
	return max(m.height-chromeHeight, minTableHeight)
}

// View renders the current view.
func (m *CalculatorModel) View() string {
	if m.state == StateQuitting {
		return ""
	}

	var sb strings.Builder

	selectors := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderSelector("Category", m.categories, m.catCursor, m.state == StateCategory),
		RenderSelector("Product", productOptions(m.products), m.prodCursor,
			m.state == StateProduct || m.state == StateQuantity),
	)
	sb.WriteString(selectors)
	sb.WriteString("\n\n")

	if m.state == StateQuantity {
		sb.WriteString(m.quantity.View())
		sb.WriteString("\n\n")
	}

	if m.session.Len() == 0 {
		sb.WriteString(InfoStyle.Render("No products added yet."))
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n\n")
		sb.WriteString(RenderSummary(m.session.Summary(), m.settings))
		if recs := RenderRecommendations(m.session.Recommendations()); recs != "" {
			sb.WriteString("\n")
			sb.WriteString(recs)
		}
	}
	sb.WriteString("\n\n")

	if m.status != "" {
		style := InfoStyle
		if m.statusErr {
			style = CriticalStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(RenderCalculatorHelp(m.state))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
}

// Items returns the current line items.
func (m *CalculatorModel) Items() []engine.LineItem {
	return m.session.Items()
}
