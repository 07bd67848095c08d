package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

// Default A4 portrait geometry in millimetres.
const (
	DefaultPageWidth  = 210.0
	DefaultPageHeight = 297.0
	DefaultMargin     = 20.0
	DefaultLineHeight = 8.0

	defaultHeaderHeight = 30.0
	defaultChartWidth   = 120.0
	defaultChartAspect  = 2.0 / 3.0

	headingGap   = 6.0
	sectionGap   = 10.0
	badgeWidth   = 40.0
	badgeHeight  = 8.0
	swatchSize   = 3.0
	swatchOffset = 2.5
)

// Font sizes in points.
const (
	titleFontSize   = 20.0
	subtitleSize    = 10.0
	headingFontSize = 14.0
	totalFontSize   = 22.0
	bodyFontSize    = 11.0
	badgeFontSize   = 10.0
)

// Header and heading colours.
const (
	headerColor = "#059669"
	whiteColor  = "#ffffff"
	textColor   = "#1f2937"
	mutedColor  = "#6b7280"
	borderColor = "#d1d5db"
)

// Geometry fixes the page size and the spacing used by the layout, in mm.
// A zero or negative field means "use the DefaultGeometry value"; a margin of
// 0 therefore yields the 20 mm default, not an edge-to-edge page.
type Geometry struct {
	PageWidth    float64 `json:"page_width"`
	PageHeight   float64 `json:"page_height"`
	Margin       float64 `json:"margin"`
	LineHeight   float64 `json:"line_height"`
	HeaderHeight float64 `json:"header_height"`
	ChartWidth   float64 `json:"chart_width"`
	ChartAspect  float64 `json:"chart_aspect"`
}

// DefaultGeometry returns A4 portrait with 20 mm margins and 8 mm lines.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:    DefaultPageWidth,
		PageHeight:   DefaultPageHeight,
		Margin:       DefaultMargin,
		LineHeight:   DefaultLineHeight,
		HeaderHeight: defaultHeaderHeight,
		ChartWidth:   defaultChartWidth,
		ChartAspect:  defaultChartAspect,
	}
}

// withDefaults replaces zero or negative fields with DefaultGeometry values.
func (g Geometry) withDefaults() Geometry {
	d := DefaultGeometry()
	if g.PageWidth <= 0 {
		g.PageWidth = d.PageWidth
	}
	if g.PageHeight <= 0 {
		g.PageHeight = d.PageHeight
	}
	if g.Margin <= 0 {
		g.Margin = d.Margin
	}
	if g.LineHeight <= 0 {
		g.LineHeight = d.LineHeight
	}
	if g.HeaderHeight <= 0 {
		g.HeaderHeight = d.HeaderHeight
	}
	if g.ChartWidth <= 0 {
		g.ChartWidth = d.ChartWidth
	}
	if g.ChartAspect <= 0 {
		g.ChartAspect = d.ChartAspect
	}
	return g
}

// ChartHeight is the embedded chart height for the fixed aspect ratio.
func (g Geometry) ChartHeight() float64 {
	return g.ChartWidth * g.ChartAspect
}

// bottomLimit is the largest cursor position a line may start at.
func (g Geometry) bottomLimit() float64 {
	return g.PageHeight - g.Margin
}

// ElementKind identifies what an Element draws.
type ElementKind int

const (
	// ElementText draws Text with its baseline at Y.
	ElementText ElementKind = iota
	// ElementRect draws a rectangle, filled with Color when Fill is set.
	ElementRect
	// ElementBadge draws a filled rectangle with Text centred inside.
	ElementBadge
	// ElementImage places the chart bitmap.
	ElementImage
)

// Element is one positioned drawing instruction. Coordinates are millimetres
// from the top-left corner of the page.
type Element struct {
	Kind     ElementKind
	X, Y     float64
	W, H     float64
	Text     string
	FontSize float64
	Bold     bool
	Color    string
	Fill     bool
}

// Page is one page of the document.
type Page struct {
	Number   int
	Elements []Element
}

// Layout is the backend-independent description of a report.
type Layout struct {
	Geometry Geometry
	Pages    []Page
}

// PageCount returns the number of pages.
func (l Layout) PageCount() int {
	return len(l.Pages)
}

// Find returns the page index and element of the first text element whose
// text starts with prefix.
func (l Layout) Find(prefix string) (int, Element, bool) {
	for i, page := range l.Pages {
		for _, el := range page.Elements {
			if el.Kind == ElementText && strings.HasPrefix(el.Text, prefix) {
				return i, el, true
			}
		}
	}
	return -1, Element{}, false
}

// Texts returns the text of every text or badge element in order.
func (l Layout) Texts() []string {
	var out []string
	for _, page := range l.Pages {
		for _, el := range page.Elements {
			if el.Kind == ElementText || el.Kind == ElementBadge {
				out = append(out, el.Text)
			}
		}
	}
	return out
}

// layoutInput carries everything the layout needs.
type layoutInput struct {
	Title           string
	Source          string
	GeneratedAt     time.Time
	Items           []engine.LineItem
	Summary         engine.FootprintSummary
	Recommendations []engine.AdvisoryItem
	ReferenceBudget float64
}

// builder is the page state machine: a vertical cursor on the current page.
// Every itemized-list and recommendation line checks the cursor first and
// starts a new page at the top margin when the cursor is past the bottom
// limit.
type builder struct {
	geo    Geometry
	pages  []Page
	cursor float64
}

func newBuilder(geo Geometry) *builder {
	b := &builder{geo: geo}
	b.newPage()
	return b
}

func (b *builder) newPage() {
	b.pages = append(b.pages, Page{Number: len(b.pages) + 1})
	b.cursor = b.geo.Margin
}

func (b *builder) add(el Element) {
	p := &b.pages[len(b.pages)-1]
	p.Elements = append(p.Elements, el)
}

func (b *builder) text(x float64, s string, size float64, bold bool, color string) {
	b.add(Element{Kind: ElementText, X: x, Y: b.cursor, Text: s, FontSize: size, Bold: bold, Color: color})
}

// line writes one paginated line and advances the cursor.
func (b *builder) line(s string, size float64, bold bool, swatch string) {
	if b.cursor > b.geo.bottomLimit() {
		b.newPage()
	}
	x := b.geo.Margin
	if swatch != "" {
		b.add(Element{
			Kind: ElementRect, X: x, Y: b.cursor - swatchOffset,
			W: swatchSize, H: swatchSize, Color: swatch, Fill: true,
		})
		x += swatchSize + 2
	}
	b.text(x, s, size, bold, textColor)
	b.cursor += b.geo.LineHeight
}

func buildLayout(geo Geometry, in layoutInput) Layout {
	geo = geo.withDefaults()
	b := newBuilder(geo)

	b.header(in)
	b.totals(in)
	b.chart()
	b.itemized(in.Items, in.Summary.ChartSeries)
	if len(in.Recommendations) > 0 {
		b.recommendations(in.Recommendations)
	}

	return Layout{Geometry: geo, Pages: b.pages}
}

func (b *builder) header(in layoutInput) {
	g := b.geo
	b.add(Element{Kind: ElementRect, X: 0, Y: 0, W: g.PageWidth, H: g.HeaderHeight, Color: headerColor, Fill: true})

	b.cursor = g.HeaderHeight / 2
	b.text(g.Margin, in.Title, titleFontSize, true, whiteColor)

	b.cursor = g.HeaderHeight - subtitleSize/2
	sub := "Generated " + in.GeneratedAt.Format("2006-01-02 15:04 MST")
	if in.Source != "" {
		sub += " | " + in.Source
	}
	b.text(g.Margin, sub, subtitleSize, false, whiteColor)

	b.cursor = g.HeaderHeight + sectionGap
}

func (b *builder) totals(in layoutInput) {
	g := b.geo
	s := in.Summary

	b.text(g.Margin, "Total Carbon Footprint", headingFontSize, true, textColor)
	b.cursor += g.LineHeight + 2

	b.text(g.Margin, greenops.FormatKg(s.TotalEmissions)+" CO2e", totalFontSize, true, textColor)
	b.cursor += 4

	b.add(Element{
		Kind: ElementBadge, X: g.Margin, Y: b.cursor, W: badgeWidth, H: badgeHeight,
		Text: s.Rating.Label(), FontSize: badgeFontSize, Bold: true, Color: s.Rating.Color(), Fill: true,
	})
	b.cursor += badgeHeight + headingGap

	detail := fmt.Sprintf("%s of the %s monthly reference", formatPercent(s.BudgetUtilization),
		greenops.FormatKg(in.ReferenceBudget))
	if eq, err := greenops.Calculate(s.TotalEmissions); err == nil && !eq.IsEmpty {
		detail = eq.DisplayText + ". " + detail
	}
	b.text(g.Margin, detail, subtitleSize, false, mutedColor)
	b.cursor += sectionGap
}

func (b *builder) chart() {
	g := b.geo
	b.text(g.Margin, "Emissions Breakdown", headingFontSize, true, textColor)
	b.cursor += headingGap

	w, h := g.ChartWidth, g.ChartHeight()
	x := (g.PageWidth - w) / 2
	b.add(Element{Kind: ElementImage, X: x, Y: b.cursor, W: w, H: h})
	b.add(Element{Kind: ElementRect, X: x, Y: b.cursor, W: w, H: h, Color: borderColor})
	b.cursor += h + sectionGap
}

func (b *builder) itemized(items []engine.LineItem, series []engine.ChartPoint) {
	b.line("Itemized Products", headingFontSize, true, "")
	for i, item := range items {
		swatch := ""
		if i < len(series) {
			swatch = series[i].Color
		}
		b.line(ItemLine(i, item), bodyFontSize, false, swatch)
	}
}

func (b *builder) recommendations(recs []engine.AdvisoryItem) {
	b.cursor += headingGap
	b.line("Sustainability Recommendations", headingFontSize, true, "")
	for _, rec := range recs {
		b.line("- "+rec.Text, bodyFontSize, false, "")
	}
}

// ItemLine formats the i-th (0-based) line item as
// "{i+1}. {label} (x{qty}) - {total} kg" with the total to one decimal.
func ItemLine(i int, item engine.LineItem) string {
	return fmt.Sprintf("%d. %s (x%d) - %.1f kg", i+1, item.DisplayLabel, item.Quantity, item.TotalEmissions)
}

func formatPercent(p float64) string {
	return greenops.FormatFloat(p, 1) + "%"
}
