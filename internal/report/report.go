// Package report lays out the carbon footprint report and renders it to PDF.
//
// Rendering happens in two steps. A page state machine first places every
// header, totals, chart, itemized and recommendation element on pages,
// breaking to a new page whenever the vertical cursor runs past the bottom
// margin. The resulting Layout is then drawn with fpdf.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/logging"
)

const (
	// DefaultTitle is the header title of the report.
	DefaultTitle = "Carbon Footprint Report"

	fileNamePrefix = "Carbon_Report_"
	fileNameLayout = "2006-01-02"
	creator        = "footprint"
)

// Options controls rendering. Zero values take defaults.
type Options struct {
	Title string

	// Source is shown in the header, typically the dataset attribution.
	Source string

	// GeneratedAt stamps the header, the file name and the PDF metadata.
	// Defaults to the current UTC time.
	GeneratedAt time.Time

	// ReportID is recorded in the PDF subject. A ULID is generated if empty.
	ReportID string

	Geometry Geometry
}

// Document is a rendered report.
type Document struct {
	Name        string
	ReportID    string
	GeneratedAt time.Time
	Layout      Layout
	Bytes       []byte
}

// PageCount returns the number of pages of the document.
func (d *Document) PageCount() int {
	return d.Layout.PageCount()
}

// Save writes the document into dir under its Name and returns the path.
func (d *Document) Save(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, d.Name)
	if err := os.WriteFile(path, d.Bytes, 0o600); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// FileName returns "Carbon_Report_<YYYY-MM-DD>.pdf" for t.
func FileName(t time.Time) string {
	return fileNamePrefix + t.Format(fileNameLayout) + ".pdf"
}

// Renderer produces report documents.
type Renderer struct {
	settings engine.Settings
	opts     Options
}

// NewRenderer returns a Renderer. settings supply the reference budget used
// for the totals block and for gating recommendations.
func NewRenderer(settings engine.Settings, opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	opts.Geometry = opts.Geometry.withDefaults()
	return &Renderer{settings: settings, opts: opts}
}

// Render builds the report for items and summary. The chart bitmap comes
// from capturer; if it is nil, fails, or returns an empty image the whole
// report is aborted with ErrChartCaptureUnavailable. That is the only failure:
// an empty item list still renders header and totals when a bitmap is given.
func (r *Renderer) Render(
	ctx context.Context,
	items []engine.LineItem,
	summary engine.FootprintSummary,
	capturer ChartCapturer,
) (*Document, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "report").
		Str("operation", "Render").
		Logger()

	if capturer == nil {
		return nil, fmt.Errorf("%w: no chart capturer", ErrChartCaptureUnavailable)
	}

	chart, err := capturer.Capture(ctx, summary.ChartSeries)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("chart capture failed")
		return nil, fmt.Errorf("%w: %w", ErrChartCaptureUnavailable, err)
	}
	if chart == nil || chart.Bounds().Empty() {
		log.Warn().Ctx(ctx).Msg("chart capture returned no image")
		return nil, fmt.Errorf("%w: empty image", ErrChartCaptureUnavailable)
	}

	generatedAt := r.opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}
	reportID := r.opts.ReportID
	if reportID == "" {
		reportID = ulid.Make().String()
	}

	layout := buildLayout(r.opts.Geometry, layoutInput{
		Title:           r.opts.Title,
		Source:          r.opts.Source,
		GeneratedAt:     generatedAt,
		Items:           items,
		Summary:         summary,
		Recommendations: engine.SelectRecommendations(summary.TotalEmissions, r.settings),
		ReferenceBudget: r.settings.ReferenceBudget,
	})

	data, err := writePDF(layout, chart, pdfMeta{
		Title:     r.opts.Title,
		Subject:   "Report " + reportID,
		Creator:   creator,
		CreatedAt: generatedAt,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Ctx(ctx).
		Str("report_id", reportID).
		Int("items", len(items)).
		Int("pages", layout.PageCount()).
		Int("bytes", len(data)).
		Msg("report rendered")

	return &Document{
		Name:        FileName(generatedAt),
		ReportID:    reportID,
		GeneratedAt: generatedAt,
		Layout:      layout,
		Bytes:       data,
	}, nil
}
