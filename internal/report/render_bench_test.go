package report

import (
	"context"
	"testing"
	"time"

	"github.com/rshade/footprint/internal/engine"
)

// BenchmarkBuildLayout_LargeList benchmarks pagination of a 1k item report.
func BenchmarkBuildLayout_LargeList(b *testing.B) {
	b.ReportAllocs()
	items := lineItems(1000, 12.5)

	b.ResetTimer()
	for b.Loop() {
		if layoutFor(DefaultGeometry(), items).PageCount() == 0 {
			b.Fatal("no pages")
		}
	}
}

// BenchmarkRender benchmarks a full render, chart and PDF included.
func BenchmarkRender(b *testing.B) {
	b.ReportAllocs()
	settings := engine.DefaultSettings()
	items := lineItems(50, 40)
	summary := engine.NewAggregator(settings).Summarize(items)
	renderer := NewRenderer(settings, Options{
		GeneratedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		ReportID:    "bench",
	})
	chart := NewPieChart()
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if _, err := renderer.Render(ctx, items, summary, chart); err != nil {
			b.Fatal(err)
		}
	}
}
