package report

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
)

func TestPieChart_Capture(t *testing.T) {
	series := []engine.ChartPoint{
		{Label: "A", Value: 3, Color: "#ff0000"},
		{Label: "B", Value: 1, Color: "#0000ff"},
	}

	img, err := NewPieChart().Capture(context.Background(), series)
	require.NoError(t, err)
	require.Equal(t, DefaultChartPixelWidth, img.Bounds().Dx())
	require.Equal(t, DefaultChartPixelHeight, img.Bounds().Dy())

	cx, cy := DefaultChartPixelWidth/2, DefaultChartPixelHeight/2
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	// A covers three quarters clockwise from twelve o'clock, B the last one.
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(cx+50, cy)))
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(cx, cy+50)))
	assert.Equal(t, blue, color.RGBAModel.Convert(img.At(cx-50, cy-20)))

	// Corners are background.
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(0, 0)))
}

func TestPieChart_Errors(t *testing.T) {
	tests := []struct {
		name   string
		series []engine.ChartPoint
	}{
		{name: "empty", series: nil},
		{name: "all zero", series: []engine.ChartPoint{{Value: 0, Color: "#059669"}}},
		{name: "bad colour", series: []engine.ChartPoint{{Value: 1, Color: "green"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPieChart().Capture(context.Background(), tt.series)
			assert.ErrorIs(t, err, ErrChartCaptureUnavailable)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewPieChart().Capture(ctx, []engine.ChartPoint{{Value: 1, Color: "#059669"}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#10b981")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}, c)

	_, err = parseHexColor("#fff")
	require.Error(t, err)
	_, err = parseHexColor("#gggggg")
	require.Error(t, err)
}
