package report

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/engine"
)

// Default raster size of PieChart. The ratio matches defaultChartAspect.
const (
	DefaultChartPixelWidth  = 600
	DefaultChartPixelHeight = 400

	chartPadding = 16
)

// ChartCapturer produces the chart bitmap embedded in the report.
type ChartCapturer interface {
	Capture(ctx context.Context, series []engine.ChartPoint) (image.Image, error)
}

// CapturerFunc adapts a function to ChartCapturer.
type CapturerFunc func(ctx context.Context, series []engine.ChartPoint) (image.Image, error)

// Capture calls f.
func (f CapturerFunc) Capture(ctx context.Context, series []engine.ChartPoint) (image.Image, error) {
	return f(ctx, series)
}

// PieChart rasterizes the chart series as a pie, one slice per point, drawn
// clockwise from twelve o'clock in series order.
type PieChart struct {
	Width      int
	Height     int
	Background color.Color
}

// NewPieChart returns a PieChart with the default size on white.
func NewPieChart() PieChart {
	return PieChart{Width: DefaultChartPixelWidth, Height: DefaultChartPixelHeight, Background: color.White}
}

type slice struct {
	end   float64
	color color.Color
}

// Capture renders series. A series without positive values cannot be drawn
// and returns ErrChartCaptureUnavailable.
func (p PieChart) Capture(ctx context.Context, series []engine.ChartPoint) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0.0
	for _, pt := range series {
		if pt.Value > 0 {
			total += pt.Value
		}
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: nothing to draw", ErrChartCaptureUnavailable)
	}

	w, h := p.Width, p.Height
	if w <= 0 || h <= 0 {
		w, h = DefaultChartPixelWidth, DefaultChartPixelHeight
	}
	bg := p.Background
	if bg == nil {
		bg = color.White
	}

	slices := make([]slice, 0, len(series))
	acc := 0.0
	for _, pt := range series {
		if pt.Value <= 0 {
			continue
		}
		acc += pt.Value / total * 2 * math.Pi
		c, err := parseHexColor(pt.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrChartCaptureUnavailable, err)
		}
		slices = append(slices, slice{end: acc, color: c})
	}
	// Guard against rounding leaving a gap at the end of the circle.
	slices[len(slices)-1].end = 2 * math.Pi

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) - chartPadding
	r2 := radius * radius

	for y := range h {
		dy := float64(y) + 0.5 - cy
		for x := range w {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			// Image y grows downwards, so atan2 already runs clockwise.
			a := math.Atan2(dy, dx) + math.Pi/2
			if a < 0 {
				a += 2 * math.Pi
			}
			img.Set(x, y, sliceColor(slices, a))
		}
	}

	return img, nil
}

func sliceColor(slices []slice, angle float64) color.Color {
	for _, s := range slices {
		if angle < s.end {
			return s.color
		}
	}
	return slices[len(slices)-1].color
}

// parseHexColor parses "#rrggbb".
func parseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
